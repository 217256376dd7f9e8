package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/testutil"
)

func TestWriteEntry_AssignsMissingHashes(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	got, err := s.WriteEntry(ctx, lang.Entry{
		Sol:   "kan",
		Extra: "N",
		Meanings: []lang.Meaning{{
			Eng:      "house",
			Sections: []lang.Section{{Title: "usage", Content: "kan lum"}},
		}},
		Sections: []lang.Section{{Title: "etymology", Content: "old"}},
	})
	if err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}

	if got.Hash != "test-0001" {
		t.Errorf("entry hash = %q, want test-0001", got.Hash)
	}
	if got.Meanings[0].Hash != "test-0002" {
		t.Errorf("meaning hash = %q, want test-0002", got.Meanings[0].Hash)
	}
	if got.Meanings[0].Sections[0].Hash != "test-0003" {
		t.Errorf("meaning section hash = %q, want test-0003", got.Meanings[0].Sections[0].Hash)
	}
	if got.Sections[0].Hash != "test-0004" {
		t.Errorf("entry section hash = %q, want test-0004", got.Sections[0].Hash)
	}

	stored, ok, err := s.Entry(ctx, "test-0001")
	if err != nil {
		t.Fatalf("Entry() failed: %v", err)
	}
	if !ok {
		t.Fatal("entry not found after write")
	}
	if diff := cmp.Diff(got, stored, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stored entry mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteEntry_KeepsGivenHashes(t *testing.T) {
	s := createTestStore(t)

	e := testutil.Entry("e3", "kan", "N", "house", "home")
	got, err := s.WriteEntry(context.Background(), e)
	if err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}
	if diff := cmp.Diff(e, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("entry changed on write (-want +got):\n%s", diff)
	}
}

func TestWriteEntry_DoesNotMutateInput(t *testing.T) {
	s := createTestStore(t)

	e := lang.Entry{Sol: "kan", Meanings: []lang.Meaning{{Eng: "house"}}}
	if _, err := s.WriteEntry(context.Background(), e); err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}
	if e.Meanings[0].Hash != "" {
		t.Errorf("input meaning hash was set to %q", e.Meanings[0].Hash)
	}
}

func TestWriteEntry_ReplaceKeepsPosition(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, e := range []lang.Entry{
		testutil.Entry("e1", "lum", "V", "walk"),
		testutil.Entry("e2", "kan", "N", "house"),
	} {
		if _, err := s.WriteEntry(ctx, e); err != nil {
			t.Fatalf("WriteEntry() failed: %v", err)
		}
	}

	// Rewrite e1 with a different gloss and one meaning fewer.
	if _, err := s.WriteEntry(ctx, testutil.Entry("e1", "lum", "V", "stroll")); err != nil {
		t.Fatalf("WriteEntry() replace failed: %v", err)
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Hash != "e1" {
		t.Errorf("entries[0] = %q, want e1 to keep its position", entries[0].Hash)
	}
	if got := entries[0].Glosses(); !cmp.Equal(got, []string{"stroll"}) {
		t.Errorf("glosses = %v, want [stroll]", got)
	}
}

func TestWriteEntry_ReplaceDropsOldSections(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	e := testutil.Entry("e1", "lum", "V", "walk")
	e.Meanings[0].Sections = []lang.Section{{Hash: "s1", Title: "usage", Content: "lum kan"}}
	if _, err := s.WriteEntry(ctx, e); err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}
	if _, err := s.WriteEntry(ctx, testutil.Entry("e1", "lum", "V", "walk")); err != nil {
		t.Fatalf("WriteEntry() replace failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sections`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("sections after replace = %d, want 0", count)
	}
}

func TestWriteEntry_EmptySol(t *testing.T) {
	s := createTestStore(t)

	_, err := s.WriteEntry(context.Background(), lang.Entry{Hash: "e1"})
	if !errors.Is(err, ErrEmptySol) {
		t.Errorf("err = %v, want ErrEmptySol", err)
	}
}

func TestImport_CountsCreatedAndUpdated(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	res, err := s.Import(ctx, testutil.Lexicon())
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	if res != (ImportResult{Created: 8}) {
		t.Errorf("first import = %+v, want 8 created", res)
	}

	res, err = s.Import(ctx, testutil.Lexicon()[:3])
	if err != nil {
		t.Fatalf("second Import() failed: %v", err)
	}
	if res != (ImportResult{Updated: 3}) {
		t.Errorf("second import = %+v, want 3 updated", res)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 8 {
		t.Errorf("Count() = %d, want 8", n)
	}
}

func TestImport_IsAtomic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	entries := []lang.Entry{
		testutil.Entry("e1", "lum", "V", "walk"),
		{Hash: "e2"}, // no sol
	}
	_, err := s.Import(ctx, entries)
	if !errors.Is(err, ErrEmptySol) {
		t.Fatalf("err = %v, want ErrEmptySol", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count() after failed import = %d, want 0", n)
	}
}

func TestDeleteEntry_RemovesChildren(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	e := testutil.Entry("e1", "lum", "V", "walk")
	e.Sections = []lang.Section{{Hash: "s1", Title: "etymology"}}
	e.Meanings[0].Sections = []lang.Section{{Hash: "s2", Title: "usage"}}
	if _, err := s.WriteEntry(ctx, e); err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}

	if err := s.DeleteEntry(ctx, "e1"); err != nil {
		t.Fatalf("DeleteEntry() failed: %v", err)
	}

	for _, table := range []string{"entries", "meanings", "sections"} {
		var count int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Fatalf("count %s failed: %v", table, err)
		}
		if count != 0 {
			t.Errorf("%s rows after delete = %d, want 0", table, count)
		}
	}

	if err := s.DeleteEntry(ctx, "e1"); err != nil {
		t.Errorf("DeleteEntry() of missing hash = %v, want nil", err)
	}
}
