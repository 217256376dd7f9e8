package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/testutil"
)

func TestEntries_Empty(t *testing.T) {
	s := createTestStore(t)

	entries, err := s.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if entries == nil {
		t.Error("Entries() returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestEntries_ImportOrderRoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := testutil.Lexicon()
	if _, err := s.Import(ctx, want); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}

	got, err := s.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries_NonNilChildren(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.WriteEntry(ctx, lang.Entry{Hash: "e1", Sol: "kan"}); err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if entries[0].Meanings == nil || entries[0].Sections == nil {
		t.Errorf("entry children should be empty slices, got %+v", entries[0])
	}
}

func TestEntries_Deterministic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.Import(ctx, testutil.Lexicon()); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}

	first, err := s.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := s.Entries(ctx)
		if err != nil {
			t.Fatalf("Entries() failed: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("read %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestEntries_SectionsInPosition(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	e := testutil.Entry("e1", "lum", "V", "walk", "go")
	e.Meanings[1].Sections = []lang.Section{
		{Hash: "z", Title: "translation", Content: "first"},
		{Hash: "a", Title: "usage", Content: "second"},
	}
	e.Sections = []lang.Section{{Hash: "s", Title: "etymology", Content: "old"}}
	if _, err := s.WriteEntry(ctx, e); err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}

	got, ok, err := s.Entry(ctx, "e1")
	if err != nil || !ok {
		t.Fatalf("Entry() = %v, %v", ok, err)
	}
	if diff := cmp.Diff(e, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Entry() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntry_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, ok, err := s.Entry(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Entry() failed: %v", err)
	}
	if ok {
		t.Error("Entry() found a missing hash")
	}
}

func TestEntriesBySol_Homographs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.Import(ctx, testutil.Lexicon()); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}

	got, err := s.EntriesBySol(ctx, "kan")
	if err != nil {
		t.Fatalf("EntriesBySol() failed: %v", err)
	}
	var hashes []string
	for _, e := range got {
		hashes = append(hashes, e.Hash)
	}
	if diff := cmp.Diff([]string{"e3", "e4"}, hashes); diff != "" {
		t.Errorf("EntriesBySol(kan) mismatch (-want +got):\n%s", diff)
	}
	if got[0].Glosses()[1] != "home" {
		t.Errorf("e3 second gloss = %q, want home", got[0].Glosses()[1])
	}
}
