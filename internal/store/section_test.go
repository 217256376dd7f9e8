package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/testutil"
)

func seedEntry(t *testing.T, s *Store) {
	t.Helper()
	e := testutil.Entry("e1", "lum", "V", "walk")
	e.Sections = []lang.Section{{Hash: "s1", Title: "etymology", Content: "old"}}
	if _, err := s.WriteEntry(context.Background(), e); err != nil {
		t.Fatalf("WriteEntry() failed: %v", err)
	}
}

func readEntry(t *testing.T, s *Store, hash string) lang.Entry {
	t.Helper()
	e, ok, err := s.Entry(context.Background(), hash)
	if err != nil || !ok {
		t.Fatalf("Entry(%s) = %v, %v", hash, ok, err)
	}
	return e
}

func TestPutSection_AppendsToEntry(t *testing.T) {
	s := createTestStore(t)
	seedEntry(t, s)

	hash, err := s.PutSection(context.Background(), SectionTarget{To: "e1"}, lang.Section{Title: "usage", Content: "lum kan"})
	if err != nil {
		t.Fatalf("PutSection() failed: %v", err)
	}
	if hash != "test-0001" {
		t.Errorf("hash = %q, want test-0001", hash)
	}

	e := readEntry(t, s, "e1")
	if len(e.Sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(e.Sections))
	}
	if e.Sections[1] != (lang.Section{Hash: "test-0001", Title: "usage", Content: "lum kan"}) {
		t.Errorf("appended section = %+v", e.Sections[1])
	}
}

func TestPutSection_AppendsToMeaning(t *testing.T) {
	s := createTestStore(t)
	seedEntry(t, s)

	sec := lang.Section{Hash: "tr", Title: "translation", Content: `{"sol":"lum"}`}
	if _, err := s.PutSection(context.Background(), SectionTarget{To: "e1-m1"}, sec); err != nil {
		t.Fatalf("PutSection() failed: %v", err)
	}

	e := readEntry(t, s, "e1")
	if len(e.Meanings[0].Sections) != 1 || e.Meanings[0].Sections[0] != sec {
		t.Errorf("meaning sections = %+v, want [%+v]", e.Meanings[0].Sections, sec)
	}
}

func TestPutSection_OverwritesAs(t *testing.T) {
	s := createTestStore(t)
	seedEntry(t, s)

	hash, err := s.PutSection(context.Background(), SectionTarget{As: "s1"}, lang.Section{Title: "etymology", Content: "new"})
	if err != nil {
		t.Fatalf("PutSection() failed: %v", err)
	}
	if hash != "s1" {
		t.Errorf("hash = %q, want s1", hash)
	}

	e := readEntry(t, s, "e1")
	if len(e.Sections) != 1 || e.Sections[0].Content != "new" {
		t.Errorf("sections = %+v, want s1 overwritten", e.Sections)
	}
}

func TestPutSection_MovesWithBoth(t *testing.T) {
	s := createTestStore(t)
	seedEntry(t, s)

	if _, err := s.PutSection(context.Background(), SectionTarget{To: "e1-m1", As: "s1"}, lang.Section{Title: "usage"}); err != nil {
		t.Fatalf("PutSection() failed: %v", err)
	}

	e := readEntry(t, s, "e1")
	if len(e.Sections) != 0 {
		t.Errorf("entry sections = %+v, want none", e.Sections)
	}
	if len(e.Meanings[0].Sections) != 1 || e.Meanings[0].Sections[0].Hash != "s1" {
		t.Errorf("meaning sections = %+v, want s1", e.Meanings[0].Sections)
	}
}

func TestPutSection_Errors(t *testing.T) {
	s := createTestStore(t)
	seedEntry(t, s)
	ctx := context.Background()

	_, err := s.PutSection(ctx, SectionTarget{To: "nobody"}, lang.Section{Title: "usage"})
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("missing owner: err = %v, want ErrOwnerNotFound", err)
	}

	_, err = s.PutSection(ctx, SectionTarget{As: "missing"}, lang.Section{Title: "usage"})
	if !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("missing section: err = %v, want ErrSectionNotFound", err)
	}
}

func TestPutSection_PanicsWithoutTarget(t *testing.T) {
	s := createTestStore(t)

	assert.PanicsWithValue(t, "store: one of As or To must be provided", func() {
		_, _ = s.PutSection(context.Background(), SectionTarget{}, lang.Section{Title: "usage"})
	})
}

func TestDeleteSection(t *testing.T) {
	s := createTestStore(t)
	seedEntry(t, s)
	ctx := context.Background()

	if err := s.DeleteSection(ctx, SectionTarget{As: "s1"}); err != nil {
		t.Fatalf("DeleteSection() failed: %v", err)
	}
	if e := readEntry(t, s, "e1"); len(e.Sections) != 0 {
		t.Errorf("sections after delete = %+v", e.Sections)
	}

	if err := s.DeleteSection(ctx, SectionTarget{As: "s1"}); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("second delete: err = %v, want ErrSectionNotFound", err)
	}
}

func TestDeleteSection_PanicsWithoutAs(t *testing.T) {
	s := createTestStore(t)

	assert.PanicsWithValue(t, "store: cannot delete nonexistent section", func() {
		_ = s.DeleteSection(context.Background(), SectionTarget{To: "e1"})
	})
}
