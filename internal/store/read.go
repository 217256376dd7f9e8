package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/soldict/internal/lang"
)

// Entries returns the whole lexicon in import order.
//
// ORDER BY seq ASC, hash ASC COLLATE BINARY keeps reads deterministic.
// Meanings and sections come back in their stored positions. Empty
// collections are empty slices, never nil.
func (s *Store) Entries(ctx context.Context) ([]lang.Entry, error) {
	entries, err := s.readEntries(ctx, "", nil)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return entries, nil
}

// Entry returns a single entry by hash. The boolean is false if no entry
// has that hash.
func (s *Store) Entry(ctx context.Context, hash string) (lang.Entry, bool, error) {
	entries, err := s.readEntries(ctx, "WHERE hash = ?", []any{hash})
	if err != nil {
		return lang.Entry{}, false, fmt.Errorf("read entry %s: %w", hash, err)
	}
	if len(entries) == 0 {
		return lang.Entry{}, false, nil
	}
	return entries[0], true, nil
}

// EntriesBySol returns every entry spelled sol, in import order.
func (s *Store) EntriesBySol(ctx context.Context, sol string) ([]lang.Entry, error) {
	entries, err := s.readEntries(ctx, "WHERE sol = ?", []any{sol})
	if err != nil {
		return nil, fmt.Errorf("read entries %q: %w", sol, err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func (s *Store) readEntries(ctx context.Context, where string, args []any) ([]lang.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, sol, extra, tag FROM entries
		`+where+`
		ORDER BY seq ASC, hash ASC COLLATE BINARY
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []lang.Entry{}
	for rows.Next() {
		var e lang.Entry
		if err := rows.Scan(&e.Hash, &e.Sol, &e.Extra, &e.Tag); err != nil {
			return nil, err
		}
		e.Meanings = []lang.Meaning{}
		e.Sections = []lang.Section{}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	// Full reads load children in one pass; filtered reads name their owners.
	var entryHashes []string
	if where != "" {
		for _, e := range entries {
			entryHashes = append(entryHashes, e.Hash)
		}
	}

	meanings, err := s.readMeanings(ctx, entryHashes)
	if err != nil {
		return nil, err
	}
	var owners []string
	if where != "" {
		owners = append(owners, entryHashes...)
		for _, ms := range meanings {
			for _, m := range ms {
				owners = append(owners, m.Hash)
			}
		}
	}
	sections, err := s.readSections(ctx, owners)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		e := &entries[i]
		if ms, ok := meanings[e.Hash]; ok {
			e.Meanings = ms
		}
		for j := range e.Meanings {
			m := &e.Meanings[j]
			if secs, ok := sections[m.Hash]; ok {
				m.Sections = secs
			}
		}
		if secs, ok := sections[e.Hash]; ok {
			e.Sections = secs
		}
	}
	return entries, nil
}

// readMeanings groups meanings by entry hash. A nil filter reads all.
func (s *Store) readMeanings(ctx context.Context, entryHashes []string) (map[string][]lang.Meaning, error) {
	query := `SELECT hash, entry_hash, eng FROM meanings`
	var args []any
	if entryHashes != nil {
		query += ` WHERE entry_hash IN (` + placeholders(len(entryHashes)) + `)`
		args = anys(entryHashes)
	}
	query += ` ORDER BY entry_hash ASC COLLATE BINARY, position ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]lang.Meaning)
	for rows.Next() {
		var m lang.Meaning
		var entryHash string
		if err := rows.Scan(&m.Hash, &entryHash, &m.Eng); err != nil {
			return nil, err
		}
		m.Sections = []lang.Section{}
		out[entryHash] = append(out[entryHash], m)
	}
	return out, rows.Err()
}

// readSections groups sections by owner hash. A nil filter reads all.
func (s *Store) readSections(ctx context.Context, owners []string) (map[string][]lang.Section, error) {
	query := `SELECT hash, owner_hash, title, content FROM sections`
	var args []any
	if owners != nil {
		query += ` WHERE owner_hash IN (` + placeholders(len(owners)) + `)`
		args = anys(owners)
	}
	query += ` ORDER BY owner_hash ASC COLLATE BINARY, position ASC, hash ASC COLLATE BINARY`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]lang.Section)
	for rows.Next() {
		var sec lang.Section
		var owner string
		if err := rows.Scan(&sec.Hash, &owner, &sec.Title, &sec.Content); err != nil {
			return nil, err
		}
		out[owner] = append(out[owner], sec)
	}
	return out, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func anys(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
