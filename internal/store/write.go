package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/soldict/internal/lang"
)

// ErrEmptySol is returned when an entry without a headword is written.
var ErrEmptySol = errors.New("entry has no sol")

// ImportResult counts the entries an import touched.
type ImportResult struct {
	Created int
	Updated int
}

// WriteEntry inserts or replaces one entry together with its meanings and
// sections. Records without a hash get one from the store's HashGenerator.
// A replaced entry keeps its original import position.
//
// Returns the entry as stored, hashes filled in.
func (s *Store) WriteEntry(ctx context.Context, e lang.Entry) (lang.Entry, error) {
	e = s.assignHashes(e)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return lang.Entry{}, fmt.Errorf("write entry: %w", err)
	}
	defer tx.Rollback()

	if _, err := writeEntry(ctx, tx, e); err != nil {
		return lang.Entry{}, err
	}
	if err := tx.Commit(); err != nil {
		return lang.Entry{}, fmt.Errorf("write entry: %w", err)
	}
	return e, nil
}

// Import writes entries in order inside a single transaction. Either every
// entry is stored or none is.
func (s *Store) Import(ctx context.Context, entries []lang.Entry) (ImportResult, error) {
	var res ImportResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("import: %w", err)
	}
	defer tx.Rollback()

	for i, e := range entries {
		e = s.assignHashes(e)
		created, err := writeEntry(ctx, tx, e)
		if err != nil {
			return ImportResult{}, fmt.Errorf("import entries[%d]: %w", i, err)
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
		s.logger.Debug("entry imported", "hash", e.Hash, "sol", e.Sol, "created", created)
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("import: %w", err)
	}

	s.logger.Info("lexicon imported",
		"created", res.Created,
		"updated", res.Updated,
	)
	return res, nil
}

// DeleteEntry removes an entry, its meanings and every section attached to
// either. Deleting an unknown hash is a no-op.
func (s *Store) DeleteEntry(ctx context.Context, hash string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	defer tx.Rollback()

	if err := deleteChildren(ctx, tx, hash); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE hash = ?`, hash); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (s *Store) assignHashes(e lang.Entry) lang.Entry {
	if e.Hash == "" {
		e.Hash = s.hashes.Generate()
	}
	e.Meanings = append([]lang.Meaning(nil), e.Meanings...)
	for i := range e.Meanings {
		m := &e.Meanings[i]
		if m.Hash == "" {
			m.Hash = s.hashes.Generate()
		}
		m.Sections = s.assignSectionHashes(m.Sections)
	}
	e.Sections = s.assignSectionHashes(e.Sections)
	return e
}

func (s *Store) assignSectionHashes(secs []lang.Section) []lang.Section {
	if len(secs) == 0 {
		return secs
	}
	out := append([]lang.Section(nil), secs...)
	for i := range out {
		if out[i].Hash == "" {
			out[i].Hash = s.hashes.Generate()
		}
	}
	return out
}

// writeEntry reports whether the entry was newly created.
func writeEntry(ctx context.Context, tx *sql.Tx, e lang.Entry) (bool, error) {
	if e.Sol == "" {
		return false, fmt.Errorf("write entry %s: %w", e.Hash, ErrEmptySol)
	}

	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entries WHERE hash = ?`, e.Hash,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("write entry %s: %w", e.Hash, err)
	}

	if exists > 0 {
		if err := deleteChildren(ctx, tx, e.Hash); err != nil {
			return false, fmt.Errorf("write entry %s: %w", e.Hash, err)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE entries SET sol = ?, extra = ?, tag = ? WHERE hash = ?
		`, e.Sol, e.Extra, e.Tag, e.Hash); err != nil {
			return false, fmt.Errorf("write entry %s: %w", e.Hash, err)
		}
	} else {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO entries (hash, seq, sol, extra, tag)
			VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM entries), ?, ?, ?)
		`, e.Hash, e.Sol, e.Extra, e.Tag); err != nil {
			return false, fmt.Errorf("write entry %s: %w", e.Hash, err)
		}
	}

	for i, m := range e.Meanings {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO meanings (hash, entry_hash, position, eng)
			VALUES (?, ?, ?, ?)
		`, m.Hash, e.Hash, i, m.Eng); err != nil {
			return false, fmt.Errorf("write meaning %s: %w", m.Hash, err)
		}
		if err := insertSections(ctx, tx, m.Hash, m.Sections); err != nil {
			return false, err
		}
	}
	if err := insertSections(ctx, tx, e.Hash, e.Sections); err != nil {
		return false, err
	}
	return exists == 0, nil
}

func insertSections(ctx context.Context, tx *sql.Tx, owner string, secs []lang.Section) error {
	for i, sec := range secs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sections (hash, owner_hash, position, title, content)
			VALUES (?, ?, ?, ?, ?)
		`, sec.Hash, owner, i, sec.Title, sec.Content); err != nil {
			return fmt.Errorf("write section %s: %w", sec.Hash, err)
		}
	}
	return nil
}

// deleteChildren removes the meanings of an entry and the sections of the
// entry and of those meanings.
func deleteChildren(ctx context.Context, tx *sql.Tx, entryHash string) error {
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM sections
		WHERE owner_hash = ?
		   OR owner_hash IN (SELECT hash FROM meanings WHERE entry_hash = ?)
	`, entryHash, entryHash); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM meanings WHERE entry_hash = ?`, entryHash)
	return err
}
