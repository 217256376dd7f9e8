package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/soldict/internal/lang"
)

var (
	// ErrSectionNotFound is returned when SectionTarget.As names no section.
	ErrSectionNotFound = errors.New("section not found")

	// ErrOwnerNotFound is returned when SectionTarget.To names neither an
	// entry nor a meaning.
	ErrOwnerNotFound = errors.New("section owner not found")
)

// SectionTarget addresses a section write. To is the entry or meaning a new
// section is appended to; As is an existing section to overwrite. With both
// set, the section As is overwritten and moved to the end of To.
type SectionTarget struct {
	To string
	As string
}

// PutSection stores sec at target and returns its hash.
//
// Panics if target has neither To nor As.
func (s *Store) PutSection(ctx context.Context, target SectionTarget, sec lang.Section) (string, error) {
	if target.To == "" && target.As == "" {
		panic("store: one of As or To must be provided")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("put section: %w", err)
	}
	defer tx.Rollback()

	if target.To != "" {
		var n int
		if err := tx.QueryRowContext(ctx, `
			SELECT (SELECT COUNT(*) FROM entries WHERE hash = ?)
			     + (SELECT COUNT(*) FROM meanings WHERE hash = ?)
		`, target.To, target.To).Scan(&n); err != nil {
			return "", fmt.Errorf("put section: %w", err)
		}
		if n == 0 {
			return "", fmt.Errorf("put section to %s: %w", target.To, ErrOwnerNotFound)
		}
	}

	hash := target.As
	switch {
	case target.As != "" && target.To == "":
		res, err := tx.ExecContext(ctx, `
			UPDATE sections SET title = ?, content = ? WHERE hash = ?
		`, sec.Title, sec.Content, target.As)
		if err != nil {
			return "", fmt.Errorf("put section: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return "", fmt.Errorf("put section as %s: %w", target.As, ErrSectionNotFound)
		}

	case target.As != "":
		res, err := tx.ExecContext(ctx, `
			UPDATE sections
			SET title = ?, content = ?, owner_hash = ?,
			    position = (SELECT COALESCE(MAX(position), -1) + 1 FROM sections WHERE owner_hash = ?)
			WHERE hash = ?
		`, sec.Title, sec.Content, target.To, target.To, target.As)
		if err != nil {
			return "", fmt.Errorf("put section: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return "", fmt.Errorf("put section as %s: %w", target.As, ErrSectionNotFound)
		}

	default:
		hash = sec.Hash
		if hash == "" {
			hash = s.hashes.Generate()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sections (hash, owner_hash, position, title, content)
			VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM sections WHERE owner_hash = ?), ?, ?)
		`, hash, target.To, target.To, sec.Title, sec.Content); err != nil {
			return "", fmt.Errorf("put section: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("put section: %w", err)
	}
	s.logger.Debug("section stored", "hash", hash, "to", target.To, "title", sec.Title)
	return hash, nil
}

// DeleteSection removes the section named by target.As.
//
// Panics if target.As is empty.
func (s *Store) DeleteSection(ctx context.Context, target SectionTarget) error {
	if target.As == "" {
		panic("store: cannot delete nonexistent section")
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM sections WHERE hash = ?`, target.As)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete section %s: %w", target.As, ErrSectionNotFound)
	}
	return nil
}
