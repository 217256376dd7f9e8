package store

import "github.com/google/uuid"

// HashGenerator supplies identifiers for records imported without one.
type HashGenerator interface {
	Generate() string
}

// UUIDv7Hashes generates time-sortable UUIDv7 identifiers.
//
// Thread-safety: UUIDv7Hashes is stateless and safe for concurrent use.
type UUIDv7Hashes struct{}

// Generate panics if UUID generation fails.
func (UUIDv7Hashes) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
