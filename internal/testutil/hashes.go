package testutil

import (
	"fmt"
	"sync"
)

// SequentialHashes generates entry hashes "test-0001", "test-0002", ...
//
// It stands in for random identifiers on import so that stored lexicons and
// golden files are byte-identical across runs.
//
// Thread-safety: all methods are safe for concurrent use.
type SequentialHashes struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequentialHashes creates a generator. If prefix is empty, "test" is used.
func NewSequentialHashes(prefix string) *SequentialHashes {
	if prefix == "" {
		prefix = "test"
	}
	return &SequentialHashes{prefix: prefix}
}

// Generate returns the next hash.
func (g *SequentialHashes) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// Reset restarts the sequence.
func (g *SequentialHashes) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
