package phonology

import (
	"log/slog"
	"sync"

	"github.com/roach88/soldict/internal/lang"
)

// Cache holds compiled transcribers keyed by configuration content hash.
// Editing a configuration yields a new key; nothing is keyed by identity,
// so a stale entry can never be served for changed content.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Transcriber
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Transcriber)}
}

// Get returns the transcriber for inv and cfg, compiling it on first use.
// Compilation errors are not cached.
func (c *Cache) Get(inv lang.Inventory, cfg lang.SoundChangeConfig) (*Transcriber, error) {
	key, err := lang.ConfigHash(inv, cfg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.entries[key]; ok {
		return t, nil
	}

	t, err := NewTranscriber(inv, cfg)
	if err != nil {
		return nil, err
	}
	c.entries[key] = t
	slog.Debug("transcriber compiled", "hash", key, "rules", len(cfg.Changes))
	return t, nil
}

// Len returns the number of cached transcribers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
