package lang

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix leaves
// room for migrating the canonical form.
const (
	DomainInventory   = "soldict/inventory/v1"
	DomainSoundChange = "soldict/sound_change/v1"
	DomainConfig      = "soldict/config/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// InventoryHash computes the content hash of an inventory.
func InventoryHash(inv Inventory) (string, error) {
	canonical, err := MarshalCanonical(inv.canonical())
	if err != nil {
		return "", fmt.Errorf("InventoryHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainInventory, canonical), nil
}

// SoundChangeHash computes the content hash of a sound-change config.
func SoundChangeHash(cfg SoundChangeConfig) (string, error) {
	canonical, err := MarshalCanonical(cfg.canonical())
	if err != nil {
		return "", fmt.Errorf("SoundChangeHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSoundChange, canonical), nil
}

// ConfigHash computes the combined content hash used to key compiled
// transcribers. Two configs with equal content always hash equal, whatever
// their identity.
func ConfigHash(inv Inventory, cfg SoundChangeConfig) (string, error) {
	canonical, err := MarshalCanonical(map[string]any{
		"inventory":    inv.canonical(),
		"sound_change": cfg.canonical(),
	})
	if err != nil {
		return "", fmt.Errorf("ConfigHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainConfig, canonical), nil
}

// MustConfigHash is like ConfigHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustConfigHash(inv Inventory, cfg SoundChangeConfig) string {
	h, err := ConfigHash(inv, cfg)
	if err != nil {
		panic(err)
	}
	return h
}

func (inv Inventory) canonical() map[string]any {
	tones := make([]any, len(inv.Tones))
	for i, t := range inv.Tones {
		tones[i] = []any{t.Diacritic, t.Letter, t.Phonetic}
	}
	return map[string]any{
		"unromanize": canonicalSubs(inv.Unromanize),
		"consonant":  canonicalPhonemes(inv.Consonant),
		"initial":    canonicalPhonemes(inv.Initial),
		"vowel":      canonicalPhonemes(inv.Vowel),
		"final":      canonicalPhonemes(inv.Final),
		"tones":      tones,
	}
}

func (cfg SoundChangeConfig) canonical() map[string]any {
	changes := make([]any, len(cfg.Changes))
	for i, c := range cfg.Changes {
		obj := map[string]any{"from": c.From, "to": c.To}
		// absent context and empty context differ, so absence is encoded
		// by omitting the key
		if c.Left != nil {
			obj["left"] = *c.Left
		}
		if c.Right != nil {
			obj["right"] = *c.Right
		}
		changes[i] = obj
	}
	out := map[string]any{
		"vowels":  cfg.Vowels,
		"pre":     canonicalSubs(cfg.Unromanize.Pre),
		"post":    canonicalSubs(cfg.Unromanize.Post),
		"changes": changes,
	}
	if cfg.Resyllabify {
		out["resyllabify"] = true
	}
	if len(cfg.Clusters) > 0 {
		clusters := make([]any, len(cfg.Clusters))
		for i, c := range cfg.Clusters {
			clusters[i] = c
		}
		out["clusters"] = clusters
	}
	return out
}

func canonicalPhonemes(ps []PhonemeEntry) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = []any{p.Roman, p.Phonetic}
	}
	return out
}

func canonicalSubs(subs []Substitution) []any {
	out := make([]any, len(subs))
	for i, s := range subs {
		out[i] = []any{s.From, s.To}
	}
	return out
}
