package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInventory() Inventory {
	return Inventory{
		Consonant: []PhonemeEntry{{Roman: "k", Phonetic: "k"}},
		Vowel:     []PhonemeEntry{{Roman: "a", Phonetic: "a"}},
		Final:     []PhonemeEntry{{Roman: "n", Phonetic: "n"}},
		Tones:     []ToneEntry{{Diacritic: "", Letter: "M", Phonetic: "˧"}},
	}
}

func TestConfigHashIsValueKeyed(t *testing.T) {
	cfg := SoundChangeConfig{Changes: []Change{{From: "k", To: "g"}}}

	h1 := MustConfigHash(sampleInventory(), cfg)
	h2 := MustConfigHash(sampleInventory(), SoundChangeConfig{Changes: []Change{{From: "k", To: "g"}}})
	assert.Equal(t, h1, h2, "equal content must hash equal regardless of identity")
	assert.Len(t, h1, 64)
}

func TestConfigHashSeesRuleOrder(t *testing.T) {
	ab := SoundChangeConfig{Changes: []Change{{From: "a", To: "b"}, {From: "b", To: "c"}}}
	ba := SoundChangeConfig{Changes: []Change{{From: "b", To: "c"}, {From: "a", To: "b"}}}
	assert.NotEqual(t, MustConfigHash(sampleInventory(), ab), MustConfigHash(sampleInventory(), ba))
}

func TestConfigHashDistinguishesAbsentContext(t *testing.T) {
	absent := SoundChangeConfig{Changes: []Change{{From: "k", To: "g"}}}
	empty := SoundChangeConfig{Changes: []Change{{From: "k", To: "g", Left: Context("")}}}
	assert.NotEqual(t, MustConfigHash(sampleInventory(), absent), MustConfigHash(sampleInventory(), empty))
}

func TestInventoryAndSoundChangeHashDomains(t *testing.T) {
	ih, err := InventoryHash(sampleInventory())
	require.NoError(t, err)
	sh, err := SoundChangeHash(SoundChangeConfig{})
	require.NoError(t, err)
	assert.NotEqual(t, ih, sh)
}

func TestConfigHashSeesSyllabification(t *testing.T) {
	plain := SoundChangeConfig{Changes: []Change{{From: "k", To: "g"}}}
	resyl := plain
	resyl.Resyllabify = true
	clustered := resyl
	clustered.Clusters = []string{"pl"}

	hashes := map[string]bool{
		MustConfigHash(sampleInventory(), plain):     true,
		MustConfigHash(sampleInventory(), resyl):     true,
		MustConfigHash(sampleInventory(), clustered): true,
	}
	assert.Len(t, hashes, 3)
}
