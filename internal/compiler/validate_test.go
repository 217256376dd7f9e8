package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/testutil"
)

func TestValidateValid(t *testing.T) {
	cfg := &Config{
		Inventory: testutil.Inventory(),
		SoundChange: lang.SoundChangeConfig{Changes: []lang.Change{
			{From: "k", To: "g", Right: lang.Context("{V}")},
			{From: "{T}", To: ""},
		}},
	}
	assert.Empty(t, Validate(cfg))
}

func TestValidateInventory(t *testing.T) {
	inv := testutil.MinimalInventory()
	inv.Vowel = append(inv.Vowel, lang.PhonemeEntry{Roman: "a", Phonetic: "ɑ"})

	errs := Validate(&Config{Inventory: inv})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicatePhoneme, errs[0].Code)
	assert.Equal(t, "syllable.vowel[1]", errs[0].Field)
}

func TestValidateAmbiguousTones(t *testing.T) {
	inv := testutil.MinimalInventory()
	inv.Tones = append(inv.Tones,
		lang.ToneEntry{Diacritic: "\u0301", Letter: "M", Phonetic: "˥"},
		lang.ToneEntry{Diacritic: "\u0301", Letter: "", Phonetic: "˩"},
	)

	errs := Validate(&Config{Inventory: inv})
	require.Len(t, errs, 2)
	assert.Equal(t, ValidationError{
		Field:   "syllable.tones[1].letter",
		Message: `letter "M" is also used by tones[0]`,
		Code:    ErrAmbiguousTone,
	}, errs[0])
	assert.Equal(t, "syllable.tones[2].diacritic", errs[1].Field)
}

func TestValidateCollectsAllRuleErrors(t *testing.T) {
	cfg := &Config{
		Inventory: testutil.MinimalInventory(),
		SoundChange: lang.SoundChangeConfig{Changes: []lang.Change{
			{From: "{X}", To: "a"},
			{From: "k", To: "g"},
			{From: "(", To: "a"},
			{From: "", To: "ə"},
		}},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 3)

	assert.Equal(t, ErrUnknownPlaceholder, errs[0].Code)
	assert.Equal(t, "soundChange.changes[0]", errs[0].Field)
	assert.Equal(t, ErrBadRule, errs[1].Code)
	assert.Equal(t, "soundChange.changes[2]", errs[1].Field)
	assert.Equal(t, ErrEmptyRule, errs[2].Code)
	assert.Equal(t, "soundChange.changes[3]", errs[2].Field)
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Field: "syllable.vowel", Message: "empty", Code: ErrEmptyClass}
	assert.Equal(t, "[E101] syllable.vowel: empty", e.Error())

	e.Line = 4
	assert.Equal(t, "[E101] line 4: syllable.vowel: empty", e.Error())
}
