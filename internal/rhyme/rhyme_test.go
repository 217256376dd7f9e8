package rhyme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/soldict/internal/lang"
)

func TestFromSyllable(t *testing.T) {
	k := lang.PhonemeEntry{Roman: "k", Phonetic: "kʰ"}
	n := lang.PhonemeEntry{Roman: "n", Phonetic: "n"}
	tone := lang.ToneEntry{Letter: "M", Phonetic: "˧"}

	full := lang.Syllable{Initial: &k, Vowel: lang.PhonemeEntry{Roman: "a", Phonetic: "a"}, Final: &n, Tone: tone}
	assert.Equal(t, Rhyme{Initial: "kʰ", Vowel: "a", Tone: "˧", Final: "n"}, FromSyllable(full))

	open := lang.Syllable{Vowel: lang.PhonemeEntry{Roman: "a", Phonetic: "a"}, Tone: tone}
	assert.Equal(t, Rhyme{Initial: Null, Vowel: "a", Tone: "˧", Final: Null}, FromSyllable(open))
}

func TestMatches(t *testing.T) {
	r := Rhyme{Initial: Null, Vowel: "a", Tone: "˧", Final: "n"}

	assert.True(t, Matches(r, Match{}))
	assert.True(t, Matches(r, Match{Vowel: "a"}))
	assert.True(t, Matches(r, Match{Initial: Null}))
	assert.True(t, Matches(r, r.Full()))
	assert.False(t, Matches(r, Match{Final: Null}))
	assert.False(t, Matches(r, Match{Vowel: "a", Tone: "˥"}))
}

func TestMatchesMonotonic(t *testing.T) {
	rhymes := []Rhyme{
		{Initial: Null, Vowel: "a", Tone: "˧", Final: "n"},
		{Initial: "kʰ", Vowel: "a", Tone: "˧", Final: Null},
		{Initial: "m", Vowel: "a", Tone: "˥˩", Final: Null},
	}

	// every subset of every rhyme's fields, as bitmasks over Keys
	var matches []Match
	for _, source := range rhymes {
		for mask := 0; mask < 1<<len(Keys); mask++ {
			m := Match{}
			for i, k := range Keys {
				if mask&(1<<i) != 0 {
					m[k] = source.Get(k)
				}
			}
			matches = append(matches, m)
		}
	}

	for _, r := range rhymes {
		for _, m2 := range matches {
			if !Matches(r, m2) {
				continue
			}
			for _, m1 := range matches {
				if subset(m1, m2) {
					assert.True(t, Matches(r, m1), "r=%v m1=%v m2=%v", r, m1, m2)
				}
			}
		}
	}
}

func subset(m1, m2 Match) bool {
	for k, v := range m1 {
		if w, ok := m2[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		name string
		m    Match
		opts StringOptions
		want string
	}{
		{"rime", Match{Vowel: "a", Final: "n"}, StringOptions{}, "-an"},
		{"toned open rime", Match{Vowel: "a", Tone: "˧", Final: Null}, StringOptions{}, "-a˧"},
		{"always final", Match{Vowel: "a", Tone: "˧", Final: Null}, StringOptions{AlwaysFinal: true}, "-a˧∅"},
		{"full", Match{Initial: Null, Vowel: "a", Tone: "˧", Final: "n"}, StringOptions{}, "a˧n"},
		{"always initial", Match{Initial: Null, Vowel: "a", Tone: "˧", Final: "n"}, StringOptions{AlwaysInitial: true}, "∅a˧n"},
		{"onset", Match{Initial: "k", Vowel: "a"}, StringOptions{}, "ka"},
		{"empty", Match{}, StringOptions{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.String(tt.opts))
		})
	}
}

func TestInvert(t *testing.T) {
	r := Rhyme{Initial: "kʰ", Vowel: "a", Tone: "˧", Final: "n"}

	assert.Equal(t, Match{Initial: "kʰ", Tone: "˧"}, Invert(r, Match{Vowel: "x", Final: "y"}))
	assert.Equal(t, r.Full(), Invert(r, Match{}))
	assert.Empty(t, Invert(r, r.Full()))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "initial", Initial.String())
	assert.Equal(t, "final", Final.String())
	assert.Equal(t, "unknown", Key(9).String())
}
