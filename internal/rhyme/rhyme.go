package rhyme

import (
	"github.com/roach88/soldict/internal/lang"
)

// Null stands for an absent initial or final.
const Null = "∅"

// Rhyme is the phonetic signature of a syllable.
type Rhyme struct {
	Initial string `json:"initial"`
	Vowel   string `json:"vowel"`
	Tone    string `json:"tone"`
	Final   string `json:"final"`
}

// FromSyllable projects s onto its rhyme.
func FromSyllable(s lang.Syllable) Rhyme {
	r := Rhyme{Initial: Null, Vowel: s.Vowel.Phonetic, Tone: s.Tone.Phonetic, Final: Null}
	if s.Initial != nil {
		r.Initial = s.Initial.Phonetic
	}
	if s.Final != nil {
		r.Final = s.Final.Phonetic
	}
	return r
}

// Key names one rhyme field.
type Key int

const (
	Initial Key = iota
	Vowel
	Tone
	Final
)

// Keys lists every field in display order.
var Keys = []Key{Initial, Vowel, Tone, Final}

func (k Key) String() string {
	switch k {
	case Initial:
		return "initial"
	case Vowel:
		return "vowel"
	case Tone:
		return "tone"
	case Final:
		return "final"
	default:
		return "unknown"
	}
}

// Get returns the field named by k.
func (r Rhyme) Get(k Key) string {
	switch k {
	case Initial:
		return r.Initial
	case Vowel:
		return r.Vowel
	case Tone:
		return r.Tone
	case Final:
		return r.Final
	default:
		return ""
	}
}

// Match is a partial rhyme. Fields not in the map match anything.
type Match map[Key]string

// Matches reports whether every field m specifies equals r's.
func Matches(r Rhyme, m Match) bool {
	for _, k := range Keys {
		if want, ok := m[k]; ok && want != r.Get(k) {
			return false
		}
	}
	return true
}

// StringOptions controls how Null renders in Match.String.
type StringOptions struct {
	AlwaysInitial bool
	AlwaysFinal   bool
}

// String renders m as initial, a hyphen when the onset side is partial,
// then vowel, tone and final: {vowel: a, final: n} is "-an".
func (m Match) String(opts StringOptions) string {
	initial, hasInitial := m[Initial]
	if initial == Null && !opts.AlwaysInitial {
		initial = ""
	}
	final := m[Final]
	if final == Null && !opts.AlwaysFinal {
		final = ""
	}

	_, hasVowel := m[Vowel]
	hyphen := ""
	if !hasInitial || !hasVowel {
		hyphen = "-"
	}
	return initial + hyphen + m[Vowel] + m[Tone] + final
}

// Invert returns r's fields that m leaves unspecified.
func Invert(r Rhyme, m Match) Match {
	out := Match{}
	for _, k := range Keys {
		if _, ok := m[k]; !ok {
			out[k] = r.Get(k)
		}
	}
	return out
}

// Full returns the match that specifies every field of r.
func (r Rhyme) Full() Match {
	return Match{Initial: r.Initial, Vowel: r.Vowel, Tone: r.Tone, Final: r.Final}
}
