package lang

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// InvalidMark is how the invalid phoneme and tone render in transcriptions.
const InvalidMark = "×"

// PhonemeEntry pairs a romanized spelling with its phonetic value.
type PhonemeEntry struct {
	Roman    string `json:"roman"`
	Phonetic string `json:"phonetic"`

	invalid bool
}

// InvalidPhoneme marks onset, nucleus or coda text that matched the syllable
// pattern but could not be resolved against the inventory.
var InvalidPhoneme = PhonemeEntry{Roman: InvalidMark, Phonetic: InvalidMark, invalid: true}

// Valid reports whether p is an inventory entry rather than the invalid marker.
func (p PhonemeEntry) Valid() bool { return !p.invalid }

// ToneEntry identifies a tone by three parallel notations.
type ToneEntry struct {
	Diacritic string `json:"diacritic"` // combining mark, may be empty
	Letter    string `json:"letter"`
	Phonetic  string `json:"phonetic"`

	invalid bool
}

// InvalidTone marks a tone notation that did not resolve to exactly one
// configured tone.
var InvalidTone = ToneEntry{Diacritic: InvalidMark, Letter: InvalidMark, Phonetic: InvalidMark, invalid: true}

// Valid reports whether t is a configured tone rather than the invalid marker.
func (t ToneEntry) Valid() bool { return !t.invalid }

// Has reports whether marker is one of t's notations.
func (t ToneEntry) Has(marker string) bool {
	return t.Diacritic == marker || t.Letter == marker || t.Phonetic == marker
}

// Substitution is one literal find/replace pair applied globally.
type Substitution struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Substitute applies subs in order, each to every occurrence. Matching runs
// on the NFD forms of s and every pair, so canonically equivalent spellings
// behave alike; the result is NFC.
func Substitute(s string, subs []Substitution) string {
	s = norm.NFD.String(s)
	for _, sub := range subs {
		from := norm.NFD.String(sub.From)
		if from == "" {
			continue
		}
		s = strings.ReplaceAll(s, from, norm.NFD.String(sub.To))
	}
	return norm.NFC.String(s)
}

// Inventory is the declarative phoneme configuration.
//
// Onsets match against Initial followed by Consonant, so clusters listed in
// Initial win over their first letter. Vowel spellings longer than one
// character form the doubled-vowel table.
type Inventory struct {
	Unromanize []Substitution `json:"unromanize"`
	Consonant  []PhonemeEntry `json:"consonant"`
	Initial    []PhonemeEntry `json:"initial"`
	Vowel      []PhonemeEntry `json:"vowel"`
	Final      []PhonemeEntry `json:"final"`
	Tones      []ToneEntry    `json:"tones"`
}

// Onsets returns Initial followed by Consonant, in match order.
func (inv Inventory) Onsets() []PhonemeEntry {
	out := make([]PhonemeEntry, 0, len(inv.Initial)+len(inv.Consonant))
	out = append(out, inv.Initial...)
	return append(out, inv.Consonant...)
}

// Syllable is one parsed syllable. Vowel and Tone are always set; Initial
// and Final are nil when absent.
type Syllable struct {
	Initial *PhonemeEntry `json:"initial,omitempty"`
	Vowel   PhonemeEntry  `json:"vowel"`
	Final   *PhonemeEntry `json:"final,omitempty"`
	Tone    ToneEntry     `json:"tone"`
}

// Unmatched stands for text the syllable pattern could not segment. It
// renders as the invalid marker for both nucleus and tone.
var Unmatched = Syllable{Vowel: InvalidPhoneme, Tone: InvalidTone}

// Valid reports whether every part of s resolved against the inventory.
func (s Syllable) Valid() bool {
	if s.Initial != nil && !s.Initial.Valid() {
		return false
	}
	if s.Final != nil && !s.Final.Valid() {
		return false
	}
	return s.Vowel.Valid() && s.Tone.Valid()
}

// IPA renders the syllable as initial, vowel, final, tone.
func (s Syllable) IPA() string {
	var b strings.Builder
	if s.Initial != nil {
		b.WriteString(s.Initial.Phonetic)
	}
	b.WriteString(s.Vowel.Phonetic)
	if s.Final != nil {
		b.WriteString(s.Final.Phonetic)
	}
	b.WriteString(s.Tone.Phonetic)
	return b.String()
}

// Change is one ordered sound-change rule. Left and Right are non-consuming
// contexts; nil means unconstrained.
type Change struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Left  *string `json:"left,omitempty"`
	Right *string `json:"right,omitempty"`
}

// Context returns a pointer to s, for building Change literals.
func Context(s string) *string { return &s }

// Unromanize holds the literal substitutions applied around rule application.
type Unromanize struct {
	Pre  []Substitution `json:"pre"`
	Post []Substitution `json:"post"`
}

// SoundChangeConfig is the ordered rule list plus the vowel set used for the
// {V} placeholder. An empty Vowels falls back to the inventory vowels.
//
// With Resyllabify set, syllable dots are redrawn after the rules run: each
// syllable starts at the consonant before its vowel, and a dot falling inside
// one of Clusters (or a multi-letter onset of the inventory) moves before it.
type SoundChangeConfig struct {
	Vowels      string     `json:"vowels"`
	Clusters    []string   `json:"clusters,omitempty"`
	Resyllabify bool       `json:"resyllabify,omitempty"`
	Unromanize  Unromanize `json:"unromanize"`
	Changes     []Change   `json:"changes"`
}

// WithChanges returns a copy of c using changes instead of c.Changes.
func (c SoundChangeConfig) WithChanges(changes []Change) SoundChangeConfig {
	c.Changes = append([]Change(nil), changes...)
	return c
}
