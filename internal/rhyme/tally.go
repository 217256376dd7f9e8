package rhyme

import (
	"slices"
	"sort"

	"github.com/roach88/soldict/internal/lang"
)

// NeutralTone is the single tone bucket of a tone-insensitive table.
const NeutralTone = ""

// Table counts rhymes by vowel, tone and final, ignoring the initial.
// Axes follow inventory order; values outside the inventory (the invalid
// marker, for instance) are appended when first counted.
type Table struct {
	Vowels []string `json:"vowels"`
	Tones  []string `json:"tones"`
	Finals []string `json:"finals"`

	counts map[string]map[string]map[string]int
}

func newTable(vowels, tones, finals []string) *Table {
	t := &Table{counts: make(map[string]map[string]map[string]int)}
	for _, v := range vowels {
		t.Vowels = appendNew(t.Vowels, v)
	}
	for _, tone := range tones {
		t.Tones = appendNew(t.Tones, tone)
	}
	for _, f := range finals {
		t.Finals = appendNew(t.Finals, f)
	}
	return t
}

// Tally counts rhymes keyed by (vowel, tone, final). Every combination of
// inventory vowels, tones and finals (plus Null) is present with zero.
func Tally(rhymes []Rhyme, inv lang.Inventory) *Table {
	t := newTable(phonetics(inv.Vowel), tonePhonetics(inv.Tones), finals(inv))
	for _, r := range rhymes {
		t.add(r.Vowel, r.Tone, r.Final)
	}
	return t
}

// TallyNoTone counts rhymes keyed by (vowel, final), collapsing every tone
// into NeutralTone.
func TallyNoTone(rhymes []Rhyme, inv lang.Inventory) *Table {
	t := newTable(phonetics(inv.Vowel), []string{NeutralTone}, finals(inv))
	for _, r := range rhymes {
		t.add(r.Vowel, NeutralTone, r.Final)
	}
	return t
}

func (t *Table) add(vowel, tone, final string) {
	t.Vowels = appendNew(t.Vowels, vowel)
	t.Tones = appendNew(t.Tones, tone)
	t.Finals = appendNew(t.Finals, final)

	byTone, ok := t.counts[vowel]
	if !ok {
		byTone = make(map[string]map[string]int)
		t.counts[vowel] = byTone
	}
	byFinal, ok := byTone[tone]
	if !ok {
		byFinal = make(map[string]int)
		byTone[tone] = byFinal
	}
	byFinal[final]++
}

// Count returns the number of rhymes in a cell; unknown cells are zero.
func (t *Table) Count(vowel, tone, final string) int {
	return t.counts[vowel][tone][final]
}

// Total returns the sum of all cells.
func (t *Table) Total() int {
	n := 0
	for _, byTone := range t.counts {
		for _, byFinal := range byTone {
			for _, c := range byFinal {
				n += c
			}
		}
	}
	return n
}

// Cell returns the match that selects a cell. For a tone-insensitive table
// the tone is left unspecified.
func (t *Table) Cell(vowel, tone, final string) Match {
	m := Match{Vowel: vowel, Final: final}
	if len(t.Tones) != 1 || t.Tones[0] != NeutralTone {
		m[Tone] = tone
	}
	return m
}

// Count is one value of a frequency list.
type Count struct {
	Value string `json:"value"`
	N     int    `json:"n"`
}

// Tallies are per-slot phoneme frequencies across a lexicon.
type Tallies struct {
	Initial []Count `json:"initial"`
	Vowel   []Count `json:"vowel"`
	Final   []Count `json:"final"`
	Tone    []Count `json:"tone"`
}

type counter struct {
	order []string
	n     map[string]int
}

func seed(values []string) *counter {
	c := &counter{n: make(map[string]int)}
	for _, v := range values {
		if _, ok := c.n[v]; !ok {
			c.order = append(c.order, v)
			c.n[v] = 0
		}
	}
	return c
}

func (c *counter) inc(v string) {
	if _, ok := c.n[v]; !ok {
		c.order = append(c.order, v)
	}
	c.n[v]++
}

// sorted returns counts in descending order; ties keep first-seen order.
func (c *counter) sorted() []Count {
	out := make([]Count, len(c.order))
	for i, v := range c.order {
		out[i] = Count{Value: v, N: c.n[v]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	return out
}

func phonetics(entries []lang.PhonemeEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Phonetic
	}
	return out
}

func tonePhonetics(tones []lang.ToneEntry) []string {
	out := make([]string, len(tones))
	for i, t := range tones {
		out[i] = t.Phonetic
	}
	return out
}

func finals(inv lang.Inventory) []string {
	return append(phonetics(inv.Final), Null)
}

func appendNew(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
