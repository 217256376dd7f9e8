package rhyme

import (
	"iter"
	"sort"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/phonology"
)

// syllables yields the syllables of every word of a phrase.
func syllables(p *phonology.Parser, phrase string) iter.Seq[lang.Syllable] {
	return func(yield func(lang.Syllable) bool) {
		for _, w := range phonology.Words(phrase) {
			if w == phonology.Break {
				continue
			}
			for s := range p.Syllables(w) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// Collect returns the distinct syllables of a lexicon as rhymes, in order
// of first appearance. Two syllables are the same when their IPA is.
func Collect(entries []lang.Entry, p *phonology.Parser) []Rhyme {
	seen := make(map[string]bool)
	out := []Rhyme{}
	for _, e := range entries {
		for s := range syllables(p, e.Sol) {
			key := s.IPA()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, FromSyllable(s))
		}
	}
	return out
}

// Group is the entries that contain a matching syllable with one initial.
type Group struct {
	Initial string       `json:"initial"`
	Entries []lang.Entry `json:"entries"`
}

// Drill lists the entries with a syllable matching m, grouped by that
// syllable's initial in order of first appearance. An entry appears once per
// group however many of its syllables match.
func Drill(entries []lang.Entry, p *phonology.Parser, m Match) []Group {
	index := make(map[string]int)
	out := []Group{}
	for _, e := range entries {
		added := make(map[string]bool)
		for s := range syllables(p, e.Sol) {
			r := FromSyllable(s)
			if !Matches(r, m) || added[r.Initial] {
				continue
			}
			added[r.Initial] = true

			i, ok := index[r.Initial]
			if !ok {
				i = len(out)
				index[r.Initial] = i
				out = append(out, Group{Initial: r.Initial})
			}
			out[i].Entries = append(out[i].Entries, e)
		}
	}
	return out
}

// PhonemeTallies counts how often each initial, vowel, final and tone occurs
// across a lexicon. Inventory values are seeded at zero.
func PhonemeTallies(entries []lang.Entry, p *phonology.Parser) Tallies {
	inv := p.Inventory()
	initial := seed(phonetics(inv.Onsets()))
	vowel := seed(phonetics(inv.Vowel))
	final := seed(phonetics(inv.Final))
	tone := seed(tonePhonetics(inv.Tones))

	for _, e := range entries {
		for s := range syllables(p, e.Sol) {
			r := FromSyllable(s)
			initial.inc(r.Initial)
			vowel.inc(r.Vowel)
			final.inc(r.Final)
			tone.inc(r.Tone)
		}
	}

	return Tallies{
		Initial: initial.sorted(),
		Vowel:   vowel.sorted(),
		Final:   final.sorted(),
		Tone:    tone.sorted(),
	}
}

// PartTally counts entries by their extra field, sorted by value.
func PartTally(entries []lang.Entry) []Count {
	n := make(map[string]int)
	for _, e := range entries {
		n[e.Extra]++
	}
	out := make([]Count, 0, len(n))
	for v, c := range n {
		out = append(out, Count{Value: v, N: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
