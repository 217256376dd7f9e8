// Package testutil provides deterministic fixtures shared by package tests.
package testutil

import "github.com/roach88/soldict/internal/lang"

func pairs(kv ...string) []lang.PhonemeEntry {
	out := make([]lang.PhonemeEntry, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, lang.PhonemeEntry{Roman: kv[i], Phonetic: kv[i+1]})
	}
	return out
}

// MinimalInventory is the smallest useful inventory: k, a, n and one level
// tone written with no diacritic.
func MinimalInventory() lang.Inventory {
	return lang.Inventory{
		Initial: pairs("k", "k"),
		Vowel:   pairs("a", "a"),
		Final:   pairs("n", "n"),
		Tones:   []lang.ToneEntry{{Diacritic: "", Letter: "M", Phonetic: "˧"}},
	}
}

// Inventory is a full five-tone inventory with onset clusters, doubled-vowel
// spellings and an "ng" digraph.
func Inventory() lang.Inventory {
	return lang.Inventory{
		Unromanize: []lang.Substitution{{From: "ng", To: "ŋ"}},
		Consonant: pairs(
			"z", "ts", "c", "tsʰ", "b", "p", "p", "pʰ", "d", "t", "t", "tʰ",
			"g", "k", "k", "kʰ", "m", "m", "n", "n", "ŋ", "ŋ", "f", "f",
			"s", "s", "x", "sʰ", "h", "h", "l", "l", "j", "j", "w", "w", "r", "ɾ",
		),
		Initial: pairs("dj", "c", "tj", "cʰ", "nj", "ɲ", "sj", "ç"),
		Vowel:   pairs("a", "a", "e", "e", "i", "i", "o", "o", "u", "u", "ee", "ɛ", "oo", "ɔ"),
		Final:   pairs("p", "p", "t", "t", "k", "k", "m", "m", "n", "n", "ŋ", "ŋ", "s", "s"),
		Tones: []lang.ToneEntry{
			{Diacritic: "\u0300", Letter: "F", Phonetic: "˥˩"},
			{Diacritic: "\u0301", Letter: "R", Phonetic: "˩˥"},
			{Diacritic: "\u0304", Letter: "H", Phonetic: "˥"},
			{Diacritic: "\u030c", Letter: "L", Phonetic: "˩"},
			{Diacritic: "", Letter: "M", Phonetic: "˧"},
		},
	}
}

// Entry builds a lexical entry with one meaning per gloss.
func Entry(hash, sol, extra string, glosses ...string) lang.Entry {
	e := lang.Entry{Hash: hash, Sol: sol, Extra: extra}
	for i, g := range glosses {
		e.Meanings = append(e.Meanings, lang.Meaning{Hash: hash + "-m" + string(rune('1'+i)), Eng: g})
	}
	return e
}

// Lexicon is a small lexicon with a noun, verbs, an adjective, homographs
// and two suffixes.
func Lexicon() []lang.Entry {
	return []lang.Entry{
		Entry("e1", "lum", "V", "walk"),
		Entry("e2", "-ta", "affix", "(verb) iterate"),
		Entry("e3", "kan", "N", "house", "home"),
		Entry("e4", "kan", "V", "build"),
		Entry("e5", "-si", "affix", "(noun) diminutive"),
		Entry("e6", "djàŋ", "adj.", "bright"),
		Entry("e7", "lumta", "N", "stroll"),
		Entry("e8", "mamà", "N", "mother"),
	}
}
