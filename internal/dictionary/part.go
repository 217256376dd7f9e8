package dictionary

import (
	"strings"

	"github.com/roach88/soldict/internal/lang"
)

// PartOfExtra maps an entry's extra tag to its part of speech. Both the
// abbreviated tags ("N", "V", "adj.") and the full names are recognized.
func PartOfExtra(extra string) (lang.Part, bool) {
	switch extra {
	case "N", "noun":
		return lang.Noun, true
	case "V", "verb":
		return lang.Verb, true
	case "adj.", "adjective":
		return lang.Adjective, true
	default:
		return 0, false
	}
}

// SplitPrefix splits a leading parenthetical marker off a gloss:
// "(verb) iterate" is ("verb", "iterate"). A gloss without one is ("", gloss).
func SplitPrefix(gloss string) (prefix, rest string) {
	if !strings.HasPrefix(gloss, "(") {
		return "", gloss
	}
	inner, after, ok := strings.Cut(gloss[1:], ")")
	if !ok {
		return "", gloss
	}
	return strings.TrimSpace(inner), strings.TrimSpace(after)
}

// NormalizeMeanings fills each meaning's Prefix from its gloss and strips
// the marker from Eng. Meanings that already carry a Prefix are unchanged.
func NormalizeMeanings(e lang.Entry) lang.Entry {
	meanings := make([]lang.Meaning, len(e.Meanings))
	for i, m := range e.Meanings {
		if m.Prefix == "" {
			m.Prefix, m.Eng = SplitPrefix(m.Eng)
		}
		meanings[i] = m
	}
	e.Meanings = meanings
	return e
}
