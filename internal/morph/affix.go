package morph

import (
	"strings"

	"github.com/roach88/soldict/internal/dictionary"
	"github.com/roach88/soldict/internal/lang"
)

// Affix is a lexicon entry tagged as a bound morpheme.
type Affix struct {
	Entry    lang.Entry `json:"entry"`
	IsSuffix bool       `json:"isSuffix"` // spelled with a leading hyphen
	IsPrefix bool       `json:"isPrefix"` // spelled with a trailing hyphen
	Applies  *lang.Part `json:"applies,omitempty"`
	Raw      string     `json:"raw"` // spelling without the hyphen
}

// affixParts maps gloss markers to the part an affix attaches to, in
// precedence order.
var affixParts = []struct {
	marker string
	part   lang.Part
}{
	{"noun", lang.Noun},
	{"verb", lang.Verb},
	{"adjective", lang.Adjective},
}

// Affixes extracts every entry tagged "affix". The part an affix attaches
// to comes from the first of "(noun)", "(verb)", "(adjective)" that marks
// any of its glosses; an unmarked affix attaches to anything.
func Affixes(entries []lang.Entry) []Affix {
	out := []Affix{}
	for _, e := range entries {
		if e.Extra != lang.ExtraAffix {
			continue
		}

		a := Affix{
			Entry:    e,
			IsSuffix: strings.HasPrefix(e.Sol, "-"),
			IsPrefix: strings.HasSuffix(e.Sol, "-"),
			Applies:  applies(e),
		}
		switch {
		case a.IsSuffix:
			a.Raw = e.Sol[1:]
		case a.IsPrefix:
			a.Raw = e.Sol[:len(e.Sol)-1]
		default:
			a.Raw = e.Sol
		}
		out = append(out, a)
	}
	return out
}

func applies(e lang.Entry) *lang.Part {
	markers := make(map[string]bool, len(e.Meanings))
	for _, m := range e.Meanings {
		prefix := m.Prefix
		if prefix == "" {
			prefix, _ = dictionary.SplitPrefix(m.Eng)
		}
		markers[prefix] = true
	}
	for _, ap := range affixParts {
		if markers[ap.marker] {
			p := ap.part
			return &p
		}
	}
	return nil
}

// Kind describes how the affix attaches: "suffixed", "prefixed" or
// "affixed" when neither or both hyphens are present.
func (a Affix) Kind() string {
	switch {
	case a.IsSuffix && !a.IsPrefix:
		return "suffixed"
	case a.IsPrefix && !a.IsSuffix:
		return "prefixed"
	default:
		return "affixed"
	}
}
