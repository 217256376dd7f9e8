package morph

import (
	"strings"

	"github.com/roach88/soldict/internal/dictionary"
	"github.com/roach88/soldict/internal/lang"
)

// TerminalNode is a lexicon entry spelled exactly like the query.
type TerminalNode struct {
	Entry lang.Entry `json:"entry"`
}

// AffixNode is one stem+suffix analysis of a query.
type AffixNode struct {
	Original string         `json:"original"`
	Cut      string         `json:"cut"` // the query with the suffix removed
	Affix    Affix          `json:"affix"`
	Children []TerminalNode `json:"children"`
}

// Lookup is every analysis of a query.
type Lookup struct {
	Terminal []TerminalNode `json:"terminal"`
	Affix    []AffixNode    `json:"affix"`
}

// Empty reports whether the query has no analysis at all.
func (l Lookup) Empty() bool {
	return len(l.Terminal) == 0 && len(l.Affix) == 0
}

// Entries flattens l into the entries it mentions: terminals, then each
// affix followed by its stems.
func (l Lookup) Entries() []lang.Entry {
	var out []lang.Entry
	for _, t := range l.Terminal {
		out = append(out, t.Entry)
	}
	for _, a := range l.Affix {
		out = append(out, a.Affix.Entry)
		for _, c := range a.Children {
			out = append(out, c.Entry)
		}
	}
	return out
}

// terminals returns the entries spelled q, restricted to part when set.
func terminals(entries []lang.Entry, q string, part *lang.Part) []TerminalNode {
	out := []TerminalNode{}
	for _, e := range entries {
		if e.Sol != q {
			continue
		}
		if part != nil {
			p, ok := dictionary.PartOfExtra(e.Extra)
			if !ok || p != *part {
				continue
			}
		}
		out = append(out, TerminalNode{Entry: e})
	}
	return out
}

// Find analyzes query against entries: exact matches, then for each suffix
// whose raw form ends the query, the remainder's matches of the part the
// suffix attaches to. Suffixes whose remainder matches nothing are omitted.
// Results follow the order of entries and affixes.
func Find(entries []lang.Entry, affixes []Affix, query string) Lookup {
	l := Lookup{
		Terminal: terminals(entries, query, nil),
		Affix:    []AffixNode{},
	}

	for _, a := range affixes {
		// prefixes are recognized but not stripped
		if !a.IsSuffix || a.Raw == "" || !strings.HasSuffix(query, a.Raw) {
			continue
		}
		cut := strings.TrimSuffix(query, a.Raw)
		children := terminals(entries, cut, a.Applies)
		if len(children) == 0 {
			continue
		}
		l.Affix = append(l.Affix, AffixNode{Original: query, Cut: cut, Affix: a, Children: children})
	}

	return l
}

// PhraseLookup is the analysis of one word of a phrase.
type PhraseLookup struct {
	Word   string `json:"word"`
	Lookup Lookup `json:"lookup"`
}

// FindPhrase analyzes each space- or hyphen-separated word of phrase.
// Empty words are skipped.
func FindPhrase(entries []lang.Entry, affixes []Affix, phrase string) []PhraseLookup {
	out := []PhraseLookup{}
	words := strings.FieldsFunc(phrase, func(r rune) bool { return r == ' ' || r == '-' })
	for _, w := range words {
		out = append(out, PhraseLookup{Word: w, Lookup: Find(entries, affixes, w)})
	}
	return out
}
