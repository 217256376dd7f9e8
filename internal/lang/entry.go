package lang

// Part is the part of speech inferred from an entry's extra tag.
type Part int

const (
	Noun Part = iota
	Verb
	Adjective
)

func (p Part) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	default:
		return "unknown"
	}
}

// ExtraAffix is the extra tag marking bound morphemes.
const ExtraAffix = "affix"

// Section is free-form content attached to an entry or meaning.
type Section struct {
	Hash    string `json:"hash" yaml:"hash,omitempty"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Meaning is one gloss of an entry. Prefix is the parenthetical marker split
// off the gloss text, e.g. "noun" for "(noun) house".
type Meaning struct {
	Hash     string    `json:"hash" yaml:"hash,omitempty"`
	Eng      string    `json:"eng" yaml:"eng"`
	Prefix   string    `json:"prefix,omitempty" yaml:"-"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Entry is a raw lexical record as delivered by the data store.
type Entry struct {
	Hash     string    `json:"hash" yaml:"hash,omitempty"`
	Sol      string    `json:"sol" yaml:"sol"`
	Extra    string    `json:"extra" yaml:"extra"`
	Tag      string    `json:"tag,omitempty" yaml:"tag,omitempty"`
	Meanings []Meaning `json:"meanings" yaml:"meanings"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Glosses returns the gloss text of each meaning, in order.
func (e Entry) Glosses() []string {
	out := make([]string, len(e.Meanings))
	for i, m := range e.Meanings {
		out[i] = m.Eng
	}
	return out
}
