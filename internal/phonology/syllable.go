package phonology

import (
	"iter"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/soldict/internal/lang"
)

// Parser segments romanized words into syllables.
type Parser struct {
	inv      lang.Inventory
	patterns *Patterns
	re       *regexp2.Regexp
}

// NewParser compiles inv into a syllable parser.
func NewParser(inv lang.Inventory) (*Parser, error) {
	patterns, err := CompilePatterns(inv)
	if err != nil {
		return nil, err
	}

	re, err := regexp2.Compile(patterns.Syllable(), regexp2.None)
	if err != nil {
		return nil, &ConfigError{Code: ErrCodeBadRule, Field: "syllable", Message: "syllable pattern does not compile", Err: err}
	}

	return &Parser{inv: inv, patterns: patterns, re: re}, nil
}

// Inventory returns the inventory the parser was built from.
func (p *Parser) Inventory() lang.Inventory {
	return p.inv
}

// Patterns returns the compiled matchers.
func (p *Parser) Patterns() *Patterns {
	return p.patterns
}

// Unromanize applies the configured substitutions in order, each to every
// occurrence, and decomposes the result to NFD.
func (p *Parser) Unromanize(word string) string {
	return norm.NFD.String(lang.Substitute(word, p.inv.Unromanize))
}

// Syllables returns the syllables of word as a lazy sequence. The sequence
// is finite and may be ranged over more than once. Morpheme boundaries ("-")
// are dropped before matching. Each run of text the pattern cannot match,
// before, between or after syllables, yields one lang.Unmatched syllable.
// An empty word yields nothing.
func (p *Parser) Syllables(word string) iter.Seq[lang.Syllable] {
	text := strings.ReplaceAll(p.Unromanize(word), Boundary, "")
	return func(yield func(lang.Syllable) bool) {
		// regexp2 indexes runes, not bytes
		n := utf8.RuneCountInString(text)
		end := 0
		m, err := p.re.FindStringMatch(text)
		for m != nil && err == nil {
			if m.Index > end && !yield(lang.Unmatched) {
				return
			}
			if !yield(p.build(m)) {
				return
			}
			end = m.Index + m.Length
			m, err = p.re.FindNextMatch(m)
		}
		if err != nil {
			slog.Warn("syllable match aborted", "word", word, "error", err)
		}
		if end < n {
			yield(lang.Unmatched)
		}
	}
}

// Syllabify returns the syllables of word. The result is never nil.
func (p *Parser) Syllabify(word string) []lang.Syllable {
	out := []lang.Syllable{}
	for s := range p.Syllables(word) {
		out = append(out, s)
	}
	return out
}

// Phonemic renders word as its syllables' IPA joined with ".".
func (p *Parser) Phonemic(word string) string {
	var parts []string
	for s := range p.Syllables(word) {
		parts = append(parts, s.IPA())
	}
	return strings.Join(parts, ".")
}

// IPA renders a romanized sentence as a slash-delimited phonemic
// transcription. Commas become the minor break "|", which is kept.
func (p *Parser) IPA(sentence string) string {
	words := Words(sentence)
	out := make([]string, len(words))
	for i, w := range words {
		if w == Break {
			out[i] = Break
			continue
		}
		out[i] = p.Phonemic(w)
	}
	return "/" + strings.Join(out, " ") + "/"
}

func (p *Parser) build(m *regexp2.Match) lang.Syllable {
	var syl lang.Syllable

	if text, ok := captured(m, "initial"); ok {
		e, found := p.patterns.onset(text)
		if !found {
			e = lang.InvalidPhoneme
		}
		syl.Initial = &e
	}

	v, _ := captured(m, "vowel")
	if double, ok := captured(m, "double"); ok {
		e, found := p.patterns.digraph(v + double)
		if !found {
			e = lang.InvalidPhoneme
		}
		syl.Vowel = e
	} else if e, found := p.patterns.vowel(v); found {
		syl.Vowel = e
	} else {
		syl.Vowel = lang.InvalidPhoneme
	}

	// the tone notation written with the vowel wins over a trailing letter
	marker, _ := captured(m, "tone")
	if marker == "" {
		marker, _ = captured(m, "letter")
	}
	syl.Tone = p.patterns.tone(marker)

	if text, ok := captured(m, "final"); ok {
		e, found := p.patterns.final(text)
		if !found {
			e = lang.InvalidPhoneme
		}
		syl.Final = &e
	}

	return syl
}

// captured returns a named group's text if it matched non-empty text.
func captured(m *regexp2.Match, name string) (string, bool) {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	s := g.String()
	return s, s != ""
}
