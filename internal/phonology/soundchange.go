package phonology

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/soldict/internal/lang"
)

// rule is one compiled Change.
type rule struct {
	change lang.Change
	re     *regexp2.Regexp
}

// Engine applies an ordered list of sound changes.
//
// Rules run strictly in order. Each rule rewrites every non-overlapping match
// in the current string before the next rule sees it.
type Engine struct {
	cfg   lang.SoundChangeConfig
	rules []rule

	// set when cfg.Resyllabify is
	syllable *regexp2.Regexp
	clusters []string
}

// NewEngine compiles every change in cfg, expanding class placeholders from
// table. The first rule that fails to compile is reported as a *ConfigError.
func NewEngine(cfg lang.SoundChangeConfig, table PlaceholderTable) (*Engine, error) {
	cfg = cfg.WithChanges(cfg.Changes)
	rules := make([]rule, 0, len(cfg.Changes))
	for i, c := range cfg.Changes {
		re, err := compileChange(c, table)
		if err != nil {
			var ce *ConfigError
			if errors.As(err, &ce) {
				ce.Field = fmt.Sprintf("changes[%d]", i)
				return nil, ce
			}
			return nil, &ConfigError{
				Code:    ErrCodeBadRule,
				Field:   fmt.Sprintf("changes[%d]", i),
				Message: fmt.Sprintf("rule %q does not compile", FormatChange(c)),
				Err:     err,
			}
		}
		slog.Debug("sound change compiled", "index", i, "rule", FormatChange(c), "pattern", re.String())
		rules = append(rules, rule{change: c, re: re})
	}

	e := &Engine{cfg: cfg, rules: rules}
	if cfg.Resyllabify {
		re, err := syllablePattern(table)
		if err != nil {
			return nil, err
		}
		e.syllable = re
		e.addClusters(cfg.Clusters)
	}
	return e, nil
}

// syllablePattern matches a vowel and the fewest following non-vowels that
// leave at most one non-vowel before the next vowel. A tone mark stays with
// the vowel before it.
func syllablePattern(table PlaceholderTable) (*regexp2.Regexp, error) {
	v, ok := table["V"]
	if !ok {
		return nil, &ConfigError{Code: ErrCodeEmptyClass, Field: "vowels", Message: "resyllabify needs a vowel class"}
	}
	nonV := "(?:(?!" + v + ").)"
	pattern := v + nonV + "*?"
	if t, ok := table["T"]; ok {
		pattern += "(?!" + t + ")"
	}
	re, err := regexp2.Compile(pattern+"(?="+nonV+"?"+v+")", regexp2.None)
	if err != nil {
		return nil, &ConfigError{Code: ErrCodeBadRule, Field: "vowels", Message: "syllable boundary pattern does not compile", Err: err}
	}
	return re, nil
}

// addClusters merges clusters into the engine's list, longest first.
func (e *Engine) addClusters(clusters []string) {
	for _, c := range clusters {
		c = norm.NFC.String(c)
		if utf8.RuneCountInString(c) > 1 && !slices.Contains(e.clusters, c) {
			e.clusters = append(e.clusters, c)
		}
	}
	sort.SliceStable(e.clusters, func(i, j int) bool {
		return utf8.RuneCountInString(e.clusters[i]) > utf8.RuneCountInString(e.clusters[j])
	})
}

// syllabify redraws the syllable dots of word. Words carrying the invalid
// marker are left alone.
func (e *Engine) syllabify(word string) string {
	if e.syllable == nil || strings.Contains(word, lang.InvalidMark) {
		return word
	}

	out, err := e.syllable.ReplaceFunc(strings.ReplaceAll(word, ".", ""), func(m regexp2.Match) string {
		return m.String() + "."
	}, -1, -1)
	if err != nil {
		slog.Warn("resyllabify skipped", "word", word, "error", err)
		return word
	}

	for _, c := range e.clusters {
		r := []rune(c)
		for i := 1; i < len(r); i++ {
			out = strings.ReplaceAll(out, string(r[:i])+"."+string(r[i:]), "."+c)
		}
	}
	return out
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() lang.SoundChangeConfig {
	return e.cfg
}

// compileChange builds (?<=left)from(?=right) and expands placeholders.
func compileChange(c lang.Change, table PlaceholderTable) (*regexp2.Regexp, error) {
	pattern := norm.NFC.String(c.From)
	if c.Left != nil {
		pattern = "(?<=" + norm.NFC.String(*c.Left) + ")" + pattern
	}
	if c.Right != nil {
		pattern = pattern + "(?=" + norm.NFC.String(*c.Right) + ")"
	}

	expanded, err := ExpandPlaceholders(pattern, table)
	if err != nil {
		return nil, err
	}
	return regexp2.Compile(expanded, regexp2.None)
}

// Apply runs the pre substitutions, every rule, the syllable redraw when
// configured, then the post substitutions.
func (e *Engine) Apply(word string) string {
	word = lang.Substitute(norm.NFC.String(word), e.cfg.Unromanize.Pre)
	for _, r := range e.rules {
		word = e.rewrite(r, word)
	}
	return lang.Substitute(e.syllabify(word), e.cfg.Unromanize.Post)
}

// Steps returns the derivation of word: the state before any rule, every
// state a rule changed, and the final state. No two consecutive steps are
// equal and the last step equals Apply(word).
func (e *Engine) Steps(word string) []string {
	word = lang.Substitute(norm.NFC.String(word), e.cfg.Unromanize.Pre)

	steps := []string{word}
	last := word
	for _, r := range e.rules {
		word = e.rewrite(r, word)
		if word != last {
			steps = append(steps, word)
		}
		last = word
	}
	if word != steps[len(steps)-1] {
		steps = append(steps, word)
	}

	// the syllable redraw and post substitutions may merge neighbouring states
	out := steps[:0:0]
	for _, s := range steps {
		s = lang.Substitute(e.syllabify(s), e.cfg.Unromanize.Post)
		if len(out) > 0 && out[len(out)-1] == s {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (e *Engine) rewrite(r rule, word string) string {
	out, err := r.re.Replace(word, r.change.To, -1, -1)
	if err != nil {
		slog.Warn("sound change skipped", "rule", FormatChange(r.change), "word", word, "error", err)
		return word
	}
	return out
}

// WordDerivation is the derivation of one word, or a break marker.
type WordDerivation struct {
	Input  string   `json:"input"`
	Output string   `json:"output"`
	Steps  []string `json:"steps"`
	Break  bool     `json:"break,omitempty"`
}

// Changed reports whether any rule altered the word.
func (w WordDerivation) Changed() bool {
	return len(w.Steps) > 1
}

// Word lowercases word and derives it.
func (e *Engine) Word(word string) WordDerivation {
	// a Caser is stateful, so one is made per call
	word = cases.Lower(language.Und).String(word)
	steps := e.Steps(word)
	return WordDerivation{Input: word, Output: steps[len(steps)-1], Steps: steps}
}

// SentenceDerivation is a sentence derived word by word.
type SentenceDerivation struct {
	Words []WordDerivation `json:"words"`
}

// Output renders the derived sentence in slash notation.
func (s SentenceDerivation) Output() string {
	out := make([]string, len(s.Words))
	for i, w := range s.Words {
		out[i] = w.Output
	}
	return "/" + strings.Join(out, " ") + "/"
}

// Changed reports whether any rule altered any word.
func (s SentenceDerivation) Changed() bool {
	return slices.ContainsFunc(s.Words, WordDerivation.Changed)
}

// SameSteps reports whether s and o passed through identical steps, word by
// word.
func (s SentenceDerivation) SameSteps(o SentenceDerivation) bool {
	return slices.EqualFunc(s.Words, o.Words, func(a, b WordDerivation) bool {
		return slices.Equal(a.Steps, b.Steps)
	})
}

// Sentence derives every word of a phonemic sentence independently. Commas
// become the break marker, which passes through unchanged.
func (e *Engine) Sentence(sentence string) SentenceDerivation {
	words := Words(sentence)
	out := SentenceDerivation{Words: make([]WordDerivation, 0, len(words))}
	for _, w := range words {
		if w == Break {
			out.Words = append(out.Words, breakDerivation())
			continue
		}
		out.Words = append(out.Words, e.Word(w))
	}
	return out
}

func breakDerivation() WordDerivation {
	return WordDerivation{Input: Break, Output: Break, Steps: []string{Break}, Break: true}
}
