package phonology

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/soldict/internal/lang"
)

// never is a pattern that cannot match; it stands in for an empty class.
const never = "(?!)"

// Patterns holds the matchers compiled from an inventory. Each field is a
// non-capturing alternation in configured order, over NFD spellings.
type Patterns struct {
	Onset      string // initial clusters, then plain consonants
	Vowel      string // single-character vowel spellings only
	Final      string
	Tone       string // diacritic, letter and phonetic notation of every tone
	ToneLetter string

	onsets   map[string]lang.PhonemeEntry
	vowels   map[string]lang.PhonemeEntry
	digraphs map[string]lang.PhonemeEntry
	finals   map[string]lang.PhonemeEntry
	tones    []lang.ToneEntry
}

// CompilePatterns validates inv and builds its matchers.
//
// Vowel and tone classes must be non-empty. Romanizations must be non-empty
// (except tone notations) and unique within their class.
func CompilePatterns(inv lang.Inventory) (*Patterns, error) {
	if len(inv.Vowel) == 0 {
		return nil, &ConfigError{Code: ErrCodeEmptyClass, Field: "vowel", Message: "at least one vowel is required"}
	}
	if len(inv.Tones) == 0 {
		return nil, &ConfigError{Code: ErrCodeEmptyClass, Field: "tones", Message: "at least one tone is required"}
	}

	classes := []struct {
		name    string
		entries []lang.PhonemeEntry
	}{
		{"consonant", inv.Consonant},
		{"initial", inv.Initial},
		{"vowel", inv.Vowel},
		{"final", inv.Final},
	}
	for _, c := range classes {
		if err := checkClass(c.name, c.entries); err != nil {
			return nil, err
		}
	}

	p := &Patterns{
		onsets:   indexByRoman(inv.Onsets()),
		vowels:   make(map[string]lang.PhonemeEntry),
		digraphs: make(map[string]lang.PhonemeEntry),
		finals:   indexByRoman(inv.Final),
		tones:    append([]lang.ToneEntry(nil), inv.Tones...),
	}

	var single []lang.PhonemeEntry
	for _, v := range inv.Vowel {
		key := norm.NFC.String(v.Roman)
		if utf8.RuneCountInString(key) == 1 {
			single = append(single, v)
			p.vowels[key] = v
		} else {
			p.digraphs[key] = v
		}
	}
	if len(single) == 0 {
		return nil, &ConfigError{Code: ErrCodeEmptyClass, Field: "vowel", Message: "at least one single-character vowel is required"}
	}

	p.Onset = alternation(romans(inv.Onsets()))
	p.Vowel = alternation(romans(single))
	p.Final = alternation(romans(inv.Final))

	var toneForms, letters []string
	for _, t := range inv.Tones {
		toneForms = append(toneForms, t.Diacritic, t.Letter, t.Phonetic)
		letters = append(letters, t.Letter)
	}
	p.Tone = alternation(toneForms)
	p.ToneLetter = alternation(nonEmpty(letters))

	return p, nil
}

// Syllable returns the composite syllable pattern.
//
// Groups: initial, vowel, tone, double (a repeat of the vowel letter), letter
// (a trailing tone letter) and final. A syllable ends at end of input or
// where the next onset begins.
func (p *Patterns) Syllable() string {
	return fmt.Sprintf(`(?<initial>%s)?(?<vowel>%s)(?<tone>%s)(?<double>\k<vowel>)?(?<letter>%s)?(?<final>%s)?(?=$|%s)`,
		p.Onset, p.Vowel, p.Tone, p.ToneLetter, p.Final, p.Onset)
}

// onset resolves a matched onset spelling.
func (p *Patterns) onset(text string) (lang.PhonemeEntry, bool) {
	e, ok := p.onsets[norm.NFC.String(text)]
	return e, ok
}

func (p *Patterns) final(text string) (lang.PhonemeEntry, bool) {
	e, ok := p.finals[norm.NFC.String(text)]
	return e, ok
}

func (p *Patterns) vowel(text string) (lang.PhonemeEntry, bool) {
	e, ok := p.vowels[norm.NFC.String(text)]
	return e, ok
}

func (p *Patterns) digraph(text string) (lang.PhonemeEntry, bool) {
	e, ok := p.digraphs[norm.NFC.String(text)]
	return e, ok
}

// tone resolves a tone marker. Exactly one configured tone must carry it.
func (p *Patterns) tone(marker string) lang.ToneEntry {
	marker = norm.NFD.String(marker)
	var found []lang.ToneEntry
	for _, t := range p.tones {
		if norm.NFD.String(t.Diacritic) == marker || t.Letter == marker || t.Phonetic == marker {
			found = append(found, t)
		}
	}
	if len(found) != 1 {
		return lang.InvalidTone
	}
	return found[0]
}

// PlaceholderTable maps placeholder names (V, C, T) to pattern fragments.
type PlaceholderTable map[string]string

// Placeholders builds the class table for sound-change rules.
//
// {V} is a character class over vowels when it is non-empty, otherwise the
// inventory's vowel phonetics. {C} covers every consonant phonetic value and
// {T} every tone phonetic mark, longest first so that "tsʰ" wins over "ts".
func Placeholders(inv lang.Inventory, vowels string) PlaceholderTable {
	table := PlaceholderTable{}

	if vowels != "" {
		table["V"] = "[" + escapeClass(norm.NFC.String(vowels)) + "]"
	} else {
		table["V"] = longestFirst(phonetics(inv.Vowel))
	}

	consonants := phonetics(inv.Onsets())
	consonants = append(consonants, phonetics(inv.Final)...)
	table["C"] = longestFirst(consonants)

	var marks []string
	for _, t := range inv.Tones {
		marks = append(marks, t.Phonetic)
	}
	table["T"] = longestFirst(marks)

	return table
}

var (
	// an escape, or a brace run that may be missing its closing brace
	placeholderRe = regexp2.MustCompile(`\\.|\{[^{}]*\}?`, regexp2.None)
	quantifierRe  = regexp2.MustCompile(`^\{\d+(,\d*)?\}$`, regexp2.None)
)

// ExpandPlaceholders replaces every {Name} in pattern with its fragment from
// table. Numeric quantifiers such as {2} or {1,3} and escaped braces are left
// alone. Any other brace, an unknown name, an empty {} or an unclosed {V, is
// a configuration error, never a silent no-op.
func ExpandPlaceholders(pattern string, table PlaceholderTable) (string, error) {
	var bad []string
	out, err := placeholderRe.ReplaceFunc(pattern, func(m regexp2.Match) string {
		text := m.String()
		if strings.HasPrefix(text, `\`) {
			return text
		}
		if ok, _ := quantifierRe.MatchString(text); ok {
			return text
		}
		if strings.HasSuffix(text, "}") {
			if frag, ok := table[text[1:len(text)-1]]; ok {
				return frag
			}
		}
		bad = append(bad, text)
		return text
	}, -1, -1)
	if err != nil {
		return "", err
	}
	if len(bad) > 0 {
		return "", &ConfigError{
			Code:    ErrCodeUnknownPlaceholder,
			Message: fmt.Sprintf("unknown placeholder %s", strings.Join(bad, ", ")),
		}
	}
	return out, nil
}

func checkClass(name string, entries []lang.PhonemeEntry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		key := norm.NFC.String(e.Roman)
		if key == "" {
			return &ConfigError{Code: ErrCodeEmptyPhoneme, Field: fmt.Sprintf("%s[%d]", name, i), Message: "romanization must not be empty"}
		}
		if seen[key] {
			return &ConfigError{Code: ErrCodeDuplicatePhoneme, Field: fmt.Sprintf("%s[%d]", name, i), Message: fmt.Sprintf("%q is listed twice", e.Roman)}
		}
		seen[key] = true
	}
	return nil
}

func indexByRoman(entries []lang.PhonemeEntry) map[string]lang.PhonemeEntry {
	m := make(map[string]lang.PhonemeEntry, len(entries))
	for _, e := range entries {
		key := norm.NFC.String(e.Roman)
		if _, ok := m[key]; !ok {
			m[key] = e
		}
	}
	return m
}

func romans(entries []lang.PhonemeEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Roman
	}
	return out
}

func phonetics(entries []lang.PhonemeEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Phonetic
	}
	return out
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// alternation builds a non-capturing group over the NFD-normalized, escaped
// alternatives in the given order. Duplicates keep their first position.
func alternation(alts []string) string {
	if len(alts) == 0 {
		return never
	}
	seen := make(map[string]bool, len(alts))
	parts := make([]string, 0, len(alts))
	for _, a := range alts {
		a = norm.NFD.String(a)
		if seen[a] {
			continue
		}
		seen[a] = true
		parts = append(parts, regexp2.Escape(a))
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

// longestFirst is alternation with longer alternatives tried first; ties
// keep configured order. Empty alternatives are dropped.
func longestFirst(alts []string) string {
	alts = nonEmpty(alts)
	sorted := make([]string, len(alts))
	for i, a := range alts {
		sorted[i] = norm.NFC.String(a)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})
	if len(sorted) == 0 {
		return never
	}
	seen := make(map[string]bool, len(sorted))
	parts := make([]string, 0, len(sorted))
	for _, a := range sorted {
		if seen[a] {
			continue
		}
		seen[a] = true
		parts = append(parts, regexp2.Escape(a))
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

func escapeClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
