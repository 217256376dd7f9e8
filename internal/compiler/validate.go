package compiler

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/phonology"
)

// Validation error codes (E100-E199)
const (
	// Inventory errors (E101-E109)
	ErrEmptyClass       = "E101" // vowel or tone class is empty
	ErrEmptyPhoneme     = "E102" // empty romanization
	ErrDuplicatePhoneme = "E103" // romanization listed twice in one class
	ErrAmbiguousTone    = "E104" // two tones share a notation

	// Sound-change errors (E110-E119)
	ErrUnknownPlaceholder = "E110" // {Name} with no expansion
	ErrBadRule            = "E111" // pattern does not compile
	ErrEmptyRule          = "E112" // empty pattern with no context
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled configuration.
// Returns all errors found (does not fail-fast), except that the inventory
// stops at its first structural error.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if _, err := phonology.CompilePatterns(cfg.Inventory); err != nil {
		errs = append(errs, fromConfigError(err, "syllable"))
	}
	errs = append(errs, validateTones(cfg.Inventory.Tones)...)
	errs = append(errs, validateChanges(cfg.Inventory, cfg.SoundChange)...)

	return errs
}

// validateTones reports notations that more than one tone claims. Such
// markers parse to the invalid tone, so configured order cannot save them.
func validateTones(tones []lang.ToneEntry) []ValidationError {
	var errs []ValidationError

	diacritics := make(map[string]int)
	letters := make(map[string]int)
	for i, t := range tones {
		d := norm.NFD.String(t.Diacritic)
		if j, ok := diacritics[d]; ok {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("syllable.tones[%d].diacritic", i),
				Message: fmt.Sprintf("diacritic %q is also used by tones[%d]", t.Diacritic, j),
				Code:    ErrAmbiguousTone,
			})
		} else {
			diacritics[d] = i
		}

		if t.Letter == "" {
			continue
		}
		if j, ok := letters[t.Letter]; ok {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("syllable.tones[%d].letter", i),
				Message: fmt.Sprintf("letter %q is also used by tones[%d]", t.Letter, j),
				Code:    ErrAmbiguousTone,
			})
		} else {
			letters[t.Letter] = i
		}
	}

	return errs
}

// validateChanges compiles each rule on its own so that every bad rule is
// reported.
func validateChanges(inv lang.Inventory, sc lang.SoundChangeConfig) []ValidationError {
	var errs []ValidationError
	table := phonology.Placeholders(inv, sc.Vowels)

	for i, c := range sc.Changes {
		field := fmt.Sprintf("%s.changes[%d]", SectionSoundChange, i)

		if c.From == "" && c.Left == nil && c.Right == nil {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("rule %q matches between every character", phonology.FormatChange(c)),
				Code:    ErrEmptyRule,
			})
			continue
		}

		if _, err := phonology.NewEngine(sc.WithChanges([]lang.Change{c}), table); err != nil {
			ve := fromConfigError(err, field)
			ve.Field = field
			errs = append(errs, ve)
		}
	}

	return errs
}

func fromConfigError(err error, prefix string) ValidationError {
	var ce *phonology.ConfigError
	if !errors.As(err, &ce) {
		return ValidationError{Field: prefix, Message: err.Error(), Code: ErrBadRule}
	}

	field := prefix
	if ce.Field != "" {
		field = prefix + "." + ce.Field
	}
	return ValidationError{Field: field, Message: ce.Message, Code: codeFor(ce.Code)}
}

func codeFor(code phonology.ConfigErrorCode) string {
	switch code {
	case phonology.ErrCodeEmptyClass:
		return ErrEmptyClass
	case phonology.ErrCodeEmptyPhoneme:
		return ErrEmptyPhoneme
	case phonology.ErrCodeDuplicatePhoneme:
		return ErrDuplicatePhoneme
	case phonology.ErrCodeUnknownPlaceholder:
		return ErrUnknownPlaceholder
	default:
		return ErrBadRule
	}
}
