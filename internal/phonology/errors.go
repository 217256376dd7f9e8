package phonology

import (
	"errors"
	"fmt"
)

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeEmptyClass indicates a required phoneme class (vowel, tone) is empty.
	ErrCodeEmptyClass ConfigErrorCode = "EMPTY_CLASS"

	// ErrCodeEmptyPhoneme indicates an empty romanization outside the tone class.
	ErrCodeEmptyPhoneme ConfigErrorCode = "EMPTY_PHONEME"

	// ErrCodeDuplicatePhoneme indicates a romanization listed twice in one class.
	ErrCodeDuplicatePhoneme ConfigErrorCode = "DUPLICATE_PHONEME"

	// ErrCodeUnknownPlaceholder indicates a {Name} placeholder with no expansion.
	ErrCodeUnknownPlaceholder ConfigErrorCode = "UNKNOWN_PLACEHOLDER"

	// ErrCodeBadRule indicates a rule whose pattern does not compile.
	ErrCodeBadRule ConfigErrorCode = "BAD_RULE"
)

// ConfigError is returned when a configuration cannot be compiled.
// The engine refuses to build rather than produce silently wrong matchers.
type ConfigError struct {
	Code    ConfigErrorCode
	Field   string // e.g. "vowel", "changes[2].from"
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a *ConfigError, optionally with one of
// the given codes. Uses errors.As to handle wrapped errors.
func IsConfigError(err error, codes ...ConfigErrorCode) bool {
	var ce *ConfigError
	if !errors.As(err, &ce) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, c := range codes {
		if ce.Code == c {
			return true
		}
	}
	return false
}
