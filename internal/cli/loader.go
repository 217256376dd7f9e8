package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue/token"

	"github.com/roach88/soldict/internal/compiler"
	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/phonology"
	"github.com/roach88/soldict/internal/store"
)

// LoadError represents an error that occurred while loading the config or
// the lexicon.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeBadArgument   = "E002" // Malformed argument or flag
	ErrCodeNoScenarios   = "E003" // No scenario files found
	ErrCodeLoadFailed    = "E004" // CUE load failed
	ErrCodeNotFound      = "E005" // Path not found
	ErrCodeBuildFailed   = "E006" // CUE build failed
	ErrCodeWriteFailed   = "E007" // Database write error
	ErrCodeInvalidConfig = "E008" // Config has the wrong shape
	ErrCodeInvalidRules  = "E009" // Inventory or rules do not compile
	ErrCodeDatabase      = "E010" // Database open or read error
	ErrCodeLexicon       = "E011" // Lexicon file is malformed
)

// LoadConfig loads and compiles the phonology config at path.
func LoadConfig(path string) (*compiler.Config, error) {
	cfg, err := compiler.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}

	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("config not found: %s", path)}
	}
	if errors.Is(err, compiler.ErrNoInstances) {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}
	}
	return nil, convertCompileError(err)
}

// LoadTranscriber loads the config at path and compiles its transcriber.
func LoadTranscriber(path string) (*phonology.Transcriber, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	tr, err := phonology.NewTranscriber(cfg.Inventory, cfg.SoundChange)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidRules, Message: err.Error()}
	}
	return tr, nil
}

// LoadEntries reads every entry from the database at path. A missing file is
// an error rather than a fresh empty lexicon.
func LoadEntries(ctx context.Context, path string, logger *slog.Logger) ([]lang.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeDatabase, Message: err.Error()}
	}

	s, err := store.Open(path, store.WithLogger(logger))
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDatabase, Message: err.Error()}
	}
	defer s.Close()

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDatabase, Message: err.Error()}
	}
	return entries, nil
}

// failLoad reports a load error and returns the command-error exit.
func failLoad(f *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		if loadErr.Pos.IsValid() {
			return f.Fail(ExitCommandError, loadErr.Code, fmt.Sprintf("%s:%d:%d: %s",
				loadErr.Pos.Filename(), loadErr.Pos.Line(), loadErr.Pos.Column(), loadErr.Message))
		}
		return f.Fail(ExitCommandError, loadErr.Code, loadErr.Message)
	}
	return f.Fail(ExitCommandError, ErrCodeGeneric, err.Error())
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		msg := compileErr.Message
		if compileErr.Field != compiler.FieldCUE {
			msg = compileErr.Path() + ": " + msg
		}
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Message: msg,
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}
}

// MapFieldToErrorCode maps a compiler error field to an error code.
func MapFieldToErrorCode(field string) string {
	switch field {
	case compiler.FieldCUE:
		return ErrCodeBuildFailed
	case "":
		return ErrCodeGeneric
	default:
		return ErrCodeInvalidConfig
	}
}
