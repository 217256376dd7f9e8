package compiler

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Top-level sections of a phonology config.
const (
	SectionSyllable    = "syllable"
	SectionSoundChange = "soundChange"
)

// FieldCUE marks an error raised by CUE evaluation itself, such as a
// conflict between two files, rather than by a malformed field.
const FieldCUE = "cue"

// CompileError is a config error with the section and field it concerns and,
// when known, its source position.
type CompileError struct {
	Section string // SectionSyllable, SectionSoundChange, or empty
	Field   string // path within Section, e.g. "changes[2]"; FieldCUE for evaluation errors
	Message string
	Pos     token.Pos
}

// Path returns Section and Field joined with a dot, e.g.
// "soundChange.changes[2]". Evaluation errors have the path FieldCUE.
func (e *CompileError) Path() string {
	switch {
	case e.Section == "" || e.Field == FieldCUE:
		return e.Field
	case e.Field == "":
		return e.Section
	default:
		return e.Section + "." + e.Field
	}
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Path(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path(), e.Message)
}

// inSection tags a CompileError raised while compiling section. Other errors
// pass through.
func inSection(section string, err error) error {
	var ce *CompileError
	if errors.As(err, &ce) && ce.Section == "" {
		ce.Section = section
	}
	return err
}

// formatCUEError turns the first CUE error into a CompileError at its
// position. The CUE path, e.g. "soundChange.vowels", leads the message.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := cueerrors.Positions(first)
	if len(positions) == 0 {
		return err
	}

	ce := &CompileError{Field: FieldCUE, Message: first.Error(), Pos: positions[0]}
	if path := first.Path(); len(path) > 0 {
		switch path[0] {
		case SectionSyllable, SectionSoundChange:
			ce.Section = path[0]
		}
		if !strings.HasPrefix(ce.Message, strings.Join(path, ".")) {
			ce.Message = strings.Join(path, ".") + ": " + ce.Message
		}
	}
	return ce
}
