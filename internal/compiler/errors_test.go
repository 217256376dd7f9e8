package compiler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileErrorPath(t *testing.T) {
	tests := []struct {
		name string
		err  CompileError
		want string
	}{
		{"field only", CompileError{Field: "vowel"}, "vowel"},
		{"section and field", CompileError{Section: SectionSoundChange, Field: "changes[2]"}, "soundChange.changes[2]"},
		{"section only", CompileError{Section: SectionSyllable}, "syllable"},
		{"evaluation error", CompileError{Section: SectionSyllable, Field: FieldCUE}, "cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Path())
		})
	}
}

func TestCompileErrorString(t *testing.T) {
	err := &CompileError{Field: "vowel", Message: "at least one vowel is required"}
	assert.Equal(t, "vowel: at least one vowel is required", err.Error())

	err.Section = SectionSyllable
	assert.Equal(t, "syllable.vowel: at least one vowel is required", err.Error())
}

func TestInSection(t *testing.T) {
	err := inSection(SectionSoundChange, fmt.Errorf("compile: %w", &CompileError{Field: "changes[0]", Message: "bad"}))
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "soundChange.changes[0]", ce.Path())

	// an already tagged error keeps its section
	tagged := &CompileError{Section: SectionSyllable, Field: "vowel"}
	assert.Equal(t, "syllable.vowel", inSection(SectionSoundChange, tagged).(*CompileError).Path())

	plain := errors.New("boom")
	assert.Same(t, plain, inSection(SectionSyllable, plain))
}

func TestCompileTagsSection(t *testing.T) {
	tests := []struct {
		name string
		src  string
		path string
	}{
		{"inventory", `syllable: { tones: [["", "M", "˧"]] }`, "syllable.vowel"},
		{"sound change", `syllable: { vowel: [["a", "a"]], tones: [["", "M", "˧"]] }
soundChange: changes: [["k"]]`, "soundChange.changes[0]"},
		{"resyllabify flag", `syllable: { vowel: [["a", "a"]], tones: [["", "M", "˧"]] }
soundChange: resyllabify: "yes"`, "soundChange.resyllabify"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(compileCUE(t, tt.src))
			require.Error(t, err)

			var ce *CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.path, ce.Path())
		})
	}
}
