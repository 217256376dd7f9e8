package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/soldict/internal/compiler"
)

const badConfig = `
syllable: {
	initial: [["k", "k"]]
	vowel: [["a", "a"], ["b", "b"]]
	tones: [["", "M", "˧"], ["", "L", "˩"]]
}
soundChange: changes: [
	["a", "b"],
	["b", "a"],
	"{Q} -> x",
]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sol.cue")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateValidConfig(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run("validate")
	require.NoError(t, err)
	assert.Equal(t, "✓ Config valid\n", out)
}

func TestValidateValidConfigJSON(t *testing.T) {
	ws := newWorkspace(t)

	out, err := ws.run("--format", "json", "validate")
	require.NoError(t, err)

	var result ValidationResult
	decodeData(t, out, &result)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateReportsEveryError(t *testing.T) {
	path := writeConfig(t, badConfig)

	out, err := execute("--config", path, "validate")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "validation failed")

	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, compiler.ErrAmbiguousTone)
	assert.Contains(t, out, compiler.ErrUnknownPlaceholder)
	assert.Contains(t, out, "warning: ")
}

func TestValidateJSONErrors(t *testing.T) {
	path := writeConfig(t, badConfig)

	out, err := execute("--config", path, "--format", "json", "validate")
	require.Error(t, err)

	cliErr := decodeError(t, out)
	assert.Equal(t, compiler.ErrAmbiguousTone, cliErr.Code)
}

func TestValidateMissingConfig(t *testing.T) {
	out, err := execute("--config", filepath.Join(t.TempDir(), "missing.cue"), "validate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "not found")
}

func TestValidateConflictingConfig(t *testing.T) {
	path := writeConfig(t, "syllable: vowel: 1\nsyllable: vowel: 2\n")

	out, err := execute("--config", path, "validate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeBuildFailed)
	assert.Contains(t, out, "sol.cue:")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.cue"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)

	_, err = LoadConfig(writeConfig(t, `soundChange: changes: []`))
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeInvalidConfig, loadErr.Code)
	assert.Contains(t, loadErr.Error(), "syllable is required")
}

func TestMapFieldToErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeBuildFailed, MapFieldToErrorCode("cue"))
	assert.Equal(t, ErrCodeInvalidConfig, MapFieldToErrorCode("syllable.vowel"))
	assert.Equal(t, ErrCodeGeneric, MapFieldToErrorCode(""))
}
