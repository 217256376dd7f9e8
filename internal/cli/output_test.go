package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonFormatter() (*OutputFormatter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &OutputFormatter{Format: "json", Writer: buf}, buf
}

func TestSuccessJSONKeepsIPAUnescaped(t *testing.T) {
	f, buf := jsonFormatter()

	require.NoError(t, f.Success(IPAResult{Input: "kan", Phonemic: "/kʰan˧/", Phonetic: "/xan˧/"}))

	assert.Contains(t, buf.String(), `"phonemic":"/kʰan˧/"`)

	var result IPAResult
	decodeData(t, buf.String(), &result)
	assert.Equal(t, "/xan˧/", result.Phonetic)
}

func TestFailJSON(t *testing.T) {
	f, buf := jsonFormatter()

	err := f.Fail(ExitCommandError, ErrCodeInvalidRules, "changes[0]: unknown placeholder {Q}")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "E009: changes[0]: unknown placeholder {Q}", err.Error())

	cliErr := decodeError(t, buf.String())
	assert.Equal(t, ErrCodeInvalidRules, cliErr.Code)
	assert.Equal(t, "changes[0]: unknown placeholder {Q}", cliErr.Message)
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{"quiet", false, "Error [E005]: database not found: sol.db\n"},
		{"verbose", true, "Error [E005]: database not found: sol.db\nDetails: [run soldict import first]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			f := &OutputFormatter{Format: "text", Writer: buf, Verbose: tt.verbose}

			require.NoError(t, f.Error(ErrCodeNotFound, "database not found: sol.db", []string{"run soldict import first"}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestErrorJSONDetails(t *testing.T) {
	f, buf := jsonFormatter()

	require.NoError(t, f.Error(ErrCodeLexicon, "lexicon is malformed", map[string]int{"line": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Nil(t, resp.Data)
	assert.Equal(t, map[string]any{"line": float64(3)}, resp.Error.Details)
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: diag, Verbose: true}

	f.VerboseLog("Derived %d of %d entries", 4, 8)
	assert.Equal(t, "Derived 4 of 8 entries\n", diag.String())
	assert.Empty(t, out.String(), "stdout stays parseable")

	f.Verbose = false
	f.VerboseLog("dropped")
	assert.NotContains(t, diag.String(), "dropped")

	f.ErrWriter = nil
	assert.Same(t, out, f.GetErrWriter())
}

func TestNewFormatterFollowsRootFlags(t *testing.T) {
	cmd := &cobra.Command{}
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(diag)

	f := newFormatter(&RootOptions{Format: "json", Verbose: true}, cmd)
	assert.True(t, f.JSON())
	assert.True(t, f.Verbose)
	assert.Same(t, out, f.Writer)
	assert.Same(t, diag, f.ErrWriter)

	assert.False(t, newFormatter(&RootOptions{Format: "text"}, cmd).JSON())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "2 scenario(s) failed")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))

	wrapped := WrapExitError(ExitCommandError, "open soldict.db", assert.AnError)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Contains(t, wrapped.Error(), "open soldict.db: ")
}

func TestMark(t *testing.T) {
	assert.Contains(t, Mark(true), "✓")
	assert.Contains(t, Mark(false), "✗")
}

func TestTable(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "aspiration and tone letters",
			rows: [][]string{{"kʰan˧", "1"}, {"ŋ", "22"}, {"a", "3", "last"}},
			want: "kʰan˧  1\nŋ      22\na      3   last\n",
		},
		{
			name: "combining grave is zero width",
			rows: [][]string{{"ma\u0300", "mother"}, {"kan", "house"}},
			want: "ma\u0300   mother\nkan  house\n",
		},
		{
			name: "empty last cell trims padding",
			rows: [][]string{{"kan", "kʰan˧ → xan˧"}, {"", "kʰan˧ → han˧"}},
			want: "kan  kʰan˧ → xan˧\n     kʰan˧ → han˧\n",
		},
		{
			name: "no rows",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			Table(buf, tt.rows)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
