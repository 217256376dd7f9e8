package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/store"
	"github.com/roach88/soldict/internal/testutil"
)

// workspace is a temp directory holding the sample config and a database
// seeded with the sample lexicon.
type workspace struct {
	dir    string
	config string
	db     string
}

func newWorkspace(t *testing.T, entries ...lang.Entry) workspace {
	t.Helper()
	dir := t.TempDir()
	ws := workspace{
		dir:    dir,
		config: testutil.WriteConfig(t, dir),
		db:     filepath.Join(dir, "soldict.db"),
	}

	if entries == nil {
		entries = testutil.Lexicon()
	}
	s, err := store.Open(ws.db)
	require.NoError(t, err)
	_, err = s.Import(context.Background(), entries)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	return ws
}

// run executes the root command with the workspace's config and database.
func (ws workspace) run(args ...string) (string, error) {
	return execute(append([]string{"--config", ws.config, "--db", ws.db}, args...)...)
}

func execute(args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// decodeData unmarshals the data of a JSON success response into v.
func decodeData(t *testing.T, out string, v any) {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "ok", resp.Status, out)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

// decodeError unmarshals a JSON error response.
func decodeError(t *testing.T, out string) *CLIError {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	return resp.Error
}
