package store

import (
	"path/filepath"
	"testing"

	"go.uber.org/goleak"

	"github.com/roach88/soldict/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// createTestStore opens a fresh store whose generated hashes are
// "test-0001", "test-0002", ...
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithHashGenerator(testutil.NewSequentialHashes("")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
