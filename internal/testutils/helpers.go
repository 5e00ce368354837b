package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates name with content inside a fresh temporary directory.
// It returns the absolute path to the file and fails the test immediately on
// error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	// Output files are written next to the source, so tests inspect this dir.
	absDir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write fixture")
	return path
}
