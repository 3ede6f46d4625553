package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

// runCLI executes the CLI and returns stdout, stderr and the exit code.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := Execute(args, stdout, stderr)
	return stdout.String(), stderr.String(), code
}

// tempDB returns a database path inside a fresh temp directory.
func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}
