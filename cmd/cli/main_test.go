package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	// --- Arrange ---
	// A lock file claiming a different ID for a shipped parameter is
	// guaranteed to fail the startup lock check inside app.NewApp().
	driftedLock := `
effect "turbulent" {
  param "seed" { id = 99 }
}
`
	tempDir := t.TempDir()
	lockPath := filepath.Join(tempDir, "schema.lock.hcl")
	err := os.WriteFile(lockPath, []byte(driftedLock), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-log-level", "error", "-lock", lockPath}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should recover the panic and return it as an error.
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "shipped with ID 99 but is now 1"), "The error message should contain the underlying drift.")
}

func TestRun_ShouldExit(t *testing.T) {
	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_DescribeAll(t *testing.T) {
	// --- Arrange ---
	args := []string{"-log-level", "error", "-output", "text"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Turbulent Noise (turbulent)")
	require.Contains(t, out.String(), "Cellular (cellular)")
	require.Contains(t, out.String(), "[3] directional_bias")
}
