package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.Effect)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.WriteLock)
}

func TestParse_EffectArgument(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"turbulent"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "turbulent", cfg.Effect)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "unknown flag",
			args:    []string{"--this-is-not-a-valid-flag"},
			wantMsg: "flag provided but not defined",
		},
		{
			name:    "invalid output",
			args:    []string{"-output", "xml"},
			wantMsg: "invalid output",
		},
		{
			name:    "invalid log-format",
			args:    []string{"-log-format", "csv"},
			wantMsg: "invalid log-format",
		},
		{
			name:    "invalid log-level",
			args:    []string{"-log-level", "loud"},
			wantMsg: "invalid log-level",
		},
		{
			name:    "too many arguments",
			args:    []string{"turbulent", "cellular"},
			wantMsg: "at most one EFFECT argument",
		},
		{
			name:    "write-lock without lock path",
			args:    []string{"-write-lock"},
			wantMsg: "-write-lock requires -lock",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			_, _, err := Parse(tc.args, out)
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "errors from Parse should be ExitError")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("PIXELGRIDGO_LOG_LEVEL", "debug")
	t.Setenv("PIXELGRIDGO_LOCK", "schemas/shipped.lock.hcl")

	cfg, _, err := Parse([]string{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "schemas/shipped.lock.hcl", cfg.LockPath)
}

func TestParse_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("PIXELGRIDGO_LOG_LEVEL", "debug")

	cfg, _, err := Parse([]string{"-log-level", "warn"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
