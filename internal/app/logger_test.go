package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	t.Run("debug enables debug records", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger("debug", "text", out)

		logger.Debug("visible")
		assert.Contains(t, out.String(), "visible")
	})

	t.Run("warn suppresses info records", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger("warn", "text", out)

		logger.Info("hidden")
		logger.Warn("visible")
		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), "visible")
	})

	t.Run("unparseable level falls back to info", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger("loud", "text", out)

		logger.Debug("hidden")
		logger.Info("visible")
		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), "visible")
	})
}

func TestNewLogger_Format(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logger := newLogger("info", "json", out)
	logger.Info("structured")

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "structured", record["msg"])
}
