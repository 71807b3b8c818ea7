package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "rounds.log")

	logger, closer := newLogger(path, false)
	logger.Debug("hidden")
	logger.Info("run completed", "rounds", 8)
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), `"msg":"run completed"`)
	assert.Contains(t, string(b), `"rounds":8`)
	assert.NotContains(t, string(b), "hidden")
}

func TestNewLoggerDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.log")

	logger, closer := newLogger(path, true)
	logger.Debug("loaded config")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), `"level":"DEBUG"`)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
}
