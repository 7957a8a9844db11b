package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, f, err := setupLogging(false, dir, zerolog.DebugLevel)
	require.NoError(t, err)
	assert.Nil(t, f)

	logger.Info().Msg("dropped")
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no log dir without debug")
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, f, err := setupLogging(true, dir, zerolog.InfoLevel)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	logger.Debug().Msg("below level")
	logger.Info().Str("k", "v").Msg("test log message")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test log message")
	assert.NotContains(t, string(data), "below level")
}

func TestSetupLoggingAppends(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		logger, f, err := setupLogging(true, dir, zerolog.InfoLevel)
		require.NoError(t, err)
		logger.Info().Int("run", i).Msg("run")
		require.NoError(t, f.Close())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run":0`)
	assert.Contains(t, string(data), `"run":1`)
}
