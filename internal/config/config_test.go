package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataFile = "/tmp/elsewhere.db"
	cfg.Appearance.Theme = "terminal"
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	data, err := os.ReadFile(ConfigPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `data_file = "/tmp/elsewhere.db"`)
	assert.Contains(t, string(data), "[log]")
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("[general\n"), 0o600))

	cfg, err := Load()
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "defaults returned alongside the error")
}

func TestDataFileResolution(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv(EnvDataFile, "")

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(dataHome, "budgetboard", "budget.db"), DataFile(cfg))

	cfg.General.DataFile = "/from/config.db"
	assert.Equal(t, "/from/config.db", DataFile(cfg))

	t.Setenv(EnvDataFile, "/from/env.db")
	assert.Equal(t, "/from/env.db", DataFile(cfg))
}

func TestLogLevelOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg := DefaultConfig()
	assert.Equal(t, "info", LogLevel(cfg))

	t.Setenv(EnvLogLevel, "debug")
	assert.Equal(t, "debug", LogLevel(cfg))
}
