// ABOUTME: Tests for configuration loading.
// ABOUTME: Covers defaults, YAML parsing, env overrides and validation.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nsamples: false\nword_wrap: 100\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Samples)
	assert.Equal(t, 100, cfg.WordWrap)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NOTEPAD_LOG_FORMAT", "json")
	t.Setenv("NOTEPAD_SAMPLES", "false")
	t.Setenv("NOTEPAD_WORD_WRAP", "60")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Samples)
	assert.Equal(t, 60, cfg.WordWrap)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("NOTEPAD_SAMPLES", "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.LogFile = "/tmp/notepad.log"

	require.NoError(t, SaveConfig(cfg, path))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "notepad", "config.yaml"), ConfigPath())
}

func TestLogLevels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "disabled"} {
		cfg := DefaultConfig()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), level)
	}

	cfg := DefaultConfig()
	cfg.LogLevel = "fatal"
	assert.Error(t, cfg.Validate())
}
