package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope/internal/engine"
)

// TestDefault verifies the built-in configuration is valid and matches the
// engine defaults.
func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.EngineOptions()
	assert.Equal(t, engine.DefaultPageSize, opts.PageSize)
	assert.Equal(t, rune(','), opts.Delimiter)
}

// TestLoad_MissingFile verifies a missing config file yields defaults.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().View.PageSize, cfg.View.PageSize)
}

// TestLoad_YAMLFile verifies file values overlay defaults.
func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"view:\n  page_size: 25\nexport:\n  delimiter: \";\"\nlogging:\n  level: debug\n",
	), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.View.PageSize)
	assert.Equal(t, ";", cfg.Export.Delimiter)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
}

// TestLoad_MalformedFile verifies a parse failure is surfaced.
func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view: ["), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

// TestLoad_EnvOverrides verifies environment variables win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view:\n  page_size: 25\n"), 0600))

	t.Setenv(EnvPageSize, "10")
	t.Setenv(EnvDelimiter, "\t")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.View.PageSize)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, rune('\t'), cfg.EngineOptions().Delimiter)
}

// TestValidate verifies rejection of values the engine cannot accept.
func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.View.PageSize = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Export.Delimiter = ";;"
	assert.Error(t, cfg.Validate())

	cfg.Export.Delimiter = ""
	assert.Error(t, cfg.Validate())
}
