// Package config loads tablescope configuration from a YAML file, an
// optional .env file, and TABLESCOPE_* environment variables, in that
// precedence order (env wins). The engine itself never reads this package;
// it receives an explicit engine.Options value built from here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tablescope/tablescope/internal/engine"
)

// Environment variable names recognized as overrides.
const (
	EnvPageSize  = "TABLESCOPE_PAGE_SIZE"
	EnvDelimiter = "TABLESCOPE_DELIMITER"
	EnvLogLevel  = "TABLESCOPE_LOG_LEVEL"
	EnvLogFormat = "TABLESCOPE_LOG_FORMAT"
	EnvLogFile   = "TABLESCOPE_LOG_FILE"
)

// ViewConfig controls the viewer's chunking policy.
type ViewConfig struct {
	// PageSize is the number of rows per page.
	PageSize int `yaml:"page_size"`

	// Locale selects the number/date rendering locale (BCP 47 tag).
	Locale string `yaml:"locale"`
}

// ExportConfig controls the CSV export policy.
type ExportConfig struct {
	// Delimiter is the field separator, a single character.
	Delimiter string `yaml:"delimiter"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the full tablescope configuration.
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		View: ViewConfig{
			PageSize: engine.DefaultPageSize,
			Locale:   "en",
		},
		Export: ExportConfig{
			Delimiter: ",",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the default config file location,
// $HOME/.tablescope/config.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tablescope", "config.yaml")
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (a missing file is not an error; a malformed one is), then a .env
// file in the working directory, then process environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	// Best-effort: a missing .env file is the normal case.
	_ = godotenv.Load()

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays TABLESCOPE_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.View.PageSize = n
		}
	}
	if v := os.Getenv(EnvDelimiter); v != "" {
		cfg.Export.Delimiter = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if c.View.PageSize < 1 {
		return fmt.Errorf("view.page_size must be positive, got %d", c.View.PageSize)
	}
	if utf8.RuneCountInString(c.Export.Delimiter) != 1 {
		return fmt.Errorf("export.delimiter must be a single character, got %q", c.Export.Delimiter)
	}
	return nil
}

// EngineOptions converts the configuration into the engine's explicit
// options value.
func (c Config) EngineOptions() engine.Options {
	delim, _ := utf8.DecodeRuneInString(c.Export.Delimiter)
	if delim == utf8.RuneError {
		delim = engine.DefaultDelimiter
	}
	return engine.Options{
		PageSize:  c.View.PageSize,
		Delimiter: delim,
	}
}
