// Package config loads the recipes CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/charmingruby/recipes/validated"
)

// Log formats understood by the CLI.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds all recipes CLI configuration.
type Config struct {
	Log LogConfig `yaml:"log"`
	Run RunConfig `yaml:"run"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// RunConfig configures which recipes run and how.
type RunConfig struct {
	// Recipes lists recipe names; empty runs all of them.
	Recipes  []string      `yaml:"recipes"`
	Parallel int           `yaml:"parallel"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
		Run: RunConfig{
			Parallel: 4,
			Timeout:  5 * time.Second,
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem of the configuration at once.
func (c Config) Validate() error {
	checks := []func(Config) validated.Validated[error, Config]{
		checkLevel,
		checkFormat,
		checkParallel,
		checkTimeout,
	}
	return validated.Err(validated.Traverse(checks, func(check func(Config) validated.Validated[error, Config]) validated.Validated[error, Config] {
		return check(c)
	}))
}

// ParsedLevel returns the zap level named by Level.
func (c LogConfig) ParsedLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Level)
}

func checkLevel(c Config) validated.Validated[error, Config] {
	if _, err := c.Log.ParsedLevel(); err != nil {
		return validated.Invalid[error, Config](fmt.Errorf("log.level: %w", err))
	}
	return validated.Valid[error](c)
}

func checkFormat(c Config) validated.Validated[error, Config] {
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
		return validated.Valid[error](c)
	}
	return validated.Invalid[error, Config](fmt.Errorf("log.format: unsupported format %q", c.Log.Format))
}

func checkParallel(c Config) validated.Validated[error, Config] {
	if c.Run.Parallel < 1 {
		return validated.Invalid[error, Config](fmt.Errorf("run.parallel: must be at least 1, got %d", c.Run.Parallel))
	}
	return validated.Valid[error](c)
}

func checkTimeout(c Config) validated.Validated[error, Config] {
	if c.Run.Timeout < 0 {
		return validated.Invalid[error, Config](fmt.Errorf("run.timeout: must not be negative, got %s", c.Run.Timeout))
	}
	return validated.Valid[error](c)
}
