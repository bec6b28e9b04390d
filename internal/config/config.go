// Package config loads aercomp configuration and named scenario presets.
//
// Configuration lives at ~/.aercomp/config.yaml and is entirely optional:
// a missing file yields the documented defaults. Presets are yaml scenario
// files in the preset directory, resolved by name after the built-ins.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oxyfarm/aercomp/internal/logging"
)

// configDirName is the per-user configuration directory under $HOME.
const configDirName = ".aercomp"

// configFileName is the main configuration file inside the config dir.
const configFileName = "config.yaml"

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	// Level is a zerolog level name. Defaults to "info".
	Level string `yaml:"level"`

	// Format is "console" or "json". Defaults to "console".
	Format string `yaml:"format"`

	// File is an optional log file path. Empty logs to stderr.
	File string `yaml:"file"`
}

// ToLoggingConfig converts to the logging package's config type.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{Level: l.Level, Format: l.Format, File: l.File}
}

// OutputConfig is the output section of the config file.
type OutputConfig struct {
	// Format is the default CLI output format: "table" or "json".
	Format string `yaml:"format"`
}

// Config is the full aercomp configuration document.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`

	// PresetDir is an optional directory of yaml scenario presets.
	PresetDir string `yaml:"preset_dir"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: "table"},
	}
}

// DefaultConfigPath returns ~/.aercomp/config.yaml, or "" when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads the configuration file at path. A missing file is not an
// error; it yields DefaultConfig. An empty path loads DefaultConfigPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
	return cfg, nil
}
