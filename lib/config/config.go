// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "INCONSEQUENTIAL_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local use from a terminal.
	Development Environment = "development"
	// Production is for hosted MCP servers whose stderr is collected.
	Production Environment = "production"
)

// Log formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the master configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	// Engine configures the recommendation engine and its history.
	Engine EngineConfig `yaml:"engine"`

	// Logging configures the slog handler.
	Logging LoggingConfig `yaml:"logging"`

	// Per-environment overrides, applied after the base config loads.
	Development *Overrides `yaml:"development,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains fields that can be overridden per environment.
type Overrides struct {
	Engine  *EngineOverrides  `yaml:"engine,omitempty"`
	Logging *LoggingOverrides `yaml:"logging,omitempty"`
}

// EngineConfig holds the engine tunables.
type EngineConfig struct {
	// HistoryCapacity is the maximum number of thoughts retained.
	// Default: 50
	HistoryCapacity int `yaml:"history_capacity"`

	// RelevanceThreshold is the exclusive lower bound a command's
	// confidence must exceed to be recommended.
	// Default: 0.2
	RelevanceThreshold float64 `yaml:"relevance_threshold"`

	// TopK is the maximum number of recommendations per thought.
	// Default: 3
	TopK int `yaml:"top_k"`

	// ContextThreshold is the history length above which the
	// accumulated-context hint is suggested.
	// Default: 3
	ContextThreshold int `yaml:"context_threshold"`

	// SummaryWindow is how many recent thoughts the history tool and
	// resource report by default.
	// Default: 5
	SummaryWindow int `yaml:"summary_window"`
}

// EngineOverrides mirrors EngineConfig with pointer fields so that a
// zero value in an override section is distinguishable from absence.
type EngineOverrides struct {
	HistoryCapacity    *int     `yaml:"history_capacity,omitempty"`
	RelevanceThreshold *float64 `yaml:"relevance_threshold,omitempty"`
	TopK               *int     `yaml:"top_k,omitempty"`
	ContextThreshold   *int     `yaml:"context_threshold,omitempty"`
	SummaryWindow      *int     `yaml:"summary_window,omitempty"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is one of auto, text, json. Auto picks text when stderr
	// is a terminal and JSON otherwise.
	// Default: auto (development), json (production)
	Format string `yaml:"format"`
}

// LoggingOverrides mirrors LoggingConfig for override sections.
type LoggingOverrides struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns the built-in configuration. [Load] uses it as the
// base before reading a file, and returns it unchanged when no file is
// configured.
func Default() *Config {
	return &Config{
		Environment: Development,
		Engine: EngineConfig{
			HistoryCapacity:    50,
			RelevanceThreshold: 0.2,
			TopK:               3,
			ContextThreshold:   3,
			SummaryWindow:      5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatAuto,
		},
	}
}

// Load loads configuration from the file named by INCONSEQUENTIAL_CONFIG.
// When the variable is unset, the defaults apply.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, applies the
// matching environment section, and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges a single YAML file into the current config. Unknown
// keys are rejected so that typos do not silently fall back to
// defaults.
func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		// An empty file decodes as io.EOF and leaves the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
		if overrides == nil {
			overrides = &Overrides{}
		}
		// Production stderr is collected by a supervisor, not read
		// by a human.
		if overrides.Logging == nil {
			overrides.Logging = &LoggingOverrides{Format: FormatJSON}
		}
	}

	if overrides == nil {
		return
	}

	if engine := overrides.Engine; engine != nil {
		if engine.HistoryCapacity != nil {
			c.Engine.HistoryCapacity = *engine.HistoryCapacity
		}
		if engine.RelevanceThreshold != nil {
			c.Engine.RelevanceThreshold = *engine.RelevanceThreshold
		}
		if engine.TopK != nil {
			c.Engine.TopK = *engine.TopK
		}
		if engine.ContextThreshold != nil {
			c.Engine.ContextThreshold = *engine.ContextThreshold
		}
		if engine.SummaryWindow != nil {
			c.Engine.SummaryWindow = *engine.SummaryWindow
		}
	}

	if logging := overrides.Logging; logging != nil {
		if logging.Level != "" {
			c.Logging.Level = logging.Level
		}
		if logging.Format != "" {
			c.Logging.Format = logging.Format
		}
	}
}

// Validate checks the configuration for errors, reporting all of them.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %q", c.Environment))
	}

	if c.Engine.HistoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("engine.history_capacity must be at least 1, got %d", c.Engine.HistoryCapacity))
	}
	if c.Engine.RelevanceThreshold < 0 || c.Engine.RelevanceThreshold >= 1 {
		errs = append(errs, fmt.Errorf("engine.relevance_threshold must be in [0, 1), got %g", c.Engine.RelevanceThreshold))
	}
	if c.Engine.TopK < 1 {
		errs = append(errs, fmt.Errorf("engine.top_k must be at least 1, got %d", c.Engine.TopK))
	}
	if c.Engine.ContextThreshold < 0 {
		errs = append(errs, fmt.Errorf("engine.context_threshold must not be negative, got %d", c.Engine.ContextThreshold))
	}
	if c.Engine.SummaryWindow < 1 {
		errs = append(errs, fmt.Errorf("engine.summary_window must be at least 1, got %d", c.Engine.SummaryWindow))
	}

	if _, err := c.Logging.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Format {
	case FormatAuto, FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid logging.format: %q (want auto, text, or json)", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel parses Level into a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid logging.level: %q (want debug, info, warn, or error)", l.Level)
	}
}
