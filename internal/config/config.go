// Package config loads and validates the proof kernel's single YAML
// configuration file, following the same shape the rest of the pack uses
// for its own top-level Config: a struct with nested sections, a
// DefaultConfig constructor, a Load that falls back to defaults when the
// file is absent, and environment-variable overrides applied afterward.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tarski/internal/logging"
)

// Config holds all settings for a kernel run.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Logging LoggingConfig `yaml:"logging"`
	Naming  NamingConfig  `yaml:"naming"`
	Axiom   AxiomConfig   `yaml:"axiom"`
}

// LoggingConfig configures the zap loggers internal/logging builds.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`  // debug, info, warn, error
	Format     string          `yaml:"format"` // console, json
	Categories map[string]bool `yaml:"categories"`
}

// ToLoggingConfig converts to the type internal/logging actually consumes,
// kept separate so internal/logging never imports internal/config.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		DebugMode:  l.DebugMode,
		Level:      l.Level,
		Format:     l.Format,
		Categories: l.Categories,
	}
}

// NamingConfig holds display-name alphabets for pretty printing. The fields
// are loaded and saved with the rest of the file, but nothing reads them:
// the pretty-printer always uses internal/naming's built-in alphabets.
type NamingConfig struct {
	BoundAlphabet []string `yaml:"bound_alphabet"`
	FreeAlphabet  []string `yaml:"free_alphabet"`
}

// AxiomConfig points at the bundle file a kernel run should load into its
// outermost frame.
type AxiomConfig struct {
	BundlePath string `yaml:"bundle_path"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Name:    "tarski",
		Version: "1.0.0",
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			Format:    "console",
		},
		Axiom: AxiomConfig{
			BundlePath: "axioms/tarski.yaml",
		},
	}
}

// Load reads cfg from path, falling back to DefaultConfig if the file does
// not exist. Environment overrides are applied in either case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create directory %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate rejects configurations the engine cannot start with.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: invalid logging format %q", c.Logging.Format)
	}
	if c.Axiom.BundlePath == "" {
		return fmt.Errorf("config: axiom.bundle_path must not be empty")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TARSKI_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TARSKI_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("TARSKI_DEBUG"); v != "" {
		c.Logging.DebugMode = v == "1" || v == "true"
	}
	if v := os.Getenv("TARSKI_AXIOM_BUNDLE"); v != "" {
		c.Axiom.BundlePath = v
	}
}
