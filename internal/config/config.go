// Package config loads tool defaults from an optional uast.toml. Flags
// always win over the file; the file wins over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"uast/internal/diag"
)

// FileName is the manifest looked up in the working directory and its
// ancestors.
const FileName = "uast.toml"

// Config holds every tunable the commands accept.
type Config struct {
	Output OutputConfig `toml:"output"`
	Run    RunConfig    `toml:"run"`
	Cache  CacheConfig  `toml:"cache"`
}

type OutputConfig struct {
	// Color is "auto", "on" or "off".
	Color string `toml:"color"`
	Quiet bool   `toml:"quiet"`
}

type RunConfig struct {
	// Jobs is the parallel file limit; 0 means GOMAXPROCS.
	Jobs           int `toml:"jobs"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: "auto"},
		Run:    RunConfig{Jobs: 0, MaxDiagnostics: 100},
		Cache:  CacheConfig{Enabled: true},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover walks from dir upward looking for a manifest and loads the
// first one found, or the defaults when none exists.
func Discover(dir string) (Config, error) {
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

func (c Config) validate() error {
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("output.color must be auto, on or off, got %q", c.Output.Color)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("run.jobs must be non-negative, got %d", c.Run.Jobs)
	}
	if c.Run.MaxDiagnostics < 1 {
		return fmt.Errorf("run.max_diagnostics must be positive, got %d", c.Run.MaxDiagnostics)
	}
	return nil
}

// Problem converts a config load failure into the diagnostic schema, so
// commands report it the same way as tree findings.
func Problem(err error) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Kind:     diag.KindConfig,
		Message:  err.Error(),
	}
}
