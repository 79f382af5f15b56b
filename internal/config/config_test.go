package config

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := write(t, t.TempDir(), `
[output]
color = "off"
quiet = true

[run]
jobs = 4
max_diagnostics = 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Color != "off" || !cfg.Output.Quiet {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Run.Jobs != 4 || cfg.Run.MaxDiagnostics != 10 {
		t.Errorf("run = %+v", cfg.Run)
	}
	// Untouched sections keep their defaults.
	if !cfg.Cache.Enabled {
		t.Error("cache defaults lost")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want the defaults", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", "[output]\ncolor = \"sometimes\"\n"},
		{"negative jobs", "[run]\njobs = -1\n"},
		{"zero cap", "[run]\nmax_diagnostics = 0\n"},
		{"unknown key", "[run]\nworkers = 8\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(t, t.TempDir(), tt.content)
			if _, err := Load(path); err == nil {
				t.Error("bad manifest accepted")
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	write(t, root, "[run]\njobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if cfg.Run.Jobs != 2 {
		t.Errorf("jobs = %d, want the ancestor manifest value", cfg.Run.Jobs)
	}
}
