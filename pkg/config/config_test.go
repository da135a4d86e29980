package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadPartialFileLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[editor]
snap_threshold = 8.0

[cache]
backend = "redis"
addr = "localhost:6379"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.SnapThreshold != 8.0 {
		t.Errorf("snap threshold = %v, want 8", cfg.Editor.SnapThreshold)
	}
	if cfg.Editor.HistoryDepth != Default().Editor.HistoryDepth {
		t.Errorf("history depth = %v, want default", cfg.Editor.HistoryDepth)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Addr != "localhost:6379" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("store backend = %q, want file default", cfg.Store.Backend)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[canvas\nwidth = oops")
	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed TOML succeeded")
	}
}

func TestBreakpointWidth(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name  string
		width float64
		ok    bool
	}{
		{BreakpointDesktop, 600, true},
		{BreakpointMobile, 320, true},
		{"tablet", 0, false},
	}
	for _, tt := range tests {
		width, ok := cfg.BreakpointWidth(tt.name)
		if width != tt.width || ok != tt.ok {
			t.Errorf("BreakpointWidth(%q) = %v, %v, want %v, %v", tt.name, width, ok, tt.width, tt.ok)
		}
	}
}
