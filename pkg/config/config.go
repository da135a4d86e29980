// Package config loads the user-level editor configuration from a TOML file.
// Every field has a working default so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/history"
	"github.com/SharadhNaidu/mailcanvas/pkg/snap"
)

// Breakpoint names accepted by the resize command.
const (
	BreakpointDesktop = "desktop"
	BreakpointMobile  = "mobile"
)

// Config is the full editor configuration.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	Editor  EditorConfig  `toml:"editor"`
	Cache   BackendConfig `toml:"cache"`
	Store   BackendConfig `toml:"store"`
	Preview PreviewConfig `toml:"preview"`
}

// CanvasConfig sets the defaults for new documents and the named breakpoint
// widths used by the resize command.
type CanvasConfig struct {
	Width           float64 `toml:"width"`
	BackgroundColor string  `toml:"background_color"`
	DesktopWidth    float64 `toml:"desktop_width"`
	MobileWidth     float64 `toml:"mobile_width"`
}

// EditorConfig tunes the interactive engines.
type EditorConfig struct {
	SnapThreshold float64 `toml:"snap_threshold"`
	HistoryDepth  int     `toml:"history_depth"`
}

// BackendConfig selects a pluggable backend by name plus its address.
//
// Cache backends: "file" (default), "redis", "none".
// Store backends: "file" (default), "mongo".
type BackendConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	Addr    string `toml:"addr"`
}

// PreviewConfig configures the serve command.
type PreviewConfig struct {
	Listen string `toml:"listen"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	canvas := document.DefaultCanvas()
	return Config{
		Canvas: CanvasConfig{
			Width:           canvas.Width,
			BackgroundColor: canvas.BackgroundColor,
			DesktopWidth:    600,
			MobileWidth:     320,
		},
		Editor: EditorConfig{
			SnapThreshold: snap.DefaultThreshold,
			HistoryDepth:  history.DefaultDepth,
		},
		Cache:   BackendConfig{Backend: "file"},
		Store:   BackendConfig{Backend: "file"},
		Preview: PreviewConfig{Listen: "localhost:8080"},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "mailcanvas", "config.toml"), nil
}

// Load reads the config file at path, layering it over the defaults. An
// absent file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalize(), nil
}

// BreakpointWidth maps a breakpoint name to its configured width.
func (c Config) BreakpointWidth(name string) (float64, bool) {
	switch name {
	case BreakpointDesktop:
		return c.Canvas.DesktopWidth, true
	case BreakpointMobile:
		return c.Canvas.MobileWidth, true
	default:
		return 0, false
	}
}

// CanvasSettings returns the configured defaults for a new document.
func (c Config) CanvasSettings() document.CanvasSettings {
	return document.CanvasSettings{
		Width:           c.Canvas.Width,
		BackgroundColor: c.Canvas.BackgroundColor,
	}
}

// normalize backfills zero values a partial file left unset.
func (c Config) normalize() Config {
	def := Default()
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = def.Canvas.Width
	}
	if c.Canvas.BackgroundColor == "" {
		c.Canvas.BackgroundColor = def.Canvas.BackgroundColor
	}
	if c.Canvas.DesktopWidth <= 0 {
		c.Canvas.DesktopWidth = def.Canvas.DesktopWidth
	}
	if c.Canvas.MobileWidth <= 0 {
		c.Canvas.MobileWidth = def.Canvas.MobileWidth
	}
	if c.Editor.SnapThreshold <= 0 {
		c.Editor.SnapThreshold = def.Editor.SnapThreshold
	}
	if c.Editor.HistoryDepth <= 0 {
		c.Editor.HistoryDepth = def.Editor.HistoryDepth
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = def.Cache.Backend
	}
	if c.Store.Backend == "" {
		c.Store.Backend = def.Store.Backend
	}
	if c.Preview.Listen == "" {
		c.Preview.Listen = def.Preview.Listen
	}
	return c
}
