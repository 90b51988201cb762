package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"fiora/internal/editor"
)

// Config is the top-level TOML structure stored in the user config dir.
type Config struct {
	Window   WindowSettings   `toml:"window"`
	Timeline TimelineSettings `toml:"timeline"`
	Editor   EditorSettings   `toml:"editor"`
	Log      LogSettings      `toml:"log"`
}

type WindowSettings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TimelineSettings struct {
	ClipCount int `toml:"clip_count"`
}

type EditorSettings struct {
	StartupTool string `toml:"startup_tool"`
}

type LogSettings struct {
	Level string `toml:"level"`
}

const (
	minWindowWidth  = 900
	minWindowHeight = 600
	maxClipCount    = 64
)

const defaultConfigTOML = `# Fiora Editor settings.
# Values outside the supported ranges are clamped at load time.

[window]
width = 1200
height = 750

[timeline]
clip_count = 12

[editor]
startup_tool = "Move"

[log]
level = "info"
`

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:   WindowSettings{Width: 1200, Height: 750},
		Timeline: TimelineSettings{ClipCount: 12},
		Editor:   EditorSettings{StartupTool: string(editor.ToolMove)},
		Log:      LogSettings{Level: "info"},
	}
}

// configDir returns the directory for fiora config files,
// using XDG_CONFIG_HOME or falling back to the platform default.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "fiora"), nil
}

// Path returns the full path to the config.toml file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file, creating it with defaults if missing.
// The returned Config is always normalized; on error the defaults come back
// so the window can still open.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return Default(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return Default(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	cfg, parseErr := parse(data)
	if parseErr != nil {
		return Default(), parseErr
	}
	return cfg, nil
}

// parse parses TOML bytes into a normalized Config.
func parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config.toml: %w", err)
	}
	return normalize(cfg), nil
}

// normalize clamps set values into their supported ranges; unset (zero)
// values fall back to the defaults.
func normalize(c Config) Config {
	out := Default()
	if c.Window.Width > 0 {
		out.Window.Width = max(c.Window.Width, minWindowWidth)
	}
	if c.Window.Height > 0 {
		out.Window.Height = max(c.Window.Height, minWindowHeight)
	}
	if c.Timeline.ClipCount > 0 {
		out.Timeline.ClipCount = min(c.Timeline.ClipCount, maxClipCount)
	}
	if tool, ok := editor.ParseTool(strings.TrimSpace(c.Editor.StartupTool)); ok {
		out.Editor.StartupTool = string(tool)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
		out.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	}
	return out
}

// StartupTool returns the configured startup tool as an editor tool.
func (c Config) StartupTool() editor.Tool {
	tool, ok := editor.ParseTool(c.Editor.StartupTool)
	if !ok {
		return editor.ToolMove
	}
	return tool
}
