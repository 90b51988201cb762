package config

import (
	"strings"
	"testing"

	"fiora/internal/editor"
)

func TestParseDefaultConfigTOML(t *testing.T) {
	cfg, err := parse([]byte(defaultConfigTOML))
	if err != nil {
		t.Fatalf("parsing default config: %v", err)
	}
	if cfg != Default() {
		t.Errorf("parsed default config = %+v, want %+v", cfg, Default())
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
[window]
width = 1600
height = 900

[timeline]
clip_count = 20

[editor]
startup_tool = "Cut"

[log]
level = "debug"
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Window.Width != 1600 || cfg.Window.Height != 900 {
		t.Errorf("window = %dx%d, want 1600x900", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Timeline.ClipCount != 20 {
		t.Errorf("clip_count = %d, want 20", cfg.Timeline.ClipCount)
	}
	if cfg.Editor.StartupTool != "Cut" {
		t.Errorf("startup_tool = %q, want %q", cfg.Editor.StartupTool, "Cut")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestParseMalformedTOML(t *testing.T) {
	cfg, err := parse([]byte(`this is not valid toml [[[`))
	if err == nil {
		t.Error("expected error for malformed TOML")
	}
	if !strings.Contains(err.Error(), "parse config.toml") {
		t.Errorf("error = %q, want parse context prefix", err)
	}
	if cfg != Default() {
		t.Error("malformed TOML should fall back to defaults")
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "window below minimum clamps up",
			in: Config{
				Window:   WindowSettings{Width: 640, Height: 500},
				Timeline: TimelineSettings{ClipCount: 12},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "info"},
			},
			want: Config{
				Window:   WindowSettings{Width: 900, Height: 600},
				Timeline: TimelineSettings{ClipCount: 12},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "info"},
			},
		},
		{
			name: "unset window falls back to defaults",
			in: Config{
				Timeline: TimelineSettings{ClipCount: 12},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "info"},
			},
			want: Default(),
		},
		{
			name: "clip count above maximum clamps down",
			in: Config{
				Window:   WindowSettings{Width: 1200, Height: 750},
				Timeline: TimelineSettings{ClipCount: 500},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "info"},
			},
			want: Config{
				Window:   WindowSettings{Width: 1200, Height: 750},
				Timeline: TimelineSettings{ClipCount: 64},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "info"},
			},
		},
		{
			name: "zero clip count",
			in: Config{
				Window:   WindowSettings{Width: 1200, Height: 750},
				Timeline: TimelineSettings{ClipCount: 0},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "info"},
			},
			want: Default(),
		},
		{
			name: "unknown tool and level",
			in: Config{
				Window:   WindowSettings{Width: 1200, Height: 750},
				Timeline: TimelineSettings{ClipCount: 12},
				Editor:   EditorSettings{StartupTool: "Lasso"},
				Log:      LogSettings{Level: "verbose"},
			},
			want: Default(),
		},
		{
			name: "level case folded",
			in: Config{
				Window:   WindowSettings{Width: 1200, Height: 750},
				Timeline: TimelineSettings{ClipCount: 12},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "DEBUG"},
			},
			want: Config{
				Window:   WindowSettings{Width: 1200, Height: 750},
				Timeline: TimelineSettings{ClipCount: 12},
				Editor:   EditorSettings{StartupTool: "Move"},
				Log:      LogSettings{Level: "debug"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.want {
				t.Errorf("normalize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStartupTool(t *testing.T) {
	cfg := Default()
	if tool := cfg.StartupTool(); tool != editor.ToolMove {
		t.Errorf("default startup tool = %q, want %q", tool, editor.ToolMove)
	}

	cfg.Editor.StartupTool = "Adjust"
	if tool := cfg.StartupTool(); tool != editor.ToolAdjust {
		t.Errorf("startup tool = %q, want %q", tool, editor.ToolAdjust)
	}

	cfg.Editor.StartupTool = "Nonsense"
	if tool := cfg.StartupTool(); tool != editor.ToolMove {
		t.Errorf("unknown startup tool = %q, want fallback %q", tool, editor.ToolMove)
	}
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("first load = %+v, want defaults", cfg)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	cfg2, err := Load()
	if err != nil {
		t.Fatalf("second Load (%s): %v", path, err)
	}
	if cfg2 != cfg {
		t.Errorf("second load = %+v, want %+v", cfg2, cfg)
	}
}
