package editor

import "testing"

func TestActionStatus(t *testing.T) {
	if got := ActionStatus("Save Project"); got != "Action: Save Project" {
		t.Errorf("ActionStatus = %q, want %q", got, "Action: Save Project")
	}
}

func TestToolStatus(t *testing.T) {
	if got := ToolStatus(ToolAddText); got != "Selected tool: Add Text" {
		t.Errorf("ToolStatus = %q, want %q", got, "Selected tool: Add Text")
	}
}

func TestFormatAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value float64
		want  string
	}{
		{name: "negative fraction", key: "brightness", value: -12.3, want: "Brightness: -12.30"},
		{name: "zero", key: "contrast", value: 0, want: "Contrast: 0.00"},
		{name: "levels default", key: "levels", value: 1, want: "Levels: 1.00"},
		{name: "max", key: "highlights", value: 100, want: "Highlights: 100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAdjustment(tt.key, tt.value); got != tt.want {
				t.Errorf("FormatAdjustment(%q, %v) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatChannel(t *testing.T) {
	tests := []struct {
		key   string
		value int
		want  string
	}{
		{key: "r", value: 128, want: "R: 128"},
		{key: "g", value: 0, want: "G: 0"},
		{key: "b", value: 255, want: "B: 255"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := FormatChannel(tt.key, tt.value); got != tt.want {
				t.Errorf("FormatChannel(%q, %d) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestImportExportActions(t *testing.T) {
	if got := ImportedAction("/clips/intro.mp4"); got != "Imported video: /clips/intro.mp4" {
		t.Errorf("ImportedAction = %q", got)
	}
	if got := ExportedAction("/out/final.mp4"); got != "Exported video to: /out/final.mp4" {
		t.Errorf("ExportedAction = %q", got)
	}
}
