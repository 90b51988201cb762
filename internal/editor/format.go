package editor

import (
	"fmt"
	"strings"
)

// Status line formatting. Every string shown in the status bar is built
// here so the window code never assembles user-visible text by hand.

// ActionStatus formats the status line for a placeholder action.
func ActionStatus(name string) string {
	return "Action: " + name
}

// ToolStatus formats the status line for a tool selection.
func ToolStatus(tool Tool) string {
	return "Selected tool: " + string(tool)
}

// FormatAdjustment formats an adjustment slider readout, e.g. "Brightness: -12.30".
func FormatAdjustment(key string, value float64) string {
	return fmt.Sprintf("%s: %.2f", capitalize(key), value)
}

// FormatChannel formats a color mixer readout, e.g. "R: 128".
func FormatChannel(key string, value int) string {
	return fmt.Sprintf("%s: %d", strings.ToUpper(key), value)
}

// ImportedAction names the action recorded after the import dialog closes.
func ImportedAction(path string) string {
	return "Imported video: " + path
}

// ExportedAction names the action recorded after the export dialog closes.
func ExportedAction(path string) string {
	return "Exported video to: " + path
}
