package editor

// Tool identifies a selectable toolbar tool. The value doubles as the
// display name used in the toolbar and status bar.
type Tool string

const (
	ToolCut     Tool = "Cut"
	ToolMove    Tool = "Move"
	ToolAddText Tool = "Add Text"
	ToolAdjust  Tool = "Adjust"
)

// Tools returns the selectable tools in toolbar order.
func Tools() []Tool {
	return []Tool{ToolCut, ToolMove, ToolAddText, ToolAdjust}
}

// ParseTool maps a display name back to a tool.
func ParseTool(name string) (Tool, bool) {
	for _, tool := range Tools() {
		if string(tool) == name {
			return tool, true
		}
	}
	return "", false
}

// ActionMessage is the placeholder action name fired when the tool's button
// is pressed, before the tool becomes the selection.
func (t Tool) ActionMessage() string {
	if t == ToolAdjust {
		return "Adjust Tool selected"
	}
	return string(t) + " Tool used"
}
