package editor

import "testing"

func TestParseTool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tool
		ok    bool
	}{
		{name: "cut", input: "Cut", want: ToolCut, ok: true},
		{name: "move", input: "Move", want: ToolMove, ok: true},
		{name: "add text", input: "Add Text", want: ToolAddText, ok: true},
		{name: "adjust", input: "Adjust", want: ToolAdjust, ok: true},
		{name: "unknown", input: "Crop", want: "", ok: false},
		{name: "empty", input: "", want: "", ok: false},
		{name: "wrong case", input: "move", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTool(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseTool(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseTool(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToolActionMessage(t *testing.T) {
	tests := []struct {
		tool Tool
		want string
	}{
		{tool: ToolCut, want: "Cut Tool used"},
		{tool: ToolMove, want: "Move Tool used"},
		{tool: ToolAddText, want: "Add Text Tool used"},
		{tool: ToolAdjust, want: "Adjust Tool selected"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tool), func(t *testing.T) {
			if got := tt.tool.ActionMessage(); got != tt.want {
				t.Errorf("ActionMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToolsOrder(t *testing.T) {
	tools := Tools()
	want := []Tool{ToolCut, ToolMove, ToolAddText, ToolAdjust}
	if len(tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(tools))
	}
	for i, tool := range want {
		if tools[i] != tool {
			t.Errorf("tools[%d] = %q, want %q", i, tools[i], tool)
		}
	}
}
