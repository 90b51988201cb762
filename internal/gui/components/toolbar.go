package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"fiora/internal/editor"
)

// Toolbar is the vertical tool column on the left edge of the window.
// Exactly one tool button renders highlighted at a time. Import and
// Export sit below the tools and never take the highlight.
type Toolbar struct {
	container    *fyne.Container
	toolButtons  map[string]*widget.Button
	ImportButton *widget.Button
	ExportButton *widget.Button

	toolSelectHandler func(string)
	importHandler     func()
	exportHandler     func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	header := widget.NewLabelWithStyle("TOOLS", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	t.toolButtons = make(map[string]*widget.Button)
	toolColumn := container.NewVBox(header)
	for _, tool := range editor.Tools() {
		name := string(tool)
		button := widget.NewButtonWithIcon(name, toolIcon(tool), func() {
			t.onToolSelected(name)
		})
		button.Alignment = widget.ButtonAlignLeading
		t.toolButtons[name] = button
		toolColumn.Add(button)
	}

	t.ImportButton = widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), t.onImport)
	t.ImportButton.Alignment = widget.ButtonAlignLeading
	t.ExportButton = widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), t.onExport)
	t.ExportButton.Alignment = widget.ButtonAlignLeading

	toolColumn.Add(widget.NewSeparator())
	toolColumn.Add(t.ImportButton)
	toolColumn.Add(t.ExportButton)

	t.container = toolColumn
}

func toolIcon(tool editor.Tool) fyne.Resource {
	switch tool {
	case editor.ToolCut:
		return theme.ContentCutIcon()
	case editor.ToolMove:
		return theme.MoveUpIcon()
	case editor.ToolAddText:
		return theme.DocumentCreateIcon()
	case editor.ToolAdjust:
		return theme.SettingsIcon()
	}
	return theme.RadioButtonIcon()
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetToolSelectHandler(handler func(string)) {
	t.toolSelectHandler = handler
}

func (t *Toolbar) SetImportHandler(handler func()) {
	t.importHandler = handler
}

func (t *Toolbar) SetExportHandler(handler func()) {
	t.exportHandler = handler
}

// SetActiveTool highlights the named tool button and clears the rest.
// Unknown names clear every highlight.
func (t *Toolbar) SetActiveTool(name string) {
	for buttonName, button := range t.toolButtons {
		if buttonName == name {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
}

func (t *Toolbar) onToolSelected(name string) {
	if t.toolSelectHandler != nil {
		t.toolSelectHandler(name)
	}
}

func (t *Toolbar) onImport() {
	if t.importHandler != nil {
		t.importHandler()
	}
}

func (t *Toolbar) onExport() {
	if t.exportHandler != nil {
		t.exportHandler()
	}
}
