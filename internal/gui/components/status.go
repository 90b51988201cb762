package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	toolLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	toolLabel := widget.NewLabel("Tool: --")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		toolLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		toolLabel:   toolLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetTool(name string) {
	if name == "" {
		sb.toolLabel.SetText("Tool: --")
		return
	}
	sb.toolLabel.SetText("Tool: " + name)
}
