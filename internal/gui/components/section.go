package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	expandedPrefix  = "▼ "
	collapsedPrefix = "► "
)

// CollapsibleSection is a titled block whose body can be folded away.
// Sections start expanded. Folding only shows or hides the body,
// nothing else changes.
type CollapsibleSection struct {
	container *fyne.Container
	toggle    *widget.Button
	body      fyne.CanvasObject
	title     string
	expanded  bool

	toggleHandler func(title string, expanded bool)
}

func NewCollapsibleSection(title string, body fyne.CanvasObject) *CollapsibleSection {
	section := &CollapsibleSection{
		body:     container.NewPadded(body),
		title:    title,
		expanded: true,
	}

	section.toggle = widget.NewButton(expandedPrefix+title, section.onToggle)
	section.toggle.Alignment = widget.ButtonAlignLeading

	section.container = container.NewVBox(
		section.toggle,
		section.body,
	)
	return section
}

func (cs *CollapsibleSection) GetContainer() *fyne.Container {
	return cs.container
}

func (cs *CollapsibleSection) SetToggleHandler(handler func(title string, expanded bool)) {
	cs.toggleHandler = handler
}

func (cs *CollapsibleSection) onToggle() {
	cs.SetExpanded(!cs.expanded)
	if cs.toggleHandler != nil {
		cs.toggleHandler(cs.title, cs.expanded)
	}
}

// SetExpanded shows or hides the body and flips the header arrow.
func (cs *CollapsibleSection) SetExpanded(expanded bool) {
	cs.expanded = expanded
	if expanded {
		cs.toggle.SetText(expandedPrefix + cs.title)
		cs.body.Show()
	} else {
		cs.toggle.SetText(collapsedPrefix + cs.title)
		cs.body.Hide()
	}
	cs.container.Refresh()
}
