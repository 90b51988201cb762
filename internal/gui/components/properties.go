package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fiora/internal/editor"
)

// PropertiesPanel is the right-hand column holding the Adjustments and
// Color Mixer sections. Every slider reports through a change handler;
// the panel itself keeps no values beyond what the widgets display.
type PropertiesPanel struct {
	container   *fyne.Container
	Adjustments *CollapsibleSection
	Mixer       *CollapsibleSection

	adjustmentChangeHandler func(string, float64)
	channelChangeHandler    func(string, int)
	sectionToggleHandler    func(string, bool)
}

func NewPropertiesPanel() *PropertiesPanel {
	panel := &PropertiesPanel{}
	panel.setupPanel()
	return panel
}

func (pp *PropertiesPanel) setupPanel() {
	adjustmentRows := container.NewVBox()
	for _, spec := range editor.Adjustments() {
		adjustmentRows.Add(pp.adjustmentRow(spec))
	}
	pp.Adjustments = NewCollapsibleSection("Adjustments", adjustmentRows)
	pp.Adjustments.SetToggleHandler(pp.onSectionToggle)

	mixerRows := container.NewVBox()
	for _, spec := range editor.MixerChannels() {
		mixerRows.Add(pp.mixerRow(spec))
	}
	pp.Mixer = NewCollapsibleSection("Color Mixer", mixerRows)
	pp.Mixer.SetToggleHandler(pp.onSectionToggle)

	header := widget.NewLabelWithStyle("Properties", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	sections := container.NewVBox(
		pp.Adjustments.GetContainer(),
		pp.Mixer.GetContainer(),
	)

	scrollContainer := container.NewVScroll(sections)

	pp.container = container.NewBorder(
		header, nil, nil, nil,
		scrollContainer,
	)
}

func (pp *PropertiesPanel) adjustmentRow(spec editor.SliderSpec) fyne.CanvasObject {
	nameLabel := widget.NewLabel(spec.Label)
	valueLabel := widget.NewLabel(strconv.FormatFloat(spec.Default, 'f', 2, 64))

	slider := widget.NewSlider(spec.Min, spec.Max)
	slider.Step = spec.Resolution
	slider.SetValue(spec.Default)
	slider.OnChanged = func(value float64) {
		valueLabel.SetText(strconv.FormatFloat(value, 'f', 2, 64))
		if pp.adjustmentChangeHandler != nil {
			pp.adjustmentChangeHandler(spec.Key, value)
		}
	}

	return container.NewBorder(nil, nil, nameLabel, valueLabel, slider)
}

func (pp *PropertiesPanel) mixerRow(spec editor.SliderSpec) fyne.CanvasObject {
	nameLabel := widget.NewLabel(spec.Label)
	valueLabel := widget.NewLabel(strconv.Itoa(int(spec.Default)))

	slider := widget.NewSlider(spec.Min, spec.Max)
	slider.Step = spec.Resolution
	slider.SetValue(spec.Default)
	slider.OnChanged = func(value float64) {
		valueLabel.SetText(strconv.Itoa(int(value)))
		if pp.channelChangeHandler != nil {
			pp.channelChangeHandler(spec.Key, int(value))
		}
	}

	return container.NewBorder(nil, nil, nameLabel, valueLabel, slider)
}

func (pp *PropertiesPanel) GetContainer() *fyne.Container {
	return pp.container
}

func (pp *PropertiesPanel) SetAdjustmentChangeHandler(handler func(string, float64)) {
	pp.adjustmentChangeHandler = handler
}

func (pp *PropertiesPanel) SetChannelChangeHandler(handler func(string, int)) {
	pp.channelChangeHandler = handler
}

func (pp *PropertiesPanel) SetSectionToggleHandler(handler func(string, bool)) {
	pp.sectionToggleHandler = handler
}

func (pp *PropertiesPanel) onSectionToggle(title string, expanded bool) {
	if pp.sectionToggleHandler != nil {
		pp.sectionToggleHandler(title, expanded)
	}
}
