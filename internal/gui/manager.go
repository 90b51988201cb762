package gui

import (
	"image/color"

	"fiora/internal/gui/components"
	"fiora/internal/logger"
	"fiora/internal/timeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const (
	propertiesSplitOffset = 0.72

	// The window cannot shrink below this content size.
	minContentWidth  = 900
	minContentHeight = 600
)

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	toolbar       *components.Toolbar
	previewPane   *components.PreviewPane
	timelineStrip *components.TimelineStrip
	properties    *components.PropertiesPanel
	statusBar     *components.StatusBar

	toolSelectHandler       func(string)
	importHandler           func()
	exportHandler           func()
	transportHandler        func(string)
	adjustmentChangeHandler func(string, float64)
	channelChangeHandler    func(string, int)
}

func NewManager(window fyne.Window, log logger.Logger, clips []timeline.Clip) (*Manager, error) {
	manager := &Manager{
		window:        window,
		logger:        log,
		isShutdown:    false,
		toolbar:       components.NewToolbar(),
		previewPane:   components.NewPreviewPane(),
		timelineStrip: components.NewTimelineStrip(clips),
		properties:    components.NewPropertiesPanel(),
		statusBar:     components.NewStatusBar(),
	}

	manager.properties.SetSectionToggleHandler(func(title string, expanded bool) {
		log.Debug("GUIManager", "section toggled", map[string]interface{}{
			"section":  title,
			"expanded": expanded,
		})
	})

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"clip_count": len(clips),
	})

	return manager, nil
}

// GetMainContainer assembles the window content: tools on the left, the
// preview stacked over the timeline in the middle, properties on the
// right behind a draggable split, and the status bar along the bottom.
func (m *Manager) GetMainContainer() *fyne.Container {
	centerArea := container.NewBorder(
		nil,
		m.timelineStrip.GetContainer(),
		nil, nil,
		m.previewPane.GetContainer(),
	)

	split := container.NewHSplit(centerArea, m.properties.GetContainer())
	split.SetOffset(propertiesSplitOffset)

	content := container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		m.toolbar.GetContainer(),
		nil,
		split,
	)

	// Fyne derives the window minimum from the content, so an invisible
	// spacer keeps the window from shrinking below the supported size.
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(minContentWidth, minContentHeight))

	return container.NewStack(spacer, content)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetToolSelectHandler(handler func(string)) {
	m.toolSelectHandler = handler
	m.toolbar.SetToolSelectHandler(func(name string) {
		m.logger.Debug("GUIManager", "tool button pressed", map[string]interface{}{
			"tool": name,
		})

		handler(name)
	})
}

func (m *Manager) SetImportHandler(handler func()) {
	m.importHandler = handler
	m.toolbar.SetImportHandler(func() {
		m.logger.Debug("GUIManager", "import requested", nil)
		handler()
	})
}

func (m *Manager) SetExportHandler(handler func()) {
	m.exportHandler = handler
	m.toolbar.SetExportHandler(func() {
		m.logger.Debug("GUIManager", "export requested", nil)
		handler()
	})
}

func (m *Manager) SetTransportHandler(handler func(string)) {
	m.transportHandler = handler
	m.previewPane.SetTransportHandler(func(action string) {
		m.logger.Debug("GUIManager", "transport pressed", map[string]interface{}{
			"action": action,
		})

		handler(action)
	})
}

func (m *Manager) SetAdjustmentChangeHandler(handler func(string, float64)) {
	m.adjustmentChangeHandler = handler
	m.properties.SetAdjustmentChangeHandler(func(key string, value float64) {
		m.logger.Debug("GUIManager", "adjustment change", map[string]interface{}{
			"adjustment": key,
			"value":      value,
		})

		handler(key, value)
	})
}

func (m *Manager) SetChannelChangeHandler(handler func(string, int)) {
	m.channelChangeHandler = handler
	m.properties.SetChannelChangeHandler(func(key string, value int) {
		m.logger.Debug("GUIManager", "channel change", map[string]interface{}{
			"channel": key,
			"value":   value,
		})

		handler(key, value)
	})
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.statusBar.SetStatus(status)
		m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
			"status": status,
		})
	})
}

// UpdateActiveTool highlights the tool in the toolbar and mirrors it in
// the status bar corner.
func (m *Manager) UpdateActiveTool(name string) {
	fyne.Do(func() {
		m.toolbar.SetActiveTool(name)
		m.statusBar.SetTool(name)
		m.logger.Debug("GUIManager", "active tool updated", map[string]interface{}{
			"tool": name,
		})
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
