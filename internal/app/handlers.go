package app

import (
	"fiora/internal/editor"
	"fiora/internal/gui"
	"fiora/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

var videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv"}

// Handlers holds every endpoint behind the window. All of them are
// placeholders: they update the session, the status line and the log,
// and never touch media.
type Handlers struct {
	session    *editor.Session
	guiManager *gui.Manager
	logger     logger.Logger
}

func NewHandlers(session *editor.Session, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		session:    session,
		guiManager: gm,
		logger:     log,
	}
}

// HandlePlaceholderAction records a named action without doing any work.
func (h *Handlers) HandlePlaceholderAction(name string) {
	h.logger.Info("Handlers", "placeholder action", map[string]interface{}{
		"action": name,
	})
	h.guiManager.UpdateStatus(editor.ActionStatus(name))
}

// HandleToolUse runs the tool's placeholder action, then selects it.
// This is the toolbar button path; the selection status wins as the
// final status line.
func (h *Handlers) HandleToolUse(name string) {
	tool, ok := editor.ParseTool(name)
	if !ok {
		h.logger.Warning("Handlers", "unknown tool ignored", map[string]interface{}{
			"tool": name,
		})
		return
	}

	h.HandlePlaceholderAction(tool.ActionMessage())
	h.HandleToolSelect(name)
}

// HandleToolSelect makes the named tool current without running its action.
func (h *Handlers) HandleToolSelect(name string) {
	tool, ok := editor.ParseTool(name)
	if !ok {
		h.logger.Warning("Handlers", "unknown tool ignored", map[string]interface{}{
			"tool": name,
		})
		return
	}

	h.session.SelectTool(tool)
	h.logger.Info("Handlers", "tool selected", map[string]interface{}{
		"tool": name,
	})

	h.guiManager.UpdateActiveTool(name)
	h.guiManager.UpdateStatus(editor.ToolStatus(tool))
}

// HandleImport opens the video file picker. The chosen file is never
// read; its path feeds the placeholder action.
func (h *Handlers) HandleImport() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.showError("Import Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		reader.Close()

		h.HandlePlaceholderAction(editor.ImportedAction(path))
	}, h.guiManager.GetWindow())

	fd.SetFilter(storage.NewExtensionFileFilter(videoExtensions))
	fd.Show()
}

// HandleExport opens the save picker. The target is closed unwritten;
// its path feeds the placeholder action.
func (h *Handlers) HandleExport() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showError("Export Error", err)
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()
		writer.Close()

		h.HandlePlaceholderAction(editor.ExportedAction(path))
	}, h.guiManager.GetWindow())

	fd.SetFilter(storage.NewExtensionFileFilter([]string{".mp4"}))
	fd.SetFileName("untitled.mp4")
	fd.Show()
}

// HandleTransport receives "Prev Frame", "Play/Pause" or "Next Frame".
func (h *Handlers) HandleTransport(action string) {
	h.HandlePlaceholderAction(action)
}

func (h *Handlers) HandleAdjustmentChange(key string, value float64) {
	if err := h.session.SetAdjustment(key, value); err != nil {
		h.logger.Warning("Handlers", "adjustment rejected", map[string]interface{}{
			"adjustment": key,
		})
		return
	}

	h.logger.Info("Handlers", "adjustment changed", map[string]interface{}{
		"adjustment": key,
		"value":      value,
	})
	h.guiManager.UpdateStatus(editor.FormatAdjustment(key, value))
}

func (h *Handlers) HandleChannelChange(key string, value int) {
	if err := h.session.SetChannel(key, value); err != nil {
		h.logger.Warning("Handlers", "channel rejected", map[string]interface{}{
			"channel": key,
		})
		return
	}

	h.logger.Info("Handlers", "channel changed", map[string]interface{}{
		"channel": key,
		"value":   value,
	})
	h.guiManager.UpdateStatus(editor.FormatChannel(key, value))
}

// HandleNewProject creates a fresh in-memory project before recording
// the placeholder action.
func (h *Handlers) HandleNewProject() {
	project := h.session.NewProject()
	h.logger.Info("Handlers", "project created", map[string]interface{}{
		"project_id":   project.ID,
		"project_name": project.Name,
	})

	h.HandlePlaceholderAction("New Project")
}

func (h *Handlers) HandleOpenProject() {
	h.HandlePlaceholderAction("Open Project")
}

func (h *Handlers) HandleSaveProject() {
	h.HandlePlaceholderAction("Save Project")
}

func (h *Handlers) HandleUndo() {
	h.HandlePlaceholderAction("Undo")
}

func (h *Handlers) HandleRedo() {
	h.HandlePlaceholderAction("Redo")
}

func (h *Handlers) showError(title string, err error) {
	h.guiManager.ShowError(title, err)
}
