package app

import (
	"fiora/internal/config"
	"fiora/internal/editor"
	"fiora/internal/gui"
	"fiora/internal/logger"
	apptheme "fiora/internal/theme"
	"fiora/internal/timeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Fiora Editor"
	AppID      = "com.fiora.editor"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	session    *editor.Session
	handlers   *Handlers
	lifecycle  *Lifecycle
	logger     logger.Logger
	cfg        config.Config
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(apptheme.New())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.SetFixedSize(false)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"clip_count":    cfg.Timeline.ClipCount,
	})

	session := editor.NewSession()
	clips := timeline.Generate(cfg.Timeline.ClipCount)

	guiManager, err := gui.NewManager(window, log, clips)
	if err != nil {
		return nil, err
	}

	lifecycle := NewLifecycle(guiManager, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		session:    session,
		lifecycle:  lifecycle,
		logger:     log,
		cfg:        cfg,
	}

	application.setupHandlers()
	application.setupMenus()
	application.setupShortcuts()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.handlers = NewHandlers(a.session, a.guiManager, a.logger)

	a.guiManager.SetToolSelectHandler(a.handlers.HandleToolUse)
	a.guiManager.SetImportHandler(a.handlers.HandleImport)
	a.guiManager.SetExportHandler(a.handlers.HandleExport)
	a.guiManager.SetTransportHandler(a.handlers.HandleTransport)
	a.guiManager.SetAdjustmentChangeHandler(a.handlers.HandleAdjustmentChange)
	a.guiManager.SetChannelChangeHandler(a.handlers.HandleChannelChange)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	// Startup tool selection happens before the loop so the window
	// opens with a highlighted tool and a matching status line.
	a.handlers.HandleToolSelect(string(a.cfg.StartupTool()))

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Quit stops the Fyne loop. Used by the signal handler in main so that
// SIGINT goes through the same close path as the window button.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}
