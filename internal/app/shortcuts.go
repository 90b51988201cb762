package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (a *Application) setupShortcuts() {
	saveShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	a.window.Canvas().AddShortcut(saveShortcut, func(fyne.Shortcut) {
		a.handlers.HandleSaveProject()
	})

	quitShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}
	a.window.Canvas().AddShortcut(quitShortcut, func(fyne.Shortcut) {
		a.logger.Info("Application", "quit shortcut pressed", nil)
		a.Quit()
	})
}
