package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", a.handlers.HandleNewProject),
		fyne.NewMenuItem("Open...", a.handlers.HandleOpenProject),
		fyne.NewMenuItem("Save", a.handlers.HandleSaveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			a.Quit()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.handlers.HandleUndo),
		fyne.NewMenuItem("Redo", a.handlers.HandleRedo),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAbout),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *Application) showAbout() {
	message := fmt.Sprintf("%s %s\nPrototype video editor interface", AppName, AppVersion)
	dialog.ShowInformation("About", message, a.window)
}
