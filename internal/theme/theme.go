// Package theme carries the dark editor palette and applies it over the
// standard Fyne theme.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Palette used by the window chrome and the custom canvases.
var (
	ColorBackground     = color.NRGBA{R: 0x1e, G: 0x1f, B: 0x23, A: 0xff}
	ColorPanel          = color.NRGBA{R: 0x25, G: 0x26, B: 0x28, A: 0xff}
	ColorAccent         = color.NRGBA{R: 0x2b, G: 0x8c, B: 0xff, A: 0xff}
	ColorText           = color.NRGBA{R: 0xe6, G: 0xee, B: 0xf6, A: 0xff}
	ColorSubtext        = color.NRGBA{R: 0x9a, G: 0xa6, B: 0xb2, A: 0xff}
	ColorPreviewFill    = color.NRGBA{R: 0x0f, G: 0x11, B: 0x13, A: 0xff}
	ColorPreviewOutline = color.NRGBA{R: 0x2e, G: 0x2f, B: 0x33, A: 0xff}
	ColorTimelineFill   = color.NRGBA{R: 0x14, G: 0x15, B: 0x17, A: 0xff}
)

// EditorTheme overrides the standard colors with the editor palette.
// Everything else delegates to the embedded default theme.
type EditorTheme struct{ fyne.Theme }

// New returns the dark editor theme.
func New() fyne.Theme {
	return EditorTheme{Theme: fynetheme.DefaultTheme()}
}

// Color maps the named theme slots onto the palette. The variant argument
// is ignored so the editor stays dark regardless of the OS setting.
func (e EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return ColorBackground
	case fynetheme.ColorNameButton, fynetheme.ColorNameInputBackground:
		return ColorPanel
	case fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return ColorPanel
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus, fynetheme.ColorNameHyperlink:
		return ColorAccent
	case fynetheme.ColorNameForeground:
		return ColorText
	case fynetheme.ColorNamePlaceHolder, fynetheme.ColorNameDisabled:
		return ColorSubtext
	case fynetheme.ColorNameSeparator:
		return ColorPreviewOutline
	}
	return e.Theme.Color(name, fynetheme.VariantDark)
}
