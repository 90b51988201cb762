package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	apptheme "fiora/internal/theme"
)

const (
	previewFrameInset = 10
	previewTextSize   = 14
)

// PreviewCanvas draws the dark preview surface: a frame outline inset from
// the edges and a two line placeholder caption in the middle. No frames
// are ever decoded onto it.
type PreviewCanvas struct {
	widget.BaseWidget
}

func NewPreviewCanvas() *PreviewCanvas {
	pc := &PreviewCanvas{}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (p *PreviewCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(apptheme.ColorPreviewFill)

	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = apptheme.ColorPreviewOutline
	frame.StrokeWidth = 2

	title := canvas.NewText("Video Preview", apptheme.ColorSubtext)
	title.TextSize = previewTextSize
	caption := canvas.NewText("(placeholder)", apptheme.ColorSubtext)
	caption.TextSize = previewTextSize

	objects := []fyne.CanvasObject{bg, frame, title, caption}

	return &previewCanvasRenderer{
		pc:      p,
		objects: objects,
		bg:      bg,
		frame:   frame,
		title:   title,
		caption: caption,
	}
}

// PreferredSize keeps the preview dominant over the timeline strip below it.
func (p *PreviewCanvas) PreferredSize() fyne.Size { return fyne.NewSize(640, 360) }

type previewCanvasRenderer struct {
	pc      *PreviewCanvas
	objects []fyne.CanvasObject
	bg      *canvas.Rectangle
	frame   *canvas.Rectangle
	title   *canvas.Text
	caption *canvas.Text
}

func (r *previewCanvasRenderer) Destroy()                     {}
func (r *previewCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *previewCanvasRenderer) MinSize() fyne.Size           { return r.pc.PreferredSize() }
func (r *previewCanvasRenderer) Refresh()                     { r.Layout(r.pc.Size()); canvas.Refresh(r.pc) }

func (r *previewCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	frameWidth := size.Width - 2*previewFrameInset
	frameHeight := size.Height - 2*previewFrameInset
	if frameWidth < 0 {
		frameWidth = 0
	}
	if frameHeight < 0 {
		frameHeight = 0
	}
	r.frame.Resize(fyne.NewSize(frameWidth, frameHeight))
	r.frame.Move(fyne.NewPos(previewFrameInset, previewFrameInset))

	titleSize := r.title.MinSize()
	captionSize := r.caption.MinSize()
	top := size.Height/2 - (titleSize.Height+captionSize.Height)/2

	r.title.Resize(titleSize)
	r.title.Move(fyne.NewPos(size.Width/2-titleSize.Width/2, top))
	r.caption.Resize(captionSize)
	r.caption.Move(fyne.NewPos(size.Width/2-captionSize.Width/2, top+titleSize.Height))
}

// PreviewPane couples the preview surface with the transport row under it.
type PreviewPane struct {
	container  *fyne.Container
	Canvas     *PreviewCanvas
	PrevButton *widget.Button
	PlayButton *widget.Button
	NextButton *widget.Button

	transportHandler func(string)
}

func NewPreviewPane() *PreviewPane {
	pane := &PreviewPane{}
	pane.setupPane()
	return pane
}

func (pp *PreviewPane) setupPane() {
	header := widget.NewLabelWithStyle("Preview", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pp.Canvas = NewPreviewCanvas()

	pp.PrevButton = widget.NewButtonWithIcon("Prev", theme.MediaSkipPreviousIcon(), func() {
		pp.onTransport("Prev Frame")
	})
	pp.PlayButton = widget.NewButtonWithIcon("Play/Pause", theme.MediaPlayIcon(), func() {
		pp.onTransport("Play/Pause")
	})
	pp.NextButton = widget.NewButtonWithIcon("Next", theme.MediaSkipNextIcon(), func() {
		pp.onTransport("Next Frame")
	})

	transport := container.NewHBox(pp.PrevButton, pp.PlayButton, pp.NextButton)

	pp.container = container.NewBorder(
		header, transport, nil, nil,
		pp.Canvas,
	)
}

func (pp *PreviewPane) GetContainer() *fyne.Container {
	return pp.container
}

// SetTransportHandler receives the action name of the pressed transport
// button, one of "Prev Frame", "Play/Pause" or "Next Frame".
func (pp *PreviewPane) SetTransportHandler(handler func(string)) {
	pp.transportHandler = handler
}

func (pp *PreviewPane) onTransport(action string) {
	if pp.transportHandler != nil {
		pp.transportHandler(action)
	}
}
