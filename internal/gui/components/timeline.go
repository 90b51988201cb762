package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	apptheme "fiora/internal/theme"
	"fiora/internal/timeline"
)

const (
	clipBlockWidth      = 180
	clipBlockHeight     = 90
	timelineStripHeight = 140
)

// TimelineStrip is the horizontally scrollable row of clip blocks under
// the preview. It is populated once at construction; blocks are display
// only and never react to clicks.
type TimelineStrip struct {
	container *fyne.Container
}

func NewTimelineStrip(clips []timeline.Clip) *TimelineStrip {
	header := widget.NewLabelWithStyle("Timeline", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	strip := container.NewHBox()
	for _, clip := range clips {
		strip.Add(clipBlock(clip))
	}

	scroll := container.NewScroll(container.NewPadded(strip))
	scroll.SetMinSize(fyne.NewSize(0, timelineStripHeight))

	background := canvas.NewRectangle(apptheme.ColorTimelineFill)

	return &TimelineStrip{
		container: container.NewBorder(
			header, nil, nil, nil,
			container.NewStack(background, scroll),
		),
	}
}

// clipBlock renders one fixed size block with the clip name over its
// start timecode.
func clipBlock(clip timeline.Clip) fyne.CanvasObject {
	block := canvas.NewRectangle(apptheme.ColorPanel)
	block.SetMinSize(fyne.NewSize(clipBlockWidth, clipBlockHeight))

	name := canvas.NewText(clip.Name, apptheme.ColorText)
	name.Alignment = fyne.TextAlignCenter
	start := canvas.NewText(timeline.FormatTimecode(clip.Start), apptheme.ColorText)
	start.Alignment = fyne.TextAlignCenter

	labels := container.NewVBox(name, start)

	return container.NewStack(block, container.NewCenter(labels))
}

func (ts *TimelineStrip) GetContainer() *fyne.Container {
	return ts.container
}
