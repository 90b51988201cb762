// Package timeline generates the placeholder clips shown in the timeline
// strip. Clips carry no media, only a name and a start offset.
package timeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Clip is a single block on the timeline strip.
type Clip struct {
	ID    string
	Name  string
	Start time.Duration
}

// Label returns the two-line text drawn on a clip block.
func (c Clip) Label() string {
	return c.Name + "\n" + FormatTimecode(c.Start)
}

// Generate returns count placeholder clips laid end to end, one minute each,
// named "Clip 1" through "Clip N". A count below one yields an empty strip.
func Generate(count int) []Clip {
	if count < 1 {
		return nil
	}
	clips := make([]Clip, count)
	for i := range clips {
		clips[i] = Clip{
			ID:    uuid.NewString(),
			Name:  fmt.Sprintf("Clip %d", i+1),
			Start: time.Duration(i) * time.Minute,
		}
	}
	return clips
}

// FormatTimecode renders a duration as HH:MM:SS. Negative durations
// render as zero.
func FormatTimecode(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
