package editor

import "strings"

// SliderSpec describes one labeled slider row in the properties panel.
type SliderSpec struct {
	Key        string
	Label      string
	Min        float64
	Max        float64
	Default    float64
	Resolution float64
}

var adjustmentKeys = []string{"brightness", "contrast", "shadows", "highlights", "whites", "blacks", "levels"}

var mixerKeys = []string{"r", "g", "b"}

// Adjustments returns the Adjustments section sliders in display order.
// Levels starts at its neutral value 1; every other adjustment at 0.
func Adjustments() []SliderSpec {
	specs := make([]SliderSpec, 0, len(adjustmentKeys))
	for _, key := range adjustmentKeys {
		def := 0.0
		if key == "levels" {
			def = 1.0
		}
		specs = append(specs, SliderSpec{
			Key:        key,
			Label:      capitalize(key),
			Min:        -100,
			Max:        100,
			Default:    def,
			Resolution: 0.01,
		})
	}
	return specs
}

// MixerChannels returns the Color Mixer sliders in display order.
func MixerChannels() []SliderSpec {
	specs := make([]SliderSpec, 0, len(mixerKeys))
	for _, key := range mixerKeys {
		specs = append(specs, SliderSpec{
			Key:        key,
			Label:      strings.ToUpper(key),
			Min:        0,
			Max:        255,
			Default:    128,
			Resolution: 1,
		})
	}
	return specs
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
