package editor

import "testing"

func TestAdjustments(t *testing.T) {
	specs := Adjustments()
	if len(specs) != 7 {
		t.Fatalf("expected 7 adjustment sliders, got %d", len(specs))
	}

	byKey := make(map[string]SliderSpec, len(specs))
	for _, spec := range specs {
		byKey[spec.Key] = spec
		if spec.Min != -100 || spec.Max != 100 {
			t.Errorf("%s range = [%v, %v], want [-100, 100]", spec.Key, spec.Min, spec.Max)
		}
		if spec.Resolution != 0.01 {
			t.Errorf("%s resolution = %v, want 0.01", spec.Key, spec.Resolution)
		}
	}

	if byKey["levels"].Default != 1.0 {
		t.Errorf("levels default = %v, want 1.0", byKey["levels"].Default)
	}
	if byKey["brightness"].Default != 0 {
		t.Errorf("brightness default = %v, want 0", byKey["brightness"].Default)
	}
	if byKey["brightness"].Label != "Brightness" {
		t.Errorf("brightness label = %q, want %q", byKey["brightness"].Label, "Brightness")
	}
	if byKey["highlights"].Label != "Highlights" {
		t.Errorf("highlights label = %q, want %q", byKey["highlights"].Label, "Highlights")
	}
}

func TestAdjustmentsOrder(t *testing.T) {
	want := []string{"brightness", "contrast", "shadows", "highlights", "whites", "blacks", "levels"}
	specs := Adjustments()
	if len(specs) != len(want) {
		t.Fatalf("expected %d sliders, got %d", len(want), len(specs))
	}
	for i, key := range want {
		if specs[i].Key != key {
			t.Errorf("specs[%d].Key = %q, want %q", i, specs[i].Key, key)
		}
	}
}

func TestMixerChannels(t *testing.T) {
	specs := MixerChannels()
	if len(specs) != 3 {
		t.Fatalf("expected 3 mixer sliders, got %d", len(specs))
	}

	wantKeys := []string{"r", "g", "b"}
	wantLabels := []string{"R", "G", "B"}
	for i, spec := range specs {
		if spec.Key != wantKeys[i] {
			t.Errorf("specs[%d].Key = %q, want %q", i, spec.Key, wantKeys[i])
		}
		if spec.Label != wantLabels[i] {
			t.Errorf("specs[%d].Label = %q, want %q", i, spec.Label, wantLabels[i])
		}
		if spec.Min != 0 || spec.Max != 255 {
			t.Errorf("%s range = [%v, %v], want [0, 255]", spec.Key, spec.Min, spec.Max)
		}
		if spec.Default != 128 {
			t.Errorf("%s default = %v, want 128", spec.Key, spec.Default)
		}
		if spec.Resolution != 1 {
			t.Errorf("%s resolution = %v, want 1", spec.Key, spec.Resolution)
		}
	}
}
