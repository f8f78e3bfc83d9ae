package optics

import "testing"

func TestPresetSizes(t *testing.T) {
	tests := []struct {
		material Material
		size     float64
		ok       bool
	}{
		{Lycopodium, 30, true},
		{Silica, 5, true},
		{Custom, 0, false},
		{Material(99), 0, false},
	}

	for _, tt := range tests {
		size, ok := tt.material.PresetSizeUm()
		if ok != tt.ok || size != tt.size {
			t.Errorf("%v: expected (%v, %v), got (%v, %v)", tt.material, tt.size, tt.ok, size, ok)
		}
	}
}

func TestParseMaterialRoundTrip(t *testing.T) {
	for _, m := range Materials() {
		parsed, err := ParseMaterial(m.String())
		if err != nil {
			t.Errorf("%v: parse failed: %v", m, err)
		}
		if parsed != m {
			t.Errorf("round trip changed %v to %v", m, parsed)
		}
	}
}

func TestParseMaterialUnknown(t *testing.T) {
	if _, err := ParseMaterial("unobtainium"); err == nil {
		t.Error("expected error for unknown material")
	}
}

func TestDisplayNames(t *testing.T) {
	if got := Lycopodium.DisplayName(); got != "Lycopodium Powder" {
		t.Errorf("unexpected display name %q", got)
	}
	if got := Silica.DisplayName(); got != "Silica Particles" {
		t.Errorf("unexpected display name %q", got)
	}
}
