package optics

import "fmt"

// Material identifies a sample preset. The set is closed: the selector in the
// UI only ever produces one of these values.
type Material int

const (
	Lycopodium Material = iota
	Silica
	Custom
)

// presetSizeUm maps preset materials to their fixed particle size. Custom has
// no entry on purpose; its size is whatever the user typed.
var presetSizeUm = map[Material]float64{
	Lycopodium: 30,
	Silica:     5,
}

// PresetSizeUm returns the fixed particle size for a preset material.
// ok is false for Custom and unknown values.
func (m Material) PresetSizeUm() (float64, bool) {
	size, ok := presetSizeUm[m]
	return size, ok
}

func (m Material) String() string {
	switch m {
	case Lycopodium:
		return "lycopodium"
	case Silica:
		return "silica"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("material(%d)", int(m))
	}
}

// DisplayName is the capitalized label shown in the selector and captions.
func (m Material) DisplayName() string {
	switch m {
	case Lycopodium:
		return "Lycopodium Powder"
	case Silica:
		return "Silica Particles"
	case Custom:
		return "Custom"
	default:
		return m.String()
	}
}

// Materials lists every selectable material in display order.
func Materials() []Material {
	return []Material{Lycopodium, Silica, Custom}
}

// ParseMaterial converts a config/CLI string into a Material.
func ParseMaterial(s string) (Material, error) {
	switch s {
	case "lycopodium":
		return Lycopodium, nil
	case "silica":
		return Silica, nil
	case "custom":
		return Custom, nil
	default:
		return Custom, fmt.Errorf("unknown material: %q", s)
	}
}
