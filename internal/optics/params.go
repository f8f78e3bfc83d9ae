package optics

// Parameters is the full input state of the visualization. Values stay in the
// units the user types (nm, cm, um); conversion to SI happens only inside
// ComputeRings.
type Parameters struct {
	WavelengthNm   float64
	DistanceCm     float64
	ParticleSizeUm float64
	Material       Material
	Zoom           float64
}

// DefaultParameters returns the state the visualization starts with.
func DefaultParameters() Parameters {
	p := Parameters{
		WavelengthNm:   650,
		DistanceCm:     100,
		ParticleSizeUm: 10,
		Zoom:           1.0,
	}
	p.SetMaterial(Lycopodium)
	return p
}

// SetMaterial switches the sample material and derives the particle size:
// presets overwrite it with their fixed value, Custom keeps whatever is
// already there, and unknown values leave the size untouched.
func (p *Parameters) SetMaterial(m Material) {
	p.Material = m
	if size, ok := m.PresetSizeUm(); ok {
		p.ParticleSizeUm = size
	}
}

// SizeEditable reports whether the particle-size field accepts input. Preset
// materials pin the size, so only Custom is editable.
func (p Parameters) SizeEditable() bool {
	return p.Material == Custom
}
