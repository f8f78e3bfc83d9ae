package optics

import "math"

// MaxOrder is the highest diffraction order considered. Beyond the tenth ring
// nothing fits on screen for any sensible input.
const MaxOrder = 10

// Ring is the geometry of one surviving diffraction order.
type Ring struct {
	Order       int
	SinTheta    float64
	Theta       float64 // radians
	RadiusM     float64 // physical radius at the screen plane
	PixelRadius float64
}

// ComputeRings evaluates the single-particle diffraction formula for orders
// 1..MaxOrder and returns the rings that both have a real diffraction angle
// and fit on a canvasW x canvasH surface.
//
// baseScale converts meters at the screen plane to pixels. It is an artistic
// constant, not a unit conversion: real ring radii are sub-millimeter and
// would be invisible at any honest scale.
//
// Orders with |sin(theta)| >= 1 have no real angle and are skipped. NaN from
// malformed input flows through the math and is dropped by the fits-on-canvas
// comparison, so bad input yields an empty pattern rather than an error.
func ComputeRings(p Parameters, baseScale float64, canvasW, canvasH int) []Ring {
	wavelength := p.WavelengthNm * 1e-9
	distance := p.DistanceCm * 1e-2
	size := p.ParticleSizeUm * 1e-6

	maxPixel := math.Min(float64(canvasW), float64(canvasH)) / 2

	rings := make([]Ring, 0, MaxOrder)
	for m := 1; m <= MaxOrder; m++ {
		sinTheta := float64(m) * wavelength / size
		if math.Abs(sinTheta) >= 1 {
			// angle would exceed 90 degrees
			continue
		}
		theta := math.Asin(sinTheta)
		radius := distance * math.Tan(theta)
		pixel := radius * baseScale * p.Zoom
		if !(pixel <= maxPixel) {
			// off-canvas; also catches NaN
			continue
		}
		rings = append(rings, Ring{
			Order:       m,
			SinTheta:    sinTheta,
			Theta:       theta,
			RadiusM:     radius,
			PixelRadius: pixel,
		})
	}
	return rings
}
