package render

import (
	"fmt"
	"time"

	"github.com/casi-opea/ringed-laser-visualizer/internal/optics"
)

// CaptionLines returns the two parameter rows printed in the caption band of
// an exported screenshot.
func CaptionLines(p optics.Parameters) [2]string {
	return [2]string{
		fmt.Sprintf("Material: %s | Wavelength: %g nm | Particle size: %g um",
			p.Material.DisplayName(), p.WavelengthNm, p.ParticleSizeUm),
		fmt.Sprintf("Screen distance: %g cm | Zoom: %.1fx", p.DistanceCm, p.Zoom),
	}
}

// Timestamp formats the capture time the way a locale-formatted date and time
// would appear, e.g. "8/27/2026, 3:04:05 PM".
func Timestamp(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}

// Filename builds the download-style name for an exported screenshot.
func Filename(t time.Time) string {
	return fmt.Sprintf("laser-diffraction-%d.png", t.UnixMilli())
}
