package render

import (
	"image/color"
	"math"
)

// WavelengthColor approximates the perceived color of light at the given
// wavelength in nm. Outside the visible band (or for NaN input) it returns a
// neutral gray so the beam spot never disappears entirely.
func WavelengthColor(nm float64) color.RGBA {
	var r, g, b float64
	switch {
	case nm >= 380 && nm < 440:
		r, g, b = -(nm-440)/(440-380), 0, 1
	case nm >= 440 && nm < 490:
		r, g, b = 0, (nm-440)/(490-440), 1
	case nm >= 490 && nm < 510:
		r, g, b = 0, 1, -(nm-510)/(510-490)
	case nm >= 510 && nm < 580:
		r, g, b = (nm-510)/(580-510), 1, 0
	case nm >= 580 && nm < 645:
		r, g, b = 1, -(nm-645)/(645-580), 0
	case nm >= 645 && nm <= 780:
		r, g, b = 1, 0, 0
	default:
		return color.RGBA{180, 180, 180, 255}
	}

	// Fade toward the edges of the visible band.
	factor := 1.0
	switch {
	case nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm > 700:
		factor = 0.3 + 0.7*(780-nm)/(780-700)
	}

	return color.RGBA{
		R: uint8(math.Round(255 * r * factor)),
		G: uint8(math.Round(255 * g * factor)),
		B: uint8(math.Round(255 * b * factor)),
		A: 255,
	}
}
