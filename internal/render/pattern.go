package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/casi-opea/ringed-laser-visualizer/internal/optics"
)

// Options carries the tunable rendering constants from the config file.
type Options struct {
	BaseScale   float64
	StrokeWidth float32
	SpotRadius  float32
}

var (
	ringColor      = color.RGBA{255, 0, 0, 255}
	crosshairColor = color.RGBA{45, 45, 45, 255}
	labelColor     = color.RGBA{255, 160, 160, 255}
	captionColor   = color.RGBA{150, 150, 150, 255}
)

// DrawPattern fully repaints dst with the diffraction pattern for p: black
// background, faint crosshair, central spot (order 0), one stroked circle per
// surviving ring with its order labeled at 3 o'clock, and a scale caption.
// Calling it twice with the same inputs paints the same pixels.
func DrawPattern(dst *ebiten.Image, p optics.Parameters, opt Options) {
	bounds := dst.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	cx := float32(w) / 2
	cy := float32(h) / 2

	dst.Fill(color.Black)

	vector.StrokeLine(dst, 0, cy, float32(w), cy, 1, crosshairColor, false)
	vector.StrokeLine(dst, cx, 0, cx, float32(h), 1, crosshairColor, false)

	// The undiffracted beam. Tinted by wavelength so the spot reads as the
	// laser itself.
	spot := WavelengthColor(p.WavelengthNm)
	vector.DrawFilledCircle(dst, cx, cy, opt.SpotRadius, spot, false)

	face := basicfont.Face7x13
	for _, ring := range optics.ComputeRings(p, opt.BaseScale, w, h) {
		r := float32(ring.PixelRadius)
		vector.StrokeCircle(dst, cx, cy, r, opt.StrokeWidth, ringColor, false)
		text.Draw(dst, strconv.Itoa(ring.Order), face, int(cx+r)+6, int(cy)+4, labelColor)
	}

	text.Draw(dst, "Ring spacing exaggerated for visibility (non-physical scale)",
		face, 10, h-8, captionColor)
}
