package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/casi-opea/ringed-laser-visualizer/internal/optics"
)

// CaptionBandHeight is the extra strip added below the pattern in exports.
const CaptionBandHeight = 100

var (
	bandColor     = color.RGBA{20, 20, 28, 255}
	bandTextColor = color.RGBA{220, 220, 220, 255}
	bandTimeColor = color.RGBA{150, 150, 160, 255}
)

// Compose copies the rendered pattern verbatim onto a taller offscreen
// surface, draws the parameter caption and timestamp into the band below it,
// and reads the result back as a plain RGBA image ready for PNG encoding.
func Compose(pattern *ebiten.Image, p optics.Parameters, now time.Time) *image.RGBA {
	w := pattern.Bounds().Dx()
	h := pattern.Bounds().Dy()

	out := ebiten.NewImage(w, h+CaptionBandHeight)
	defer out.Deallocate()

	out.Fill(bandColor)
	out.DrawImage(pattern, nil)

	face := basicfont.Face7x13
	lines := CaptionLines(p)
	text.Draw(out, lines[0], face, 12, h+38, bandTextColor)
	text.Draw(out, lines[1], face, 12, h+62, bandTextColor)

	ts := Timestamp(now)
	tsWidth := text.BoundString(face, ts).Dx()
	text.Draw(out, ts, face, w-12-tsWidth, h+38, bandTimeColor)

	img := image.NewRGBA(image.Rect(0, 0, w, h+CaptionBandHeight))
	out.ReadPixels(img.Pix)
	return img
}

// Export prompts for a destination and writes the composed screenshot as a
// PNG. It returns the written path, or "" when the user cancels the dialog.
// Must be called from the game loop: it reads pixels off the pattern image.
func Export(pattern *ebiten.Image, p optics.Parameters) (string, error) {
	now := time.Now()

	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename(Filename(now)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}

	img := Compose(pattern, p, now)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}
