package ui

import (
	"errors"
	"image"
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/casi-opea/ringed-laser-visualizer/internal/config"
	"github.com/casi-opea/ringed-laser-visualizer/internal/optics"
	"github.com/casi-opea/ringed-laser-visualizer/internal/render"
)

const (
	margin     = 24
	panelWidth = 280
	fieldH     = 26
	fieldW     = 150
	rowStride  = 48
	statusH    = 48
)

var (
	windowBg    = color.RGBA{28, 28, 34, 255}
	canvasEdge  = color.RGBA{70, 80, 100, 255}
	titleColor  = color.RGBA{235, 235, 240, 255}
	statusColor = color.RGBA{160, 165, 180, 255}
)

// App owns the whole visualization state: the current parameters, the
// offscreen pattern image, and the control panel widgets. Any mutation marks
// the pattern dirty; Update re-renders it once before the next frame.
type App struct {
	cfg    *config.Config
	params optics.Parameters

	pattern *ebiten.Image
	dirty   bool

	wavelengthField *NumericField
	distanceField   *NumericField
	sizeField       *NumericField
	materialSel     *Selector
	zoomSlider      *Slider
	generateBtn     *Button
	captureBtn      *Button

	// Last value typed under the custom material, restored when the user
	// switches back from a preset.
	customSizeText string

	canvasX, canvasY int
	windowW, windowH int

	status string
}

// New builds the app from a loaded config.
func New(cfg *config.Config) (*App, error) {
	params, err := cfg.Parameters()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:            cfg,
		params:         params,
		dirty:          true,
		customSizeText: strconv.FormatFloat(cfg.Params.ParticleSizeUm, 'g', -1, 64),
		canvasX:        margin + panelWidth + margin,
		canvasY:        margin,
		status:         "ready",
	}
	a.windowW = a.canvasX + cfg.Render.CanvasWidth + margin
	a.windowH = a.canvasY + cfg.Render.CanvasHeight + statusH

	a.buildPanel()
	return a, nil
}

func (a *App) buildPanel() {
	x := margin
	y := margin + 36

	row := func() image.Rectangle {
		r := image.Rect(x, y, x+fieldW, y+fieldH)
		y += rowStride
		return r
	}

	a.wavelengthField = &NumericField{
		Label:   "Wavelength (nm)",
		Hint:    "400-700",
		Rect:    row(),
		Enabled: true,
		OnCommit: func() {
			a.params.WavelengthNm = a.wavelengthField.Value()
			a.dirty = true
		},
	}
	a.wavelengthField.SetValue(a.params.WavelengthNm)

	a.distanceField = &NumericField{
		Label:   "Screen distance (cm)",
		Hint:    "10-500",
		Rect:    row(),
		Enabled: true,
		OnCommit: func() {
			a.params.DistanceCm = a.distanceField.Value()
			a.dirty = true
		},
	}
	a.distanceField.SetValue(a.params.DistanceCm)

	a.sizeField = &NumericField{
		Label:   "Particle size (um)",
		Hint:    "1-100",
		Rect:    row(),
		Enabled: a.params.SizeEditable(),
		OnCommit: func() {
			a.params.ParticleSizeUm = a.sizeField.Value()
			a.customSizeText = a.sizeField.Text
			a.dirty = true
		},
	}
	a.sizeField.SetValue(a.params.ParticleSizeUm)

	materials := optics.Materials()
	names := make([]string, len(materials))
	index := 0
	for i, m := range materials {
		names[i] = m.DisplayName()
		if m == a.params.Material {
			index = i
		}
	}
	a.materialSel = &Selector{
		Label:   "Material",
		Rect:    image.Rect(x, y, x+fieldW+60, y+fieldH),
		Options: names,
		Index:   index,
		OnChange: func(i int) {
			a.selectMaterial(materials[i])
		},
	}
	y += rowStride

	a.zoomSlider = &Slider{
		Label: "Zoom",
		Rect:  image.Rect(x, y, x+fieldW+30, y+16),
		Min:   config.DefaultZoomMin,
		Max:   config.DefaultZoomMax,
		Step:  config.DefaultZoomStep,
		Value: a.params.Zoom,
		OnChange: func(v float64) {
			a.params.Zoom = v
			a.dirty = true
		},
	}
	y += rowStride

	a.generateBtn = &Button{
		Label: "Generate Pattern",
		Rect:  image.Rect(x, y, x+fieldW+60, y+36),
		OnClick: func() {
			a.dirty = true
			a.status = "pattern regenerated"
		},
	}
	y += 48

	a.captureBtn = &Button{
		Label: "Capture Screenshot",
		Rect:  image.Rect(x, y, x+fieldW+60, y+36),
		OnClick: func() {
			a.exportScreenshot()
		},
	}
}

// selectMaterial runs the derivation pipeline: presets pin the size field,
// custom restores the last value the user typed.
func (a *App) selectMaterial(m optics.Material) {
	if a.params.Material == optics.Custom {
		a.customSizeText = a.sizeField.Text
	}
	a.params.SetMaterial(m)

	if m == optics.Custom {
		a.sizeField.Text = a.customSizeText
		a.params.ParticleSizeUm = a.sizeField.Value()
	} else {
		a.sizeField.SetValue(a.params.ParticleSizeUm)
	}
	a.sizeField.Enabled = a.params.SizeEditable()
	a.dirty = true
}

func (a *App) exportScreenshot() {
	if a.pattern == nil {
		a.status = "nothing to capture yet"
		return
	}
	path, err := render.Export(a.pattern, a.params)
	if err != nil {
		// Never fatal: the pattern on screen is untouched.
		log.Printf("screenshot export failed: %v", err)
		a.status = "screenshot failed: " + err.Error()
		return
	}
	if path == "" {
		a.status = "screenshot canceled"
		return
	}
	a.status = "saved " + path
}

func (a *App) editing() bool {
	return a.wavelengthField.Focused() || a.distanceField.Focused() || a.sizeField.Focused()
}

func (a *App) regenerate() {
	if a.pattern == nil {
		a.pattern = ebiten.NewImage(a.cfg.Render.CanvasWidth, a.cfg.Render.CanvasHeight)
	}
	render.DrawPattern(a.pattern, a.params, render.Options{
		BaseScale:   a.cfg.Render.BaseScale,
		StrokeWidth: float32(a.cfg.Render.StrokeWidth),
		SpotRadius:  float32(a.cfg.Render.SpotRadius),
	})
	a.dirty = false
}

func (a *App) Update() error {
	a.wavelengthField.Update()
	a.distanceField.Update()
	a.sizeField.Update()
	a.materialSel.Update()
	a.zoomSlider.Update()
	a.generateBtn.Update()
	a.captureBtn.Update()

	// Shortcuts are suppressed while a field has keyboard focus.
	if !a.editing() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.dirty = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			a.exportScreenshot()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
	}

	if a.dirty {
		a.regenerate()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(windowBg)

	text.Draw(screen, "Laser Diffraction Visualizer", face, margin, margin+10, titleColor)

	a.wavelengthField.Draw(screen)
	a.distanceField.Draw(screen)
	a.sizeField.Draw(screen)
	a.materialSel.Draw(screen)
	a.zoomSlider.Draw(screen)
	a.generateBtn.Draw(screen)
	a.captureBtn.Draw(screen)

	// Laser color swatch beside the wavelength field.
	swatch := render.WavelengthColor(a.params.WavelengthNm)
	fr := a.wavelengthField.Rect
	vector.DrawFilledCircle(screen, float32(fr.Max.X+75), float32(fr.Min.Y+fr.Dy()/2), 6, swatch, false)

	if a.pattern != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(a.canvasX), float64(a.canvasY))
		screen.DrawImage(a.pattern, opts)
	}
	vector.StrokeRect(screen, float32(a.canvasX)-1, float32(a.canvasY)-1,
		float32(a.cfg.Render.CanvasWidth)+2, float32(a.cfg.Render.CanvasHeight)+2, 1, canvasEdge, false)

	text.Draw(screen, a.status, face, margin, a.windowH-14, statusColor)
	ebitenutil.DebugPrintAt(screen, "Space: regenerate | S: screenshot | Esc/Q: quit",
		a.canvasX, a.windowH-26)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.windowW, a.windowH
}

// Run opens the visualizer window and blocks until it closes.
func Run(cfg *config.Config) error {
	app, err := New(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(app.windowW, app.windowH)
	ebiten.SetWindowTitle("Laser Diffraction Visualizer")

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
