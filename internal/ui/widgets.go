package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	labelColor    = color.RGBA{200, 205, 215, 255}
	hintColor     = color.RGBA{110, 115, 130, 255}
	valueColor    = color.RGBA{235, 235, 240, 255}
	disabledText  = color.RGBA{120, 120, 130, 255}
	boxColor      = color.RGBA{38, 42, 52, 255}
	boxDisabled   = color.RGBA{30, 32, 38, 255}
	borderColor   = color.RGBA{70, 80, 100, 255}
	borderFocused = color.RGBA{120, 160, 220, 255}

	buttonColor        = color.RGBA{100, 120, 160, 255}
	buttonHoverColor   = color.RGBA{80, 100, 140, 255}
	buttonPressedColor = color.RGBA{60, 80, 120, 255}
	buttonBorderColor  = color.RGBA{150, 170, 200, 255}

	trackColor  = color.RGBA{38, 42, 52, 255}
	fillColor   = color.RGBA{100, 120, 160, 255}
	handleColor = color.RGBA{230, 230, 235, 255}
)

var face = basicfont.Face7x13

func cursorIn(r image.Rectangle) bool {
	mx, my := ebiten.CursorPosition()
	return image.Pt(mx, my).In(r)
}

// Button is a clickable rectangle with hover and pressed states. The click
// fires on release while still hovered.
type Button struct {
	Label   string
	Rect    image.Rectangle
	OnClick func()

	hovered bool
	pressed bool
}

func (b *Button) Update() {
	b.hovered = cursorIn(b.Rect)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && b.hovered && b.OnClick != nil {
			b.OnClick()
		}
		b.pressed = false
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := buttonColor
	if b.pressed {
		bg = buttonPressedColor
	} else if b.hovered {
		bg = buttonHoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, false)

	tw := text.BoundString(face, b.Label).Dx()
	tx := b.Rect.Min.X + (b.Rect.Dx()-tw)/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+7)/2
	text.Draw(screen, b.Label, face, tx, ty, valueColor)
}

// Slider is a horizontal drag control quantized to Step.
type Slider struct {
	Label          string
	Rect           image.Rectangle
	Min, Max, Step float64
	Value          float64
	OnChange       func(float64)

	hovered  bool
	dragging bool
}

func (s *Slider) Update() {
	s.hovered = cursorIn(s.Rect)

	if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return
	}

	mx, _ := ebiten.CursorPosition()
	frac := float64(mx-s.Rect.Min.X) / float64(s.Rect.Dx())
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	v := s.Min + math.Round(frac*(s.Max-s.Min)/s.Step)*s.Step
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if v != s.Value {
		s.Value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
}

func (s *Slider) Draw(screen *ebiten.Image) {
	text.Draw(screen, s.Label, face, s.Rect.Min.X, s.Rect.Min.Y-6, labelColor)

	x, y := float32(s.Rect.Min.X), float32(s.Rect.Min.Y)
	w, h := float32(s.Rect.Dx()), float32(s.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, trackColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)

	frac := (s.Value - s.Min) / (s.Max - s.Min)
	vector.DrawFilledRect(screen, x, y, w*float32(frac), h, fillColor, false)

	hx := x + w*float32(frac)
	vector.DrawFilledCircle(screen, hx, y+h/2, 7, handleColor, false)
	vector.StrokeCircle(screen, hx, y+h/2, 7, 2, borderColor, false)

	val := strconv.FormatFloat(s.Value, 'f', 1, 64) + "x"
	text.Draw(screen, val, face, s.Rect.Max.X+10, s.Rect.Min.Y+s.Rect.Dy()/2+4, valueColor)
}

// NumericField is a click-to-focus text box accepting numeric characters.
// Whatever ends up in it is parsed leniently: anything unparseable reads as
// NaN and flows through the formula, which simply draws no rings.
type NumericField struct {
	Label    string
	Hint     string // advisory range, never enforced
	Rect     image.Rectangle
	Text     string
	Enabled  bool
	OnCommit func()

	hovered bool
	focused bool
	blink   int
}

func (f *NumericField) Update() {
	f.hovered = cursorIn(f.Rect)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if f.hovered && f.Enabled {
			f.focused = true
			f.blink = 0
		} else if f.focused {
			f.commit()
		}
	}
	if f.focused && !f.Enabled {
		f.focused = false
	}
	if !f.focused {
		return
	}
	f.blink++

	for _, r := range ebiten.AppendInputChars(nil) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == 'e' {
			f.Text += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(f.Text) > 0 {
		f.Text = f.Text[:len(f.Text)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		f.commit()
	}
}

func (f *NumericField) commit() {
	f.focused = false
	if f.OnCommit != nil {
		f.OnCommit()
	}
}

func (f *NumericField) Focused() bool { return f.focused }

// Value parses the field contents; NaN for anything unparseable, including
// an empty field.
func (f *NumericField) Value() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Text), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (f *NumericField) SetValue(v float64) {
	f.Text = strconv.FormatFloat(v, 'g', -1, 64)
}

func (f *NumericField) Draw(screen *ebiten.Image) {
	text.Draw(screen, f.Label, face, f.Rect.Min.X, f.Rect.Min.Y-6, labelColor)

	x, y := float32(f.Rect.Min.X), float32(f.Rect.Min.Y)
	w, h := float32(f.Rect.Dx()), float32(f.Rect.Dy())

	bg := boxColor
	if !f.Enabled {
		bg = boxDisabled
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	border := borderColor
	if f.focused {
		border = borderFocused
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)

	tc := valueColor
	if !f.Enabled {
		tc = disabledText
	}
	shown := f.Text
	if f.focused && (f.blink/30)%2 == 0 {
		shown += "_"
	}
	text.Draw(screen, shown, face, f.Rect.Min.X+6, f.Rect.Min.Y+f.Rect.Dy()/2+4, tc)

	if f.Hint != "" {
		text.Draw(screen, f.Hint, face, f.Rect.Max.X+10, f.Rect.Min.Y+f.Rect.Dy()/2+4, hintColor)
	}
}

// Selector cycles through a closed list of options on click.
type Selector struct {
	Label    string
	Rect     image.Rectangle
	Options  []string
	Index    int
	OnChange func(int)

	hovered bool
	pressed bool
}

func (s *Selector) Update() {
	s.hovered = cursorIn(s.Rect)
	if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if s.pressed && s.hovered && len(s.Options) > 0 {
			s.Index = (s.Index + 1) % len(s.Options)
			if s.OnChange != nil {
				s.OnChange(s.Index)
			}
		}
		s.pressed = false
	}
}

func (s *Selector) Draw(screen *ebiten.Image) {
	text.Draw(screen, s.Label, face, s.Rect.Min.X, s.Rect.Min.Y-6, labelColor)

	x, y := float32(s.Rect.Min.X), float32(s.Rect.Min.Y)
	w, h := float32(s.Rect.Dx()), float32(s.Rect.Dy())

	bg := boxColor
	if s.hovered {
		bg = buttonHoverColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)

	if len(s.Options) > 0 {
		text.Draw(screen, s.Options[s.Index], face, s.Rect.Min.X+6, s.Rect.Min.Y+s.Rect.Dy()/2+4, valueColor)
	}
	text.Draw(screen, ">", face, s.Rect.Max.X-14, s.Rect.Min.Y+s.Rect.Dy()/2+4, hintColor)
}
