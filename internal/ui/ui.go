// Package ui provides the small set of widgets the scenes draw with:
// text labels, answer buttons and framed pictures.
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font metrics used by ebitenutil.DebugPrintAt
const (
	glyphW = 6
	glyphH = 16
)

// Label is a line (or lines) of text centered on X
type Label struct {
	Text    string
	X, Y    float64
	Scale   float64
	Opacity float64 // 0-255
	Visible bool
}

// NewLabel creates a visible, opaque label
func NewLabel(text string, x, y, scale float64) *Label {
	return &Label{Text: text, X: x, Y: y, Scale: scale, Opacity: 255, Visible: true}
}

// Draw renders the label centered horizontally on X
func (l *Label) Draw(dst *ebiten.Image) {
	if !l.Visible || l.Opacity <= 0 || l.Text == "" {
		return
	}
	drawText(dst, l.Text, l.X, l.Y, l.Scale, l.Opacity)
}

// textImages caches rendered debug-font text; cleared when it grows past maxCachedText
var textImages = map[string]*ebiten.Image{}

const maxCachedText = 256

func textImage(text string) *ebiten.Image {
	if img, ok := textImages[text]; ok {
		return img
	}

	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	if w == 0 {
		return nil
	}

	if len(textImages) >= maxCachedText {
		for k, img := range textImages {
			img.Deallocate()
			delete(textImages, k)
		}
	}
	img := ebiten.NewImage(w*glyphW, len(lines)*glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	textImages[text] = img
	return img
}

// drawText draws text horizontally centered on cx, scaled and faded
func drawText(dst *ebiten.Image, text string, cx, y, scale, opacity float64) {
	if scale <= 0 {
		scale = 1
	}
	img := textImage(text)
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(img.Bounds().Dx())*scale/2, y)
	op.ColorScale.ScaleAlpha(float32(clampAlpha(opacity) / 255))
	dst.DrawImage(img, op)
}

// Picture draws an image fitted inside a box
type Picture struct {
	Image   *ebiten.Image
	X, Y    float64
	W, H    float64
	Opacity float64
	Frame   color.RGBA
}

// Draw renders the frame and the image scaled to fit, preserving aspect
func (p *Picture) Draw(dst *ebiten.Image) {
	if p.Opacity <= 0 {
		return
	}
	alpha := clampAlpha(p.Opacity) / 255

	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), Faded(p.Frame, alpha), true)

	if p.Image == nil {
		return
	}
	b := p.Image.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	s := p.W / iw
	if p.H/ih < s {
		s = p.H / ih
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(p.X+(p.W-iw*s)/2, p.Y+(p.H-ih*s)/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(p.Image, op)
}

// DrawOverlay covers dst with c at the given opacity (0-255)
func DrawOverlay(dst *ebiten.Image, c color.RGBA, opacity float64) {
	b := dst.Bounds()
	a := clampAlpha(opacity) / 255
	vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), Faded(c, a), false)
}

// Faded returns c with its alpha scaled by alpha (0-1), as a non-premultiplied color
func Faded(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}

func clampAlpha(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// lerpColor interpolates between a and b; t is clamped to [0,1]
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
