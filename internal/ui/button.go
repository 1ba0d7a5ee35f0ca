package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/quizshow/internal/domain/animation"
)

// Button is an answer slot. Its background eases between colors when
// feedback is shown; OffsetY and Opacity are driven by the owning scene.
type Button struct {
	Text    string
	X, Y    float64
	W, H    float64
	OffsetY float64
	Opacity float64
	Label   string // key hint drawn in the corner, e.g. "A"

	base   color.RGBA
	from   color.RGBA
	to     color.RGBA
	fade   *animation.Animation
	timing animation.Spec
}

// NewButton creates a button; timing shapes the color transition (Start/Target are ignored)
func NewButton(label string, x, y, w, h float64, base color.RGBA, timing animation.Spec) *Button {
	timing.Start, timing.Target = 0, 1
	b := &Button{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Opacity: 255,
		base:    base,
		from:    base,
		to:      base,
		timing:  timing,
		fade:    animation.New(timing),
	}
	b.ResetColor()
	return b
}

// TransitionTo starts easing the background toward c
func (b *Button) TransitionTo(c color.RGBA) {
	b.from = b.Color()
	b.to = c
	b.fade.Reset()
}

// ResetColor snaps back to the base color with no transition pending
func (b *Button) ResetColor() {
	b.from, b.to = b.base, b.base
	b.fade.Reset()
	b.fade.Update(b.timing.Delay + 1)
	b.fade.Update(b.timing.Duration + 1)
}

// Update advances the color transition
func (b *Button) Update(dt float64) {
	b.fade.Update(dt)
}

// TransitionDone reports whether the color transition has finished
func (b *Button) TransitionDone() bool {
	return b.fade.Complete()
}

// Color returns the current background color
func (b *Button) Color() color.RGBA {
	return lerpColor(b.from, b.to, b.fade.Value())
}

// Draw renders the button
func (b *Button) Draw(dst *ebiten.Image) {
	if b.Opacity <= 0 {
		return
	}
	alpha := clampAlpha(b.Opacity) / 255
	y := b.Y + b.OffsetY
	vector.DrawFilledRect(dst, float32(b.X), float32(y), float32(b.W), float32(b.H), Faded(b.Color(), alpha), true)

	if b.Label != "" {
		drawText(dst, b.Label, b.X+12, y+6, 1.5, b.Opacity)
	}
	drawText(dst, b.Text, b.X+b.W/2, y+b.H/2-glyphH, 2, b.Opacity)
}
