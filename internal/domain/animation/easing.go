package animation

import (
	"math"
	"strings"
)

// EasingFunc remaps normalized progress in [0,1].
// Curves may leave [0,1] in between (back/bounce), but must map 0→0 and 1→1.
type EasingFunc func(t float64) float64

// Linear returns t unchanged
func Linear(t float64) float64 {
	return t
}

// EaseInOut is a sine ease-in-out curve
func EaseInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseInQuad accelerates from zero velocity
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad decelerates to zero velocity
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic decelerates harder than EaseOutQuad
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseOutBack overshoots the target slightly before settling
func EaseOutBack(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// EaseOutBounce bounces against the target like a dropped ball
func EaseOutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

var easings = map[string]EasingFunc{
	"linear":        Linear,
	"easeinout":     EaseInOut,
	"easeinquad":    EaseInQuad,
	"easeoutquad":   EaseOutQuad,
	"easeoutcubic":  EaseOutCubic,
	"easeoutback":   EaseOutBack,
	"easeoutbounce": EaseOutBounce,
}

// ByName resolves an easing from config ("easeOutBack", "ease_out_back", ...).
// Unknown or empty names fall back to EaseInOut.
func ByName(name string) EasingFunc {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	if fn, ok := easings[key]; ok {
		return fn
	}
	return EaseInOut
}
