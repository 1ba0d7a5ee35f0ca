// Package animation provides time-driven scalar interpolation.
//
// An Animation moves a value from Start to Target over Duration seconds
// after an optional Delay, shaped by an easing curve. Owners poll Complete
// from their own Update instead of registering callbacks, which keeps the
// order of effects within a frame deterministic.
package animation

// Spec describes a single animation
type Spec struct {
	Start    float64
	Target   float64
	Duration float64 // seconds; <= 0 completes instantly
	Delay    float64 // seconds before progress starts
	Easing   EasingFunc
}

// Animation is a timed interpolator: Pending → Delaying → Running → Complete.
type Animation struct {
	spec Spec

	delayElapsed float64
	progress     float64
	value        float64
	complete     bool
}

// New creates an animation in the pending state.
// A nil easing defaults to EaseInOut and a negative delay to zero.
func New(spec Spec) *Animation {
	if spec.Easing == nil {
		spec.Easing = EaseInOut
	}
	if spec.Delay < 0 {
		spec.Delay = 0
	}
	return &Animation{
		spec:  spec,
		value: spec.Start,
	}
}

// Update advances the animation by dt seconds and returns the current value.
func (a *Animation) Update(dt float64) float64 {
	if a.complete {
		return a.spec.Target
	}

	// The frame that satisfies the delay does not also advance progress.
	if a.delayElapsed < a.spec.Delay {
		a.delayElapsed += dt
		return a.value
	}

	if a.spec.Duration <= 0 {
		a.progress = 1
	} else {
		a.progress = clamp01(a.progress + dt/a.spec.Duration)
	}
	if a.progress >= 1 {
		a.progress = 1
		a.complete = true
	}

	// Eased output is deliberately not clamped so back/bounce curves overshoot.
	eased := a.spec.Easing(a.progress)
	a.value = a.spec.Start + (a.spec.Target-a.spec.Start)*eased
	if a.complete {
		a.value = a.spec.Target
	}

	return a.value
}

// Reset rewinds the animation to its pending state
func (a *Animation) Reset() {
	a.delayElapsed = 0
	a.progress = 0
	a.complete = false
	a.value = a.spec.Start
}

// Value returns the last computed value
func (a *Animation) Value() float64 {
	return a.value
}

// Progress returns the linear progress in [0,1]
func (a *Animation) Progress() float64 {
	return a.progress
}

// Complete reports whether the animation has reached its target
func (a *Animation) Complete() bool {
	return a.complete
}

// Delaying reports whether the animation is still waiting out its delay
func (a *Animation) Delaying() bool {
	return !a.complete && a.delayElapsed < a.spec.Delay
}

// Spec returns the animation's configuration
func (a *Animation) Spec() Spec {
	return a.spec
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
