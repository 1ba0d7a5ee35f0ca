// Package intro implements the title screen: the logo fades in, a prompt
// blinks, and any key fades the screen out into the quiz.
package intro

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/application/scene"
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/domain/animation"
	"github.com/younwookim/quizshow/internal/domain/input"
	"github.com/younwookim/quizshow/internal/infrastructure/config"
	"github.com/younwookim/quizshow/internal/ui"
)

const promptText = "Press any key to start"

// Scene is the intro state
type Scene struct {
	switcher scene.Switcher
	logger   *zap.Logger

	background color.RGBA
	overlay    color.RGBA

	logoFade  *animation.Animation // logo opacity 0 -> 255
	blink     *animation.Animation // prompt opacity, ping-pong
	blinkDown bool
	fadeOut   *animation.Animation // overlay opacity 0 -> 255

	leaving bool

	logo   *ui.Picture
	title  *ui.Label
	prompt *ui.Label
}

// New creates the intro scene. logo may be nil, in which case the title is drawn as text.
func New(cfg *config.Settings, sw scene.Switcher, logo *ebiten.Image, logger *zap.Logger) *Scene {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := float64(cfg.Display.ScreenWidth)
	h := float64(cfg.Display.ScreenHeight)

	s := &Scene{
		switcher:   sw,
		logger:     logger,
		background: config.MustColor(cfg.Palette.IntroBG),
		overlay:    config.MustColor(cfg.Palette.BackgroundDark),
		logoFade:   cfg.Animations.LogoFade.New(0, 255),
		blink:      cfg.Animations.PromptBlink.New(0, 255),
		fadeOut:    cfg.Animations.ScreenFade.New(0, 255),
		title:      ui.NewLabel(cfg.Display.Title, w/2, h*0.35, 5),
		prompt:     ui.NewLabel(promptText, w/2, h*0.75, 2),
	}
	if logo != nil {
		s.logo = &ui.Picture{Image: logo, X: w * 0.3, Y: h * 0.15, W: w * 0.4, H: h * 0.45}
	}
	return s
}

// OnEnter rewinds every animation
func (s *Scene) OnEnter() {
	s.logoFade.Reset()
	s.blink.Reset()
	s.blinkDown = false
	s.fadeOut.Reset()
	s.leaving = false
}

func (s *Scene) OnExit() {}

// HandleInput starts the fade-out once the logo is fully shown
func (s *Scene) HandleInput(events []input.Event, _ float64) {
	if s.leaving || !s.logoFade.Complete() {
		return
	}
	if input.AnyPressed(events) {
		s.leaving = true
		s.logger.Debug("intro dismissed")
	}
}

// Update advances the animations and switches to the quiz when the fade-out completes
func (s *Scene) Update(dt float64) {
	// The prompt starts blinking the frame after the logo is fully shown.
	if s.logoFade.Complete() {
		s.blink.Update(dt)
		if s.blink.Complete() {
			s.blinkDown = !s.blinkDown
			s.blink.Reset()
		}
	}
	s.logoFade.Update(dt)

	if !s.leaving {
		return
	}
	s.fadeOut.Update(dt)
	if s.fadeOut.Complete() {
		if err := s.switcher.Transition(state.Quiz); err != nil {
			// Stay on the intro; the next key press retries.
			s.leaving = false
			s.fadeOut.Reset()
		}
	}
}

// PromptOpacity returns the blinking prompt's current opacity (0-255)
func (s *Scene) PromptOpacity() float64 {
	if !s.logoFade.Complete() {
		return 0
	}
	if s.blinkDown {
		return 255 - s.blink.Value()
	}
	return s.blink.Value()
}

// Leaving reports whether the fade-out toward the quiz has started
func (s *Scene) Leaving() bool {
	return s.leaving
}

func (s *Scene) Draw(target *ebiten.Image) {
	target.Fill(s.background)

	opacity := s.logoFade.Value()
	if s.logo != nil {
		s.logo.Opacity = opacity
		s.logo.Draw(target)
	} else {
		s.title.Opacity = opacity
		s.title.Draw(target)
	}

	s.prompt.Opacity = s.PromptOpacity()
	s.prompt.Draw(target)

	if a := s.fadeOut.Value(); a > 0 {
		ui.DrawOverlay(target, s.overlay, a)
	}
}
