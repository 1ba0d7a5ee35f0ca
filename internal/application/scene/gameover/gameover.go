// Package gameover implements the result screen shown after a session.
package gameover

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/application/scene"
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/domain/animation"
	"github.com/younwookim/quizshow/internal/domain/input"
	"github.com/younwookim/quizshow/internal/domain/quiz"
	"github.com/younwookim/quizshow/internal/infrastructure/config"
	"github.com/younwookim/quizshow/internal/ui"
)

// ResultSource provides the result of the session that just ended
type ResultSource interface {
	Result() quiz.Result
}

// Scene is the game over state
type Scene struct {
	switcher scene.Switcher
	source   ResultSource
	logger   *zap.Logger

	cx, cy float64

	logoFade *animation.Animation // logo opacity 0 -> 255
	circle   *animation.Animation // circle radius 0 -> screen diagonal / 2
	idle     *animation.Animation // time until returning to the intro unprompted
	fadeOut  *animation.Animation // overlay 0 -> 255

	leaving bool
	result  quiz.Result

	background color.RGBA
	circleFill color.RGBA
	overlay    color.RGBA

	logo   *ui.Picture
	title  *ui.Label
	score  *ui.Label
	prompt *ui.Label
}

// New creates the game over scene. logo may be nil.
func New(cfg *config.Settings, sw scene.Switcher, source ResultSource, logo *ebiten.Image, logger *zap.Logger) *Scene {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := float64(cfg.Display.ScreenWidth)
	h := float64(cfg.Display.ScreenHeight)

	s := &Scene{
		switcher:   sw,
		source:     source,
		logger:     logger,
		cx:         w / 2,
		cy:         h / 2,
		logoFade:   cfg.Animations.ResultFade.New(0, 255),
		circle:     cfg.Animations.CircleGrow.New(0, math.Hypot(w, h)/2),
		idle:       cfg.Animations.IdleReturn.New(0, 1),
		fadeOut:    cfg.Animations.ScreenFade.New(0, 255),
		background: config.MustColor(cfg.Palette.BackgroundDark),
		circleFill: config.MustColor(cfg.Palette.Background),
		overlay:    config.MustColor(cfg.Palette.IntroBG),
		title:      ui.NewLabel("Game Over", w/2, h*0.12, 4),
		score:      ui.NewLabel("", w/2, h*0.5, 4),
		prompt:     ui.NewLabel("Press any key", w/2, h*0.8, 2),
	}
	if logo != nil {
		s.logo = &ui.Picture{Image: logo, X: w * 0.4, Y: h * 0.22, W: w * 0.2, H: h * 0.2}
	}
	return s
}

// OnEnter captures the finished session's result and rewinds the animations
func (s *Scene) OnEnter() {
	if s.source != nil {
		s.result = s.source.Result()
	}
	s.score.Text = fmt.Sprintf("%d / %d", s.result.Score, s.result.Total)

	s.logoFade.Reset()
	s.circle.Reset()
	s.idle.Reset()
	s.fadeOut.Reset()
	s.leaving = false
}

func (s *Scene) OnExit() {}

// HandleInput leaves for the intro on any key once the score is shown
func (s *Scene) HandleInput(events []input.Event, _ float64) {
	if s.leaving || !s.ScoreVisible() {
		return
	}
	if input.AnyPressed(events) {
		s.leave("key")
	}
}

func (s *Scene) leave(reason string) {
	s.leaving = true
	s.logger.Debug("leaving result screen", zap.String("reason", reason))
}

func (s *Scene) Update(dt float64) {
	// The idle timer starts the frame after the score appears.
	visible := s.ScoreVisible()
	s.logoFade.Update(dt)
	s.circle.Update(dt)

	if visible && !s.leaving {
		s.idle.Update(dt)
		if s.idle.Complete() {
			s.leave("idle")
		}
	}

	if !s.leaving {
		return
	}
	s.fadeOut.Update(dt)
	if s.fadeOut.Complete() {
		if err := s.switcher.Transition(state.Intro); err != nil {
			s.leaving = false
			s.fadeOut.Reset()
			s.idle.Reset()
		}
	}
}

// ScoreVisible reports whether the circle has finished growing and the score is on screen
func (s *Scene) ScoreVisible() bool {
	return s.circle.Complete()
}

// Leaving reports whether the fade back to the intro has started
func (s *Scene) Leaving() bool {
	return s.leaving
}

// ShownResult returns the result captured on entry
func (s *Scene) ShownResult() quiz.Result {
	return s.result
}

func (s *Scene) Draw(target *ebiten.Image) {
	target.Fill(s.background)

	if r := s.circle.Value(); r > 0 {
		vector.DrawFilledCircle(target, float32(s.cx), float32(s.cy), float32(r), s.circleFill, true)
	}

	opacity := s.logoFade.Value()
	if s.logo != nil {
		s.logo.Opacity = opacity
		s.logo.Draw(target)
	}
	s.title.Opacity = opacity
	s.title.Draw(target)

	if s.ScoreVisible() {
		s.score.Draw(target)
		s.prompt.Draw(target)
	}

	if a := s.fadeOut.Value(); a > 0 {
		ui.DrawOverlay(target, s.overlay, a)
	}
}
