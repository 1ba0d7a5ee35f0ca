// Package quizplay implements the quiz state: questions fade in, answer
// buttons slide up, the chosen answer is coloured as feedback, and the
// finished session is reported before fading out to the result screen.
package quizplay

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/application/scene"
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/domain/animation"
	"github.com/younwookim/quizshow/internal/domain/input"
	"github.com/younwookim/quizshow/internal/domain/quiz"
	"github.com/younwookim/quizshow/internal/infrastructure/config"
	"github.com/younwookim/quizshow/internal/ui"
)

// Phase is the quiz scene's position within a question
type Phase int

const (
	PhaseEntering Phase = iota // question and buttons animating in
	PhaseAwaiting              // waiting for an answer
	PhaseFeedback              // showing right/wrong colours
	PhaseLeaving               // question fading out
	PhaseExiting               // screen fading out after the last question
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "Entering"
	case PhaseAwaiting:
		return "Awaiting"
	case PhaseFeedback:
		return "Feedback"
	case PhaseLeaving:
		return "Leaving"
	case PhaseExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

var slotLabels = [quiz.OptionCount]string{"A", "B", "C", "D"}

// ResultSink receives the result of every finished session
type ResultSink interface {
	Record(result quiz.Result)
}

// ImagePicker supplies the picture shown with a question
type ImagePicker interface {
	Pick(theme string) *ebiten.Image
}

// Deps are the collaborators of the quiz scene. Only Pool is required.
type Deps struct {
	Pool       []quiz.RawQuestion
	Randomizer *quiz.Randomizer
	Sink       ResultSink
	Images     ImagePicker
	Logger     *zap.Logger
}

// Scene is the quiz state
type Scene struct {
	cfg      *config.Settings
	switcher scene.Switcher
	deps     Deps
	logger   *zap.Logger

	session *quiz.Session
	phase   Phase
	current quiz.Question

	elapsed       float64 // seconds since the current question became answerable
	responseTimes []float64
	lastCorrect   bool
	reported      bool

	screenFade   *animation.Animation // overlay 255 -> 0 on enter
	questionFade *animation.Animation // question opacity 0 -> 255
	slides       [quiz.OptionCount]*animation.Animation
	feedback     *animation.Animation
	leaveFade    *animation.Animation // question opacity 255 -> 0
	exitFade     *animation.Animation // overlay 0 -> 255

	background color.RGBA
	overlay    color.RGBA
	correct    color.RGBA
	wrong      color.RGBA

	buttons  [quiz.OptionCount]*ui.Button
	prompt   *ui.Label
	score    *ui.Label
	progress *ui.Label
	picture  *ui.Picture
}

// New creates the quiz scene
func New(cfg *config.Settings, sw scene.Switcher, deps Deps) *Scene {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Randomizer == nil {
		deps.Randomizer = quiz.NewRandomizer()
	}

	w := float64(cfg.Display.ScreenWidth)
	h := float64(cfg.Display.ScreenHeight)
	anims := cfg.Animations

	s := &Scene{
		cfg:          cfg,
		switcher:     sw,
		deps:         deps,
		logger:       deps.Logger,
		screenFade:   anims.ScreenFade.New(255, 0),
		questionFade: anims.QuestionFade.New(0, 255),
		feedback:     anims.Feedback.New(0, 1),
		leaveFade:    anims.QuestionFade.New(255, 0),
		exitFade:     anims.ScreenFade.New(0, 255),
		background:   config.MustColor(cfg.Palette.Background),
		overlay:      config.MustColor(cfg.Palette.BackgroundDark),
		correct:      config.MustColor(cfg.Palette.Correct),
		wrong:        config.MustColor(cfg.Palette.Wrong),
		prompt:       ui.NewLabel("", w/2, h*0.06, 2.5),
		score:        ui.NewLabel("", w-70, 16, 2),
		progress:     ui.NewLabel("", 70, 16, 2),
		picture: &ui.Picture{
			X: w * 0.3, Y: h * 0.18, W: w * 0.4, H: h * 0.34,
			Frame: config.MustColor(cfg.Palette.BackgroundDark),
		},
	}

	// 2x2 grid of answer buttons; each slides up from below the screen,
	// staggered by the configured delay.
	bw, bh := w*0.42, h*0.13
	cols := [2]float64{w * 0.06, w * 0.52}
	rows := [2]float64{h * 0.6, h * 0.78}
	colors := cfg.Palette.Options()
	colorTiming := anims.ButtonColor.Spec(0, 1)
	for i := range s.buttons {
		x, y := cols[i%2], rows[i/2]
		s.buttons[i] = ui.NewButton(slotLabels[i], x, y, bw, bh, colors[i], colorTiming)

		spec := anims.ButtonSlide.Spec(h-y, 0)
		spec.Delay = anims.ButtonSlide.Delay * float64(i)
		s.slides[i] = animation.New(spec)
	}
	return s
}

// OnEnter starts a new session: generated on first entry, regenerated afterwards
func (s *Scene) OnEnter() {
	if s.session == nil {
		s.session = quiz.NewSession(s.deps.Randomizer)
		s.session.Start(s.deps.Pool, s.cfg.Quiz.SessionSize)
	} else {
		s.session.Restart()
	}
	s.responseTimes = s.responseTimes[:0]
	s.reported = false
	s.screenFade.Reset()
	s.exitFade.Reset()

	s.logger.Info("quiz session started",
		zap.Int("questions", s.session.Len()),
		zap.Int64("seed", s.deps.Randomizer.Seed()),
	)
	s.beginQuestion()
}

func (s *Scene) OnExit() {}

func (s *Scene) beginQuestion() {
	q, ok := s.session.Current()
	if !ok {
		s.finish()
		return
	}
	s.current = q
	s.phase = PhaseEntering
	s.elapsed = 0

	s.questionFade.Reset()
	s.leaveFade.Reset()
	s.feedback.Reset()
	for i, b := range s.buttons {
		b.Text = q.Options[i]
		b.ResetColor()
		s.slides[i].Reset()
	}

	s.prompt.Text = q.Text
	s.progress.Text = fmt.Sprintf("%d/%d", s.session.Index()+1, s.session.Len())
	s.score.Text = fmt.Sprintf("Score %d", s.session.Score())
	s.picture.Image = nil
	if s.deps.Images != nil {
		s.picture.Image = s.deps.Images.Pick(q.Theme)
	}
}

// HandleInput answers the current question with the first option key pressed
func (s *Scene) HandleInput(events []input.Event, _ float64) {
	if s.phase != PhaseAwaiting {
		return
	}
	if idx, ok := input.FirstOption(events); ok {
		s.answer(idx)
	}
}

func (s *Scene) answer(idx int) {
	s.lastCorrect = s.session.CheckAnswer(idx)
	s.responseTimes = append(s.responseTimes, s.elapsed)

	s.buttons[s.current.AnswerIndex].TransitionTo(s.correct)
	if !s.lastCorrect {
		s.buttons[idx].TransitionTo(s.wrong)
	}
	s.score.Text = fmt.Sprintf("Score %d", s.session.Score())
	s.feedback.Reset()
	s.phase = PhaseFeedback

	s.logger.Debug("answer",
		zap.Int("question", s.session.Index()),
		zap.Int("selected", idx),
		zap.Bool("correct", s.lastCorrect),
		zap.Float64("seconds", s.elapsed),
	)
}

// Update advances the active phase's animations and moves to the next phase once they complete
func (s *Scene) Update(dt float64) {
	s.screenFade.Update(dt)

	switch s.phase {
	case PhaseEntering:
		s.questionFade.Update(dt)
		done := s.questionFade.Complete()
		for _, a := range s.slides {
			a.Update(dt)
			done = done && a.Complete()
		}
		if done {
			s.phase = PhaseAwaiting
		}

	case PhaseAwaiting:
		s.elapsed += dt

	case PhaseFeedback:
		// Both the timer and the colour transitions gate the exit.
		s.feedback.Update(dt)
		done := s.feedback.Complete()
		for _, b := range s.buttons {
			b.Update(dt)
			done = done && b.TransitionDone()
		}
		if done {
			s.phase = PhaseLeaving
		}

	case PhaseLeaving:
		s.leaveFade.Update(dt)
		if s.leaveFade.Complete() {
			if s.session.Advance() {
				s.beginQuestion()
			} else {
				s.finish()
			}
		}

	case PhaseExiting:
		s.exitFade.Update(dt)
		if s.exitFade.Complete() {
			if err := s.switcher.Transition(state.GameOver); err != nil {
				s.exitFade.Reset()
			}
		}
	}
}

func (s *Scene) finish() {
	s.phase = PhaseExiting
	s.exitFade.Reset()
	if s.reported {
		return
	}
	s.reported = true

	result := s.Result()
	s.logger.Info("quiz session finished",
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
	)
	if s.deps.Sink != nil {
		s.deps.Sink.Record(result)
	}
}

// Result returns the current session's score and response times
func (s *Scene) Result() quiz.Result {
	if s.session == nil {
		return quiz.Result{}
	}
	times := make([]float64, len(s.responseTimes))
	copy(times, s.responseTimes)
	return quiz.Result{
		Score:         s.session.Score(),
		Total:         s.session.Len(),
		ResponseTimes: times,
	}
}

// Phase returns the current phase
func (s *Scene) Phase() Phase {
	return s.phase
}

// Current returns the question on screen
func (s *Scene) Current() quiz.Question {
	return s.current
}

// Session returns the active session, nil before the first entry
func (s *Scene) Session() *quiz.Session {
	return s.session
}

// ButtonColor returns the current background of the answer slot
func (s *Scene) ButtonColor(slot int) color.RGBA {
	return s.buttons[slot].Color()
}

func (s *Scene) questionOpacity() float64 {
	switch s.phase {
	case PhaseLeaving:
		return s.leaveFade.Value()
	case PhaseExiting:
		return 0
	default:
		return s.questionFade.Value()
	}
}

func (s *Scene) Draw(target *ebiten.Image) {
	target.Fill(s.background)

	opacity := s.questionOpacity()
	s.picture.Opacity = opacity
	s.picture.Draw(target)

	s.prompt.Opacity = opacity
	s.prompt.Draw(target)

	for i, b := range s.buttons {
		b.Opacity = opacity
		b.OffsetY = s.slides[i].Value()
		b.Draw(target)
	}

	s.progress.Draw(target)
	s.score.Draw(target)

	overlay := s.screenFade.Value()
	if s.phase == PhaseExiting {
		overlay = s.exitFade.Value()
	}
	if overlay > 0 {
		ui.DrawOverlay(target, s.overlay, overlay)
	}
}
