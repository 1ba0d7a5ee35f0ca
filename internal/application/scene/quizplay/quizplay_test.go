package quizplay

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/quizshow/internal/application/scene/scenetest"
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/domain/input"
	"github.com/younwookim/quizshow/internal/domain/quiz"
	"github.com/younwookim/quizshow/internal/infrastructure/config"
)

type recordingSink struct {
	results []quiz.Result
}

func (r *recordingSink) Record(result quiz.Result) {
	r.results = append(r.results, result)
}

type themeRecorder struct {
	themes []string
}

func (p *themeRecorder) Pick(theme string) *ebiten.Image {
	p.themes = append(p.themes, theme)
	return nil
}

func createTestPool() []quiz.RawQuestion {
	idx := func(i int) *int { return &i }
	return []quiz.RawQuestion{
		{Text: "2+2?", Options: []string{"3", "4", "5", "6"}, AnswerIndex: idx(1), Theme: "math"},
		{Text: "Capital of France?", Options: []string{"Paris", "Rome", "Oslo", "Bern"}, AnswerIndex: idx(0), Theme: "geography"},
		{Text: "H2O is?", Options: []string{"Salt", "Gold", "Water", "Iron"}, AnswerIndex: idx(2), Theme: "science"},
	}
}

type fixture struct {
	scene *Scene
	sw    *scenetest.Switcher
	sink  *recordingSink
	cfg   *config.Settings
}

func newFixture(t *testing.T, pool []quiz.RawQuestion) *fixture {
	t.Helper()
	f := &fixture{
		sw:   &scenetest.Switcher{},
		sink: &recordingSink{},
		cfg:  scenetest.Settings(),
	}
	f.scene = New(f.cfg, f.sw, Deps{
		Pool:       pool,
		Randomizer: quiz.NewSeededRandomizer(7),
		Sink:       f.sink,
	})
	f.scene.OnEnter()
	return f
}

// stepUntil updates the scene until it reaches phase, failing after maxFrames
func (f *fixture) stepUntil(t *testing.T, phase Phase, maxFrames int) int {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		f.scene.Update(scenetest.DT)
		if f.scene.Phase() == phase {
			return i
		}
	}
	require.FailNowf(t, "phase not reached", "still %s after %d frames, want %s", f.scene.Phase(), maxFrames, phase)
	return 0
}

func (f *fixture) press(slot int) {
	k := input.KeyOptionA + input.Key(slot)
	f.scene.HandleInput([]input.Event{{Key: k, Pressed: true}}, scenetest.DT)
}

func wrongSlot(q quiz.Question) int {
	return (q.AnswerIndex + 1) % quiz.OptionCount
}

func TestQuiz_FirstEnterStartsSession(t *testing.T) {
	f := newFixture(t, createTestPool())

	require.NotNil(t, f.scene.Session())
	assert.Equal(t, 3, f.scene.Session().Len())
	assert.Equal(t, 0, f.scene.Session().Index())
	assert.Equal(t, PhaseEntering, f.scene.Phase())
	assert.NotEmpty(t, f.scene.Current().Text)
}

func TestQuiz_InputIgnoredUntilAwaiting(t *testing.T) {
	f := newFixture(t, createTestPool())

	f.press(f.scene.Current().AnswerIndex)
	assert.Equal(t, PhaseEntering, f.scene.Phase())
	assert.Equal(t, 0, f.scene.Session().Score())

	f.stepUntil(t, PhaseAwaiting, 20)
}

func TestQuiz_CorrectAnswerFeedback(t *testing.T) {
	f := newFixture(t, createTestPool())
	f.stepUntil(t, PhaseAwaiting, 20)

	q := f.scene.Current()
	f.press(q.AnswerIndex)

	assert.Equal(t, PhaseFeedback, f.scene.Phase())
	assert.Equal(t, 1, f.scene.Session().Score())

	// Colour transition (2 frames) finishes before the feedback timer (4 frames)
	scenetest.Step(f.scene.Update, 2)
	assert.Equal(t, config.MustColor(f.cfg.Palette.Correct), f.scene.ButtonColor(q.AnswerIndex))
	assert.Equal(t, PhaseFeedback, f.scene.Phase())

	scenetest.Step(f.scene.Update, 2)
	assert.Equal(t, PhaseLeaving, f.scene.Phase())

	f.stepUntil(t, PhaseEntering, 5)
	assert.Equal(t, 1, f.scene.Session().Index())
	assert.Equal(t, f.cfg.Palette.Options()[0], f.scene.ButtonColor(0), "colours reset for the next question")
}

func TestQuiz_WrongAnswerFeedback(t *testing.T) {
	f := newFixture(t, createTestPool())
	f.stepUntil(t, PhaseAwaiting, 20)

	q := f.scene.Current()
	wrong := wrongSlot(q)
	f.press(wrong)
	scenetest.Step(f.scene.Update, 2)

	assert.Equal(t, 0, f.scene.Session().Score())
	assert.Equal(t, config.MustColor(f.cfg.Palette.Wrong), f.scene.ButtonColor(wrong))
	assert.Equal(t, config.MustColor(f.cfg.Palette.Correct), f.scene.ButtonColor(q.AnswerIndex))
}

func TestQuiz_FeedbackWaitsForColourTransition(t *testing.T) {
	f := newFixture(t, createTestPool())
	f.cfg.Animations.ButtonColor = config.AnimationConfig{Duration: 0.8, Easing: "linear"}
	f.cfg.Animations.Feedback = config.AnimationConfig{Duration: 0.2, Easing: "linear"}
	f.scene = New(f.cfg, f.sw, Deps{Pool: createTestPool(), Randomizer: quiz.NewSeededRandomizer(1)})
	f.scene.OnEnter()
	f.stepUntil(t, PhaseAwaiting, 20)

	f.press(0)
	scenetest.Step(f.scene.Update, 7)
	assert.Equal(t, PhaseFeedback, f.scene.Phase())

	f.scene.Update(scenetest.DT)
	assert.Equal(t, PhaseLeaving, f.scene.Phase())
}

func TestQuiz_ResponseTimes(t *testing.T) {
	f := newFixture(t, createTestPool())
	f.stepUntil(t, PhaseAwaiting, 20)

	scenetest.Step(f.scene.Update, 3)
	f.press(0)

	result := f.scene.Result()
	require.Len(t, result.ResponseTimes, 1)
	assert.InDelta(t, 0.3, result.ResponseTimes[0], 1e-9)
}

func TestQuiz_FullSessionReportsOnceAndExits(t *testing.T) {
	f := newFixture(t, createTestPool())

	for i := 0; i < 3; i++ {
		f.stepUntil(t, PhaseAwaiting, 20)
		f.press(f.scene.Current().AnswerIndex)
	}
	f.stepUntil(t, PhaseExiting, 20)

	require.Len(t, f.sink.results, 1)
	result := f.sink.results[0]
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.ResponseTimes, 3)
	assert.Empty(t, f.sw.Targets)

	scenetest.Step(f.scene.Update, 2)
	last, ok := f.sw.Last()
	require.True(t, ok)
	assert.Equal(t, state.GameOver, last)
	assert.Len(t, f.sink.results, 1)
}

func TestQuiz_ReenterRegeneratesSession(t *testing.T) {
	f := newFixture(t, createTestPool())
	f.stepUntil(t, PhaseAwaiting, 20)
	f.press(f.scene.Current().AnswerIndex)
	session := f.scene.Session()

	f.scene.OnExit()
	f.scene.OnEnter()

	assert.Same(t, session, f.scene.Session())
	assert.Equal(t, 0, f.scene.Session().Score())
	assert.Equal(t, 0, f.scene.Session().Index())
	assert.Equal(t, 3, f.scene.Session().Len())
	assert.Equal(t, PhaseEntering, f.scene.Phase())
	assert.Empty(t, f.scene.Result().ResponseTimes)
}

func TestQuiz_EmptyPoolUsesFallback(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, 1, f.scene.Session().Len())
	q := f.scene.Current()
	assert.Equal(t, quiz.Fallback().Text, q.Text)

	f.stepUntil(t, PhaseAwaiting, 20)
	f.press(q.AnswerIndex)
	f.stepUntil(t, PhaseExiting, 20)

	require.Len(t, f.sink.results, 1)
	assert.Equal(t, quiz.Result{Score: 1, Total: 1, ResponseTimes: []float64{0}}, f.sink.results[0])
}

func TestQuiz_PicksImageByTheme(t *testing.T) {
	picker := &themeRecorder{}
	s := New(scenetest.Settings(), &scenetest.Switcher{}, Deps{
		Pool:       createTestPool()[:1],
		Randomizer: quiz.NewSeededRandomizer(3),
		Images:     picker,
	})
	s.OnEnter()

	assert.Equal(t, []string{"math"}, picker.themes)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Awaiting", PhaseAwaiting.String())
	assert.Equal(t, "Unknown", Phase(42).String())
}
