// Package scenetest provides helpers for testing scenes without a window.
package scenetest

import (
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/infrastructure/config"
)

// DT is the frame step used by Settings' animation timings
const DT = 0.1

// Switcher records requested transitions
type Switcher struct {
	Targets []state.ID
	Err     error
}

func (s *Switcher) Transition(id state.ID) error {
	s.Targets = append(s.Targets, id)
	return s.Err
}

// Last returns the most recent transition target
func (s *Switcher) Last() (state.ID, bool) {
	if len(s.Targets) == 0 {
		return 0, false
	}
	return s.Targets[len(s.Targets)-1], true
}

// Settings returns settings whose animations are all linear and finish in
// an exact number of DT steps, so tests can step scenes frame by frame.
func Settings() *config.Settings {
	anim := func(duration, delay float64) config.AnimationConfig {
		return config.AnimationConfig{Duration: duration, Delay: delay, Easing: "linear"}
	}
	return &config.Settings{
		Display: config.DisplayConfig{
			Title:        "Test",
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    10,
		},
		Quiz: config.QuizConfig{SessionSize: 3},
		Animations: config.AnimationsConfig{
			LogoFade:     anim(0.2, 0),
			PromptBlink:  anim(0.2, 0),
			ScreenFade:   anim(0.2, 0),
			QuestionFade: anim(0.2, 0),
			ButtonSlide:  anim(0.2, 0.1),
			ButtonColor:  anim(0.2, 0),
			Feedback:     anim(0.4, 0),
			ResultFade:   anim(0.2, 0),
			CircleGrow:   anim(0.2, 0.1),
			IdleReturn:   anim(0.8, 0),
		},
		Palette: config.PaletteConfig{
			Background:     "#0090D3",
			BackgroundDark: "#007BB6",
			IntroBG:        "#D6E5BE",
			Text:           "#FFFFFF",
			Correct:        "#27A433",
			Wrong:          "#EA3B2E",
			OptionA:        "#EA3B2E",
			OptionB:        "#0068CF",
			OptionC:        "#27A433",
			OptionD:        "#EEC62B",
		},
	}
}

// Step calls update n times with DT
func Step(update func(dt float64), n int) {
	for i := 0; i < n; i++ {
		update(DT)
	}
}
