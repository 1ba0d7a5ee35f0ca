// Package scene defines the application state lifecycle and the state
// machine that switches between registered scenes.
//
// Each screen (intro, quiz, game over) implements the Scene interface.
// Transitions are requested by a scene from inside its own Update through
// the Switcher it was constructed with, never pushed in by the game loop.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/domain/input"
)

// Scene represents an application state (intro, quiz, game over, ...)
type Scene interface {
	// HandleInput receives the frame's input events before Update.
	HandleInput(events []input.Event, dt float64)

	// Update advances the scene by dt seconds (typically 1/60).
	Update(dt float64)

	// Draw renders the scene onto the target.
	Draw(target *ebiten.Image)

	// OnEnter is called each time this scene becomes active.
	// Animations are rewound here.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Switcher requests a synchronous transition to another registered scene.
// The state machine implements it.
type Switcher interface {
	Transition(id state.ID) error
}
