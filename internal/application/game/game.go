// Package game provides the main game loop that drives the state machine.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/application/scene"
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/domain/input"
)

// ErrNoActiveState stops the loop when the machine has nothing to run
var ErrNoActiveState = errors.New("no active state")

// InputSource produces one frame's input events per call
type InputSource interface {
	Poll() []input.Event
}

// FrameRecorder receives every frame's events, including empty frames
type FrameRecorder interface {
	RecordFrame(events []input.Event)
}

// Game implements ebiten.Game and feeds input, dt and the screen into the state machine.
type Game struct {
	machine  *scene.Machine
	input    InputSource
	recorder FrameRecorder
	logger   *zap.Logger
	screenW  int
	screenH  int
	dt       float64
	frame    int
}

// New creates a Game and enters the initial state.
func New(machine *scene.Machine, initial state.ID, src InputSource, screenW, screenH int, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := machine.Transition(initial); err != nil {
		return nil, fmt.Errorf("enter initial state: %w", err)
	}
	return &Game{
		machine: machine,
		input:   src,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}, nil
}

// SetRecorder records every polled frame from now on
func (g *Game) SetRecorder(r FrameRecorder) {
	g.recorder = r
}

// Update polls input and advances the active state by one fixed step.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if _, ok := g.machine.Current(); !ok {
		return ErrNoActiveState
	}

	var events []input.Event
	if g.input != nil {
		events = g.input.Poll()
	}
	if g.recorder != nil {
		g.recorder.RecordFrame(events)
	}
	g.frame++

	for _, e := range events {
		if e.Pressed && e.Key == input.KeyQuit {
			g.logger.Info("quit requested", zap.Int("frame", g.frame))
			return ebiten.Termination
		}
	}

	g.machine.DispatchInput(events, g.dt)
	g.machine.Tick(g.dt)
	return nil
}

// Draw renders the active state.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.machine.Render(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Frames returns the number of updates run so far
func (g *Game) Frames() int {
	return g.frame
}
