package scene

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/domain/input"
)

// ErrUnknownState is returned when a transition names an unregistered state
var ErrUnknownState = errors.New("unknown state")

// Machine owns the registered scenes and the active one.
// It is driven from the single frame goroutine and is not safe for concurrent use.
type Machine struct {
	scenes  map[state.ID]Scene
	current Scene
	id      state.ID
	active  bool
	logger  *zap.Logger
}

// NewMachine creates an empty state machine
func NewMachine(logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		scenes: make(map[state.ID]Scene),
		logger: logger,
	}
}

// Register adds a scene under id, replacing any scene already registered there.
// Replacing the active scene takes effect on the next transition.
func (m *Machine) Register(id state.ID, s Scene) {
	if _, ok := m.scenes[id]; ok {
		m.logger.Debug("replacing registered state", zap.Stringer("state", id))
	}
	m.scenes[id] = s
}

// Transition exits the active scene and enters the one registered under id.
// Unknown IDs are rejected: the active scene is left untouched and a warning is logged.
func (m *Machine) Transition(id state.ID) error {
	next, ok := m.scenes[id]
	if !ok {
		m.logger.Warn("transition to unknown state ignored",
			zap.Stringer("state", id),
			zap.Stringer("current", m.id),
		)
		return fmt.Errorf("transition to %s: %w", id, ErrUnknownState)
	}

	if m.current != nil {
		m.current.OnExit()
	}

	m.logger.Debug("state transition",
		zap.Stringer("from", m.id),
		zap.Stringer("to", id),
		zap.Bool("initial", !m.active),
	)

	m.current = next
	m.id = id
	m.active = true
	m.current.OnEnter()
	return nil
}

// Current returns the active state ID, or false before the first transition
func (m *Machine) Current() (state.ID, bool) {
	return m.id, m.active
}

// DispatchInput forwards the frame's events to the active scene
func (m *Machine) DispatchInput(events []input.Event, dt float64) {
	if m.current == nil {
		return
	}
	m.current.HandleInput(events, dt)
}

// Tick updates the active scene
func (m *Machine) Tick(dt float64) {
	if m.current == nil {
		return
	}
	m.current.Update(dt)
}

// Render draws the active scene onto target
func (m *Machine) Render(target *ebiten.Image) {
	if m.current == nil {
		return
	}
	m.current.Draw(target)
}
