package system

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/domain/input"
)

// Bindings maps physical keys to logical keys
type Bindings map[ebiten.Key]input.Key

// ParseBindings resolves config bindings (logical name -> ebiten key names).
// A physical key bound twice keeps the first logical key in name order.
func ParseBindings(keys map[string][]string) (Bindings, error) {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	b := make(Bindings)
	for _, name := range names {
		logical, ok := input.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown logical key %q", name)
		}
		for _, keyName := range keys[name] {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("binding %s: %w", name, err)
			}
			if _, dup := b[k]; dup {
				continue
			}
			b[k] = logical
		}
	}
	return b, nil
}

// InputSystem turns ebiten key presses into logical input events
type InputSystem struct {
	bindings Bindings
	logger   *zap.Logger

	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings Bindings, logger *zap.Logger) *InputSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InputSystem{bindings: bindings, logger: logger}
}

// Poll reads this frame's key transitions from ebiten
func (s *InputSystem) Poll() []input.Event {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	return s.Translate(s.pressed, s.released)
}

// Translate maps physical transitions to events: presses first, then releases,
// each in the order given. Unbound keys produce KeyNone events so that
// "press any key" prompts still react to them.
func (s *InputSystem) Translate(pressed, released []ebiten.Key) []input.Event {
	if len(pressed) == 0 && len(released) == 0 {
		return nil
	}
	events := make([]input.Event, 0, len(pressed)+len(released))
	for _, k := range pressed {
		logical := s.bindings[k]
		if logical == input.KeyNone {
			s.logger.Debug("unbound key pressed", zap.Stringer("key", k))
		}
		events = append(events, input.Event{Key: logical, Pressed: true})
	}
	for _, k := range released {
		events = append(events, input.Event{Key: s.bindings[k], Pressed: false})
	}
	return events
}
