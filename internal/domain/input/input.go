// Package input defines the logical, device-independent input events
// that scenes consume once per frame.
package input

// Key is a logical key, already resolved from the physical binding
type Key int

const (
	KeyNone Key = iota
	KeyOptionA
	KeyOptionB
	KeyOptionC
	KeyOptionD
	KeyConfirm
	KeyQuit
)

var keyNames = map[Key]string{
	KeyNone:    "none",
	KeyOptionA: "option_a",
	KeyOptionB: "option_b",
	KeyOptionC: "option_c",
	KeyOptionD: "option_d",
	KeyConfirm: "confirm",
	KeyQuit:    "quit",
}

// String returns the binding name of the key
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey resolves a binding name back to a Key
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && k != KeyNone {
			return k, true
		}
	}
	return KeyNone, false
}

// Option returns the answer slot (0-3) the key selects
func (k Key) Option() (int, bool) {
	switch k {
	case KeyOptionA, KeyOptionB, KeyOptionC, KeyOptionD:
		return int(k - KeyOptionA), true
	default:
		return 0, false
	}
}

// Event is a discrete press or release of a logical key
type Event struct {
	Key     Key
	Pressed bool
}

// AnyPressed reports whether events contains at least one press
func AnyPressed(events []Event) bool {
	for _, e := range events {
		if e.Pressed {
			return true
		}
	}
	return false
}

// FirstOption returns the first pressed option key in the frame
func FirstOption(events []Event) (int, bool) {
	for _, e := range events {
		if !e.Pressed {
			continue
		}
		if idx, ok := e.Key.Option(); ok {
			return idx, true
		}
	}
	return 0, false
}
