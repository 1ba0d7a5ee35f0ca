package replay

import (
	"github.com/younwookim/quizshow/internal/domain/input"
)

// Version of the replay file layout
const Version = "2.0"

// FrameEvent is one recorded key transition
type FrameEvent struct {
	K string `json:"k"`           // Logical key name
	P bool   `json:"p,omitempty"` // Pressed (false = released)
}

// FrameInput records the events of a single frame.
// Frames without events are not stored.
type FrameInput struct {
	F int          `json:"f"` // Frame number
	E []FrameEvent `json:"e"`
}

// ReplayData contains all data needed to replay a quiz run
type ReplayData struct {
	Version     string       `json:"version"`
	Seed        int64        `json:"seed"`
	Questions   string       `json:"questions"`
	StartTime   string       `json:"startTime"`
	TotalFrames int          `json:"totalFrames"`
	Frames      []FrameInput `json:"frames"`
}

func encodeEvents(events []input.Event) []FrameEvent {
	out := make([]FrameEvent, len(events))
	for i, e := range events {
		out[i] = FrameEvent{K: e.Key.String(), P: e.Pressed}
	}
	return out
}

// decodeEvents maps names back to keys; unknown names replay as KeyNone
func decodeEvents(recorded []FrameEvent) []input.Event {
	out := make([]input.Event, len(recorded))
	for i, fe := range recorded {
		k, _ := input.ParseKey(fe.K)
		out[i] = input.Event{Key: k, Pressed: fe.P}
	}
	return out
}
