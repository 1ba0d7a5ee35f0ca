package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/quizshow/internal/domain/input"
)

// Source produces one frame's input events per call
type Source interface {
	Poll() []input.Event
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data     ReplayData
	frame    int
	next     int // index into data.Frames
	fallback Source
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// WithFallback hands input over to src once the recording is exhausted
func (r *Replayer) WithFallback(src Source) *Replayer {
	r.fallback = src
	return r
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.TotalFrames == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoFrames)
	}

	return &data, nil
}

// Poll returns the events for the current frame and advances
func (r *Replayer) Poll() []input.Event {
	if r.Done() {
		if r.fallback != nil {
			return r.fallback.Poll()
		}
		return nil
	}

	var events []input.Event
	if r.next < len(r.data.Frames) && r.data.Frames[r.next].F == r.frame {
		events = decodeEvents(r.data.Frames[r.next].E)
		r.next++
	}
	r.frame++
	return events
}

// Done reports whether every recorded frame has been played back
func (r *Replayer) Done() bool {
	return r.frame >= r.data.TotalFrames
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.TotalFrames
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
}
