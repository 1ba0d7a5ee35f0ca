package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/quizshow/internal/domain/input"
)

// ErrNoFrames is returned when saving a recording that never ran a frame
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, questions string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Questions: questions,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 256),
		},
		recording: true,
	}
}

// RecordFrame records a single frame's events
func (r *Recorder) RecordFrame(events []input.Event) {
	if !r.recording {
		return
	}
	if len(events) > 0 {
		r.data.Frames = append(r.data.Frames, FrameInput{
			F: r.data.TotalFrames,
			E: encodeEvents(events),
		})
	}
	r.data.TotalFrames++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.TotalFrames == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return r.data.TotalFrames
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
