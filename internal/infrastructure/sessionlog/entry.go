// Package sessionlog persists finished quiz sessions to a per-day,
// append-only log. The file sink is always on; a Redis sink can mirror it.
package sessionlog

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/domain/quiz"
)

// Entry is one finished session
type Entry struct {
	ID                    string   `json:"id"`
	Time                  string   `json:"time"` // HH:MM:SS local time
	Score                 int      `json:"score"`
	Total                 int      `json:"total"`
	MedianTimePerQuestion *float64 `json:"median_time_per_question"`
}

// Day is the document stored per day
type Day struct {
	SessionsCount int     `json:"sessions_count"`
	Sessions      []Entry `json:"sessions"`
}

// Sink stores an entry for the given day
type Sink interface {
	Append(ctx context.Context, day time.Time, e Entry) error
}

// NewEntry builds an entry from a session result
func NewEntry(r quiz.Result, now time.Time) Entry {
	e := Entry{
		ID:    uuid.NewString(),
		Time:  now.Format("15:04:05"),
		Score: r.Score,
		Total: r.Total,
	}
	if m, ok := Median(r.ResponseTimes); ok {
		rounded := math.Round(m*1000) / 1000
		e.MedianTimePerQuestion = &rounded
	}
	return e
}

// Median returns the median of samples, or false when there are none
func Median(samples []float64) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// DayLayout is the date format of day file names and Redis keys
const DayLayout = "2006-01-02"

// DayKey formats the day used for file names and Redis keys
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Recorder adapts sinks to the quiz scene's result reporting.
// Sink failures are logged, never returned to the frame loop.
type Recorder struct {
	sinks   []Sink
	now     func() time.Time
	timeout time.Duration
	logger  *zap.Logger
}

// NewRecorder creates a recorder writing to every sink in order
func NewRecorder(logger *zap.Logger, sinks ...Sink) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		sinks:   sinks,
		now:     time.Now,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// Record writes the result to all sinks
func (r *Recorder) Record(result quiz.Result) {
	now := r.now()
	entry := NewEntry(result, now)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	var errs []error
	for _, sink := range r.sinks {
		if err := sink.Append(ctx, now, entry); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		r.logger.Warn("failed to log quiz session", zap.Error(err))
		return
	}
	r.logger.Info("quiz session logged",
		zap.String("id", entry.ID),
		zap.Int("score", entry.Score),
		zap.Int("total", entry.Total),
	)
}
