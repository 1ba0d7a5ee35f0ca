// Package quiz holds the question randomizer and the per-run quiz session.
package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OptionCount is the number of answer options every question carries
const OptionCount = 4

// DefaultTheme is used when a record names no theme
const DefaultTheme = "default"

// Question is a normalized, session-ready question.
// Options[AnswerIndex] is always the option that was correct in the source record.
type Question struct {
	Text        string
	Options     [OptionCount]string
	AnswerIndex int
	Theme       string
}

// Correct returns the text of the correct option
func (q Question) Correct() string {
	return q.Options[q.AnswerIndex]
}

// RawQuestion is a question record as parsed from the data source.
// Any field may be missing; Normalize fills in defaults.
type RawQuestion struct {
	Text        string    `json:"text,omitempty" yaml:"text,omitempty"`
	Question    string    `json:"question,omitempty" yaml:"question,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	AnswerIndex *int      `json:"answer_index,omitempty" yaml:"answer_index,omitempty"`
	Answer      AnswerRef `json:"answer,omitempty" yaml:"answer,omitempty"`
	Theme       string    `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// AnswerRef is an index-like reference to the correct option.
// Sources write it either as a number (2) or as a string ("2").
type AnswerRef string

// UnmarshalJSON accepts both JSON numbers and strings
func (a *AnswerRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AnswerRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a number or string: %w", err)
	}
	*a = AnswerRef(n.String())
	return nil
}

// Index parses the reference as an option index
func (a AnswerRef) Index() (int, bool) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

var missingOptions = [OptionCount]string{
	"Missing option A",
	"Missing option B",
	"Missing option C",
	"Missing option D",
}

// Normalize turns a raw record into a structurally valid Question.
func Normalize(raw RawQuestion) Question {
	q := Question{
		Text:  raw.Text,
		Theme: raw.Theme,
	}

	if q.Text == "" {
		q.Text = raw.Question
	}
	if q.Text == "" {
		q.Text = "Question text missing"
	}

	for i := range q.Options {
		if i < len(raw.Options) {
			q.Options[i] = raw.Options[i]
		} else {
			q.Options[i] = missingOptions[i]
		}
	}

	switch {
	case raw.AnswerIndex != nil:
		q.AnswerIndex = *raw.AnswerIndex
	default:
		if n, ok := raw.Answer.Index(); ok {
			q.AnswerIndex = n
		}
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= OptionCount {
		q.AnswerIndex = 0
	}

	if q.Theme == "" {
		q.Theme = DefaultTheme
	}

	return q
}

// Fallback is the synthetic question used when no usable source data exists
func Fallback() Question {
	return Question{
		Text:        "Failed to load questions. The answer is A",
		Options:     [OptionCount]string{"A", "B", "C", "D"},
		AnswerIndex: 0,
		Theme:       DefaultTheme,
	}
}
