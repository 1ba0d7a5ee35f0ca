package questions

import (
	"fmt"
	"sort"

	"github.com/younwookim/quizshow/internal/domain/quiz"
)

// Issue describes a field that normalization had to repair
type Issue struct {
	Index   int // position in the pool
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("#%d: %s", i.Index+1, i.Message)
}

// Report summarizes a pool as the quiz will see it
type Report struct {
	Total  int
	Themes map[string]int // normalized theme -> question count
	Issues []Issue
}

// ThemeNames returns the report's themes in sorted order
func (r Report) ThemeNames() []string {
	names := make([]string, 0, len(r.Themes))
	for name := range r.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summarize normalizes every question and records what had to be repaired
func Summarize(pool []quiz.RawQuestion) Report {
	r := Report{Total: len(pool), Themes: make(map[string]int)}
	for i, raw := range pool {
		q := quiz.Normalize(raw)
		r.Themes[q.Theme]++
		for _, msg := range Check(raw) {
			r.Issues = append(r.Issues, Issue{Index: i, Message: msg})
		}
	}
	return r
}

// Check lists the defaults Normalize will apply to raw
func Check(raw quiz.RawQuestion) []string {
	var issues []string

	if raw.Text == "" && raw.Question == "" {
		issues = append(issues, "question text missing")
	}

	switch n := len(raw.Options); {
	case n < quiz.OptionCount:
		issues = append(issues, fmt.Sprintf("only %d options, padded to %d", n, quiz.OptionCount))
	case n > quiz.OptionCount:
		issues = append(issues, fmt.Sprintf("%d options, truncated to %d", n, quiz.OptionCount))
	}

	switch {
	case raw.AnswerIndex != nil:
		if idx := *raw.AnswerIndex; idx < 0 || idx >= quiz.OptionCount {
			issues = append(issues, fmt.Sprintf("answer_index %d out of range, using 0", idx))
		}
	case raw.Answer == "":
		issues = append(issues, "answer missing, using 0")
	default:
		idx, ok := raw.Answer.Index()
		if !ok {
			issues = append(issues, fmt.Sprintf("answer %q is not an index, using 0", string(raw.Answer)))
		} else if idx >= quiz.OptionCount {
			issues = append(issues, fmt.Sprintf("answer %d out of range, using 0", idx))
		}
	}

	return issues
}
