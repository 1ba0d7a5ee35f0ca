package quiz

// Result summarizes a finished session for the score log
type Result struct {
	Score         int
	Total         int
	ResponseTimes []float64 // seconds per answered question
}

// Session tracks one playthrough: its drawn questions, position and score.
type Session struct {
	randomizer *Randomizer
	pool       []RawQuestion
	size       int

	questions []Question
	answered  []bool
	index     int
	score     int
}

// NewSession creates an empty session; call Start before use
func NewSession(randomizer *Randomizer) *Session {
	if randomizer == nil {
		randomizer = NewRandomizer()
	}
	return &Session{randomizer: randomizer}
}

// Start retains the pool, draws a fresh set of questions and resets progress
func (s *Session) Start(pool []RawQuestion, size int) {
	s.pool = pool
	s.size = size
	s.Restart()
}

// Restart redraws from the retained pool and resets index and score
func (s *Session) Restart() {
	s.questions = s.randomizer.Select(s.pool, s.size)
	s.answered = make([]bool, len(s.questions))
	s.index = 0
	s.score = 0
}

// Current returns the active question, or false once the session is exhausted
func (s *Session) Current() (Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// CheckAnswer reports whether selected is correct and scores it.
// It does not advance; callers show feedback first. A question is scored
// at most once, so score never exceeds Len: repeated correct calls on the
// same question return true without adding to the score.
func (s *Session) CheckAnswer(selected int) bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	if selected != q.AnswerIndex {
		return false
	}
	if !s.answered[s.index] {
		s.answered[s.index] = true
		s.score++
	}
	return true
}

// Advance moves to the next question and reports whether one exists
func (s *Session) Advance() bool {
	if s.index < len(s.questions) {
		s.index++
	}
	return s.index < len(s.questions)
}

// Score returns the number of correct answers so far
func (s *Session) Score() int {
	return s.score
}

// Len returns the number of questions in this session
func (s *Session) Len() int {
	return len(s.questions)
}

// Index returns the 0-based position of the current question
func (s *Session) Index() int {
	return s.index
}

// Finished reports whether every question has been passed
func (s *Session) Finished() bool {
	return s.index >= len(s.questions)
}

// Questions returns a copy of the session's questions
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}
