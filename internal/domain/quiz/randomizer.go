package quiz

import (
	"math/rand"
	"time"
)

// DefaultSessionSize is the number of questions drawn per session
const DefaultSessionSize = 10

// Randomizer draws and shuffles a session's worth of questions.
type Randomizer struct {
	rng  *rand.Rand
	seed int64
}

// NewRandomizer creates a randomizer seeded from the clock
func NewRandomizer() *Randomizer {
	return NewSeededRandomizer(time.Now().UnixNano())
}

// NewSeededRandomizer creates a deterministic randomizer (used by replays and tests)
func NewSeededRandomizer(seed int64) *Randomizer {
	return &Randomizer{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the randomizer was created with
func (r *Randomizer) Seed() int64 {
	return r.seed
}

// Select produces min(len(pool), size) normalized questions with shuffled options.
// An empty pool yields the single fallback question.
func (r *Randomizer) Select(pool []RawQuestion, size int) []Question {
	if len(pool) == 0 {
		return []Question{Fallback()}
	}
	if size <= 0 {
		size = DefaultSessionSize
	}

	// Perm covers both cases: a uniform sample without replacement when the
	// pool is larger, and a random ordering of the whole pool otherwise.
	order := r.rng.Perm(len(pool))
	if len(order) > size {
		order = order[:size]
	}

	out := make([]Question, 0, len(order))
	for _, idx := range order {
		out = append(out, r.ShuffleOptions(Normalize(pool[idx])))
	}
	return out
}

type taggedOption struct {
	text    string
	correct bool
}

// ShuffleOptions permutes the options and remaps AnswerIndex.
// Correctness travels with each option as a tag, so duplicate option
// texts never confuse which slot is the answer.
func (r *Randomizer) ShuffleOptions(q Question) Question {
	var pairs [OptionCount]taggedOption
	for i, opt := range q.Options {
		pairs[i] = taggedOption{text: opt, correct: i == q.AnswerIndex}
	}

	r.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	for i, p := range pairs {
		q.Options[i] = p.text
		if p.correct {
			q.AnswerIndex = i
		}
	}
	return q
}
