package quiz

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPool(n int) []RawQuestion {
	pool := make([]RawQuestion, n)
	for i := range pool {
		idx := i % OptionCount
		pool[i] = RawQuestion{
			Text:        fmt.Sprintf("question %d", i),
			Options:     []string{fmt.Sprintf("%d-a", i), fmt.Sprintf("%d-b", i), fmt.Sprintf("%d-c", i), fmt.Sprintf("%d-d", i)},
			AnswerIndex: &idx,
			Theme:       "science",
		}
	}
	return pool
}

func texts(qs []Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Text
	}
	return out
}

func TestRandomizer_Select_SamplesTargetSize(t *testing.T) {
	pool := createTestPool(30)

	for seed := int64(1); seed <= 20; seed++ {
		r := NewSeededRandomizer(seed)
		qs := r.Select(pool, 10)

		require.Len(t, qs, 10)

		seen := make(map[string]bool)
		for _, q := range qs {
			assert.False(t, seen[q.Text], "duplicate question %q", q.Text)
			seen[q.Text] = true
		}
	}
}

func TestRandomizer_Select_SmallPoolUsesAll(t *testing.T) {
	pool := createTestPool(3)
	r := NewSeededRandomizer(7)

	qs := r.Select(pool, 10)
	require.Len(t, qs, 3)

	got := texts(qs)
	sort.Strings(got)
	assert.Equal(t, []string{"question 0", "question 1", "question 2"}, got)
}

func TestRandomizer_Select_OrderIsRandomized(t *testing.T) {
	pool := createTestPool(8)

	orders := make(map[string]bool)
	for seed := int64(0); seed < 10; seed++ {
		qs := NewSeededRandomizer(seed).Select(pool, 8)
		orders[fmt.Sprint(texts(qs))] = true
	}

	assert.Greater(t, len(orders), 1, "different seeds should produce different orders")
}

func TestRandomizer_Select_DefaultSize(t *testing.T) {
	r := NewSeededRandomizer(3)

	assert.Len(t, r.Select(createTestPool(25), 0), DefaultSessionSize)
	assert.Len(t, r.Select(createTestPool(25), -4), DefaultSessionSize)
}

func TestRandomizer_Select_EmptyPoolFallsBack(t *testing.T) {
	r := NewSeededRandomizer(1)

	qs := r.Select(nil, 10)
	require.Len(t, qs, 1)
	assert.Equal(t, Fallback(), qs[0])
	assert.Equal(t, "A", qs[0].Correct())
}

func TestRandomizer_Select_Deterministic(t *testing.T) {
	pool := createTestPool(20)

	a := NewSeededRandomizer(99).Select(pool, 5)
	b := NewSeededRandomizer(99).Select(pool, 5)

	assert.Equal(t, a, b)
}

func TestRandomizer_ShuffleOptions_KeepsCorrectAnswer(t *testing.T) {
	pool := createTestPool(12)
	r := NewSeededRandomizer(11)

	for i := 0; i < 50; i++ {
		for _, raw := range pool {
			want := raw.Options[*raw.AnswerIndex]
			q := r.ShuffleOptions(Normalize(raw))
			assert.Equal(t, want, q.Correct())
		}
	}
}

func TestRandomizer_ShuffleOptions_DuplicateTexts(t *testing.T) {
	// Two "same" options; only the tag knows which slot was correct.
	q := Question{
		Text:        "pick",
		Options:     [OptionCount]string{"same", "other", "same", "last"},
		AnswerIndex: 2,
		Theme:       DefaultTheme,
	}

	r := NewSeededRandomizer(5)
	for i := 0; i < 200; i++ {
		got := r.ShuffleOptions(q)
		assert.Equal(t, "same", got.Correct())

		// Both duplicates survive the permutation.
		positions := 0
		for _, opt := range got.Options {
			if opt == "same" {
				positions++
			}
		}
		assert.Equal(t, 2, positions)
	}
}

func TestRandomizer_ShuffleOptions_TracksSlotNotText(t *testing.T) {
	// Identical texts: only the tag can tell where the answer went.
	q := Question{Options: [OptionCount]string{"x", "x", "x", "x"}, AnswerIndex: 3}

	hits := make(map[int]int)
	r := NewSeededRandomizer(42)
	for i := 0; i < 400; i++ {
		got := r.ShuffleOptions(q)
		hits[got.AnswerIndex]++
	}

	// With value lookup every result would be slot 0; the tag spreads it.
	assert.Len(t, hits, OptionCount)
}

func TestNormalize(t *testing.T) {
	two := 2
	nine := 9

	tests := []struct {
		name string
		raw  RawQuestion
		want Question
	}{
		{
			name: "complete record",
			raw:  RawQuestion{Text: "t", Options: []string{"a", "b", "c", "d"}, AnswerIndex: &two, Theme: "art"},
			want: Question{Text: "t", Options: [4]string{"a", "b", "c", "d"}, AnswerIndex: 2, Theme: "art"},
		},
		{
			name: "question field and string answer",
			raw:  RawQuestion{Question: "q", Options: []string{"a", "b", "c", "d"}, Answer: "3"},
			want: Question{Text: "q", Options: [4]string{"a", "b", "c", "d"}, AnswerIndex: 3, Theme: DefaultTheme},
		},
		{
			name: "empty record",
			raw:  RawQuestion{},
			want: Question{
				Text:        "Question text missing",
				Options:     missingOptions,
				AnswerIndex: 0,
				Theme:       DefaultTheme,
			},
		},
		{
			name: "short options padded",
			raw:  RawQuestion{Text: "t", Options: []string{"a", "b"}, Answer: "1"},
			want: Question{Text: "t", Options: [4]string{"a", "b", "Missing option C", "Missing option D"}, AnswerIndex: 1, Theme: DefaultTheme},
		},
		{
			name: "long options truncated",
			raw:  RawQuestion{Text: "t", Options: []string{"a", "b", "c", "d", "e"}},
			want: Question{Text: "t", Options: [4]string{"a", "b", "c", "d"}, AnswerIndex: 0, Theme: DefaultTheme},
		},
		{
			name: "out of range index",
			raw:  RawQuestion{Text: "t", Options: []string{"a", "b", "c", "d"}, AnswerIndex: &nine},
			want: Question{Text: "t", Options: [4]string{"a", "b", "c", "d"}, AnswerIndex: 0, Theme: DefaultTheme},
		},
		{
			name: "non numeric answer",
			raw:  RawQuestion{Text: "t", Options: []string{"a", "b", "c", "d"}, Answer: "C"},
			want: Question{Text: "t", Options: [4]string{"a", "b", "c", "d"}, AnswerIndex: 0, Theme: DefaultTheme},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}
