package questions

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/quizshow/internal/domain/quiz"
)

const jsonPool = `{
  "questions": [
    {"question": "Red planet?", "options": ["Venus", "Mars", "Jupiter", "Mercury"], "answer": "1", "theme": "science"},
    {"text": "Largest ocean?", "options": ["Atlantic", "Indian", "Arctic", "Pacific"], "answer": 3},
    {"text": "Indexed", "options": ["a", "b", "c", "d"], "answer_index": 2}
  ]
}`

const yamlPool = `
questions:
  - question: Capital of Australia?
    options: [Sydney, Canberra, Melbourne, Perth]
    answer: 1
    theme: geography
  - text: Quoted answer
    options: [a, b, c, d]
    answer: "2"
`

func TestLoader_LoadJSON(t *testing.T) {
	fsys := fstest.MapFS{"questions.json": {Data: []byte(jsonPool)}}

	pool, err := NewFSLoader(fsys, nil).Load("questions.json")
	require.NoError(t, err)
	require.Len(t, pool, 3)

	q := quiz.Normalize(pool[0])
	assert.Equal(t, "Red planet?", q.Text)
	assert.Equal(t, "Mars", q.Correct())
	assert.Equal(t, "science", q.Theme)

	assert.Equal(t, "Pacific", quiz.Normalize(pool[1]).Correct())
	assert.Equal(t, quiz.DefaultTheme, quiz.Normalize(pool[1]).Theme)
	assert.Equal(t, "c", quiz.Normalize(pool[2]).Correct())
}

func TestLoader_LoadYAML(t *testing.T) {
	fsys := fstest.MapFS{"pool.yaml": {Data: []byte(yamlPool)}}

	pool, err := NewFSLoader(fsys, nil).Load("pool.yaml")
	require.NoError(t, err)
	require.Len(t, pool, 2)

	assert.Equal(t, "Canberra", quiz.Normalize(pool[0]).Correct())
	assert.Equal(t, "c", quiz.Normalize(pool[1]).Correct())
}

func TestParse_BareLists(t *testing.T) {
	pool, err := Parse("list.json", []byte(`[{"text": "a"}, {"text": "b"}]`))
	require.NoError(t, err)
	assert.Len(t, pool, 2)

	pool, err = Parse("list.yml", []byte("- text: a\n- text: b\n- text: c\n"))
	require.NoError(t, err)
	assert.Len(t, pool, 3)

	pool, err = Parse("empty.yaml", []byte(""))
	require.NoError(t, err)
	assert.Empty(t, pool)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("pool.txt", []byte("{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse("broken.json", []byte(`{"questions": [`))
	assert.Error(t, err)

	_, err = Parse("broken.yaml", []byte("questions: [a: b: c"))
	assert.Error(t, err)
}

func TestLoader_LoadOrEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	fsys := fstest.MapFS{
		"broken.json": {Data: []byte("not json")},
		"empty.json":  {Data: []byte(`{"questions": []}`)},
	}
	loader := NewFSLoader(fsys, zap.New(core))

	tests := []struct {
		name string
		file string
	}{
		{"missing file", "missing.json"},
		{"malformed file", "broken.json"},
		{"empty pool", "empty.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := logs.Len()
			assert.Empty(t, loader.LoadOrEmpty(tt.file))
			assert.Equal(t, before+1, logs.Len(), "a warning is surfaced")
		})
	}
}

func TestLoader_FallbackFlow(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, nil)
	s := quiz.NewSession(quiz.NewSeededRandomizer(1))

	s.Start(loader.LoadOrEmpty("questions.json"), 10)

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, quiz.Fallback(), q)
}

func TestLoader_BundledPool(t *testing.T) {
	pool, err := NewLoader("../../../cmd/quiz/configs", nil).Load("questions.json")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(pool), 10)

	for _, raw := range pool {
		q := quiz.Normalize(raw)
		assert.NotEqual(t, "Question text missing", q.Text)
		assert.NotEqual(t, quiz.DefaultTheme, q.Theme)
	}
}
