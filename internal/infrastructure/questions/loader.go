// Package questions loads raw question pools from JSON or YAML files.
package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/quizshow/internal/domain/quiz"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("unsupported question file format")

// document is the on-disk layout: {"questions": [...]}.
// A bare top-level list is accepted as well.
type document struct {
	Questions []quiz.RawQuestion `json:"questions" yaml:"questions"`
}

// Loader reads question pools from an fs.FS
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string, logger *zap.Logger) *Loader {
	return NewFSLoader(os.DirFS(dir), logger)
}

// NewFSLoader creates a loader over fsys
func NewFSLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// Load reads and parses the pool at name
func (l *Loader) Load(name string) ([]quiz.RawQuestion, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	pool, err := Parse(name, data)
	if err != nil {
		return nil, err
	}

	l.logger.Info("questions loaded",
		zap.String("file", name),
		zap.Int("count", len(pool)),
	)
	return pool, nil
}

// LoadOrEmpty is Load for the frame loop's data precondition:
// unreadable or malformed sources are logged and yield an empty pool,
// which the randomizer turns into the fallback question.
func (l *Loader) LoadOrEmpty(name string) []quiz.RawQuestion {
	pool, err := l.Load(name)
	if err != nil {
		l.logger.Warn("question source unusable, using fallback question",
			zap.String("file", name),
			zap.Error(err),
		)
		return nil
	}
	if len(pool) == 0 {
		l.logger.Warn("question source is empty, using fallback question", zap.String("file", name))
	}
	return pool
}

// Parse decodes a pool, choosing the codec from the file extension
func Parse(name string, data []byte) ([]quiz.RawQuestion, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return parseJSON(name, data)
	case ".yaml", ".yml":
		return parseYAML(name, data)
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
}

func parseJSON(name string, data []byte) ([]quiz.RawQuestion, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []quiz.RawQuestion
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return list, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return doc.Questions, nil
}

func parseYAML(name string, data []byte) ([]quiz.RawQuestion, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []quiz.RawQuestion
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return list, nil
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return doc.Questions, nil
}
