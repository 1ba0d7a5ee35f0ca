package sessionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// FileSink appends entries to <dir>/YYYY-MM-DD.json
type FileSink struct {
	dir    string
	logger *zap.Logger
}

// NewFileSink creates a file sink rooted at dir (created on first write)
func NewFileSink(dir string, logger *zap.Logger) *FileSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSink{dir: dir, logger: logger}
}

// Path returns the log file for day
func (s *FileSink) Path(day time.Time) string {
	return filepath.Join(s.dir, DayKey(day)+".json")
}

// Append adds e to the day's document, rewriting the file
func (s *FileSink) Append(_ context.Context, day time.Time, e Entry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	path := s.Path(day)
	doc, err := s.read(path)
	if err != nil {
		return err
	}

	doc.Sessions = append(doc.Sessions, e)
	doc.SessionsCount++

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode session log: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session log: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace session log: %w", err)
	}
	return nil
}

// Summary reads the document for day; a missing file is an empty day
func (s *FileSink) Summary(day time.Time) (Day, error) {
	return s.read(s.Path(day))
}

// read loads a day document. Older logs stored a bare list of entries;
// unparseable files are restarted rather than blocking new sessions.
func (s *FileSink) read(path string) (Day, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Day{}, nil
	}
	if err != nil {
		return Day{}, fmt.Errorf("failed to read session log: %w", err)
	}

	var doc Day
	if err := json.Unmarshal(data, &doc); err == nil {
		if doc.SessionsCount < len(doc.Sessions) {
			doc.SessionsCount = len(doc.Sessions)
		}
		return doc, nil
	}

	var list []Entry
	if err := json.Unmarshal(data, &list); err == nil {
		return Day{SessionsCount: len(list), Sessions: list}, nil
	}

	s.logger.Warn("session log unreadable, starting a new one", zap.String("file", path))
	return Day{}, nil
}
