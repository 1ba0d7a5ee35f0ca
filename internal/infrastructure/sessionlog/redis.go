package sessionlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSink mirrors entries into a per-day Redis list
type RedisSink struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSink creates a Redis sink; ttl <= 0 keeps keys forever
func NewRedisSink(client *redis.Client, ttl time.Duration) *RedisSink {
	return &RedisSink{client: client, ttl: ttl}
}

// Append pushes e onto the day's list
func (s *RedisSink) Append(ctx context.Context, day time.Time, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode session entry: %w", err)
	}

	key := s.key(day)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push session entry: %w", err)
	}
	return nil
}

// Summary reads back the day's entries
func (s *RedisSink) Summary(ctx context.Context, day time.Time) (Day, error) {
	raw, err := s.client.LRange(ctx, s.key(day), 0, -1).Result()
	if err != nil {
		return Day{}, fmt.Errorf("failed to read session entries: %w", err)
	}

	doc := Day{Sessions: make([]Entry, 0, len(raw))}
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		doc.Sessions = append(doc.Sessions, e)
	}
	doc.SessionsCount = len(doc.Sessions)
	return doc, nil
}

func (s *RedisSink) key(day time.Time) string {
	return "quiz:sessions:" + DayKey(day)
}
