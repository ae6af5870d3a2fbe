// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"labport/models"

	"github.com/go-redis/redis/v8"
)

const (
	transcriptPrefix = "ai:chat:"
	inflightPrefix   = "ai:inflight:"
)

// RedisContextStore keeps per-session consult transcripts and the
// single-in-flight guard in Redis.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Transcript(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	data, err := s.client.Get(ctx, transcriptPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *RedisContextStore) Append(ctx context.Context, sessionID string, msgs ...models.ChatMessage) error {
	existing, err := s.Transcript(ctx, sessionID)
	if err != nil {
		return err
	}
	existing = append(existing, msgs...)
	b, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, transcriptPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, transcriptPrefix+sessionID).Err()
}

// TryAcquire takes the per-session in-flight lock. It returns false when a
// consult call is already outstanding for the session.
func (s *RedisContextStore) TryAcquire(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, inflightPrefix+sessionID, 1, ttl).Result()
}

// Release frees the in-flight lock.
func (s *RedisContextStore) Release(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, inflightPrefix+sessionID).Err()
}
