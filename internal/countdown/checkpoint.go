package countdown

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/a2sh3r/mindflex/internal/apperrors"
)

// CheckpointStore persists the last displayed clock of each running timer.
// Checkpoints are a hint; a missing one is re-derived from the question.
type CheckpointStore interface {
	Save(ctx context.Context, questionID string, c Clock) error
	Load(ctx context.Context, questionID string) (Clock, bool, error)
	Delete(ctx context.Context, questionID string) error
}

func Key(questionID string) string {
	return "countdown_" + questionID
}

type MemoryStore struct {
	mu     sync.RWMutex
	clocks map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{clocks: make(map[string]string)}
}

func (s *MemoryStore) Save(_ context.Context, questionID string, c Clock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clocks[Key(questionID)] = c.Encode()
	return nil
}

func (s *MemoryStore) Load(_ context.Context, questionID string) (Clock, bool, error) {
	s.mu.RLock()
	v, ok := s.clocks[Key(questionID)]
	s.mu.RUnlock()
	if !ok {
		return Clock{}, false, nil
	}
	c, err := Decode(v)
	if err != nil {
		return Clock{}, false, err
	}
	return c, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clocks, Key(questionID))
	return nil
}

// RedisStore keeps checkpoints in Redis so they survive a restart. Keys
// expire after ttl so abandoned timers do not linger.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, questionID string, c Clock) error {
	if err := s.client.Set(ctx, Key(questionID), c.Encode(), s.ttl).Err(); err != nil {
		return apperrors.Upstream("save checkpoint", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, questionID string) (Clock, bool, error) {
	v, err := s.client.Get(ctx, Key(questionID)).Result()
	if errors.Is(err, redis.Nil) {
		return Clock{}, false, nil
	}
	if err != nil {
		return Clock{}, false, apperrors.Upstream("load checkpoint", err)
	}
	c, err := Decode(v)
	if err != nil {
		return Clock{}, false, err
	}
	return c, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, questionID string) error {
	if err := s.client.Del(ctx, Key(questionID)).Err(); err != nil {
		return apperrors.Upstream("delete checkpoint", err)
	}
	return nil
}
