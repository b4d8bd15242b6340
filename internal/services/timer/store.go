package timer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/zolten95/project-man/internal/db"
)

// TimerStore persists the in-progress timer so it survives reloads and
// restarts. One running timer per user. Get returns (nil, nil) when no
// timer is stored.
type TimerStore interface {
	Get(ctx context.Context, userID string) (*db.ActiveTimer, error)
	Set(ctx context.Context, timer *db.ActiveTimer) error
	Remove(ctx context.Context, userID string) error
}

/* ------------------------------------------------------------------ */
/*  Redis implementation                                              */
/* ------------------------------------------------------------------ */

type RedisTimerStore struct {
	client *redis.Client
}

func NewRedisTimerStore(client *redis.Client) *RedisTimerStore {
	return &RedisTimerStore{client: client}
}

func timerKey(userID string) string {
	return "timer:active:" + userID
}

func (s *RedisTimerStore) Get(ctx context.Context, userID string) (*db.ActiveTimer, error) {
	raw, err := s.client.Get(ctx, timerKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read timer state: %w", err)
	}

	var timer db.ActiveTimer
	if err := json.Unmarshal(raw, &timer); err != nil {
		return nil, fmt.Errorf("failed to decode timer state: %w", err)
	}
	return &timer, nil
}

func (s *RedisTimerStore) Set(ctx context.Context, timer *db.ActiveTimer) error {
	raw, err := json.Marshal(timer)
	if err != nil {
		return fmt.Errorf("failed to encode timer state: %w", err)
	}
	// No TTL: a forgotten timer must still be there tomorrow.
	if err := s.client.Set(ctx, timerKey(timer.UserID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to store timer state: %w", err)
	}
	return nil
}

func (s *RedisTimerStore) Remove(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, timerKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear timer state: %w", err)
	}
	return nil
}

/* ------------------------------------------------------------------ */
/*  In-memory implementation (tests, single-node dev)                 */
/* ------------------------------------------------------------------ */

type MemoryTimerStore struct {
	mu     sync.Mutex
	timers map[string]db.ActiveTimer
}

func NewMemoryTimerStore() *MemoryTimerStore {
	return &MemoryTimerStore{timers: make(map[string]db.ActiveTimer)}
}

func (s *MemoryTimerStore) Get(_ context.Context, userID string) (*db.ActiveTimer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.timers[userID]
	if !ok {
		return nil, nil
	}
	return &timer, nil
}

func (s *MemoryTimerStore) Set(_ context.Context, timer *db.ActiveTimer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[timer.UserID] = *timer
	return nil
}

func (s *MemoryTimerStore) Remove(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, userID)
	return nil
}
