package fraud

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore accumulates per-user activity inside a rolling window.
// Implementations are best-effort: the monitor fails open on errors.
type CounterStore interface {
	// IncrBy adds delta to key and returns the running total for the
	// current window. The first increment arms the window expiry.
	IncrBy(ctx context.Context, key string, delta int64, window time.Duration) (int64, error)
}

// RedisCounterStore keeps windowed counters in Redis so flags survive
// restarts and are shared across replicas.
type RedisCounterStore struct {
	client *redis.Client
}

func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) IncrBy(ctx context.Context, key string, delta int64, window time.Duration) (int64, error) {
	count, err := s.client.IncrBy(ctx, key, delta).Result()
	if err != nil {
		return 0, err
	}
	if count == delta {
		// first hit in this window
		s.client.Expire(ctx, key, window)
	}
	return count, nil
}

// MemoryCounterStore is the single-process fallback used when no Redis
// address is configured, and in tests.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]*memoryCounter
	now      func() time.Time
}

type memoryCounter struct {
	total   int64
	resetAt time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{
		counters: make(map[string]*memoryCounter),
		now:      time.Now,
	}
}

func (s *MemoryCounterStore) IncrBy(_ context.Context, key string, delta int64, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.counters[key]
	if !ok || now.After(c.resetAt) {
		c = &memoryCounter{resetAt: now.Add(window)}
		s.counters[key] = c
	}
	c.total += delta
	return c.total, nil
}
