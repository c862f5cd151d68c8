// Package locker provides per-key serialization for bid admission.
// The lock is an in-process optimization: the auction row's version
// column remains the cross-process source of truth, so the locker can
// be reconstructed empty after a restart without losing correctness.
package locker

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	ch   chan struct{}
	refs int
}

// KeyedLocker serializes callers per key with a bounded acquire wait.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func New() *KeyedLocker {
	return &KeyedLocker{locks: make(map[string]*entry)}
}

// Acquire blocks until the key's slot is free, the timeout elapses, or
// ctx is cancelled. On success it returns the release func; the caller
// must invoke it exactly once.
func (l *KeyedLocker) Acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case e.ch <- struct{}{}:
		return func() {
			<-e.ch
			l.put(key, e)
		}, nil
	case <-timer.C:
		l.put(key, e)
		return nil, context.DeadlineExceeded
	case <-ctx.Done():
		l.put(key, e)
		return nil, ctx.Err()
	}
}

// put drops one reference and evicts the entry when unused, so the map
// does not grow with every auction ever seen.
func (l *KeyedLocker) put(key string, e *entry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()
}
