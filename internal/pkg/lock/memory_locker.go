package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryLocker is the single-instance fallback when no Redis URL is
// configured. Same contract, process-local scope.
type MemoryLocker struct {
	mu    sync.Mutex
	store *gocache.Cache
}

var _ Locker = &MemoryLocker{}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		store: gocache.New(gocache.NoExpiration, time.Minute),
	}
}

func (l *MemoryLocker) TryLock(_ context.Context, key string, ttl time.Duration) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	token := uuid.NewString()
	if err := l.store.Add(key, token, ttl); err != nil {
		return "", ErrLockHeld
	}
	return token, nil
}

func (l *MemoryLocker) Unlock(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, found := l.store.Get(key)
	if !found {
		return nil
	}
	if owned, ok := current.(string); ok && owned == token {
		l.store.Delete(key)
	}
	return nil
}
