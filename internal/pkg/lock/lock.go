package lock

import (
	"context"
	"errors"
	"time"
)

// ErrLockHeld is returned when the lock is already owned by another caller.
var ErrLockHeld = errors.New("lock already held")

// Locker guards a key for the duration of an operation. Locks expire on
// their own so a crashed holder cannot wedge a session forever.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, err error)
	Unlock(ctx context.Context, key, token string) error
}
