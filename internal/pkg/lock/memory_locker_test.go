package lock

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLockerAcquireAndContend(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	token, err := l.TryLock(ctx, "session-a", time.Minute)
	if err != nil {
		t.Fatalf("TryLock returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	if _, err := l.TryLock(ctx, "session-a", time.Minute); err != ErrLockHeld {
		t.Fatalf("expected ErrLockHeld, got %v", err)
	}

	// A different key is independent.
	if _, err := l.TryLock(ctx, "session-b", time.Minute); err != nil {
		t.Fatalf("independent key should lock, got %v", err)
	}
}

func TestMemoryLockerUnlockRequiresToken(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	token, err := l.TryLock(ctx, "session-a", time.Minute)
	if err != nil {
		t.Fatalf("TryLock returned error: %v", err)
	}

	// Wrong token must not release the lock.
	if err := l.Unlock(ctx, "session-a", "not-the-token"); err != nil {
		t.Fatalf("Unlock returned error: %v", err)
	}
	if _, err := l.TryLock(ctx, "session-a", time.Minute); err != ErrLockHeld {
		t.Fatalf("lock should still be held, got %v", err)
	}

	if err := l.Unlock(ctx, "session-a", token); err != nil {
		t.Fatalf("Unlock returned error: %v", err)
	}
	if _, err := l.TryLock(ctx, "session-a", time.Minute); err != nil {
		t.Fatalf("lock should be free after unlock, got %v", err)
	}
}

func TestMemoryLockerExpires(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	if _, err := l.TryLock(ctx, "session-a", 5*time.Millisecond); err != nil {
		t.Fatalf("TryLock returned error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := l.TryLock(ctx, "session-a", time.Minute); err != nil {
		t.Fatalf("expired lock should be reacquirable, got %v", err)
	}
}
