package rate

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterBlocksOverLimit(t *testing.T) {
	l := NewMemoryLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "0xABC")
		if err != nil || !ok {
			t.Fatalf("attempt %d: allow = %v, %v; want allowed", i+1, ok, err)
		}
	}
	ok, err := l.Allow(ctx, "0xABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("fourth attempt within window must be blocked")
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Hour)
	ctx := context.Background()

	if ok, _ := l.Allow(ctx, "0xAAA"); !ok {
		t.Fatal("first key must be allowed")
	}
	if ok, _ := l.Allow(ctx, "0xBBB"); !ok {
		t.Error("second key must not share the first key's window")
	}
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	l := NewMemoryLimiter(1, time.Hour)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	ctx := context.Background()

	if ok, _ := l.Allow(ctx, "0xABC"); !ok {
		t.Fatal("first attempt must be allowed")
	}
	if ok, _ := l.Allow(ctx, "0xABC"); ok {
		t.Fatal("second attempt inside window must be blocked")
	}

	current = current.Add(61 * time.Minute)
	if ok, _ := l.Allow(ctx, "0xABC"); !ok {
		t.Error("attempt after window expiry must be allowed")
	}
}

func TestMemoryLimiterCleanup(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	_, _ = l.Allow(context.Background(), "0xABC")
	current = current.Add(2 * time.Minute)
	l.Cleanup()

	if len(l.entries) != 0 {
		t.Errorf("entries = %d, want 0 after cleanup", len(l.entries))
	}
}
