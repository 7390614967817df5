package repository

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "roi:1", "payload", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok, err := cache.Get(ctx, "roi:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || val != "payload" {
		t.Errorf("expected payload, got %q (found=%v)", val, ok)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache()

	_, ok, err := cache.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected miss")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	cache.Set(ctx, "roi:1", "payload", time.Minute)

	now = now.Add(2 * time.Minute)

	if _, ok, _ := cache.Get(ctx, "roi:1"); ok {
		t.Errorf("expected entry to expire")
	}
	if cache.Len() != 0 {
		t.Errorf("expected expired entry to be evicted, got %d entries", cache.Len())
	}
}

func TestMemoryCache_ZeroTTLKeepsEntry(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	cache.Set(ctx, "roi:1", "payload", 0)
	now = now.Add(24 * time.Hour)

	if _, ok, _ := cache.Get(ctx, "roi:1"); !ok {
		t.Errorf("expected entry without ttl to be kept")
	}
}

func TestMemoryCache_SweepEvictsUnreadEntries(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		cache.Set(ctx, fmt.Sprintf("roi:%d", i), "payload", time.Minute)
	}
	cache.Set(ctx, "roi:pinned", "payload", 0)

	now = now.Add(24 * time.Hour)
	cache.Set(ctx, "roi:fresh", "payload", time.Minute)

	cache.sweep()

	if cache.Len() != 2 {
		t.Errorf("expected only unexpired entries to remain, got %d", cache.Len())
	}
	if _, ok, _ := cache.Get(ctx, "roi:fresh"); !ok {
		t.Errorf("expected fresh entry to survive the sweep")
	}
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("unexpected error on second close: %v", err)
	}
}
