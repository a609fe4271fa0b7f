// Package ratelimit 提供固定窗口限流单元测试
package ratelimit

import (
	"context"
	"testing"
	"time"
)

// fakeClock 可手动推进的假时钟
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestMemoryLimiterEnforcesQuota(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	l := NewMemory(2, 15*time.Minute, clock.Now)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := l.Allow(ctx, "1.2.3.4")
		if err != nil || !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if allowed, _ := l.Allow(ctx, "1.2.3.4"); allowed {
		t.Fatal("third request in window should be denied")
	}
}

func TestMemoryLimiterWindowResets(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	l := NewMemory(1, 15*time.Minute, clock.Now)
	ctx := context.Background()

	if allowed, _ := l.Allow(ctx, "1.2.3.4"); !allowed {
		t.Fatal("first request should be allowed")
	}
	if allowed, _ := l.Allow(ctx, "1.2.3.4"); allowed {
		t.Fatal("second request should be denied")
	}

	clock.Advance(15 * time.Minute)

	if allowed, _ := l.Allow(ctx, "1.2.3.4"); !allowed {
		t.Fatal("request after window expiry should be allowed")
	}
}

func TestMemoryLimiterIsolatesClients(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	l := NewMemory(1, 15*time.Minute, clock.Now)
	ctx := context.Background()

	if allowed, _ := l.Allow(ctx, "1.2.3.4"); !allowed {
		t.Fatal("first client should be allowed")
	}
	if allowed, _ := l.Allow(ctx, "5.6.7.8"); !allowed {
		t.Fatal("quota must be tracked per client")
	}
}
