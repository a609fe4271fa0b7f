// Package ratelimit 实现按客户端地址的固定窗口限流
//
// 内存实现是零依赖默认；多实例部署时用 Redis 实现共享计数。
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter 限流器
//
// Allow 返回 clientID 在当前窗口内是否仍有配额。
type Limiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

// Clock 时钟依赖，测试中可注入假时钟
type Clock func() time.Time

// MemoryLimiter 进程内固定窗口限流器
type MemoryLimiter struct {
	limit  int
	window time.Duration
	clock  Clock

	mu      sync.Mutex
	windows map[string]*windowState
}

type windowState struct {
	start time.Time
	count int
}

// NewMemory 创建内存限流器；clock 为 nil 时使用 time.Now
func NewMemory(limit int, window time.Duration, clock Clock) *MemoryLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		clock:   clock,
		windows: make(map[string]*windowState),
	}
}

// Allow 实现 Limiter 接口
func (l *MemoryLimiter) Allow(_ context.Context, clientID string) (bool, error) {
	now := l.clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[clientID]
	if !ok || now.Sub(w.start) >= l.window {
		l.windows[clientID] = &windowState{start: now, count: 1}
		return true, nil
	}

	w.count++
	return w.count <= l.limit, nil
}
