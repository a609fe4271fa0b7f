package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter 基于 Redis INCR + EXPIRE 的固定窗口限流器
//
// 键形如 ratelimit:{scope}:{clientID}；scope 区分 chat 和 health 两套配额。
type RedisLimiter struct {
	client *redis.Client
	scope  string
	limit  int
	window time.Duration
}

// NewRedis 创建 Redis 限流器
func NewRedis(client *redis.Client, scope string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		scope:  scope,
		limit:  limit,
		window: window,
	}
}

// Allow 实现 Limiter 接口
//
// Redis 不可用时放行（fail open）并返回错误供调用方记录，
// 限流属于保护层，不应该把整个聊天端点打挂。
func (l *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", l.scope, clientID)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return true, fmt.Errorf("ratelimit incr failed: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return true, fmt.Errorf("ratelimit expire failed: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}
