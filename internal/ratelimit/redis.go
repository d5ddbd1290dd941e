package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter implements the same sliding window on a Redis sorted set
// (score = request timestamp in ms), so multiple instances share one window.
// The check is not a single atomic script; on backend errors the caller is
// expected to fail open rather than reject traffic.
type RedisLimiter struct {
	client *redis.Client
	max    int
	clock  clock.Clock
}

var _ Limiter = (*RedisLimiter)(nil)

func NewRedisLimiter(client *redis.Client, max int, clk clock.Clock) *RedisLimiter {
	if max <= 0 {
		max = DefaultMaxPerWindow
	}
	return &RedisLimiter{client: client, max: max, clock: clk}
}

func (l *RedisLimiter) Check(ctx context.Context, key string) (Decision, error) {
	now := l.clock.Now().UnixMilli()
	cutoff := now - Window.Milliseconds()
	rkey := redisKeyPrefix + key

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, rkey, "-inf", strconv.FormatInt(cutoff, 10))
	countCmd := pipe.ZCard(ctx, rkey)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, err
	}

	count := countCmd.Val()
	if count >= int64(l.max) {
		idx := count - int64(l.max)
		entries, err := l.client.ZRangeWithScores(ctx, rkey, idx, idx).Result()
		if err != nil {
			return Decision{}, err
		}
		retryAfter := 1
		if len(entries) > 0 {
			oldest := int64(entries[0].Score)
			if secs := ceilSeconds(oldest + Window.Milliseconds() - now); secs > retryAfter {
				retryAfter = secs
			}
		}
		return Decision{Allowed: false, RetryAfter: retryAfter}, nil
	}

	member := strconv.FormatInt(now, 10) + "-" + uuid.NewString()
	pipe = l.client.TxPipeline()
	pipe.ZAdd(ctx, rkey, redis.Z{Score: float64(now), Member: member})
	pipe.Expire(ctx, rkey, Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, err
	}
	return Decision{Allowed: true}, nil
}
