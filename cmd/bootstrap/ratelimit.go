package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/config"
	"github.com/spaarke-dev/spaakre-website/internal/ratelimit"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewLimiter,
	),
)

// NewLimiter wires the in-process sliding-window limiter by default, or a
// Redis-backed one when REDIS_ADDR is set so multiple instances share the
// same window. The in-process janitor runs for the process lifetime.
func NewLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (ratelimit.Limiter, error) {
	max := ratelimit.MaxPerWindow(cfg.RateLimit.MaxPerMinute)

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		logger.Info("rate limiter using redis backend", "addr", cfg.Redis.Addr, "max_per_minute", max)
		return ratelimit.NewRedisLimiter(client, max, clk), nil
	}

	limiter := ratelimit.NewMemoryLimiter(max, clk)

	var stopJanitor func()
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			stopJanitor = limiter.StartJanitor()
			return nil
		},
		OnStop: func(_ context.Context) error {
			if stopJanitor != nil {
				stopJanitor()
			}
			return nil
		},
	})

	logger.Info("rate limiter using in-process table", "max_per_minute", max)
	return limiter, nil
}
