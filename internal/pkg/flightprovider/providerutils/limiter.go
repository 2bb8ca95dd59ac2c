package providerutils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// RateLimiter throttles calls to an upstream, keyed by endpoint.
type RateLimiter interface {
	Wait(ctx context.Context, key string) error
}

// RedisLimiter shares its budget across instances. Calls over budget wait
// for the next slot until ctx is done.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	rps     int
}

func NewRedisLimiter(limiter *redis_rate.Limiter, rps int) *RedisLimiter {
	return &RedisLimiter{
		limiter: limiter,
		rps:     rps,
	}
}

func (l *RedisLimiter) Wait(ctx context.Context, key string) error {
	if l.rps <= 0 {
		return nil
	}

	key = fmt.Sprintf("limit:%s", key)
	limit := redis_rate.PerSecond(l.rps)

	for {
		res, err := l.limiter.Allow(ctx, key, limit)
		if err != nil {
			return fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed > 0 {
			return nil
		}

		retryAfter := res.RetryAfter
		if retryAfter <= 0 {
			retryAfter = time.Second / time.Duration(l.rps)
		}

		timer := time.NewTimer(retryAfter)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ErrProviderRateLimitExceeded.WithCause(ctx.Err())
		case <-timer.C:
		}
	}
}

// LocalLimiter keeps one token bucket per key in process memory and blocks
// until a token is available or ctx is done.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      int
}

func NewLocalLimiter(rps int) *LocalLimiter {
	return &LocalLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

func (l *LocalLimiter) Wait(ctx context.Context, key string) error {
	if err := l.get(key).Wait(ctx); err != nil {
		return ErrProviderRateLimitExceeded.WithCause(err)
	}

	return nil
}

func (l *LocalLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limit, burst := rate.Inf, 0
		if l.rps > 0 {
			limit, burst = rate.Limit(l.rps), l.rps
		}

		limiter = rate.NewLimiter(limit, burst)
		l.limiters[key] = limiter
	}

	return limiter
}
