package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"personal-task-management/config"
)

const (
	defaultCacheSize = 1000
	defaultIdleTTL   = 10 * time.Minute
)

// rateLimiter hands out one token bucket per key. Idle keys expire from the
// LRU, so a returning user starts with a full bucket.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.GeneratePerMin/10, 1)
	}

	limit := rate.Inf
	if cfg.GeneratePerMin > 0 {
		limit = rate.Limit(float64(cfg.GeneratePerMin) / 60.0)
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rate:     limit,
		burst:    burst,
	}
}

// allow reports whether key may proceed now.
func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
