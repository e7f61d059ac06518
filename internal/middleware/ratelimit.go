package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL         = 10 * time.Minute
	limiterCleanupInterval = 5 * time.Minute
)

// RateLimiter hands out one token bucket per key
type RateLimiter struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
	perMin   int
	logger   *zap.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

// NewRateLimiter allows requestsPerMinute per key with the given burst. Idle keys are
// evicted in the background until Close is called.
func NewRateLimiter(requestsPerMinute, burst int, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		limit:  rate.Limit(float64(requestsPerMinute) / 60),
		burst:  burst,
		perMin: requestsPerMinute,
		logger: logger,
		stop:   make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Close stops the eviction goroutine
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.limiters.Range(func(key, value interface{}) bool {
				entry := value.(*limiterEntry)
				entry.mu.Lock()
				idle := now.Sub(entry.lastAccess) > limiterIdleTTL
				entry.mu.Unlock()
				if idle {
					rl.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

// Allow reports whether one more request for key fits in its bucket
func (rl *RateLimiter) Allow(key string) bool {
	value, _ := rl.limiters.LoadOrStore(key, &limiterEntry{
		limiter:    rate.NewLimiter(rl.limit, rl.burst),
		lastAccess: time.Now(),
	})
	entry := value.(*limiterEntry)
	entry.mu.Lock()
	entry.lastAccess = time.Now()
	entry.mu.Unlock()
	return entry.limiter.Allow()
}

// Reject writes the 429 response for key
func (rl *RateLimiter) Reject(c *gin.Context, key string) {
	rl.logger.Warn("Rate limit exceeded",
		zap.String("client_id", key),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.perMin))
	c.Header("Retry-After", "1")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":       "Too many requests. Please try again later.",
		"retry_after": 1,
	})
}

// Middleware limits by the key returned from keyFn. An empty key falls back to the
// client IP.
func (rl *RateLimiter) Middleware(keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ""
		if keyFn != nil {
			key = keyFn(c)
		}
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !rl.Allow(key) {
			rl.Reject(c, key)
			return
		}
		c.Next()
	}
}
