package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client IP over a sliding window. Each hit
// increments a counter and schedules its own decrement one window later.
type RateLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	limit  int
	window time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts: make(map[string]int),
		limit:  limit,
		window: window,
	}
}

// Allow records a hit for ip and reports whether it is within the limit.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.counts[ip] >= rl.limit {
		return false
	}
	rl.counts[ip]++

	time.AfterFunc(rl.window, func() {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		rl.counts[ip]--
		if rl.counts[ip] <= 0 {
			delete(rl.counts, ip)
		}
	})
	return true
}

// Middleware returns 429 once a client exceeds the window limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
