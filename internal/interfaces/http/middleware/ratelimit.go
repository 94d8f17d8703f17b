package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EchoNews615/komibot/internal/shared/utils"
)

// RateLimiter provides in-memory IP rate limiting using a fixed-window
// counter. The service runs as a single process against a local sqlite
// file, so there is no shared backend to coordinate through.
type RateLimiter struct {
	mu      sync.Mutex
	counts  map[string]int
	limit   int
	window  time.Duration
	current int64
}

// NewRateLimiter creates a new in-memory rate limiter.
// limit is the maximum number of requests allowed per window.
// window is the duration of the fixed time window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts: make(map[string]int),
		limit:  limit,
		window: window,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string, now time.Time) bool {
	bucket := now.Unix() / int64(rl.window.Seconds())

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Rolling into a new window drops every stale counter at once.
	if bucket != rl.current {
		rl.current = bucket
		rl.counts = make(map[string]int)
	}

	rl.counts[clientIP]++
	return rl.counts[clientIP] <= rl.limit
}
