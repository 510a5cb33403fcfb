package ratelimit

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// KeyFunc derives the throttling key of a request. An empty key falls back to the client IP.
type KeyFunc func(c *gin.Context) string

// Middleware rejects requests over limit per window with 429
func Middleware(limiter RateLimiter, limit int, window time.Duration, keyFn KeyFunc, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 || limiter == nil {
			c.Next()
			return
		}
		key := ""
		if keyFn != nil {
			key = keyFn(c)
		}
		if key == "" {
			key = KeyByIP(c)
		}

		decision := limiter.Allow(key, limit, window)
		applyRateHeaders(c, limit, decision)
		if !decision.Allowed {
			m.RecordRateLimitHit(c.FullPath(), metricKey(key))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": apperrors.ErrTooManyAttempts.Error()})
			return
		}
		c.Next()
	}
}

// KeyByIP throttles by client address
func KeyByIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

func applyRateHeaders(c *gin.Context, limit int, decision Decision) {
	remaining := limit - decision.Count
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	if !decision.WindowEnd.IsZero() {
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.WindowEnd.Unix(), 10))
		if !decision.Allowed {
			retryAfter := int(time.Until(decision.WindowEnd).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
		}
	}
}

func metricKey(key string) string {
	if idx := strings.IndexRune(key, ':'); idx > 0 {
		return key[:idx]
	}
	if key == "" {
		return "unknown"
	}
	return key
}
