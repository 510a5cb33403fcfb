package ratelimit

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisKeyPrefix = "problem-selection:ratelimit:"

// noExpiry is what TTL reports for a key that exists without a timeout
const noExpiry = time.Duration(-1)

type redisRateLimiter struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
}

// NewRedisRateLimiterFromClient returns a limiter shared by every replica using client
func NewRedisRateLimiterFromClient(client redis.UniversalClient) RateLimiter {
	return &redisRateLimiter{
		client:  client,
		prefix:  redisKeyPrefix,
		timeout: 250 * time.Millisecond,
	}
}

// Allow fails open: a Redis error lets the request through.
func (rl *redisRateLimiter) Allow(key string, limit int, window time.Duration) Decision {
	if limit <= 0 {
		return Decision{Allowed: true}
	}
	if window <= 0 {
		window = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), rl.timeout)
	defer cancel()

	redisKey := rl.prefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		logRedisError("incr", err)
		return Decision{Allowed: true}
	}
	if counter == 1 {
		rl.expire(ctx, redisKey, window)
	}
	ttl, err := rl.client.TTL(ctx, redisKey).Result()
	switch {
	case err != nil:
		logRedisError("ttl", err)
		ttl = window
	case ttl == noExpiry:
		// the EXPIRE after the first hit was lost; re-arm so the key cannot outlive its window
		rl.expire(ctx, redisKey, window)
		ttl = window
	case ttl <= 0:
		ttl = window
	}
	return Decision{
		Allowed:   int(counter) <= limit,
		Count:     int(counter),
		WindowEnd: time.Now().Add(ttl),
	}
}

func (rl *redisRateLimiter) expire(ctx context.Context, key string, window time.Duration) {
	if err := rl.client.Expire(ctx, key, window).Err(); err != nil {
		logRedisError("expire", err)
	}
}

func (rl *redisRateLimiter) Close() {
	if rl.client != nil {
		_ = rl.client.Close()
	}
}

func logRedisError(op string, err error) {
	logrus.WithFields(logrus.Fields{"op": op}).WithError(err).Error("redis rate limiter error")
}
