package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRedis answers INCR, EXPIRE and TTL from memory so failures can be injected
type scriptedRedis struct {
	mu          sync.Mutex
	counts      map[string]int64
	expiring    map[string]bool
	failIncr    bool
	failExpires int
	expireCalls int
}

func newScriptedRedis() *scriptedRedis {
	return &scriptedRedis{
		counts:   make(map[string]int64),
		expiring: make(map[string]bool),
	}
}

func (s *scriptedRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (s *scriptedRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (s *scriptedRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		key, _ := cmd.Args()[1].(string)
		switch cmd.Name() {
		case "incr":
			if s.failIncr {
				err := errors.New("connection refused")
				cmd.SetErr(err)
				return err
			}
			s.counts[key]++
			cmd.(*redis.IntCmd).SetVal(s.counts[key])
		case "expire":
			s.expireCalls++
			if s.failExpires > 0 {
				s.failExpires--
				err := errors.New("i/o timeout")
				cmd.SetErr(err)
				return err
			}
			s.expiring[key] = true
			cmd.(*redis.BoolCmd).SetVal(true)
		case "ttl":
			ttl := time.Duration(-2)
			if _, ok := s.counts[key]; ok {
				ttl = noExpiry
				if s.expiring[key] {
					ttl = 30 * time.Second
				}
			}
			cmd.(*redis.DurationCmd).SetVal(ttl)
		default:
			return next(ctx, cmd)
		}
		return nil
	}
}

func newScriptedLimiter(t *testing.T, fake *scriptedRedis) RateLimiter {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(fake)
	rl := NewRedisRateLimiterFromClient(client)
	t.Cleanup(rl.Close)
	return rl
}

func TestRedisRateLimiter_LostExpireIsRepaired(t *testing.T) {
	fake := newScriptedRedis()
	fake.failExpires = 1
	rl := newScriptedLimiter(t, fake)

	first := rl.Allow("ip:1.2.3.4", 5, time.Minute)
	assert.True(t, first.Allowed)

	fake.mu.Lock()
	armed := fake.expiring[redisKeyPrefix+"ip:1.2.3.4"]
	fake.mu.Unlock()
	require.True(t, armed, "counter key must get a timeout even when the first EXPIRE fails")

	for i := 0; i < 19; i++ {
		rl.Allow("ip:1.2.3.4", 5, time.Minute)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 2, fake.expireCalls, "expiry is re-armed once, then left alone")
	assert.EqualValues(t, 20, fake.counts[redisKeyPrefix+"ip:1.2.3.4"])
}

func TestRedisRateLimiter_WindowEndFollowsTTL(t *testing.T) {
	rl := newScriptedLimiter(t, newScriptedRedis())

	d := rl.Allow("ip:5.6.7.8", 1, time.Minute)
	assert.True(t, d.Allowed)
	assert.WithinDuration(t, time.Now().Add(30*time.Second), d.WindowEnd, 2*time.Second)

	d = rl.Allow("ip:5.6.7.8", 1, time.Minute)
	assert.False(t, d.Allowed)
	assert.Equal(t, 2, d.Count)
}

func TestRedisRateLimiter_FailsOpen(t *testing.T) {
	fake := newScriptedRedis()
	fake.failIncr = true
	rl := newScriptedLimiter(t, fake)

	for i := 0; i < 3; i++ {
		d := rl.Allow("ip:9.9.9.9", 1, time.Minute)
		assert.True(t, d.Allowed)
	}
}
