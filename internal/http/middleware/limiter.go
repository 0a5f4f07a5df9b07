package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Outcome is the per-call answer of a limiter.
type Outcome struct {
	Allowed   bool
	Limit     int
	Remaining int64
}

// Limiter is the admission capability the rate-limit middleware consults.
// Implementations only have to answer pass/fail per key per call.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Outcome, error)
}

// RedisLimiter is a fixed-window limiter backed by Redis INCR/EXPIRE.
// Keys look like rl:<window_seconds>:<identifier>.
type RedisLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewRedisLimiter connects to Redis and verifies the connection with a ping.
func NewRedisLimiter(addr, password string, db, maxRequests int, window time.Duration) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisLimiter{client: client, max: maxRequests, window: window}, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (*Outcome, error) {
	rkey := "rl:" + strconv.FormatInt(int64(l.window.Seconds()), 10) + ":" + key

	val, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return nil, err
	}

	if val == 1 {
		// first hit in the window, start its expiry
		l.client.Expire(ctx, rkey, l.window)
	}

	return &Outcome{
		Allowed:   val <= int64(l.max),
		Limit:     l.max,
		Remaining: max(0, int64(l.max)-val),
	}, nil
}

type windowInfo struct {
	start time.Time
	count int64
}

// MemoryLimiter is an in-process fixed-window limiter for development and
// tests, when no Redis is configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*windowInfo
	max     int
	window  time.Duration
}

func NewMemoryLimiter(maxRequests int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*windowInfo),
		max:     maxRequests,
		window:  window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (*Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) > l.window {
		w = &windowInfo{start: now}
		l.windows[key] = w
	}
	w.count++

	return &Outcome{
		Allowed:   w.count <= int64(l.max),
		Limit:     l.max,
		Remaining: max(0, int64(l.max)-w.count),
	}, nil
}
