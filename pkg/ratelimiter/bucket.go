package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Config describes a token bucket.
type Config struct {
	Capacity       int // burst size
	RefillRate     int // tokens added per interval
	RefillInterval time.Duration
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result reports the bucket state after a request.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is how long a denied client should wait, measured from now.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Limiter decides whether a keyed request may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

type state struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Bucket is an in-memory Limiter.
type Bucket struct {
	cfg        Config
	now        func() time.Time
	staleAfter time.Duration

	mu        sync.Mutex
	keys      map[string]*state
	lastSweep time.Time
}

type Option func(*Bucket)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Bucket) {
		if now != nil {
			b.now = now
		}
	}
}

// WithStaleAfter sets how long an idle key is kept.
func WithStaleAfter(d time.Duration) Option {
	return func(b *Bucket) {
		if d > 0 {
			b.staleAfter = d
		}
	}
}

func NewBucket(cfg Config, opts ...Option) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	b := &Bucket{
		cfg:        cfg,
		now:        time.Now,
		staleAfter: time.Hour,
		keys:       make(map[string]*state),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.lastSweep = b.now()
	return b, nil
}

func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key when available.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.sweep(now)

	s, ok := b.keys[key]
	if !ok {
		s = &state{tokens: b.cfg.Capacity, lastRefill: now}
		b.keys[key] = s
	}
	b.refill(s, now)
	s.lastAccess = now

	allowed := s.tokens >= n
	if allowed {
		s.tokens -= n
	}

	return Result{
		Allowed:   allowed,
		Limit:     b.cfg.Capacity,
		Remaining: s.tokens,
		ResetAt:   s.lastRefill.Add(b.cfg.RefillInterval),
	}, nil
}

// Reset forgets key.
func (b *Bucket) Reset(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.keys, key)
}

// Len is the number of tracked keys.
func (b *Bucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys)
}

func (b *Bucket) refill(s *state, now time.Time) {
	if s.tokens >= b.cfg.Capacity {
		s.lastRefill = now
		return
	}
	intervals := int64(now.Sub(s.lastRefill) / b.cfg.RefillInterval)
	if intervals <= 0 {
		return
	}
	// Enough intervals to fill from empty; larger counts only risk overflow.
	full := int64(b.cfg.Capacity/b.cfg.RefillRate + 1)
	s.tokens = min(s.tokens+int(min(intervals, full))*b.cfg.RefillRate, b.cfg.Capacity)
	s.lastRefill = s.lastRefill.Add(time.Duration(intervals) * b.cfg.RefillInterval)
}

func (b *Bucket) sweep(now time.Time) {
	if now.Sub(b.lastSweep) < b.staleAfter {
		return
	}
	for key, s := range b.keys {
		if now.Sub(s.lastAccess) > b.staleAfter {
			delete(b.keys, key)
		}
	}
	b.lastSweep = now
}
