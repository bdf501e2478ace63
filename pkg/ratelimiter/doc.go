// Package ratelimiter throttles HTTP clients with per-key token buckets.
//
// A Bucket holds Capacity tokens per key and adds RefillRate tokens every
// RefillInterval. Denied requests do not consume tokens. Idle keys are
// swept lazily, so a Bucket needs no background goroutine and no Close.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.Config{
//		Capacity:       20,
//		RefillRate:     1,
//		RefillInterval: 500 * time.Millisecond,
//	})
//	r.Use(ratelimiter.Middleware(limiter))
package ratelimiter
