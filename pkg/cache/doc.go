// Package cache provides a bounded, concurrency-safe LRU cache.
package cache
