// Package cache provides the pluggable backend used to cache LLM results
// by request fingerprint. A failing backend never blocks progress: all
// errors degrade to cache misses.
package cache

import (
	"context"
	"time"
)

// Backend is the cache contract. Implementations must swallow transport
// errors: Get reports a miss, Set is best-effort.
type Backend interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}

// NoOp is the default backend: every lookup misses, every store is dropped.
type NoOp struct{}

// Get always reports a miss.
func (NoOp) Get(context.Context, string) (string, bool) { return "", false }

// Set drops the value.
func (NoOp) Set(context.Context, string, string, time.Duration) {}
