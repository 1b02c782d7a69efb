package store

import "context"

// KV is the durable key-value substrate behind the persisted stores. It only
// holds text-safe primitives; callers serialize values before writing.
//
// Single-writer-per-key is assumed: all reads and writes originate from one
// goroutine. This is a documented constraint, not something the substrate
// enforces.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}
