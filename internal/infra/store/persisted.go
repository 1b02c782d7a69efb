package store

import (
	"context"
	"encoding/json"

	"github.com/apex/log"
)

// Persisted layers JSON (de)serialization over a KV substrate. Values are
// committed as JSON text; time.Time fields round-trip through their RFC 3339
// encoding, which is the canonical locale-independent form for every
// timestamp this store touches. Nothing here persists a language-native date
// object.
type Persisted struct {
	kv  KV
	log log.Interface
}

func NewPersisted(kv KV, logger log.Interface) *Persisted {
	if logger == nil {
		logger = log.Log
	}
	return &Persisted{kv: kv, log: logger}
}

// Load returns the value stored under key, or initial when the key is absent.
// Malformed stored data logs a diagnostic and falls back to initial; Load
// never returns an error and never writes.
func Load[T any](ctx context.Context, p *Persisted, key string, initial T) T {
	raw, ok, err := p.kv.Get(ctx, key)
	if err != nil {
		p.log.WithError(err).WithField("key", key).Warn("persisted read failed, using initial value")
		return initial
	}
	if !ok {
		return initial
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		p.log.WithError(err).WithField("key", key).Warn("persisted value corrupt, using initial value")
		return initial
	}
	return v
}

// Save serializes v and commits it under key.
func (p *Persisted) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.kv.Put(ctx, key, string(data))
}
