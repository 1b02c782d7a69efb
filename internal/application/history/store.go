// Package history keeps the append-only record of past analyses on the
// device, most-recent-first, surviving restarts.
package history

import (
	"context"
	"strconv"

	"github.com/apex/log"

	"github.com/medicode-ai/medicode/internal/application"
	"github.com/medicode-ai/medicode/internal/domain/analysis"
	"github.com/medicode-ai/medicode/internal/infra/store"
)

// Store owns the persisted history sequence and the dark-mode flag. Items are
// keyed by clock-derived IDs; uniqueness is monotonic-clock-derived, not
// cryptographic.
type Store struct {
	persisted *store.Persisted
	namespace string
	clock     application.Clock
}

func New(kv store.KV, namespace string, clock application.Clock, logger log.Interface) *Store {
	if namespace == "" {
		namespace = "MediCode"
	}
	return &Store{
		persisted: store.NewPersisted(kv, logger),
		namespace: namespace,
		clock:     clock,
	}
}

func (s *Store) historyKey() string  { return s.namespace + "-history" }
func (s *Store) darkModeKey() string { return s.namespace + "-dark-mode" }

// List returns all stored items, most-recent-first. Corrupt or missing
// storage yields an empty list, never an error.
func (s *Store) List(ctx context.Context) []analysis.HistoryItem {
	return store.Load(ctx, s.persisted, s.historyKey(), []analysis.HistoryItem(nil))
}

// Append prepends a new item built from res. Both successful and failed
// results are recorded so the user is never silently missing a scan attempt.
func (s *Store) Append(ctx context.Context, res analysis.Result) (analysis.HistoryItem, error) {
	now := s.clock.Now()
	item := analysis.HistoryItem{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Result:      res.Result,
		TamilResult: res.TamilResult,
		HindiResult: res.HindiResult,
		Timestamp:   now,
	}

	items := append([]analysis.HistoryItem{item}, s.List(ctx)...)
	if err := s.persisted.Save(ctx, s.historyKey(), items); err != nil {
		return analysis.HistoryItem{}, err
	}
	return item, nil
}

// Delete removes the item with the given ID. Deleting an unknown ID is a
// no-op: the stored sequence is left untouched.
func (s *Store) Delete(ctx context.Context, id string) error {
	items := s.List(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.persisted.Save(ctx, s.historyKey(), kept)
}

// DarkMode reports the persisted dark-mode flag, defaulting to false.
func (s *Store) DarkMode(ctx context.Context) bool {
	return store.Load(ctx, s.persisted, s.darkModeKey(), false)
}

func (s *Store) SetDarkMode(ctx context.Context, on bool) error {
	return s.persisted.Save(ctx, s.darkModeKey(), on)
}
