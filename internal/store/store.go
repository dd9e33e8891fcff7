// Package store implements the Record Store: a durable key-value layer
// where each key holds one JSON-serialized collection. Screens read a
// working copy on mount and write the whole list back on save.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Keys of the persisted collections.
const (
	KeyExpenses        = "myExpenses"
	KeyBudgets         = "myBudgets"
	KeyWeeklyVariables = "weeklyVariables"
)

// Store is the Record Store contract. A Set fully overwrites the prior
// value and is visible to subsequent Gets; there are no transactions, no
// expiry and no cross-key consistency guarantees.
type Store interface {
	// Get returns the raw value for key, or found=false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value json.RawMessage, found bool, err error)
	// Set durably overwrites the value for key.
	Set(ctx context.Context, key string, value json.RawMessage) error
}

// Load reads and decodes the list stored under key. A key that was never
// written, or a stored value that no longer decodes, yields the seed: a
// screen renders its defaults rather than crashing on bad state.
func Load[T any](ctx context.Context, s Store, key string, seed []T) ([]T, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if !found {
		return append([]T(nil), seed...), nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.WarnContext(ctx, "Stored value is unreadable, falling back to seed",
			"key", key, "error", err)
		return append([]T(nil), seed...), nil
	}
	return out, nil
}

// Save encodes and persists the whole list under key, replacing whatever
// was there before.
func Save[T any](ctx context.Context, s Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
