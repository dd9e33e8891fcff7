// Package weekly manages the fixed-cardinality editable weekly amounts.
// Amounts are stored as raw text, exactly as entered; parsing happens only
// where a number is displayed or summed, never on save.
package weekly

import (
	"context"
	"fmt"
	"log/slog"

	"finwise/internal/core"
	"finwise/internal/store"
)

// Seed is the default list while the key has never been written. Ids and
// labels are fixed; only the amounts change.
func Seed() []core.WeeklyVariable {
	return []core.WeeklyVariable{
		{ID: 1, Label: "Groceries", Amount: "150.00"},
		{ID: 2, Label: "Transport", Amount: "50.00"},
		{ID: 3, Label: "Entertainment", Amount: "100.00"},
	}
}

type Service struct {
	store store.Store
}

func New(s store.Store) *Service {
	return &Service{store: s}
}

// List returns the stored variables, the seed on first run.
func (s *Service) List(ctx context.Context) ([]core.WeeklyVariable, error) {
	items, err := store.Load(ctx, s.store, store.KeyWeeklyVariables, Seed())
	if err != nil {
		return nil, fmt.Errorf("load weekly variables: %w", err)
	}
	return items, nil
}

// UpdateAmount replaces the amount of exactly the matching item on a
// working copy, preserving order and every other item verbatim. An
// unknown id returns the copy unchanged.
func UpdateAmount(items []core.WeeklyVariable, id int64, text string) []core.WeeklyVariable {
	out := append([]core.WeeklyVariable(nil), items...)
	for i := range out {
		if out[i].ID == id {
			out[i].Amount = text
			break
		}
	}
	return out
}

// PersistAll writes the entire list back, unconditionally overwriting the
// prior contents.
func (s *Service) PersistAll(ctx context.Context, items []core.WeeklyVariable) error {
	if err := store.Save(ctx, s.store, store.KeyWeeklyVariables, items); err != nil {
		return fmt.Errorf("persist weekly variables: %w", err)
	}
	slog.InfoContext(ctx, "Weekly variables saved", "count", len(items))
	return nil
}
