// Package ledger implements the append-only flexible-expense collection.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"finwise/internal/core"
	"finwise/internal/events"
	"finwise/internal/store"
)

// Ledger appends validated expenses to the persisted list and reduces it
// to the totals the dashboard and annual overview show. Entries are never
// updated or deleted.
type Ledger struct {
	store  store.Store
	clock  core.Clock
	events *events.Client
}

func New(s store.Store, clock core.Clock, ev *events.Client) *Ledger {
	return &Ledger{store: s, clock: clock, events: ev}
}

// Append validates the input, stamps a fresh id and creation date, and
// persists the grown list. On a validation error nothing is written and
// the caller surfaces the error as a blocking message.
func (l *Ledger) Append(ctx context.Context, name, amount string, category core.Category) (core.ExpenseEntry, error) {
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.ExpenseEntry{}, err
	}

	now := l.clock.Now()
	entry := core.ExpenseEntry{
		ID:       now.UnixMilli(),
		Name:     strings.TrimSpace(name),
		Amount:   core.Money{Cents: cents},
		Category: category,
		Date:     now.Format(core.DateFormat),
	}
	if err := entry.Validate(); err != nil {
		return core.ExpenseEntry{}, err
	}

	entries, err := store.Load[core.ExpenseEntry](ctx, l.store, store.KeyExpenses, nil)
	if err != nil {
		return core.ExpenseEntry{}, fmt.Errorf("load expenses: %w", err)
	}

	// Ids are clock-millis; bump past existing ids so appends within the
	// same millisecond stay unique.
	for _, e := range entries {
		if e.ID >= entry.ID {
			entry.ID = e.ID + 1
		}
	}

	entries = append(entries, entry)
	if err := store.Save(ctx, l.store, store.KeyExpenses, entries); err != nil {
		return core.ExpenseEntry{}, fmt.Errorf("persist expenses: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", entry.ID,
		"name", entry.Name,
		"amount_cents", entry.Amount.Cents,
		"category", entry.Category)

	l.publishSaved(ctx, entry.ID)
	return entry, nil
}

// List returns all entries, oldest first.
func (l *Ledger) List(ctx context.Context) ([]core.ExpenseEntry, error) {
	entries, err := store.Load[core.ExpenseEntry](ctx, l.store, store.KeyExpenses, nil)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return entries, nil
}

// SumAll returns the sum of all entry amounts, zero for an empty ledger.
// It never mutates the store.
func (l *Ledger) SumAll(ctx context.Context) (core.Money, error) {
	entries, err := l.List(ctx)
	if err != nil {
		return core.Money{}, err
	}
	var total core.Money
	for _, e := range entries {
		total.Cents += e.Amount.Cents
	}
	return total, nil
}

func (l *Ledger) publishSaved(ctx context.Context, id int64) {
	if l.events == nil {
		return
	}
	if err := l.events.PublishRecordSaved(ctx, store.KeyExpenses, id); err != nil {
		// The expense is saved locally; a lost notification is not an error
		// the user should see.
		slog.ErrorContext(ctx, "Failed to publish record saved message",
			"key", store.KeyExpenses, "id", id, "error", err)
	}
}
