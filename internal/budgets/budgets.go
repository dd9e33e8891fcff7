// Package budgets manages named spending goals. Goals track spending
// manually: the spent counter is set at creation and never updated by new
// ledger entries.
package budgets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"finwise/internal/core"
	"finwise/internal/events"
	"finwise/internal/store"
)

// Seed is the default goal pair returned while the key has never been
// written.
func Seed() []core.BudgetGoal {
	return []core.BudgetGoal{
		{ID: 1, Category: "Food", Limit: core.Money{Cents: 30000}, Spent: core.Money{Cents: 15000}},
		{ID: 2, Category: "Transport", Limit: core.Money{Cents: 10000}, Spent: core.Money{Cents: 8000}},
	}
}

type Service struct {
	store  store.Store
	clock  core.Clock
	events *events.Client
}

func New(s store.Store, clock core.Clock, ev *events.Client) *Service {
	return &Service{store: s, clock: clock, events: ev}
}

// Create validates and appends a new goal. Limit must be a positive
// parseable decimal; an absent or unparseable spent defaults to zero.
func (s *Service) Create(ctx context.Context, category, limit, spent string) (core.BudgetGoal, error) {
	limitCents, err := core.ParseDecimalToCents(limit)
	if err != nil {
		return core.BudgetGoal{}, core.ErrInvalidLimit
	}

	var spentCents int64
	if c, err := core.ParseDecimalToCents(spent); err == nil {
		spentCents = c
	}

	goal := core.BudgetGoal{
		ID:       s.clock.Now().UnixMilli(),
		Category: strings.TrimSpace(category),
		Limit:    core.Money{Cents: limitCents},
		Spent:    core.Money{Cents: spentCents},
	}
	if err := goal.Validate(); err != nil {
		return core.BudgetGoal{}, err
	}

	goals, err := store.Load(ctx, s.store, store.KeyBudgets, Seed())
	if err != nil {
		return core.BudgetGoal{}, fmt.Errorf("load budgets: %w", err)
	}
	for _, g := range goals {
		if g.ID >= goal.ID {
			goal.ID = g.ID + 1
		}
	}

	goals = append(goals, goal)
	if err := store.Save(ctx, s.store, store.KeyBudgets, goals); err != nil {
		return core.BudgetGoal{}, fmt.Errorf("persist budgets: %w", err)
	}

	slog.InfoContext(ctx, "Budget goal saved",
		"id", goal.ID,
		"category", goal.Category,
		"limit_cents", goal.Limit.Cents,
		"spent_cents", goal.Spent.Cents)

	if s.events != nil {
		if err := s.events.PublishRecordSaved(ctx, store.KeyBudgets, goal.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish record saved message",
				"key", store.KeyBudgets, "id", goal.ID, "error", err)
		}
	}
	return goal, nil
}

// List returns all goals, the seed pair on first run.
func (s *Service) List(ctx context.Context) ([]core.BudgetGoal, error) {
	goals, err := store.Load(ctx, s.store, store.KeyBudgets, Seed())
	if err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}
	return goals, nil
}
