// Package subs holds the recurring-subscription registry.
//
// The registry is deliberately session-scoped: it is seeded on
// construction and never written to the Record Store, so reminder toggles
// reset when the process restarts. The dashboard's subscription figure is
// likewise a configured constant, not a live read of this list. Giving
// the registry a store key would change user-visible behavior and is left
// as a deliberate follow-up decision.
package subs

import (
	"sync"

	"finwise/internal/core"
)

// Seed is the built-in subscription list.
func Seed() []core.Subscription {
	return []core.Subscription{
		{ID: 1, Name: "Netflix", Cost: core.Money{Cents: 1299}, Date: "15th", Reminder: true},
		{ID: 2, Name: "Spotify", Cost: core.Money{Cents: 999}, Date: "28th", Reminder: false},
		{ID: 3, Name: "Gym", Cost: core.Money{Cents: 4500}, Date: "1st", Reminder: true},
	}
}

type Registry struct {
	mu    sync.Mutex
	items []core.Subscription
}

func NewRegistry(seed []core.Subscription) *Registry {
	return &Registry{items: append([]core.Subscription(nil), seed...)}
}

// List returns a copy of the current subscriptions.
func (r *Registry) List() []core.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Subscription(nil), r.items...)
}

// ToggleReminder flips the reminder flag on exactly the matching record;
// an unknown id leaves the list unchanged. It returns the resulting list.
func (r *Registry) ToggleReminder(id int64) []core.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Reminder = !r.items[i].Reminder
			break
		}
	}
	return append([]core.Subscription(nil), r.items...)
}

// SumAll returns the total monthly cost, zero for an empty registry.
func (r *Registry) SumAll() core.Money {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total core.Money
	for _, s := range r.items {
		total.Cents += s.Cost.Cents
	}
	return total
}
