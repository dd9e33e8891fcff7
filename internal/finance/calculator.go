// Package finance derives the dashboard figures from the stored
// collections and the configured fixed costs.
package finance

import (
	"context"
	"fmt"

	"finwise/internal/core"
)

// Default constants for the fixed and subscription cost groups, in cents.
// The subscription figure matches the registry seed sum; it is a constant
// rather than a live read of the session registry, mirroring the fact that
// reminder toggles are not persisted either.
const (
	DefaultFixedCents = 120000
	DefaultSubsCents  = 6798
)

// VariableSummer is the ledger-side port: the sum of all flexible
// expenses.
type VariableSummer interface {
	SumAll(ctx context.Context) (core.Money, error)
}

// Calculator combines the live ledger sum with the configured constants.
// It is read-only over the store and holds no state between calls, so the
// dashboard always reflects the latest appends.
type Calculator struct {
	variable VariableSummer
	fixed    core.Money
	subs     core.Money
}

func NewCalculator(variable VariableSummer, fixed, subs core.Money) *Calculator {
	return &Calculator{variable: variable, fixed: fixed, subs: subs}
}

// ComputeFinancials builds a fresh summary from the current ledger state.
func (c *Calculator) ComputeFinancials(ctx context.Context) (core.FinancialsSummary, error) {
	variable, err := c.variable.SumAll(ctx)
	if err != nil {
		return core.FinancialsSummary{}, fmt.Errorf("sum ledger: %w", err)
	}
	return core.FinancialsSummary{
		Fixed:    c.fixed,
		Variable: variable,
		Subs:     c.subs,
	}, nil
}
