package core

// FinancialsSummary aggregates the three monthly cost groups shown on the
// dashboard. It is derived state: recomputed on every render, never
// persisted or cached.
type FinancialsSummary struct {
	Fixed    Money
	Variable Money
	Subs     Money
}

// Total is the grand total across all three groups.
func (s FinancialsSummary) Total() Money {
	return Money{Cents: s.Fixed.Cents + s.Variable.Cents + s.Subs.Cents}
}

// CategoryShare is one row of the dashboard category breakdown.
type CategoryShare struct {
	Name    string
	Amount  Money
	Percent float64
}

// Breakdown maps each cost group to its value and its share of the grand
// total. Percentages are clamped to 100; a zero total yields 0% for every
// row instead of dividing by zero.
func (s FinancialsSummary) Breakdown() []CategoryShare {
	total := s.Total().Cents
	share := func(name string, m Money) CategoryShare {
		cs := CategoryShare{Name: name, Amount: m}
		if total <= 0 {
			return cs
		}
		p := float64(m.Cents) / float64(total) * 100
		if p > 100 {
			p = 100
		}
		cs.Percent = p
		return cs
	}
	return []CategoryShare{
		share("Fixed", s.Fixed),
		share("Variable", s.Variable),
		share("Subscriptions", s.Subs),
	}
}
