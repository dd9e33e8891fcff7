package core

import "testing"

func TestFinancialsSummaryTotal(t *testing.T) {
	s := FinancialsSummary{
		Fixed:    Money{Cents: 120000},
		Variable: Money{Cents: 53000},
		Subs:     Money{Cents: 6798},
	}
	if got := s.Total().Cents; got != 179798 {
		t.Fatalf("total = %d, want 179798", got)
	}
	if got := (FinancialsSummary{}).Total().Cents; got != 0 {
		t.Fatalf("empty total = %d, want 0", got)
	}
}

func TestFinancialsSummaryBreakdown(t *testing.T) {
	s := FinancialsSummary{
		Fixed:    Money{Cents: 5000},
		Variable: Money{Cents: 2500},
		Subs:     Money{Cents: 2500},
	}
	rows := s.Breakdown()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Name != "Fixed" || rows[0].Percent != 50 {
		t.Fatalf("fixed row = %+v", rows[0])
	}
	if rows[1].Name != "Variable" || rows[1].Percent != 25 {
		t.Fatalf("variable row = %+v", rows[1])
	}
	if rows[2].Name != "Subscriptions" || rows[2].Percent != 25 {
		t.Fatalf("subs row = %+v", rows[2])
	}
	for i, r := range rows {
		if r.Percent > 100 {
			t.Fatalf("row %d percent %v exceeds 100", i, r.Percent)
		}
	}
}

func TestFinancialsSummaryBreakdownZeroTotal(t *testing.T) {
	rows := (FinancialsSummary{}).Breakdown()
	for i, r := range rows {
		if r.Percent != 0 {
			t.Fatalf("row %d percent = %v, want 0 for zero total", i, r.Percent)
		}
	}
}
