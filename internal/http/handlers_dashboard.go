package http

import (
	"fmt"
	"log/slog"
	"net/http"
)

type breakdownRow struct {
	Name    string
	Amount  string
	Percent int
}

type dashboardPage struct {
	Fixed     string
	Variable  string
	Subs      string
	Total     string
	Breakdown []breakdownRow
}

// handleDashboard recomputes the financial summary on every request.
// Nothing here is cached: a new expense shows up on the next render.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.calculator.ComputeFinancials(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to compute financials", "error", err)
		http.Error(w, "failed to compute financials", http.StatusInternalServerError)
		return
	}

	page := dashboardPage{
		Fixed:    formatEuros(summary.Fixed.Cents),
		Variable: formatEuros(summary.Variable.Cents),
		Subs:     formatEuros(summary.Subs.Cents),
		Total:    formatEuros(summary.Total().Cents),
	}
	for _, row := range summary.Breakdown() {
		page.Breakdown = append(page.Breakdown, breakdownRow{
			Name:    row.Name,
			Amount:  formatEuros(row.Amount.Cents),
			Percent: int(row.Percent),
		})
	}

	w.Header().Set("Cache-Control", "no-store")
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type trendBar struct {
	Month  string
	Height int
}

type overviewCategory struct {
	Name   string
	Amount string
}

type overviewPage struct {
	YearTotal  string
	Trend      []trendBar
	Categories []overviewCategory
}

// Placeholder figures for the trend chart and category sampler. Only the
// year total is live data.
var (
	trendHeights = []int{40, 65, 30, 85, 50, 70}
	trendMonths  = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

	sampleCategories = []overviewCategory{
		{Name: "Food", Amount: "€450.00"},
		{Name: "Transport", Amount: "€120.00"},
		{Name: "Bills", Amount: "€300.00"},
		{Name: "Other", Amount: "€80.00"},
	}
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	total, err := s.ledger.SumAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to total expenses", "error", err)
		http.Error(w, "failed to total expenses", http.StatusInternalServerError)
		return
	}

	page := overviewPage{
		YearTotal:  formatEuros(total.Cents),
		Categories: sampleCategories,
	}
	for i, h := range trendHeights {
		page.Trend = append(page.Trend, trendBar{Month: trendMonths[i], Height: h})
	}

	if err := s.templates.ExecuteTemplate(w, "overview.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Overview template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if err := s.templates.ExecuteTemplate(w, "contact.html", nil); err != nil {
			slog.ErrorContext(r.Context(), "Contact template execution failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		// The form is acknowledged but the message is not delivered anywhere.
		slog.InfoContext(r.Context(), "Contact form submitted", "name", sanitizeInput(r.FormValue("name")))
		fmt.Fprint(w, `<div class="success">Thanks for reaching out! We'll get back to you soon.</div>`)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
