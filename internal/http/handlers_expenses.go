package http

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"finwise/internal/core"
)

type expenseRow struct {
	Name     string
	Amount   string
	Category string
	Date     string
}

type expensesPage struct {
	Categories []core.Category
	Expenses   []expenseRow
	Total      string
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderExpenses(w, r)
	case http.MethodPost:
		s.createExpense(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderExpenses(w http.ResponseWriter, r *http.Request) {
	entries, err := s.ledger.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load expenses", "error", err)
		http.Error(w, "failed to load expenses", http.StatusInternalServerError)
		return
	}
	total, err := s.ledger.SumAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to total expenses", "error", err)
		http.Error(w, "failed to total expenses", http.StatusInternalServerError)
		return
	}

	page := expensesPage{
		Categories: core.Categories(),
		Total:      formatEuros(total.Cents),
	}
	for _, e := range entries {
		page.Expenses = append(page.Expenses, expenseRow{
			Name:     e.Name,
			Amount:   formatEuros(e.Amount.Cents),
			Category: string(e.Category),
			Date:     e.Date,
		})
	}

	if err := s.templates.ExecuteTemplate(w, "expenses.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Expenses template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	name := sanitizeInput(r.FormValue("name"))
	amount := sanitizeInput(r.FormValue("amount"))
	category := core.Category(sanitizeInput(r.FormValue("category")))

	entry, err := s.ledger.Append(r.Context(), name, amount, category)
	if err != nil {
		slog.WarnContext(r.Context(), "Expense rejected", "error", err, "name", name)
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprintf(w, `<div class="error">%s</div>`, userMessage(err))
		return
	}

	fmt.Fprintf(w, `<div class="success">Added %s (%s)</div>`,
		template.HTMLEscapeString(entry.Name), formatEuros(entry.Amount.Cents))
}

// userMessage maps validation errors onto the messages shown in the form.
func userMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please enter a valid name and amount!"
	case errors.Is(err, core.ErrEmptyName):
		return "Please enter a valid name and amount!"
	case errors.Is(err, core.ErrEmptyCategory), errors.Is(err, core.ErrInvalidCategory):
		return "Please choose a category!"
	case errors.Is(err, core.ErrInvalidLimit):
		return "Please enter a valid limit!"
	default:
		return "Something went wrong. Please try again."
	}
}
