package http

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"finwise/internal/core"
)

type budgetRow struct {
	ID       int64
	Category string
	Limit    string
	Spent    string
	Percent  int
	IsOver   bool
}

type budgetsPage struct {
	Categories []core.Category
	Goals      []budgetRow
}

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderBudgets(w, r)
	case http.MethodPost:
		s.createBudget(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderBudgets(w http.ResponseWriter, r *http.Request) {
	goals, err := s.budgets.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budget goals", "error", err)
		http.Error(w, "failed to load budget goals", http.StatusInternalServerError)
		return
	}

	page := budgetsPage{Categories: core.Categories()}
	for _, g := range goals {
		p := g.Progress()
		page.Goals = append(page.Goals, budgetRow{
			ID:       g.ID,
			Category: string(g.Category),
			Limit:    formatEuros(g.Limit.Cents),
			Spent:    formatEuros(g.Spent.Cents),
			Percent:  int(p.Percent),
			IsOver:   p.IsOver,
		})
	}

	if err := s.templates.ExecuteTemplate(w, "budgets.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Budgets template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) createBudget(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	category := sanitizeInput(r.FormValue("category"))
	limit := sanitizeInput(r.FormValue("limit"))
	spent := sanitizeInput(r.FormValue("spent"))

	goal, err := s.budgets.Create(r.Context(), category, limit, spent)
	if err != nil {
		slog.WarnContext(r.Context(), "Budget goal rejected", "error", err, "category", category)
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprintf(w, `<div class="error">%s</div>`, userMessage(err))
		return
	}

	fmt.Fprintf(w, `<div class="success">Budget goal for %s set at %s</div>`,
		template.HTMLEscapeString(goal.Category), formatEuros(goal.Limit.Cents))
}
