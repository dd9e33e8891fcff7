package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"finwise/internal/weekly"
)

type weeklyRow struct {
	ID     int64
	Label  string
	Amount string
}

type weeklyPage struct {
	Items []weeklyRow
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderWeekly(w, r)
	case http.MethodPost:
		s.saveWeekly(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderWeekly(w http.ResponseWriter, r *http.Request) {
	items, err := s.weekly.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load weekly variables", "error", err)
		http.Error(w, "failed to load weekly variables", http.StatusInternalServerError)
		return
	}

	page := weeklyPage{}
	for _, v := range items {
		page.Items = append(page.Items, weeklyRow{ID: v.ID, Label: v.Label, Amount: v.Amount})
	}

	if err := s.templates.ExecuteTemplate(w, "weekly.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Weekly template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// saveWeekly applies every submitted amount_<id> field onto a working copy
// of the stored list and persists the whole list in one write.
func (s *Server) saveWeekly(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	items, err := s.weekly.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load weekly variables", "error", err)
		http.Error(w, "failed to load weekly variables", http.StatusInternalServerError)
		return
	}

	for _, v := range items {
		field := fmt.Sprintf("amount_%d", v.ID)
		if !r.Form.Has(field) {
			continue
		}
		items = weekly.UpdateAmount(items, v.ID, sanitizeInput(r.FormValue(field)))
	}

	if err := s.weekly.PersistAll(r.Context(), items); err != nil {
		slog.ErrorContext(r.Context(), "Failed to save weekly variables", "error", err)
		http.Error(w, "failed to save weekly variables", http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, `<div class="success">Weekly budget updated successfully!</div>`)
}
