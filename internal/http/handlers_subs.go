package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"finwise/internal/core"
)

type subscriptionRow struct {
	ID       int64
	Name     string
	Cost     string
	Date     string
	Reminder bool
}

type subscriptionsPage struct {
	Subscriptions []subscriptionRow
	Total         string
}

func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page := subscriptionsPageFrom(s.subs.List(), s.subs.SumAll())
	if err := s.templates.ExecuteTemplate(w, "subscriptions.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Subscriptions template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleToggleReminder flips the reminder flag and returns the re-rendered
// list fragment so the page updates in place.
func (s *Server) handleToggleReminder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid subscription id", http.StatusBadRequest)
		return
	}

	updated := s.subs.ToggleReminder(id)
	slog.InfoContext(r.Context(), "Subscription reminder toggled", "subscription_id", id)

	page := subscriptionsPageFrom(updated, s.subs.SumAll())
	if err := s.templates.ExecuteTemplate(w, "subs_list", page); err != nil {
		slog.ErrorContext(r.Context(), "Subscription list fragment failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func subscriptionsPageFrom(items []core.Subscription, total core.Money) subscriptionsPage {
	page := subscriptionsPage{Total: formatEuros(total.Cents)}
	for _, sub := range items {
		page.Subscriptions = append(page.Subscriptions, subscriptionRow{
			ID:       sub.ID,
			Name:     sub.Name,
			Cost:     formatEuros(sub.Cost.Cents),
			Date:     sub.Date,
			Reminder: sub.Reminder,
		})
	}
	return page
}
