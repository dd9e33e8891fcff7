package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"finwise/internal/budgets"
	"finwise/internal/core"
	"finwise/internal/finance"
	"finwise/internal/ledger"
	"finwise/internal/store"
	"finwise/internal/subs"
	"finwise/internal/weekly"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestServer(t *testing.T) *Server {
	t.Helper()

	mem := store.NewMemory()
	clock := fixedClock{t: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}

	l := ledger.New(mem, clock, nil)
	b := budgets.New(mem, clock, nil)
	r := subs.NewRegistry(subs.Seed())
	w := weekly.New(mem)
	c := finance.NewCalculator(l,
		core.Money{Cents: finance.DefaultFixedCents},
		core.Money{Cents: finance.DefaultSubsCents})

	srv := NewServer(":0", l, b, r, w, c)
	t.Cleanup(func() { srv.rateLimiter.stop() })
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	srv.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestMenuScreen(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, link := range []string{"/expenses", "/weekly", "/budgets", "/subscriptions", "/dashboard", "/overview", "/contact"} {
		if !strings.Contains(body, link) {
			t.Errorf("menu missing link to %s", link)
		}
	}
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := doRequest(t, srv, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestCreateExpense(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/expenses", url.Values{
		"name":     {"Coffee"},
		"amount":   {"3,50"},
		"category": {"Food"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Coffee") {
		t.Errorf("success fragment missing expense name: %s", rec.Body.String())
	}

	list := doRequest(t, srv, http.MethodGet, "/expenses", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", list.Code)
	}
	body := list.Body.String()
	if !strings.Contains(body, "Coffee") || !strings.Contains(body, "15/01/2026") {
		t.Errorf("expense list missing new entry: %s", body)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"empty name", url.Values{"name": {""}, "amount": {"10.00"}, "category": {"Food"}}},
		{"zero amount", url.Values{"name": {"Coffee"}, "amount": {"0"}, "category": {"Food"}}},
		{"bad amount", url.Values{"name": {"Coffee"}, "amount": {"abc"}, "category": {"Food"}}},
		{"missing category", url.Values{"name": {"Coffee"}, "amount": {"10.00"}, "category": {""}}},
		{"unknown category", url.Values{"name": {"Coffee"}, "amount": {"10.00"}, "category": {"Crypto"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, srv, http.MethodPost, "/expenses", tt.form)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `class="error"`) {
				t.Errorf("expected error fragment, got: %s", rec.Body.String())
			}
		})
	}
}

func TestReflectedInputIsEscaped(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/expenses", url.Values{
		"name":     {`<img src=x onerror=alert(1)>`},
		"amount":   {"1.00"},
		"category": {"Food"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if strings.Contains(body, "<img") {
		t.Errorf("expense name reflected unescaped: %s", body)
	}
	if !strings.Contains(body, "&lt;img") {
		t.Errorf("expected escaped expense name in: %s", body)
	}

	rec = doRequest(t, srv, http.MethodPost, "/budgets", url.Values{
		"category": {`<script>evil()</script>`},
		"limit":    {"100.00"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body = rec.Body.String()
	if strings.Contains(body, "<script>") {
		t.Errorf("budget category reflected unescaped: %s", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("expected escaped budget category in: %s", body)
	}
}

func TestExpensesMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPut, "/expenses", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestDashboardReflectsNewExpense(t *testing.T) {
	srv := newTestServer(t)

	before := doRequest(t, srv, http.MethodGet, "/dashboard", nil)
	if before.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", before.Code)
	}
	if !strings.Contains(before.Body.String(), "€1267.98") {
		t.Errorf("expected baseline total €1267.98 in: %s", before.Body.String())
	}

	rec := doRequest(t, srv, http.MethodPost, "/expenses", url.Values{
		"name":     {"Groceries"},
		"amount":   {"530.00"},
		"category": {"Food"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	after := doRequest(t, srv, http.MethodGet, "/dashboard", nil)
	if !strings.Contains(after.Body.String(), "€1797.98") {
		t.Errorf("expected updated total €1797.98 in: %s", after.Body.String())
	}
	if cc := after.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("expected no-store cache header, got %q", cc)
	}
}

func TestWeeklySaveAndReload(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/weekly", url.Values{
		"amount_1": {"175.50"},
		"amount_2": {"50.00"},
		"amount_3": {"100.00"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	list := doRequest(t, srv, http.MethodGet, "/weekly", nil)
	if !strings.Contains(list.Body.String(), "175.50") {
		t.Errorf("expected saved amount in weekly screen: %s", list.Body.String())
	}
}

func TestCreateBudgetGoal(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/budgets", url.Values{
		"category": {"Groceries"},
		"limit":    {"400.00"},
		"spent":    {"120.00"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	list := doRequest(t, srv, http.MethodGet, "/budgets", nil)
	if !strings.Contains(list.Body.String(), "Groceries") {
		t.Errorf("expected new goal in budgets screen: %s", list.Body.String())
	}
}

func TestCreateBudgetGoalInvalidLimit(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/budgets", url.Values{
		"category": {"Groceries"},
		"limit":    {"abc"},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestToggleSubscriptionReminder(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/subscriptions/toggle", url.Values{"id": {"2"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Spotify") {
		t.Errorf("expected list fragment with subscriptions: %s", rec.Body.String())
	}

	// Spotify starts with reminder off, one toggle turns it on.
	for _, sub := range srv.subs.List() {
		if sub.ID == 2 && !sub.Reminder {
			t.Errorf("expected reminder on after toggle")
		}
	}
}

func TestToggleSubscriptionBadID(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/subscriptions/toggle", url.Values{"id": {"abc"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOverviewShowsLedgerTotal(t *testing.T) {
	srv := newTestServer(t)

	doRequest(t, srv, http.MethodPost, "/expenses", url.Values{
		"name":     {"Rent share"},
		"amount":   {"250.00"},
		"category": {"Shop"},
	})

	rec := doRequest(t, srv, http.MethodGet, "/overview", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "€250.00") {
		t.Errorf("expected year total in overview: %s", rec.Body.String())
	}
}

func TestContactFormAcknowledged(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `class="success"`) {
		t.Errorf("expected confirmation fragment: %s", rec.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/", nil)
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("expected X-Frame-Options DENY, got %q", got)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < 60; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Errorf("expected request 61 to be limited")
	}
	if !rl.allow("10.0.0.2") {
		t.Errorf("expected a different client to be unaffected")
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"line\x00break", "linebreak"},
		{"keep\ttabs", "keep\ttabs"},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.in); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
