package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryLeisure   Category = "Leisure"
	CategoryShop      Category = "Shop"
)

// DateFormat is the layout used to stamp new expense entries.
const DateFormat = "02/01/2006"

type (
	// Category is the fixed set of flexible-expense categories.
	Category string

	Money struct {
		Cents int64 `json:"cents"`
	}

	// ExpenseEntry is one flexible expense. Entries are immutable once
	// appended to the ledger and are never deleted.
	ExpenseEntry struct {
		ID       int64    `json:"id"`
		Name     string   `json:"name"`
		Amount   Money    `json:"amount"`
		Category Category `json:"category"`
		Date     string   `json:"date"`
	}

	// BudgetGoal is a named spending limit with a manually tracked
	// spent counter. Spent exceeding Limit is a valid, flagged state.
	BudgetGoal struct {
		ID       int64  `json:"id"`
		Category string `json:"category"`
		Limit    Money  `json:"limit"`
		Spent    Money  `json:"spent"`
	}

	// Subscription is a recurring fixed cost. Only Reminder is mutable.
	Subscription struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Cost     Money  `json:"cost"`
		Date     string `json:"date"` // day-of-month label, free text
		Reminder bool   `json:"reminder"`
	}

	// WeeklyVariable is one editable weekly budget amount. The amount is
	// stored exactly as entered, including malformed numeric text.
	WeeklyVariable struct {
		ID     int64  `json:"id"`
		Label  string `json:"label"`
		Amount string `json:"amount"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyName       = errors.New("empty name")
	ErrEmptyCategory   = errors.New("empty category")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidLimit    = errors.New("invalid limit")
)

// Clock supplies the current time for id generation and date stamping.
// Injecting it keeps ids and dates deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock used outside of tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Categories returns the selectable expense categories in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryTransport, CategoryLeisure, CategoryShop}
}

func (c Category) Validate() error {
	switch c {
	case CategoryFood, CategoryTransport, CategoryLeisure, CategoryShop:
		return nil
	default:
		return ErrInvalidCategory
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e ExpenseEntry) Validate() error {
	if len(strings.TrimSpace(e.Name)) == 0 {
		return ErrEmptyName
	}
	if len(e.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return e.Category.Validate()
}

func (g BudgetGoal) Validate() error {
	if len(strings.TrimSpace(g.Category)) == 0 {
		return ErrEmptyCategory
	}
	if len(g.Category) > 200 {
		return errors.New("category too long (max 200 characters)")
	}
	if g.Limit.Cents <= 0 {
		return ErrInvalidLimit
	}
	if g.Spent.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}
