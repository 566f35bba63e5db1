package domain

import "time"

// Expense is a single cost logged against a trip.
// Amount is in minor currency units (cents) and is never negative.
// Expenses are immutable once created — they are only inserted and deleted.
type Expense struct {
	ID        int64
	TripID    int64
	Title     string
	Amount    int64
	Category  string
	CreatedAt time.Time
}

// ExpenseCategories is the suggested category set shown by clients.
// It is advisory only — the stored category is free-form.
var ExpenseCategories = []string{"food", "transport", "stay", "activity", "other"}
