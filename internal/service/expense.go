package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/planner"
	"github.com/roamhq/roam-backend/internal/repo"
)

// ExpenseService implements business logic for Expense operations.
// It holds the trip repo because logging an expense requires the parent
// trip to exist.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses}
}

// Create parses and validates a new expense, verifies the parent trip
// exists, then persists. The amount arrives as a user-entered major-unit
// string ("12.50") and is stored in minor units.
// Returns domain.ErrInvalidExpense for a blank title or a non-numeric or
// non-positive amount, domain.ErrNotFound if the trip does not exist.
func (s *ExpenseService) Create(ctx context.Context, tripID int64, title, amount, category string) (domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		return domain.Expense{}, fmt.Errorf("%w: title is required", domain.ErrInvalidExpense)
	}
	minor, err := planner.ParseAmount(amount)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("%w: %q is not a valid amount", domain.ErrInvalidExpense, amount)
	}
	if minor == 0 {
		return domain.Expense{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidExpense)
	}
	if strings.TrimSpace(category) == "" {
		category = "other"
	}

	result, err := s.expenses.Create(ctx, domain.Expense{
		TripID:   tripID,
		Title:    title,
		Amount:   minor,
		Category: category,
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns all expenses for a trip, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	expenses, err := s.expenses.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTrip: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// Delete removes an expense by ID, scoped to the given trip.
func (s *ExpenseService) Delete(ctx context.Context, tripID, expenseID int64) error {
	if err := s.expenses.Delete(ctx, tripID, expenseID); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}
