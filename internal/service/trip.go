// Package service contains the business logic for the Roam API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// planner calls. No SQL lives here — services depend on repo interfaces, not
// implementations, and all derived state comes from the pure planner package.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/planner"
	"github.com/roamhq/roam-backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds the expense repo as well because the budget summary is derived
// from a trip's expense list.
type TripService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, expenses repo.ExpenseRepo) *TripService {
	return &TripService{trips: trips, expenses: expenses}
}

// Create validates and persists a new trip. New trips always start as
// ideated regardless of what the caller set.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	trip.Status = domain.StatusIdeated
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *TripService) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips in creation order (most recently created last).
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and persists changes to a trip's descriptive fields.
// Status and budget are not updatable here — see AdvanceStatus and SetBudget.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID. Expenses, documents, and photos attached to
// the trip are removed with it (the store cascades).
func (s *TripService) Delete(ctx context.Context, id int64) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AdvanceStatus moves a trip one step along the lifecycle, but only when
// requested is exactly the next legal stage for its current status.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrInvalidTransition for any out-of-order request, including
// repeating an advance that already succeeded.
func (s *TripService) AdvanceStatus(ctx context.Context, id int64, requested domain.Status) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AdvanceStatus: %w", err)
	}
	if err := planner.Advance(trip.Status, requested); err != nil {
		return domain.Trip{}, err
	}
	if err := s.trips.UpdateStatus(ctx, id, requested); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AdvanceStatus: %w", err)
	}
	trip.Status = requested
	return trip, nil
}

// SetBudget parses a user-entered major-unit amount ("42.50") and stores it
// as minor units. On a parse failure the stored budget is left unchanged and
// domain.ErrInvalidAmount is returned.
func (s *TripService) SetBudget(ctx context.Context, id int64, amount string) (int64, error) {
	minor, err := planner.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if err := s.trips.UpdateBudget(ctx, id, minor); err != nil {
		return 0, fmt.Errorf("service.TripService.SetBudget: %w", err)
	}
	return minor, nil
}

// Summary computes the budget summary for one trip from its expense list.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Summary(ctx context.Context, id int64) (planner.Summary, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return planner.Summary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	expenses, err := s.expenses.ListByTripID(ctx, id)
	if err != nil {
		return planner.Summary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	return planner.Summarize(trip.Budget, expenses), nil
}

// validateTrip enforces business rules common to Create and Update.
//   - Title and destination must be non-empty (whitespace-only rejected).
//
// Date ordering is already guaranteed by the DateRange constructor, so a
// non-nil Dates needs no further checks here.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	return nil
}
