package service

import (
	"context"
	"fmt"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/planner"
	"github.com/roamhq/roam-backend/internal/repo"
)

// CalendarService derives the calendar view from the trip list and drives
// the two-tap date picker. It holds no state of its own — every call reads
// the current trips and recomputes from scratch.
type CalendarService struct {
	trips repo.TripRepo
}

// NewCalendarService constructs a CalendarService backed by the provided TripRepo.
func NewCalendarService(trips repo.TripRepo) *CalendarService {
	return &CalendarService{trips: trips}
}

// Schedule expands every dated trip into per-day calendar marks.
// Trips are read oldest-first, so the most recently created trip owns any
// overlapped day.
func (s *CalendarService) Schedule(ctx context.Context) (map[string]planner.Mark, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CalendarService.Schedule: %w", err)
	}
	return planner.ExpandSchedule(trips), nil
}

// TripForDay returns the ID of the trip whose span covers the given day.
// Returns domain.ErrValidation for a malformed day and domain.ErrNotFound
// when no trip covers it.
func (s *CalendarService) TripForDay(ctx context.Context, day string) (int64, error) {
	if _, err := domain.ParseDay(day); err != nil {
		return 0, err
	}
	marks, err := s.Schedule(ctx)
	if err != nil {
		return 0, err
	}
	id, ok := planner.LookupTripForDay(marks, day)
	if !ok {
		return 0, fmt.Errorf("service.CalendarService.TripForDay: no trip on %s: %w", day, domain.ErrNotFound)
	}
	return id, nil
}

// SelectDay advances a client-held two-tap selection with one tapped day
// and returns the new selection plus its visual preview.
func (s *CalendarService) SelectDay(pending planner.PendingRange, day string) (planner.PendingRange, map[string]planner.SpanFlags, error) {
	next, err := planner.SelectDay(pending, day)
	if err != nil {
		return pending, nil, err
	}
	preview, err := planner.PreviewSpan(next)
	if err != nil {
		return pending, nil, err
	}
	return next, preview, nil
}
