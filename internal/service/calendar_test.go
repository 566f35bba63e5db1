package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/planner"
	"github.com/roamhq/roam-backend/internal/service"
)

func calendarWith(t *testing.T, trips ...domain.Trip) *service.CalendarService {
	t.Helper()
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return trips, nil },
	}
	return service.NewCalendarService(r)
}

func rangedTrip(t *testing.T, id int64, status domain.Status, start, end string) domain.Trip {
	t.Helper()
	r, err := domain.ParseDateRange(start, end)
	require.NoError(t, err)
	return domain.Trip{ID: id, Title: "T", Destination: "D", Status: status, Dates: &r}
}

func TestCalendarService_Schedule(t *testing.T) {
	svc := calendarWith(t,
		rangedTrip(t, 1, domain.StatusPlanned, "2024-06-01", "2024-06-03"),
		domain.Trip{ID: 2, Title: "Someday", Destination: "Lisbon"}, // undated, skipped
	)

	marks, err := svc.Schedule(context.Background())

	require.NoError(t, err)
	require.Len(t, marks, 3)
	assert.EqualValues(t, 1, marks["2024-06-02"].TripID)
}

func TestCalendarService_Schedule_MostRecentTripWinsOverlap(t *testing.T) {
	// The repo lists trips oldest first, so the newer trip (listed last)
	// owns the shared day.
	svc := calendarWith(t,
		rangedTrip(t, 1, domain.StatusIdeated, "2024-06-01", "2024-06-02"),
		rangedTrip(t, 2, domain.StatusConfirmed, "2024-06-02", "2024-06-03"),
	)

	marks, err := svc.Schedule(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 2, marks["2024-06-02"].TripID)
}

func TestCalendarService_TripForDay(t *testing.T) {
	svc := calendarWith(t, rangedTrip(t, 9, domain.StatusPlanned, "2024-06-01", "2024-06-03"))

	id, err := svc.TripForDay(context.Background(), "2024-06-02")

	require.NoError(t, err)
	assert.EqualValues(t, 9, id)
}

func TestCalendarService_TripForDay_NoMark(t *testing.T) {
	svc := calendarWith(t, rangedTrip(t, 9, domain.StatusPlanned, "2024-06-01", "2024-06-03"))

	_, err := svc.TripForDay(context.Background(), "2024-07-01")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalendarService_TripForDay_MalformedDay(t *testing.T) {
	svc := calendarWith(t)

	_, err := svc.TripForDay(context.Background(), "yesterday")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarService_SelectDay_ReturnsPreview(t *testing.T) {
	svc := calendarWith(t)

	next, preview, err := svc.SelectDay(planner.PendingRange{Start: "2024-06-05"}, "2024-06-07")

	require.NoError(t, err)
	assert.Equal(t, planner.PendingRange{Start: "2024-06-05", End: "2024-06-07"}, next)
	require.Len(t, preview, 3)
	assert.True(t, preview["2024-06-05"].Start)
	assert.True(t, preview["2024-06-07"].End)
}

func TestCalendarService_SelectDay_InvalidDayKeepsPending(t *testing.T) {
	svc := calendarWith(t)
	pending := planner.PendingRange{Start: "2024-06-05"}

	got, _, err := svc.SelectDay(pending, "not-a-day")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, pending, got)
}
