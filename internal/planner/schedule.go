package planner

import (
	"github.com/roamhq/roam-backend/internal/domain"
)

// Mark annotates one calendar day with the trip that owns it.
// The calendar shows exactly one owning trip per day.
type Mark struct {
	TripID     int64         `json:"trip_id"`
	Status     domain.Status `json:"status"`
	Color      string        `json:"color"`
	RangeStart bool          `json:"range_start"`
	RangeEnd   bool          `json:"range_end"`
}

// Status display colors, matching the app palette:
// red while an idea, amber while planning, green once confirmed.
const (
	colorIdeated   = "#EF4444"
	colorPlanned   = "#F59E0B"
	colorConfirmed = "#10B981"
)

// StatusColor returns the display color for a trip status.
func StatusColor(s domain.Status) string {
	switch s {
	case domain.StatusPlanned:
		return colorPlanned
	case domain.StatusConfirmed:
		return colorConfirmed
	}
	return colorIdeated
}

// Combine resolves two marks competing for the same calendar day.
type Combine func(existing, incoming Mark) Mark

// LastWins keeps the mark from the trip iterated later. With trips
// supplied oldest-first, the most recently created trip owns every
// overlapped day. No blending, no status priority.
func LastWins(_, incoming Mark) Mark { return incoming }

// ExpandSchedule expands every dated trip into one mark per covered
// calendar day and merges them with the LastWins policy. Trips without
// a date range are skipped. Callers should pass trips in a stable,
// meaningful order (most recently created last) since that order decides
// which trip wins on overlap.
func ExpandSchedule(trips []domain.Trip) map[string]Mark {
	return ExpandScheduleWith(trips, LastWins)
}

// ExpandScheduleWith is ExpandSchedule with an explicit overlap policy.
// It is a pure fold: starting from an empty map, each trip's days are
// folded in via combine. The map key is the YYYY-MM-DD day string.
func ExpandScheduleWith(trips []domain.Trip, combine Combine) map[string]Mark {
	marks := make(map[string]Mark)
	for _, trip := range trips {
		if trip.Dates == nil {
			continue
		}
		start, end := trip.Dates.Start(), trip.Dates.End()
		for _, day := range trip.Dates.Days() {
			m := Mark{
				TripID:     trip.ID,
				Status:     trip.Status,
				Color:      StatusColor(trip.Status),
				RangeStart: day == start,
				RangeEnd:   day == end,
			}
			if existing, ok := marks[day]; ok {
				m = combine(existing, m)
			}
			marks[day] = m
		}
	}
	return marks
}

// LookupTripForDay returns the trip owning the given day's mark.
// ok is false when the day has no mark.
func LookupTripForDay(marks map[string]Mark, day string) (tripID int64, ok bool) {
	m, ok := marks[day]
	if !ok {
		return 0, false
	}
	return m.TripID, true
}
