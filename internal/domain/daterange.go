package domain

import (
	"fmt"
	"time"
)

// DayFormat is the wire and storage format for calendar days.
// All date arithmetic in the application is whole-day, timezone-free:
// days are parsed in UTC and iterated with AddDate, never with Durations.
const DayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a midnight-UTC time.
// Returns ErrValidation for anything that does not parse.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// DateRange is an inclusive span of whole calendar days.
// The zero value is not valid; construct via NewDateRange or ParseDateRange,
// which enforce the start ≤ end invariant. A trip with no dates carries a
// nil *DateRange, so "both dates present" never needs re-checking at call
// sites — a non-nil range is always complete and ordered.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange builds a DateRange from two times, normalized to midnight UTC.
// Returns ErrValidation if end is before start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	}
	return DateRange{start: start, end: end}, nil
}

// ParseDateRange builds a DateRange from two YYYY-MM-DD strings.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDay(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDay(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// Start returns the first day of the range as a YYYY-MM-DD string.
func (r DateRange) Start() string { return r.start.Format(DayFormat) }

// End returns the last day of the range as a YYYY-MM-DD string.
func (r DateRange) End() string { return r.end.Format(DayFormat) }

// StartTime returns the first day as a midnight-UTC time.
func (r DateRange) StartTime() time.Time { return r.start }

// EndTime returns the last day as a midnight-UTC time.
func (r DateRange) EndTime() time.Time { return r.end }

// Days returns every calendar day covered by the range, inclusive of both
// endpoints, as YYYY-MM-DD strings in chronological order. A single-day
// range yields exactly one entry.
func (r DateRange) Days() []string {
	var days []string
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
