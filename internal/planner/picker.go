package planner

import (
	"github.com/roamhq/roam-backend/internal/domain"
)

// PendingRange is the in-progress two-tap date selection held while
// creating a trip. Empty string means unset. Completed reports when both
// ends are picked. The client keeps this state and plays every tap
// through SelectDay; there is no separate cancel — tapping after a
// completed range starts a fresh selection.
type PendingRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Completed reports whether the selection forms a closed range.
func (p PendingRange) Completed() bool { return p.Start != "" && p.End != "" }

// SelectDay advances a two-tap range selection with one tapped day:
//
//   - no start yet, or range already completed → reset: start = day
//   - start set, tapped day earlier than start → replace: start = day
//   - otherwise → complete: end = day (day == start gives a one-day range)
//
// Malformed day strings fail with domain.ErrValidation and leave the
// selection unchanged.
func SelectDay(pending PendingRange, day string) (PendingRange, error) {
	tapped, err := domain.ParseDay(day)
	if err != nil {
		return pending, err
	}

	if pending.Start == "" || pending.Completed() {
		return PendingRange{Start: day}, nil
	}

	start, err := domain.ParseDay(pending.Start)
	if err != nil {
		return pending, err
	}
	if tapped.Before(start) {
		return PendingRange{Start: day}, nil
	}
	return PendingRange{Start: pending.Start, End: day}, nil
}

// SpanFlags annotates one day of the picker preview. Interior days carry
// neither flag; a one-day range carries both.
type SpanFlags struct {
	Start bool `json:"start"`
	End   bool `json:"end"`
}

// PreviewSpan expands a selection into the picker's visual fill-in, one
// entry per covered day, endpoints flagged. An incomplete selection
// yields just the start day; an empty one yields an empty map.
// A malformed pending state fails with domain.ErrValidation.
func PreviewSpan(pending PendingRange) (map[string]SpanFlags, error) {
	preview := make(map[string]SpanFlags)
	if pending.Start == "" {
		return preview, nil
	}
	if pending.End == "" {
		if _, err := domain.ParseDay(pending.Start); err != nil {
			return nil, err
		}
		preview[pending.Start] = SpanFlags{Start: true}
		return preview, nil
	}

	r, err := domain.ParseDateRange(pending.Start, pending.End)
	if err != nil {
		return nil, err
	}
	for _, day := range r.Days() {
		preview[day] = SpanFlags{Start: day == pending.Start, End: day == pending.End}
	}
	return preview, nil
}
