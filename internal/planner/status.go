// Package planner contains the pure trip-planning engine: the status
// lifecycle pipeline, the budget aggregator, and the schedule expander.
// Every function here is a pure function over its arguments — no clock,
// no store, no shared state — so the whole package is safe to call
// concurrently and trivial to test.
package planner

import (
	"fmt"

	"github.com/roamhq/roam-backend/internal/domain"
)

// NextStatus returns the single legal next lifecycle stage for s.
// ok is false when s is terminal (confirmed) or unknown.
func NextStatus(s domain.Status) (next domain.Status, ok bool) {
	switch s {
	case domain.StatusIdeated:
		return domain.StatusPlanned, true
	case domain.StatusPlanned:
		return domain.StatusConfirmed, true
	}
	return "", false
}

// Advance checks that requested is the legal next stage after current.
// It returns domain.ErrInvalidTransition for anything else: skipping a
// stage, moving backward, re-applying an advance that already happened,
// or advancing a confirmed trip. Callers apply the status change only
// when Advance returns nil.
func Advance(current, requested domain.Status) error {
	next, ok := NextStatus(current)
	if !ok {
		return fmt.Errorf("%w: %q is final", domain.ErrInvalidTransition, current)
	}
	if requested != next {
		return fmt.Errorf("%w: %q → %q (next legal stage is %q)", domain.ErrInvalidTransition, current, requested, next)
	}
	return nil
}
