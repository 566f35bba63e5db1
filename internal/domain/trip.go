// Package domain contains the core data types for the Roam travel planner.
// This package has no dependencies outside the standard library and is
// imported by every other internal package (planner, repo, service, handler).
package domain

import "time"

// Trip is the top-level aggregate: a single planned or imagined journey.
// Expenses, documents, and photos belong to a trip and are removed with it.
type Trip struct {
	ID          int64
	Title       string
	Destination string
	Status      Status

	// Dates is nil while the trip has no dates picked yet. When non-nil it
	// is a complete, ordered range — see DateRange.
	Dates *DateRange

	// Budget is the trip budget in minor currency units (cents).
	// Zero means no budget has been set.
	Budget int64

	Notes      string
	CoverImage string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
