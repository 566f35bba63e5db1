package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition is returned when a status advance is requested out of
// order — the requested status is not the single legal next step from the
// trip's current status. Handlers should map this to HTTP 409 Conflict.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidAmount is returned when a user-entered monetary amount is not a
// number or is negative. The stored value is left unchanged on failure.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidExpense is returned when an expense fails validation: blank
// title, or a non-numeric or non-positive amount.
var ErrInvalidExpense = errors.New("invalid expense")

// ErrMissingDateRange is returned when a date-range-based operation is
// attempted on a trip that has no dates set.
var ErrMissingDateRange = errors.New("trip has no date range")
