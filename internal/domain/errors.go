package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the referenced
// trip, destination, activity, or message does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. blank name, end date before start date, non-positive day index).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
