package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDurationDays is the duration assigned to a newly added destination.
const DefaultDurationDays = 2

// MinDurationDays is the floor for a destination's duration. Decrementing a
// destination already at the floor is a no-op, never an error.
const MinDurationDays = 1

// Destination is a place visited for a contiguous block of days within a
// trip. Its Position in the trip's destination sequence determines which
// calendar days it covers via cumulative duration.
type Destination struct {
	ID           uuid.UUID
	TripID       uuid.UUID
	Name         string
	DurationDays int // always >= MinDurationDays
	Position     int // 1-based order within the trip

	// Activities is keyed by the 1-based day index within this destination.
	// A day's bucket is created on first write and preserves insertion order.
	Activities map[int][]Activity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayActivities returns the activities scheduled for the given 1-based day
// index. Returns an empty slice (never nil) for days with no activities,
// so callers can range without a nil check.
func (d Destination) DayActivities(day int) []Activity {
	if acts, ok := d.Activities[day]; ok {
		return acts
	}
	return []Activity{}
}
