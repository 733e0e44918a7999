package domain

import "time"

// CalendarDay is the derived, per-date projection of a trip: which
// destination is active on the date and what is scheduled. One record exists
// per calendar date in the trip's inclusive span; it is recomputed on demand
// and never stored.
type CalendarDay struct {
	// Date is midnight UTC of the calendar date.
	Date time.Time

	// DestinationName is empty when no destination covers this date
	// (the trip's destination durations ran out before the span did).
	DestinationName string

	// IsArrivalDay is true only on the first date attributed to a destination.
	IsArrivalDay bool

	// Activities scheduled for this date. Never nil.
	Activities []Activity
}

// Assigned reports whether any destination covers this date.
func (d CalendarDay) Assigned() bool {
	return d.DestinationName != ""
}
