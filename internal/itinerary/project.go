package itinerary

import (
	"fmt"

	"github.com/globetrotter/backend/internal/domain"
)

// ProjectDays maps a trip onto its calendar: one CalendarDay per date from
// StartDate to EndDate inclusive, computed on date-only values.
//
// Destinations consume dates in order, each taking DurationDays consecutive
// dates; the first date a destination receives is its arrival day. Activities
// for a destination's i-th day come from its day bucket at key i. When the
// destinations' cumulative duration falls short of the span, the trailing
// dates are unassigned; when it exceeds the span, the trailing destinations
// are never reached. Neither case is an error.
//
// Returns domain.ErrValidation when EndDate is before StartDate — a trip in
// that state should have been rejected at its construction boundary.
func ProjectDays(trip domain.Trip) ([]domain.CalendarDay, error) {
	start := domain.DateOnly(trip.StartDate)
	end := domain.DateOnly(trip.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s",
			domain.ErrValidation, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	span := trip.Span()
	days := make([]domain.CalendarDay, 0, span)

	destIdx := 0
	dayWithin := 0 // 1-based day index inside the current destination

	for i := 0; i < span; i++ {
		day := domain.CalendarDay{
			Date:       start.AddDate(0, 0, i),
			Activities: []domain.Activity{},
		}

		if destIdx < len(trip.Destinations) {
			dest := trip.Destinations[destIdx]
			dayWithin++

			day.DestinationName = dest.Name
			day.IsArrivalDay = dayWithin == 1
			day.Activities = dest.DayActivities(dayWithin)

			if dayWithin >= dest.DurationDays {
				destIdx++
				dayWithin = 0
			}
		}

		days = append(days, day)
	}

	return days, nil
}
