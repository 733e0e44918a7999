package itinerary

import (
	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
)

// Store holds a single trip aggregate and applies the editor operations to
// it. Because every mutation replaces the changed nested structures instead
// of editing them in place, a Snapshot taken before a mutation remains valid
// afterwards.
//
// Store is deliberately not thread-safe: the trip document is owned by one
// session. Hosts that share a Store across goroutines (e.g. the memory
// backend serving HTTP requests) must wrap it with their own lock.
type Store struct {
	trip domain.Trip
}

// NewStore creates a Store owning the given trip value.
func NewStore(trip domain.Trip) *Store {
	if trip.Destinations == nil {
		trip.Destinations = []domain.Destination{}
	}
	return &Store{trip: trip}
}

// Snapshot returns the current trip value. The caller may hold it across
// subsequent mutations without seeing them.
func (s *Store) Snapshot() domain.Trip {
	return s.trip
}

// Replace swaps the stored trip for a new value wholesale.
func (s *Store) Replace(trip domain.Trip) {
	s.trip = trip
}

// AddDestination appends a destination with default duration; see the
// package-level AddDestination for the contract.
func (s *Store) AddDestination(name string) (domain.Destination, error) {
	trip, dest, err := AddDestination(s.trip, name)
	if err != nil {
		return domain.Destination{}, err
	}
	s.trip = trip
	return dest, nil
}

// ChangeDuration adjusts a destination's duration with a floor of 1.
func (s *Store) ChangeDuration(destID uuid.UUID, delta int) (domain.Destination, error) {
	trip, dest, err := ChangeDuration(s.trip, destID, delta)
	if err != nil {
		return domain.Destination{}, err
	}
	s.trip = trip
	return dest, nil
}

// AddActivity schedules an activity on a destination's day.
func (s *Store) AddActivity(destID uuid.UUID, day int, act domain.Activity) (domain.Activity, error) {
	trip, created, err := AddActivity(s.trip, destID, day, act)
	if err != nil {
		return domain.Activity{}, err
	}
	s.trip = trip
	return created, nil
}

// RemoveActivity deletes an activity by ID from a destination.
func (s *Store) RemoveActivity(destID, activityID uuid.UUID) error {
	trip, err := RemoveActivity(s.trip, destID, activityID)
	if err != nil {
		return err
	}
	s.trip = trip
	return nil
}

// RemoveDestination deletes a destination and all its activities.
func (s *Store) RemoveDestination(destID uuid.UUID) error {
	trip, err := RemoveDestination(s.trip, destID)
	if err != nil {
		return err
	}
	s.trip = trip
	return nil
}

// Days projects the stored trip onto its calendar span.
func (s *Store) Days() ([]domain.CalendarDay, error) {
	return ProjectDays(s.trip)
}

// Budget aggregates the stored trip's activity costs.
func (s *Store) Budget() domain.BudgetSummary {
	return Aggregate(s.trip)
}
