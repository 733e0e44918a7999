// Package itinerary is the pure core of the GlobeTrotter backend: the
// itinerary editor, the day projector, and the budget aggregator.
//
// Every function in this package is synchronous, performs no I/O, and treats
// domain.Trip values as immutable: mutations return a new Trip whose changed
// nested slices and maps are freshly allocated, so a snapshot taken before a
// mutation is never corrupted by it. Nothing here is safe for concurrent use;
// hosts that share a trip across goroutines must add their own locking.
package itinerary

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
)

// AddDestination appends a new destination with the default duration and no
// activities, and returns the updated trip plus the created destination.
// Returns domain.ErrValidation if name is blank.
func AddDestination(trip domain.Trip, name string) (domain.Trip, domain.Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Trip{}, domain.Destination{}, fmt.Errorf("%w: destination name is required", domain.ErrValidation)
	}

	dest := domain.Destination{
		ID:           uuid.New(),
		TripID:       trip.ID,
		Name:         name,
		DurationDays: domain.DefaultDurationDays,
		Position:     len(trip.Destinations) + 1,
		Activities:   map[int][]domain.Activity{},
	}

	trip.Destinations = append(slices.Clone(trip.Destinations), dest)
	return trip, dest, nil
}

// ClampDuration applies delta to a duration, flooring at MinDurationDays.
// There is no upper bound.
func ClampDuration(current, delta int) int {
	if next := current + delta; next > domain.MinDurationDays {
		return next
	}
	return domain.MinDurationDays
}

// ChangeDuration adjusts a destination's duration by delta, never going below
// the floor of 1. A delta that would cross the floor is a no-op, not an
// error. Returns domain.ErrNotFound for an unknown destination.
func ChangeDuration(trip domain.Trip, destID uuid.UUID, delta int) (domain.Trip, domain.Destination, error) {
	i, err := findDestination(trip, destID)
	if err != nil {
		return domain.Trip{}, domain.Destination{}, err
	}

	dests := slices.Clone(trip.Destinations)
	dests[i].DurationDays = ClampDuration(dests[i].DurationDays, delta)
	trip.Destinations = dests
	return trip, dests[i], nil
}

// AddActivity appends an activity to the given 1-based day within a
// destination, creating the day's bucket on first write. Insertion order is
// preserved; the store never reorders on insert (display-time sorting by
// Activity.Time is a view concern).
//
// Returns domain.ErrValidation for a non-positive day index, blank activity
// name, or negative cost, and domain.ErrNotFound for an unknown destination.
// The activity's category is normalized and a missing ID is assigned.
func AddActivity(trip domain.Trip, destID uuid.UUID, day int, act domain.Activity) (domain.Trip, domain.Activity, error) {
	if day < 1 {
		return domain.Trip{}, domain.Activity{}, fmt.Errorf("%w: day index must be >= 1, got %d", domain.ErrValidation, day)
	}
	if strings.TrimSpace(act.Name) == "" {
		return domain.Trip{}, domain.Activity{}, fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	if act.Cost < 0 {
		return domain.Trip{}, domain.Activity{}, fmt.Errorf("%w: activity cost must not be negative", domain.ErrValidation)
	}

	i, err := findDestination(trip, destID)
	if err != nil {
		return domain.Trip{}, domain.Activity{}, err
	}

	act.Name = strings.TrimSpace(act.Name)
	act.Category = domain.NormalizeCategory(string(act.Category))
	if act.ID == uuid.Nil {
		act.ID = uuid.New()
	}

	dests := slices.Clone(trip.Destinations)
	dest := dests[i]
	activities := make(map[int][]domain.Activity, len(dest.Activities)+1)
	for k, v := range dest.Activities {
		activities[k] = v
	}
	activities[day] = append(slices.Clone(activities[day]), act)
	dest.Activities = activities
	dests[i] = dest

	trip.Destinations = dests
	return trip, act, nil
}

// RemoveActivity removes an activity by ID from a destination's day buckets.
// Removal always mutates the data model, and a missing destination or
// activity is domain.ErrNotFound rather than a silent no-op. A day bucket
// emptied by the removal is dropped.
func RemoveActivity(trip domain.Trip, destID, activityID uuid.UUID) (domain.Trip, error) {
	i, err := findDestination(trip, destID)
	if err != nil {
		return domain.Trip{}, err
	}

	dest := trip.Destinations[i]
	for day, bucket := range dest.Activities {
		j := slices.IndexFunc(bucket, func(a domain.Activity) bool { return a.ID == activityID })
		if j < 0 {
			continue
		}

		activities := make(map[int][]domain.Activity, len(dest.Activities))
		for k, v := range dest.Activities {
			activities[k] = v
		}
		remaining := slices.Delete(slices.Clone(bucket), j, j+1)
		if len(remaining) == 0 {
			delete(activities, day)
		} else {
			activities[day] = remaining
		}

		dests := slices.Clone(trip.Destinations)
		dest.Activities = activities
		dests[i] = dest
		trip.Destinations = dests
		return trip, nil
	}

	return domain.Trip{}, fmt.Errorf("%w: activity %s", domain.ErrNotFound, activityID)
}

// RemoveDestination removes a destination and all its activities, shifting
// later destinations one position earlier. The days it covered become
// unassigned on the next projection. Returns domain.ErrNotFound for an
// unknown destination.
func RemoveDestination(trip domain.Trip, destID uuid.UUID) (domain.Trip, error) {
	i, err := findDestination(trip, destID)
	if err != nil {
		return domain.Trip{}, err
	}

	dests := slices.Delete(slices.Clone(trip.Destinations), i, i+1)
	for j := range dests {
		dests[j].Position = j + 1
	}
	trip.Destinations = dests
	return trip, nil
}

// findDestination returns the index of the destination with the given ID.
func findDestination(trip domain.Trip, destID uuid.UUID) (int, error) {
	i := slices.IndexFunc(trip.Destinations, func(d domain.Destination) bool { return d.ID == destID })
	if i < 0 {
		return 0, fmt.Errorf("%w: destination %s", domain.ErrNotFound, destID)
	}
	return i, nil
}
