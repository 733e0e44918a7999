// Package domain contains the core data types for the GlobeTrotter backend.
// This package is imported by every other internal package (itinerary, repo,
// service, handler) and carries no I/O.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level travel plan: a date range plus an ordered list of
// destinations. StartDate and EndDate are date-only values (midnight UTC)
// and the range is inclusive on both ends, so a one-day trip has
// StartDate == EndDate.
type Trip struct {
	ID        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time

	// Destinations is ordered; position in the slice defines the travel
	// sequence and therefore which calendar days each destination covers.
	// Nil when the trip was loaded without its itinerary.
	Destinations []Destination

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Span returns the number of calendar days the trip covers, inclusive.
// It is computed on date-only values so time-of-day or timezone drift in the
// stored timestamps can never change the count.
func (t Trip) Span() int {
	start := DateOnly(t.StartDate)
	end := DateOnly(t.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateOnly truncates a timestamp to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TripStatus classifies a trip relative to a point in time.
// It is always derived from the date range, never stored.
type TripStatus string

const (
	StatusUpcoming  TripStatus = "upcoming"
	StatusOngoing   TripStatus = "ongoing"
	StatusCompleted TripStatus = "completed"
)

// StatusAt returns the trip's status as of now: upcoming before the start
// date, ongoing inside the inclusive range, completed after the end date.
func (t Trip) StatusAt(now time.Time) TripStatus {
	day := DateOnly(now)
	switch {
	case day.Before(DateOnly(t.StartDate)):
		return StatusUpcoming
	case day.After(DateOnly(t.EndDate)):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}
