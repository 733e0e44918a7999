package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/itinerary"
	"github.com/globetrotter/backend/internal/repo"
)

// ItineraryService implements business logic for editing a trip's itinerary:
// destinations, their durations, and day-scheduled activities. It holds the
// trip repo because every mutation is scoped to a parent trip that must exist.
type ItineraryService struct {
	trips repo.TripRepo
	dests repo.DestinationRepo
	acts  repo.ActivityRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, dests repo.DestinationRepo, acts repo.ActivityRepo) *ItineraryService {
	return &ItineraryService{trips: trips, dests: dests, acts: acts}
}

// AddDestination appends a destination to the end of the trip's route.
// A zero durationDays falls back to the default of two days.
// Returns domain.ErrValidation for a blank name or negative duration, and
// domain.ErrNotFound if the parent trip does not exist.
func (s *ItineraryService) AddDestination(ctx context.Context, tripID uuid.UUID, name string, durationDays int) (domain.Destination, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Destination{}, fmt.Errorf("service.ItineraryService.AddDestination: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Destination{}, fmt.Errorf("%w: destination name is required", domain.ErrValidation)
	}
	if durationDays == 0 {
		durationDays = domain.DefaultDurationDays
	}
	if durationDays < domain.MinDurationDays {
		return domain.Destination{}, fmt.Errorf("%w: duration_days must be >= %d", domain.ErrValidation, domain.MinDurationDays)
	}

	result, err := s.dests.Create(ctx, domain.Destination{
		TripID:       tripID,
		Name:         name,
		DurationDays: durationDays,
	})
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.ItineraryService.AddDestination: %w", err)
	}
	return result, nil
}

// ChangeDuration adjusts a destination's duration by delta, flooring at one
// day — a decrement below the floor is a no-op, not an error. Returns the
// destination with its resulting duration.
func (s *ItineraryService) ChangeDuration(ctx context.Context, tripID, destID uuid.UUID, delta int) (domain.Destination, error) {
	current, err := s.dests.GetByID(ctx, tripID, destID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.ItineraryService.ChangeDuration: %w", err)
	}

	next := itinerary.ClampDuration(current.DurationDays, delta)
	if next == current.DurationDays {
		return current, nil
	}

	result, err := s.dests.SetDuration(ctx, tripID, destID, next)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.ItineraryService.ChangeDuration: %w", err)
	}
	return result, nil
}

// RemoveDestination removes a destination and all its activities; later
// destinations shift one position earlier. Returns domain.ErrNotFound if the
// destination does not exist under the given trip.
func (s *ItineraryService) RemoveDestination(ctx context.Context, tripID, destID uuid.UUID) error {
	if err := s.dests.Delete(ctx, tripID, destID); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveDestination: %w", err)
	}
	return nil
}

// AddActivity schedules an activity on the given 1-based day within a
// destination. The category is normalized; unknown values become "other".
// Returns domain.ErrValidation for a non-positive day, blank name, or
// negative cost, and domain.ErrNotFound if the destination does not exist
// under the given trip.
func (s *ItineraryService) AddActivity(ctx context.Context, tripID, destID uuid.UUID, day int, act domain.Activity) (domain.Activity, error) {
	if _, err := s.dests.GetByID(ctx, tripID, destID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	if err := validateActivity(day, act); err != nil {
		return domain.Activity{}, err
	}

	act.Name = strings.TrimSpace(act.Name)
	act.Category = domain.NormalizeCategory(string(act.Category))

	result, err := s.acts.Create(ctx, destID, day, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	return result, nil
}

// RemoveActivity removes a scheduled activity. Returns domain.ErrNotFound if
// the destination is not under the trip or the activity is not under the
// destination — never a silent no-op.
func (s *ItineraryService) RemoveActivity(ctx context.Context, tripID, destID, activityID uuid.UUID) error {
	if _, err := s.dests.GetByID(ctx, tripID, destID); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveActivity: %w", err)
	}
	if err := s.acts.Delete(ctx, destID, activityID); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveActivity: %w", err)
	}
	return nil
}

// Days projects the trip's destination sequence onto its calendar span,
// one entry per day from start to end date inclusive. Days beyond the planned
// destinations come back unassigned; destinations beyond the span are
// truncated. Returns domain.ErrNotFound for an unknown trip.
func (s *ItineraryService) Days(ctx context.Context, tripID uuid.UUID) ([]domain.CalendarDay, error) {
	trip, err := s.trips.GetItinerary(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Days: %w", err)
	}

	days, err := itinerary.ProjectDays(trip)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Days: %w", err)
	}
	return days, nil
}

// validateActivity enforces the scheduling rules for new activities.
func validateActivity(day int, act domain.Activity) error {
	if day < 1 {
		return fmt.Errorf("%w: day index must be >= 1, got %d", domain.ErrValidation, day)
	}
	if strings.TrimSpace(act.Name) == "" {
		return fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	if act.Cost < 0 {
		return fmt.Errorf("%w: activity cost must not be negative", domain.ErrValidation)
	}
	return nil
}
