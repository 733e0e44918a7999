package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/itinerary"
	"github.com/globetrotter/backend/internal/repo"
)

// BudgetService aggregates a trip's costs. The daily stay rate is a
// deployment-wide setting (DAILY_STAY_RATE); when zero, summaries contain
// activity costs only.
type BudgetService struct {
	trips         repo.TripRepo
	dailyStayRate float64
}

// NewBudgetService constructs a BudgetService backed by the provided TripRepo.
func NewBudgetService(trips repo.TripRepo, dailyStayRate float64) *BudgetService {
	return &BudgetService{trips: trips, dailyStayRate: dailyStayRate}
}

// Summary returns the trip's budget total with per-category and
// per-destination breakdowns. Returns domain.ErrNotFound for an unknown trip.
func (s *BudgetService) Summary(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error) {
	trip, err := s.trips.GetItinerary(ctx, tripID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}
	return itinerary.Summarize(trip, s.dailyStayRate), nil
}

// Breakdown returns one row per destination with its stay and activity costs,
// in destination order. Returns domain.ErrNotFound for an unknown trip.
func (s *BudgetService) Breakdown(ctx context.Context, tripID uuid.UUID) ([]domain.DestinationBudget, error) {
	trip, err := s.trips.GetItinerary(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.Breakdown: %w", err)
	}
	return itinerary.Breakdown(trip, s.dailyStayRate), nil
}

// PercentOfLimit returns the trip's total spend as a whole percentage of the
// caller-supplied limit, clamped to [0, 100]. A non-positive limit yields 0.
func (s *BudgetService) PercentOfLimit(ctx context.Context, tripID uuid.UUID, limit float64) (int, error) {
	sum, err := s.Summary(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.BudgetService.PercentOfLimit: %w", err)
	}
	return itinerary.PercentOfBudget(sum.Total, limit), nil
}
