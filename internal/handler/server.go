// Package handler implements the HTTP handlers for the GlobeTrotter API.
// All handlers are methods on Server; they are split into resource-specific
// files (trip.go, destination.go, etc.) but share the same Server struct so
// they can access its dependencies. Request and response DTOs are defined
// here rather than generated — the wire shapes live next to the handlers
// that produce them.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	GetItinerary(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItineraryServicer defines the itinerary-editing operations: destinations,
// durations, activities, and the calendar-day projection.
type ItineraryServicer interface {
	AddDestination(ctx context.Context, tripID uuid.UUID, name string, durationDays int) (domain.Destination, error)
	ChangeDuration(ctx context.Context, tripID, destID uuid.UUID, delta int) (domain.Destination, error)
	RemoveDestination(ctx context.Context, tripID, destID uuid.UUID) error
	AddActivity(ctx context.Context, tripID, destID uuid.UUID, day int, act domain.Activity) (domain.Activity, error)
	RemoveActivity(ctx context.Context, tripID, destID, activityID uuid.UUID) error
	Days(ctx context.Context, tripID uuid.UUID) ([]domain.CalendarDay, error)
}

// BudgetServicer defines the budget aggregation operations.
type BudgetServicer interface {
	Summary(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error)
	Breakdown(ctx context.Context, tripID uuid.UUID) ([]domain.DestinationBudget, error)
	PercentOfLimit(ctx context.Context, tripID uuid.UUID, limit float64) (int, error)
}

// MessageServicer defines the per-trip chat log operations.
type MessageServicer interface {
	Post(ctx context.Context, msg domain.Message) (domain.Message, error)
	History(ctx context.Context, tripID uuid.UUID) ([]domain.Message, error)
}

// Server holds the handlers' service dependencies.
type Server struct {
	trips  TripServicer
	itin   ItineraryServicer
	budget BudgetServicer
	msgs   MessageServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, itin ItineraryServicer, budget BudgetServicer, msgs MessageServicer) *Server {
	return &Server{trips: trips, itin: itin, budget: budget, msgs: msgs}
}

// Routes returns the API route tree. Mount it at the router root.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Get("/itinerary", s.GetTripItinerary)
			r.Get("/days", s.ListDays)
			r.Get("/budget", s.GetBudget)

			r.Route("/destinations", func(r chi.Router) {
				r.Post("/", s.CreateDestination)

				r.Route("/{destinationId}", func(r chi.Router) {
					r.Delete("/", s.DeleteDestination)
					r.Patch("/duration", s.ChangeDestinationDuration)
					r.Post("/activities", s.CreateActivity)
					r.Delete("/activities/{activityId}", s.DeleteActivity)
				})
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", s.ListMessages)
				r.Post("/", s.CreateMessage)
			})
		})
	})

	return r
}

// uuidParam parses a UUID path parameter from the chi route context.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
