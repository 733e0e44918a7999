package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
)

// CreateDestinationRequest is the body of POST /trips/{tripId}/destinations.
// duration_days is optional; it defaults to two days when omitted or zero.
type CreateDestinationRequest struct {
	Name         string `json:"name"`
	DurationDays int    `json:"duration_days,omitempty"`
}

// ChangeDurationRequest is the body of
// PATCH /trips/{tripId}/destinations/{destinationId}/duration.
// Delta is a signed day adjustment; the result never drops below one day.
type ChangeDurationRequest struct {
	Delta int `json:"delta"`
}

// DestinationResponse is the wire shape of a destination. Activities is
// keyed by 1-based day index and only present on itinerary responses.
type DestinationResponse struct {
	ID           uuid.UUID                  `json:"id"`
	TripID       uuid.UUID                  `json:"trip_id"`
	Name         string                     `json:"name"`
	DurationDays int                        `json:"duration_days"`
	Position     int                        `json:"position"`
	Activities   map[int][]ActivityResponse `json:"activities,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// CreateDestination handles POST /trips/{tripId}/destinations.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var req CreateDestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.itin.AddDestination(r.Context(), tripID, req.Name, req.DurationDays)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	respondJSON(w, http.StatusCreated, destinationToResponse(created, false))
}

// ChangeDestinationDuration handles
// PATCH /trips/{tripId}/destinations/{destinationId}/duration.
func (s *Server) ChangeDestinationDuration(w http.ResponseWriter, r *http.Request) {
	tripID, destID, ok := destinationParams(w, r)
	if !ok {
		return
	}

	var req ChangeDurationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	updated, err := s.itin.ChangeDuration(r.Context(), tripID, destID, req.Delta)
	if err != nil {
		respondError(w, err, "destination")
		return
	}

	respondJSON(w, http.StatusOK, destinationToResponse(updated, false))
}

// DeleteDestination handles DELETE /trips/{tripId}/destinations/{destinationId}.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	tripID, destID, ok := destinationParams(w, r)
	if !ok {
		return
	}

	if err := s.itin.RemoveDestination(r.Context(), tripID, destID); err != nil {
		respondError(w, err, "destination")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// destinationParams parses the tripId and destinationId path parameters,
// writing a 400 and returning ok=false on failure.
func destinationParams(w http.ResponseWriter, r *http.Request) (tripID, destID uuid.UUID, ok bool) {
	tripID, err := uuidParam(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return uuid.Nil, uuid.Nil, false
	}
	destID, err = uuidParam(r, "destinationId")
	if err != nil {
		respondBadRequest(w, "invalid destination id")
		return uuid.Nil, uuid.Nil, false
	}
	return tripID, destID, true
}

// destinationToResponse converts a domain.Destination into its wire shape.
// withActivities controls whether the day-keyed activity map is included.
func destinationToResponse(d domain.Destination, withActivities bool) DestinationResponse {
	resp := DestinationResponse{
		ID:           d.ID,
		TripID:       d.TripID,
		Name:         d.Name,
		DurationDays: d.DurationDays,
		Position:     d.Position,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if withActivities {
		resp.Activities = make(map[int][]ActivityResponse, len(d.Activities))
		for day, bucket := range d.Activities {
			acts := make([]ActivityResponse, len(bucket))
			for i, a := range bucket {
				acts[i] = activityToResponse(a)
			}
			resp.Activities[day] = acts
		}
	}
	return resp
}
