package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
)

// CreateActivityRequest is the body of
// POST /trips/{tripId}/destinations/{destinationId}/activities.
// Day is the 1-based day within the destination's stay; time is "HH:MM".
type CreateActivityRequest struct {
	Day      int     `json:"day"`
	Name     string  `json:"name"`
	Time     string  `json:"time,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
	Category string  `json:"category,omitempty"`
}

// ActivityResponse is the wire shape of a scheduled activity.
type ActivityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Time      string    `json:"time,omitempty"`
	Cost      float64   `json:"cost"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateActivity handles POST /trips/{tripId}/destinations/{destinationId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, destID, ok := destinationParams(w, r)
	if !ok {
		return
	}

	var req CreateActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.itin.AddActivity(r.Context(), tripID, destID, req.Day, domain.Activity{
		Name:     req.Name,
		Time:     req.Time,
		Cost:     req.Cost,
		Category: domain.Category(req.Category),
	})
	if err != nil {
		respondError(w, err, "destination")
		return
	}

	respondJSON(w, http.StatusCreated, activityToResponse(created))
}

// DeleteActivity handles
// DELETE /trips/{tripId}/destinations/{destinationId}/activities/{activityId}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, destID, ok := destinationParams(w, r)
	if !ok {
		return
	}
	activityID, err := uuidParam(r, "activityId")
	if err != nil {
		respondBadRequest(w, "invalid activity id")
		return
	}

	if err := s.itin.RemoveActivity(r.Context(), tripID, destID, activityID); err != nil {
		respondError(w, err, "activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// activityToResponse converts a domain.Activity into its wire shape.
func activityToResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		Name:      a.Name,
		Time:      a.Time,
		Cost:      a.Cost,
		Category:  string(a.Category),
		CreatedAt: a.CreatedAt,
	}
}
