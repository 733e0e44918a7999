package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/globetrotter/backend/internal/domain"
)

// CalendarDayResponse is one entry of GET /trips/{tripId}/days: a calendar
// date with the destination occupying it, if any. Unassigned days carry an
// empty destination and no arrival flag.
type CalendarDayResponse struct {
	Date            openapi_types.Date `json:"date"`
	DestinationName string             `json:"destination_name,omitempty"`
	IsArrivalDay    bool               `json:"is_arrival_day"`
	Activities      []ActivityResponse `json:"activities"`
}

// ListDays handles GET /trips/{tripId}/days: the day-by-day projection of
// the trip's destination sequence onto its calendar span.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	days, err := s.itin.Days(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	resp := make([]CalendarDayResponse, len(days))
	for i, d := range days {
		resp[i] = calendarDayToResponse(d)
	}
	respondJSON(w, http.StatusOK, resp)
}

func calendarDayToResponse(d domain.CalendarDay) CalendarDayResponse {
	acts := make([]ActivityResponse, len(d.Activities))
	for i, a := range d.Activities {
		acts[i] = activityToResponse(a)
	}
	return CalendarDayResponse{
		Date:            openapi_types.Date{Time: d.Date},
		DestinationName: d.DestinationName,
		IsArrivalDay:    d.IsArrivalDay,
		Activities:      acts,
	}
}
