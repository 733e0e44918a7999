package handler

import (
	"net/http"
	"strconv"

	"github.com/globetrotter/backend/internal/domain"
)

// BudgetResponse is the body of GET /trips/{tripId}/budget: the grand total,
// per-category and per-destination breakdowns, one row per destination, and
// — when the caller supplies ?limit= — the spend as a percentage of it.
type BudgetResponse struct {
	Total          float64                `json:"total"`
	ByCategory     map[string]float64     `json:"by_category"`
	ByDestination  map[string]float64     `json:"by_destination"`
	Breakdown      []DestinationBudgetRow `json:"breakdown"`
	PercentOfLimit *int                   `json:"percent_of_limit,omitempty"`
}

// DestinationBudgetRow is one destination's share of the budget.
type DestinationBudgetRow struct {
	City           string  `json:"city"`
	DurationDays   int     `json:"duration_days"`
	StayCost       float64 `json:"stay_cost"`
	ActivitiesCost float64 `json:"activities_cost"`
	Total          float64 `json:"total"`
}

// GetBudget handles GET /trips/{tripId}/budget.
// An optional ?limit= query parameter adds percent_of_limit to the response.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	sum, err := s.budget.Summary(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	rows, err := s.budget.Breakdown(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	resp := BudgetResponse{
		Total:         sum.Total,
		ByCategory:    categoryMap(sum.ByCategory),
		ByDestination: sum.ByDestination,
		Breakdown:     make([]DestinationBudgetRow, len(rows)),
	}
	for i, row := range rows {
		resp.Breakdown[i] = DestinationBudgetRow{
			City:           row.City,
			DurationDays:   row.DurationDays,
			StayCost:       row.StayCost,
			ActivitiesCost: row.ActivitiesCost,
			Total:          row.Total,
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(w, "invalid limit")
			return
		}
		pct, err := s.budget.PercentOfLimit(r.Context(), tripID, limit)
		if err != nil {
			respondError(w, err, "trip")
			return
		}
		resp.PercentOfLimit = &pct
	}

	respondJSON(w, http.StatusOK, resp)
}

// categoryMap converts the typed category keys to plain strings for JSON.
func categoryMap(in map[domain.Category]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}
