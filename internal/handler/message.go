package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
)

// CreateMessageRequest is the body of POST /trips/{tripId}/messages.
type CreateMessageRequest struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// MessageResponse is the wire shape of one chat message.
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessage handles POST /trips/{tripId}/messages.
func (s *Server) CreateMessage(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var req CreateMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.msgs.Post(r.Context(), domain.Message{
		TripID:  tripID,
		Sender:  req.Sender,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	respondJSON(w, http.StatusCreated, messageToResponse(created))
}

// ListMessages handles GET /trips/{tripId}/messages, oldest first.
func (s *Server) ListMessages(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripId")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	msgs, err := s.msgs.History(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	resp := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		resp[i] = messageToResponse(m)
	}
	respondJSON(w, http.StatusOK, resp)
}

func messageToResponse(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		TripID:    m.TripID,
		Sender:    m.Sender,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
