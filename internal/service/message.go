package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/repo"
)

// MessageService implements the per-trip planning chat log.
type MessageService struct {
	trips repo.TripRepo
	msgs  repo.MessageRepo
}

// NewMessageService constructs a MessageService backed by the provided repos.
func NewMessageService(trips repo.TripRepo, msgs repo.MessageRepo) *MessageService {
	return &MessageService{trips: trips, msgs: msgs}
}

// Post appends a message to a trip's log.
// Returns domain.ErrValidation for a blank sender or content, and
// domain.ErrNotFound if the trip does not exist.
func (s *MessageService) Post(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if _, err := s.trips.GetByID(ctx, msg.TripID); err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w", err)
	}

	msg.Sender = strings.TrimSpace(msg.Sender)
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.Sender == "" {
		return domain.Message{}, fmt.Errorf("%w: sender is required", domain.ErrValidation)
	}
	if msg.Content == "" {
		return domain.Message{}, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	result, err := s.msgs.Create(ctx, msg)
	if err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w", err)
	}
	return result, nil
}

// History returns a trip's messages oldest first.
// Always returns a non-nil slice so callers can safely range over it.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *MessageService) History(ctx context.Context, tripID uuid.UUID) ([]domain.Message, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.MessageService.History: %w", err)
	}

	msgs, err := s.msgs.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.MessageService.History: %w", err)
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}
