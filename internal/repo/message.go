package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/globetrotter/backend/internal/domain"
)

// MessageRepo defines the persistence operations for a trip's chat log.
type MessageRepo interface {
	// Create appends a message to the trip's log and returns the persisted
	// record with its DB-generated id and timestamp.
	Create(ctx context.Context, msg domain.Message) (domain.Message, error)

	// ListByTripID returns a trip's messages ordered by created_at ascending
	// (oldest first, the order a chat view replays them in).
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Message, error)
}

// pgMessageRepo is the Postgres implementation of MessageRepo.
type pgMessageRepo struct {
	db db
}

// NewMessageRepo constructs a MessageRepo backed by the provided db connection.
func NewMessageRepo(db db) MessageRepo {
	return &pgMessageRepo{db: db}
}

func (r *pgMessageRepo) Create(ctx context.Context, msg domain.Message) (domain.Message, error) {
	const q = `
		INSERT INTO messages (trip_id, sender, content)
		VALUES (@trip_id, @sender, @content)
		RETURNING id, trip_id, sender, content, created_at`

	args := pgx.NamedArgs{
		"trip_id": msg.TripID,
		"sender":  msg.Sender,
		"content": msg.Content,
	}

	result, err := scanMessage(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Message{}, fmt.Errorf("repo.MessageRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMessageRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Message, error) {
	const q = `
		SELECT id, trip_id, sender, content, created_at
		FROM messages
		WHERE trip_id = @trip_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.MessageRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MessageRepo.ListByTripID: scan: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MessageRepo.ListByTripID: rows: %w", err)
	}

	return msgs, nil
}

// scanMessage maps a single database row into a domain.Message.
func scanMessage(s scanner) (domain.Message, error) {
	var (
		m      domain.Message
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &m.Sender, &m.Content, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Message{}, domain.ErrNotFound
		}
		return domain.Message{}, err
	}

	m.ID = uuid.UUID(id.Bytes)
	m.TripID = uuid.UUID(tripID.Bytes)
	return m, nil
}
