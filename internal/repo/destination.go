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

// DestinationRepo defines the persistence operations for Destinations.
// All single-row operations are scoped by tripID to enforce ownership.
// Rows returned here carry no Activities; the trip-level GetItinerary
// assembles the full aggregate.
type DestinationRepo interface {
	// Create inserts a destination at the end of the trip's order and
	// returns the persisted record with its assigned position.
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// GetByID retrieves a destination scoped to the given tripID.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	GetByID(ctx context.Context, tripID, destID uuid.UUID) (domain.Destination, error)

	// ListByTripID returns all destinations for a trip ordered by position.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)

	// SetDuration sets duration_days to the given value and returns the
	// updated record. The caller is responsible for clamping; the schema
	// additionally enforces the floor of 1.
	SetDuration(ctx context.Context, tripID, destID uuid.UUID, days int) (domain.Destination, error)

	// Delete removes a destination (cascading its activities) and shifts
	// later destinations one position earlier.
	Delete(ctx context.Context, tripID, destID uuid.UUID) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db
// connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

func (r *pgDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	// Position is assigned inside the insert so concurrent adds to the same
	// trip cannot race between a read and a write.
	const q = `
		INSERT INTO destinations (trip_id, name, duration_days, position)
		VALUES (@trip_id, @name, @duration_days,
		        (SELECT COALESCE(MAX(position), 0) + 1 FROM destinations WHERE trip_id = @trip_id))
		RETURNING id, trip_id, name, duration_days, position, created_at, updated_at`

	args := pgx.NamedArgs{
		"trip_id":       dest.TripID,
		"name":          dest.Name,
		"duration_days": dest.DurationDays,
	}

	result, err := scanDestination(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, tripID, destID uuid.UUID) (domain.Destination, error) {
	const q = `
		SELECT id, trip_id, name, duration_days, position, created_at, updated_at
		FROM destinations
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanDestination(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": destID, "trip_id": tripID}))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	dests, err := listDestinations(ctx, r.db, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: %w", err)
	}
	return dests, nil
}

func (r *pgDestinationRepo) SetDuration(ctx context.Context, tripID, destID uuid.UUID, days int) (domain.Destination, error) {
	const q = `
		UPDATE destinations
		SET duration_days = @days,
		    updated_at    = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, name, duration_days, position, created_at, updated_at`

	args := pgx.NamedArgs{"id": destID, "trip_id": tripID, "days": days}

	result, err := scanDestination(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.SetDuration: %w", err)
	}
	return result, nil
}

// Delete removes the destination and closes the gap it leaves in the trip's
// position sequence.
func (r *pgDestinationRepo) Delete(ctx context.Context, tripID, destID uuid.UUID) error {
	const del = `
		DELETE FROM destinations
		WHERE id = @id AND trip_id = @trip_id
		RETURNING position`

	var position int
	err := r.db.QueryRow(ctx, del, pgx.NamedArgs{"id": destID, "trip_id": tripID}).Scan(&position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}

	const reseq = `
		UPDATE destinations
		SET position = position - 1
		WHERE trip_id = @trip_id AND position > @position`

	if _, err := r.db.Exec(ctx, reseq, pgx.NamedArgs{"trip_id": tripID, "position": position}); err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: resequence: %w", err)
	}
	return nil
}

// listDestinations is shared between DestinationRepo.ListByTripID and
// TripRepo.GetItinerary.
func listDestinations(ctx context.Context, db db, tripID uuid.UUID) ([]domain.Destination, error) {
	const q = `
		SELECT id, trip_id, name, duration_days, position, created_at, updated_at
		FROM destinations
		WHERE trip_id = @trip_id
		ORDER BY position`

	rows, err := db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return dests, nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d      domain.Destination
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &d.Name, &d.DurationDays, &d.Position, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	return d, nil
}
