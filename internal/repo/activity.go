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

// ActivityRepo defines the persistence operations for Activities.
// Activities are always addressed through their owning destination.
type ActivityRepo interface {
	// Create appends an activity to the given 1-based day within a
	// destination, preserving insertion order, and returns the persisted
	// record.
	Create(ctx context.Context, destID uuid.UUID, day int, act domain.Activity) (domain.Activity, error)

	// ListByDestination returns a destination's activities keyed by day
	// index, each bucket in insertion order. The map is never nil.
	ListByDestination(ctx context.Context, destID uuid.UUID) (map[int][]domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given destination.
	// Returns domain.ErrNotFound if no such activity exists there.
	Delete(ctx context.Context, destID, activityID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db
// connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

func (r *pgActivityRepo) Create(ctx context.Context, destID uuid.UUID, day int, act domain.Activity) (domain.Activity, error) {
	// Position is the insertion index within the (destination, day) bucket,
	// assigned inside the insert like destination positions.
	const q = `
		INSERT INTO activities (destination_id, day_index, name, scheduled_time, cost, category, position)
		VALUES (@destination_id, @day_index, @name, @scheduled_time, @cost, @category,
		        (SELECT COALESCE(MAX(position), 0) + 1 FROM activities
		         WHERE destination_id = @destination_id AND day_index = @day_index))
		RETURNING id, destination_id, day_index, name, scheduled_time, cost, category, created_at`

	args := pgx.NamedArgs{
		"destination_id": destID,
		"day_index":      day,
		"name":           act.Name,
		"scheduled_time": act.Time,
		"cost":           act.Cost,
		"category":       string(act.Category),
	}

	created, _, _, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return created, nil
}

func (r *pgActivityRepo) ListByDestination(ctx context.Context, destID uuid.UUID) (map[int][]domain.Activity, error) {
	const q = `
		SELECT id, destination_id, day_index, name, scheduled_time, cost, category, created_at
		FROM activities
		WHERE destination_id = @destination_id
		ORDER BY day_index, position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"destination_id": destID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: %w", err)
	}
	defer rows.Close()

	buckets := map[int][]domain.Activity{}
	for rows.Next() {
		act, _, day, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: scan: %w", err)
		}
		buckets[day] = append(buckets[day], act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: rows: %w", err)
	}

	return buckets, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, destID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND destination_id = @destination_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "destination_id": destID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanActivity maps a single database row into a domain.Activity along with
// its owning destination ID and day index.
func scanActivity(s scanner) (domain.Activity, uuid.UUID, int, error) {
	var (
		act    domain.Activity
		id     pgtype.UUID
		destID pgtype.UUID
		day    int
		cat    string
	)

	err := s.Scan(&id, &destID, &day, &act.Name, &act.Time, &act.Cost, &cat, &act.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, uuid.Nil, 0, domain.ErrNotFound
		}
		return domain.Activity{}, uuid.Nil, 0, err
	}

	act.ID = uuid.UUID(id.Bytes)
	act.Category = domain.NormalizeCategory(cat)
	return act, uuid.UUID(destID.Bytes), day, nil
}
