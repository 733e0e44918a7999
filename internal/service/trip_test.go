package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/repo"
	"github.com/globetrotter/backend/internal/service"
)

// ---- mock repos ------------------------------------------------------------

// mockTripRepo is a hand-written test double for repo.TripRepo.
type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	getItinerary func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) GetItinerary(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getItinerary(ctx, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		Name:      "European Adventure",
		StartDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
	}
}

// ---- Create ----------------------------------------------------------------

func TestTripService_Create_OK(t *testing.T) {
	input := validTrip()
	stored := input
	stored.ID = uuid.New()

	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestTripService_Create_NameRequired(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	input := validTrip()
	input.Name = "   "

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_EndBeforeStart(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	input := validTrip()
	input.EndDate = input.StartDate.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_SingleDayTripAllowed(t *testing.T) {
	input := validTrip()
	input.EndDate = input.StartDate // one-day trip: start == end

	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			return trip, nil
		},
	})

	_, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, repoErr
		},
	})

	_, err := svc.Create(context.Background(), validTrip())

	assert.ErrorIs(t, err, repoErr)
}

// ---- GetByID / GetItinerary ------------------------------------------------

func TestTripService_GetByID_NotFound(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_GetItinerary_OK(t *testing.T) {
	tripID := uuid.New()
	svc := service.NewTripService(&mockTripRepo{
		getItinerary: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			trip := validTrip()
			trip.ID = id
			trip.Destinations = []domain.Destination{{Name: "Paris"}}
			return trip, nil
		},
	})

	got, err := svc.GetItinerary(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, tripID, got.ID)
	require.Len(t, got.Destinations, 1)
}

// ---- ListPaged -------------------------------------------------------------

func TestTripService_ListPaged_NilBecomesEmpty(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.Trip, int64, error) {
			return nil, 0, nil
		},
	})

	got, total, err := svc.ListPaged(context.Background(), domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.NotNil(t, got, "nil slice should become empty slice")
	assert.Empty(t, got)
	assert.Zero(t, total)
}

// ---- Update ----------------------------------------------------------------

func TestTripService_Update_Validates(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	input := validTrip()
	input.ID = uuid.New()
	input.Name = ""

	_, err := svc.Update(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_NotFound(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	})

	input := validTrip()
	input.ID = uuid.New()

	_, err := svc.Update(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestTripService_Delete_OK(t *testing.T) {
	var deleted uuid.UUID
	svc := service.NewTripService(&mockTripRepo{
		delete: func(_ context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	})

	id := uuid.New()
	err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, deleted)
}
