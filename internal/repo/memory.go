package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/itinerary"
)

// MemoryStore backs the repo interfaces with in-memory itinerary stores, one
// per trip. It is selected with STORAGE=memory and used by service tests; no
// data survives a restart.
//
// The itinerary core is single-document and not thread-safe, so this host
// serializes access with a mutex — exactly the concurrency control the core
// leaves to its integrator.
type MemoryStore struct {
	mu       sync.RWMutex
	trips    map[uuid.UUID]*itinerary.Store
	messages map[uuid.UUID][]domain.Message
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trips:    map[uuid.UUID]*itinerary.Store{},
		messages: map[uuid.UUID][]domain.Message{},
	}
}

// Trips returns a TripRepo view of the store.
func (m *MemoryStore) Trips() TripRepo { return &memTripRepo{m} }

// Destinations returns a DestinationRepo view of the store.
func (m *MemoryStore) Destinations() DestinationRepo { return &memDestinationRepo{m} }

// Activities returns an ActivityRepo view of the store.
func (m *MemoryStore) Activities() ActivityRepo { return &memActivityRepo{m} }

// Messages returns a MessageRepo view of the store.
func (m *MemoryStore) Messages() MessageRepo { return &memMessageRepo{m} }

// ---- trips -----------------------------------------------------------------

type memTripRepo struct {
	s *MemoryStore
}

func (r *memTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	trip.ID = uuid.New()
	trip.StartDate = domain.DateOnly(trip.StartDate)
	trip.EndDate = domain.DateOnly(trip.EndDate)
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.Destinations = []domain.Destination{}

	r.s.trips[trip.ID] = itinerary.NewStore(trip)
	return trip, nil
}

func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	store, ok := r.s.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	trip := store.Snapshot()
	trip.Destinations = nil // match the Postgres repo: no itinerary on plain gets
	return trip, nil
}

func (r *memTripRepo) GetItinerary(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	store, ok := r.s.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetItinerary: %w", domain.ErrNotFound)
	}
	// Snapshots are copy-on-write; callers can hold this across mutations.
	return store.Snapshot(), nil
}

func (r *memTripRepo) ListPaged(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]domain.Trip, 0, len(r.s.trips))
	for _, store := range r.s.trips {
		trip := store.Snapshot()
		trip.Destinations = nil
		all = append(all, trip)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].StartDate.Equal(all[j].StartDate) {
			return all[i].StartDate.After(all[j].StartDate)
		}
		return all[i].ID.String() < all[j].ID.String()
	})

	total := int64(len(all))
	lo := p.Offset()
	if lo >= len(all) {
		return nil, total, nil
	}
	hi := lo + p.Limit
	if hi > len(all) {
		hi = len(all)
	}
	return all[lo:hi], total, nil
}

func (r *memTripRepo) Update(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	store, ok := r.s.trips[trip.ID]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}

	current := store.Snapshot()
	current.Name = trip.Name
	current.StartDate = domain.DateOnly(trip.StartDate)
	current.EndDate = domain.DateOnly(trip.EndDate)
	current.UpdatedAt = time.Now().UTC()
	store.Replace(current)

	current.Destinations = nil
	return current, nil
}

func (r *memTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[id]; !ok {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.s.trips, id)
	delete(r.s.messages, id)
	return nil
}

// ---- destinations ----------------------------------------------------------

type memDestinationRepo struct {
	s *MemoryStore
}

func (r *memDestinationRepo) Create(_ context.Context, dest domain.Destination) (domain.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	store, ok := r.s.trips[dest.TripID]
	if !ok {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", domain.ErrNotFound)
	}

	created, err := store.AddDestination(dest.Name)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	if dest.DurationDays > 0 && dest.DurationDays != created.DurationDays {
		created, err = store.ChangeDuration(created.ID, dest.DurationDays-created.DurationDays)
		if err != nil {
			return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
		}
	}

	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.s.stampDestination(store, created)
	return created, nil
}

func (r *memDestinationRepo) GetByID(_ context.Context, tripID, destID uuid.UUID) (domain.Destination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	dest, _, err := r.s.findDestination(tripID, destID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return dest, nil
}

func (r *memDestinationRepo) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	store, ok := r.s.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: %w", domain.ErrNotFound)
	}
	return store.Snapshot().Destinations, nil
}

func (r *memDestinationRepo) SetDuration(_ context.Context, tripID, destID uuid.UUID, days int) (domain.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	dest, store, err := r.s.findDestination(tripID, destID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.SetDuration: %w", err)
	}

	updated, err := store.ChangeDuration(destID, days-dest.DurationDays)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.SetDuration: %w", err)
	}
	updated.UpdatedAt = time.Now().UTC()
	r.s.stampDestination(store, updated)
	return updated, nil
}

func (r *memDestinationRepo) Delete(_ context.Context, tripID, destID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, store, err := r.s.findDestination(tripID, destID)
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	if err := store.RemoveDestination(destID); err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	return nil
}

// ---- activities ------------------------------------------------------------

type memActivityRepo struct {
	s *MemoryStore
}

func (r *memActivityRepo) Create(_ context.Context, destID uuid.UUID, day int, act domain.Activity) (domain.Activity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	store, err := r.s.findStoreByDestination(destID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}

	act.CreatedAt = time.Now().UTC()
	created, err := store.AddActivity(destID, day, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return created, nil
}

func (r *memActivityRepo) ListByDestination(_ context.Context, destID uuid.UUID) (map[int][]domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	store, err := r.s.findStoreByDestination(destID)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: %w", err)
	}

	for _, dest := range store.Snapshot().Destinations {
		if dest.ID == destID {
			if dest.Activities == nil {
				return map[int][]domain.Activity{}, nil
			}
			return dest.Activities, nil
		}
	}
	return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: %w", domain.ErrNotFound)
}

func (r *memActivityRepo) Delete(_ context.Context, destID, activityID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	store, err := r.s.findStoreByDestination(destID)
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if err := store.RemoveActivity(destID, activityID); err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	return nil
}

// ---- messages --------------------------------------------------------------

type memMessageRepo struct {
	s *MemoryStore
}

func (r *memMessageRepo) Create(_ context.Context, msg domain.Message) (domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[msg.TripID]; !ok {
		return domain.Message{}, fmt.Errorf("repo.MessageRepo.Create: %w", domain.ErrNotFound)
	}

	msg.ID = uuid.New()
	msg.CreatedAt = time.Now().UTC()
	r.s.messages[msg.TripID] = append(r.s.messages[msg.TripID], msg)
	return msg, nil
}

func (r *memMessageRepo) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	msgs := r.s.messages[tripID]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// ---- lookup helpers --------------------------------------------------------

// findDestination locates a destination under a trip. Callers hold the lock.
func (m *MemoryStore) findDestination(tripID, destID uuid.UUID) (domain.Destination, *itinerary.Store, error) {
	store, ok := m.trips[tripID]
	if !ok {
		return domain.Destination{}, nil, domain.ErrNotFound
	}
	for _, dest := range store.Snapshot().Destinations {
		if dest.ID == destID {
			return dest, store, nil
		}
	}
	return domain.Destination{}, nil, domain.ErrNotFound
}

// stampDestination writes a destination's timestamps back into the stored
// trip. The editor operations know nothing about timestamps, so without this
// the stamped values would exist only on the copy returned to the caller and
// every later read would see zero times. Callers hold the lock.
func (m *MemoryStore) stampDestination(store *itinerary.Store, dest domain.Destination) {
	trip := store.Snapshot()
	dests := make([]domain.Destination, len(trip.Destinations))
	copy(dests, trip.Destinations)
	for i := range dests {
		if dests[i].ID == dest.ID {
			dests[i].CreatedAt = dest.CreatedAt
			dests[i].UpdatedAt = dest.UpdatedAt
		}
	}
	trip.Destinations = dests
	store.Replace(trip)
}

// findStoreByDestination locates the trip store owning a destination.
// Callers hold the lock.
func (m *MemoryStore) findStoreByDestination(destID uuid.UUID) (*itinerary.Store, error) {
	for _, store := range m.trips {
		for _, dest := range store.Snapshot().Destinations {
			if dest.ID == destID {
				return store, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}
