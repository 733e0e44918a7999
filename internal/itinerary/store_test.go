package itinerary_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/itinerary"
)

func TestStore_SnapshotSurvivesMutation(t *testing.T) {
	store := itinerary.NewStore(tripFixture())
	dest, err := store.AddDestination("Paris")
	require.NoError(t, err)

	before := store.Snapshot()
	_, err = store.AddActivity(dest.ID, 1, domain.Activity{Name: "Arrival", Cost: 150})
	require.NoError(t, err)

	// The snapshot taken before the mutation still sees an empty day 1.
	assert.Empty(t, before.Destinations[0].DayActivities(1))
	assert.Len(t, store.Snapshot().Destinations[0].DayActivities(1), 1)
}

func TestStore_EditorOperationsRoundTrip(t *testing.T) {
	store := itinerary.NewStore(tripFixture())

	paris, err := store.AddDestination("Paris")
	require.NoError(t, err)
	_, err = store.ChangeDuration(paris.ID, 1) // 2 -> 3
	require.NoError(t, err)

	act, err := store.AddActivity(paris.ID, 2, domain.Activity{Name: "Louvre Museum", Cost: 17})
	require.NoError(t, err)

	days, err := store.Days()
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "Paris", days[0].DestinationName)
	require.Len(t, days[1].Activities, 1)

	sum := store.Budget()
	assert.InDelta(t, 17.0, sum.Total, 1e-9)

	require.NoError(t, store.RemoveActivity(paris.ID, act.ID))
	assert.Zero(t, store.Budget().Total)

	require.NoError(t, store.RemoveDestination(paris.ID))
	assert.Empty(t, store.Snapshot().Destinations)
}

func TestStore_Replace(t *testing.T) {
	store := itinerary.NewStore(tripFixture())
	next := tripFixture()
	next.Name = "Autumn in Japan"

	store.Replace(next)

	assert.Equal(t, "Autumn in Japan", store.Snapshot().Name)
}

func TestStore_ErrorsPropagate(t *testing.T) {
	store := itinerary.NewStore(tripFixture())

	_, err := store.AddDestination(" ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = store.RemoveDestination(uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
