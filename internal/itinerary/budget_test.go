package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/itinerary"
)

// parisWithActivities builds the Paris scenario:
// day1: 150 + 25, day2: 17 + 85, day3: 45 — total 322.
func parisWithActivities(t *testing.T) domain.Trip {
	t.Helper()
	trip, destID := withParis(3)

	add := func(day int, name string, cost float64, cat domain.Category) {
		var err error
		trip, _, err = itinerary.AddActivity(trip, destID, day, domain.Activity{
			Name: name, Cost: cost, Category: cat,
		})
		require.NoError(t, err)
	}
	add(1, "Arrival", 150, domain.CategoryTransport)
	add(1, "Seine Cruise", 25, domain.CategorySightseeing)
	add(2, "Louvre Museum", 17, domain.CategorySightseeing)
	add(2, "Le Marais Food Tour", 85, domain.CategoryFood)
	add(3, "Versailles", 45, domain.CategorySightseeing)

	return trip
}

func TestAggregate_TotalAndDestinationBreakdown(t *testing.T) {
	trip := parisWithActivities(t)

	sum := itinerary.Aggregate(trip)

	assert.InDelta(t, 322.0, sum.Total, 1e-9)
	assert.InDelta(t, 322.0, sum.ByDestination["Paris"], 1e-9)
	assert.InDelta(t, 150.0, sum.ByCategory[domain.CategoryTransport], 1e-9)
	assert.InDelta(t, 87.0, sum.ByCategory[domain.CategorySightseeing], 1e-9)
	assert.InDelta(t, 85.0, sum.ByCategory[domain.CategoryFood], 1e-9)
}

func TestAggregate_Additivity(t *testing.T) {
	// total == sum(byCategory) == sum(byDestination), multi-destination case.
	trip := parisWithActivities(t)
	trip, rome, err := itinerary.AddDestination(trip, "Rome")
	require.NoError(t, err)
	trip, _, err = itinerary.AddActivity(trip, rome.ID, 1, domain.Activity{Name: "Colosseum", Cost: 30, Category: domain.CategorySightseeing})
	require.NoError(t, err)
	trip, _, err = itinerary.AddActivity(trip, rome.ID, 1, domain.Activity{Name: "Pasta Making Class", Cost: 60, Category: domain.CategoryFood})
	require.NoError(t, err)

	sum := itinerary.Aggregate(trip)

	var byCat, byDest float64
	for _, v := range sum.ByCategory {
		byCat += v
	}
	for _, v := range sum.ByDestination {
		byDest += v
	}
	assert.InDelta(t, sum.Total, byCat, 1e-9)
	assert.InDelta(t, sum.Total, byDest, 1e-9)
	assert.InDelta(t, 412.0, sum.Total, 1e-9)
}

func TestAggregate_EmptyTrip(t *testing.T) {
	// Zero destinations/activities: zero total, empty but non-nil maps.
	sum := itinerary.Aggregate(tripFixture())

	assert.Zero(t, sum.Total)
	assert.NotNil(t, sum.ByCategory)
	assert.NotNil(t, sum.ByDestination)
	assert.Empty(t, sum.ByCategory)
	assert.Empty(t, sum.ByDestination)
}

func TestAggregate_UnknownCategoryFoldsIntoOther(t *testing.T) {
	trip, destID := withParis(3)
	trip, _, err := itinerary.AddActivity(trip, destID, 1, domain.Activity{Name: "Souvenirs", Cost: 40, Category: "knick-knacks"})
	require.NoError(t, err)

	sum := itinerary.Aggregate(trip)

	assert.InDelta(t, 40.0, sum.ByCategory[domain.CategoryOther], 1e-9)
}

func TestSummarize_AddsStayCosts(t *testing.T) {
	trip := parisWithActivities(t) // Paris, 3 days, 322 in activities

	sum := itinerary.Summarize(trip, 100)

	assert.InDelta(t, 622.0, sum.Total, 1e-9)
	assert.InDelta(t, 300.0, sum.ByCategory[domain.CategoryStay], 1e-9)
	assert.InDelta(t, 622.0, sum.ByDestination["Paris"], 1e-9)
}

func TestSummarize_ZeroRateIsPlainAggregate(t *testing.T) {
	trip := parisWithActivities(t)

	assert.Equal(t, itinerary.Aggregate(trip), itinerary.Summarize(trip, 0))
}

func TestBreakdown_RemoteShape(t *testing.T) {
	trip := parisWithActivities(t)
	trip, rome, err := itinerary.AddDestination(trip, "Rome")
	require.NoError(t, err)
	trip, _, err = itinerary.AddActivity(trip, rome.ID, 1, domain.Activity{Name: "Colosseum", Cost: 30})
	require.NoError(t, err)

	rows := itinerary.Breakdown(trip, 50)

	require.Len(t, rows, 2)
	assert.Equal(t, "Paris", rows[0].City)
	assert.Equal(t, 3, rows[0].DurationDays)
	assert.InDelta(t, 150.0, rows[0].StayCost, 1e-9)
	assert.InDelta(t, 322.0, rows[0].ActivitiesCost, 1e-9)
	assert.InDelta(t, 472.0, rows[0].Total, 1e-9)
	assert.Equal(t, "Rome", rows[1].City)
	assert.InDelta(t, 100.0, rows[1].StayCost, 1e-9)
	assert.InDelta(t, 30.0, rows[1].ActivitiesCost, 1e-9)
}

func TestFromBreakdown_NormalizesRemoteBudget(t *testing.T) {
	rows := []domain.DestinationBudget{
		{City: "Paris", DurationDays: 3, StayCost: 9000, ActivitiesCost: 322},
		{City: "Rome", DurationDays: 4, StayCost: 12000, ActivitiesCost: 90},
	}

	sum := itinerary.FromBreakdown(21412, rows)

	assert.InDelta(t, 21412.0, sum.Total, 1e-9)
	assert.InDelta(t, 9322.0, sum.ByDestination["Paris"], 1e-9)
	assert.InDelta(t, 12090.0, sum.ByDestination["Rome"], 1e-9)
	assert.InDelta(t, 21000.0, sum.ByCategory[domain.CategoryStay], 1e-9)
	assert.InDelta(t, 412.0, sum.ByCategory[domain.CategoryOther], 1e-9)

	var byCat, byDest float64
	for _, v := range sum.ByCategory {
		byCat += v
	}
	for _, v := range sum.ByDestination {
		byDest += v
	}
	assert.InDelta(t, sum.Total, byCat, 1e-9)
	assert.InDelta(t, sum.Total, byDest, 1e-9)
}

func TestFromBreakdown_Empty(t *testing.T) {
	sum := itinerary.FromBreakdown(0, nil)

	assert.Zero(t, sum.Total)
	assert.NotNil(t, sum.ByCategory)
	assert.NotNil(t, sum.ByDestination)
}

func TestPercentOfBudget(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		limit float64
		want  int
	}{
		{"normal", 2500, 5000, 50},
		{"rounds", 322, 5000, 6},
		{"clamps at 100", 9000, 5000, 100},
		{"zero limit", 322, 0, 0},
		{"negative limit", 322, -10, 0},
		{"zero total", 0, 5000, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, itinerary.PercentOfBudget(tc.total, tc.limit))
		})
	}
}
