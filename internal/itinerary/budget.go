package itinerary

import (
	"math"

	"github.com/globetrotter/backend/internal/domain"
)

// Aggregate folds every activity across every destination and day into a
// budget summary: a grand total, a per-category breakdown, and a
// per-destination breakdown. Summation is commutative, so iteration order
// does not matter. A trip with no activities yields Total 0 and empty
// (non-nil) maps.
func Aggregate(trip domain.Trip) domain.BudgetSummary {
	sum := domain.NewBudgetSummary()

	for _, dest := range trip.Destinations {
		for _, bucket := range dest.Activities {
			for _, act := range bucket {
				sum.Total += act.Cost
				sum.ByCategory[domain.NormalizeCategory(string(act.Category))] += act.Cost
				sum.ByDestination[dest.Name] += act.Cost
			}
		}
	}

	return sum
}

// Summarize is Aggregate plus optional stay costs: when dailyStayRate is
// positive, each destination contributes DurationDays × rate under the "stay"
// category. With a non-positive rate it is exactly Aggregate.
func Summarize(trip domain.Trip, dailyStayRate float64) domain.BudgetSummary {
	sum := Aggregate(trip)
	if dailyStayRate <= 0 {
		return sum
	}

	for _, dest := range trip.Destinations {
		stay := float64(dest.DurationDays) * dailyStayRate
		sum.Total += stay
		sum.ByCategory[domain.CategoryStay] += stay
		sum.ByDestination[dest.Name] += stay
	}

	return sum
}

// Breakdown produces one row per destination in the remote trip service's
// budget shape: {city, duration_days, stay_cost, activities_cost, total}.
// Stay cost is DurationDays × dailyStayRate (zero when the rate is not
// positive). Row order follows the trip's destination order.
func Breakdown(trip domain.Trip, dailyStayRate float64) []domain.DestinationBudget {
	rows := make([]domain.DestinationBudget, 0, len(trip.Destinations))

	for _, dest := range trip.Destinations {
		var activities float64
		for _, bucket := range dest.Activities {
			for _, act := range bucket {
				activities += act.Cost
			}
		}

		var stay float64
		if dailyStayRate > 0 {
			stay = float64(dest.DurationDays) * dailyStayRate
		}

		rows = append(rows, domain.DestinationBudget{
			City:           dest.Name,
			DurationDays:   dest.DurationDays,
			StayCost:       stay,
			ActivitiesCost: activities,
			Total:          stay + activities,
		})
	}

	return rows
}

// FromBreakdown normalizes a pre-aggregated budget — the remote service's
// {total_budget, breakdown: [...]} response — into the same BudgetSummary
// shape Aggregate produces. The remote rows carry no activity categories, so
// stay costs land under "stay" and activity costs under "other".
func FromBreakdown(totalBudget float64, rows []domain.DestinationBudget) domain.BudgetSummary {
	sum := domain.NewBudgetSummary()
	sum.Total = totalBudget

	for _, row := range rows {
		sum.ByDestination[row.City] += row.StayCost + row.ActivitiesCost
		if row.StayCost != 0 {
			sum.ByCategory[domain.CategoryStay] += row.StayCost
		}
		if row.ActivitiesCost != 0 {
			sum.ByCategory[domain.CategoryOther] += row.ActivitiesCost
		}
	}

	return sum
}

// PercentOfBudget returns total as a whole percentage of limit, rounded and
// clamped to [0, 100]. A zero, negative, or absent limit yields 0 rather
// than dividing by zero.
func PercentOfBudget(total, limit float64) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pct := int(math.Round(total / limit * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
