package domain

// BudgetSummary is the derived cost rollup for a trip. Both maps are always
// non-nil: a trip with no activities yields Total 0 and empty maps, so
// callers can render a "no expenses yet" state without nil checks.
type BudgetSummary struct {
	Total         float64
	ByCategory    map[Category]float64
	ByDestination map[string]float64
}

// NewBudgetSummary returns an empty summary with both maps allocated.
func NewBudgetSummary() BudgetSummary {
	return BudgetSummary{
		ByCategory:    map[Category]float64{},
		ByDestination: map[string]float64{},
	}
}

// DestinationBudget is one row of the per-destination budget breakdown,
// shaped to match the remote trip service's budget response
// ({city, duration_days, stay_cost, activities_cost}).
type DestinationBudget struct {
	City           string
	DurationDays   int
	StayCost       float64
	ActivitiesCost float64
	Total          float64
}
