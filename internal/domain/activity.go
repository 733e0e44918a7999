package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies an activity's cost for budget breakdowns.
type Category string

// Known categories. The set is open to extension; anything unrecognized
// folds into CategoryOther at the parsing boundary.
const (
	CategorySightseeing Category = "sightseeing"
	CategoryFood        Category = "food"
	CategoryTransport   Category = "transport"
	CategoryShopping    Category = "shopping"
	// CategoryStay covers lodging costs. It is not assignable to individual
	// activities; it exists so per-destination stay costs and normalized
	// remote breakdowns land in the same summary shape as activity costs.
	CategoryStay  Category = "stay"
	CategoryOther Category = "other"
)

// NormalizeCategory maps an arbitrary category string onto a known Category.
// Matching is case-insensitive; blank or unrecognized values become
// CategoryOther so a summary never carries ad-hoc category keys. "stay" is
// deliberately not accepted here: the stay bucket holds computed lodging
// costs only, and a client-tagged activity must not leak into it.
func NormalizeCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySightseeing:
		return CategorySightseeing
	case CategoryFood:
		return CategoryFood
	case CategoryTransport:
		return CategoryTransport
	case CategoryShopping:
		return CategoryShopping
	default:
		return CategoryOther
	}
}

// Activity is a single planned event attached to one day within one
// destination. Time is a 24-hour "HH:MM" string so the view layer can sort
// a day's activities lexically without parsing.
type Activity struct {
	ID       uuid.UUID
	Name     string
	Time     string
	Cost     float64 // always >= 0
	Category Category

	CreatedAt time.Time
}
