package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single entry in a trip's chat log, ordered by CreatedAt.
// The backend only stores and replays messages; delivery and ordering
// guarantees beyond insertion order are out of scope.
type Message struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Sender    string
	Content   string
	CreatedAt time.Time
}
