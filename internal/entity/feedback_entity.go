package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackEntry is a write-once row; there is no update path.
type FeedbackEntry struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Name      string
	Text      string
	Rating    int
	CreatedAt time.Time
}
