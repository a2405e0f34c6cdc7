package entity

import (
	"time"

	"github.com/google/uuid"

	"mindgarden-be/pkg/mood"
)

// CheckIn is one persisted mood analysis. Immutable once written; a
// re-analysis inserts a new row rather than updating this one.
type CheckIn struct {
	Id             uuid.UUID
	SessionId      uuid.UUID
	JournalText    string
	SleepHours     float64
	ScreenHours    float64
	ExerciseLevel  mood.ExerciseLevel
	OutdoorMinutes *float64
	Polarity       float64
	Score          float64
	Tier           mood.Tier
	CreatedAt      time.Time
}
