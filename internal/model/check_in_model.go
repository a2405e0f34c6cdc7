package model

import (
	"time"

	"github.com/google/uuid"
)

type CheckIn struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	JournalText    string    `gorm:"type:text;not null"`
	SleepHours     float64   `gorm:"not null"`
	ScreenHours    float64   `gorm:"not null"`
	ExerciseLevel  string    `gorm:"type:text;not null"`
	OutdoorMinutes *float64
	Polarity       float64   `gorm:"not null"`
	Score          float64   `gorm:"not null"`
	Tier           string    `gorm:"type:text;not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}
