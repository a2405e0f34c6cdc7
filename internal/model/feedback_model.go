package model

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackEntry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"type:text"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (FeedbackEntry) TableName() string {
	return "feedback_entries"
}
