package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Name      string
	Age       int
	Gender    string
	Lifestyle string
	CreatedAt time.Time
}
