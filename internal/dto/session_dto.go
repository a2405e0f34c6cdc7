package dto

import (
	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id          uuid.UUID      `json:"id"`
	CurrentStep string         `json:"current_step"`
	Steps       []StepStateDTO `json:"steps"`
}

// StepStateDTO tells the client which sidebar entries render as locked.
type StepStateDTO struct {
	Step     string `json:"step"`
	Unlocked bool   `json:"unlocked"`
	Current  bool   `json:"current"`
}

type SessionStateResponse struct {
	Id          uuid.UUID      `json:"id"`
	Name        string         `json:"name,omitempty"`
	CurrentStep string         `json:"current_step"`
	HighestStep string         `json:"highest_step"`
	QuizPending bool           `json:"quiz_pending"`
	Tier        string         `json:"tier,omitempty"`
	Steps       []StepStateDTO `json:"steps"`
}

type SubmitProfileRequest struct {
	Name      string `json:"name" validate:"required"`
	Age       int    `json:"age" validate:"required,gte=10,lte=100"`
	Gender    string `json:"gender" validate:"required,oneof=male female other prefer_not_to_say"`
	Lifestyle string `json:"lifestyle" validate:"omitempty,oneof=student employed self_employed unemployed retired"`
}

type SubmitProfileResponse struct {
	CurrentStep string `json:"current_step"`
}

type JumpRequest struct {
	Step string `json:"step" validate:"required"`
}

type JumpResponse struct {
	CurrentStep string `json:"current_step"`
}
