package dto

import "github.com/google/uuid"

type SubmitFeedbackRequest struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}

type SubmitFeedbackResponse struct {
	Id uuid.UUID `json:"id"`
}
