package dto

import "mindgarden-be/pkg/store"

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	Reply string `json:"reply"`
	// Degraded is set when the backend failed and the reply is the
	// apology fallback.
	Degraded bool `json:"degraded,omitempty"`
}

type ChatHistoryResponse struct {
	Turns []store.ChatTurn `json:"turns"`
}
