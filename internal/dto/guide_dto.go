package dto

import "mindgarden-be/pkg/guide"

type GuideResponse struct {
	Tier      string            `json:"tier"`
	Headline  string            `json:"headline"`
	Message   string            `json:"message"`
	Quote     string            `json:"quote"`
	Routine   []guide.TimeBlock `json:"routine,omitempty"`
	Resources []guide.Link      `json:"resources,omitempty"`
	Videos    []guide.VideoPick `json:"videos"`
	Tips      []string          `json:"tips"`
	// QuizAdvice appears once the burnout quiz has been scored.
	QuizAdvice string `json:"quiz_advice,omitempty"`
}
