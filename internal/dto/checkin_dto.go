package dto

import "time"

type AnalyzeRequest struct {
	JournalText    string   `json:"journal_text" validate:"required"`
	SleepHours     float64  `json:"sleep_hours" validate:"gte=0,lte=12"`
	ScreenHours    float64  `json:"screen_hours" validate:"gte=0,lte=16"`
	ExerciseLevel  string   `json:"exercise_level" validate:"required,oneof=none light moderate intense"`
	OutdoorMinutes *float64 `json:"outdoor_minutes,omitempty" validate:"omitempty,gte=0,lte=240"`
	// NeutralFallback asks the evaluator to degrade to polarity 0 instead
	// of failing when the sentiment backend is down.
	NeutralFallback bool `json:"neutral_fallback,omitempty"`
}

type AnalyzeResponse struct {
	Polarity     float64   `json:"polarity"`
	Score        float64   `json:"score"`
	Tier         string    `json:"tier"`
	MoodLabel    string    `json:"mood_label"`
	QuizRequired bool      `json:"quiz_required"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}

type HistoryEntryDTO struct {
	Score     float64   `json:"score"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Entries      []HistoryEntryDTO `json:"entries"`
	AverageScore *float64          `json:"average_score,omitempty"`
}
