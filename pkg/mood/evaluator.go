package mood

import (
	"context"
	"strings"
	"time"

	"mindgarden-be/pkg/sentiment"
)

// Tier is the burnout/stress risk level derived from the mood score.
type Tier string

const (
	TierLow      Tier = "low"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// ExerciseLevel is the self-reported daily movement level.
type ExerciseLevel string

const (
	ExerciseNone     ExerciseLevel = "none"
	ExerciseLight    ExerciseLevel = "light"
	ExerciseModerate ExerciseLevel = "moderate"
	ExerciseIntense  ExerciseLevel = "intense"
)

var exerciseScores = map[ExerciseLevel]float64{
	ExerciseNone:     0,
	ExerciseLight:    0.3,
	ExerciseModerate: 0.7,
	ExerciseIntense:  1.0,
}

// Scoring formula. These weights and thresholds are the public contract of
// the evaluator: all downstream content branching keys off the tier they
// produce, so they must never change without versioning the API.
//
//	sleepScore    = min(sleepHours/8, 1)
//	screenPenalty = min(screenHours/10, 1)
//	outdoorScore  = min(outdoorMinutes/120, 1)   (term only when provided)
//	score = 0.4*polarity + 0.3*sleepScore + 0.2*exerciseScore
//	        - 0.2*screenPenalty + 0.15*outdoorScore
//
// Tier: score > 0.4 low, score > 0.1 moderate, otherwise high.
const (
	weightPolarity = 0.4
	weightSleep    = 0.3
	weightExercise = 0.2
	weightScreen   = 0.2
	weightOutdoor  = 0.15

	thresholdLow      = 0.4
	thresholdModerate = 0.1
)

// MoodRecord is the immutable result of one check-in analysis. A new
// analysis produces a new record; it is never mutated afterwards.
type MoodRecord struct {
	JournalText    string        `json:"journal_text"`
	SleepHours     float64       `json:"sleep_hours"`
	ScreenHours    float64       `json:"screen_hours"`
	ExerciseLevel  ExerciseLevel `json:"exercise_level"`
	OutdoorMinutes *float64      `json:"outdoor_minutes,omitempty"`
	Polarity       float64       `json:"polarity"`
	Score          float64       `json:"score"`
	Tier           Tier          `json:"tier"`
	AnalyzedAt     time.Time     `json:"analyzed_at"`
}

// Evaluator turns raw daily check-in inputs into a MoodRecord. Sentiment
// scoring is delegated to the injected provider; everything else is a pure
// function over the inputs.
type Evaluator struct {
	sentiment sentiment.Provider
}

func NewEvaluator(provider sentiment.Provider) *Evaluator {
	return &Evaluator{sentiment: provider}
}

// Evaluate computes the mood score and risk tier for one check-in.
// An empty (or whitespace-only) journal is rejected with ErrEmptyJournal.
// A sentiment backend failure is reported as ErrEvaluationUnavailable;
// the caller decides whether to retry or fall back to neutral polarity.
func (e *Evaluator) Evaluate(ctx context.Context, journal string, sleepHours, screenHours float64, exercise ExerciseLevel, outdoorMinutes *float64) (*MoodRecord, error) {
	if strings.TrimSpace(journal) == "" {
		return nil, ErrEmptyJournal
	}
	if _, ok := exerciseScores[exercise]; !ok {
		return nil, ErrUnknownExerciseLevel
	}

	polarity, err := e.sentiment.Score(ctx, journal)
	if err != nil {
		return nil, ErrEvaluationUnavailable
	}

	return e.record(journal, sleepHours, screenHours, exercise, outdoorMinutes, polarity), nil
}

// EvaluateWithPolarity is the degraded path: the caller supplies the
// polarity (typically 0 after an ErrEvaluationUnavailable) and no sentiment
// call is made. Also the deterministic seam the tests use.
func (e *Evaluator) EvaluateWithPolarity(journal string, sleepHours, screenHours float64, exercise ExerciseLevel, outdoorMinutes *float64, polarity float64) (*MoodRecord, error) {
	if strings.TrimSpace(journal) == "" {
		return nil, ErrEmptyJournal
	}
	if _, ok := exerciseScores[exercise]; !ok {
		return nil, ErrUnknownExerciseLevel
	}
	return e.record(journal, sleepHours, screenHours, exercise, outdoorMinutes, polarity), nil
}

func (e *Evaluator) record(journal string, sleepHours, screenHours float64, exercise ExerciseLevel, outdoorMinutes *float64, polarity float64) *MoodRecord {
	score := Score(polarity, sleepHours, screenHours, exercise, outdoorMinutes)
	return &MoodRecord{
		JournalText:    journal,
		SleepHours:     sleepHours,
		ScreenHours:    screenHours,
		ExerciseLevel:  exercise,
		OutdoorMinutes: outdoorMinutes,
		Polarity:       polarity,
		Score:          score,
		Tier:           TierFor(score),
		AnalyzedAt:     time.Now(),
	}
}

// Score applies the fixed weighted formula documented above.
func Score(polarity, sleepHours, screenHours float64, exercise ExerciseLevel, outdoorMinutes *float64) float64 {
	sleepScore := clamp01(sleepHours / 8)
	screenPenalty := clamp01(screenHours / 10)
	exerciseScore := exerciseScores[exercise]

	score := weightPolarity*polarity +
		weightSleep*sleepScore +
		weightExercise*exerciseScore -
		weightScreen*screenPenalty

	if outdoorMinutes != nil {
		score += weightOutdoor * clamp01(*outdoorMinutes/120)
	}
	return score
}

// TierFor maps a score onto the fixed risk thresholds.
func TierFor(score float64) Tier {
	switch {
	case score > thresholdLow:
		return TierLow
	case score > thresholdModerate:
		return TierModerate
	default:
		return TierHigh
	}
}

// MoodLabel is the coarse valence label shown to the user and fed into the
// chat companion system prompt.
func (r *MoodRecord) MoodLabel() string {
	switch {
	case r.Score > 0.3:
		return "positive"
	case r.Score < -0.3:
		return "negative"
	default:
		return "neutral"
	}
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
