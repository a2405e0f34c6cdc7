package mood

import "errors"

var (
	// ErrEmptyJournal rejects a check-in whose journal is empty after
	// trimming whitespace. Validation failure, not a computed tier.
	ErrEmptyJournal = errors.New("journal text is empty")

	// ErrUnknownExerciseLevel rejects an exercise level outside the fixed
	// ordinal set.
	ErrUnknownExerciseLevel = errors.New("unknown exercise level")

	// ErrEvaluationUnavailable signals a sentiment backend failure. The
	// caller may retry or degrade to a neutral polarity of 0.
	ErrEvaluationUnavailable = errors.New("sentiment evaluation unavailable")

	// ErrIncompleteQuiz signals that not all quiz questions were answered.
	ErrIncompleteQuiz = errors.New("quiz answers incomplete")

	// ErrUnknownQuizAnswer rejects an answer label outside a question's
	// ordinal set.
	ErrUnknownQuizAnswer = errors.New("unknown quiz answer label")
)
