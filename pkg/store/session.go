package store

import (
	"mindgarden-be/pkg/flow"
	"mindgarden-be/pkg/mood"
)

// ChatTurn is one entry in the session's conversation log.
type ChatTurn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Session is the active in-memory state for one user's walk through the
// wizard. Created on first contact, mutated by each form submission,
// discarded when the cache entry expires. The only state that outlives it
// is the append-only log rows and the relational history.
type Session struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Lifestyle string `json:"lifestyle"`

	Progress flow.Progress `json:"progress"`

	// QuizPending is set when a high-risk check-in forces the burnout quiz
	// before guide content is shown; cleared once the quiz is scored.
	QuizPending bool              `json:"quiz_pending"`
	QuizAnswers map[string]string `json:"quiz_answers,omitempty"`
	QuizResult  *mood.QuizResult  `json:"quiz_result,omitempty"`

	// MoodRecord is the latest analysis. Replaced wholesale on re-analysis,
	// never mutated in place.
	MoodRecord *mood.MoodRecord `json:"mood_record,omitempty"`

	ChatLog []ChatTurn `json:"chat_log,omitempty"`
}
