package memory

import (
	"testing"

	"mindgarden-be/pkg/flow"
	"mindgarden-be/pkg/mood"
	"mindgarden-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGetRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	sess := &store.Session{
		ID:       "a2b9d8f0-6c3e-4f1a-9d2b-1e5f7a8c9b0d",
		Name:     "Maya",
		Progress: flow.NewProgress(),
		QuizAnswers: map[string]string{
			"sleep_quality": "Broken",
			"energy":        "Dips often",
		},
		QuizResult: &mood.QuizResult{Total: 5, Bucket: mood.BucketIntensive},
	}
	repo.Save(sess)

	got, ok := repo.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "Maya", got.Name)
	assert.Equal(t, sess.QuizAnswers, got.QuizAnswers)
	require.NotNil(t, got.QuizResult)
	assert.Equal(t, mood.BucketIntensive, got.QuizResult.Bucket)
}

func TestGetMissingSession(t *testing.T) {
	repo := NewSessionRepository()

	_, ok := repo.Get("nope")
	assert.False(t, ok)
}

func TestDeleteRemovesSession(t *testing.T) {
	repo := NewSessionRepository()

	sess := &store.Session{ID: "x", Progress: flow.NewProgress()}
	repo.Save(sess)
	repo.Delete("x")

	_, ok := repo.Get("x")
	assert.False(t, ok)
}
