package service

import (
	"context"
	"testing"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/pkg/mood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// highRiskSession walks a session through profile and a high-risk analysis.
func highRiskSession(t *testing.T, f *checkInFixture) string {
	t.Helper()
	ctx := context.Background()
	id := f.readySession(t)

	req := goodDay()
	req.SleepHours = 2
	req.ScreenHours = 12
	req.ExerciseLevel = "none"
	res, err := f.checkIn.Analyze(ctx, id, req)
	require.NoError(t, err)
	require.Equal(t, "high", res.Tier)
	return id
}

func fullAnswers(optionIdx int) map[string]string {
	answers := make(map[string]string)
	for _, q := range mood.QuizQuestions() {
		answers[q.ID] = q.Options[optionIdx]
	}
	return answers
}

func TestQuestionsReturnsFixedSet(t *testing.T) {
	svc := NewQuizService(newTestSessions())

	res := svc.Questions(context.Background())
	require.Len(t, res.Questions, 5)
	assert.Equal(t, "sleep_quality", res.Questions[0].Id)
	for _, q := range res.Questions {
		assert.Len(t, q.Options, 3)
	}
}

func TestSubmitClearsQuizGate(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: -0.9})
	quiz := NewQuizService(f.sessions)
	ctx := context.Background()
	id := highRiskSession(t, f)

	res, err := quiz.Submit(ctx, id, &dto.SubmitQuizRequest{Answers: fullAnswers(2)})
	require.NoError(t, err)

	assert.Equal(t, 10, res.Total)
	assert.Equal(t, "professional_support", res.Bucket)
	assert.NotEmpty(t, res.Advice)

	state, err := f.session.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, state.QuizPending)
}

func TestSubmitWithoutHighRiskIsRejected(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: 0.8})
	quiz := NewQuizService(f.sessions)
	ctx := context.Background()
	id := f.readySession(t)

	_, err := f.checkIn.Analyze(ctx, id, goodDay())
	require.NoError(t, err)

	_, err = quiz.Submit(ctx, id, &dto.SubmitQuizRequest{Answers: fullAnswers(0)})
	assertKind(t, err, serverutils.KindInvalidTransition)
}

func TestSubmitIncompleteAnswers(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: -0.9})
	quiz := NewQuizService(f.sessions)
	ctx := context.Background()
	id := highRiskSession(t, f)

	answers := fullAnswers(1)
	delete(answers, "motivation")

	_, err := quiz.Submit(ctx, id, &dto.SubmitQuizRequest{Answers: answers})
	assertKind(t, err, serverutils.KindIncompleteQuiz)

	// The gate stays armed after a failed submission.
	state, err := f.session.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.QuizPending)
}

func TestSubmitUnknownAnswerLabel(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: -0.9})
	quiz := NewQuizService(f.sessions)
	ctx := context.Background()
	id := highRiskSession(t, f)

	answers := fullAnswers(0)
	answers["energy"] = "Supercharged"

	_, err := quiz.Submit(ctx, id, &dto.SubmitQuizRequest{Answers: answers})
	assertKind(t, err, serverutils.KindValidation)
}
