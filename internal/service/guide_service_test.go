package service

import (
	"context"
	"testing"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideLockedBeforeAnalysis(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: 0.8})
	guideSvc := NewGuideService(f.sessions)
	ctx := context.Background()
	id := f.readySession(t)

	_, err := guideSvc.Get(ctx, id)
	assertKind(t, err, serverutils.KindInvalidTransition)
}

func TestGuideForLowRisk(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: 0.8})
	guideSvc := NewGuideService(f.sessions)
	ctx := context.Background()
	id := f.readySession(t)

	_, err := f.checkIn.Analyze(ctx, id, goodDay())
	require.NoError(t, err)

	res, err := guideSvc.Get(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "low", res.Tier)
	assert.NotEmpty(t, res.Headline)
	assert.NotEmpty(t, res.Message)
	assert.NotEmpty(t, res.Videos)
	assert.NotEmpty(t, res.Tips)
	assert.Empty(t, res.QuizAdvice)
}

func TestGuideBlockedByPendingQuiz(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: -0.9})
	guideSvc := NewGuideService(f.sessions)
	ctx := context.Background()
	id := highRiskSession(t, f)

	_, err := guideSvc.Get(ctx, id)
	assertKind(t, err, serverutils.KindIncompleteQuiz)
}

func TestGuideAfterQuizIncludesAdvice(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: -0.9})
	guideSvc := NewGuideService(f.sessions)
	quiz := NewQuizService(f.sessions)
	ctx := context.Background()
	id := highRiskSession(t, f)

	_, err := quiz.Submit(ctx, id, &dto.SubmitQuizRequest{Answers: fullAnswers(2)})
	require.NoError(t, err)

	res, err := guideSvc.Get(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "high", res.Tier)
	assert.NotEmpty(t, res.Routine)
	assert.NotEmpty(t, res.QuizAdvice)
}
