package service

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitFeedbackAppendsOneRow(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: 0.8})
	appender := newTestAppender(t)
	feedback := NewFeedbackService(f.sessions, f.factory, appender, noopLogger{})
	chat := NewChatService(f.sessions, echoLLM{}, noopLogger{})
	ctx := context.Background()

	id := chatReadySession(t, f)
	_, err := chat.Send(ctx, id, &dto.SendChatRequest{Message: "thanks"})
	require.NoError(t, err)
	_, err = f.session.Advance(ctx, id) // chat -> feedback
	require.NoError(t, err)

	res, err := feedback.Submit(ctx, id, &dto.SubmitFeedbackRequest{Text: "really helped today", Rating: 5})
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", res.Id.String())

	file, err := os.Open(appender.Path("feedback"))
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Maya", rows[0][0])
	assert.Equal(t, "really helped today", rows[0][1])
	assert.Equal(t, "5", rows[0][2])

	require.Len(t, f.factory.uow.feedback.rows, 1)
	assert.Equal(t, 5, f.factory.uow.feedback.rows[0].Rating)
}

func TestSubmitFeedbackDoesNotTouchMoodOrLocks(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: 0.8})
	feedback := NewFeedbackService(f.sessions, f.factory, newTestAppender(t), noopLogger{})
	ctx := context.Background()

	id := chatReadySession(t, f)
	_, err := f.session.Advance(ctx, id)
	require.NoError(t, err)

	before, err := f.session.Get(ctx, id)
	require.NoError(t, err)

	_, err = feedback.Submit(ctx, id, &dto.SubmitFeedbackRequest{Text: "ok", Rating: 3})
	require.NoError(t, err)

	after, err := f.session.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.Tier, after.Tier)
	assert.Equal(t, before.CurrentStep, after.CurrentStep)
	assert.Equal(t, before.HighestStep, after.HighestStep)
}

func TestSubmitFeedbackWhileLockedIsRejected(t *testing.T) {
	f := newCheckInFixture(t, &fixedSentiment{polarity: 0.8})
	feedback := NewFeedbackService(f.sessions, f.factory, newTestAppender(t), noopLogger{})
	ctx := context.Background()
	id := f.readySession(t)

	_, err := feedback.Submit(ctx, id, &dto.SubmitFeedbackRequest{Text: "nope", Rating: 1})
	assertKind(t, err, serverutils.KindInvalidTransition)
}
