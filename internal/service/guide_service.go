package service

import (
	"context"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/pkg/flow"
	"mindgarden-be/pkg/guide"
)

type IGuideService interface {
	Get(ctx context.Context, sessionID string) (*dto.GuideResponse, error)
}

type guideService struct {
	sessions *memory.SessionRepository
}

func NewGuideService(sessions *memory.SessionRepository) IGuideService {
	return &guideService{sessions: sessions}
}

// Get renders the tier-selected content tables. All branching is data
// lookup; the one piece of logic is the quiz gate for high-risk sessions.
func (s *guideService) Get(ctx context.Context, sessionID string) (*dto.GuideResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if !sess.Progress.Unlocked(flow.StepGuide) {
		return nil, serverutils.NewInvalidTransitionError("the wellness guide is still locked")
	}
	if sess.MoodRecord == nil {
		return nil, serverutils.NewInvalidTransitionError("analyze your mood to unlock the guide")
	}
	if sess.QuizPending {
		return nil, serverutils.NewAppError(serverutils.KindIncompleteQuiz, "complete the burnout quiz to see your guide", nil)
	}

	content := guide.ForTier(sess.MoodRecord.Tier)
	res := &dto.GuideResponse{
		Tier:      string(content.Tier),
		Headline:  content.Headline,
		Message:   content.Message,
		Quote:     content.Quote,
		Routine:   content.Routine,
		Resources: content.Resources,
		Videos:    guide.Videos(),
		Tips:      guide.TipsFor(sess.Gender),
	}
	if sess.QuizResult != nil {
		res.QuizAdvice = guide.BucketAdvice[sess.QuizResult.Bucket]
	}
	return res, nil
}
