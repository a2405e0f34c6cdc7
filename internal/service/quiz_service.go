package service

import (
	"context"
	"errors"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/pkg/guide"
	"mindgarden-be/pkg/mood"
)

type IQuizService interface {
	Questions(ctx context.Context) *dto.QuizQuestionsResponse
	Submit(ctx context.Context, sessionID string, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error)
}

type quizService struct {
	sessions *memory.SessionRepository
}

func NewQuizService(sessions *memory.SessionRepository) IQuizService {
	return &quizService{sessions: sessions}
}

func (s *quizService) Questions(ctx context.Context) *dto.QuizQuestionsResponse {
	questions := mood.QuizQuestions()
	res := &dto.QuizQuestionsResponse{Questions: make([]dto.QuizQuestionDTO, 0, len(questions))}
	for _, q := range questions {
		res.Questions = append(res.Questions, dto.QuizQuestionDTO{
			Id:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return res
}

func (s *quizService) Submit(ctx context.Context, sessionID string, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	// The quiz only exists as the high-risk sub-step.
	if sess.MoodRecord == nil || sess.MoodRecord.Tier != mood.TierHigh {
		return nil, serverutils.NewInvalidTransitionError("the burnout quiz is only offered after a high-risk mood check")
	}

	result, err := mood.ScoreQuiz(req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, mood.ErrIncompleteQuiz):
			return nil, serverutils.NewAppError(serverutils.KindIncompleteQuiz, "please answer all quiz questions", err)
		case errors.Is(err, mood.ErrUnknownQuizAnswer):
			return nil, serverutils.NewValidationError("unknown quiz answer")
		default:
			return nil, err
		}
	}

	sess.QuizAnswers = req.Answers
	sess.QuizResult = result
	sess.QuizPending = false
	s.sessions.Save(sess)

	return &dto.QuizResultResponse{
		Total:  result.Total,
		Bucket: string(result.Bucket),
		Advice: guide.BucketAdvice[result.Bucket],
	}, nil
}
