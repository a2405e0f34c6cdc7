package service

import (
	"context"
	"strconv"
	"time"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/pkg/logger"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/internal/repository/unitofwork"
	"mindgarden-be/pkg/csvlog"
	"mindgarden-be/pkg/flow"

	"github.com/google/uuid"
)

const feedbackLog = "feedback"

type IFeedbackService interface {
	Submit(ctx context.Context, sessionID string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
}

type feedbackService struct {
	sessions   *memory.SessionRepository
	uowFactory unitofwork.RepositoryFactory
	csv        *csvlog.Appender
	log        logger.ILogger
}

func NewFeedbackService(
	sessions *memory.SessionRepository,
	uowFactory unitofwork.RepositoryFactory,
	csv *csvlog.Appender,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		sessions:   sessions,
		uowFactory: uowFactory,
		csv:        csv,
		log:        log,
	}
}

// Submit appends exactly one feedback row. It never touches the mood
// record or the step locks.
func (s *feedbackService) Submit(ctx context.Context, sessionID string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if !sess.Progress.Unlocked(flow.StepFeedback) {
		return nil, serverutils.NewInvalidTransitionError("the feedback step is still locked")
	}

	name := sess.Name
	if name == "" {
		name = "Anonymous"
	}

	row := []string{name, req.Text, strconv.Itoa(req.Rating), time.Now().Format(time.RFC3339)}
	if err := s.csv.Append(feedbackLog, row); err != nil {
		// Log write failures are reported but never fail the submission.
		s.log.Warn("feedback", "feedback log append failed", map[string]interface{}{"error": err.Error()})
	}

	fb := entity.FeedbackEntry{
		Id:        uuid.New(),
		SessionId: uuid.MustParse(sess.ID),
		Name:      name,
		Text:      req.Text,
		Rating:    req.Rating,
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FeedbackRepository().Create(ctx, &fb); err != nil {
		s.log.Warn("feedback", "feedback row insert failed", map[string]interface{}{"error": err.Error()})
	}

	return &dto.SubmitFeedbackResponse{Id: fb.Id}, nil
}
