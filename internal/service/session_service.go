package service

import (
	"context"
	"strconv"
	"strings"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/pkg/logger"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/internal/repository/unitofwork"
	"mindgarden-be/pkg/csvlog"
	"mindgarden-be/pkg/flow"
	"mindgarden-be/pkg/store"

	"github.com/google/uuid"
)

const userInfoLog = "user_info"

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	Get(ctx context.Context, id string) (*dto.SessionStateResponse, error)
	SubmitProfile(ctx context.Context, id string, req *dto.SubmitProfileRequest) (*dto.SubmitProfileResponse, error)
	Advance(ctx context.Context, id string) (*dto.JumpResponse, error)
	Jump(ctx context.Context, id string, req *dto.JumpRequest) (*dto.JumpResponse, error)
	Restart(ctx context.Context, id string) (*dto.SessionStateResponse, error)
}

type sessionService struct {
	sessions   *memory.SessionRepository
	uowFactory unitofwork.RepositoryFactory
	csv        *csvlog.Appender
	log        logger.ILogger
}

func NewSessionService(
	sessions *memory.SessionRepository,
	uowFactory unitofwork.RepositoryFactory,
	csv *csvlog.Appender,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessions:   sessions,
		uowFactory: uowFactory,
		csv:        csv,
		log:        log,
	}
}

func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sess := &store.Session{
		ID:       uuid.NewString(),
		Progress: flow.NewProgress(),
	}
	s.sessions.Save(sess)

	return &dto.CreateSessionResponse{
		Id:          uuid.MustParse(sess.ID),
		CurrentStep: string(sess.Progress.Current),
		Steps:       stepStates(sess),
	}, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*dto.SessionStateResponse, error) {
	sess, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return stateResponse(sess), nil
}

func (s *sessionService) SubmitProfile(ctx context.Context, id string, req *dto.SubmitProfileRequest) (*dto.SubmitProfileResponse, error) {
	sess, err := s.load(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, serverutils.NewValidationError("please enter your name to continue")
	}

	sess.Name = name
	sess.Age = req.Age
	sess.Gender = req.Gender
	sess.Lifestyle = req.Lifestyle

	// The append-only log row mirrors the session data; failure is logged
	// and the submission still succeeds.
	if err := s.csv.Append(userInfoLog, []string{name, strconv.Itoa(req.Age), req.Gender}); err != nil {
		s.log.Warn("session", "user info log append failed", map[string]interface{}{"error": err.Error()})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user := entity.User{
		Id:        uuid.New(),
		SessionId: uuid.MustParse(sess.ID),
		Name:      name,
		Age:       req.Age,
		Gender:    req.Gender,
		Lifestyle: req.Lifestyle,
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		s.log.Warn("session", "user row insert failed", map[string]interface{}{"error": err.Error()})
	}

	// Completing user info unlocks the mood check; a re-submission from a
	// later step just updates the fields.
	if sess.Progress.Current == flow.StepUserInfo {
		if _, err := sess.Progress.Advance(); err != nil {
			return nil, serverutils.NewInvalidTransitionError("cannot advance from user info")
		}
	}
	s.sessions.Save(sess)

	return &dto.SubmitProfileResponse{
		CurrentStep: string(sess.Progress.Current),
	}, nil
}

func (s *sessionService) Advance(ctx context.Context, id string) (*dto.JumpResponse, error) {
	sess, err := s.load(id)
	if err != nil {
		return nil, err
	}

	// Step-specific completion conditions.
	switch sess.Progress.Current {
	case flow.StepUserInfo:
		if strings.TrimSpace(sess.Name) == "" {
			return nil, serverutils.NewValidationError("please enter your name to continue")
		}
	case flow.StepMoodCheck:
		if sess.MoodRecord == nil {
			return nil, serverutils.NewInvalidTransitionError("analyze your mood before continuing")
		}
	case flow.StepGuide:
		if sess.QuizPending {
			return nil, serverutils.NewAppError(serverutils.KindIncompleteQuiz, "complete the burnout quiz before continuing", nil)
		}
	}

	if _, err := sess.Progress.Advance(); err != nil {
		return nil, serverutils.NewInvalidTransitionError("no further step to advance to")
	}
	s.sessions.Save(sess)

	return &dto.JumpResponse{CurrentStep: string(sess.Progress.Current)}, nil
}

func (s *sessionService) Jump(ctx context.Context, id string, req *dto.JumpRequest) (*dto.JumpResponse, error) {
	sess, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if err := sess.Progress.JumpTo(flow.Step(req.Step)); err != nil {
		if err == flow.ErrUnknownStep {
			return nil, serverutils.NewValidationError("unknown step: " + req.Step)
		}
		return nil, serverutils.NewInvalidTransitionError("step is locked: " + req.Step)
	}
	s.sessions.Save(sess)

	return &dto.JumpResponse{CurrentStep: string(sess.Progress.Current)}, nil
}

func (s *sessionService) Restart(ctx context.Context, id string) (*dto.SessionStateResponse, error) {
	sess, err := s.load(id)
	if err != nil {
		return nil, err
	}

	sess.Progress.Reset()
	sess.MoodRecord = nil
	sess.QuizPending = false
	sess.QuizAnswers = nil
	sess.QuizResult = nil
	sess.ChatLog = nil
	s.sessions.Save(sess)

	return stateResponse(sess), nil
}

func (s *sessionService) load(id string) (*store.Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	return sess, nil
}

func stepStates(sess *store.Session) []dto.StepStateDTO {
	states := make([]dto.StepStateDTO, 0, len(flow.Steps))
	for _, step := range flow.Steps {
		states = append(states, dto.StepStateDTO{
			Step:     string(step),
			Unlocked: sess.Progress.Unlocked(step),
			Current:  sess.Progress.Current == step,
		})
	}
	return states
}

func stateResponse(sess *store.Session) *dto.SessionStateResponse {
	res := &dto.SessionStateResponse{
		Id:          uuid.MustParse(sess.ID),
		Name:        sess.Name,
		CurrentStep: string(sess.Progress.Current),
		HighestStep: string(sess.Progress.Highest),
		QuizPending: sess.QuizPending,
		Steps:       stepStates(sess),
	}
	if sess.MoodRecord != nil {
		res.Tier = string(sess.MoodRecord.Tier)
	}
	return res
}
