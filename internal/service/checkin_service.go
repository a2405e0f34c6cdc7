package service

import (
	"context"
	"errors"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/pkg/logger"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/internal/repository/specification"
	"mindgarden-be/internal/repository/unitofwork"
	"mindgarden-be/pkg/flow"
	"mindgarden-be/pkg/mood"

	"github.com/google/uuid"
)

type ICheckInService interface {
	Analyze(ctx context.Context, sessionID string, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
	History(ctx context.Context, sessionID string) (*dto.HistoryResponse, error)
}

type checkInService struct {
	sessions   *memory.SessionRepository
	evaluator  *mood.Evaluator
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewCheckInService(
	sessions *memory.SessionRepository,
	evaluator *mood.Evaluator,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) ICheckInService {
	return &checkInService{
		sessions:   sessions,
		evaluator:  evaluator,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *checkInService) Analyze(ctx context.Context, sessionID string, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if !sess.Progress.Unlocked(flow.StepMoodCheck) {
		return nil, serverutils.NewInvalidTransitionError("mood check is locked - submit your details first")
	}

	record, err := s.evaluator.Evaluate(ctx, req.JournalText, req.SleepHours, req.ScreenHours,
		mood.ExerciseLevel(req.ExerciseLevel), req.OutdoorMinutes)
	if err != nil {
		switch {
		case errors.Is(err, mood.ErrEmptyJournal):
			return nil, serverutils.NewValidationError("please write something in your journal to analyze")
		case errors.Is(err, mood.ErrUnknownExerciseLevel):
			return nil, serverutils.NewValidationError("unknown exercise level")
		case errors.Is(err, mood.ErrEvaluationUnavailable) && req.NeutralFallback:
			record, err = s.evaluator.EvaluateWithPolarity(req.JournalText, req.SleepHours, req.ScreenHours,
				mood.ExerciseLevel(req.ExerciseLevel), req.OutdoorMinutes, 0)
			if err != nil {
				return nil, serverutils.NewAppError(serverutils.KindEvaluationUnavailable, "mood analysis is unavailable right now", err)
			}
			s.log.Warn("checkin", "sentiment backend down, using neutral polarity", nil)
		case errors.Is(err, mood.ErrEvaluationUnavailable):
			return nil, serverutils.NewAppError(serverutils.KindEvaluationUnavailable, "mood analysis is unavailable right now, please retry", err)
		default:
			return nil, err
		}
	}

	// A fresh analysis replaces the session's record wholesale and
	// re-arms the quiz gate for high-risk results.
	sess.MoodRecord = record
	sess.QuizPending = record.Tier == mood.TierHigh && sess.QuizResult == nil
	if sess.Progress.Current == flow.StepMoodCheck {
		if _, err := sess.Progress.Advance(); err != nil {
			return nil, serverutils.NewInvalidTransitionError("cannot advance past mood check")
		}
	}
	s.sessions.Save(sess)

	// History row; failure must not fail the analysis.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	row := entity.CheckIn{
		Id:             uuid.New(),
		SessionId:      uuid.MustParse(sess.ID),
		JournalText:    record.JournalText,
		SleepHours:     record.SleepHours,
		ScreenHours:    record.ScreenHours,
		ExerciseLevel:  record.ExerciseLevel,
		OutdoorMinutes: record.OutdoorMinutes,
		Polarity:       record.Polarity,
		Score:          record.Score,
		Tier:           record.Tier,
	}
	if err := uow.CheckInRepository().Create(ctx, &row); err != nil {
		s.log.Warn("checkin", "history row insert failed", map[string]interface{}{"error": err.Error()})
	}

	return &dto.AnalyzeResponse{
		Polarity:     record.Polarity,
		Score:        record.Score,
		Tier:         string(record.Tier),
		MoodLabel:    record.MoodLabel(),
		QuizRequired: sess.QuizPending,
		AnalyzedAt:   record.AnalyzedAt,
	}, nil
}

func (s *checkInService) History(ctx context.Context, sessionID string) (*dto.HistoryResponse, error) {
	if _, ok := s.sessions.Get(sessionID); !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, serverutils.NewValidationError("invalid session id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.CheckInRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sid},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewAppError(serverutils.KindPersistence, "could not load check-in history", err)
	}

	res := &dto.HistoryResponse{Entries: make([]dto.HistoryEntryDTO, 0, len(rows))}
	for _, row := range rows {
		res.Entries = append(res.Entries, dto.HistoryEntryDTO{
			Score:     row.Score,
			Tier:      string(row.Tier),
			CreatedAt: row.CreatedAt,
		})
	}

	avg, ok, err := uow.CheckInRepository().AverageScore(ctx, specification.BySessionID{SessionID: sid})
	if err != nil {
		s.log.Warn("checkin", "average score query failed", map[string]interface{}{"error": err.Error()})
	} else if ok {
		res.AverageScore = &avg
	}

	return res, nil
}
