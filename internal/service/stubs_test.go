package service

import (
	"context"
	"errors"
	"testing"

	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/repository/contract"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/internal/repository/specification"
	"mindgarden-be/internal/repository/unitofwork"
	"mindgarden-be/pkg/csvlog"
	"mindgarden-be/pkg/llm"

	"github.com/stretchr/testify/require"
)

// --- logger ---

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// --- sentiment ---

type fixedSentiment struct {
	polarity float64
	err      error
}

func (f *fixedSentiment) Score(ctx context.Context, text string) (float64, error) {
	return f.polarity, f.err
}

// --- llm ---

type failingLLM struct{}

func (failingLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", errors.New("connection refused")
}

func (failingLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return "", errors.New("connection refused")
}

type echoLLM struct{}

func (echoLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "echo: " + history[len(history)-1].Content, nil
}

func (echoLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return "echo: " + prompt, nil
}

// --- repositories (in-memory, specifications ignored) ---

type memUserRepo struct {
	rows []*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.rows = append(r.rows, user)
	return nil
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if len(r.rows) == 0 {
		return nil, errors.New("not found")
	}
	return r.rows[0], nil
}

func (r *memUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.rows, nil
}

func (r *memUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type memCheckInRepo struct {
	rows    []*entity.CheckIn
	failing bool
}

func (r *memCheckInRepo) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	if r.failing {
		return errors.New("insert failed")
	}
	r.rows = append(r.rows, checkIn)
	return nil
}

func (r *memCheckInRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckIn, error) {
	return r.rows, nil
}

func (r *memCheckInRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *memCheckInRepo) AverageScore(ctx context.Context, specs ...specification.Specification) (float64, bool, error) {
	if len(r.rows) == 0 {
		return 0, false, nil
	}
	sum := 0.0
	for _, row := range r.rows {
		sum += row.Score
	}
	return sum / float64(len(r.rows)), true, nil
}

type memFeedbackRepo struct {
	rows []*entity.FeedbackEntry
}

func (r *memFeedbackRepo) Create(ctx context.Context, fb *entity.FeedbackEntry) error {
	r.rows = append(r.rows, fb)
	return nil
}

func (r *memFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackEntry, error) {
	return r.rows, nil
}

func (r *memFeedbackRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

// --- unit of work ---

type memUow struct {
	users    *memUserRepo
	checkIns *memCheckInRepo
	feedback *memFeedbackRepo
}

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { return nil }
func (u *memUow) Rollback() error                 { return nil }

func (u *memUow) UserRepository() contract.UserRepository         { return u.users }
func (u *memUow) CheckInRepository() contract.CheckInRepository   { return u.checkIns }
func (u *memUow) FeedbackRepository() contract.FeedbackRepository { return u.feedback }

type memUowFactory struct {
	uow *memUow
}

func newMemUowFactory() *memUowFactory {
	return &memUowFactory{uow: &memUow{
		users:    &memUserRepo{},
		checkIns: &memCheckInRepo{},
		feedback: &memFeedbackRepo{},
	}}
}

func (f *memUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// --- shared fixtures ---

func newTestAppender(t *testing.T) *csvlog.Appender {
	t.Helper()
	a, err := csvlog.NewAppender(t.TempDir())
	require.NoError(t, err)
	return a
}

func newTestSessions() *memory.SessionRepository {
	return memory.NewSessionRepository()
}
