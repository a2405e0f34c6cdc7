package unitofwork

import (
	"context"

	"mindgarden-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CheckInRepository() contract.CheckInRepository
	FeedbackRepository() contract.FeedbackRepository
}
