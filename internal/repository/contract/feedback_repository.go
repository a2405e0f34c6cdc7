package contract

import (
	"context"

	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/repository/specification"
)

type FeedbackRepository interface {
	Create(ctx context.Context, fb *entity.FeedbackEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
