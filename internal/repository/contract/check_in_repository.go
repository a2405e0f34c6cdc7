package contract

import (
	"context"

	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/repository/specification"
)

type CheckInRepository interface {
	Create(ctx context.Context, checkIn *entity.CheckIn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckIn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// AverageScore computes the mean mood score over the matching rows;
	// ok is false when no rows match.
	AverageScore(ctx context.Context, specs ...specification.Specification) (avg float64, ok bool, err error)
}
