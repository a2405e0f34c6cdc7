package implementation

import (
	"context"

	"mindgarden-be/internal/entity"
	"mindgarden-be/internal/mapper"
	"mindgarden-be/internal/model"
	"mindgarden-be/internal/repository/contract"
	"mindgarden-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CheckInRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewCheckInRepository(db *gorm.DB) contract.CheckInRepository {
	return &CheckInRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *CheckInRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CheckInRepositoryImpl) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	m := r.mapper.CheckInToModel(checkIn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*checkIn = *r.mapper.CheckInToEntity(m)
	return nil
}

func (r *CheckInRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckIn, error) {
	var models []*model.CheckIn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CheckIn, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CheckInToEntity(m)
	}
	return entities, nil
}

func (r *CheckInRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CheckIn{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CheckInRepositoryImpl) AverageScore(ctx context.Context, specs ...specification.Specification) (float64, bool, error) {
	var avg *float64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CheckIn{}), specs...)
	if err := query.Select("AVG(score)").Scan(&avg).Error; err != nil {
		return 0, false, err
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}
