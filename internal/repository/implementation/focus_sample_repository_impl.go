package implementation

import (
	"context"

	"focuscam-be/internal/entity"
	"focuscam-be/internal/mapper"
	"focuscam-be/internal/model"
	"focuscam-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FocusSampleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewFocusSampleRepository(db *gorm.DB) contract.FocusSampleRepository {
	return &FocusSampleRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *FocusSampleRepositoryImpl) CreateBatch(ctx context.Context, samples []*entity.FocusSample) error {
	if len(samples) == 0 {
		return nil
	}
	models := r.mapper.SamplesToModels(samples)
	return r.db.WithContext(ctx).CreateInBatches(models, 500).Error
}

func (r *FocusSampleRepositoryImpl) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.FocusSample, error) {
	var models []*model.FocusSample
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("timestamp ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.SamplesToEntities(models), nil
}
