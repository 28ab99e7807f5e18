package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type StatusLogRepository struct {
	db *gorm.DB
}

func NewStatusLogRepository(db *gorm.DB) *StatusLogRepository {
	return &StatusLogRepository{db: db}
}

func (r *StatusLogRepository) LogStatusChange(ctx context.Context, logEntry *model.StatusLog) error {
	return r.db.WithContext(ctx).Create(logEntry).Error
}

func (r *StatusLogRepository) ListByEntity(ctx context.Context, entityType model.ReviewEntityType, entityID uuid.UUID) ([]model.StatusLog, error) {
	var entries []model.StatusLog
	if err := r.db.WithContext(ctx).
		Model(&model.StatusLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
