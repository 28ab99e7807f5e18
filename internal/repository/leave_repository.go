package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]model.DriverLeave, error) {
	var leaves []model.DriverLeave
	if err := r.db.WithContext(ctx).
		Model(&model.DriverLeave{}).
		Where("driver_id = ?", driverID).
		Order("leave_start DESC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.DriverLeave, error) {
	var leave model.DriverLeave
	if err := r.db.WithContext(ctx).
		First(&leave, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *LeaveRepository) Create(ctx context.Context, leave *model.DriverLeave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *LeaveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DriverLeave{}, "id = ?", id).Error
}
