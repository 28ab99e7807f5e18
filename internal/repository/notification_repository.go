package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, role model.UserRole, recipientID uuid.UUID, unreadOnly bool, limit int) ([]model.Notification, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient_role = ? AND recipient_id = ?", role, recipientID)

	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	if limit <= 0 {
		limit = 100
	}

	var notifications []model.Notification
	if err := query.Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, role model.UserRole, recipientID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND recipient_role = ? AND recipient_id = ?", id, role, recipientID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
