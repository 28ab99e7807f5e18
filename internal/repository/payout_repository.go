package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

type PayoutFilter struct {
	Scope    model.Scope
	Statuses []model.PayoutStatus
	DriverID *uuid.UUID
	Limit    int
	Offset   int
}

func (r *PayoutRepository) List(ctx context.Context, filter PayoutFilter) ([]model.Payout, error) {
	query := r.db.WithContext(ctx).Model(&model.Payout{})
	query = applyPayoutScope(query, filter.Scope)

	if len(filter.Statuses) > 0 {
		query = query.Where("payouts.status IN ?", filter.Statuses)
	}
	if filter.DriverID != nil {
		query = query.Where("payouts.driver_id = ?", *filter.DriverID)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var payouts []model.Payout
	if err := query.Order("payouts.created_at DESC").
		Preload("Driver").
		Preload("FleetCompany").
		Find(&payouts).Error; err != nil {
		return nil, err
	}
	return payouts, nil
}

func (r *PayoutRepository) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.Payout, error) {
	query := r.db.WithContext(ctx).Model(&model.Payout{}).Where("payouts.id = ?", id)
	query = applyPayoutScope(query, scope)

	var payout model.Payout
	if err := query.
		Preload("Driver").
		Preload("FleetCompany").
		First(&payout).Error; err != nil {
		return nil, err
	}
	return &payout, nil
}

func (r *PayoutRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Payout{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       model.PayoutStatusCompleted,
			"completed_at": time.Now(),
		}).Error
}

func applyPayoutScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeFleet:
		if scope.FleetCompanyID == nil {
			return query.Where("1=0")
		}
		return query.Where("payouts.fleet_company_id = ?", *scope.FleetCompanyID)
	case model.ScopeDriver:
		if scope.DriverID == nil {
			return query.Where("1=0")
		}
		return query.Where("payouts.driver_id = ?", *scope.DriverID)
	default:
		return query.Where("1=0")
	}
}
