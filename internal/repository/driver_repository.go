package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

type DriverFilter struct {
	Scope          model.Scope
	FleetCompanyID *uuid.UUID
	Limit          int
	Offset         int
}

func (r *DriverRepository) List(ctx context.Context, filter DriverFilter) ([]model.Driver, error) {
	query := r.db.WithContext(ctx).Model(&model.Driver{})
	query = applyDriverScope(query, filter.Scope)

	if filter.FleetCompanyID != nil {
		query = query.Where("drivers.fleet_company_id = ?", *filter.FleetCompanyID)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(500)
	}

	var drivers []model.Driver
	if err := query.Order("drivers.created_at DESC").
		Preload("Documents").
		Preload("FleetCompany").
		Find(&drivers).Error; err != nil {
		return nil, err
	}

	return drivers, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.Driver, error) {
	query := r.db.WithContext(ctx).Model(&model.Driver{}).Where("drivers.id = ?", id)
	query = applyDriverScope(query, scope)

	var driver model.Driver
	if err := query.
		Preload("Documents").
		Preload("FleetCompany").
		Preload("Vehicles").
		Preload("Vehicles.Documents").
		Preload("Leaves").
		First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *DriverRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Driver{}, "id = ?", id).Error
}

func (r *DriverRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReviewStatus, description string) error {
	return r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             status,
			"status_description": description,
		}).Error
}

func applyDriverScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeFleet:
		if scope.FleetCompanyID == nil {
			return query.Where("1=0")
		}
		return query.Where("drivers.fleet_company_id = ?", *scope.FleetCompanyID)
	case model.ScopeDriver:
		if scope.DriverID == nil {
			return query.Where("1=0")
		}
		return query.Where("drivers.id = ?", *scope.DriverID)
	default:
		return query.Where("1=0")
	}
}
