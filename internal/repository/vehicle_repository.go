package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type VehicleFilter struct {
	Scope          model.Scope
	DriverID       *uuid.UUID
	FleetCompanyID *uuid.UUID
	Limit          int
	Offset         int
}

func (r *VehicleRepository) List(ctx context.Context, filter VehicleFilter) ([]model.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})
	query = applyVehicleScope(query, filter.Scope)

	if filter.DriverID != nil {
		query = query.Where("vehicles.driver_id = ?", *filter.DriverID)
	}
	if filter.FleetCompanyID != nil {
		query = query.Where("vehicles.fleet_company_id = ?", *filter.FleetCompanyID)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(500)
	}

	var vehicles []model.Vehicle
	if err := query.Order("vehicles.created_at DESC").
		Preload("Documents").
		Preload("Driver").
		Preload("FleetCompany").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}

	return vehicles, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&model.Vehicle{}).Where("vehicles.id = ?", id)
	query = applyVehicleScope(query, scope)

	var vehicle model.Vehicle
	if err := query.
		Preload("Documents").
		Preload("Driver").
		Preload("FleetCompany").
		First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id).Error
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReviewStatus, description string) error {
	return r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             status,
			"status_description": description,
		}).Error
}

func applyVehicleScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeFleet:
		if scope.FleetCompanyID == nil {
			return query.Where("1=0")
		}
		return query.Where("vehicles.fleet_company_id = ?", *scope.FleetCompanyID)
	case model.ScopeDriver:
		if scope.DriverID == nil {
			return query.Where("1=0")
		}
		return query.Where("vehicles.driver_id = ?", *scope.DriverID)
	default:
		return query.Where("1=0")
	}
}
