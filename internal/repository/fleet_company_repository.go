package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type FleetCompanyRepository struct {
	db *gorm.DB
}

func NewFleetCompanyRepository(db *gorm.DB) *FleetCompanyRepository {
	return &FleetCompanyRepository{db: db}
}

type FleetCompanyFilter struct {
	Scope  model.Scope
	Limit  int
	Offset int
}

func (r *FleetCompanyRepository) List(ctx context.Context, filter FleetCompanyFilter) ([]model.FleetCompany, error) {
	query := r.db.WithContext(ctx).Model(&model.FleetCompany{})
	query = applyFleetCompanyScope(query, filter.Scope)

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(500)
	}

	var companies []model.FleetCompany
	if err := query.Order("fleet_companies.created_at DESC").
		Preload("Documents").
		Find(&companies).Error; err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *FleetCompanyRepository) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.FleetCompany, error) {
	query := r.db.WithContext(ctx).Model(&model.FleetCompany{}).Where("fleet_companies.id = ?", id)
	query = applyFleetCompanyScope(query, scope)

	var company model.FleetCompany
	if err := query.
		Preload("Documents").
		Preload("Drivers").
		Preload("Drivers.Documents").
		Preload("Vehicles").
		Preload("Vehicles.Documents").
		First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *FleetCompanyRepository) Create(ctx context.Context, company *model.FleetCompany) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *FleetCompanyRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.FleetCompany{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *FleetCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FleetCompany{}, "id = ?", id).Error
}

func (r *FleetCompanyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReviewStatus, description string) error {
	return r.db.WithContext(ctx).
		Model(&model.FleetCompany{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             status,
			"status_description": description,
		}).Error
}

func applyFleetCompanyScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeFleet:
		if scope.FleetCompanyID == nil {
			return query.Where("1=0")
		}
		return query.Where("fleet_companies.id = ?", *scope.FleetCompanyID)
	default:
		return query.Where("1=0")
	}
}
