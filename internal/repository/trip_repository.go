package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

type TripFilter struct {
	Scope           model.Scope
	TripStatuses    []model.TripStatus
	PaymentStatuses []model.PaymentStatus
	TripTypes       []model.TripType
	DriverID        *uuid.UUID
	VehicleID       *uuid.UUID
	FleetCompanyID  *uuid.UUID
	DateFrom        *time.Time
	DateTo          *time.Time
	Limit           int
	Offset          int
}

func (r *TripRepository) List(ctx context.Context, filter TripFilter) ([]model.Trip, error) {
	query := r.db.WithContext(ctx).Model(&model.Trip{})
	query = applyTripScope(query, filter.Scope)

	if len(filter.TripStatuses) > 0 {
		query = query.Where("trips.trip_status IN ?", filter.TripStatuses)
	}
	if len(filter.PaymentStatuses) > 0 {
		query = query.Where("trips.payment_status IN ?", filter.PaymentStatuses)
	}
	if len(filter.TripTypes) > 0 {
		query = query.Where("trips.trip_type IN ?", filter.TripTypes)
	}
	if filter.DriverID != nil {
		query = query.Where("trips.driver_id = ?", *filter.DriverID)
	}
	if filter.VehicleID != nil {
		query = query.Where("trips.vehicle_id = ?", *filter.VehicleID)
	}
	if filter.FleetCompanyID != nil {
		query = query.Where("trips.fleet_company_id = ?", *filter.FleetCompanyID)
	}
	if filter.DateFrom != nil {
		query = query.Where("COALESCE(trips.start_at, trips.created_at) >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("COALESCE(trips.start_at, trips.created_at) <= ?", *filter.DateTo)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var trips []model.Trip
	if err := query.Order("trips.created_at DESC").
		Preload("Driver").
		Preload("Vehicle").
		Preload("FleetCompany").
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_stops.position ASC")
		}).
		Find(&trips).Error; err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *TripRepository) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.Trip, error) {
	query := r.db.WithContext(ctx).Model(&model.Trip{}).Where("trips.id = ?", id)
	query = applyTripScope(query, scope)

	var trip model.Trip
	if err := query.
		Preload("Driver").
		Preload("Vehicle").
		Preload("Vehicle.Documents").
		Preload("FleetCompany").
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_stops.position ASC")
		}).
		First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) ListByDriver(ctx context.Context, driverID uuid.UUID, limit int) ([]model.Trip, error) {
	if limit <= 0 {
		limit = 50
	}
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("trips.driver_id = ?", driverID).
		Order("trips.created_at DESC").
		Limit(limit).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_stops.position ASC")
		}).
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID, limit int) ([]model.Trip, error) {
	if limit <= 0 {
		limit = 50
	}
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("trips.vehicle_id = ?", vehicleID).
		Order("trips.created_at DESC").
		Limit(limit).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_stops.position ASC")
		}).
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func applyTripScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeFleet:
		if scope.FleetCompanyID == nil {
			return query.Where("1=0")
		}
		return query.Where("trips.fleet_company_id = ?", *scope.FleetCompanyID)
	case model.ScopeDriver:
		if scope.DriverID == nil {
			return query.Where("1=0")
		}
		return query.Where("trips.driver_id = ?", *scope.DriverID)
	default:
		return query.Where("1=0")
	}
}
