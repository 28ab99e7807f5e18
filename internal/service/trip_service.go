package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

// TripService exposes completed and in-flight trips for the back office.
// Trips are written by the ride pipeline, never here, so the surface is
// read-only.
type TripService struct {
	tripRepo *repository.TripRepository
}

func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

type TripListOptions struct {
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

func (s *TripService) List(ctx context.Context, principal model.Principal, opts TripListOptions) ([]model.Trip, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	return s.tripRepo.List(ctx, repository.TripFilter{
		Scope:           scope,
		TripStatuses:    opts.TripStatuses,
		PaymentStatuses: opts.PaymentStatuses,
		TripTypes:       opts.TripTypes,
		DriverID:        opts.DriverID,
		VehicleID:       opts.VehicleID,
		FleetCompanyID:  opts.FleetCompanyID,
		DateFrom:        opts.DateFrom,
		DateTo:          opts.DateTo,
		Limit:           opts.Limit,
		Offset:          opts.Offset,
	})
}

func (s *TripService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Trip, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	trip, err := s.tripRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if trip.Stops == nil {
		trip.Stops = []model.TripStop{}
	}
	return trip, nil
}
