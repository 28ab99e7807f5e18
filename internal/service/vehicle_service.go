package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet-service/internal/expiry"
	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type VehicleService struct {
	vehicleRepo   *repository.VehicleRepository
	tripRepo      *repository.TripRepository
	statusLogRepo *repository.StatusLogRepository
	notifications *NotificationService
}

func NewVehicleService(
	vehicleRepo *repository.VehicleRepository,
	tripRepo *repository.TripRepository,
	statusLogRepo *repository.StatusLogRepository,
	notifications *NotificationService,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:   vehicleRepo,
		tripRepo:      tripRepo,
		statusLogRepo: statusLogRepo,
		notifications: notifications,
	}
}

type VehicleListOptions struct {
	Search         string
	Status         model.ReviewStatus
	DocumentFilter DocumentFilter
	DriverID       *uuid.UUID
	FleetCompanyID *uuid.UUID
	Limit          int
	Offset         int
}

func (s *VehicleService) List(ctx context.Context, principal model.Principal, opts VehicleListOptions) ([]model.VehicleRecord, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	vehicles, err := s.vehicleRepo.List(ctx, repository.VehicleFilter{
		Scope:          scope,
		DriverID:       opts.DriverID,
		FleetCompanyID: opts.FleetCompanyID,
		Limit:          opts.Limit,
		Offset:         opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	return filterVehicleRecords(vehicles, opts, time.Now()), nil
}

func filterVehicleRecords(vehicles []model.Vehicle, opts VehicleListOptions, today time.Time) []model.VehicleRecord {
	records := make([]model.VehicleRecord, 0, len(vehicles))
	for _, vehicle := range vehicles {
		summary := expiry.Summarize(documentExpiries(vehicle.Documents), today)
		if !matchesSearch(opts.Search, vehicle.PlateNumber, vehicle.Brand, vehicle.Model, vehicle.Color) {
			continue
		}
		if !matchesStatus(vehicle.Status, opts.Status) {
			continue
		}
		if !matchesDocumentFilter(summary, opts.DocumentFilter) {
			continue
		}
		vehicle.Status = model.NormalizeReviewStatus(vehicle.Status)
		records = append(records, model.VehicleRecord{Vehicle: vehicle, Documents: summary})
	}
	return records
}

func (s *VehicleService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.VehicleDetails, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	trips, err := s.tripRepo.ListByVehicle(ctx, vehicle.ID, 50)
	if err != nil {
		return nil, err
	}

	vehicle.Status = model.NormalizeReviewStatus(vehicle.Status)
	if vehicle.Documents == nil {
		vehicle.Documents = []model.Document{}
	}

	return &model.VehicleDetails{
		Record: model.VehicleRecord{
			Vehicle:   *vehicle,
			Documents: expiry.Summarize(documentExpiries(vehicle.Documents), time.Now()),
		},
		Trips: trips,
	}, nil
}

type CreateVehicleInput struct {
	PlateNumber    string
	Brand          string
	Model          string
	Year           int
	Color          string
	Seats          int
	Features       datatypes.JSON
	DriverID       *uuid.UUID
	FleetCompanyID *uuid.UUID
}

func (s *VehicleService) Create(ctx context.Context, principal model.Principal, input CreateVehicleInput) (*model.Vehicle, error) {
	input.PlateNumber = strings.TrimSpace(input.PlateNumber)
	if input.PlateNumber == "" {
		return nil, ErrInvalidInput
	}

	driverID := input.DriverID
	fleetCompanyID := input.FleetCompanyID
	switch {
	case principal.IsDriver():
		driverID = principal.DriverID
		fleetCompanyID = nil
	case principal.IsFleetCompany():
		fleetCompanyID = principal.FleetCompanyID
	case principal.IsAdmin():
	default:
		return nil, ErrPermissionDenied
	}

	vehicle := &model.Vehicle{
		PlateNumber:    input.PlateNumber,
		Brand:          strings.TrimSpace(input.Brand),
		Model:          strings.TrimSpace(input.Model),
		Year:           input.Year,
		Color:          strings.TrimSpace(input.Color),
		Seats:          input.Seats,
		Features:       input.Features,
		DriverID:       driverID,
		FleetCompanyID: fleetCompanyID,
		Status:         model.ReviewStatusInReview,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	if err := s.statusLogRepo.LogStatusChange(ctx, &model.StatusLog{
		EntityType: model.ReviewEntityVehicle,
		EntityID:   vehicle.ID,
		NewStatus:  model.ReviewStatusInReview,
		Reason:     "registered",
		ChangedBy:  &principal.UserID,
	}); err != nil {
		return nil, err
	}

	return vehicle, nil
}

type UpdateVehicleInput struct {
	Brand    *string
	Model    *string
	Year     *int
	Color    *string
	Seats    *int
	PhotoURL *string
}

func (s *VehicleService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input UpdateVehicleInput) error {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return ErrPermissionDenied
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]interface{}{}
	if input.Brand != nil {
		fields["brand"] = strings.TrimSpace(*input.Brand)
	}
	if input.Model != nil {
		fields["model"] = strings.TrimSpace(*input.Model)
	}
	if input.Year != nil {
		fields["year"] = *input.Year
	}
	if input.Color != nil {
		fields["color"] = strings.TrimSpace(*input.Color)
	}
	if input.Seats != nil {
		fields["seats"] = *input.Seats
	}

	photoChanged := input.PhotoURL != nil && *input.PhotoURL != vehicle.PhotoURL
	if input.PhotoURL != nil {
		fields["photo_url"] = *input.PhotoURL
	}
	if len(fields) == 0 {
		return ErrInvalidInput
	}

	if photoChanged && !principal.IsAdmin() {
		return s.applySelfServiceUpdate(ctx, principal, vehicle, fields, "vehicle photo changed")
	}
	return s.vehicleRepo.Update(ctx, vehicle.ID, fields)
}

// UpdateFeatures is the self-service feature edit. It always sends the
// vehicle back to review; the caller must refetch to observe the reset.
func (s *VehicleService) UpdateFeatures(ctx context.Context, principal model.Principal, id uuid.UUID, features datatypes.JSON) error {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return ErrPermissionDenied
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]interface{}{"features": features}
	if principal.IsAdmin() {
		return s.vehicleRepo.Update(ctx, vehicle.ID, fields)
	}
	return s.applySelfServiceUpdate(ctx, principal, vehicle, fields, "vehicle features changed")
}

func (s *VehicleService) applySelfServiceUpdate(ctx context.Context, principal model.Principal, vehicle *model.Vehicle, fields map[string]interface{}, note string) error {
	fields["status"] = model.ReviewStatusInReview
	fields["status_description"] = ""

	if err := s.vehicleRepo.Update(ctx, vehicle.ID, fields); err != nil {
		return err
	}

	oldStatus := model.NormalizeReviewStatus(vehicle.Status)
	if err := s.statusLogRepo.LogStatusChange(ctx, &model.StatusLog{
		EntityType: model.ReviewEntityVehicle,
		EntityID:   vehicle.ID,
		OldStatus:  &oldStatus,
		NewStatus:  model.ReviewStatusInReview,
		Reason:     note,
		ChangedBy:  &principal.UserID,
	}); err != nil {
		return err
	}

	if vehicle.DriverID != nil {
		s.notifications.Notify(ctx, model.UserRoleDriver, *vehicle.DriverID,
			"Vehicle back in review",
			"Your vehicle change sent it back for approval.")
	}
	return nil
}

func (s *VehicleService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	scope, _ := model.ScopeFor(principal)
	if _, err := s.vehicleRepo.GetByID(ctx, scope, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *VehicleService) DocumentCounts(ctx context.Context, principal model.Principal) (model.DashboardCounts, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return model.DashboardCounts{}, ErrPermissionDenied
	}
	vehicles, err := s.vehicleRepo.List(ctx, repository.VehicleFilter{Scope: scope})
	if err != nil {
		return model.DashboardCounts{}, err
	}
	now := time.Now()
	summaries := make([]expiry.Summary, 0, len(vehicles))
	for _, vehicle := range vehicles {
		summaries = append(summaries, expiry.Summarize(documentExpiries(vehicle.Documents), now))
	}
	return countBuckets(summaries), nil
}
