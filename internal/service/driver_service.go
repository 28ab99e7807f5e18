package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/expiry"
	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type DriverService struct {
	driverRepo    *repository.DriverRepository
	tripRepo      *repository.TripRepository
	statusLogRepo *repository.StatusLogRepository
	notifications *NotificationService
}

func NewDriverService(
	driverRepo *repository.DriverRepository,
	tripRepo *repository.TripRepository,
	statusLogRepo *repository.StatusLogRepository,
	notifications *NotificationService,
) *DriverService {
	return &DriverService{
		driverRepo:    driverRepo,
		tripRepo:      tripRepo,
		statusLogRepo: statusLogRepo,
		notifications: notifications,
	}
}

type DriverListOptions struct {
	Search         string
	Status         model.ReviewStatus
	DocumentFilter DocumentFilter
	FleetCompanyID *uuid.UUID
	Limit          int
	Offset         int
}

// List applies the three filters as a conjunction over the scope-bounded
// collection, preserving the repository's order.
func (s *DriverService) List(ctx context.Context, principal model.Principal, opts DriverListOptions) ([]model.DriverRecord, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	drivers, err := s.driverRepo.List(ctx, repository.DriverFilter{
		Scope:          scope,
		FleetCompanyID: opts.FleetCompanyID,
		Limit:          opts.Limit,
		Offset:         opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	return filterDriverRecords(drivers, opts, time.Now()), nil
}

func filterDriverRecords(drivers []model.Driver, opts DriverListOptions, today time.Time) []model.DriverRecord {
	records := make([]model.DriverRecord, 0, len(drivers))
	for _, driver := range drivers {
		summary := expiry.Summarize(documentExpiries(driver.Documents), today)
		if !matchesSearch(opts.Search, driver.FullName, driver.Phone, driver.Email, driver.City, driver.LicenseNumber) {
			continue
		}
		if !matchesStatus(driver.Status, opts.Status) {
			continue
		}
		if !matchesDocumentFilter(summary, opts.DocumentFilter) {
			continue
		}
		driver.Status = model.NormalizeReviewStatus(driver.Status)
		records = append(records, model.DriverRecord{Driver: driver, Documents: summary})
	}
	return records
}

// Get returns the detail view: the driver with documents, vehicles, leave
// history (with derived phases) and recent trips. Nested collections are
// never nil.
func (s *DriverService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.DriverDetails, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	driver, err := s.driverRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	trips, err := s.tripRepo.ListByDriver(ctx, driver.ID, 50)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	driver.Status = model.NormalizeReviewStatus(driver.Status)
	if driver.Documents == nil {
		driver.Documents = []model.Document{}
	}
	if driver.Vehicles == nil {
		driver.Vehicles = []model.Vehicle{}
	}

	leaves := make([]model.DriverLeaveRecord, 0, len(driver.Leaves))
	for _, leave := range driver.Leaves {
		leaves = append(leaves, model.DriverLeaveRecord{
			DriverLeave: leave,
			Phase:       leave.Phase(now),
		})
	}
	driver.Leaves = nil

	return &model.DriverDetails{
		Record: model.DriverRecord{
			Driver:    *driver,
			Documents: expiry.Summarize(documentExpiries(driver.Documents), now),
		},
		Leaves: leaves,
		Trips:  trips,
	}, nil
}

type CreateDriverInput struct {
	FullName       string
	Phone          string
	Email          string
	City           string
	LicenseNumber  string
	FleetCompanyID *uuid.UUID
}

func (s *DriverService) Create(ctx context.Context, principal model.Principal, input CreateDriverInput) (*model.Driver, error) {
	if !principal.IsAdmin() && !principal.IsFleetCompany() {
		return nil, ErrPermissionDenied
	}

	input.FullName = strings.TrimSpace(input.FullName)
	if input.FullName == "" {
		return nil, ErrInvalidInput
	}

	fleetCompanyID := input.FleetCompanyID
	if principal.IsFleetCompany() {
		fleetCompanyID = principal.FleetCompanyID
	}

	driver := &model.Driver{
		FullName:       input.FullName,
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.TrimSpace(input.Email),
		City:           strings.TrimSpace(input.City),
		LicenseNumber:  strings.TrimSpace(input.LicenseNumber),
		FleetCompanyID: fleetCompanyID,
		Status:         model.ReviewStatusInReview,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	if err := s.statusLogRepo.LogStatusChange(ctx, &model.StatusLog{
		EntityType: model.ReviewEntityDriver,
		EntityID:   driver.ID,
		NewStatus:  model.ReviewStatusInReview,
		Reason:     "registered",
		ChangedBy:  &principal.UserID,
	}); err != nil {
		return nil, err
	}

	return driver, nil
}

type UpdateDriverInput struct {
	FullName      *string
	Phone         *string
	Email         *string
	City          *string
	LicenseNumber *string
	PhotoURL      *string
}

// Update writes profile fields. A self-service photo change forces the
// driver back into review; callers must refetch to observe the new state.
func (s *DriverService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input UpdateDriverInput) error {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return ErrPermissionDenied
	}

	driver, err := s.driverRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]interface{}{}
	if input.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		fields["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		fields["email"] = strings.TrimSpace(*input.Email)
	}
	if input.City != nil {
		fields["city"] = strings.TrimSpace(*input.City)
	}
	if input.LicenseNumber != nil {
		fields["license_number"] = strings.TrimSpace(*input.LicenseNumber)
	}

	photoChanged := input.PhotoURL != nil && *input.PhotoURL != driver.PhotoURL
	if input.PhotoURL != nil {
		fields["photo_url"] = *input.PhotoURL
	}
	if len(fields) == 0 {
		return ErrInvalidInput
	}

	if photoChanged && !principal.IsAdmin() {
		fields["status"] = model.ReviewStatusInReview
		fields["status_description"] = ""
	}

	if err := s.driverRepo.Update(ctx, driver.ID, fields); err != nil {
		return err
	}

	if photoChanged && !principal.IsAdmin() {
		oldStatus := model.NormalizeReviewStatus(driver.Status)
		if err := s.statusLogRepo.LogStatusChange(ctx, &model.StatusLog{
			EntityType: model.ReviewEntityDriver,
			EntityID:   driver.ID,
			OldStatus:  &oldStatus,
			NewStatus:  model.ReviewStatusInReview,
			Reason:     "profile photo changed",
			ChangedBy:  &principal.UserID,
		}); err != nil {
			return err
		}
		s.notifications.Notify(ctx, model.UserRoleDriver, driver.ID,
			"Profile back in review",
			"Your photo change sent your profile back for approval.")
	}

	return nil
}

func (s *DriverService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	scope, _ := model.ScopeFor(principal)
	if _, err := s.driverRepo.GetByID(ctx, scope, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.driverRepo.Delete(ctx, id)
}

// DocumentCounts buckets the scope-visible drivers for the dashboard.
func (s *DriverService) DocumentCounts(ctx context.Context, principal model.Principal) (model.DashboardCounts, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return model.DashboardCounts{}, ErrPermissionDenied
	}
	drivers, err := s.driverRepo.List(ctx, repository.DriverFilter{Scope: scope})
	if err != nil {
		return model.DashboardCounts{}, err
	}
	now := time.Now()
	summaries := make([]expiry.Summary, 0, len(drivers))
	for _, driver := range drivers {
		summaries = append(summaries, expiry.Summarize(documentExpiries(driver.Documents), now))
	}
	return countBuckets(summaries), nil
}
