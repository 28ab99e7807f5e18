package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

// TransitionSource records where a status change was initiated. List-view
// quick-actions require a reason for negative transitions; detail-view
// actions do not. The asymmetry is inherited behavior and kept on purpose.
type TransitionSource string

const (
	TransitionSourceList   TransitionSource = "list"
	TransitionSourceDetail TransitionSource = "detail"
)

// ReviewService drives the tri-state approval workflow shared by drivers,
// vehicles and fleet companies. Any state may transition to any other.
type ReviewService struct {
	driverRepo    *repository.DriverRepository
	vehicleRepo   *repository.VehicleRepository
	fleetRepo     *repository.FleetCompanyRepository
	statusLogRepo *repository.StatusLogRepository
	notifications *NotificationService
}

func NewReviewService(
	driverRepo *repository.DriverRepository,
	vehicleRepo *repository.VehicleRepository,
	fleetRepo *repository.FleetCompanyRepository,
	statusLogRepo *repository.StatusLogRepository,
	notifications *NotificationService,
) *ReviewService {
	return &ReviewService{
		driverRepo:    driverRepo,
		vehicleRepo:   vehicleRepo,
		fleetRepo:     fleetRepo,
		statusLogRepo: statusLogRepo,
		notifications: notifications,
	}
}

// ValidateTransition rejects the request before any write is issued:
// unknown targets, and list-sourced rejections or send-backs without a
// trimmed non-empty reason.
func ValidateTransition(target model.ReviewStatus, reason string, source TransitionSource) error {
	if !target.Valid() {
		return ErrInvalidStatus
	}
	if source == TransitionSourceList &&
		(target == model.ReviewStatusRejected || target == model.ReviewStatusInReview) &&
		strings.TrimSpace(reason) == "" {
		return ErrInvalidInput
	}
	return nil
}

func (s *ReviewService) RequestTransition(
	ctx context.Context,
	principal model.Principal,
	entityType model.ReviewEntityType,
	id uuid.UUID,
	target model.ReviewStatus,
	reason string,
	source TransitionSource,
) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := ValidateTransition(target, reason, source); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)

	scope, err := model.ScopeFor(principal)
	if err != nil {
		return ErrPermissionDenied
	}

	current, err := s.loadCurrent(ctx, scope, entityType, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// No same-status guard here: the UI disables the action, the API does
	// not. Concurrent writers are not coordinated; last write wins.
	if err := s.updateStatus(ctx, entityType, id, target, reason); err != nil {
		return err
	}

	oldStatus := model.NormalizeReviewStatus(current.status)
	if err := s.statusLogRepo.LogStatusChange(ctx, &model.StatusLog{
		EntityType: entityType,
		EntityID:   id,
		OldStatus:  &oldStatus,
		NewStatus:  target,
		Reason:     reason,
		ChangedBy:  &principal.UserID,
	}); err != nil {
		return err
	}

	if current.recipientID != nil {
		s.notifications.Notify(ctx, current.recipientRole, *current.recipientID,
			fmt.Sprintf("%s review updated", current.label),
			transitionMessage(target, reason))
	}

	return nil
}

type reviewTarget struct {
	status        model.ReviewStatus
	label         string
	recipientRole model.UserRole
	recipientID   *uuid.UUID
}

func (s *ReviewService) loadCurrent(ctx context.Context, scope model.Scope, entityType model.ReviewEntityType, id uuid.UUID) (*reviewTarget, error) {
	switch entityType {
	case model.ReviewEntityDriver:
		driver, err := s.driverRepo.GetByID(ctx, scope, id)
		if err != nil {
			return nil, err
		}
		return &reviewTarget{
			status:        driver.Status,
			label:         "Driver",
			recipientRole: model.UserRoleDriver,
			recipientID:   &driver.ID,
		}, nil
	case model.ReviewEntityVehicle:
		vehicle, err := s.vehicleRepo.GetByID(ctx, scope, id)
		if err != nil {
			return nil, err
		}
		target := &reviewTarget{status: vehicle.Status, label: "Vehicle"}
		switch {
		case vehicle.DriverID != nil:
			target.recipientRole = model.UserRoleDriver
			target.recipientID = vehicle.DriverID
		case vehicle.FleetCompanyID != nil:
			target.recipientRole = model.UserRoleFleetCompany
			target.recipientID = vehicle.FleetCompanyID
		}
		return target, nil
	case model.ReviewEntityFleetCompany:
		company, err := s.fleetRepo.GetByID(ctx, scope, id)
		if err != nil {
			return nil, err
		}
		return &reviewTarget{
			status:        company.Status,
			label:         "Fleet partner",
			recipientRole: model.UserRoleFleetCompany,
			recipientID:   &company.ID,
		}, nil
	default:
		return nil, ErrInvalidInput
	}
}

func (s *ReviewService) updateStatus(ctx context.Context, entityType model.ReviewEntityType, id uuid.UUID, status model.ReviewStatus, description string) error {
	switch entityType {
	case model.ReviewEntityDriver:
		return s.driverRepo.UpdateStatus(ctx, id, status, description)
	case model.ReviewEntityVehicle:
		return s.vehicleRepo.UpdateStatus(ctx, id, status, description)
	case model.ReviewEntityFleetCompany:
		return s.fleetRepo.UpdateStatus(ctx, id, status, description)
	default:
		return ErrInvalidInput
	}
}

func (s *ReviewService) History(ctx context.Context, principal model.Principal, entityType model.ReviewEntityType, id uuid.UUID) ([]model.StatusLog, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.statusLogRepo.ListByEntity(ctx, entityType, id)
}

func transitionMessage(target model.ReviewStatus, reason string) string {
	switch target {
	case model.ReviewStatusApproved:
		return "Your profile has been approved."
	case model.ReviewStatusRejected:
		if reason != "" {
			return "Your profile has been rejected: " + reason
		}
		return "Your profile has been rejected."
	default:
		if reason != "" {
			return "Your profile is back in review: " + reason
		}
		return "Your profile is back in review."
	}
}
