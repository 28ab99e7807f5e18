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

type LeaveService struct {
	leaveRepo  *repository.LeaveRepository
	driverRepo *repository.DriverRepository
}

func NewLeaveService(leaveRepo *repository.LeaveRepository, driverRepo *repository.DriverRepository) *LeaveService {
	return &LeaveService{leaveRepo: leaveRepo, driverRepo: driverRepo}
}

// ListByDriver returns the driver's leave history with phases derived
// against the current day.
func (s *LeaveService) ListByDriver(ctx context.Context, principal model.Principal, driverID uuid.UUID) ([]model.DriverLeaveRecord, error) {
	if err := s.authorizeDriverAccess(ctx, principal, driverID); err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	records := make([]model.DriverLeaveRecord, 0, len(leaves))
	for _, leave := range leaves {
		records = append(records, model.DriverLeaveRecord{
			DriverLeave: leave,
			Phase:       leave.Phase(now),
		})
	}
	return records, nil
}

type CreateLeaveInput struct {
	DriverID    uuid.UUID
	LeaveStart  time.Time
	LeaveEnd    time.Time
	LeaveReason string
}

func (s *LeaveService) Create(ctx context.Context, principal model.Principal, input CreateLeaveInput) (*model.DriverLeave, error) {
	if err := s.authorizeDriverAccess(ctx, principal, input.DriverID); err != nil {
		return nil, err
	}
	if input.LeaveStart.IsZero() || input.LeaveEnd.IsZero() || input.LeaveEnd.Before(input.LeaveStart) {
		return nil, ErrInvalidInput
	}

	leave := &model.DriverLeave{
		DriverID:    input.DriverID,
		LeaveStart:  input.LeaveStart,
		LeaveEnd:    input.LeaveEnd,
		LeaveReason: input.LeaveReason,
	}
	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

func (s *LeaveService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	leave, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.authorizeDriverAccess(ctx, principal, leave.DriverID); err != nil {
		return err
	}
	return s.leaveRepo.Delete(ctx, id)
}

// authorizeDriverAccess checks the principal may touch the driver's leaves:
// admins always, drivers only their own, fleet companies only their drivers.
func (s *LeaveService) authorizeDriverAccess(ctx context.Context, principal model.Principal, driverID uuid.UUID) error {
	if principal.IsAdmin() {
		return nil
	}
	if principal.IsDriver() {
		if principal.DriverID != nil && *principal.DriverID == driverID {
			return nil
		}
		return ErrPermissionDenied
	}
	if principal.IsFleetCompany() {
		scope, err := model.ScopeFor(principal)
		if err != nil {
			return ErrPermissionDenied
		}
		if _, err := s.driverRepo.GetByID(ctx, scope, driverID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPermissionDenied
			}
			return err
		}
		return nil
	}
	return ErrPermissionDenied
}
