package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type PayoutService struct {
	payoutRepo    *repository.PayoutRepository
	notifications *NotificationService
}

func NewPayoutService(payoutRepo *repository.PayoutRepository, notifications *NotificationService) *PayoutService {
	return &PayoutService{payoutRepo: payoutRepo, notifications: notifications}
}

type PayoutListOptions struct {
	Statuses []model.PayoutStatus
	DriverID *uuid.UUID
	Limit    int
	Offset   int
}

func (s *PayoutService) List(ctx context.Context, principal model.Principal, opts PayoutListOptions) ([]model.Payout, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}
	return s.payoutRepo.List(ctx, repository.PayoutFilter{
		Scope:    scope,
		Statuses: opts.Statuses,
		DriverID: opts.DriverID,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	})
}

func (s *PayoutService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Payout, error) {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}
	payout, err := s.payoutRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payout, nil
}

// MarkCompleted records that the external transfer settled. Only admins
// flip the flag; completing an already completed payout is a conflict.
func (s *PayoutService) MarkCompleted(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	scope, _ := model.ScopeFor(principal)
	payout, err := s.payoutRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if payout.Status == model.PayoutStatusCompleted {
		return ErrConflict
	}

	if err := s.payoutRepo.MarkCompleted(ctx, id); err != nil {
		return err
	}

	if payout.DriverID != nil {
		s.notifications.Notify(ctx, model.UserRoleDriver, *payout.DriverID,
			"Payout completed",
			"Your payout has been marked as completed.")
	} else if payout.FleetCompanyID != nil {
		s.notifications.Notify(ctx, model.UserRoleFleetCompany, *payout.FleetCompanyID,
			"Payout completed",
			"Your payout has been marked as completed.")
	}
	return nil
}
