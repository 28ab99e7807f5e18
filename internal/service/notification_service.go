package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
	"fleet-service/internal/socket"
)

type NotificationService struct {
	repo *repository.NotificationRepository
	hub  *socket.Hub
	log  zerolog.Logger
}

func NewNotificationService(repo *repository.NotificationRepository, hub *socket.Hub, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, hub: hub, log: log}
}

func (s *NotificationService) List(ctx context.Context, principal model.Principal, unreadOnly bool, limit int) ([]model.Notification, error) {
	role, recipientID, err := recipientFor(principal)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByRecipient(ctx, role, recipientID, unreadOnly, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	role, recipientID, err := recipientFor(principal)
	if err != nil {
		return err
	}
	if err := s.repo.MarkRead(ctx, id, role, recipientID); err != nil {
		return ErrNotFound
	}
	return nil
}

// Notify records the notification and pushes it to a connected websocket
// client, if any. Push failures are logged and swallowed: the row is the
// source of truth, the socket is best effort.
func (s *NotificationService) Notify(ctx context.Context, role model.UserRole, recipientID uuid.UUID, title, body string) {
	notification := &model.Notification{
		RecipientRole: role,
		RecipientID:   recipientID,
		Title:         title,
		Body:          body,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		s.log.Error().Err(err).Str("recipient", recipientID.String()).Msg("failed to record notification")
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return
	}
	if err := s.hub.Send(socket.ClientKey(string(role), recipientID.String()), payload); err != nil {
		s.log.Warn().Err(err).Str("recipient", recipientID.String()).Msg("websocket push failed")
	}
}

func recipientFor(principal model.Principal) (model.UserRole, uuid.UUID, error) {
	switch {
	case principal.IsDriver():
		if principal.DriverID == nil {
			return "", uuid.Nil, ErrPermissionDenied
		}
		return model.UserRoleDriver, *principal.DriverID, nil
	case principal.IsFleetCompany():
		if principal.FleetCompanyID == nil {
			return "", uuid.Nil, ErrPermissionDenied
		}
		return model.UserRoleFleetCompany, *principal.FleetCompanyID, nil
	case principal.IsAdmin():
		return model.UserRoleAdmin, principal.UserID, nil
	default:
		return "", uuid.Nil, ErrPermissionDenied
	}
}
