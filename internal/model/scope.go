package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrScopeUnsupported = errors.New("principal role is not allowed")

type ScopeType string

const (
	ScopeAll    ScopeType = "ALL"
	ScopeFleet  ScopeType = "FLEET"
	ScopeDriver ScopeType = "DRIVER"
)

// Scope bounds what a principal may read: admins see everything, a fleet
// company its own fleet, a driver only itself.
type Scope struct {
	Type           ScopeType
	FleetCompanyID *uuid.UUID
	DriverID       *uuid.UUID
}

func ScopeFor(principal Principal) (Scope, error) {
	switch {
	case principal.IsAdmin():
		return Scope{Type: ScopeAll}, nil
	case principal.IsFleetCompany():
		if principal.FleetCompanyID == nil {
			return Scope{}, ErrScopeUnsupported
		}
		return Scope{Type: ScopeFleet, FleetCompanyID: principal.FleetCompanyID}, nil
	case principal.IsDriver():
		if principal.DriverID == nil {
			return Scope{}, ErrScopeUnsupported
		}
		return Scope{Type: ScopeDriver, DriverID: principal.DriverID}, nil
	default:
		return Scope{}, ErrScopeUnsupported
	}
}
