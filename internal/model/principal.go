package model

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleAdmin        UserRole = "ADMIN"
	UserRoleFleetCompany UserRole = "FLEET_COMPANY"
	UserRoleDriver       UserRole = "DRIVER"
)

type Principal struct {
	UserID         uuid.UUID
	Role           UserRole
	DriverID       *uuid.UUID
	FleetCompanyID *uuid.UUID
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsFleetCompany() bool {
	return p.Role == UserRoleFleetCompany
}

func (p Principal) IsDriver() bool {
	return p.Role == UserRoleDriver
}
