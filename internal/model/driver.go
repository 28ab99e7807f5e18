package model

import (
	"time"

	"github.com/google/uuid"
)

type Driver struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	FullName          string       `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone             string       `gorm:"type:varchar(32)" json:"phone"`
	Email             string       `gorm:"type:varchar(255)" json:"email"`
	City              string       `gorm:"type:varchar(128)" json:"city"`
	LicenseNumber     string       `gorm:"type:varchar(64)" json:"license_number"`
	PhotoURL          string       `gorm:"type:text" json:"photo_url"`
	FleetCompanyID    *uuid.UUID   `gorm:"type:uuid" json:"fleet_company_id"`
	Status            ReviewStatus `gorm:"type:review_status;not null;default:'in_review'" json:"status"`
	StatusDescription string       `gorm:"type:text" json:"status_description"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	FleetCompany *FleetCompany `gorm:"foreignKey:FleetCompanyID" json:"fleet_company,omitempty"`
	Documents    []Document    `gorm:"polymorphic:Owner;polymorphicValue:driver" json:"documents"`
	Vehicles     []Vehicle     `gorm:"foreignKey:DriverID" json:"vehicles,omitempty"`
	Leaves       []DriverLeave `gorm:"foreignKey:DriverID" json:"leaves,omitempty"`
}

func (Driver) TableName() string {
	return "drivers"
}

// LeavePhase is derived from the leave window relative to today, never stored.
type LeavePhase string

const (
	LeavePhaseUpcoming LeavePhase = "upcoming"
	LeavePhaseActive   LeavePhase = "active"
	LeavePhasePast     LeavePhase = "past"
)

type DriverLeave struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	DriverID    uuid.UUID `gorm:"type:uuid;not null" json:"driver_id"`
	LeaveStart  time.Time `gorm:"not null" json:"leave_start"`
	LeaveEnd    time.Time `gorm:"not null" json:"leave_end"`
	LeaveReason string    `gorm:"type:text" json:"leave_reason"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DriverLeave) TableName() string {
	return "driver_leaves"
}

func (l DriverLeave) Phase(today time.Time) LeavePhase {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	start := time.Date(l.LeaveStart.Year(), l.LeaveStart.Month(), l.LeaveStart.Day(), 0, 0, 0, 0, today.Location())
	end := time.Date(l.LeaveEnd.Year(), l.LeaveEnd.Month(), l.LeaveEnd.Day(), 0, 0, 0, 0, today.Location())
	switch {
	case day.Before(start):
		return LeavePhaseUpcoming
	case day.After(end):
		return LeavePhasePast
	default:
		return LeavePhaseActive
	}
}
