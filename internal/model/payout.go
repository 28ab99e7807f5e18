package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusCompleted PayoutStatus = "completed"
)

// Payout is display-only settlement data; the actual transfer happens in an
// external payment system whose result lands in Transaction.
type Payout struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	DriverID       *uuid.UUID     `gorm:"type:uuid" json:"driver_id"`
	FleetCompanyID *uuid.UUID     `gorm:"type:uuid" json:"fleet_company_id"`
	Amount         float64        `gorm:"type:numeric(12,2);not null" json:"amount"`
	TripCount      int            `json:"trip_count"`
	PeriodStart    time.Time      `gorm:"not null" json:"period_start"`
	PeriodEnd      time.Time      `gorm:"not null" json:"period_end"`
	Status         PayoutStatus   `gorm:"type:payout_status;not null;default:'pending'" json:"status"`
	CompletedAt    *time.Time     `json:"completed_at"`
	Transaction    datatypes.JSON `gorm:"type:jsonb" json:"transaction"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Driver       *Driver       `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	FleetCompany *FleetCompany `gorm:"foreignKey:FleetCompanyID" json:"fleet_company,omitempty"`
}

func (Payout) TableName() string {
	return "payouts"
}

type Notification struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	RecipientRole UserRole  `gorm:"type:varchar(32);not null" json:"recipient_role"`
	RecipientID   uuid.UUID `gorm:"type:uuid;not null" json:"recipient_id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Body          string    `gorm:"type:text" json:"body"`
	Read          bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
