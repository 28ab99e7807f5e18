package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusRunning   TripStatus = "running"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCanceled  TripStatus = "canceled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type TripType string

const (
	TripTypeSingle    TripType = "single_trip"
	TripTypeRound     TripType = "round_trip"
	TripTypeMultiStop TripType = "multi_stop"
)

type Trip struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TripStatus     TripStatus    `gorm:"type:trip_status;not null;default:'upcoming'" json:"trip_status"`
	PaymentStatus  PaymentStatus `gorm:"type:payment_status;not null;default:'pending'" json:"payment_status"`
	TripType       TripType      `gorm:"type:trip_type;not null;default:'single_trip'" json:"trip_type"`
	DriverID       *uuid.UUID    `gorm:"type:uuid" json:"driver_id"`
	VehicleID      *uuid.UUID    `gorm:"type:uuid" json:"vehicle_id"`
	FleetCompanyID *uuid.UUID    `gorm:"type:uuid" json:"fleet_company_id"`
	TotalPrice     float64       `gorm:"type:numeric(12,2)" json:"total_price"`
	TaxAmount      float64       `gorm:"type:numeric(12,2)" json:"tax_amount"`
	StartAt        *time.Time    `json:"start_at"`
	EndAt          *time.Time    `json:"end_at"`

	// Snapshots captured at booking time; the source records may change later.
	UserDetails        datatypes.JSON `gorm:"type:jsonb" json:"user_details"`
	PaymentTransaction datatypes.JSON `gorm:"type:jsonb" json:"payment_transaction"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Driver       *Driver       `gorm:"foreignKey:DriverID" json:"driver_details,omitempty"`
	Vehicle      *Vehicle      `gorm:"foreignKey:VehicleID" json:"vehicle_details,omitempty"`
	FleetCompany *FleetCompany `gorm:"foreignKey:FleetCompanyID" json:"fleet_company_details,omitempty"`
	Stops        []TripStop    `gorm:"foreignKey:TripID" json:"stops"`
}

func (Trip) TableName() string {
	return "trips"
}

// TripStop position is the visiting order, starting at 0.
type TripStop struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TripID   uuid.UUID `gorm:"type:uuid;not null" json:"trip_id"`
	Position int       `gorm:"not null" json:"position"`
	Address  string    `gorm:"type:text;not null" json:"address"`
	Lat      *float64  `json:"lat"`
	Lng      *float64  `json:"lng"`
}

func (TripStop) TableName() string {
	return "trip_stops"
}
