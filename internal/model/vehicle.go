package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Vehicle struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PlateNumber       string         `gorm:"type:varchar(32);not null" json:"plate_number"`
	Brand             string         `gorm:"type:varchar(64)" json:"brand"`
	Model             string         `gorm:"type:varchar(64)" json:"model"`
	Year              int            `json:"year"`
	Color             string         `gorm:"type:varchar(32)" json:"color"`
	Seats             int            `json:"seats"`
	Features          datatypes.JSON `gorm:"type:jsonb" json:"features"`
	PhotoURL          string         `gorm:"type:text" json:"photo_url"`
	DriverID          *uuid.UUID     `gorm:"type:uuid" json:"driver_id"`
	FleetCompanyID    *uuid.UUID     `gorm:"type:uuid" json:"fleet_company_id"`
	Status            ReviewStatus   `gorm:"type:review_status;not null;default:'in_review'" json:"status"`
	StatusDescription string         `gorm:"type:text" json:"status_description"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Driver       *Driver       `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	FleetCompany *FleetCompany `gorm:"foreignKey:FleetCompanyID" json:"fleet_company,omitempty"`
	Documents    []Document    `gorm:"polymorphic:Owner;polymorphicValue:vehicle" json:"documents"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

type FleetCompany struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CompanyName       string       `gorm:"type:varchar(255);not null" json:"company_name"`
	ContactName       string       `gorm:"type:varchar(255)" json:"contact_name"`
	Phone             string       `gorm:"type:varchar(32)" json:"phone"`
	Email             string       `gorm:"type:varchar(255)" json:"email"`
	City              string       `gorm:"type:varchar(128)" json:"city"`
	Address           string       `gorm:"type:text" json:"address"`
	LogoURL           string       `gorm:"type:text" json:"logo_url"`
	Status            ReviewStatus `gorm:"type:review_status;not null;default:'in_review'" json:"status"`
	StatusDescription string       `gorm:"type:text" json:"status_description"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Drivers   []Driver   `gorm:"foreignKey:FleetCompanyID" json:"drivers,omitempty"`
	Vehicles  []Vehicle  `gorm:"foreignKey:FleetCompanyID" json:"vehicles,omitempty"`
	Documents []Document `gorm:"polymorphic:Owner;polymorphicValue:fleet_company" json:"documents"`
}

func (FleetCompany) TableName() string {
	return "fleet_companies"
}
