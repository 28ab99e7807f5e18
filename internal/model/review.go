package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewStatus is the tri-state approval workflow shared by drivers,
// vehicles and fleet companies. A missing/empty status means in_review.
type ReviewStatus string

const (
	ReviewStatusInReview ReviewStatus = "in_review"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func NormalizeReviewStatus(s ReviewStatus) ReviewStatus {
	if s == "" {
		return ReviewStatusInReview
	}
	return s
}

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusInReview, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

type ReviewEntityType string

const (
	ReviewEntityDriver       ReviewEntityType = "driver"
	ReviewEntityVehicle      ReviewEntityType = "vehicle"
	ReviewEntityFleetCompany ReviewEntityType = "fleet_company"
)

func (t ReviewEntityType) Valid() bool {
	switch t {
	case ReviewEntityDriver, ReviewEntityVehicle, ReviewEntityFleetCompany:
		return true
	}
	return false
}

type StatusLog struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EntityType ReviewEntityType `gorm:"type:varchar(32);not null" json:"entity_type"`
	EntityID   uuid.UUID        `gorm:"type:uuid;not null" json:"entity_id"`
	OldStatus  *ReviewStatus    `gorm:"type:review_status" json:"old_status"`
	NewStatus  ReviewStatus     `gorm:"type:review_status;not null" json:"new_status"`
	Reason     string           `gorm:"type:text" json:"reason"`
	ChangedBy  *uuid.UUID       `gorm:"type:uuid" json:"changed_by"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (StatusLog) TableName() string {
	return "status_log"
}

func (l *StatusLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
