package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentTypeRegistration DocumentType = "registration"
	DocumentTypeInsurance    DocumentType = "insurance"
	DocumentTypeFitness      DocumentType = "fitness"
	DocumentTypePermit       DocumentType = "permit"
	DocumentTypePollution    DocumentType = "pollution"
	DocumentTypeLicense      DocumentType = "license"
	DocumentTypeIDProof      DocumentType = "id_proof"
)

// Document belongs to exactly one reviewable entity. A nil expiry date
// means the expiry class is unknown, not valid.
type Document struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	OwnerType          ReviewEntityType `gorm:"type:varchar(32);not null" json:"owner_type"`
	OwnerID            uuid.UUID        `gorm:"type:uuid;not null" json:"owner_id"`
	DocumentType       DocumentType     `gorm:"type:varchar(32);not null" json:"document_type"`
	DocumentNumber     string           `gorm:"type:varchar(128)" json:"document_number"`
	DocumentExpiryDate *time.Time       `json:"document_expiry_date"`
	DocumentURL        string           `gorm:"type:text" json:"document_url"`
	UploadedBy         *uuid.UUID       `gorm:"type:uuid" json:"uploaded_by"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}
