package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerType model.ReviewEntityType, ownerID uuid.UUID) ([]model.Document, error) {
	var documents []model.Document
	if err := r.db.WithContext(ctx).
		Model(&model.Document{}).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at DESC").
		Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// Replace swaps out any prior document of the same type for the owner, so an
// entity carries at most one current document per type.
func (r *DocumentRepository) Replace(ctx context.Context, document *model.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("owner_type = ? AND owner_id = ? AND document_type = ?",
				document.OwnerType, document.OwnerID, document.DocumentType).
			Delete(&model.Document{}).Error; err != nil {
			return err
		}
		return tx.Create(document).Error
	})
}
