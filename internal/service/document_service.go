package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
	"fleet-service/internal/s3"
)

type DocumentService struct {
	documentRepo *repository.DocumentRepository
	driverRepo   *repository.DriverRepository
	vehicleRepo  *repository.VehicleRepository
	companyRepo  *repository.FleetCompanyRepository
	uploader     *s3.Uploader
}

func NewDocumentService(
	documentRepo *repository.DocumentRepository,
	driverRepo *repository.DriverRepository,
	vehicleRepo *repository.VehicleRepository,
	companyRepo *repository.FleetCompanyRepository,
	uploader *s3.Uploader,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		driverRepo:   driverRepo,
		vehicleRepo:  vehicleRepo,
		companyRepo:  companyRepo,
		uploader:     uploader,
	}
}

type UploadDocumentInput struct {
	OwnerType      model.ReviewEntityType
	OwnerID        uuid.UUID
	DocumentType   model.DocumentType
	DocumentNumber string
	ExpiryDate     *time.Time
	File           io.Reader
	ContentType    string
}

// Upload stores the file in S3 and replaces any existing document of the
// same type for the owner. The old file stays in the bucket; only the row
// is swapped.
func (s *DocumentService) Upload(ctx context.Context, principal model.Principal, input UploadDocumentInput) (*model.Document, error) {
	if !input.OwnerType.Valid() || input.DocumentType == "" || input.File == nil {
		return nil, ErrInvalidInput
	}
	if err := s.authorizeOwner(ctx, principal, input.OwnerType, input.OwnerID); err != nil {
		return nil, err
	}

	key := s3.DocumentKey(string(input.OwnerType), input.OwnerID.String(), string(input.DocumentType))
	url, err := s.uploader.UploadFile(ctx, input.File, key, input.ContentType)
	if err != nil {
		return nil, err
	}

	document := &model.Document{
		OwnerType:          input.OwnerType,
		OwnerID:            input.OwnerID,
		DocumentType:       input.DocumentType,
		DocumentNumber:     input.DocumentNumber,
		DocumentExpiryDate: input.ExpiryDate,
		DocumentURL:        url,
		UploadedBy:         &principal.UserID,
	}
	if err := s.documentRepo.Replace(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

func (s *DocumentService) ListByOwner(ctx context.Context, principal model.Principal, ownerType model.ReviewEntityType, ownerID uuid.UUID) ([]model.Document, error) {
	if !ownerType.Valid() {
		return nil, ErrInvalidInput
	}
	if err := s.authorizeOwner(ctx, principal, ownerType, ownerID); err != nil {
		return nil, err
	}
	return s.documentRepo.ListByOwner(ctx, ownerType, ownerID)
}

// authorizeOwner resolves the owning entity under the principal's scope. A
// row the scope cannot see is a permission error, not a missing entity, so
// callers never learn whether the id exists.
func (s *DocumentService) authorizeOwner(ctx context.Context, principal model.Principal, ownerType model.ReviewEntityType, ownerID uuid.UUID) error {
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return ErrPermissionDenied
	}

	switch ownerType {
	case model.ReviewEntityDriver:
		_, err = s.driverRepo.GetByID(ctx, scope, ownerID)
	case model.ReviewEntityVehicle:
		_, err = s.vehicleRepo.GetByID(ctx, scope, ownerID)
	case model.ReviewEntityFleetCompany:
		if principal.IsDriver() {
			return ErrPermissionDenied
		}
		_, err = s.companyRepo.GetByID(ctx, scope, ownerID)
	default:
		return ErrInvalidInput
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionDenied
		}
		return err
	}
	return nil
}
