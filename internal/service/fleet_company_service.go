package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/expiry"
	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type FleetCompanyService struct {
	companyRepo   *repository.FleetCompanyRepository
	statusLogRepo *repository.StatusLogRepository
}

func NewFleetCompanyService(
	companyRepo *repository.FleetCompanyRepository,
	statusLogRepo *repository.StatusLogRepository,
) *FleetCompanyService {
	return &FleetCompanyService{
		companyRepo:   companyRepo,
		statusLogRepo: statusLogRepo,
	}
}

type FleetCompanyListOptions struct {
	Search         string
	Status         model.ReviewStatus
	DocumentFilter DocumentFilter
	Limit          int
	Offset         int
}

func (s *FleetCompanyService) List(ctx context.Context, principal model.Principal, opts FleetCompanyListOptions) ([]model.FleetCompanyRecord, error) {
	if principal.IsDriver() {
		return nil, ErrPermissionDenied
	}
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	companies, err := s.companyRepo.List(ctx, repository.FleetCompanyFilter{
		Scope:  scope,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	return filterFleetCompanyRecords(companies, opts, time.Now()), nil
}

func filterFleetCompanyRecords(companies []model.FleetCompany, opts FleetCompanyListOptions, today time.Time) []model.FleetCompanyRecord {
	records := make([]model.FleetCompanyRecord, 0, len(companies))
	for _, company := range companies {
		summary := expiry.Summarize(documentExpiries(company.Documents), today)
		if !matchesSearch(opts.Search, company.CompanyName, company.ContactName, company.Phone, company.Email, company.City) {
			continue
		}
		if !matchesStatus(company.Status, opts.Status) {
			continue
		}
		if !matchesDocumentFilter(summary, opts.DocumentFilter) {
			continue
		}
		company.Status = model.NormalizeReviewStatus(company.Status)
		records = append(records, model.FleetCompanyRecord{
			FleetCompany: company,
			Documents:    summary,
			DriverCount:  len(company.Drivers),
			VehicleCount: len(company.Vehicles),
		})
	}
	return records
}

func (s *FleetCompanyService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.FleetCompanyDetails, error) {
	if principal.IsDriver() {
		return nil, ErrPermissionDenied
	}
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return nil, ErrPermissionDenied
	}

	company, err := s.companyRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	company.Status = model.NormalizeReviewStatus(company.Status)
	if company.Documents == nil {
		company.Documents = []model.Document{}
	}

	drivers := make([]model.DriverRecord, 0, len(company.Drivers))
	for _, driver := range company.Drivers {
		driver.Status = model.NormalizeReviewStatus(driver.Status)
		drivers = append(drivers, model.DriverRecord{
			Driver:    driver,
			Documents: expiry.Summarize(documentExpiries(driver.Documents), now),
		})
	}
	vehicles := make([]model.VehicleRecord, 0, len(company.Vehicles))
	for _, vehicle := range company.Vehicles {
		vehicle.Status = model.NormalizeReviewStatus(vehicle.Status)
		vehicles = append(vehicles, model.VehicleRecord{
			Vehicle:   vehicle,
			Documents: expiry.Summarize(documentExpiries(vehicle.Documents), now),
		})
	}
	company.Drivers = nil
	company.Vehicles = nil

	return &model.FleetCompanyDetails{
		Record: model.FleetCompanyRecord{
			FleetCompany: *company,
			Documents:    expiry.Summarize(documentExpiries(company.Documents), now),
			DriverCount:  len(drivers),
			VehicleCount: len(vehicles),
		},
		Drivers:  drivers,
		Vehicles: vehicles,
	}, nil
}

type CreateFleetCompanyInput struct {
	CompanyName string
	ContactName string
	Phone       string
	Email       string
	City        string
	Address     string
}

func (s *FleetCompanyService) Create(ctx context.Context, principal model.Principal, input CreateFleetCompanyInput) (*model.FleetCompany, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if input.CompanyName == "" {
		return nil, ErrInvalidInput
	}

	company := &model.FleetCompany{
		CompanyName: input.CompanyName,
		ContactName: strings.TrimSpace(input.ContactName),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.TrimSpace(input.Email),
		City:        strings.TrimSpace(input.City),
		Address:     strings.TrimSpace(input.Address),
		Status:      model.ReviewStatusInReview,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	if err := s.statusLogRepo.LogStatusChange(ctx, &model.StatusLog{
		EntityType: model.ReviewEntityFleetCompany,
		EntityID:   company.ID,
		NewStatus:  model.ReviewStatusInReview,
		Reason:     "registered",
		ChangedBy:  &principal.UserID,
	}); err != nil {
		return nil, err
	}

	return company, nil
}

type UpdateFleetCompanyInput struct {
	CompanyName *string
	ContactName *string
	Phone       *string
	Email       *string
	City        *string
	Address     *string
	LogoURL     *string
}

func (s *FleetCompanyService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input UpdateFleetCompanyInput) error {
	if principal.IsDriver() {
		return ErrPermissionDenied
	}
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return ErrPermissionDenied
	}

	company, err := s.companyRepo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]interface{}{}
	if input.CompanyName != nil {
		name := strings.TrimSpace(*input.CompanyName)
		if name == "" {
			return ErrInvalidInput
		}
		fields["company_name"] = name
	}
	if input.ContactName != nil {
		fields["contact_name"] = strings.TrimSpace(*input.ContactName)
	}
	if input.Phone != nil {
		fields["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		fields["email"] = strings.TrimSpace(*input.Email)
	}
	if input.City != nil {
		fields["city"] = strings.TrimSpace(*input.City)
	}
	if input.Address != nil {
		fields["address"] = strings.TrimSpace(*input.Address)
	}
	if input.LogoURL != nil {
		fields["logo_url"] = *input.LogoURL
	}
	if len(fields) == 0 {
		return ErrInvalidInput
	}

	return s.companyRepo.Update(ctx, company.ID, fields)
}

func (s *FleetCompanyService) DocumentCounts(ctx context.Context, principal model.Principal) (model.DashboardCounts, error) {
	if principal.IsDriver() {
		return model.DashboardCounts{}, ErrPermissionDenied
	}
	scope, err := model.ScopeFor(principal)
	if err != nil {
		return model.DashboardCounts{}, ErrPermissionDenied
	}
	companies, err := s.companyRepo.List(ctx, repository.FleetCompanyFilter{Scope: scope})
	if err != nil {
		return model.DashboardCounts{}, err
	}
	now := time.Now()
	summaries := make([]expiry.Summary, 0, len(companies))
	for _, company := range companies {
		summaries = append(summaries, expiry.Summarize(documentExpiries(company.Documents), now))
	}
	return countBuckets(summaries), nil
}

func (s *FleetCompanyService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	scope, _ := model.ScopeFor(principal)
	if _, err := s.companyRepo.GetByID(ctx, scope, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.companyRepo.Delete(ctx, id)
}
