package company

import (
	"context"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/domain/port/usecase"
)

// CompanyUseCase handles company-related business logic
type CompanyUseCase struct {
	companyRepo persistence.CompanyRepository
	logger      coreport.Logger
}

// NewCompanyUseCase creates a new CompanyUseCase
func NewCompanyUseCase(
	companyRepo persistence.CompanyRepository,
	logger coreport.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Add creates a company and returns its generated id
func (u *CompanyUseCase) Add(ctx context.Context, req usecase.AddCompanyRequest) (int, error) {
	company, err := entity.NewCompany(req.Name)
	if err != nil {
		return 0, err
	}

	id, err := u.companyRepo.Add(company)
	if err != nil {
		u.logger.Error("Failed to add company", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return 0, err
	}

	u.logger.Info("Company added", map[string]any{"companyId": id})
	return id, nil
}

// Get retrieves a company by id
func (u *CompanyUseCase) Get(ctx context.Context, id int) (*entity.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errs.NewCompanyNotFound(id)
	}
	return company, nil
}

// Update applies a partial update to an existing company
func (u *CompanyUseCase) Update(ctx context.Context, id int, req usecase.UpdateCompanyRequest) error {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return errs.NewCompanyNotFound(id)
	}

	if req.Name != nil {
		if err := company.Rename(*req.Name); err != nil {
			return err
		}
	}

	if err := u.companyRepo.Update(company); err != nil {
		u.logger.Error("Failed to update company", map[string]any{
			"companyId": id,
			"error":     err.Error(),
		})
		return err
	}

	u.logger.Info("Company updated", map[string]any{"companyId": id})
	return nil
}

// Delete removes a company. The database cascade removes its departments,
// employees and their passports.
func (u *CompanyUseCase) Delete(ctx context.Context, id int) error {
	exists, err := u.companyRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewCompanyNotFound(id)
	}

	if err := u.companyRepo.Delete(id); err != nil {
		u.logger.Error("Failed to delete company", map[string]any{
			"companyId": id,
			"error":     err.Error(),
		})
		return err
	}

	u.logger.Info("Company deleted", map[string]any{"companyId": id})
	return nil
}
