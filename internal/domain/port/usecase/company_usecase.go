package usecase

import (
	"context"

	"employeeservice/internal/domain/entity"
)

// AddCompanyRequest carries the fields needed to create a company
type AddCompanyRequest struct {
	Name string
}

// UpdateCompanyRequest carries a partial company update.
// Nil fields keep their current values.
type UpdateCompanyRequest struct {
	Name *string
}

// CompanyUseCase defines methods for company-related business operations
type CompanyUseCase interface {
	// Add creates a company and returns its generated id
	Add(ctx context.Context, req AddCompanyRequest) (int, error)

	// Get retrieves a company by id.
	// Returns ErrCompanyNotFound if no such company exists.
	Get(ctx context.Context, id int) (*entity.Company, error)

	// Update applies a partial update to an existing company
	Update(ctx context.Context, id int, req UpdateCompanyRequest) error

	// Delete removes a company and, via database cascade, everything it owns
	Delete(ctx context.Context, id int) error
}
