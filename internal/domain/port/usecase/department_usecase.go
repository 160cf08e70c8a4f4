package usecase

import (
	"context"

	"employeeservice/internal/domain/entity"
)

// AddDepartmentRequest carries the fields needed to create a department
type AddDepartmentRequest struct {
	CompanyID int
	Name      string
	Phone     string
}

// UpdateDepartmentRequest carries a partial department update.
// Nil fields keep their current values.
type UpdateDepartmentRequest struct {
	CompanyID *int
	Name      *string
	Phone     *string
}

// DepartmentUseCase defines methods for department-related business operations
type DepartmentUseCase interface {
	// Add creates a department under an existing company and returns its id.
	// Returns ErrCompanyNotFound if the company doesn't exist.
	Add(ctx context.Context, req AddDepartmentRequest) (int, error)

	// Get retrieves a department by id.
	// Returns ErrDepartmentNotFound if no such department exists.
	Get(ctx context.Context, id int) (*entity.Department, error)

	// Update applies a partial update to an existing department.
	// A new CompanyID must reference an existing company.
	Update(ctx context.Context, id int, req UpdateDepartmentRequest) error

	// Delete removes a department and, via database cascade, its employees
	Delete(ctx context.Context, id int) error
}
