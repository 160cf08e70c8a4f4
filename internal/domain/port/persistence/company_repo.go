package persistence

import (
	"context"

	"employeeservice/internal/domain/entity"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	// Add inserts a new company and returns its generated id
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Add(company *entity.Company) (int, error)

	// GetByID retrieves a company by id.
	// Returns (nil, nil) when no company with that id exists.
	GetByID(ctx context.Context, id int) (*entity.Company, error)

	// Exists reports whether a company with the given id exists
	Exists(ctx context.Context, id int) (bool, error)

	// Update overwrites the mutable fields of an existing company
	Update(company *entity.Company) error

	// Delete removes a company by id. Deleting a missing id succeeds.
	// Dependent rows are removed by the database cascade.
	Delete(id int) error
}
