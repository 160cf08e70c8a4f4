package persistence

import (
	"context"

	"employeeservice/internal/domain/entity"
)

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	// Add inserts a new employee and returns its generated id
	Add(employee *entity.Employee) (int, error)

	// GetByID retrieves an employee by id.
	// Returns (nil, nil) when no employee with that id exists.
	GetByID(ctx context.Context, id int) (*entity.Employee, error)

	// GetAll retrieves every employee
	GetAll(ctx context.Context) ([]entity.Employee, error)

	// GetByCompanyID retrieves all employees of a company
	GetByCompanyID(ctx context.Context, companyID int) ([]entity.Employee, error)

	// GetByDepartmentID retrieves all employees of a department
	GetByDepartmentID(ctx context.Context, departmentID int) ([]entity.Employee, error)

	// Exists reports whether an employee with the given id exists
	Exists(ctx context.Context, id int) (bool, error)

	// Update overwrites the mutable fields of an existing employee
	Update(employee *entity.Employee) error

	// Delete removes an employee by id. Deleting a missing id succeeds.
	Delete(id int) error
}
