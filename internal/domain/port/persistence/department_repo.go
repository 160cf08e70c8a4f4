package persistence

import (
	"context"

	"employeeservice/internal/domain/entity"
)

// DepartmentRepository defines persistence operations for departments
type DepartmentRepository interface {
	// Add inserts a new department and returns its generated id
	Add(department *entity.Department) (int, error)

	// GetByID retrieves a department by id.
	// Returns (nil, nil) when no department with that id exists.
	GetByID(ctx context.Context, id int) (*entity.Department, error)

	// Exists reports whether a department with the given id exists
	Exists(ctx context.Context, id int) (bool, error)

	// Update overwrites the mutable fields of an existing department
	Update(department *entity.Department) error

	// Delete removes a department by id. Deleting a missing id succeeds.
	Delete(id int) error
}
