package persistence

import (
	"context"

	"employeeservice/internal/domain/entity"
)

// PassportRepository defines persistence operations for passports
type PassportRepository interface {
	// Add inserts a new passport and returns its generated id
	Add(passport *entity.Passport) (int, error)

	// GetByID retrieves a passport by id.
	// Returns (nil, nil) when no passport with that id exists.
	GetByID(ctx context.Context, id int) (*entity.Passport, error)

	// Exists reports whether a passport with the given id exists
	Exists(ctx context.Context, id int) (bool, error)

	// Update overwrites the mutable fields of an existing passport
	Update(passport *entity.Passport) error

	// Delete removes a passport by id. Deleting a missing id succeeds.
	Delete(id int) error
}
