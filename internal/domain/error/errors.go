package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Base error types
var (
	// ErrBadRequest is returned when user input fails validation
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrCompanyNotFound is returned when the requested company doesn't exist
	ErrCompanyNotFound = errors.New("company not found")

	// ErrDepartmentNotFound is returned when the requested department doesn't exist
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrEmployeeNotFound is returned when the requested employee doesn't exist
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrPassportNotFound is returned when the requested passport doesn't exist
	ErrPassportNotFound = errors.New("passport not found")

	// ErrTransactionActive is returned when BeginTransaction is called on a unit
	// of work that already holds an open transaction
	ErrTransactionActive = errors.New("transaction already started")

	// ErrNoTransaction is returned when Commit or Rollback is called without an
	// active transaction
	ErrNoTransaction = errors.New("no active transaction")

	// ErrUnitOfWorkClosed is returned when a closed unit of work is used
	ErrUnitOfWorkClosed = errors.New("unit of work is closed")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// HTTPStatus maps domain errors to HTTP status codes.
// Unit-of-work misuse and anything unclassified are treated as internal errors.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NotFoundError carries the resource kind and id of a missing entity
type NotFoundError struct {
	Resource string
	ID       int
	sentinel error
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// Is matches the resource-specific sentinel and the generic ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == e.sentinel || target == ErrNotFound
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "not_found",
		"resource":   e.Resource,
		"id":         e.ID,
	}
}

// NewCompanyNotFound creates a not-found error for a company id
func NewCompanyNotFound(id int) error {
	return &NotFoundError{Resource: "company", ID: id, sentinel: ErrCompanyNotFound}
}

// NewDepartmentNotFound creates a not-found error for a department id
func NewDepartmentNotFound(id int) error {
	return &NotFoundError{Resource: "department", ID: id, sentinel: ErrDepartmentNotFound}
}

// NewEmployeeNotFound creates a not-found error for an employee id
func NewEmployeeNotFound(id int) error {
	return &NotFoundError{Resource: "employee", ID: id, sentinel: ErrEmployeeNotFound}
}

// NewPassportNotFound creates a not-found error for a passport id
func NewPassportNotFound(id int) error {
	return &NotFoundError{Resource: "passport", ID: id, sentinel: ErrPassportNotFound}
}

// BadRequestError describes invalid user input with a human-readable reason
type BadRequestError struct {
	Reason string
}

// Error implements the error interface
func (e *BadRequestError) Error() string {
	return e.Reason
}

// Is checks if the target error is an ErrBadRequest
func (e *BadRequestError) Is(target error) bool {
	return target == ErrBadRequest
}

// LogFields returns a map of fields for structured logging
func (e *BadRequestError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "bad_request",
		"reason":     e.Reason,
	}
}

// NewBadRequest creates a BadRequestError with the given reason
func NewBadRequest(reason string) error {
	return &BadRequestError{Reason: reason}
}

// NewBadRequestf creates a BadRequestError with a formatted reason
func NewBadRequestf(format string, args ...any) error {
	return &BadRequestError{Reason: fmt.Sprintf(format, args...)}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCompanyNotFound) ||
		errors.Is(err, ErrDepartmentNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrPassportNotFound)
}

// IsBadRequestError checks if the error is invalid user input
func IsBadRequestError(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsInvalidStateError checks if the error is a unit-of-work lifecycle violation
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrTransactionActive) ||
		errors.Is(err, ErrNoTransaction) ||
		errors.Is(err, ErrUnitOfWorkClosed)
}
