package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "bad request sentinel",
			err:      ErrBadRequest,
			expected: http.StatusBadRequest,
		},
		{
			name:     "typed bad request",
			err:      NewBadRequest("field name is empty"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "company not found",
			err:      NewCompanyNotFound(7),
			expected: http.StatusNotFound,
		},
		{
			name:     "employee not found",
			err:      NewEmployeeNotFound(3),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("loading: %w", NewPassportNotFound(9)),
			expected: http.StatusNotFound,
		},
		{
			name:     "transaction misuse is internal",
			err:      ErrTransactionActive,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "database error is internal",
			err:      ErrDatabaseConnection,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "unknown error is internal",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewDepartmentNotFound(42)

	assert.Equal(t, "department with id 42 not found", err.Error())
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrCompanyNotFound)
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsBadRequestError(err))

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "department", nf.Resource)
	assert.Equal(t, 42, nf.ID)
	assert.Equal(t, "not_found", nf.LogFields()["error_type"])
}

func TestBadRequestError(t *testing.T) {
	err := NewBadRequestf("field %s is empty or contains whitespace only", "name")

	assert.Equal(t, "field name is empty or contains whitespace only", err.Error())
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.True(t, IsBadRequestError(err))
	assert.False(t, IsNotFoundError(err))
}

func TestIsInvalidStateError(t *testing.T) {
	assert.True(t, IsInvalidStateError(ErrTransactionActive))
	assert.True(t, IsInvalidStateError(ErrNoTransaction))
	assert.True(t, IsInvalidStateError(ErrUnitOfWorkClosed))
	assert.False(t, IsInvalidStateError(ErrBadRequest))
	assert.False(t, IsInvalidStateError(nil))
}
