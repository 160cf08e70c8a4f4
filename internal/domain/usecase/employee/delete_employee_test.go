package employee

import (
	"context"
	"testing"

	errs "employeeservice/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes employee and passport in one transaction", func(t *testing.T) {
		m := newTestMocks()
		m.uow.On("BeginTransaction").Return(nil)
		m.employees.On("GetByID", mock.Anything, 7).Return(storedEmployee(), nil)
		m.employees.On("Delete", 7).Return(nil)
		m.passports.On("Delete", 55).Return(nil)
		m.uow.On("Commit").Return(nil)
		m.uow.On("Close").Return(nil)

		err := m.useCase().Delete(ctx, 7)

		assert.NoError(t, err)
		m.employees.AssertCalled(t, "Delete", 7)
		m.passports.AssertCalled(t, "Delete", 55)
		m.uow.AssertCalled(t, "Commit")
		m.uow.AssertCalled(t, "Close")
	})

	t.Run("missing employee aborts without writes", func(t *testing.T) {
		m := newTestMocks()
		m.uow.On("BeginTransaction").Return(nil)
		m.employees.On("GetByID", mock.Anything, 7).Return(nil, nil)
		m.uow.On("Close").Return(nil)

		err := m.useCase().Delete(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
		m.employees.AssertNotCalled(t, "Delete", mock.Anything)
		m.passports.AssertNotCalled(t, "Delete", mock.Anything)
		m.uow.AssertNotCalled(t, "Commit")
	})

	t.Run("passport delete failure leaves transaction uncommitted", func(t *testing.T) {
		m := newTestMocks()
		m.uow.On("BeginTransaction").Return(nil)
		m.employees.On("GetByID", mock.Anything, 7).Return(storedEmployee(), nil)
		m.employees.On("Delete", 7).Return(nil)
		m.passports.On("Delete", 55).Return(errs.ErrDatabaseConnection)
		m.uow.On("Close").Return(nil)

		err := m.useCase().Delete(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		m.uow.AssertNotCalled(t, "Commit")
		m.uow.AssertCalled(t, "Close")
	})
}
