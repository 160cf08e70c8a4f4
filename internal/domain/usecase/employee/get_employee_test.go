package employee

import (
	"context"
	"testing"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("joins passport and department", func(t *testing.T) {
		m := newTestMocks()
		m.employees.On("GetByID", mock.Anything, 7).Return(storedEmployee(), nil)
		m.passports.On("GetByID", mock.Anything, 55).
			Return(&entity.Passport{ID: 55, Type: "international", Number: "1234 567890"}, nil)
		m.departments.On("GetByID", mock.Anything, 10).
			Return(&entity.Department{ID: 10, CompanyID: 1, Name: "Engineering", Phone: "123"}, nil)
		m.uow.On("Close").Return(nil)

		resp, err := m.useCase().Get(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, 7, resp.ID)
		assert.Equal(t, "Ivan", resp.Name)
		assert.Equal(t, 1, resp.CompanyID)
		assert.Equal(t, "international", resp.Passport.Type)
		assert.Equal(t, "Engineering", resp.Department.Name)
		m.uow.AssertNotCalled(t, "BeginTransaction")
		m.uow.AssertCalled(t, "Close")
	})

	t.Run("missing employee", func(t *testing.T) {
		m := newTestMocks()
		m.employees.On("GetByID", mock.Anything, 7).Return(nil, nil)
		m.uow.On("Close").Return(nil)

		resp, err := m.useCase().Get(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
		assert.Nil(t, resp)
	})

	t.Run("missing passport row", func(t *testing.T) {
		m := newTestMocks()
		m.employees.On("GetByID", mock.Anything, 7).Return(storedEmployee(), nil)
		m.passports.On("GetByID", mock.Anything, 55).Return(nil, nil)
		m.uow.On("Close").Return(nil)

		_, err := m.useCase().Get(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrPassportNotFound)
	})
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()

	passport := &entity.Passport{ID: 55, Type: "international", Number: "1234"}
	department := &entity.Department{ID: 10, CompanyID: 1, Name: "Engineering", Phone: "123"}

	t.Run("get all joins every row", func(t *testing.T) {
		m := newTestMocks()
		m.employees.On("GetAll", mock.Anything).Return([]entity.Employee{*storedEmployee()}, nil)
		m.passports.On("GetByID", mock.Anything, 55).Return(passport, nil)
		m.departments.On("GetByID", mock.Anything, 10).Return(department, nil)
		m.uow.On("Close").Return(nil)

		resps, err := m.useCase().GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, resps, 1)
		assert.Equal(t, "Petrov", resps[0].Surname)
	})

	t.Run("by company", func(t *testing.T) {
		m := newTestMocks()
		m.employees.On("GetByCompanyID", mock.Anything, 1).Return([]entity.Employee{*storedEmployee()}, nil)
		m.passports.On("GetByID", mock.Anything, 55).Return(passport, nil)
		m.departments.On("GetByID", mock.Anything, 10).Return(department, nil)
		m.uow.On("Close").Return(nil)

		resps, err := m.useCase().GetByCompanyID(ctx, 1)

		require.NoError(t, err)
		require.Len(t, resps, 1)
	})

	t.Run("by department with no matches returns empty slice", func(t *testing.T) {
		m := newTestMocks()
		m.employees.On("GetByDepartmentID", mock.Anything, 10).Return([]entity.Employee{}, nil)
		m.uow.On("Close").Return(nil)

		resps, err := m.useCase().GetByDepartmentID(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, resps)
	})
}
