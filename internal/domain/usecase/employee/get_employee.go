package employee

import (
	"context"

	errs "employeeservice/internal/domain/error"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/domain/port/usecase"
)

// Get retrieves one employee with its passport and department joined.
// Reads share a unit of work but run outside a transaction.
func (u *EmployeeUseCase) Get(ctx context.Context, id int) (*usecase.EmployeeResponse, error) {
	uow := u.uowFactory.Create(persistence.OnCloseRollback)
	defer u.closeQuietly(uow, "get_employee")

	emp, err := uow.Employees().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, errs.NewEmployeeNotFound(id)
	}

	return buildResponse(ctx, uow, emp)
}
