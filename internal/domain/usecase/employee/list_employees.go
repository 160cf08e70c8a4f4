package employee

import (
	"context"

	"employeeservice/internal/domain/entity"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/domain/port/usecase"
)

// GetAll retrieves every employee with passports and departments joined
func (u *EmployeeUseCase) GetAll(ctx context.Context) ([]usecase.EmployeeResponse, error) {
	uow := u.uowFactory.Create(persistence.OnCloseRollback)
	defer u.closeQuietly(uow, "list_employees")

	employees, err := uow.Employees().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.joinAll(ctx, uow, employees)
}

// GetByCompanyID retrieves all employees of a company
func (u *EmployeeUseCase) GetByCompanyID(ctx context.Context, companyID int) ([]usecase.EmployeeResponse, error) {
	uow := u.uowFactory.Create(persistence.OnCloseRollback)
	defer u.closeQuietly(uow, "list_employees_by_company")

	employees, err := uow.Employees().GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return u.joinAll(ctx, uow, employees)
}

// GetByDepartmentID retrieves all employees of a department
func (u *EmployeeUseCase) GetByDepartmentID(ctx context.Context, departmentID int) ([]usecase.EmployeeResponse, error) {
	uow := u.uowFactory.Create(persistence.OnCloseRollback)
	defer u.closeQuietly(uow, "list_employees_by_department")

	employees, err := uow.Employees().GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return u.joinAll(ctx, uow, employees)
}

// joinAll builds the full response for each employee in order
func (u *EmployeeUseCase) joinAll(ctx context.Context, uow persistence.UnitOfWork, employees []entity.Employee) ([]usecase.EmployeeResponse, error) {
	responses := make([]usecase.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp, err := buildResponse(ctx, uow, &employees[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}
