package employee

import (
	"context"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/domain/port/usecase"
)

// EmployeeUseCase handles employee-related business logic. Each operation
// runs on its own unit of work so the employee row and its passport row
// always change together.
type EmployeeUseCase struct {
	uowFactory persistence.UnitOfWorkFactory
	logger     coreport.Logger
}

// NewEmployeeUseCase creates a new EmployeeUseCase
func NewEmployeeUseCase(
	uowFactory persistence.UnitOfWorkFactory,
	logger coreport.Logger,
) *EmployeeUseCase {
	return &EmployeeUseCase{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// closeQuietly closes the unit of work and logs close failures that would
// otherwise be lost behind the operation's own error
func (u *EmployeeUseCase) closeQuietly(uow persistence.UnitOfWork, operation string) {
	if err := uow.Close(); err != nil {
		u.logger.Error("Failed to close unit of work", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
	}
}

// buildResponse joins an employee with its passport and department rows
// through the repositories of the given unit of work
func buildResponse(ctx context.Context, uow persistence.UnitOfWork, emp *entity.Employee) (*usecase.EmployeeResponse, error) {
	passport, err := uow.Passports().GetByID(ctx, emp.PassportID)
	if err != nil {
		return nil, err
	}
	if passport == nil {
		return nil, errs.NewPassportNotFound(emp.PassportID)
	}

	department, err := uow.Departments().GetByID(ctx, emp.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, errs.NewDepartmentNotFound(emp.DepartmentID)
	}

	return &usecase.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Surname:   emp.Surname,
		Phone:     emp.Phone,
		CompanyID: emp.CompanyID,
		Passport: usecase.PassportInput{
			Type:   passport.Type,
			Number: passport.Number,
		},
		Department: usecase.DepartmentInfo{
			Name:  department.Name,
			Phone: department.Phone,
		},
	}, nil
}
