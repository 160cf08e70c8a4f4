package employee

import (
	"context"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/domain/port/usecase"
)

// Add creates an employee together with its passport in one transaction.
// The department must exist and belong to the company named in the request.
func (u *EmployeeUseCase) Add(ctx context.Context, req usecase.AddEmployeeRequest) (int, error) {
	uow := u.uowFactory.Create(persistence.OnCloseRollback)
	defer u.closeQuietly(uow, "add_employee")

	if err := uow.BeginTransaction(); err != nil {
		return 0, err
	}

	department, err := uow.Departments().GetByID(ctx, req.DepartmentID)
	if err != nil {
		return 0, err
	}
	if department == nil {
		return 0, errs.NewDepartmentNotFound(req.DepartmentID)
	}
	if department.CompanyID != req.CompanyID {
		return 0, errs.NewBadRequest("the specified company does not have such a department")
	}

	passport, err := entity.NewPassport(req.Passport.Type, req.Passport.Number)
	if err != nil {
		return 0, err
	}
	emp, err := entity.NewEmployee(req.Name, req.Surname, req.Phone, req.CompanyID, req.DepartmentID, 0)
	if err != nil {
		return 0, err
	}

	passportID, err := uow.Passports().Add(passport)
	if err != nil {
		u.logger.Error("Failed to add passport", map[string]any{"error": err.Error()})
		return 0, err
	}

	emp.PassportID = passportID
	id, err := uow.Employees().Add(emp)
	if err != nil {
		u.logger.Error("Failed to add employee", map[string]any{"error": err.Error()})
		return 0, err
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}

	u.logger.Info("Employee added", map[string]any{
		"employeeId":   id,
		"companyId":    req.CompanyID,
		"departmentId": req.DepartmentID,
		"passportId":   passportID,
	})
	return id, nil
}
