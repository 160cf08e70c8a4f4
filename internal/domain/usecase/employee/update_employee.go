package employee

import (
	"context"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/domain/port/usecase"
)

// Update applies a partial update to an employee and, when passport fields
// are present, to its passport inside the same transaction.
//
// Department and company fields cross-validate:
//   - new department only: it must belong to the employee's current company
//   - new company only: rejected, a company change needs a department change
//   - both: the department must belong to the new company
func (u *EmployeeUseCase) Update(ctx context.Context, id int, req usecase.UpdateEmployeeRequest) error {
	uow := u.uowFactory.Create(persistence.OnCloseRollback)
	defer u.closeQuietly(uow, "update_employee")

	if err := uow.BeginTransaction(); err != nil {
		return err
	}

	emp, err := uow.Employees().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp == nil {
		return errs.NewEmployeeNotFound(id)
	}

	if req.Name != nil {
		if err := emp.SetName(*req.Name); err != nil {
			return err
		}
	}
	if req.Surname != nil {
		if err := emp.SetSurname(*req.Surname); err != nil {
			return err
		}
	}
	if req.Phone != nil {
		if err := emp.SetPhone(*req.Phone); err != nil {
			return err
		}
	}

	if err := u.applyPlacement(ctx, uow, emp, req.CompanyID, req.DepartmentID); err != nil {
		return err
	}

	if err := uow.Employees().Update(emp); err != nil {
		u.logger.Error("Failed to update employee", map[string]any{
			"employeeId": id,
			"error":      err.Error(),
		})
		return err
	}

	if req.Passport != nil {
		if err := u.updatePassport(ctx, uow, emp.PassportID, req.Passport); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	u.logger.Info("Employee updated", map[string]any{"employeeId": id})
	return nil
}

// applyPlacement moves the employee between departments and companies,
// enforcing the cross-validation rules between the two fields
func (u *EmployeeUseCase) applyPlacement(
	ctx context.Context,
	uow persistence.UnitOfWork,
	emp *entity.Employee,
	companyID, departmentID *int,
) error {
	switch {
	case departmentID == nil && companyID == nil:
		return nil

	case departmentID == nil:
		return errs.NewBadRequest("impossible to change a company without changing a department")

	default:
		targetCompany := emp.CompanyID
		if companyID != nil {
			targetCompany = *companyID
		}

		department, err := uow.Departments().GetByID(ctx, *departmentID)
		if err != nil {
			return err
		}
		if department == nil {
			return errs.NewDepartmentNotFound(*departmentID)
		}
		if department.CompanyID != targetCompany {
			return errs.NewBadRequest("the specified company does not have such a department")
		}

		emp.DepartmentID = *departmentID
		emp.CompanyID = targetCompany
		return nil
	}
}

// updatePassport merges the provided fields into the stored passport row
func (u *EmployeeUseCase) updatePassport(
	ctx context.Context,
	uow persistence.UnitOfWork,
	passportID int,
	input *usecase.UpdatePassportInput,
) error {
	passport, err := uow.Passports().GetByID(ctx, passportID)
	if err != nil {
		return err
	}
	if passport == nil {
		return errs.NewPassportNotFound(passportID)
	}

	if input.Type != nil {
		if err := passport.SetType(*input.Type); err != nil {
			return err
		}
	}
	if input.Number != nil {
		if err := passport.SetNumber(*input.Number); err != nil {
			return err
		}
	}

	if err := uow.Passports().Update(passport); err != nil {
		u.logger.Error("Failed to update passport", map[string]any{
			"passportId": passportID,
			"error":      err.Error(),
		})
		return err
	}
	return nil
}
