package employee

import (
	"context"

	errs "employeeservice/internal/domain/error"
	"employeeservice/internal/domain/port/persistence"
)

// Delete removes an employee and its passport inside one transaction
func (u *EmployeeUseCase) Delete(ctx context.Context, id int) error {
	uow := u.uowFactory.Create(persistence.OnCloseRollback)
	defer u.closeQuietly(uow, "delete_employee")

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

	if err := uow.Employees().Delete(id); err != nil {
		u.logger.Error("Failed to delete employee", map[string]any{
			"employeeId": id,
			"error":      err.Error(),
		})
		return err
	}
	if err := uow.Passports().Delete(emp.PassportID); err != nil {
		u.logger.Error("Failed to delete passport", map[string]any{
			"passportId": emp.PassportID,
			"error":      err.Error(),
		})
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	u.logger.Info("Employee deleted", map[string]any{
		"employeeId": id,
		"passportId": emp.PassportID,
	})
	return nil
}
