package department

import (
	"context"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/domain/port/usecase"
)

// DepartmentUseCase handles department-related business logic
type DepartmentUseCase struct {
	departmentRepo persistence.DepartmentRepository
	companyRepo    persistence.CompanyRepository
	logger         coreport.Logger
}

// NewDepartmentUseCase creates a new DepartmentUseCase
func NewDepartmentUseCase(
	departmentRepo persistence.DepartmentRepository,
	companyRepo persistence.CompanyRepository,
	logger coreport.Logger,
) *DepartmentUseCase {
	return &DepartmentUseCase{
		departmentRepo: departmentRepo,
		companyRepo:    companyRepo,
		logger:         logger,
	}
}

// Add creates a department under an existing company and returns its id
func (u *DepartmentUseCase) Add(ctx context.Context, req usecase.AddDepartmentRequest) (int, error) {
	exists, err := u.companyRepo.Exists(ctx, req.CompanyID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errs.NewCompanyNotFound(req.CompanyID)
	}

	department, err := entity.NewDepartment(req.CompanyID, req.Name, req.Phone)
	if err != nil {
		return 0, err
	}

	id, err := u.departmentRepo.Add(department)
	if err != nil {
		u.logger.Error("Failed to add department", map[string]any{
			"companyId": req.CompanyID,
			"name":      req.Name,
			"error":     err.Error(),
		})
		return 0, err
	}

	u.logger.Info("Department added", map[string]any{
		"departmentId": id,
		"companyId":    req.CompanyID,
	})
	return id, nil
}

// Get retrieves a department by id
func (u *DepartmentUseCase) Get(ctx context.Context, id int) (*entity.Department, error) {
	department, err := u.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, errs.NewDepartmentNotFound(id)
	}
	return department, nil
}

// Update applies a partial update to an existing department. Moving the
// department to another company requires that company to exist.
func (u *DepartmentUseCase) Update(ctx context.Context, id int, req usecase.UpdateDepartmentRequest) error {
	department, err := u.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if department == nil {
		return errs.NewDepartmentNotFound(id)
	}

	if req.CompanyID != nil {
		exists, err := u.companyRepo.Exists(ctx, *req.CompanyID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewCompanyNotFound(*req.CompanyID)
		}
		department.CompanyID = *req.CompanyID
	}
	if req.Name != nil {
		if err := department.SetName(*req.Name); err != nil {
			return err
		}
	}
	if req.Phone != nil {
		if err := department.SetPhone(*req.Phone); err != nil {
			return err
		}
	}

	if err := u.departmentRepo.Update(department); err != nil {
		u.logger.Error("Failed to update department", map[string]any{
			"departmentId": id,
			"error":        err.Error(),
		})
		return err
	}

	u.logger.Info("Department updated", map[string]any{"departmentId": id})
	return nil
}

// Delete removes a department. The database cascade removes its employees.
func (u *DepartmentUseCase) Delete(ctx context.Context, id int) error {
	exists, err := u.departmentRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewDepartmentNotFound(id)
	}

	if err := u.departmentRepo.Delete(id); err != nil {
		u.logger.Error("Failed to delete department", map[string]any{
			"departmentId": id,
			"error":        err.Error(),
		})
		return err
	}

	u.logger.Info("Department deleted", map[string]any{"departmentId": id})
	return nil
}
