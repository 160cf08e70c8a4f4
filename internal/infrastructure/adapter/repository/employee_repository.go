package repository

import (
	"context"
	"errors"
	"fmt"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// EmployeeRepository implements persistence.EmployeeRepository using GORM
type EmployeeRepository struct {
	db              *gorm.DB
	tx              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEmployeeRepository creates a new EmployeeRepository instance
func NewEmployeeRepository(db *gorm.DB, logger coreport.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// SetTransaction binds the repository to a transaction. Passing nil detaches
// it back to the shared connection.
func (r *EmployeeRepository) SetTransaction(tx *gorm.DB) {
	r.tx = tx
}

// conn returns the bound transaction if any, otherwise the shared connection
func (r *EmployeeRepository) conn() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// handleDatabaseError standardizes database error handling
func (r *EmployeeRepository) handleDatabaseError(operation string, err error, employeeID int) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"employee_id": employeeID,
		"error":       err.Error(),
		"error_type":  string(r.errorClassifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// modelToEntity converts an employee model to an entity
func (r *EmployeeRepository) modelToEntity(employeeModel *model.Employee) *entity.Employee {
	return &entity.Employee{
		ID:           employeeModel.ID,
		Name:         employeeModel.Name,
		Surname:      employeeModel.Surname,
		Phone:        employeeModel.Phone,
		CompanyID:    employeeModel.CompanyID,
		DepartmentID: employeeModel.DepartmentID,
		PassportID:   employeeModel.PassportID,
	}
}

// modelsToEntities converts a slice of employee models keeping order
func (r *EmployeeRepository) modelsToEntities(employeeModels []model.Employee) []entity.Employee {
	employees := make([]entity.Employee, 0, len(employeeModels))
	for i := range employeeModels {
		employees = append(employees, *r.modelToEntity(&employeeModels[i]))
	}
	return employees
}

// Add inserts a new employee and returns its generated id
func (r *EmployeeRepository) Add(employee *entity.Employee) (int, error) {
	employeeModel := model.Employee{
		Name:         employee.Name,
		Surname:      employee.Surname,
		Phone:        employee.Phone,
		CompanyID:    employee.CompanyID,
		DepartmentID: employee.DepartmentID,
		PassportID:   employee.PassportID,
	}

	result := r.conn().Create(&employeeModel)
	if result.Error != nil {
		return 0, r.handleDatabaseError("creating employee", result.Error, 0)
	}

	return employeeModel.ID, nil
}

// GetByID retrieves an employee by id, (nil, nil) when absent
func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*entity.Employee, error) {
	var employeeModel model.Employee
	result := r.conn().WithContext(ctx).First(&employeeModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("getting employee", result.Error, id)
	}

	return r.modelToEntity(&employeeModel), nil
}

// GetAll retrieves every employee ordered by id
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]entity.Employee, error) {
	var employeeModels []model.Employee
	result := r.conn().WithContext(ctx).Order("id").Find(&employeeModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing employees", result.Error, 0)
	}

	return r.modelsToEntities(employeeModels), nil
}

// GetByCompanyID retrieves all employees of a company ordered by id
func (r *EmployeeRepository) GetByCompanyID(ctx context.Context, companyID int) ([]entity.Employee, error) {
	var employeeModels []model.Employee
	result := r.conn().WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&employeeModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing employees by company", result.Error, 0)
	}

	return r.modelsToEntities(employeeModels), nil
}

// GetByDepartmentID retrieves all employees of a department ordered by id
func (r *EmployeeRepository) GetByDepartmentID(ctx context.Context, departmentID int) ([]entity.Employee, error) {
	var employeeModels []model.Employee
	result := r.conn().WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("id").
		Find(&employeeModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing employees by department", result.Error, 0)
	}

	return r.modelsToEntities(employeeModels), nil
}

// Exists reports whether an employee with the given id exists
func (r *EmployeeRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	result := r.conn().WithContext(ctx).Model(&model.Employee{}).Where("id = ?", id).Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking employee existence", result.Error, id)
	}

	return count > 0, nil
}

// Update overwrites the mutable fields of an existing employee
func (r *EmployeeRepository) Update(employee *entity.Employee) error {
	result := r.conn().Model(&model.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]any{
			"name":          employee.Name,
			"surname":       employee.Surname,
			"phone":         employee.Phone,
			"company_id":    employee.CompanyID,
			"department_id": employee.DepartmentID,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating employee", result.Error, employee.ID)
	}

	return nil
}

// Delete removes an employee by id, succeeding when the id is absent
func (r *EmployeeRepository) Delete(id int) error {
	result := r.conn().Delete(&model.Employee{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting employee", result.Error, id)
	}

	return nil
}
