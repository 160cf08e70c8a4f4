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

// DepartmentRepository implements persistence.DepartmentRepository using GORM
type DepartmentRepository struct {
	db              *gorm.DB
	tx              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDepartmentRepository creates a new DepartmentRepository instance
func NewDepartmentRepository(db *gorm.DB, logger coreport.Logger) *DepartmentRepository {
	return &DepartmentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// SetTransaction binds the repository to a transaction. Passing nil detaches
// it back to the shared connection.
func (r *DepartmentRepository) SetTransaction(tx *gorm.DB) {
	r.tx = tx
}

// conn returns the bound transaction if any, otherwise the shared connection
func (r *DepartmentRepository) conn() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// handleDatabaseError standardizes database error handling
func (r *DepartmentRepository) handleDatabaseError(operation string, err error, departmentID int) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"department_id": departmentID,
		"error":         err.Error(),
		"error_type":    string(r.errorClassifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// modelToEntity converts a department model to an entity
func (r *DepartmentRepository) modelToEntity(departmentModel *model.Department) *entity.Department {
	return &entity.Department{
		ID:        departmentModel.ID,
		CompanyID: departmentModel.CompanyID,
		Name:      departmentModel.Name,
		Phone:     departmentModel.Phone,
	}
}

// Add inserts a new department and returns its generated id
func (r *DepartmentRepository) Add(department *entity.Department) (int, error) {
	departmentModel := model.Department{
		CompanyID: department.CompanyID,
		Name:      department.Name,
		Phone:     department.Phone,
	}

	result := r.conn().Create(&departmentModel)
	if result.Error != nil {
		return 0, r.handleDatabaseError("creating department", result.Error, 0)
	}

	return departmentModel.ID, nil
}

// GetByID retrieves a department by id, (nil, nil) when absent
func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*entity.Department, error) {
	var departmentModel model.Department
	result := r.conn().WithContext(ctx).First(&departmentModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("getting department", result.Error, id)
	}

	return r.modelToEntity(&departmentModel), nil
}

// Exists reports whether a department with the given id exists
func (r *DepartmentRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	result := r.conn().WithContext(ctx).Model(&model.Department{}).Where("id = ?", id).Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking department existence", result.Error, id)
	}

	return count > 0, nil
}

// Update overwrites the mutable fields of an existing department
func (r *DepartmentRepository) Update(department *entity.Department) error {
	result := r.conn().Model(&model.Department{}).
		Where("id = ?", department.ID).
		Updates(map[string]any{
			"company_id": department.CompanyID,
			"name":       department.Name,
			"phone":      department.Phone,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating department", result.Error, department.ID)
	}

	return nil
}

// Delete removes a department by id, succeeding when the id is absent
func (r *DepartmentRepository) Delete(id int) error {
	result := r.conn().Delete(&model.Department{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting department", result.Error, id)
	}

	return nil
}
