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

// CompanyRepository implements persistence.CompanyRepository using GORM
type CompanyRepository struct {
	db              *gorm.DB
	tx              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCompanyRepository creates a new CompanyRepository instance
func NewCompanyRepository(db *gorm.DB, logger coreport.Logger) *CompanyRepository {
	return &CompanyRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// SetTransaction binds the repository to a transaction. Passing nil detaches
// it back to the shared connection.
func (r *CompanyRepository) SetTransaction(tx *gorm.DB) {
	r.tx = tx
}

// conn returns the bound transaction if any, otherwise the shared connection
func (r *CompanyRepository) conn() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// handleDatabaseError standardizes database error handling
func (r *CompanyRepository) handleDatabaseError(operation string, err error, companyID int) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"company_id": companyID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Add inserts a new company and returns its generated id
func (r *CompanyRepository) Add(company *entity.Company) (int, error) {
	companyModel := model.Company{Name: company.Name}

	result := r.conn().Create(&companyModel)
	if result.Error != nil {
		return 0, r.handleDatabaseError("creating company", result.Error, 0)
	}

	return companyModel.ID, nil
}

// GetByID retrieves a company by id, (nil, nil) when absent
func (r *CompanyRepository) GetByID(ctx context.Context, id int) (*entity.Company, error) {
	var companyModel model.Company
	result := r.conn().WithContext(ctx).First(&companyModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("getting company", result.Error, id)
	}

	return &entity.Company{ID: companyModel.ID, Name: companyModel.Name}, nil
}

// Exists reports whether a company with the given id exists
func (r *CompanyRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	result := r.conn().WithContext(ctx).Model(&model.Company{}).Where("id = ?", id).Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking company existence", result.Error, id)
	}

	return count > 0, nil
}

// Update overwrites the mutable fields of an existing company
func (r *CompanyRepository) Update(company *entity.Company) error {
	result := r.conn().Model(&model.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]any{"name": company.Name})

	if result.Error != nil {
		return r.handleDatabaseError("updating company", result.Error, company.ID)
	}

	return nil
}

// Delete removes a company by id, succeeding when the id is absent
func (r *CompanyRepository) Delete(id int) error {
	result := r.conn().Delete(&model.Company{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting company", result.Error, id)
	}

	return nil
}
