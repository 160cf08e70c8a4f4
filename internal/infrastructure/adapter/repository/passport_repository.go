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

// PassportRepository implements persistence.PassportRepository using GORM
type PassportRepository struct {
	db              *gorm.DB
	tx              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPassportRepository creates a new PassportRepository instance
func NewPassportRepository(db *gorm.DB, logger coreport.Logger) *PassportRepository {
	return &PassportRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// SetTransaction binds the repository to a transaction. Passing nil detaches
// it back to the shared connection.
func (r *PassportRepository) SetTransaction(tx *gorm.DB) {
	r.tx = tx
}

// conn returns the bound transaction if any, otherwise the shared connection
func (r *PassportRepository) conn() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// handleDatabaseError standardizes database error handling
func (r *PassportRepository) handleDatabaseError(operation string, err error, passportID int) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"passport_id": passportID,
		"error":       err.Error(),
		"error_type":  string(r.errorClassifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Add inserts a new passport and returns its generated id
func (r *PassportRepository) Add(passport *entity.Passport) (int, error) {
	passportModel := model.Passport{
		Type:   passport.Type,
		Number: passport.Number,
	}

	result := r.conn().Create(&passportModel)
	if result.Error != nil {
		return 0, r.handleDatabaseError("creating passport", result.Error, 0)
	}

	return passportModel.ID, nil
}

// GetByID retrieves a passport by id, (nil, nil) when absent
func (r *PassportRepository) GetByID(ctx context.Context, id int) (*entity.Passport, error) {
	var passportModel model.Passport
	result := r.conn().WithContext(ctx).First(&passportModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("getting passport", result.Error, id)
	}

	return &entity.Passport{
		ID:     passportModel.ID,
		Type:   passportModel.Type,
		Number: passportModel.Number,
	}, nil
}

// Exists reports whether a passport with the given id exists
func (r *PassportRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	result := r.conn().WithContext(ctx).Model(&model.Passport{}).Where("id = ?", id).Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking passport existence", result.Error, id)
	}

	return count > 0, nil
}

// Update overwrites the mutable fields of an existing passport
func (r *PassportRepository) Update(passport *entity.Passport) error {
	result := r.conn().Model(&model.Passport{}).
		Where("id = ?", passport.ID).
		Updates(map[string]any{
			"type":   passport.Type,
			"number": passport.Number,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating passport", result.Error, passport.ID)
	}

	return nil
}

// Delete removes a passport by id, succeeding when the id is absent
func (r *PassportRepository) Delete(id int) error {
	result := r.conn().Delete(&model.Passport{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting passport", result.Error, id)
	}

	return nil
}
