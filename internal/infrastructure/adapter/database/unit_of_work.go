package database

import (
	"fmt"

	errs "employeeservice/internal/domain/error"
	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// UnitOfWork implements persistence.UnitOfWork on top of GORM. It owns one
// logical connection and at most one transaction at a time. Repositories
// handed out by the accessors belong to this unit and follow its transaction
// through SetTransaction.
type UnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	onClose persistence.OnClose
	closed  bool
	logger  coreport.Logger

	companies   *repository.CompanyRepository
	departments *repository.DepartmentRepository
	employees   *repository.EmployeeRepository
	passports   *repository.PassportRepository
}

// NewUnitOfWork creates a unit of work over the shared connection with the
// given close disposition
func NewUnitOfWork(db *gorm.DB, onClose persistence.OnClose, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:      db,
		onClose: onClose,
		logger:  logger,
	}
}

// BeginTransaction starts a new transaction
func (u *UnitOfWork) BeginTransaction() error {
	if u.closed {
		return errs.ErrUnitOfWorkClosed
	}
	if u.tx != nil {
		return errs.ErrTransactionActive
	}

	tx := u.db.Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{
			"error": tx.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, tx.Error.Error())
	}

	u.tx = tx
	u.rebind()
	return nil
}

// Commit commits the open transaction
func (u *UnitOfWork) Commit() error {
	if u.closed {
		return errs.ErrUnitOfWorkClosed
	}
	if u.tx == nil {
		return errs.ErrNoTransaction
	}

	err := u.tx.Commit().Error
	u.tx = nil
	u.rebind()

	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Rollback discards the open transaction
func (u *UnitOfWork) Rollback() error {
	if u.closed {
		return errs.ErrUnitOfWorkClosed
	}
	if u.tx == nil {
		return errs.ErrNoTransaction
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	u.rebind()

	if err != nil {
		u.logger.Error("Failed to roll back transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Companies returns the company repository owned by this unit of work
func (u *UnitOfWork) Companies() persistence.CompanyRepository {
	if u.companies == nil {
		u.companies = repository.NewCompanyRepository(u.db, u.logger)
		u.companies.SetTransaction(u.tx)
	}
	return u.companies
}

// Departments returns the department repository owned by this unit of work
func (u *UnitOfWork) Departments() persistence.DepartmentRepository {
	if u.departments == nil {
		u.departments = repository.NewDepartmentRepository(u.db, u.logger)
		u.departments.SetTransaction(u.tx)
	}
	return u.departments
}

// Employees returns the employee repository owned by this unit of work
func (u *UnitOfWork) Employees() persistence.EmployeeRepository {
	if u.employees == nil {
		u.employees = repository.NewEmployeeRepository(u.db, u.logger)
		u.employees.SetTransaction(u.tx)
	}
	return u.employees
}

// Passports returns the passport repository owned by this unit of work
func (u *UnitOfWork) Passports() persistence.PassportRepository {
	if u.passports == nil {
		u.passports = repository.NewPassportRepository(u.db, u.logger)
		u.passports.SetTransaction(u.tx)
	}
	return u.passports
}

// Close releases the unit of work. A still-open transaction is committed or
// rolled back according to the OnClose disposition. Repeated calls are no-ops.
func (u *UnitOfWork) Close() error {
	if u.closed {
		return nil
	}

	var err error
	if u.tx != nil {
		if u.onClose == persistence.OnCloseCommit {
			err = u.Commit()
		} else {
			err = u.Rollback()
		}
	}

	u.closed = true
	return err
}

// rebind points every already-created repository at the current transaction,
// or back at the shared connection when none is open
func (u *UnitOfWork) rebind() {
	if u.companies != nil {
		u.companies.SetTransaction(u.tx)
	}
	if u.departments != nil {
		u.departments.SetTransaction(u.tx)
	}
	if u.employees != nil {
		u.employees.SetTransaction(u.tx)
	}
	if u.passports != nil {
		u.passports.SetTransaction(u.tx)
	}
}

// UnitOfWorkFactory implements persistence.UnitOfWorkFactory over a shared
// GORM connection. Safe for concurrent use, each created unit is independent.
type UnitOfWorkFactory struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory
func NewUnitOfWorkFactory(db *gorm.DB, logger coreport.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		db:     db,
		logger: logger,
	}
}

// Create returns a fresh unit of work with the given close disposition
func (f *UnitOfWorkFactory) Create(onClose persistence.OnClose) persistence.UnitOfWork {
	return NewUnitOfWork(f.db, onClose, f.logger)
}
