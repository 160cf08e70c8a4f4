package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	errs "employeeservice/internal/domain/error"
	"employeeservice/internal/domain/port/persistence"
	"employeeservice/internal/infrastructure/adapter/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUnitOfWorkTransactionLifecycle(t *testing.T) {
	t.Run("begin and commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("double begin is rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		assert.ErrorIs(t, uow.BeginTransaction(), errs.ErrTransactionActive)
	})

	t.Run("commit without transaction", func(t *testing.T) {
		db, _ := newMockDB(t)
		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		assert.ErrorIs(t, uow.Commit(), errs.ErrNoTransaction)
	})

	t.Run("rollback without transaction", func(t *testing.T) {
		db, _ := newMockDB(t)
		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		assert.ErrorIs(t, uow.Rollback(), errs.ErrNoTransaction)
	})

	t.Run("second commit is rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Commit())
		assert.ErrorIs(t, uow.Commit(), errs.ErrNoTransaction)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit after rollback is rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Rollback())
		assert.ErrorIs(t, uow.Commit(), errs.ErrNoTransaction)
	})

	t.Run("begin again after commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectRollback()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Commit())
		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUnitOfWorkClose(t *testing.T) {
	t.Run("default disposition rolls back an open transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit disposition commits an open transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		uow := NewUnitOfWork(db, persistence.OnCloseCommit, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("close after an explicit commit does not re-commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		uow := NewUnitOfWork(db, persistence.OnCloseCommit, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Commit())
		require.NoError(t, uow.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("close without transaction touches nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		uow := NewUnitOfWork(db, persistence.OnCloseCommit, logger.NewNoopLogger())

		require.NoError(t, uow.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, uow.Close())
		require.NoError(t, uow.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("closed unit rejects further use", func(t *testing.T) {
		db, _ := newMockDB(t)
		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		require.NoError(t, uow.Close())
		assert.ErrorIs(t, uow.BeginTransaction(), errs.ErrUnitOfWorkClosed)
		assert.ErrorIs(t, uow.Commit(), errs.ErrUnitOfWorkClosed)
		assert.ErrorIs(t, uow.Rollback(), errs.ErrUnitOfWorkClosed)
	})
}

func TestUnitOfWorkRepositories(t *testing.T) {
	t.Run("accessors return the same instance", func(t *testing.T) {
		db, _ := newMockDB(t)
		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())

		assert.Same(t, uow.Companies(), uow.Companies())
		assert.Same(t, uow.Departments(), uow.Departments())
		assert.Same(t, uow.Employees(), uow.Employees())
		assert.Same(t, uow.Passports(), uow.Passports())
	})

	t.Run("repository writes run inside the unit's transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "companies"`).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		uow := NewUnitOfWork(db, persistence.OnCloseRollback, logger.NewNoopLogger())
		repo := uow.Companies()

		require.NoError(t, uow.BeginTransaction())
		require.NoError(t, repo.Delete(3))
		require.NoError(t, uow.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUnitOfWorkFactory(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	factory := NewUnitOfWorkFactory(db, logger.NewNoopLogger())

	first := factory.Create(persistence.OnCloseRollback)
	second := factory.Create(persistence.OnCloseCommit)

	assert.NotSame(t, first, second)
	require.NoError(t, first.Close())

	require.NoError(t, second.BeginTransaction())
	require.NoError(t, second.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
