package company

import (
	"context"
	"testing"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	portuse "employeeservice/internal/domain/port/usecase"
	mcore "employeeservice/mocks/port/core"
	mpers "employeeservice/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUseCase() (*CompanyUseCase, *mpers.MockCompanyRepository) {
	repo := new(mpers.MockCompanyRepository)
	logger := new(mcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return NewCompanyUseCase(repo, logger), repo
}

func TestCompanyAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("Add", mock.MatchedBy(func(c *entity.Company) bool {
			return c.Name == "Acme"
		})).Return(3, nil)

		id, err := uc.Add(ctx, portuse.AddCompanyRequest{Name: "Acme"})

		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})

	t.Run("blank name is rejected before the repository", func(t *testing.T) {
		uc, repo := newUseCase()

		_, err := uc.Add(ctx, portuse.AddCompanyRequest{Name: "   "})

		assert.ErrorIs(t, err, errs.ErrBadRequest)
		repo.AssertNotCalled(t, "Add", mock.Anything)
	})
}

func TestCompanyGet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("GetByID", mock.Anything, 3).Return(&entity.Company{ID: 3, Name: "Acme"}, nil)

		company, err := uc.Get(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
	})

	t.Run("absent row maps to not found", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("GetByID", mock.Anything, 3).Return(nil, nil)

		company, err := uc.Get(ctx, 3)

		assert.ErrorIs(t, err, errs.ErrCompanyNotFound)
		assert.Nil(t, company)
	})
}

func TestCompanyUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renames the company", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("GetByID", mock.Anything, 3).Return(&entity.Company{ID: 3, Name: "Acme"}, nil)
		repo.On("Update", mock.MatchedBy(func(c *entity.Company) bool {
			return c.ID == 3 && c.Name == "Acme Corp"
		})).Return(nil)

		name := "Acme Corp"
		err := uc.Update(ctx, 3, portuse.UpdateCompanyRequest{Name: &name})

		assert.NoError(t, err)
	})

	t.Run("nil name keeps the stored value", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("GetByID", mock.Anything, 3).Return(&entity.Company{ID: 3, Name: "Acme"}, nil)
		repo.On("Update", mock.MatchedBy(func(c *entity.Company) bool {
			return c.Name == "Acme"
		})).Return(nil)

		err := uc.Update(ctx, 3, portuse.UpdateCompanyRequest{})

		assert.NoError(t, err)
	})

	t.Run("missing company", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("GetByID", mock.Anything, 3).Return(nil, nil)

		name := "Acme Corp"
		err := uc.Update(ctx, 3, portuse.UpdateCompanyRequest{Name: &name})

		assert.ErrorIs(t, err, errs.ErrCompanyNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestCompanyDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("Exists", mock.Anything, 3).Return(true, nil)
		repo.On("Delete", 3).Return(nil)

		assert.NoError(t, uc.Delete(ctx, 3))
	})

	t.Run("missing company", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.On("Exists", mock.Anything, 3).Return(false, nil)

		err := uc.Delete(ctx, 3)

		assert.ErrorIs(t, err, errs.ErrCompanyNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}
