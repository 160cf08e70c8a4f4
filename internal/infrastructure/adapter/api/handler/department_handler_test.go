package handler

import (
	"net/http"
	"testing"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	"employeeservice/internal/domain/port/usecase"
	"employeeservice/internal/infrastructure/adapter/api/dto"
	muse "employeeservice/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDepartmentRouter(t *testing.T, uc *muse.MockDepartmentUseCase) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	registerValidationsOnce.Do(func() {
		require.NoError(t, dto.RegisterCustomValidations())
	})

	h := NewDepartmentHandler(uc, newTestLogger())

	router := gin.New()
	router.POST("/api/department", h.Add)
	router.GET("/api/department/:id", h.Get)
	router.PATCH("/api/department/:id", h.Update)
	router.DELETE("/api/department/:id", h.Delete)
	return router
}

func TestDepartmentHandlerAdd(t *testing.T) {
	t.Run("returns the generated id", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Add", mock.Anything, mock.MatchedBy(func(req usecase.AddDepartmentRequest) bool {
			return req.CompanyID == 1 && req.Name == "Engineering"
		})).Return(10, nil)

		body := `{"companyId": 1, "name": "Engineering", "phone": "+7 999 111 22 33"}`
		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodPost, "/api/department", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(10), decodeBody(t, rec)["id"])
	})

	t.Run("letters in the phone fail binding", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)

		body := `{"companyId": 1, "name": "Engineering", "phone": "CALL-NOW"}`
		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodPost, "/api/department", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("missing company maps to 404", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Add", mock.Anything, mock.Anything).Return(0, errs.NewCompanyNotFound(1))

		body := `{"companyId": 1, "name": "Engineering", "phone": "123"}`
		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodPost, "/api/department", body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDepartmentHandlerGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Get", mock.Anything, 10).
			Return(&entity.Department{ID: 10, CompanyID: 1, Name: "Engineering", Phone: "123"}, nil)

		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodGet, "/api/department/10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(10), body["id"])
		assert.Equal(t, float64(1), body["companyId"])
		assert.Equal(t, "Engineering", body["name"])
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Get", mock.Anything, 10).Return(nil, errs.NewDepartmentNotFound(10))

		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodGet, "/api/department/10", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDepartmentHandlerUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Update", mock.Anything, 10, mock.MatchedBy(func(req usecase.UpdateDepartmentRequest) bool {
			return req.Name != nil && *req.Name == "Platform" && req.CompanyID == nil
		})).Return(nil)

		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodPatch, "/api/department/10", `{"name":"Platform"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("move to a missing company maps to 404", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Update", mock.Anything, 10, mock.Anything).Return(errs.NewCompanyNotFound(2))

		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodPatch, "/api/department/10", `{"companyId":2}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDepartmentHandlerDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Delete", mock.Anything, 10).Return(nil)

		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodDelete, "/api/department/10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		uc := new(muse.MockDepartmentUseCase)
		uc.On("Delete", mock.Anything, 10).Return(errs.NewDepartmentNotFound(10))

		rec := doRequest(t, newDepartmentRouter(t, uc), http.MethodDelete, "/api/department/10", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
