package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employeeservice/internal/domain/entity"
	errs "employeeservice/internal/domain/error"
	mcore "employeeservice/mocks/port/core"
	muse "employeeservice/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newCompanyRouter(uc *muse.MockCompanyUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCompanyHandler(uc, newTestLogger())

	router := gin.New()
	router.POST("/api/company", h.Add)
	router.GET("/api/company/:id", h.Get)
	router.PATCH("/api/company/:id", h.Update)
	router.DELETE("/api/company/:id", h.Delete)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCompanyHandlerAdd(t *testing.T) {
	t.Run("returns the generated id", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Add", mock.Anything, mock.Anything).Return(3, nil)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodPost, "/api/company", `{"name":"Acme"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(3), decodeBody(t, rec)["id"])
	})

	t.Run("malformed payload yields 400", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodPost, "/api/company", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request payload", decodeBody(t, rec)["message"])
		uc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodPost, "/api/company", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("unexpected error is masked as internal server error", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Add", mock.Anything, mock.Anything).Return(0, errs.ErrDatabaseConnection)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodPost, "/api/company", `{"name":"Acme"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Internal server error", body["message"])
		assert.NotContains(t, rec.Body.String(), "database")
	})
}

func TestCompanyHandlerGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Get", mock.Anything, 3).Return(&entity.Company{ID: 3, Name: "Acme"}, nil)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodGet, "/api/company/3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(3), body["id"])
		assert.Equal(t, "Acme", body["name"])
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Get", mock.Anything, 3).Return(nil, errs.NewCompanyNotFound(3))

		rec := doRequest(t, newCompanyRouter(uc), http.MethodGet, "/api/company/3", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "company with id 3 not found", decodeBody(t, rec)["message"])
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodGet, "/api/company/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid id format", decodeBody(t, rec)["message"])
		uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("zero id yields 400", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodGet, "/api/company/0", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestCompanyHandlerUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Update", mock.Anything, 3, mock.Anything).Return(nil)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodPatch, "/api/company/3", `{"name":"Acme Corp"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Update", mock.Anything, 3, mock.Anything).Return(errs.NewCompanyNotFound(3))

		rec := doRequest(t, newCompanyRouter(uc), http.MethodPatch, "/api/company/3", `{"name":"Acme Corp"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Update", mock.Anything, 3, mock.Anything).
			Return(errs.NewBadRequest("field name is empty or contains whitespace only"))

		rec := doRequest(t, newCompanyRouter(uc), http.MethodPatch, "/api/company/3", `{"name":"  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompanyHandlerDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Delete", mock.Anything, 3).Return(nil)

		rec := doRequest(t, newCompanyRouter(uc), http.MethodDelete, "/api/company/3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		uc := new(muse.MockCompanyUseCase)
		uc.On("Delete", mock.Anything, 3).Return(errs.NewCompanyNotFound(3))

		rec := doRequest(t, newCompanyRouter(uc), http.MethodDelete, "/api/company/3", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
