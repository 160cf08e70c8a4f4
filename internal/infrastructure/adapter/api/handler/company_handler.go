package handler

import (
	"net/http"

	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/domain/port/usecase"
	"employeeservice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyUseCase usecase.CompanyUseCase
	logger         coreport.Logger
}

// NewCompanyHandler creates a new company handler instance
func NewCompanyHandler(
	companyUseCase usecase.CompanyUseCase,
	logger coreport.Logger,
) *CompanyHandler {
	return &CompanyHandler{
		companyUseCase: companyUseCase,
		logger:         logger,
	}
}

// Add handles the POST /api/company endpoint
func (h *CompanyHandler) Add(c *gin.Context) {
	var req dto.AddCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	id, err := h.companyUseCase.Add(c.Request.Context(), usecase.AddCompanyRequest{
		Name: req.Name,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// Get handles the GET /api/company/:id endpoint
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	company, err := h.companyUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyResponse{
		ID:   company.ID,
		Name: company.Name,
	})
}

// Update handles the PATCH /api/company/:id endpoint
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	err := h.companyUseCase.Update(c.Request.Context(), id, usecase.UpdateCompanyRequest{
		Name: req.Name,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

// Delete handles the DELETE /api/company/:id endpoint
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.companyUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
