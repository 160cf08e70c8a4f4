package handler

import (
	"net/http"

	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/domain/port/usecase"
	"employeeservice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles department-related HTTP requests
type DepartmentHandler struct {
	departmentUseCase usecase.DepartmentUseCase
	logger            coreport.Logger
}

// NewDepartmentHandler creates a new department handler instance
func NewDepartmentHandler(
	departmentUseCase usecase.DepartmentUseCase,
	logger coreport.Logger,
) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUseCase: departmentUseCase,
		logger:            logger,
	}
}

// Add handles the POST /api/department endpoint
func (h *DepartmentHandler) Add(c *gin.Context) {
	var req dto.AddDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	id, err := h.departmentUseCase.Add(c.Request.Context(), usecase.AddDepartmentRequest{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// Get handles the GET /api/department/:id endpoint
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	department, err := h.departmentUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DepartmentResponse{
		ID:        department.ID,
		CompanyID: department.CompanyID,
		Name:      department.Name,
		Phone:     department.Phone,
	})
}

// Update handles the PATCH /api/department/:id endpoint
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	err := h.departmentUseCase.Update(c.Request.Context(), id, usecase.UpdateDepartmentRequest{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

// Delete handles the DELETE /api/department/:id endpoint
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.departmentUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
