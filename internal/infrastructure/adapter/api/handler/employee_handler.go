package handler

import (
	"net/http"

	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/domain/port/usecase"
	"employeeservice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeUseCase usecase.EmployeeUseCase
	logger          coreport.Logger
}

// NewEmployeeHandler creates a new employee handler instance
func NewEmployeeHandler(
	employeeUseCase usecase.EmployeeUseCase,
	logger coreport.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: employeeUseCase,
		logger:          logger,
	}
}

// toEmployeeDTO converts the usecase response to the API view
func toEmployeeDTO(resp *usecase.EmployeeResponse) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Surname:   resp.Surname,
		Phone:     resp.Phone,
		CompanyID: resp.CompanyID,
		Passport: dto.EmployeePassportDTO{
			Type:   resp.Passport.Type,
			Number: resp.Passport.Number,
		},
		Department: dto.EmployeeDepartmentDTO{
			Name:  resp.Department.Name,
			Phone: resp.Department.Phone,
		},
	}
}

// toEmployeeDTOs converts a slice of usecase responses keeping order
func toEmployeeDTOs(resps []usecase.EmployeeResponse) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, 0, len(resps))
	for i := range resps {
		out = append(out, toEmployeeDTO(&resps[i]))
	}
	return out
}

// Add handles the POST /api/employee endpoint
func (h *EmployeeHandler) Add(c *gin.Context) {
	var req dto.AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	id, err := h.employeeUseCase.Add(c.Request.Context(), usecase.AddEmployeeRequest{
		Name:         req.Name,
		Surname:      req.Surname,
		Phone:        req.Phone,
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		Passport: usecase.PassportInput{
			Type:   req.Passport.Type,
			Number: req.Passport.Number,
		},
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// Get handles the GET /api/employee/:id endpoint
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.employeeUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeDTO(resp))
}

// GetAll handles the GET /api/employee endpoint
func (h *EmployeeHandler) GetAll(c *gin.Context) {
	resps, err := h.employeeUseCase.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeDTOs(resps))
}

// GetByCompany handles the GET /api/employee/company/:id endpoint
func (h *EmployeeHandler) GetByCompany(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resps, err := h.employeeUseCase.GetByCompanyID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeDTOs(resps))
}

// GetByDepartment handles the GET /api/employee/department/:id endpoint
func (h *EmployeeHandler) GetByDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resps, err := h.employeeUseCase.GetByDepartmentID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeDTOs(resps))
}

// Update handles the PATCH /api/employee/:id endpoint
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	update := usecase.UpdateEmployeeRequest{
		Name:         req.Name,
		Surname:      req.Surname,
		Phone:        req.Phone,
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
	}
	if req.Passport != nil {
		update.Passport = &usecase.UpdatePassportInput{
			Type:   req.Passport.Type,
			Number: req.Passport.Number,
		}
	}

	if err := h.employeeUseCase.Update(c.Request.Context(), id, update); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

// Delete handles the DELETE /api/employee/:id endpoint
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.employeeUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
