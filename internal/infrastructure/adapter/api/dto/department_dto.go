package dto

// AddDepartmentRequest is the payload for POST /api/department
type AddDepartmentRequest struct {
	CompanyID int    `json:"companyId" binding:"required,gt=0"`
	Name      string `json:"name" binding:"required,max=255"`
	Phone     string `json:"phone" binding:"required,phone,max=50"`
}

// UpdateDepartmentRequest is the payload for PATCH /api/department/:id.
// Omitted fields keep their current values.
type UpdateDepartmentRequest struct {
	CompanyID *int    `json:"companyId" binding:"omitempty,gt=0"`
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,phone,max=50"`
}

// DepartmentResponse is the department view returned by the API
type DepartmentResponse struct {
	ID        int    `json:"id"`
	CompanyID int    `json:"companyId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}
