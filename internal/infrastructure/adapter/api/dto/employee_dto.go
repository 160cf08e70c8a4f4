package dto

// PassportDTO carries passport fields inside employee payloads
type PassportDTO struct {
	Type   string `json:"type" binding:"required,max=50"`
	Number string `json:"number" binding:"required,digits_spaces,max=50"`
}

// UpdatePassportDTO carries a partial passport update.
// Omitted fields keep their current values.
type UpdatePassportDTO struct {
	Type   *string `json:"type" binding:"omitempty,max=50"`
	Number *string `json:"number" binding:"omitempty,digits_spaces,max=50"`
}

// AddEmployeeRequest is the payload for POST /api/employee
type AddEmployeeRequest struct {
	Name         string      `json:"name" binding:"required,max=255"`
	Surname      string      `json:"surname" binding:"required,max=255"`
	Phone        string      `json:"phone" binding:"required,phone,max=50"`
	CompanyID    int         `json:"companyId" binding:"required,gt=0"`
	DepartmentID int         `json:"departmentId" binding:"required,gt=0"`
	Passport     PassportDTO `json:"passport" binding:"required"`
}

// UpdateEmployeeRequest is the payload for PATCH /api/employee/:id.
// Omitted fields keep their current values.
type UpdateEmployeeRequest struct {
	Name         *string            `json:"name" binding:"omitempty,max=255"`
	Surname      *string            `json:"surname" binding:"omitempty,max=255"`
	Phone        *string            `json:"phone" binding:"omitempty,phone,max=50"`
	CompanyID    *int               `json:"companyId" binding:"omitempty,gt=0"`
	DepartmentID *int               `json:"departmentId" binding:"omitempty,gt=0"`
	Passport     *UpdatePassportDTO `json:"passport" binding:"omitempty"`
}

// EmployeeDepartmentDTO is the department view embedded in employee responses
type EmployeeDepartmentDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// EmployeePassportDTO is the passport view embedded in employee responses
type EmployeePassportDTO struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// EmployeeResponse is the full employee view returned by the API
type EmployeeResponse struct {
	ID         int                   `json:"id"`
	Name       string                `json:"name"`
	Surname    string                `json:"surname"`
	Phone      string                `json:"phone"`
	CompanyID  int                   `json:"companyId"`
	Passport   EmployeePassportDTO   `json:"passport"`
	Department EmployeeDepartmentDTO `json:"department"`
}
