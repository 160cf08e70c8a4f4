package usecase

import "context"

// PassportInput carries passport fields supplied together with an employee
type PassportInput struct {
	Type   string
	Number string
}

// UpdatePassportInput carries a partial passport update.
// Nil fields keep their current values.
type UpdatePassportInput struct {
	Type   *string
	Number *string
}

// DepartmentInfo is the department view embedded in employee responses
type DepartmentInfo struct {
	Name  string
	Phone string
}

// AddEmployeeRequest carries the fields needed to create an employee with
// its passport in one operation
type AddEmployeeRequest struct {
	Name         string
	Surname      string
	Phone        string
	CompanyID    int
	DepartmentID int
	Passport     PassportInput
}

// UpdateEmployeeRequest carries a partial employee update.
// Nil fields keep their current values. Changing the company requires
// changing the department in the same request.
type UpdateEmployeeRequest struct {
	Name         *string
	Surname      *string
	Phone        *string
	CompanyID    *int
	DepartmentID *int
	Passport     *UpdatePassportInput
}

// EmployeeResponse is the full employee view with the joined passport and
// department rows
type EmployeeResponse struct {
	ID         int
	Name       string
	Surname    string
	Phone      string
	CompanyID  int
	Passport   PassportInput
	Department DepartmentInfo
}

// EmployeeUseCase defines methods for employee-related business operations.
// Every mutating operation runs atomically: the employee row and its
// passport row change together or not at all.
type EmployeeUseCase interface {
	// Add creates an employee together with its passport and returns the
	// employee id. The department must exist and belong to the given company.
	Add(ctx context.Context, req AddEmployeeRequest) (int, error)

	// Get retrieves one employee with its passport and department
	Get(ctx context.Context, id int) (*EmployeeResponse, error)

	// GetAll retrieves every employee with passports and departments joined
	GetAll(ctx context.Context) ([]EmployeeResponse, error)

	// GetByCompanyID retrieves all employees of a company
	GetByCompanyID(ctx context.Context, companyID int) ([]EmployeeResponse, error)

	// GetByDepartmentID retrieves all employees of a department
	GetByDepartmentID(ctx context.Context, departmentID int) ([]EmployeeResponse, error)

	// Update applies a partial update to an employee and, when passport
	// fields are present, to its passport inside the same transaction
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) error

	// Delete removes an employee and its passport inside one transaction
	Delete(ctx context.Context, id int) error
}
