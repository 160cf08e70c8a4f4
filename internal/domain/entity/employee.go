package entity

// Employee represents a person employed by a company within one of its
// departments. Every employee owns exactly one passport row.
type Employee struct {
	ID           int    // Unique identifier for the employee
	Name         string // Given name, non-blank, up to 255 characters
	Surname      string // Family name, non-blank, up to 255 characters
	Phone        string // Contact phone, digits/spaces/'+', up to 50 characters
	CompanyID    int    // Employing company
	DepartmentID int    // Department within the company
	PassportID   int    // Attached passport row
}

// NewEmployee creates an employee after validating its fields. Foreign keys
// are carried as-is, referential checks belong to the services.
func NewEmployee(name, surname, phone string, companyID, departmentID, passportID int) (*Employee, error) {
	e := &Employee{
		CompanyID:    companyID,
		DepartmentID: departmentID,
		PassportID:   passportID,
	}
	if err := e.SetName(name); err != nil {
		return nil, err
	}
	if err := e.SetSurname(surname); err != nil {
		return nil, err
	}
	if err := e.SetPhone(phone); err != nil {
		return nil, err
	}

	return e, nil
}

// SetName replaces the given name after validation
func (e *Employee) SetName(name string) error {
	if err := requireText(name, "name", MaxNameLength); err != nil {
		return err
	}

	e.Name = name
	return nil
}

// SetSurname replaces the family name after validation
func (e *Employee) SetSurname(surname string) error {
	if err := requireText(surname, "surname", MaxNameLength); err != nil {
		return err
	}

	e.Surname = surname
	return nil
}

// SetPhone replaces the contact phone after validation
func (e *Employee) SetPhone(phone string) error {
	if err := requirePhone(phone, "phone"); err != nil {
		return err
	}

	e.Phone = phone
	return nil
}
