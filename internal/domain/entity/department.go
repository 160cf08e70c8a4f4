package entity

// Department represents a unit within a company
type Department struct {
	ID        int    // Unique identifier for the department
	CompanyID int    // Owning company
	Name      string // Display name, non-blank, up to 255 characters
	Phone     string // Contact phone, digits/spaces/'+', up to 50 characters
}

// NewDepartment creates a department after validating its fields
func NewDepartment(companyID int, name, phone string) (*Department, error) {
	d := &Department{CompanyID: companyID}
	if err := d.SetName(name); err != nil {
		return nil, err
	}
	if err := d.SetPhone(phone); err != nil {
		return nil, err
	}

	return d, nil
}

// SetName replaces the department name after validation
func (d *Department) SetName(name string) error {
	if err := requireText(name, "name", MaxNameLength); err != nil {
		return err
	}

	d.Name = name
	return nil
}

// SetPhone replaces the contact phone after validation
func (d *Department) SetPhone(phone string) error {
	if err := requirePhone(phone, "phone"); err != nil {
		return err
	}

	d.Phone = phone
	return nil
}
