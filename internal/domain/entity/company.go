package entity

// Company represents an organization that owns departments and employees
type Company struct {
	ID   int    // Unique identifier for the company
	Name string // Display name, non-blank, up to 255 characters
}

// NewCompany creates a company after validating its fields
func NewCompany(name string) (*Company, error) {
	if err := requireText(name, "name", MaxNameLength); err != nil {
		return nil, err
	}

	return &Company{Name: name}, nil
}

// Rename replaces the company name after validation
func (c *Company) Rename(name string) error {
	if err := requireText(name, "name", MaxNameLength); err != nil {
		return err
	}

	c.Name = name
	return nil
}
