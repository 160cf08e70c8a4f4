package entity

// Passport represents an identity document attached to an employee
type Passport struct {
	ID     int    // Unique identifier for the passport
	Type   string // Document kind, non-blank, up to 50 characters
	Number string // Document number, digits and spaces, up to 50 characters
}

// NewPassport creates a passport after validating its fields
func NewPassport(passportType, number string) (*Passport, error) {
	p := &Passport{}
	if err := p.SetType(passportType); err != nil {
		return nil, err
	}
	if err := p.SetNumber(number); err != nil {
		return nil, err
	}

	return p, nil
}

// SetType replaces the document kind after validation
func (p *Passport) SetType(passportType string) error {
	if err := requireText(passportType, "passport type", MaxTypeLength); err != nil {
		return err
	}

	p.Type = passportType
	return nil
}

// SetNumber replaces the document number after validation
func (p *Passport) SetNumber(number string) error {
	if err := requireDigitsSpaces(number, "passport number", MaxNumberLength); err != nil {
		return err
	}

	p.Number = number
	return nil
}
