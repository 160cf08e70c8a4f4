package dto

// AddCompanyRequest is the payload for POST /api/company
type AddCompanyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateCompanyRequest is the payload for PATCH /api/company/:id.
// Omitted fields keep their current values.
type UpdateCompanyRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

// CompanyResponse is the company view returned by the API
type CompanyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// IDResponse carries the id of a newly created resource
type IDResponse struct {
	ID int `json:"id"`
}
