package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Details   string `json:"details,omitempty"`
}
