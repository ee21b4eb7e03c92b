package models

// ErrorResponse mirrors the body written by the error middleware
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"User not found"`
	Code      string `json:"code" example:"NOT_FOUND"`
	RequestID string `json:"request_id,omitempty" example:"5b0a3f0e-5a2e-4a51-8c41-7c7d0a4f3b2e"`
}
