package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// UpdateTestRequest represents the test update request body. Omitted fields are unchanged.
type UpdateTestRequest struct {
	Title       *string `json:"title" example:"Biología celular"`
	Description *string `json:"description" example:"Repaso del tema 3"`
	Category    *string `json:"category" example:"Ciencias"`
	Difficulty  *string `json:"difficulty" example:"medio"`
	Duration    *int    `json:"duration" example:"30"`
	IsPublic    *bool   `json:"is_public" example:"true"`
}

// SubmitAnswersRequest represents the answers of one attempt.
type SubmitAnswersRequest struct {
	Answers []int `json:"answers" binding:"required" example:"0,2,-1,3"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp,omitempty" example:"2025-01-15T10:30:00Z"`
	Error     string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}
