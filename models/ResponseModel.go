package models

// Swagger / API docs: common request and response models referenced by handler annotations

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid input"`
	Details string `json:"details,omitempty" example:""`
}

// MessageResponse is generic response for APIs that return only {"message": "..."}
type MessageResponse struct {
	Message string `json:"message" example:"Success"`
}

// SuccessResponse is used in @Success for generic success
type SuccessResponse struct {
	Message string      `json:"message" example:"Success"`
	Data    interface{} `json:"data,omitempty"`
}

// CreateProjectResponse is the response for create project API (swagger)
type CreateProjectResponse struct {
	Message   string `json:"message" example:"Project created successfully"`
	ProjectID int    `json:"project_id" example:"1"`
}

// CreateRecordResponse is the response for create APIs that return the new row id (swagger)
type CreateRecordResponse struct {
	Message string `json:"message" example:"Record created successfully"`
	ID      int    `json:"id" example:"1"`
}

// HealthResponse is used in @Success for the health endpoint (swagger)
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
