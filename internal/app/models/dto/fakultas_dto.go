package dto

// CreateFakultasRequest represents faculty creation data
type CreateFakultasRequest struct {
	Name string `json:"name" binding:"required,min=2,max=191"`
}

// UpdateFakultasRequest represents faculty update data
type UpdateFakultasRequest struct {
	Name string `json:"name" binding:"required,min=2,max=191"`
}

// CreateProgramStudiRequest represents study program creation data
type CreateProgramStudiRequest struct {
	FakultasID int64  `json:"fakultasId" binding:"required,min=1"`
	Name       string `json:"name" binding:"required,min=2,max=191"`
}

// UpdateProgramStudiRequest represents study program update data
type UpdateProgramStudiRequest struct {
	FakultasID *int64  `json:"fakultasId" binding:"omitempty,min=1"`
	Name       *string `json:"name" binding:"omitempty,min=2,max=191"`
}
