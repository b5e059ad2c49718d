package dto

// CreateUserRequest is the admin payload for creating an account.
// Non-alumni roles skip email verification and are created verified.
type CreateUserRequest struct {
	FakultasID     *int64 `json:"fakultasId"`
	ProgramStudiID *int64 `json:"programStudiId"`
	RoleAs         string `json:"roleAs" binding:"omitempty,oneof=admin alumni dosen"`
	NomorInduk     string `json:"nomorInduk" binding:"required,min=4,max=191"`
	Name           string `json:"name" binding:"required,min=4,max=191"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
}

// UpdateProfileRequest lets a user change their own name or email
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=4,max=191"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// UpdatePasswordRequest changes the caller's password after checking the old one
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AdminUpdateUserRequest is the admin payload for updating any account
type AdminUpdateUserRequest struct {
	FakultasID     *int64  `json:"fakultasId"`
	ProgramStudiID *int64  `json:"programStudiId"`
	RoleAs         *string `json:"roleAs" binding:"omitempty,oneof=admin alumni dosen"`
	NomorInduk     *string `json:"nomorInduk" binding:"omitempty,min=4,max=191"`
	Name           *string `json:"name" binding:"omitempty,min=4,max=191"`
	Email          *string `json:"email" binding:"omitempty,email"`
	IsVerified     *bool   `json:"isVerified"`
}

// UserListFilter collects the admin listing filters
type UserListFilter struct {
	RoleAs         *string
	FakultasID     *int64
	ProgramStudiID *int64
	Search         string
}
