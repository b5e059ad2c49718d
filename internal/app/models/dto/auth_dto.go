package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"budi@kampus.ac.id"`
	Password string `json:"password" binding:"required" example:"Rahasia123"`
}

// ForgotPasswordRequest asks for a password reset email
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries the new password; the token travels in the path
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// VerifyEmailRequest carries the 6-digit verification code
type VerifyEmailRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// AuthUserData is the sanitized user payload returned by login and check-auth
type AuthUserData struct {
	ID             int64  `json:"id"`
	FakultasID     *int64 `json:"fakultasId,omitempty"`
	ProgramStudiID *int64 `json:"programStudiId,omitempty"`
	RoleAs         string `json:"roleAs"`
	NomorInduk     string `json:"nomorInduk"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsVerified     bool   `json:"isVerified"`
}
