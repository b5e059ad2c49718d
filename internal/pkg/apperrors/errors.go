package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Email verification errors
var (
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrInvalidEmailToken    = errors.New("invalid or expired email verification token")
	ErrEmailAlreadyVerified = errors.New("email already verified")
)

// Password reset errors
var (
	ErrInvalidPasswordResetToken = errors.New("invalid or expired password reset token")
)

// Master data errors
var (
	ErrFakultasNotFound        = errors.New("fakultas not found")
	ErrFakultasAlreadyExists   = errors.New("fakultas with this name already exists")
	ErrFakultasHasRelations    = errors.New("fakultas has associated data and cannot be deleted")
	ErrProgramStudiNotFound    = errors.New("program studi not found")
	ErrProgramStudiHasRelation = errors.New("program studi has associated data and cannot be deleted")
)

// Survey errors
var (
	ErrPertanyaanNotFound     = errors.New("pertanyaan not found")
	ErrPertanyaanInactive     = errors.New("pertanyaan is not active")
	ErrPilihanJawabanNotFound = errors.New("pilihan jawaban not found")
	ErrPilihanJawabanMismatch = errors.New("pilihan jawaban does not belong to the pertanyaan")
	ErrJawabanNotFound        = errors.New("jawaban not found")
	ErrJawabanAlreadyExists   = errors.New("jawaban already exists for this user and pertanyaan")
)

// Profile and location errors
var (
	ErrBiodataNotFound        = errors.New("biodata not found")
	ErrBiodataAlreadyExists   = errors.New("biodata already exists for this user")
	ErrBiodataImageRequired   = errors.New("biodata image is required")
	ErrProvinsiNotFound       = errors.New("provinsi not found")
	ErrKotaNotFound           = errors.New("kota not found")
	ErrLokasiPekerjaanMissing = errors.New("lokasi pekerjaan not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
