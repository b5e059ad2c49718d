package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

// notFoundErrors maps domain not-found sentinels to their messages
var notFoundErrors = map[error]string{
	apperrors.ErrResourceNotFound:       "Resource not found",
	apperrors.ErrUserNotFound:           "User not found",
	apperrors.ErrFakultasNotFound:       "Fakultas not found",
	apperrors.ErrProgramStudiNotFound:   "Program studi not found",
	apperrors.ErrPertanyaanNotFound:     "Pertanyaan not found",
	apperrors.ErrPilihanJawabanNotFound: "Pilihan jawaban not found",
	apperrors.ErrJawabanNotFound:        "Jawaban not found",
	apperrors.ErrBiodataNotFound:        "Biodata not found",
	apperrors.ErrProvinsiNotFound:       "Provinsi not found",
	apperrors.ErrKotaNotFound:           "Kota not found",
	apperrors.ErrLokasiPekerjaanMissing: "Lokasi pekerjaan not found",
}

// conflictErrors maps duplicate and relation sentinels to their messages
var conflictErrors = map[error]string{
	apperrors.ErrResourceAlreadyExists:   "Resource already exists",
	apperrors.ErrEmailAlreadyExists:      "Email already exists",
	apperrors.ErrFakultasAlreadyExists:   "Fakultas with this name already exists",
	apperrors.ErrFakultasHasRelations:    "Fakultas has associated data and cannot be deleted",
	apperrors.ErrProgramStudiHasRelation: "Program studi has associated data and cannot be deleted",
	apperrors.ErrEmailAlreadyVerified:    "Email is already verified",
}

// validationErrors maps 400-class domain sentinels to their messages.
// Duplicate biodata and jawaban rows answer 400, not 409, so form
// clients surface them as input errors.
var validationErrors = map[error]string{
	apperrors.ErrValidationFailed:          "Validation failed",
	apperrors.ErrBadRequest:                "Bad request",
	apperrors.ErrPertanyaanInactive:        "Pertanyaan is not active",
	apperrors.ErrPilihanJawabanMismatch:    "Pilihan jawaban does not belong to the pertanyaan",
	apperrors.ErrBiodataImageRequired:      "Biodata image is required",
	apperrors.ErrBiodataAlreadyExists:      "Biodata already exists for this user",
	apperrors.ErrJawabanAlreadyExists:      "Jawaban already exists for this pertanyaan",
	apperrors.ErrInvalidEmailToken:         "Invalid or expired verification code",
	apperrors.ErrInvalidPasswordResetToken: "Invalid or expired password reset token",
}

// HandleAPIError maps service errors to the appropriate HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	for sentinel, message := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))
			return
		}
	}

	for sentinel, message := range conflictErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusConflict, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))
			return
		}
	}

	for sentinel, message := range validationErrors {
		if errors.Is(err, sentinel) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
			errorDetail = errorDetail.WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")))
	case errors.Is(err, apperrors.ErrEmailNotVerified):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Email not verified")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
