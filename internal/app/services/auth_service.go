package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/auth"
	"github.com/hanifz/tracerstudy/internal/pkg/email"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

const (
	resetTokenBytes  = 20
	resetTokenExpiry = time.Hour
)

// tokenExpired reports whether a one-time token can no longer be used.
// A token stops working at the exact expiry instant.
func tokenExpired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || !now.Before(*expiresAt)
}

// authUserRepository is the slice of user storage the auth service needs.
type authUserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByResetPasswordToken(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, values map[string]interface{}) error
	UpdateLastLogin(ctx context.Context, id int64) error
}

// AuthService defines the interface for session and password operations
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (string, *models.User, error)
	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	CheckAuth(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo     authUserRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	baseURL      string
}

// NewAuthService creates a new auth service instance. baseURL is used to
// build the password reset link.
func NewAuthService(userRepo authUserRepository, jwtService *auth.JWTService, emailService email.EmailService, baseURL string) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
		baseURL:      baseURL,
	}
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password return the same error so callers cannot probe which
// accounts exist.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("error during login: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("error generating session token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// A failed timestamp update does not block the session
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	return token, user, nil
}

// ForgotPassword issues a reset token and mails the reset link
func (s *authServiceImpl) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error looking up user for password reset: %w", err)
	}

	token, err := helpers.GenerateHexToken(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("error generating reset token: %w", err)
	}

	expiresAt := time.Now().Add(resetTokenExpiry)
	err = s.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"reset_password_token":      token,
		"reset_password_expires_at": expiresAt,
	})
	if err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	resetURL := strings.TrimRight(s.baseURL, "/") + "/reset-password/" + token
	if err := s.emailService.SendPasswordResetEmail(user.Email, resetURL); err != nil {
		return fmt.Errorf("error sending password reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token and sets the new password
func (s *authServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrInvalidPasswordResetToken
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByResetPasswordToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPasswordResetToken) {
			return apperrors.ErrInvalidPasswordResetToken
		}
		return fmt.Errorf("error looking up reset token: %w", err)
	}

	if tokenExpired(user.ResetPasswordExpiresAt, time.Now()) {
		return apperrors.ErrInvalidPasswordResetToken
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = s.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"password":                  hashed,
		"reset_password_token":      nil,
		"reset_password_expires_at": nil,
	})
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if err := s.emailService.SendResetSuccessEmail(user.Email); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send reset success email")
	}

	return nil
}

// CheckAuth returns the current user for a validated session
func (s *authServiceImpl) CheckAuth(ctx context.Context, userID int64) (*models.User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}
