package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/models/dto/enums"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/auth"
	"github.com/hanifz/tracerstudy/internal/pkg/email"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

const verificationTokenExpiry = 24 * time.Hour

// userRepository is the slice of user storage the user service needs.
type userRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, values map[string]interface{}) error
	ListUsers(ctx context.Context, filter dto.UserListFilter, offset uint64, limit int) ([]*models.User, int64, error)
}

// UserService defines the interface for account management operations
type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, req dto.UpdatePasswordRequest) error
	AdminUpdateUser(ctx context.Context, id int64, req dto.AdminUpdateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context, filter dto.UserListFilter, offset uint64, limit int) ([]*models.User, int64, error)
	VerifyEmail(ctx context.Context, code string) error
	ResendVerification(ctx context.Context, userID int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo     userRepository
	emailService email.EmailService
}

// NewUserService creates a new user service instance
func NewUserService(userRepo userRepository, emailService email.EmailService) UserService {
	return &userServiceImpl{
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// CreateUser registers a new account. Alumni must verify their email
// with a mailed 6-digit code; admin and dosen accounts start verified.
func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	role := enums.RoleType(req.RoleAs)
	if req.RoleAs == "" {
		role = enums.RoleAlumni
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.RoleAs)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FakultasID:     req.FakultasID,
		ProgramStudiID: req.ProgramStudiID,
		RoleAs:         models.RoleType(role),
		NomorInduk:     strings.TrimSpace(req.NomorInduk),
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Password:       hashed,
	}

	// Only alumni go through email verification
	var code string
	if role == enums.RoleAlumni {
		code, err = email.GenerateVerificationCode()
		if err != nil {
			return nil, fmt.Errorf("error generating verification code: %w", err)
		}
		expiresAt := time.Now().Add(verificationTokenExpiry)
		user.VerificationToken = &code
		user.VerificationTokenExpiresAt = &expiresAt
	} else {
		user.IsVerified = true
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = id

	if code != "" {
		if err := s.emailService.SendVerificationEmail(user.Email, user.Name, code); err != nil {
			logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send verification email")
		}
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.userRepo.GetUserByID(ctx, id)
}

// UpdateProfile lets a user change their own name or email
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*models.User, error) {
	values := map[string]interface{}{}
	if req.Name != nil {
		values["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		values["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if len(values) > 0 {
		if err := s.userRepo.UpdateUser(ctx, userID, values); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetUserByID(ctx, userID)
}

// UpdatePassword changes the caller's password after checking the old one
func (s *userServiceImpl) UpdatePassword(ctx context.Context, userID int64, req dto.UpdatePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.userRepo.UpdateUser(ctx, userID, map[string]interface{}{"password": hashed})
}

// AdminUpdateUser updates any account, including role and placement
func (s *userServiceImpl) AdminUpdateUser(ctx context.Context, id int64, req dto.AdminUpdateUserRequest) (*models.User, error) {
	values := map[string]interface{}{}
	if req.FakultasID != nil {
		values["fakultas_id"] = *req.FakultasID
	}
	if req.ProgramStudiID != nil {
		values["program_studi_id"] = *req.ProgramStudiID
	}
	if req.RoleAs != nil {
		role := enums.RoleType(*req.RoleAs)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *req.RoleAs)
		}
		values["role_as"] = string(role)
	}
	if req.NomorInduk != nil {
		values["nomor_induk"] = strings.TrimSpace(*req.NomorInduk)
	}
	if req.Name != nil {
		values["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		values["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.IsVerified != nil {
		values["is_verified"] = *req.IsVerified
	}

	if len(values) > 0 {
		if err := s.userRepo.UpdateUser(ctx, id, values); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetUserByID(ctx, id)
}

// ListUsers retrieves accounts with filtering and pagination
func (s *userServiceImpl) ListUsers(ctx context.Context, filter dto.UserListFilter, offset uint64, limit int) ([]*models.User, int64, error) {
	if filter.RoleAs != nil && !enums.RoleType(*filter.RoleAs).IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *filter.RoleAs)
	}
	return s.userRepo.ListUsers(ctx, filter, offset, limit)
}

// VerifyEmail consumes a 6-digit verification code and activates the
// account, then sends the welcome email.
func (s *userServiceImpl) VerifyEmail(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return apperrors.ErrInvalidEmailToken
	}

	user, err := s.userRepo.GetUserByVerificationToken(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidEmailToken) {
			return apperrors.ErrInvalidEmailToken
		}
		return fmt.Errorf("error looking up verification code: %w", err)
	}

	if user.IsVerified {
		return apperrors.ErrEmailAlreadyVerified
	}
	if tokenExpired(user.VerificationTokenExpiresAt, time.Now()) {
		return apperrors.ErrInvalidEmailToken
	}

	err = s.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"is_verified":                   true,
		"verification_token":            nil,
		"verification_token_expires_at": nil,
	})
	if err != nil {
		return fmt.Errorf("error marking user verified: %w", err)
	}

	if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}

	return nil
}

// ResendVerification regenerates the verification code for an
// unverified account and mails it again.
func (s *userServiceImpl) ResendVerification(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return apperrors.ErrEmailAlreadyVerified
	}

	code, err := email.GenerateVerificationCode()
	if err != nil {
		return fmt.Errorf("error generating verification code: %w", err)
	}

	expiresAt := time.Now().Add(verificationTokenExpiry)
	err = s.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"verification_token":            code,
		"verification_token_expires_at": expiresAt,
	})
	if err != nil {
		return fmt.Errorf("error storing verification code: %w", err)
	}

	if err := s.emailService.SendVerificationEmail(user.Email, user.Name, code); err != nil {
		return fmt.Errorf("error sending verification email: %w", err)
	}

	return nil
}
