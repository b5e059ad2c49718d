package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/services"
	"github.com/hanifz/tracerstudy/internal/config"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/auth"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
	userService services.UserService
	jwtService  *auth.JWTService
	cfg         *config.Config
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, userService services.UserService, jwtService *auth.JWTService, cfg *config.Config) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
		jwtService:  jwtService,
		cfg:         cfg,
	}
}

func toAuthUserData(user *models.User) dto.AuthUserData {
	return dto.AuthUserData{
		ID:             user.ID,
		FakultasID:     user.FakultasID,
		ProgramStudiID: user.ProgramStudiID,
		RoleAs:         string(user.RoleAs),
		NomorInduk:     user.NomorInduk,
		Name:           user.Name,
		Email:          user.Email,
		IsVerified:     user.IsVerified,
	}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", c.cfg.IsProduction(), true)
}

// Login authenticates a user and starts a cookie session
// @Summary Log in
// @Description Authenticates with email and password and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.StructuredResponse{data=dto.AuthUserData} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, user, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, c.jwtService.TokenMaxAge())
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(toAuthUserData(user), "Login berhasil"))
}

// Logout clears the session cookie
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.StructuredResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Logout berhasil"))
}

// CheckAuth returns the authenticated user's profile
// @Summary Check session
// @Description Returns the profile behind the current session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=dto.AuthUserData} "Authenticated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/check-auth [get]
func (c *AuthController) CheckAuth(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.CheckAuth(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(toAuthUserData(user), "Authenticated"))
}

// ForgotPassword sends a password reset email
// @Summary Request a password reset
// @Description Sends a reset link to the given address when an account exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.StructuredResponse "Reset email processed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.ForgotPassword(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Jika email terdaftar, tautan reset password telah dikirim"))
}

// ResetPassword sets a new password using a reset token
// @Summary Reset password
// @Description Sets a new password for the account behind a valid reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.StructuredResponse "Password reset"
// @Failure 400 {object} dto.ErrorResponse "Invalid token or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/reset-password/{token} [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	token := ctx.Param("token")

	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid password data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.ResetPassword(ctx, token, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Password berhasil direset"))
}

// VerifyEmail confirms an account with the emailed code
// @Summary Verify email
// @Description Confirms the account behind the 6-digit verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyEmailRequest true "Verification code"
// @Success 200 {object} dto.StructuredResponse "Email verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/verify-email [post]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid verification code")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.VerifyEmail(ctx, req.Code); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Email berhasil diverifikasi"))
}

// ResendVerification sends a fresh verification code to the caller
// @Summary Resend verification code
// @Description Generates a new verification code and emails it to the caller
// @Tags auth
// @Produce json
// @Success 200 {object} dto.StructuredResponse "Verification email sent"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Email already verified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/resend-verification [post]
func (c *AuthController) ResendVerification(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.ResendVerification(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Kode verifikasi telah dikirim ulang"))
}
