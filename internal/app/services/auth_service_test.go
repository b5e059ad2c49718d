package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/auth"
)

type fakeAuthUserRepo struct {
	users     []*models.User
	updates   map[int64]map[string]interface{}
	lastLogin []int64
}

func newFakeAuthUserRepo(users ...*models.User) *fakeAuthUserRepo {
	return &fakeAuthUserRepo{
		users:   users,
		updates: map[int64]map[string]interface{}{},
	}
}

func (r *fakeAuthUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeAuthUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeAuthUserRepo) GetUserByResetPasswordToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetPasswordToken != nil && *u.ResetPasswordToken == token {
			return u, nil
		}
	}
	return nil, apperrors.ErrInvalidPasswordResetToken
}

func (r *fakeAuthUserRepo) UpdateUser(_ context.Context, id int64, values map[string]interface{}) error {
	r.updates[id] = values
	return nil
}

func (r *fakeAuthUserRepo) UpdateLastLogin(_ context.Context, id int64) error {
	r.lastLogin = append(r.lastLogin, id)
	return nil
}

type fakeEmailSender struct {
	verificationTo []string
	resetURLs      []string
	resetSuccess   []string
	welcomeTo      []string
}

func (f *fakeEmailSender) SendVerificationEmail(toEmail, _, _ string) error {
	f.verificationTo = append(f.verificationTo, toEmail)
	return nil
}

func (f *fakeEmailSender) SendWelcomeEmail(toEmail, _ string) error {
	f.welcomeTo = append(f.welcomeTo, toEmail)
	return nil
}

func (f *fakeEmailSender) SendPasswordResetEmail(_, resetURL string) error {
	f.resetURLs = append(f.resetURLs, resetURL)
	return nil
}

func (f *fakeEmailSender) SendResetSuccessEmail(toEmail string) error {
	f.resetSuccess = append(f.resetSuccess, toEmail)
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "tracerstudy-test",
	})
}

func testUser(t *testing.T, id int64, email, password string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &models.User{
		ID:         id,
		RoleAs:     models.RoleAlumni,
		NomorInduk: "2019010101",
		Name:       "Budi Santoso",
		Email:      email,
		Password:   hashed,
		IsVerified: true,
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeAuthUserRepo(testUser(t, 1, "budi@kampus.ac.id", "Rahasia123"))
	svc := NewAuthService(repo, testJWTService(), &fakeEmailSender{}, "http://localhost:8080")

	token, user, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "  Budi@Kampus.ac.id ",
		Password: "Rahasia123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user == nil || user.ID != 1 {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(repo.lastLogin) != 1 || repo.lastLogin[0] != 1 {
		t.Errorf("expected last login update for user 1, got %v", repo.lastLogin)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAuthUserRepo(testUser(t, 1, "budi@kampus.ac.id", "Rahasia123"))
	svc := NewAuthService(repo, testJWTService(), &fakeEmailSender{}, "http://localhost:8080")

	// Unknown email and wrong password must be indistinguishable
	cases := []dto.LoginRequest{
		{Email: "tidakada@kampus.ac.id", Password: "Rahasia123"},
		{Email: "budi@kampus.ac.id", Password: "salah-password"},
	}
	for _, req := range cases {
		_, _, err := svc.Login(context.Background(), req)
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Login(%s): got %v, want ErrInvalidCredentials", req.Email, err)
		}
	}
}

func TestForgotPasswordStoresTokenAndSendsMail(t *testing.T) {
	repo := newFakeAuthUserRepo(testUser(t, 7, "budi@kampus.ac.id", "Rahasia123"))
	mailer := &fakeEmailSender{}
	svc := NewAuthService(repo, testJWTService(), mailer, "http://localhost:8080/")

	if err := svc.ForgotPassword(context.Background(), "budi@kampus.ac.id"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	values, ok := repo.updates[7]
	if !ok {
		t.Fatal("expected a reset token update for user 7")
	}
	token, _ := values["reset_password_token"].(string)
	if token == "" {
		t.Error("expected a stored reset token")
	}
	if _, ok := values["reset_password_expires_at"].(time.Time); !ok {
		t.Error("expected a reset token expiry")
	}
	if len(mailer.resetURLs) != 1 {
		t.Fatalf("expected one reset email, got %d", len(mailer.resetURLs))
	}
	want := "http://localhost:8080/reset-password/" + token
	if mailer.resetURLs[0] != want {
		t.Errorf("reset URL = %q, want %q", mailer.resetURLs[0], want)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeAuthUserRepo(), testJWTService(), &fakeEmailSender{}, "http://localhost:8080")

	err := svc.ForgotPassword(context.Background(), "tidakada@kampus.ac.id")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestResetPasswordSuccess(t *testing.T) {
	user := testUser(t, 3, "budi@kampus.ac.id", "LamaBanget1")
	token := "abc123token"
	expiry := time.Now().Add(30 * time.Minute)
	user.ResetPasswordToken = &token
	user.ResetPasswordExpiresAt = &expiry

	repo := newFakeAuthUserRepo(user)
	mailer := &fakeEmailSender{}
	svc := NewAuthService(repo, testJWTService(), mailer, "http://localhost:8080")

	if err := svc.ResetPassword(context.Background(), token, "BaruRahasia1"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	values, ok := repo.updates[3]
	if !ok {
		t.Fatal("expected a password update for user 3")
	}
	hashed, _ := values["password"].(string)
	if !auth.CheckPassword(hashed, "BaruRahasia1") {
		t.Error("stored password does not verify against the new password")
	}
	if values["reset_password_token"] != nil {
		t.Error("expected the reset token to be cleared")
	}
	if len(mailer.resetSuccess) != 1 {
		t.Errorf("expected one reset success email, got %d", len(mailer.resetSuccess))
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	user := testUser(t, 3, "budi@kampus.ac.id", "LamaBanget1")
	token := "expired-token"
	expiry := time.Now().Add(-time.Minute)
	user.ResetPasswordToken = &token
	user.ResetPasswordExpiresAt = &expiry

	svc := NewAuthService(newFakeAuthUserRepo(user), testJWTService(), &fakeEmailSender{}, "http://localhost:8080")

	err := svc.ResetPassword(context.Background(), token, "BaruRahasia1")
	if !errors.Is(err, apperrors.ErrInvalidPasswordResetToken) {
		t.Errorf("got %v, want ErrInvalidPasswordResetToken", err)
	}
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(newFakeAuthUserRepo(), testJWTService(), &fakeEmailSender{}, "http://localhost:8080")

	err := svc.ResetPassword(context.Background(), "some-token", "pendek")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestCheckAuthUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeAuthUserRepo(), testJWTService(), &fakeEmailSender{}, "http://localhost:8080")

	if _, err := svc.CheckAuth(context.Background(), 99); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestTokenExpiredAtExactInstant(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	if tokenExpired(&future, now) {
		t.Error("token before expiry reported expired")
	}
	if !tokenExpired(&now, now) {
		t.Error("token at the expiry instant must be rejected")
	}
	if !tokenExpired(&past, now) {
		t.Error("token past expiry reported usable")
	}
	if !tokenExpired(nil, now) {
		t.Error("missing expiry must count as expired")
	}
}
