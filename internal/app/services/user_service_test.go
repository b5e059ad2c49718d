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

type fakeUserRepo struct {
	users   map[int64]*models.User
	updates map[int64]map[string]interface{}
	nextID  int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:   map[int64]*models.User{},
		updates: map[int64]map[string]interface{}{},
		nextID:  1,
	}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByVerificationToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range r.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			return u, nil
		}
	}
	return nil, apperrors.ErrInvalidEmailToken
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id int64, values map[string]interface{}) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	r.updates[id] = values
	if v, ok := values["is_verified"].(bool); ok {
		u.IsVerified = v
	}
	if v, ok := values["password"].(string); ok {
		u.Password = v
	}
	return nil
}

func (r *fakeUserRepo) ListUsers(_ context.Context, _ dto.UserListFilter, _ uint64, _ int) ([]*models.User, int64, error) {
	return nil, 0, nil
}

func TestCreateUserAlumniGetsVerificationCode(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeEmailSender{}
	svc := NewUserService(repo, mailer)

	user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		NomorInduk: "2019010101",
		Name:       " Budi Santoso ",
		Email:      " Budi@Kampus.ac.id ",
		Password:   "Rahasia123",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.RoleAs != models.RoleAlumni {
		t.Errorf("RoleAs = %q, want alumni by default", user.RoleAs)
	}
	if user.Email != "budi@kampus.ac.id" {
		t.Errorf("Email = %q, want normalized", user.Email)
	}
	if user.IsVerified {
		t.Error("alumni account starts verified, want unverified")
	}
	if user.VerificationToken == nil || len(*user.VerificationToken) != 6 {
		t.Errorf("VerificationToken = %v, want a 6-digit code", user.VerificationToken)
	}
	if len(mailer.verificationTo) != 1 || mailer.verificationTo[0] != "budi@kampus.ac.id" {
		t.Errorf("verification mail sent to %v, want the new account", mailer.verificationTo)
	}
	if !auth.CheckPassword(user.Password, "Rahasia123") {
		t.Error("stored password does not verify")
	}
}

func TestCreateUserDosenStartsVerified(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeEmailSender{}
	svc := NewUserService(repo, mailer)

	user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		RoleAs:     "dosen",
		NomorInduk: "0012345678",
		Name:       "Dr. Siti",
		Email:      "siti@kampus.ac.id",
		Password:   "Rahasia123",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if !user.IsVerified {
		t.Error("dosen account should start verified")
	}
	if len(mailer.verificationTo) != 0 {
		t.Errorf("verification mail sent for a dosen account: %v", mailer.verificationTo)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeEmailSender{})

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		RoleAs:   "superuser",
		Name:     "X",
		Email:    "x@kampus.ac.id",
		Password: "Rahasia123",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeEmailSender{})

	req := dto.CreateUserRequest{
		NomorInduk: "2019010101",
		Name:       "Budi",
		Email:      "budi@kampus.ac.id",
		Password:   "Rahasia123",
	}
	if _, err := svc.CreateUser(context.Background(), req); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	_, err := svc.CreateUser(context.Background(), req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("got %v, want ErrEmailAlreadyExists", err)
	}
}

func TestVerifyEmailActivatesAccount(t *testing.T) {
	code := "123456"
	expiry := time.Now().Add(time.Hour)
	repo := newFakeUserRepo(&models.User{
		ID: 4, Email: "budi@kampus.ac.id", Name: "Budi",
		VerificationToken: &code, VerificationTokenExpiresAt: &expiry,
	})
	mailer := &fakeEmailSender{}
	svc := NewUserService(repo, mailer)

	if err := svc.VerifyEmail(context.Background(), code); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}
	if !repo.users[4].IsVerified {
		t.Error("account not marked verified")
	}
	values := repo.updates[4]
	if values["verification_token"] != nil {
		t.Error("verification code not cleared")
	}
	if len(mailer.welcomeTo) != 1 {
		t.Errorf("expected one welcome email, got %d", len(mailer.welcomeTo))
	}
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	code := "123456"
	expiry := time.Now().Add(-time.Minute)
	repo := newFakeUserRepo(&models.User{
		ID: 4, Email: "budi@kampus.ac.id",
		VerificationToken: &code, VerificationTokenExpiresAt: &expiry,
	})
	svc := NewUserService(repo, &fakeEmailSender{})

	if err := svc.VerifyEmail(context.Background(), code); !errors.Is(err, apperrors.ErrInvalidEmailToken) {
		t.Errorf("got %v, want ErrInvalidEmailToken", err)
	}
}

func TestVerifyEmailUnknownCode(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeEmailSender{})

	if err := svc.VerifyEmail(context.Background(), "999999"); !errors.Is(err, apperrors.ErrInvalidEmailToken) {
		t.Errorf("got %v, want ErrInvalidEmailToken", err)
	}
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: 4, Email: "budi@kampus.ac.id", IsVerified: true})
	svc := NewUserService(repo, &fakeEmailSender{})

	if err := svc.ResendVerification(context.Background(), 4); !errors.Is(err, apperrors.ErrEmailAlreadyVerified) {
		t.Errorf("got %v, want ErrEmailAlreadyVerified", err)
	}
}

func TestUpdatePasswordChecksOldPassword(t *testing.T) {
	hashed, err := auth.HashPassword("LamaBanget1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo := newFakeUserRepo(&models.User{ID: 4, Email: "budi@kampus.ac.id", Password: hashed})
	svc := NewUserService(repo, &fakeEmailSender{})

	err = svc.UpdatePassword(context.Background(), 4, dto.UpdatePasswordRequest{
		OldPassword: "salah",
		NewPassword: "BaruRahasia1",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}

	err = svc.UpdatePassword(context.Background(), 4, dto.UpdatePasswordRequest{
		OldPassword: "LamaBanget1",
		NewPassword: "BaruRahasia1",
	})
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if !auth.CheckPassword(repo.users[4].Password, "BaruRahasia1") {
		t.Error("new password does not verify")
	}
}
