package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/hanifz/tracerstudy/internal/app/models"
	appRepos "github.com/hanifz/tracerstudy/internal/app/repositories"
	"github.com/hanifz/tracerstudy/internal/config"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/auth"
)

// CreateDefaultData ensures the configured admin account exists so a
// fresh install can be administered right away.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	if _, err := userRepo.GetUserByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
		lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Admin account already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		RoleAs:     appModels.RoleAdmin,
		NomorInduk: "admin",
		Name:       cfg.Seed.AdminName,
		Email:      cfg.Seed.AdminEmail,
		Password:   hashed,
		LastLogin:  time.Now(),
		IsVerified: true,
	}

	id, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		// Another instance may have seeded concurrently
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Int64("id", id).Str("email", cfg.Seed.AdminEmail).Msg("Default admin account created")
	return nil
}
