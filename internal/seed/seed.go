// Package seed creates the default administrator account on startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/repositories"
	"github.com/adeolu/campusreg/internal/config"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
	"github.com/adeolu/campusreg/internal/pkg/auth"
)

// CreateDefaultAdmin ensures a superuser account exists. It is a no-op when
// the admin email is unset or the account is already present.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Debug().Msg("No admin credentials configured, skipping admin seed")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	if _, err := userRepo.GetUserByEmail(ctx, cfg.Admin.Email); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:           "admin",
		Email:              cfg.Admin.Email,
		Password:           hashedPassword,
		FirstName:          "System",
		LastName:           "Administrator",
		RegistrationNumber: "ADMIN",
		Role:               models.RoleCourseAdviser,
		IsActive:           true,
		IsVerified:         true,
		IsSuperuser:        true,
	}

	id, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Int64("userId", id).Msg("Default admin account created")
	return nil
}
