package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/repositories"
	"github.com/axela/cetpro-backend/internal/pkg/auth"
)

const (
	superadminEmail    = "superadmin@cetpro.edu.pe"
	superadminPassword = "superadmin123"
)

// CreateDefaultData creates the platform superadmin account if it does not
// exist yet. Everything else (institutions, admins, catalogs) is created
// through the API.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, superadminEmail)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", superadminEmail).Msg("Superadmin account already present")
		return nil
	}

	hashed, err := auth.HashPassword(superadminPassword)
	if err != nil {
		return err
	}

	_, err = userRepo.CreateUser(ctx, &models.User{
		Email:     superadminEmail,
		Password:  hashed,
		FirstName: "Platform",
		LastName:  "Superadmin",
		RoleType:  models.RoleSuperadmin,
	})
	if err != nil {
		// Another instance may have won the race.
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", superadminEmail).Msg("Superadmin account created. Change the default password immediately.")
	return nil
}
