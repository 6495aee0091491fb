package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/backoffice-service/internal/config"
	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/repository"
)

// Seeder bootstraps the first administrator account.
type Seeder struct {
	auth   *AuthService
	users  repository.UserRepository
	logger *zap.Logger
}

// NewSeeder creates a seeder.
func NewSeeder(authService *AuthService, users repository.UserRepository, logger *zap.Logger) *Seeder {
	return &Seeder{auth: authService, users: users, logger: logger}
}

// SeedAdmin creates the configured administrator unless the email is empty or
// already registered. Running it repeatedly is harmless.
func (s *Seeder) SeedAdmin(ctx context.Context, cfg config.SeedConfig) (*domain.User, error) {
	email := domain.NormalizeEmail(cfg.AdminEmail)
	if email == "" {
		s.logger.Debug("admin seeding disabled")
		return nil, nil
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("admin already present", zap.String("email", email))
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if cfg.AdminPassword == "" {
		return nil, errors.New("SEED_ADMIN_PASSWORD is required when SEED_ADMIN_EMAIL is set")
	}

	user, err := s.auth.CreateUser(ctx, NewUserInput{
		Email:      email,
		Name:       cfg.AdminName,
		Password:   cfg.AdminPassword,
		Role:       string(domain.RoleAdmin),
		Department: string(domain.DepartmentManagement),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("admin user created", zap.String("email", user.Email), zap.String("id", user.ID))
	return user, nil
}
