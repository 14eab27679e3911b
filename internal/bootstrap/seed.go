// Package bootstrap seeds the default checklist template and the default
// administrator account on process start. This is configuration, not
// business logic: it only calls the same primitives the live flows use.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/osystem/os-api/internal/auth"
	checklistrepo "github.com/osystem/os-api/internal/checklist/repo"
	"github.com/osystem/os-api/internal/order/entity"
	userentity "github.com/osystem/os-api/internal/user/entity"
	userrepo "github.com/osystem/os-api/internal/user/repo"
)

type Config struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// ConfigFromEnv reads the admin seed account from env vars, keeping the
// historical defaults for local development.
func ConfigFromEnv() Config {
	cfg := Config{
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     os.Getenv("ADMIN_NAME"),
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@teste.com"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "123"
	}
	if cfg.AdminName == "" {
		cfg.AdminName = "Administrador"
	}
	return cfg
}

var defaultTemplate = []entity.ChecklistItem{
	{Task: "Verificar cabos de rede", Done: false},
	{Task: "Limpar poeira dos coolers", Done: false},
	{Task: "Testar fontes de energia", Done: false},
	{Task: "Verificar temperatura", Done: false},
}

// Seed ensures the checklist template rows and the admin account exist.
// It is idempotent and safe to run on every start.
func Seed(ctx context.Context, logger *zap.SugaredLogger, dir userrepo.Directory, templates checklistrepo.Repo, cfg Config) error {
	items, err := templates.List(ctx)
	if err != nil {
		return fmt.Errorf("check checklist template: %w", err)
	}
	if len(items) == 0 {
		logger.Info("seeding default checklist template")
		if err := templates.CreateMany(ctx, defaultTemplate); err != nil {
			return fmt.Errorf("seed checklist template: %w", err)
		}
	}

	_, err = dir.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, userrepo.ErrNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	logger.Infow("seeding admin account", "email", cfg.AdminEmail)
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := dir.Create(ctx, &userentity.Account{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		DisplayName:  cfg.AdminName,
		Active:       true,
	}); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	return nil
}
