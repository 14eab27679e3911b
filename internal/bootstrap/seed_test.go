package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/osystem/os-api/internal/auth"
	checklistrepo "github.com/osystem/os-api/internal/checklist/repo"
	userrepo "github.com/osystem/os-api/internal/user/repo"
)

func TestSeed_PopulatesTemplateAndAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := userrepo.NewMemoryDirectory()
	templates := checklistrepo.NewMemoryRepo()
	cfg := Config{AdminEmail: "admin@teste.com", AdminPassword: "123", AdminName: "Administrador"}

	require.NoError(t, Seed(ctx, zap.NewNop().Sugar(), dir, templates, cfg))

	items, err := templates.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)

	admin, err := dir.FindByEmail(ctx, "admin@teste.com")
	require.NoError(t, err)
	require.True(t, admin.Active)
	require.Equal(t, "Administrador", admin.DisplayName)
	require.True(t, auth.VerifyPassword("123", admin.PasswordHash))
}

func TestSeed_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := userrepo.NewMemoryDirectory()
	templates := checklistrepo.NewMemoryRepo()
	cfg := ConfigFromEnv()

	require.NoError(t, Seed(ctx, zap.NewNop().Sugar(), dir, templates, cfg))
	require.NoError(t, Seed(ctx, zap.NewNop().Sugar(), dir, templates, cfg))

	items, err := templates.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
}
