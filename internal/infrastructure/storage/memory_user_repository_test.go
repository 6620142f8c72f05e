package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fwhr-bot/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesWithDefaults(t *testing.T) {
	defaults := entity.Options{Method: entity.MethodLeft, Top: entity.TopEyelid}
	repo := NewMemoryUserRepository(defaults)

	u, err := repo.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, u.State)
	require.Equal(t, defaults, u.Settings)
}

func TestMemoryUserRepository_SaveIsolatesCopies(t *testing.T) {
	repo := NewMemoryUserRepository(entity.DefaultOptions())
	ctx := context.Background()

	u, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	u.SetState(entity.StateProcessing)

	stored, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, stored.State)

	require.NoError(t, repo.Save(ctx, u))
	stored, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, stored.State)
}

func TestMemoryUserRepository_UpdateSettings(t *testing.T) {
	repo := NewMemoryUserRepository(entity.DefaultOptions())
	ctx := context.Background()

	require.Error(t, repo.UpdateSettings(ctx, 7, entity.DefaultOptions()))

	_, err := repo.Get(ctx, 7, 70)
	require.NoError(t, err)

	want := entity.Options{Method: entity.MethodRight, Top: entity.TopEyelid}
	require.NoError(t, repo.UpdateSettings(ctx, 7, want))

	u, err := repo.Get(ctx, 7, 70)
	require.NoError(t, err)
	require.Equal(t, want, u.Settings)
}
