package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/infrastructure/storage"
)

func TestUserService_BeginMeasureAndCancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository(entity.DefaultOptions())
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.BeginMeasure(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	user, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_SetState(t *testing.T) {
	repo := storage.NewMemoryUserRepository(entity.DefaultOptions())
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetState(ctx, 2, 20, entity.StateProcessing)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)
}

func TestUserService_Settings(t *testing.T) {
	repo := storage.NewMemoryUserRepository(entity.DefaultOptions())
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetMethod(ctx, 3, 30, "right")
	require.NoError(t, err)
	require.Equal(t, entity.MethodRight, user.Settings.Method)

	user, err = svc.SetMethod(ctx, 3, 30, "whatever")
	require.NoError(t, err)
	require.Equal(t, entity.MethodAverage, user.Settings.Method)

	user, err = svc.SetTop(ctx, 3, 30, "eyelid")
	require.NoError(t, err)
	require.Equal(t, entity.TopEyelid, user.Settings.Top)

	_, err = svc.SetTop(ctx, 3, 30, "chin")
	require.True(t, errors.Is(err, entity.ErrInvalidArgument))

	stored, err := svc.Get(ctx, 3, 30)
	require.NoError(t, err)
	require.Equal(t, entity.Options{Method: entity.MethodAverage, Top: entity.TopEyelid}, stored.Settings)
}
