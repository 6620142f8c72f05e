package app

import (
	"context"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) BeginMeasure(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// SetMethod меняет способ; неизвестное значение превращается в average.
func (s *UserService) SetMethod(ctx context.Context, userID, chatID int64, raw string) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetMethod(entity.ParseMethod(raw))
	if err := s.repo.UpdateSettings(ctx, userID, user.Settings); err != nil {
		return nil, err
	}

	return user, nil
}

// SetTop меняет опорную точку; неизвестное значение это entity.ErrInvalidArgument.
func (s *UserService) SetTop(ctx context.Context, userID, chatID int64, raw string) (*entity.User, error) {
	top, err := entity.ParseTop(raw)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetTop(top)
	if err := s.repo.UpdateSettings(ctx, userID, user.Settings); err != nil {
		return nil, err
	}

	return user, nil
}
