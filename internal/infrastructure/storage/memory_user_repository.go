package storage

import (
	"context"
	"fmt"
	"sync"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей и их настроек
type MemoryUserRepository struct {
	mu       sync.RWMutex
	users    map[int64]*entity.User
	defaults entity.Options
}

// NewMemoryUserRepository создаёт хранилище; новые пользователи получают defaults
func NewMemoryUserRepository(defaults entity.Options) *MemoryUserRepository {
	return &MemoryUserRepository{
		users:    make(map[int64]*entity.User),
		defaults: defaults,
	}
}

// Get возвращает копию пользователя, при первом обращении регистрирует его
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		user = entity.NewUser(userID, chatID, r.defaults)
		r.users[userID] = user
	}

	copied := *user
	return &copied, nil
}

// Save сохраняет пользователя целиком
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	if user == nil {
		return fmt.Errorf("save user: nil user")
	}

	copied := *user
	r.mu.Lock()
	r.users[user.ID] = &copied
	r.mu.Unlock()

	return nil
}

// UpdateSettings меняет настройки существующего пользователя
func (r *MemoryUserRepository) UpdateSettings(ctx context.Context, userID int64, settings entity.Options) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("update settings: user %d not found", userID)
	}
	user.Settings = settings

	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
