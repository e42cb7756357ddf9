// Package tokenstore хранит bearer-токен сессии, единственное долговременное
// состояние клиента. Отсутствие токена не ошибка: Token возвращает пустую строку.
package tokenstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/staking-bank/internal/config"
)

// Store описывает хранилище токена.
type Store interface {
	// Token возвращает сохранённый токен или пустую строку.
	Token() (string, error)
	// SetToken сохраняет токен.
	SetToken(token string) error
	// ClearToken удаляет токен.
	ClearToken() error
}

// New выбирает реализацию по cfg.Driver.
func New(ctx context.Context, cfg config.TokenStorage, redisCfg config.RedisConnection) (Store, error) {
	const op = "tokenstore.New"
	switch cfg.Driver {
	case "", "file":
		return NewFile(cfg.Path), nil
	case "memory":
		return NewMemory(), nil
	case "redis":
		s, err := NewRedis(ctx, redisCfg, cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%s: unknown driver %q", op, cfg.Driver)
	}
}

// Memory хранит токен в памяти процесса.
type Memory struct {
	mu    sync.RWMutex
	token string
}

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *Memory) SetToken(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *Memory) ClearToken() error {
	return m.SetToken("")
}
