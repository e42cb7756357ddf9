package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/staking-bank/internal/config"
)

// Redis хранит токен под одним ключом без срока жизни.
// Позволяет нескольким экземплярам дашборда делить одну сессию.
type Redis struct {
	Db  *redis.Client
	key string
}

// NewRedis подключается к redis и проверяет соединение.
func NewRedis(ctx context.Context, cfg config.RedisConnection, key string) (*Redis, error) {
	const op = "tokenstore.NewRedis"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if key == "" {
		key = "token"
	}
	return &Redis{Db: db, key: key}, nil
}

func (r *Redis) Token() (string, error) {
	const op = "tokenstore.Redis.Token"
	val, err := r.Db.Get(context.Background(), r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return val, nil
}

func (r *Redis) SetToken(token string) error {
	return r.Db.Set(context.Background(), r.key, token, 0).Err()
}

func (r *Redis) ClearToken() error {
	return r.Db.Del(context.Background(), r.key).Err()
}

// Close закрывает соединение с redis.
func (r *Redis) Close() error {
	return r.Db.Close()
}
