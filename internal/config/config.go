// Package config предоставляет структуры и функции для парсинга и загрузки конфига клиента.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultBaseURL адрес боевого API, используется если STAKING_API_URL не задан.
const DefaultBaseURL = "https://api.stakingbank.app/api"

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	API             `yaml:"api"`
	TokenStorage    `yaml:"token_storage"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	Search          `yaml:"search"`
	RateLimit       `yaml:"rate_limit"`
}

// API структура для настройки клиента удалённого REST API
type API struct {
	BaseURL string `yaml:"base_url" env:"STAKING_API_URL" env-default:"https://api.stakingbank.app/api"`
	// Timeout равный нулю означает отсутствие таймаута
	Timeout time.Duration `yaml:"timeout" env:"STAKING_API_TIMEOUT" env-default:"0s"`
}

// TokenStorage структура для настройки хранилища bearer-токена
type TokenStorage struct {
	Driver string `yaml:"driver" env:"TOKEN_STORAGE_DRIVER" env-default:"file"`
	Path   string `yaml:"path" env:"TOKEN_STORAGE_PATH" env-default:".stakebank/token"`
	Key    string `yaml:"key" env:"TOKEN_STORAGE_KEY" env-default:"token"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env:"REDIS_TIMEOUT"`
}

// HTTPServer структура для настройки локального сервера дашборда
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:"localhost:8090"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Search структура для настройки экранов поиска
type Search struct {
	Debounce time.Duration `yaml:"debounce" env:"SEARCH_DEBOUNCE" env-default:"500ms"`
	PageSize int           `yaml:"page_size" env:"SEARCH_PAGE_SIZE" env-default:"10"`
}

// RateLimit структура для ограничения частоты запросов к дашборду
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"10"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20"`
}

// Load читает .env (если он есть), затем yaml из CONFIG_PATH, либо только переменные окружения.
func Load() (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига, завершает процесс при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"API:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"TokenStorage:\n"+
			"  Driver: %s\n"+
			"  Path: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Search:\n"+
			"  Debounce: %s\n"+
			"  PageSize: %d\n",
		c.Env,
		c.BaseURL,
		c.API.Timeout,
		c.Driver,
		c.Path,
		c.AddressRedis,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Debounce,
		c.PageSize,
	)
}
