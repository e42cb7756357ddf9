// Package jwt разбирает bearer-токен сессии без проверки подписи.
//
// Ключ подписи известен только бэкенду, поэтому клиент читает лишь claims,
// чтобы не отправлять заведомо просроченный токен на /auth/profile.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired возвращается, если срок действия токена истёк.
var ErrExpired = errors.New("token expired")

// Claims описывает поля, которые бэкенд кладёт в токен.
type Claims struct {
	UserID string `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// Inspect разбирает токен без проверки подписи.
func Inspect(tokenStr string) (*Claims, error) {
	const op = "jwt.Inspect"
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return claims, nil
}

// CheckExpiry возвращает ErrExpired, если exp в прошлом относительно now.
// Токен без exp считается действующим, решение остаётся за сервером.
func CheckExpiry(tokenStr string, now time.Time) error {
	claims, err := Inspect(tokenStr)
	if err != nil {
		return err
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return ErrExpired
	}
	return nil
}
