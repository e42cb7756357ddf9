// Package models содержит доменные структуры клиента: пользователя,
// инвестиции, заявки на вывод, глобальную конфигурацию ROI и подписчиков рассылки.
// Все структуры зеркалируют ответы удалённого API, владельцем данных остаётся бэкенд.
package models

import "time"

// User представляет пользователя и снимок его финансового состояния.
type User struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	IsAdmin         bool      `json:"isAdmin"`
	IsBlocked       bool      `json:"isBlocked"`
	IsVerified      bool      `json:"isVerified,omitempty"`
	Balance         float64   `json:"balance"`
	TotalInvested   float64   `json:"totalInvested"`
	TotalROI        float64   `json:"totalROI"`
	TotalWithdrawn  float64   `json:"totalWithdrawn"`
	WalletAddress   string    `json:"walletAddress,omitempty"`
	WalletConnected bool      `json:"walletConnected"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// UserPatch описывает частичное обновление пользователя.
// Nil-поля не изменяются.
type UserPatch struct {
	Name            *string  `json:"name,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Balance         *float64 `json:"balance,omitempty"`
	TotalInvested   *float64 `json:"totalInvested,omitempty"`
	TotalROI        *float64 `json:"totalROI,omitempty"`
	TotalWithdrawn  *float64 `json:"totalWithdrawn,omitempty"`
	WalletAddress   *string  `json:"walletAddress,omitempty"`
	WalletConnected *bool    `json:"walletConnected,omitempty"`
	IsAdmin         *bool    `json:"isAdmin,omitempty"`
	IsBlocked       *bool    `json:"isBlocked,omitempty"`
	Password        *string  `json:"password,omitempty"`
}

// Apply возвращает копию пользователя с применённым патчем.
func (u User) Apply(p UserPatch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Balance != nil {
		u.Balance = *p.Balance
	}
	if p.TotalInvested != nil {
		u.TotalInvested = *p.TotalInvested
	}
	if p.TotalROI != nil {
		u.TotalROI = *p.TotalROI
	}
	if p.TotalWithdrawn != nil {
		u.TotalWithdrawn = *p.TotalWithdrawn
	}
	if p.WalletAddress != nil {
		u.WalletAddress = *p.WalletAddress
	}
	if p.WalletConnected != nil {
		u.WalletConnected = *p.WalletConnected
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	if p.IsBlocked != nil {
		u.IsBlocked = *p.IsBlocked
	}
	return u
}

// Session ответ на вход: токен и поля пользователя на одном уровне.
type Session struct {
	Token string `json:"token"`
	User
}
