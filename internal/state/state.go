// Package state хранит единственный источник истины клиента: текущего
// пользователя, кешированные списки дашбордов и глобальную конфигурацию ROI.
//
// Состояние меняется только через Store.Dispatch, который применяет чистую
// функцию Reduce. Так каждый переход имеет имя и попадает в лог.
package state

import (
	"slices"
	"time"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

// State снимок состояния сессии.
type State struct {
	User    *models.User `json:"user"`
	Loading bool         `json:"loading"`
	Error   string       `json:"error,omitempty"`

	Investments  []models.Investment  `json:"investments"`
	Transactions []models.Transaction `json:"transactions"`

	// очереди администратора
	PendingInvestments []models.Investment  `json:"pendingInvestments"`
	PendingWithdrawals []models.Transaction `json:"pendingWithdrawals"`
	Users              []models.User        `json:"users"`

	RoiRates        models.RoiRates `json:"roiRates"`
	ConfigUpdatedAt *time.Time      `json:"configUpdatedAt,omitempty"`
}

// Initial состояние при старте: загрузка идёт, действуют встроенные ставки.
func Initial() State {
	return State{
		Loading:  true,
		RoiRates: models.DefaultRoiRates(),
	}
}

// IsAdmin сообщает, что текущий пользователь администратор.
func (s State) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin
}

// Authenticated сообщает, что сессия не анонимная.
func (s State) Authenticated() bool {
	return s.User != nil
}

// Investment ищет инвестицию пользователя по ID.
func (s State) Investment(id string) (models.Investment, bool) {
	i := slices.IndexFunc(s.Investments, func(inv models.Investment) bool { return inv.ID == id })
	if i < 0 {
		return models.Investment{}, false
	}
	return s.Investments[i], true
}

// Clone глубокая копия, безопасная для чтения вне Store.
func (s State) Clone() State {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.ConfigUpdatedAt != nil {
		t := *s.ConfigUpdatedAt
		out.ConfigUpdatedAt = &t
	}
	out.Investments = slices.Clone(s.Investments)
	out.Transactions = slices.Clone(s.Transactions)
	out.PendingInvestments = slices.Clone(s.PendingInvestments)
	out.PendingWithdrawals = slices.Clone(s.PendingWithdrawals)
	out.Users = slices.Clone(s.Users)
	out.RoiRates = s.RoiRates.Clone()
	return out
}
