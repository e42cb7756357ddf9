package state

import (
	"time"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

// Action изменение состояния. Name используется в логах переходов.
type Action interface {
	Name() string
}

// ConfigLoaded глобальная конфигурация получена и уже слита с дефолтами.
type ConfigLoaded struct {
	RoiRates    models.RoiRates
	LastUpdated *time.Time
}

// SessionStarted пользователь аутентифицирован.
type SessionStarted struct {
	User models.User
}

// SessionCleared выход: пользователь и все списки очищаются, конфиг остаётся.
type SessionCleared struct{}

// UserPatched частичное обновление текущего пользователя.
type UserPatched struct {
	Patch models.UserPatch
}

// InvestmentsLoaded инвестиции текущего пользователя.
type InvestmentsLoaded struct {
	Items []models.Investment
}

// TransactionsLoaded заявки на вывод текущего пользователя.
type TransactionsLoaded struct {
	Items []models.Transaction
}

// AdminQueuesLoaded очереди ожидающих заявок администратора.
type AdminQueuesLoaded struct {
	Investments []models.Investment
	Withdrawals []models.Transaction
}

// UsersLoaded список пользователей для администратора.
type UsersLoaded struct {
	Items []models.User
}

// UserUpdated замена пользователя в списке администратора.
type UserUpdated struct {
	User models.User
}

// InvestmentProvisioned предварительная запись до ответа сервера.
// ToAdminQueue добавляет её также в очередь администратора.
type InvestmentProvisioned struct {
	Investment   models.Investment
	ToAdminQueue bool
}

// InvestmentConfirmed замена предварительной записи TempID ответом сервера.
type InvestmentConfirmed struct {
	TempID     string
	Investment models.Investment
}

// InvestmentReverted откат предварительной записи после ошибки сервера.
type InvestmentReverted struct {
	TempID string
}

// WithdrawalAdded новая заявка на вывод от сервера.
type WithdrawalAdded struct {
	Transaction models.Transaction
}

// InvestmentClaimed результат успешного claim.
type InvestmentClaimed struct {
	ID            string
	Returns       float64
	LastClaimedAt *time.Time
	NewBalance    float64
	ClaimedAmount float64
}

// InvestmentResolved администратор одобрил или отклонил инвестицию.
type InvestmentResolved struct {
	ID     string
	Status models.InvestmentStatus
}

// WithdrawalResolved администратор одобрил или отклонил вывод.
type WithdrawalResolved struct {
	ID     string
	Status models.TransactionStatus
}

// RequestWalletUpdated правка адреса получателя в заявке.
type RequestWalletUpdated struct {
	ID            string
	WalletAddress string
}

// RoiRatePatched оптимистичное изменение ставки актива.
type RoiRatePatched struct {
	Asset models.Asset
	Patch models.AssetConfigPatch
}

// RoiRateReverted восстановление настроек актива после ошибки сервера.
// Откатываются только поля из Patch, которые с тех пор никто не изменил.
// Existed=false означает, что актива до патча не было.
type RoiRateReverted struct {
	Asset    models.Asset
	Patch    models.AssetConfigPatch
	Previous models.AssetConfig
	Existed  bool
}

// LoadingFinished инициализация сессии завершена.
type LoadingFinished struct{}

// ErrorRaised последняя ошибка для отображения, пустая строка сбрасывает её.
type ErrorRaised struct {
	Message string
}

func (ConfigLoaded) Name() string          { return "config_loaded" }
func (SessionStarted) Name() string        { return "session_started" }
func (SessionCleared) Name() string        { return "session_cleared" }
func (UserPatched) Name() string           { return "user_patched" }
func (InvestmentsLoaded) Name() string     { return "investments_loaded" }
func (TransactionsLoaded) Name() string    { return "transactions_loaded" }
func (AdminQueuesLoaded) Name() string     { return "admin_queues_loaded" }
func (UsersLoaded) Name() string           { return "users_loaded" }
func (UserUpdated) Name() string           { return "user_updated" }
func (InvestmentProvisioned) Name() string { return "investment_provisioned" }
func (InvestmentConfirmed) Name() string   { return "investment_confirmed" }
func (InvestmentReverted) Name() string    { return "investment_reverted" }
func (WithdrawalAdded) Name() string       { return "withdrawal_added" }
func (InvestmentClaimed) Name() string     { return "investment_claimed" }
func (InvestmentResolved) Name() string    { return "investment_resolved" }
func (WithdrawalResolved) Name() string    { return "withdrawal_resolved" }
func (RequestWalletUpdated) Name() string  { return "request_wallet_updated" }
func (RoiRatePatched) Name() string        { return "roi_rate_patched" }
func (RoiRateReverted) Name() string       { return "roi_rate_reverted" }
func (LoadingFinished) Name() string       { return "loading_finished" }
func (ErrorRaised) Name() string           { return "error_raised" }
