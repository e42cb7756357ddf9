// Package session реализует действия клиентской сессии поверх state.Store:
// инициализацию, аутентификацию, оптимистичные изменения инвестиций и выводов
// и административные действия. Каждое действие возвращает models.Result и
// никогда не возвращает ошибку вызывающему.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/state"
	"github.com/magabrotheeeer/staking-bank/internal/tokenstore"
)

// API описывает вызовы удалённого бэкенда, которые нужны сессии.
type API interface {
	GetConfig(ctx context.Context) (*models.GlobalConfig, error)
	UpdateConfig(ctx context.Context, upd models.ConfigUpdate) error

	Register(ctx context.Context, req models.Registration) (*models.MessageResponse, error)
	Login(ctx context.Context, req models.Credentials) (*models.Session, error)
	ForgotPassword(ctx context.Context, req models.PasswordReset) (*models.MessageResponse, error)
	VerifyEmail(ctx context.Context, token string) (*models.MessageResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.UserPatch, error)

	ListUsers(ctx context.Context, search string) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	ToggleBlockUser(ctx context.Context, id string) (bool, error)

	ListInvestments(ctx context.Context) ([]models.Investment, error)
	CreateInvestment(ctx context.Context, req models.InvestmentRequest) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, id string, upd models.InvestmentUpdate) (*models.Investment, error)
	ListAllInvestments(ctx context.Context, search string) ([]models.Investment, error)
	ClaimInvestment(ctx context.Context, id string) (*models.ClaimResult, error)

	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error)
	ListAllTransactions(ctx context.Context, search string) ([]models.Transaction, error)

	Subscribe(ctx context.Context, req models.NewsletterRequest) (*models.MessageResponse, error)
}

// Session связывает API, хранилище токена и состояние.
type Session struct {
	api      API
	tokens   tokenstore.Store
	store    *state.Store
	log      *slog.Logger
	validate *validator.Validate

	now   func() time.Time
	newID func() string

	bootstrap sync.Once
}

// Option настраивает Session.
type Option func(*Session)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New создаёт сессию. Bootstrap нужно вызвать отдельно.
func New(api API, tokens tokenstore.Store, store *state.Store, log *slog.Logger, opts ...Option) *Session {
	s := &Session{
		api:      api,
		tokens:   tokens,
		store:    store,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
		newID:    func() string { return "tmp-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State возвращает снимок текущего состояния.
func (s *Session) State() state.State {
	return s.store.Snapshot()
}

// Store возвращает хранилище состояния для подписки на изменения.
func (s *Session) Store() *state.Store {
	return s.store
}

// API возвращает клиент бэкенда для экранов, которые запрашивают данные напрямую.
func (s *Session) API() API {
	return s.api
}
