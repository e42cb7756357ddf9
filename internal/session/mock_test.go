package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

type APIMock struct{ mock.Mock }

func (m *APIMock) GetConfig(ctx context.Context) (*models.GlobalConfig, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*models.GlobalConfig)
	return cfg, args.Error(1)
}

func (m *APIMock) UpdateConfig(ctx context.Context, upd models.ConfigUpdate) error {
	return m.Called(ctx, upd).Error(0)
}

func (m *APIMock) Register(ctx context.Context, req models.Registration) (*models.MessageResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.MessageResponse)
	return resp, args.Error(1)
}

func (m *APIMock) Login(ctx context.Context, req models.Credentials) (*models.Session, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.Session)
	return resp, args.Error(1)
}

func (m *APIMock) ForgotPassword(ctx context.Context, req models.PasswordReset) (*models.MessageResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.MessageResponse)
	return resp, args.Error(1)
}

func (m *APIMock) VerifyEmail(ctx context.Context, token string) (*models.MessageResponse, error) {
	args := m.Called(ctx, token)
	resp, _ := args.Get(0).(*models.MessageResponse)
	return resp, args.Error(1)
}

func (m *APIMock) GetProfile(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *APIMock) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.UserPatch, error) {
	args := m.Called(ctx, patch)
	resp, _ := args.Get(0).(*models.UserPatch)
	return resp, args.Error(1)
}

func (m *APIMock) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	args := m.Called(ctx, search)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *APIMock) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *APIMock) ToggleBlockUser(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *APIMock) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Investment)
	return items, args.Error(1)
}

func (m *APIMock) CreateInvestment(ctx context.Context, req models.InvestmentRequest) (*models.Investment, error) {
	args := m.Called(ctx, req)
	inv, _ := args.Get(0).(*models.Investment)
	return inv, args.Error(1)
}

func (m *APIMock) UpdateInvestment(ctx context.Context, id string, upd models.InvestmentUpdate) (*models.Investment, error) {
	args := m.Called(ctx, id, upd)
	inv, _ := args.Get(0).(*models.Investment)
	return inv, args.Error(1)
}

func (m *APIMock) ListAllInvestments(ctx context.Context, search string) ([]models.Investment, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]models.Investment)
	return items, args.Error(1)
}

func (m *APIMock) ClaimInvestment(ctx context.Context, id string) (*models.ClaimResult, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.ClaimResult)
	return res, args.Error(1)
}

func (m *APIMock) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Transaction)
	return items, args.Error(1)
}

func (m *APIMock) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (*models.Transaction, error) {
	args := m.Called(ctx, req)
	tx, _ := args.Get(0).(*models.Transaction)
	return tx, args.Error(1)
}

func (m *APIMock) UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error) {
	args := m.Called(ctx, id, upd)
	tx, _ := args.Get(0).(*models.Transaction)
	return tx, args.Error(1)
}

func (m *APIMock) ListAllTransactions(ctx context.Context, search string) ([]models.Transaction, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]models.Transaction)
	return items, args.Error(1)
}

func (m *APIMock) Subscribe(ctx context.Context, req models.NewsletterRequest) (*models.MessageResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.MessageResponse)
	return resp, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}
