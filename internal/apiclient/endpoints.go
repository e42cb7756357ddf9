package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

// GetConfig GET /config, публичный.
func (c *Client) GetConfig(ctx context.Context) (*models.GlobalConfig, error) {
	var cfg models.GlobalConfig
	if err := c.do(ctx, http.MethodGet, "/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateConfig PUT /config.
func (c *Client) UpdateConfig(ctx context.Context, upd models.ConfigUpdate) error {
	return c.do(ctx, http.MethodPut, "/config", upd, nil)
}

// Register POST /auth/register, токен не выдаётся.
func (c *Client) Register(ctx context.Context, req models.Registration) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login POST /auth/login.
func (c *Client) Login(ctx context.Context, req models.Credentials) (*models.Session, error) {
	var resp models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword POST /auth/forgot-password.
func (c *Client) ForgotPassword(ctx context.Context, req models.PasswordReset) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyEmail POST /auth/verify-email/:token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-email/"+url.PathEscape(token), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile GET /auth/profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile PUT /auth/profile, возвращает обновлённые поля.
func (c *Client) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.UserPatch, error) {
	var resp models.UserPatch
	if err := c.do(ctx, http.MethodPut, "/auth/profile", patch, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUsers GET /auth/users?search=.
func (c *Client) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, withSearch("/auth/users", search), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser PUT /auth/users/:id, используется для isAdmin и пароля.
func (c *Client) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/auth/users/"+url.PathEscape(id), patch, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ToggleBlockUser PUT /auth/users/:id/block, возвращает новое значение isBlocked.
func (c *Client) ToggleBlockUser(ctx context.Context, id string) (bool, error) {
	var resp struct {
		IsBlocked bool `json:"isBlocked"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/users/"+url.PathEscape(id)+"/block", nil, &resp); err != nil {
		return false, err
	}
	return resp.IsBlocked, nil
}

// ListInvestments GET /investments: инвестиции текущего пользователя.
func (c *Client) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	var items []models.Investment
	if err := c.do(ctx, http.MethodGet, "/investments", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateInvestment POST /investments.
func (c *Client) CreateInvestment(ctx context.Context, req models.InvestmentRequest) (*models.Investment, error) {
	var inv models.Investment
	if err := c.do(ctx, http.MethodPost, "/investments", req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvestment PUT /investments/:id.
func (c *Client) UpdateInvestment(ctx context.Context, id string, upd models.InvestmentUpdate) (*models.Investment, error) {
	var inv models.Investment
	if err := c.do(ctx, http.MethodPut, "/investments/"+url.PathEscape(id), upd, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListAllInvestments GET /investments/admin?search=.
func (c *Client) ListAllInvestments(ctx context.Context, search string) ([]models.Investment, error) {
	var items []models.Investment
	if err := c.do(ctx, http.MethodGet, withSearch("/investments/admin", search), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ClaimInvestment POST /investments/:id/claim.
func (c *Client) ClaimInvestment(ctx context.Context, id string) (*models.ClaimResult, error) {
	var res models.ClaimResult
	if err := c.do(ctx, http.MethodPost, "/investments/"+url.PathEscape(id)+"/claim", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListTransactions GET /transactions.
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var items []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RequestWithdrawal POST /transactions/withdraw.
func (c *Client) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/withdraw", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction PUT /transactions/:id.
func (c *Client) UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(id), upd, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListAllTransactions GET /transactions/admin?search=.
func (c *Client) ListAllTransactions(ctx context.Context, search string) ([]models.Transaction, error) {
	var items []models.Transaction
	if err := c.do(ctx, http.MethodGet, withSearch("/transactions/admin", search), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListSubscribers GET /newsletter.
func (c *Client) ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	if err := c.do(ctx, http.MethodGet, "/newsletter", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Subscribe POST /newsletter.
func (c *Client) Subscribe(ctx context.Context, req models.NewsletterRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/newsletter", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
