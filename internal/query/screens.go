package query

import (
	"context"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/staking-bank/internal/config"
	"github.com/magabrotheeeer/staking-bank/internal/models"
)

// UserSource отдаёт пользователей по строке поиска.
type UserSource interface {
	ListUsers(ctx context.Context, search string) ([]models.User, error)
}

// UserActions действия администратора над пользователями.
type UserActions interface {
	SetAdmin(ctx context.Context, userID string, isAdmin bool) models.Result
	ToggleBlock(ctx context.Context, userID string) (models.Result, bool)
	ResetUserPassword(ctx context.Context, userID, password string) models.Result
}

// Role фильтр экрана пользователей.
type Role string

const (
	RoleAll     Role = ""
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleBlocked Role = "blocked"
)

// UserManagement экран управления пользователями.
type UserManagement struct {
	*Screen[models.User]
	actions UserActions
}

// NewUserManagement создаёт экран пользователей.
func NewUserManagement(ctx context.Context, src UserSource, actions UserActions, cfg config.Search, log *slog.Logger) *UserManagement {
	return &UserManagement{
		Screen:  newScreen[models.User](ctx, src.ListUsers, cfg, log),
		actions: actions,
	}
}

// FilterRole оставляет на экране только пользователей роли.
func (m *UserManagement) FilterRole(role Role) {
	if role == RoleAll {
		m.setFilter(nil)
		return
	}
	m.setFilter(func(u models.User) bool {
		switch role {
		case RoleAdmin:
			return u.IsAdmin
		case RoleUser:
			return !u.IsAdmin
		case RoleBlocked:
			return u.IsBlocked
		}
		return true
	})
}

// SetAdmin меняет роль и обновляет строку.
func (m *UserManagement) SetAdmin(ctx context.Context, id string, isAdmin bool) models.Result {
	res := m.actions.SetAdmin(ctx, id, isAdmin)
	if res.Success {
		m.patch(userByID(id), func(u *models.User) { u.IsAdmin = isAdmin })
	}
	return res
}

// ToggleBlock переключает блокировку и выставляет строке значение от сервера.
func (m *UserManagement) ToggleBlock(ctx context.Context, id string) models.Result {
	res, blocked := m.actions.ToggleBlock(ctx, id)
	if res.Success {
		m.patch(userByID(id), func(u *models.User) { u.IsBlocked = blocked })
	}
	return res
}

// ResetPassword задаёт пользователю новый пароль.
func (m *UserManagement) ResetPassword(ctx context.Context, id, password string) models.Result {
	return m.actions.ResetUserPassword(ctx, id, password)
}

func userByID(id string) func(models.User) bool {
	return func(u models.User) bool { return u.ID == id }
}

// InvestmentSource отдаёт все инвестиции по строке поиска.
type InvestmentSource interface {
	ListAllInvestments(ctx context.Context, search string) ([]models.Investment, error)
}

// InvestmentActions действия администратора над заявками на инвестиции.
type InvestmentActions interface {
	ApproveInvestment(ctx context.Context, id string) models.Result
	RejectInvestment(ctx context.Context, id string) models.Result
	UpdateRequestWallet(ctx context.Context, id, walletAddress string) models.Result
}

// InvestmentFilter фильтр экрана заявок на инвестиции, пустые поля не фильтруют.
type InvestmentFilter struct {
	Status models.InvestmentStatus `json:"status"`
	Method models.Asset            `json:"method"`
}

// InvestmentRequests экран заявок на инвестиции.
type InvestmentRequests struct {
	*Screen[models.Investment]
	actions InvestmentActions
}

// NewInvestmentRequests создаёт экран заявок на инвестиции.
func NewInvestmentRequests(ctx context.Context, src InvestmentSource, actions InvestmentActions, cfg config.Search, log *slog.Logger) *InvestmentRequests {
	return &InvestmentRequests{
		Screen:  newScreen[models.Investment](ctx, src.ListAllInvestments, cfg, log),
		actions: actions,
	}
}

// Filter применяет фильтр по статусу и активу.
func (r *InvestmentRequests) Filter(f InvestmentFilter) {
	if f == (InvestmentFilter{}) {
		r.setFilter(nil)
		return
	}
	r.setFilter(func(inv models.Investment) bool {
		return (f.Status == "" || inv.Status == f.Status) &&
			(f.Method == "" || inv.Method == f.Method)
	})
}

// Approve одобряет заявку и обновляет строку.
func (r *InvestmentRequests) Approve(ctx context.Context, id string) models.Result {
	return r.resolve(id, models.InvestmentActive, r.actions.ApproveInvestment(ctx, id))
}

// Reject отклоняет заявку и обновляет строку.
func (r *InvestmentRequests) Reject(ctx context.Context, id string) models.Result {
	return r.resolve(id, models.InvestmentRejected, r.actions.RejectInvestment(ctx, id))
}

func (r *InvestmentRequests) resolve(id string, status models.InvestmentStatus, res models.Result) models.Result {
	if res.Success {
		r.patch(investmentByID(id), func(inv *models.Investment) { inv.Status = status })
	}
	return res
}

// UpdateWallet правит адрес получателя в заявке.
func (r *InvestmentRequests) UpdateWallet(ctx context.Context, id, walletAddress string) models.Result {
	res := r.actions.UpdateRequestWallet(ctx, id, walletAddress)
	if res.Success {
		r.patch(investmentByID(id), func(inv *models.Investment) { inv.ReceiverWalletAddress = walletAddress })
	}
	return res
}

func investmentByID(id string) func(models.Investment) bool {
	return func(inv models.Investment) bool { return inv.ID == id }
}

// WithdrawalSource отдаёт все выводы по строке поиска.
type WithdrawalSource interface {
	ListAllTransactions(ctx context.Context, search string) ([]models.Transaction, error)
}

// WithdrawalActions действия администратора над выводами.
type WithdrawalActions interface {
	ApproveWithdrawal(ctx context.Context, id string) models.Result
	RejectWithdrawal(ctx context.Context, id string) models.Result
}

// WithdrawalFilter фильтр экрана выводов.
type WithdrawalFilter struct {
	Status  models.TransactionStatus `json:"status"`
	Method  models.Asset             `json:"method"`
	SosOnly bool                     `json:"sosOnly"`
}

// WithdrawalRequests экран заявок на вывод.
type WithdrawalRequests struct {
	*Screen[models.Transaction]
	actions WithdrawalActions
}

// NewWithdrawalRequests создаёт экран заявок на вывод.
func NewWithdrawalRequests(ctx context.Context, src WithdrawalSource, actions WithdrawalActions, cfg config.Search, log *slog.Logger) *WithdrawalRequests {
	return &WithdrawalRequests{
		Screen:  newScreen[models.Transaction](ctx, src.ListAllTransactions, cfg, log),
		actions: actions,
	}
}

// Filter применяет фильтр по статусу, активу и признаку SOS.
func (w *WithdrawalRequests) Filter(f WithdrawalFilter) {
	if f == (WithdrawalFilter{}) {
		w.setFilter(nil)
		return
	}
	w.setFilter(func(tx models.Transaction) bool {
		return (f.Status == "" || tx.Status == f.Status) &&
			(f.Method == "" || tx.Method == f.Method) &&
			(!f.SosOnly || tx.IsSos)
	})
}

// Approve одобряет вывод и обновляет строку.
func (w *WithdrawalRequests) Approve(ctx context.Context, id string) models.Result {
	return w.resolve(id, models.TransactionApproved, w.actions.ApproveWithdrawal(ctx, id))
}

// Reject отклоняет вывод и обновляет строку.
func (w *WithdrawalRequests) Reject(ctx context.Context, id string) models.Result {
	return w.resolve(id, models.TransactionRejected, w.actions.RejectWithdrawal(ctx, id))
}

func (w *WithdrawalRequests) resolve(id string, status models.TransactionStatus, res models.Result) models.Result {
	if res.Success {
		w.patch(func(tx models.Transaction) bool { return tx.ID == id }, func(tx *models.Transaction) {
			tx.Status = status
		})
	}
	return res
}

// SubscriberSource отдаёт всех подписчиков рассылки.
type SubscriberSource interface {
	ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

// Newsletter экран подписчиков. Сервер не умеет искать по подписчикам,
// поэтому строка поиска применяется к email на клиенте.
type Newsletter struct {
	*Screen[models.NewsletterSubscriber]
}

// NewNewsletter создаёт экран подписчиков.
func NewNewsletter(ctx context.Context, src SubscriberSource, cfg config.Search, log *slog.Logger) *Newsletter {
	fetch := func(ctx context.Context, term string) ([]models.NewsletterSubscriber, error) {
		subs, err := src.ListSubscribers(ctx)
		if err != nil {
			return nil, err
		}
		return MatchEmail(subs, term), nil
	}
	return &Newsletter{Screen: newScreen[models.NewsletterSubscriber](ctx, fetch, cfg, log)}
}

// MatchEmail оставляет подписчиков, чей email содержит term без учёта регистра.
func MatchEmail(subs []models.NewsletterSubscriber, term string) []models.NewsletterSubscriber {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return subs
	}
	out := make([]models.NewsletterSubscriber, 0, len(subs))
	for _, s := range subs {
		if strings.Contains(strings.ToLower(s.Email), term) {
			out = append(out, s)
		}
	}
	return out
}
