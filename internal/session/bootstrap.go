package session

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/magabrotheeeer/staking-bank/internal/lib/jwt"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// Bootstrap выполняется один раз за время жизни сессии: загружает глобальный
// конфиг и, если есть токен, восстанавливает пользователя. Ошибки только
// логируются, по завершении Loading всегда сбрасывается.
func (s *Session) Bootstrap(ctx context.Context) {
	s.bootstrap.Do(func() {
		var g errgroup.Group
		g.Go(func() error {
			s.loadConfig(ctx)
			return nil
		})
		g.Go(func() error {
			s.restore(ctx)
			return nil
		})
		_ = g.Wait()

		s.store.Dispatch(state.LoadingFinished{})
	})
}

func (s *Session) loadConfig(ctx context.Context) {
	const op = "session.loadConfig"

	cfg, err := s.api.GetConfig(ctx)
	if err != nil {
		s.log.Error("failed to fetch config, using defaults", sl.Op(op), sl.Err(err))
		return
	}
	s.store.Dispatch(state.ConfigLoaded{
		RoiRates:    cfg.RoiRates.MergeOver(models.DefaultRoiRates()),
		LastUpdated: cfg.LastUpdated,
	})
}

func (s *Session) restore(ctx context.Context) {
	const op = "session.restore"
	log := s.log.With(sl.Op(op))

	token, err := s.tokens.Token()
	if err != nil {
		log.Error("failed to read token", sl.Err(err))
		return
	}
	if token == "" {
		return
	}

	if err := jwt.CheckExpiry(token, s.now()); errors.Is(err, jwt.ErrExpired) {
		log.Info("stored token expired")
		s.clearToken()
		return
	}

	user, err := s.api.GetProfile(ctx)
	if err != nil {
		log.Warn("failed to restore session", sl.Err(err))
		s.clearToken()
		return
	}

	s.store.Dispatch(state.SessionStarted{User: *user})
	s.hydrate(ctx, *user)
}

// hydrate загружает списки, нужные роли пользователя. При ошибке список остаётся пустым.
func (s *Session) hydrate(ctx context.Context, user models.User) {
	if user.IsAdmin {
		s.hydrateAdmin(ctx)
		return
	}
	s.hydrateUser(ctx)
}

func (s *Session) hydrateUser(ctx context.Context) {
	const op = "session.hydrateUser"
	log := s.log.With(sl.Op(op))

	var g errgroup.Group
	g.Go(func() error {
		items, err := s.api.ListInvestments(ctx)
		if err != nil {
			log.Error("failed to fetch investments", sl.Err(err))
			return nil
		}
		s.store.Dispatch(state.InvestmentsLoaded{Items: items})
		return nil
	})
	g.Go(func() error {
		items, err := s.api.ListTransactions(ctx)
		if err != nil {
			log.Error("failed to fetch transactions", sl.Err(err))
			return nil
		}
		s.store.Dispatch(state.TransactionsLoaded{Items: items})
		return nil
	})
	_ = g.Wait()
}

func (s *Session) hydrateAdmin(ctx context.Context) {
	const op = "session.hydrateAdmin"
	log := s.log.With(sl.Op(op))

	current := s.store.Snapshot()
	pendingInv := current.PendingInvestments
	pendingTx := current.PendingWithdrawals

	var g errgroup.Group
	g.Go(func() error {
		items, err := s.api.ListAllInvestments(ctx, "")
		if err != nil {
			log.Error("failed to fetch investment requests", sl.Err(err))
			return nil
		}
		pendingInv = filterPending(items, func(inv models.Investment) bool {
			return inv.Status == models.InvestmentPending
		})
		return nil
	})
	g.Go(func() error {
		items, err := s.api.ListAllTransactions(ctx, "")
		if err != nil {
			log.Error("failed to fetch withdrawal requests", sl.Err(err))
			return nil
		}
		pendingTx = filterPending(items, func(tx models.Transaction) bool {
			return tx.Status == models.TransactionPending
		})
		return nil
	})
	g.Go(func() error {
		users, err := s.api.ListUsers(ctx, "")
		if err != nil {
			log.Error("failed to fetch users", sl.Err(err))
			return nil
		}
		s.store.Dispatch(state.UsersLoaded{Items: users})
		return nil
	})
	_ = g.Wait()

	s.store.Dispatch(state.AdminQueuesLoaded{Investments: pendingInv, Withdrawals: pendingTx})
	log.Debug("admin queues loaded",
		slog.Int("investments", len(pendingInv)),
		slog.Int("withdrawals", len(pendingTx)),
	)
}

func filterPending[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s *Session) clearToken() {
	if err := s.tokens.ClearToken(); err != nil {
		s.log.Error("failed to clear token", sl.Err(err))
	}
}
