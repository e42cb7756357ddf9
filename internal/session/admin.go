package session

import (
	"context"
	"log/slog"
	"slices"

	"github.com/magabrotheeeer/staking-bank/internal/apiclient"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// ApproveInvestment переводит заявку в Active и убирает её из очереди.
func (s *Session) ApproveInvestment(ctx context.Context, id string) models.Result {
	return s.resolveInvestment(ctx, id, models.InvestmentActive, "Investment approved")
}

// RejectInvestment переводит заявку в Rejected и убирает её из очереди.
func (s *Session) RejectInvestment(ctx context.Context, id string) models.Result {
	return s.resolveInvestment(ctx, id, models.InvestmentRejected, "Investment rejected")
}

func (s *Session) resolveInvestment(ctx context.Context, id string, status models.InvestmentStatus, okMsg string) models.Result {
	const op = "session.resolveInvestment"

	if !s.store.Snapshot().IsAdmin() {
		return models.Fail(msgAdminRequired)
	}
	if _, err := s.api.UpdateInvestment(ctx, id, models.InvestmentUpdate{Status: status}); err != nil {
		s.log.Error("failed to update investment status", sl.Op(op),
			slog.String("id", id), slog.String("status", string(status)), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Failed to update investment"))
	}
	s.store.Dispatch(state.InvestmentResolved{ID: id, Status: status})
	return models.OK(okMsg)
}

// ApproveWithdrawal переводит вывод в Approved и убирает его из очереди.
func (s *Session) ApproveWithdrawal(ctx context.Context, id string) models.Result {
	return s.resolveWithdrawal(ctx, id, models.TransactionApproved, "Withdrawal approved")
}

// RejectWithdrawal переводит вывод в Rejected и убирает его из очереди.
func (s *Session) RejectWithdrawal(ctx context.Context, id string) models.Result {
	return s.resolveWithdrawal(ctx, id, models.TransactionRejected, "Withdrawal rejected")
}

func (s *Session) resolveWithdrawal(ctx context.Context, id string, status models.TransactionStatus, okMsg string) models.Result {
	const op = "session.resolveWithdrawal"

	if !s.store.Snapshot().IsAdmin() {
		return models.Fail(msgAdminRequired)
	}
	if _, err := s.api.UpdateTransaction(ctx, id, models.TransactionUpdate{Status: status}); err != nil {
		s.log.Error("failed to update withdrawal status", sl.Op(op),
			slog.String("id", id), slog.String("status", string(status)), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Failed to update withdrawal"))
	}
	s.store.Dispatch(state.WithdrawalResolved{ID: id, Status: status})
	return models.OK(okMsg)
}

// UpdateRequestWallet правит адрес получателя в заявке на инвестицию.
func (s *Session) UpdateRequestWallet(ctx context.Context, id, walletAddress string) models.Result {
	const op = "session.UpdateRequestWallet"

	if !s.store.Snapshot().IsAdmin() {
		return models.Fail(msgAdminRequired)
	}
	if walletAddress == "" {
		return models.Fail("Wallet address is required")
	}
	upd := models.InvestmentUpdate{ReceiverWalletAddress: walletAddress}
	if _, err := s.api.UpdateInvestment(ctx, id, upd); err != nil {
		s.log.Error("failed to update wallet address", sl.Op(op), slog.String("id", id), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Failed to update wallet address"))
	}
	s.store.Dispatch(state.RequestWalletUpdated{ID: id, WalletAddress: walletAddress})
	return models.OK("Wallet address updated")
}

// UpdateRoiRate применяет патч локально сразу, затем отправляет его на сервер.
// При ошибке сервера прежние настройки актива восстанавливаются.
func (s *Session) UpdateRoiRate(ctx context.Context, asset models.Asset, patch models.AssetConfigPatch) models.Result {
	const op = "session.UpdateRoiRate"

	st := s.store.Snapshot()
	if !st.IsAdmin() {
		return models.Fail(msgAdminRequired)
	}
	if asset == "" {
		return models.Fail("Asset is required")
	}
	if patch.Rate != nil && *patch.Rate < 0 {
		return models.Fail("Rate must not be negative")
	}
	if patch.Period != nil && *patch.Period != models.PeriodDaily && *patch.Period != models.PeriodMonthly {
		return models.Fail("Period must be Daily or Monthly")
	}

	prev, existed := st.RoiRates[asset]
	s.store.Dispatch(state.RoiRatePatched{Asset: asset, Patch: patch})

	upd := models.ConfigUpdate{RoiRates: map[models.Asset]models.AssetConfigPatch{asset: patch}}
	if err := s.api.UpdateConfig(ctx, upd); err != nil {
		s.log.Error("failed to save roi rate, reverting", sl.Op(op), slog.String("asset", string(asset)), sl.Err(err))
		s.store.Dispatch(state.RoiRateReverted{Asset: asset, Patch: patch, Previous: prev, Existed: existed})
		return models.Fail(apiclient.Message(err, "Failed to update ROI rate"))
	}
	return models.OK("ROI rate updated")
}

// SetAdmin выдаёт или отзывает права администратора.
func (s *Session) SetAdmin(ctx context.Context, userID string, isAdmin bool) models.Result {
	const op = "session.SetAdmin"

	st := s.store.Snapshot()
	if !st.IsAdmin() {
		return models.Fail(msgAdminRequired)
	}
	if st.User.ID == userID {
		return models.Fail("You cannot change your own role")
	}

	updated, err := s.api.UpdateUser(ctx, userID, models.UserPatch{IsAdmin: &isAdmin})
	if err != nil {
		s.log.Error("failed to change role", sl.Op(op), slog.String("id", userID), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Failed to update user"))
	}
	if updated.ID != "" {
		s.store.Dispatch(state.UserUpdated{User: *updated})
	} else if target, ok := findUser(st.Users, userID); ok {
		s.store.Dispatch(state.UserUpdated{User: target.Apply(models.UserPatch{IsAdmin: &isAdmin})})
	}
	if isAdmin {
		return models.OK("User promoted to admin")
	}
	return models.OK("Admin rights revoked")
}

// ToggleBlock блокирует или разблокирует пользователя.
// Второе значение: состояние блокировки, которое вернул сервер.
func (s *Session) ToggleBlock(ctx context.Context, userID string) (models.Result, bool) {
	const op = "session.ToggleBlock"

	st := s.store.Snapshot()
	if !st.IsAdmin() {
		return models.Fail(msgAdminRequired), false
	}
	if st.User.ID == userID {
		return models.Fail("You cannot block yourself"), false
	}

	blocked, err := s.api.ToggleBlockUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to toggle block", sl.Op(op), slog.String("id", userID), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Failed to update user")), false
	}
	if target, ok := findUser(st.Users, userID); ok {
		s.store.Dispatch(state.UserUpdated{User: target.Apply(models.UserPatch{IsBlocked: &blocked})})
	}
	if blocked {
		return models.OK("User blocked"), true
	}
	return models.OK("User unblocked"), false
}

// ResetUserPassword задаёт пользователю новый пароль.
func (s *Session) ResetUserPassword(ctx context.Context, userID, password string) models.Result {
	const op = "session.ResetUserPassword"

	if !s.store.Snapshot().IsAdmin() {
		return models.Fail(msgAdminRequired)
	}
	if len(password) < 6 {
		return models.Fail("Password must be at least 6 characters")
	}
	if _, err := s.api.UpdateUser(ctx, userID, models.UserPatch{Password: &password}); err != nil {
		s.log.Error("failed to reset password", sl.Op(op), slog.String("id", userID), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Failed to reset password"))
	}
	return models.OK("Password updated")
}

func findUser(users []models.User, id string) (models.User, bool) {
	i := slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return models.User{}, false
	}
	return users[i], true
}
