package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/staking-bank/internal/apiclient"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
	"github.com/magabrotheeeer/staking-bank/internal/lib/validation"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/roi"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// AddInvestment сразу показывает предварительную запись со статусом Pending,
// затем заменяет её ответом сервера. При ошибке запись удаляется.
func (s *Session) AddInvestment(ctx context.Context, req models.InvestmentRequest) models.Result {
	const op = "session.AddInvestment"

	st := s.store.Snapshot()
	if !st.Authenticated() {
		return models.Fail(msgNotAuthenticated)
	}
	if err := s.validate.Struct(req); err != nil {
		return models.Fail(validation.Message(err))
	}

	user := *st.User
	tempID := s.newID()
	s.store.Dispatch(state.InvestmentProvisioned{
		Investment: models.Investment{
			ID:                    tempID,
			User:                  &user,
			Method:                req.Method,
			Amount:                req.Amount,
			Status:                models.InvestmentPending,
			WalletAddress:         req.WalletAddress,
			ReceiverWalletAddress: req.ReceiverWalletAddress,
			TransactionHash:       req.TransactionHash,
			Network:               req.Network,
			CreatedAt:             s.now(),
			Sync:                  models.SyncProvisional,
		},
		ToAdminQueue: user.IsAdmin,
	})

	created, err := s.api.CreateInvestment(ctx, req)
	if err != nil {
		s.log.Error("investment submission failed, reverting", sl.Op(op), sl.Err(err))
		s.store.Dispatch(state.InvestmentReverted{TempID: tempID})
		return models.Fail(apiclient.Message(err, "Investment submission failed"))
	}

	inv := *created
	if inv.ID == "" {
		inv.ID = tempID
	}
	inv.Status = models.InvestmentPending
	inv.User = &user
	inv.Sync = models.SyncConfirmed
	s.store.Dispatch(state.InvestmentConfirmed{TempID: tempID, Investment: inv})

	s.log.Info("investment submitted", sl.Op(op), slog.String("id", inv.ID))
	return models.OK("Investment submitted and awaiting approval")
}

// RequestWithdrawal проверяет сумму до сети и добавляет заявку, вернувшуюся с сервера.
func (s *Session) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) models.Result {
	const op = "session.RequestWithdrawal"

	st := s.store.Snapshot()
	if !st.Authenticated() {
		return models.Fail(msgNotAuthenticated)
	}
	if err := s.validate.Struct(req); err != nil {
		return models.Fail(validation.Message(err))
	}
	if err := roi.CheckWithdrawal(*st.User, req.Amount, req.IsSos); err != nil {
		if req.IsSos {
			return models.Fail("Amount exceeds invested principal")
		}
		return models.Fail("Insufficient balance")
	}

	tx, err := s.api.RequestWithdrawal(ctx, req)
	if err != nil {
		s.log.Error("withdrawal request failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Withdrawal request failed"))
	}

	s.store.Dispatch(state.WithdrawalAdded{Transaction: *tx})
	return models.OK("Withdrawal request submitted")
}

// ClaimROI переводит начисленный доход в баланс. Значения returns,
// lastClaimedAt и balance берутся из ответа сервера без пересчёта.
func (s *Session) ClaimROI(ctx context.Context, investmentID string) models.Result {
	const op = "session.ClaimROI"

	st := s.store.Snapshot()
	if !st.Authenticated() {
		return models.Fail(msgNotAuthenticated)
	}
	if inv, ok := st.Investment(investmentID); ok {
		cfg := st.RoiRates[inv.Method]
		switch err := roi.CanClaim(inv, cfg, s.now()); {
		case errors.Is(err, roi.ErrNotActive):
			return models.Fail("Only active investments can be claimed")
		case errors.Is(err, roi.ErrTooEarly):
			next := roi.NextClaimAt(inv, cfg)
			return models.Fail(fmt.Sprintf("Too early to claim, next claim available after %s", next.Format("2006-01-02 15:04")))
		}
	}

	res, err := s.api.ClaimInvestment(ctx, investmentID)
	if err != nil {
		s.log.Error("claim failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Claim failed"))
	}

	s.store.Dispatch(state.InvestmentClaimed{
		ID:            investmentID,
		Returns:       res.Investment.Returns,
		LastClaimedAt: res.Investment.LastClaimedAt,
		NewBalance:    res.NewBalance,
		ClaimedAmount: res.ClaimedAmount,
	})

	if res.Message != "" {
		return models.OK(res.Message)
	}
	return models.OK(fmt.Sprintf("Claimed %s successfully", roi.FormatFloat(res.ClaimedAmount)))
}
