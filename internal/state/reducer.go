package state

import (
	"slices"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

// Reduce применяет действие к копии состояния и возвращает её.
// Неизвестные действия оставляют состояние без изменений.
func Reduce(s State, a Action) State {
	s = s.Clone()

	switch a := a.(type) {
	case ConfigLoaded:
		s.RoiRates = a.RoiRates.Clone()
		s.ConfigUpdatedAt = a.LastUpdated

	case SessionStarted:
		u := a.User
		s.User = &u
		s.Error = ""
		s.Investments = nil
		s.Transactions = nil
		s.PendingInvestments = nil
		s.PendingWithdrawals = nil
		s.Users = nil

	case SessionCleared:
		s.User = nil
		s.Investments = nil
		s.Transactions = nil
		s.PendingInvestments = nil
		s.PendingWithdrawals = nil
		s.Users = nil

	case UserPatched:
		if s.User != nil {
			u := s.User.Apply(a.Patch)
			s.User = &u
		}

	case InvestmentsLoaded:
		s.Investments = slices.Clone(a.Items)

	case TransactionsLoaded:
		s.Transactions = slices.Clone(a.Items)

	case AdminQueuesLoaded:
		s.PendingInvestments = slices.Clone(a.Investments)
		s.PendingWithdrawals = slices.Clone(a.Withdrawals)

	case UsersLoaded:
		s.Users = slices.Clone(a.Items)

	case UserUpdated:
		for i := range s.Users {
			if s.Users[i].ID == a.User.ID {
				s.Users[i] = a.User
			}
		}
		if s.User != nil && s.User.ID == a.User.ID {
			u := a.User
			s.User = &u
		}

	case InvestmentProvisioned:
		s.Investments = prepend(s.Investments, a.Investment)
		if a.ToAdminQueue {
			s.PendingInvestments = prepend(s.PendingInvestments, a.Investment)
		}

	case InvestmentConfirmed:
		replace := func(list []models.Investment) {
			for i := range list {
				if list[i].ID == a.TempID {
					list[i] = a.Investment
				}
			}
		}
		replace(s.Investments)
		replace(s.PendingInvestments)

	case InvestmentReverted:
		match := func(inv models.Investment) bool { return inv.ID == a.TempID }
		s.Investments = slices.DeleteFunc(s.Investments, match)
		s.PendingInvestments = slices.DeleteFunc(s.PendingInvestments, match)

	case WithdrawalAdded:
		s.Transactions = prepend(s.Transactions, a.Transaction)

	case InvestmentClaimed:
		for i := range s.Investments {
			if s.Investments[i].ID == a.ID {
				s.Investments[i].Returns = a.Returns
				s.Investments[i].LastClaimedAt = a.LastClaimedAt
			}
		}
		if s.User != nil {
			u := *s.User
			u.TotalROI += a.ClaimedAmount
			u.Balance = a.NewBalance
			s.User = &u
		}

	case InvestmentResolved:
		s.PendingInvestments = slices.DeleteFunc(s.PendingInvestments, func(inv models.Investment) bool {
			return inv.ID == a.ID
		})
		for i := range s.Investments {
			if s.Investments[i].ID == a.ID && s.Investments[i].Status.CanTransition(a.Status) {
				s.Investments[i].Status = a.Status
			}
		}

	case WithdrawalResolved:
		s.PendingWithdrawals = slices.DeleteFunc(s.PendingWithdrawals, func(tx models.Transaction) bool {
			return tx.ID == a.ID
		})
		for i := range s.Transactions {
			if s.Transactions[i].ID == a.ID && !s.Transactions[i].Status.Terminal() {
				s.Transactions[i].Status = a.Status
			}
		}

	case RequestWalletUpdated:
		for _, list := range [][]models.Investment{s.PendingInvestments, s.Investments} {
			for i := range list {
				if list[i].ID == a.ID {
					list[i].ReceiverWalletAddress = a.WalletAddress
				}
			}
		}

	case RoiRatePatched:
		if s.RoiRates == nil {
			s.RoiRates = models.RoiRates{}
		}
		s.RoiRates[a.Asset] = s.RoiRates[a.Asset].Merge(a.Patch)

	case RoiRateReverted:
		cur, ok := s.RoiRates[a.Asset]
		if !ok {
			break
		}
		restored := cur.Revert(a.Patch, a.Previous)
		if !a.Existed && restored.IsZero() {
			delete(s.RoiRates, a.Asset)
			break
		}
		s.RoiRates[a.Asset] = restored

	case LoadingFinished:
		s.Loading = false

	case ErrorRaised:
		s.Error = a.Message
	}

	return s
}

func prepend[T any](list []T, item T) []T {
	return append([]T{item}, list...)
}
