package models

import "time"

// InvestmentStatus статус стейкинг-позиции.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "Pending"
	InvestmentActive    InvestmentStatus = "Active"
	InvestmentRejected  InvestmentStatus = "Rejected"
	InvestmentCompleted InvestmentStatus = "Completed"
)

// CanTransition сообщает, допустим ли переход статуса.
// Pending переходит только в Active или Rejected, Active завершается сервером.
func (s InvestmentStatus) CanTransition(to InvestmentStatus) bool {
	switch s {
	case InvestmentPending:
		return to == InvestmentActive || to == InvestmentRejected
	case InvestmentActive:
		return to == InvestmentCompleted
	default:
		return false
	}
}

// SyncState отмечает, подтверждена ли локальная запись сервером.
// Неподтверждённая запись при ошибке сервера удаляется, а не остаётся в списке.
type SyncState int

const (
	SyncConfirmed SyncState = iota
	SyncProvisional
)

func (s SyncState) String() string {
	switch s {
	case SyncProvisional:
		return "provisional"
	default:
		return "confirmed"
	}
}

// Investment представляет стейкинг-позицию пользователя.
type Investment struct {
	ID                    string           `json:"_id"`
	User                  *User            `json:"user,omitempty"`
	Method                Asset            `json:"method"`
	Amount                float64          `json:"amount"`
	Status                InvestmentStatus `json:"status"`
	Returns               float64          `json:"returns"`
	LastClaimedAt         *time.Time       `json:"lastClaimedAt,omitempty"`
	WalletAddress         string           `json:"walletAddress,omitempty"`
	ReceiverWalletAddress string           `json:"receiverWalletAddress,omitempty"`
	TransactionHash       string           `json:"transactionHash,omitempty"`
	Network               Network          `json:"network,omitempty"`
	CreatedAt             time.Time        `json:"createdAt,omitempty"`

	Sync SyncState `json:"-"`
}

// InvestmentUpdate тело PUT /investments/:id.
type InvestmentUpdate struct {
	Status                InvestmentStatus `json:"status,omitempty"`
	ReceiverWalletAddress string           `json:"receiverWalletAddress,omitempty"`
}

// ClaimResult ответ POST /investments/:id/claim.
type ClaimResult struct {
	Investment struct {
		Returns       float64    `json:"returns"`
		LastClaimedAt *time.Time `json:"lastClaimedAt"`
	} `json:"investment"`
	NewBalance    float64 `json:"newBalance"`
	ClaimedAmount float64 `json:"claimedAmount"`
	Message       string  `json:"message,omitempty"`
}
