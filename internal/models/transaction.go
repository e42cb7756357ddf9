package models

import "time"

// TransactionStatus статус заявки на вывод.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "Pending"
	TransactionApproved TransactionStatus = "Approved"
	TransactionRejected TransactionStatus = "Rejected"
)

// Terminal сообщает, что статус больше не меняется.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionApproved || s == TransactionRejected
}

// Transaction представляет заявку на вывод средств.
type Transaction struct {
	ID            string            `json:"_id"`
	User          *User             `json:"user,omitempty"`
	Type          string            `json:"type,omitempty"`
	Method        Asset             `json:"method"`
	Amount        float64           `json:"amount"`
	WalletAddress string            `json:"walletAddress"`
	Status        TransactionStatus `json:"status"`
	IsSos         bool              `json:"isSos"`
	CreatedAt     time.Time         `json:"createdAt,omitempty"`
}

// TransactionUpdate тело PUT /transactions/:id.
type TransactionUpdate struct {
	Status TransactionStatus `json:"status"`
}
