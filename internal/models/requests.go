package models

// Credentials используется для входа.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration используется для регистрации, токен после неё не выдаётся.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// PasswordReset сброс пароля без сессии.
type PasswordReset struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// InvestmentRequest тело POST /investments.
type InvestmentRequest struct {
	Method                Asset   `json:"method" validate:"required"`
	Amount                float64 `json:"amount" validate:"required,gt=0"`
	WalletAddress         string  `json:"walletAddress"`
	ReceiverWalletAddress string  `json:"receiverWalletAddress"`
	TransactionHash       string  `json:"transactionHash" validate:"required"`
	Network               Network `json:"network,omitempty"`
}

// WithdrawalRequest тело POST /transactions/withdraw.
type WithdrawalRequest struct {
	Method        Asset   `json:"method" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	WalletAddress string  `json:"walletAddress" validate:"required"`
	IsSos         bool    `json:"isSos"`
}

// NewsletterRequest тело POST /newsletter.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}
