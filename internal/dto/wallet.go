package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Balance             decimal.Decimal `json:"balance" example:"9000"`
	PendingBalance      decimal.Decimal `json:"pending_balance" example:"0"`
	TotalEarned         decimal.Decimal `json:"total_earned" example:"9000"`
	PayoutMethod        string          `json:"payout_method,omitempty" example:"waafipay"`
	PayoutAccountActive bool            `json:"payout_account_active" example:"false"`
}

type WithdrawRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" example:"5000"`
	PayoutMethod  string          `json:"payoutMethod" example:"waafipay"`
	PayoutDetails string          `json:"payoutDetails" example:"77123456"`
}

type WithdrawalDTO struct {
	ID            int             `json:"id" example:"3"`
	Amount        decimal.Decimal `json:"amount" example:"5000"`
	PayoutMethod  string          `json:"payout_method" example:"waafipay"`
	PayoutDetails string          `json:"payout_details" example:"77123456"`
	Status        string          `json:"status" example:"pending"`
	CreatedAt     time.Time       `json:"created_at"`
}

type WithdrawResponseDTO struct {
	Success    bool          `json:"success" example:"true"`
	Withdrawal WithdrawalDTO `json:"withdrawal"`
}

type WalletTransactionDTO struct {
	ID            int             `json:"id" example:"15"`
	Type          string          `json:"type" example:"earning"`
	Amount        decimal.Decimal `json:"amount" example:"9000"`
	BalanceBefore decimal.Decimal `json:"balance_before" example:"0"`
	BalanceAfter  decimal.Decimal `json:"balance_after" example:"9000"`
	Status        string          `json:"status" example:"completed"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PayoutInfoRequestDTO struct {
	PayoutMethod  string `json:"payout_method" example:"dmoney"`
	PayoutDetails string `json:"payout_details" example:"77123456"`
	PayoutAccount string `json:"payout_account,omitempty" example:"acct_1H8"`
}

type PayoutInfoResponseDTO struct {
	Success bool `json:"success" example:"true"`
}

type ProcessWithdrawalRequestDTO struct {
	Action string `json:"action" example:"approve"`
}

type ProcessWithdrawalResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"approved"`
}
