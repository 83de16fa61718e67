package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Role      string    `db:"role"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type Service struct {
	ID             int             `db:"id"`
	ProfessionalID int             `db:"professional_id"`
	Title          string          `db:"title"`
	Price          decimal.Decimal `db:"price"`
	IsActive       bool            `db:"is_active"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Booking struct {
	ID               int             `db:"id"`
	ClientID         int             `db:"client_id"`
	ProfessionalID   int             `db:"professional_id"`
	ServiceID        int             `db:"service_id"`
	ScheduledAt      time.Time       `db:"scheduled_at"`
	Address          string          `db:"address"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	Status           string          `db:"status"`
	PaymentStatus    string          `db:"payment_status"`
	PaymentMethod    string          `db:"payment_method"`
	PaymentReference string          `db:"payment_reference"`
	CreatedAt        time.Time       `db:"created_at"`
}

type ClientStats struct {
	UserID            int             `db:"user_id"`
	TotalBookings     int             `db:"total_bookings"`
	CompletedBookings int             `db:"completed_bookings"`
	TotalSpent        decimal.Decimal `db:"total_spent"`
}

type LocalPayment struct {
	ID                   int             `db:"id"`
	BookingID            int             `db:"booking_id"`
	UserID               int             `db:"user_id"`
	PaymentMethod        PaymentMethod   `db:"payment_method"`
	PhoneNumber          string          `db:"phone_number"`
	Amount               decimal.Decimal `db:"amount"`
	CommissionAmount     decimal.Decimal `db:"commission_amount"`
	ProfessionalAmount   decimal.Decimal `db:"professional_amount"`
	TransactionReference string          `db:"transaction_reference"`
	Status               string          `db:"status"`
	InitiatedAt          time.Time       `db:"initiated_at"`
	VerifiedAt           *time.Time      `db:"verified_at"`
	VerifiedBy           *int            `db:"verified_by"`
}

type CommissionSplit struct {
	ID                 int             `db:"id"`
	BookingID          int             `db:"booking_id"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	PlatformCommission decimal.Decimal `db:"platform_commission"`
	ProfessionalAmount decimal.Decimal `db:"professional_amount"`
	PaymentMethod      PaymentMethod   `db:"payment_method"`
	PlatformPaid       bool            `db:"platform_paid"`
	ProfessionalPaid   bool            `db:"professional_paid"`
	Status             string          `db:"status"`
	TransferID         string          `db:"transfer_id"`
	Notes              string          `db:"notes"`
	CreatedAt          time.Time       `db:"created_at"`
}

type Wallet struct {
	ID                  int             `db:"id"`
	UserID              int             `db:"user_id"`
	Balance             decimal.Decimal `db:"balance"`
	PendingBalance      decimal.Decimal `db:"pending_balance"`
	TotalEarned         decimal.Decimal `db:"total_earned"`
	PayoutAccount       string          `db:"payout_account"`
	PayoutAccountActive bool            `db:"payout_account_active"`
	PayoutMethod        string          `db:"payout_method"`
	PayoutDetails       string          `db:"payout_details"`
	CreatedAt           time.Time       `db:"created_at"`
}

type WalletTransaction struct {
	ID            int             `db:"id"`
	WalletID      int             `db:"wallet_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	Status        string          `db:"status"`
	BookingID     *int            `db:"booking_id"`
	SplitID       *int            `db:"split_id"`
	WithdrawalID  *int            `db:"withdrawal_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

type WithdrawalRequest struct {
	ID             int             `db:"id"`
	WalletID       int             `db:"wallet_id"`
	ProfessionalID int             `db:"professional_id"`
	Amount         decimal.Decimal `db:"amount"`
	PayoutMethod   string          `db:"payout_method"`
	PayoutDetails  string          `db:"payout_details"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	ProcessedAt    *time.Time      `db:"processed_at"`
}
