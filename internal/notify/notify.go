// Package notify holds the trigger points for outbound notifications.
// Delivery (SMS, WhatsApp, email) is an external collaborator; this package
// only publishes the events those collaborators consume.
package notify

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/adensardi/sahal/internal/domain"
)

type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
	BookingCancelled(ctx context.Context, booking *domain.Booking, refundAmount decimal.Decimal, refundPercentage int)
	PaymentCompleted(ctx context.Context, bookingID int, amount decimal.Decimal, method domain.PaymentMethod)
	FundsReceived(ctx context.Context, professionalID int, amount decimal.Decimal, bookingID int)
	WithdrawalRequested(ctx context.Context, adminIDs []int, withdrawal *domain.WithdrawalRequest)
}

const (
	keyBookingCreated      = "booking.created"
	keyBookingCancelled    = "booking.cancelled"
	keyPaymentCompleted    = "payment.completed"
	keyWalletCredited      = "wallet.credited"
	keyWithdrawalRequested = "withdrawal.requested"
)
