package notify

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adensardi/sahal/internal/domain"
)

// LogNotifier is used when no broker is configured. The trigger points still
// fire, they just land in the log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingCreated(_ context.Context, booking *domain.Booking) {
	zap.L().Info("notify: booking created",
		zap.Int("bookingID", booking.ID),
		zap.Int("professionalID", booking.ProfessionalID))
}

func (n *LogNotifier) BookingCancelled(_ context.Context, booking *domain.Booking, refundAmount decimal.Decimal, refundPercentage int) {
	zap.L().Info("notify: booking cancelled",
		zap.Int("bookingID", booking.ID),
		zap.String("refundAmount", refundAmount.String()),
		zap.Int("refundPercentage", refundPercentage))
}

func (n *LogNotifier) PaymentCompleted(_ context.Context, bookingID int, amount decimal.Decimal, method domain.PaymentMethod) {
	zap.L().Info("notify: payment completed",
		zap.Int("bookingID", bookingID),
		zap.String("amount", amount.String()),
		zap.String("method", method.String()))
}

func (n *LogNotifier) FundsReceived(_ context.Context, professionalID int, amount decimal.Decimal, bookingID int) {
	zap.L().Info("notify: funds received",
		zap.Int("professionalID", professionalID),
		zap.String("amount", amount.String()),
		zap.Int("bookingID", bookingID))
}

func (n *LogNotifier) WithdrawalRequested(_ context.Context, adminIDs []int, withdrawal *domain.WithdrawalRequest) {
	zap.L().Info("notify: withdrawal requested",
		zap.Int("withdrawalID", withdrawal.ID),
		zap.Int("professionalID", withdrawal.ProfessionalID),
		zap.Ints("adminIDs", adminIDs))
}
