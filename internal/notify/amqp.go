package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adensardi/sahal/internal/domain"
)

// AMQPNotifier publishes notification events on a topic exchange.
// Publishing is best effort: a broker failure is logged, never surfaced to
// the operation that triggered it.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) publish(ctx context.Context, key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("can't marshal notification", zap.String("key", key), zap.Error(err))
		return
	}
	err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		zap.L().Error("can't publish notification", zap.String("key", key), zap.Error(err))
	}
}

func (n *AMQPNotifier) BookingCreated(ctx context.Context, booking *domain.Booking) {
	n.publish(ctx, keyBookingCreated, map[string]any{
		"booking_id":      booking.ID,
		"client_id":       booking.ClientID,
		"professional_id": booking.ProfessionalID,
		"scheduled_at":    booking.ScheduledAt,
		"total_amount":    booking.TotalAmount,
	})
}

func (n *AMQPNotifier) BookingCancelled(ctx context.Context, booking *domain.Booking, refundAmount decimal.Decimal, refundPercentage int) {
	n.publish(ctx, keyBookingCancelled, map[string]any{
		"booking_id":        booking.ID,
		"client_id":         booking.ClientID,
		"professional_id":   booking.ProfessionalID,
		"refund_amount":     refundAmount,
		"refund_percentage": refundPercentage,
	})
}

func (n *AMQPNotifier) PaymentCompleted(ctx context.Context, bookingID int, amount decimal.Decimal, method domain.PaymentMethod) {
	n.publish(ctx, keyPaymentCompleted, map[string]any{
		"booking_id":     bookingID,
		"amount":         amount,
		"payment_method": method.String(),
	})
}

func (n *AMQPNotifier) FundsReceived(ctx context.Context, professionalID int, amount decimal.Decimal, bookingID int) {
	n.publish(ctx, keyWalletCredited, map[string]any{
		"professional_id": professionalID,
		"amount":          amount,
		"booking_id":      bookingID,
	})
}

func (n *AMQPNotifier) WithdrawalRequested(ctx context.Context, adminIDs []int, withdrawal *domain.WithdrawalRequest) {
	n.publish(ctx, keyWithdrawalRequested, map[string]any{
		"withdrawal_id":   withdrawal.ID,
		"professional_id": withdrawal.ProfessionalID,
		"amount":          withdrawal.Amount,
		"admin_ids":       adminIDs,
	})
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
