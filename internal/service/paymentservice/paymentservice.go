package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adensardi/sahal/internal/cardpay"
	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/notify"
	"github.com/adensardi/sahal/internal/pg"
	"github.com/adensardi/sahal/internal/service/bookingservice"
)

type BookingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	SetPaymentInfo(ctx context.Context, id int, method, reference string) error
	MarkPaid(ctx context.Context, id int, method, reference string) (bool, error)
	SetPaymentFailed(ctx context.Context, id int) error
}

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.LocalPayment) (*domain.LocalPayment, error)
	FindByID(ctx context.Context, id int) (*domain.LocalPayment, error)
	FindCompletedByBookingID(ctx context.Context, bookingID int) (*domain.LocalPayment, error)
	MarkCompleted(ctx context.Context, id int, verifiedBy int, verifiedAt time.Time) (bool, error)
}

type SplitService interface {
	Process(ctx context.Context, bookingID int, paymentRef string, method domain.PaymentMethod) (*domain.CommissionSplit, error)
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"

	// PaymentWindowSeconds is how long the client has to act on the rail's
	// instructions. Advisory: the server does not expire the attempt when
	// the countdown hits zero.
	PaymentWindowSeconds = 300

	referencePrefix = "SAH"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrMissingPhone      = errors.New("phone number is required")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotOwner          = errors.New("booking does not belong to user")
	ErrAlreadyPaid       = errors.New("booking is already paid")
	ErrBookingNotPayable = errors.New("booking is cancelled or completed")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentFailed     = errors.New("payment attempt already failed")
)

type Service struct {
	bookingRepo  BookingRepo
	paymentRepo  PaymentRepo
	splitService SplitService
	gateway      cardpay.Gateway
	notifier     notify.Notifier
	txManager    pg.TXManager
}

func New(bookingRepo BookingRepo, paymentRepo PaymentRepo, splitService SplitService, gateway cardpay.Gateway, notifier notify.Notifier, txManager pg.TXManager) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		splitService: splitService,
		gateway:      gateway,
		notifier:     notifier,
		txManager:    txManager,
	}
}

func (s *Service) loadPayableBooking(ctx context.Context, userID, bookingID int) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to load booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.ClientID != userID {
		return nil, ErrNotOwner
	}
	if booking.Status == bookingservice.StatusCancelled || booking.Status == bookingservice.StatusCompleted {
		return nil, ErrBookingNotPayable
	}
	if booking.PaymentStatus == bookingservice.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}
	return booking, nil
}

func newTransactionReference(bookingID int) string {
	return fmt.Sprintf("%s-%d-%d-%s", referencePrefix, time.Now().Unix(), bookingID, uuid.NewString()[:8])
}

// InitiateLocal records the intent to pay over a mobile-money rail. No money
// moves here; the rail is settled out of band and confirmed later.
func (s *Service) InitiateLocal(ctx context.Context, userID, bookingID int, method, phoneNumber string) (*domain.LocalPayment, []string, error) {
	parsed, err := domain.ParsePaymentMethod(method)
	if err != nil || !parsed.IsLocal() {
		return nil, nil, ErrUnsupportedMethod
	}
	if phoneNumber == "" {
		return nil, nil, ErrMissingPhone
	}

	booking, err := s.loadPayableBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, nil, err
	}

	payment := &domain.LocalPayment{
		BookingID:            bookingID,
		UserID:               userID,
		PaymentMethod:        parsed,
		PhoneNumber:          phoneNumber,
		Amount:               booking.TotalAmount,
		CommissionAmount:     booking.CommissionAmount,
		ProfessionalAmount:   booking.TotalAmount.Sub(booking.CommissionAmount),
		TransactionReference: newTransactionReference(bookingID),
		Status:               StatusPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		return s.bookingRepo.SetPaymentInfo(ctx, bookingID, parsed.String(), payment.TransactionReference)
	})
	if err != nil {
		zap.L().Error("failed to initiate local payment", zap.Error(err))
		return nil, nil, err
	}

	return payment, instructionsFor(parsed, payment), nil
}

func instructionsFor(method domain.PaymentMethod, payment *domain.LocalPayment) []string {
	amount := payment.Amount.String()
	switch method {
	case domain.MethodWaafiPay:
		return []string{
			"Dial *880# from " + payment.PhoneNumber,
			"Choose 'Pay Merchant' and enter merchant code SAHAL",
			"Enter amount " + amount + " DJF",
			"Enter reference " + payment.TransactionReference,
			"Confirm with your WaafiPay PIN",
		}
	case domain.MethodDMoney:
		return []string{
			"Open the D-Money app on " + payment.PhoneNumber,
			"Select 'Payments' then 'Pay a bill'",
			"Enter biller SAHAL and amount " + amount + " DJF",
			"Enter reference " + payment.TransactionReference,
			"Validate the payment with your secret code",
		}
	case domain.MethodCard:
		return nil
	}
	return nil
}

func (s *Service) GetLocalPayment(ctx context.Context, userID, paymentID int) (*domain.LocalPayment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		zap.L().Error("failed to load local payment", zap.Error(err))
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.UserID != userID {
		return nil, ErrNotOwner
	}
	return payment, nil
}

// ConfirmLocal completes a pending local payment after out-of-band
// verification. Safe to call twice: a completed payment is returned as-is,
// and the split engine is re-invoked only to heal a missed run, never to
// credit twice.
func (s *Service) ConfirmLocal(ctx context.Context, paymentID, verifiedBy int) (*domain.LocalPayment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		zap.L().Error("failed to load local payment", zap.Error(err))
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	switch payment.Status {
	case StatusFailed:
		return nil, ErrPaymentFailed
	case StatusCompleted:
		if _, err := s.splitService.Process(ctx, payment.BookingID, payment.TransactionReference, payment.PaymentMethod); err != nil {
			zap.L().Error("failed to re-run split for completed payment", zap.Error(err))
			return nil, err
		}
		return payment, nil
	}

	booking, err := s.bookingRepo.FindByID(ctx, payment.BookingID)
	if err != nil {
		zap.L().Error("failed to load booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == bookingservice.StatusCancelled || booking.Status == bookingservice.StatusCompleted {
		return nil, ErrBookingNotPayable
	}

	// at most one completed payment may exist per booking
	if settled, err := s.paymentRepo.FindCompletedByBookingID(ctx, payment.BookingID); err != nil {
		zap.L().Error("failed to check for settled payment", zap.Error(err))
		return nil, err
	} else if settled != nil {
		return nil, ErrAlreadyPaid
	}

	now := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		transitioned, err := s.paymentRepo.MarkCompleted(ctx, paymentID, verifiedBy, now)
		if err != nil {
			return err
		}
		if !transitioned {
			// a concurrent confirmation won; the booking is already paid
			return nil
		}
		paid, err := s.bookingRepo.MarkPaid(ctx, payment.BookingID, payment.PaymentMethod.String(), payment.TransactionReference)
		if err != nil {
			return err
		}
		if !paid {
			// the booking hit a terminal state since the check above;
			// roll the completion back and keep the payment pending
			return ErrBookingNotPayable
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to confirm local payment", zap.Error(err))
		return nil, err
	}

	payment.Status = StatusCompleted
	payment.VerifiedAt = &now
	payment.VerifiedBy = &verifiedBy

	if _, err := s.splitService.Process(ctx, payment.BookingID, payment.TransactionReference, payment.PaymentMethod); err != nil {
		zap.L().Error("failed to process commission split", zap.Error(err))
		return nil, err
	}

	s.notifier.PaymentCompleted(ctx, payment.BookingID, payment.Amount, payment.PaymentMethod)
	return payment, nil
}

// InitiateCard opens a payment intent with the card processor for the
// booking's amount.
func (s *Service) InitiateCard(ctx context.Context, userID, bookingID int) (*cardpay.Intent, error) {
	booking, err := s.loadPayableBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(ctx, booking.TotalAmount, bookingID)
	if err != nil {
		zap.L().Error("failed to create payment intent", zap.Error(err))
		return nil, err
	}

	if err := s.bookingRepo.SetPaymentInfo(ctx, bookingID, domain.MethodCard.String(), intent.ID); err != nil {
		return nil, err
	}
	return intent, nil
}

func (s *Service) ConfirmCard(ctx context.Context, userID, bookingID int, intentID string) (*domain.CommissionSplit, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to load booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.ClientID != userID {
		return nil, ErrNotOwner
	}
	if booking.Status == bookingservice.StatusCancelled {
		return nil, ErrBookingNotPayable
	}
	if booking.PaymentStatus == bookingservice.PaymentStatusPaid {
		return s.splitService.Process(ctx, bookingID, booking.PaymentReference, domain.MethodCard)
	}

	intent, err := s.gateway.ConfirmIntent(ctx, intentID)
	if err != nil {
		if markErr := s.bookingRepo.SetPaymentFailed(ctx, bookingID); markErr != nil {
			zap.L().Error("failed to mark booking payment failed", zap.Error(markErr))
		}
		return nil, err
	}
	if intent.Status != cardpay.IntentStatusSucceeded {
		if markErr := s.bookingRepo.SetPaymentFailed(ctx, bookingID); markErr != nil {
			zap.L().Error("failed to mark booking payment failed", zap.Error(markErr))
		}
		return nil, fmt.Errorf("%w: intent status %s", cardpay.ErrProviderRejected, intent.Status)
	}

	paid, err := s.bookingRepo.MarkPaid(ctx, bookingID, domain.MethodCard.String(), intentID)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, ErrBookingNotPayable
	}

	split, err := s.splitService.Process(ctx, bookingID, intentID, domain.MethodCard)
	if err != nil {
		zap.L().Error("failed to process commission split", zap.Error(err))
		return nil, err
	}

	s.notifier.PaymentCompleted(ctx, bookingID, booking.TotalAmount, domain.MethodCard)
	return split, nil
}
