package splitservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adensardi/sahal/internal/cardpay"
	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/notify"
	"github.com/adensardi/sahal/internal/service/bookingservice"
)

type BookingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
}

type SplitRepo interface {
	Save(ctx context.Context, split *domain.CommissionSplit) (*domain.CommissionSplit, error)
	FindByBookingID(ctx context.Context, bookingID int) (*domain.CommissionSplit, error)
	Complete(ctx context.Context, id int, transferID, notes string) error
}

type WalletRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
}

type WalletService interface {
	CreditEarning(ctx context.Context, professionalID int, amount decimal.Decimal, bookingID, splitID int) (*domain.WalletTransaction, error)
}

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingNotPaid  = errors.New("booking is not paid")
)

type Service struct {
	bookingRepo   BookingRepo
	splitRepo     SplitRepo
	walletRepo    WalletRepo
	walletService WalletService
	gateway       cardpay.Gateway
	notifier      notify.Notifier
}

func New(bookingRepo BookingRepo, splitRepo SplitRepo, walletRepo WalletRepo, walletService WalletService, gateway cardpay.Gateway, notifier notify.Notifier) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		splitRepo:     splitRepo,
		walletRepo:    walletRepo,
		walletService: walletService,
		gateway:       gateway,
		notifier:      notifier,
	}
}

// Process divides a paid booking's total between the platform and the
// professional. It is idempotent per booking: a second call returns the
// existing split without moving money again.
func (s *Service) Process(ctx context.Context, bookingID int, paymentRef string, method domain.PaymentMethod) (*domain.CommissionSplit, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to load booking for split", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.PaymentStatus != bookingservice.PaymentStatusPaid {
		return nil, ErrBookingNotPaid
	}

	existing, err := s.splitRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to check for existing split", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	commission := booking.CommissionAmount
	professionalAmount := booking.TotalAmount.Sub(commission)

	split, err := s.splitRepo.Save(ctx, &domain.CommissionSplit{
		BookingID:          bookingID,
		TotalAmount:        booking.TotalAmount,
		PlatformCommission: commission,
		ProfessionalAmount: professionalAmount,
		PaymentMethod:      method,
		Status:             StatusProcessing,
	})
	if err != nil {
		zap.L().Error("failed to save commission split", zap.Error(err))
		return nil, err
	}

	notes := "credited to internal wallet: no active payout account"
	if method == domain.MethodCard {
		wallet, err := s.walletRepo.FindByUserID(ctx, booking.ProfessionalID)
		if err != nil {
			zap.L().Error("failed to load professional wallet", zap.Error(err))
			return nil, err
		}
		if wallet != nil && wallet.PayoutAccountActive {
			transferID, err := s.gateway.Transfer(ctx, wallet.PayoutAccount, professionalAmount)
			if err == nil {
				return s.complete(ctx, split, transferID, "professional paid by external transfer", booking)
			}
			// a failed transfer never leaves the professional unpaid
			zap.L().Warn("external transfer failed, falling back to internal wallet",
				zap.Int("bookingID", bookingID), zap.Error(err))
			notes = "external transfer failed: credited to internal wallet"
		}
	} else {
		notes = "credited to internal wallet: local mobile-money payment"
	}

	if _, err := s.walletService.CreditEarning(ctx, booking.ProfessionalID, professionalAmount, bookingID, split.ID); err != nil {
		zap.L().Error("failed to credit professional wallet", zap.Error(err))
		return nil, err
	}

	return s.complete(ctx, split, "", notes, booking)
}

func (s *Service) complete(ctx context.Context, split *domain.CommissionSplit, transferID, notes string, booking *domain.Booking) (*domain.CommissionSplit, error) {
	if err := s.splitRepo.Complete(ctx, split.ID, transferID, notes); err != nil {
		zap.L().Error("failed to complete commission split", zap.Error(err))
		return nil, err
	}
	split.Status = StatusCompleted
	split.PlatformPaid = true
	split.ProfessionalPaid = true
	split.TransferID = transferID
	split.Notes = notes

	s.notifier.FundsReceived(ctx, booking.ProfessionalID, split.ProfessionalAmount, booking.ID)
	return split, nil
}
