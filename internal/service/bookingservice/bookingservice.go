package bookingservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/notify"
	"github.com/adensardi/sahal/internal/pg"
)

type Repo interface {
	Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	RecomputeClientStats(ctx context.Context, clientID int) error
}

type DirectoryRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindServiceByID(ctx context.Context, id int) (*domain.Service, error)
}

type WalletService interface {
	CreditRefund(ctx context.Context, userID int, amount decimal.Decimal, bookingID int) (*domain.WalletTransaction, error)
}

const (
	// StatusPending awaits payment or professional confirmation.
	StatusPending = "pending"
	// StatusConfirmed is set when payment lands or the professional accepts.
	StatusConfirmed = "confirmed"
	// StatusCompleted marks a delivered service. Terminal.
	StatusCompleted = "completed"
	// StatusCancelled is terminal; funds may have been refunded.
	StatusCancelled = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// CommissionRate is the platform's fixed cut of every booking.
var CommissionRate = decimal.NewFromFloat(0.10)

var (
	ErrMissingFields        = errors.New("missing required booking fields")
	ErrInvalidSchedule      = errors.New("invalid scheduled date or time")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrInactiveProfessional = errors.New("professional is not active")
	ErrInactiveService      = errors.New("service is not active")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotParticipant       = errors.New("user is not a party to this booking")
	ErrNotOwner             = errors.New("only the client may cancel a booking")
	ErrInvalidTransition    = errors.New("illegal status transition")
	ErrAlreadyFinal         = errors.New("booking is already cancelled or completed")
)

// forwardTransitions holds every legal outgoing edge of the booking state
// machine. Terminal states have none.
var forwardTransitions = map[string]map[string]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
}

type Service struct {
	repo          Repo
	directory     DirectoryRepo
	walletService WalletService
	txManager     pg.TXManager
	notifier      notify.Notifier
}

func New(repo Repo, directory DirectoryRepo, walletService WalletService, txManager pg.TXManager, notifier notify.Notifier) *Service {
	return &Service{
		repo:          repo,
		directory:     directory,
		walletService: walletService,
		txManager:     txManager,
		notifier:      notifier,
	}
}

type CreateInput struct {
	ProfessionalID int
	ServiceID      int
	ScheduledDate  string
	ScheduledTime  string
	Address        string
	TotalAmount    decimal.Decimal
}

const scheduleLayout = "2006-01-02 15:04"

func (s *Service) Create(ctx context.Context, clientID int, in CreateInput) (*domain.Booking, error) {
	if in.ProfessionalID == 0 || in.ServiceID == 0 || in.Address == "" || !in.TotalAmount.IsPositive() {
		return nil, ErrMissingFields
	}
	scheduledAt, err := time.Parse(scheduleLayout, in.ScheduledDate+" "+in.ScheduledTime)
	if err != nil {
		return nil, ErrInvalidSchedule
	}

	professional, err := s.directory.FindByID(ctx, in.ProfessionalID)
	if err != nil {
		zap.L().Error("failed to load professional", zap.Error(err))
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}
	if !professional.IsActive {
		return nil, ErrInactiveProfessional
	}

	service, err := s.directory.FindServiceByID(ctx, in.ServiceID)
	if err != nil {
		zap.L().Error("failed to load service", zap.Error(err))
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	if !service.IsActive {
		return nil, ErrInactiveService
	}

	booking := &domain.Booking{
		ClientID:         clientID,
		ProfessionalID:   in.ProfessionalID,
		ServiceID:        in.ServiceID,
		ScheduledAt:      scheduledAt,
		Address:          in.Address,
		TotalAmount:      in.TotalAmount,
		CommissionAmount: in.TotalAmount.Mul(CommissionRate).Round(0),
		Status:           StatusPending,
		PaymentStatus:    PaymentStatusPending,
	}

	booking, err = s.repo.Save(ctx, booking)
	if err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return nil, err
	}

	if err := s.repo.RecomputeClientStats(ctx, clientID); err != nil {
		zap.L().Error("failed to recompute client stats", zap.Error(err))
	}

	s.notifier.BookingCreated(ctx, booking)
	return booking, nil
}

func (s *Service) UpdateStatus(ctx context.Context, bookingID int, newStatus string, actingUserID int) error {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to load booking", zap.Error(err))
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if actingUserID != booking.ClientID && actingUserID != booking.ProfessionalID {
		return ErrNotParticipant
	}
	if !forwardTransitions[booking.Status][newStatus] {
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		zap.L().Error("failed to update booking status", zap.Error(err))
		return err
	}

	if err := s.repo.RecomputeClientStats(ctx, booking.ClientID); err != nil {
		zap.L().Error("failed to recompute client stats", zap.Error(err))
	}
	return nil
}

// RefundPercentage maps the time left before the appointment to the share of
// the payment returned on cancellation.
func RefundPercentage(scheduledAt, now time.Time) int {
	hoursUntil := scheduledAt.Sub(now).Hours()
	switch {
	case hoursUntil >= 24:
		return 100
	case hoursUntil >= 12:
		return 50
	default:
		return 0
	}
}

func (s *Service) Cancel(ctx context.Context, bookingID, actingClientID int) (decimal.Decimal, int, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to load booking", zap.Error(err))
		return decimal.Zero, 0, err
	}
	if booking == nil {
		return decimal.Zero, 0, ErrBookingNotFound
	}
	if booking.ClientID != actingClientID {
		return decimal.Zero, 0, ErrNotOwner
	}
	if booking.Status == StatusCancelled || booking.Status == StatusCompleted {
		return decimal.Zero, 0, ErrAlreadyFinal
	}

	percentage := RefundPercentage(booking.ScheduledAt, time.Now())
	// DJF has no minor unit, refunds land on whole francs
	refund := booking.TotalAmount.Mul(decimal.NewFromInt(int64(percentage))).Div(decimal.NewFromInt(100)).Round(0)

	if booking.PaymentStatus == PaymentStatusPaid && refund.IsPositive() {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.repo.UpdateStatus(ctx, bookingID, StatusCancelled); err != nil {
				return err
			}
			_, err := s.walletService.CreditRefund(ctx, booking.ClientID, refund, bookingID)
			return err
		})
	} else {
		// nothing was paid or the tier is 0%, nothing to credit back
		refund = decimal.Zero
		err = s.repo.UpdateStatus(ctx, bookingID, StatusCancelled)
	}
	if err != nil {
		zap.L().Error("failed to cancel booking", zap.Error(err))
		return decimal.Zero, 0, err
	}

	if err := s.repo.RecomputeClientStats(ctx, booking.ClientID); err != nil {
		zap.L().Error("failed to recompute client stats", zap.Error(err))
	}

	booking.Status = StatusCancelled
	s.notifier.BookingCancelled(ctx, booking, refund, percentage)
	return refund, percentage, nil
}

func (s *Service) GetBookings(ctx context.Context, userID int) ([]domain.Booking, error) {
	bookings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get bookings", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}
