// Package sweep expires local payments whose clients never settled the rail.
// It is opt-in: bookings keep payment_status pending so the client can start
// a fresh attempt, only the stale LocalPayment row is failed.
package sweep

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/adensardi/sahal/internal/config"
	"github.com/adensardi/sahal/internal/domain"
)

type PaymentRepo interface {
	FindExpiredPending(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.LocalPayment, error)
	MarkFailed(ctx context.Context, id int) (bool, error)
}

const batchLimit = 1000

// inFlight guards against the same payment being swept by overlapping rounds.
var inFlight sync.Map

type Service struct {
	paymentRepo PaymentRepo
	interval    time.Duration
	after       time.Duration
	workers     *pool
}

func New(cfg *config.Config, paymentRepo PaymentRepo) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		interval:    cfg.SweepInterval,
		after:       cfg.SweepAfter,
		workers:     newPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment sweep started",
		zap.Duration("interval", s.interval),
		zap.Duration("after", s.after))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workers.close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payment sweep")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.after)
	payments, err := s.paymentRepo.FindExpiredPending(ctx, cutoff, batchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch expired payments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payment := range payments {
		payment := payment

		if _, loaded := inFlight.LoadOrStore(payment.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workers.submit(ctx, func() error {
				defer inFlight.Delete(payment.ID)
				return s.expire(ctx, payment)
			})
			if err != nil {
				inFlight.Delete(payment.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping payments", zap.Error(err))
	}
}

func (s *Service) expire(ctx context.Context, payment domain.LocalPayment) error {
	failed, err := s.paymentRepo.MarkFailed(ctx, payment.ID)
	if err != nil {
		return err
	}
	if !failed {
		// confirmed between the scan and now, leave it alone
		return nil
	}
	zap.L().Info("Expired stale local payment",
		zap.Int("paymentID", payment.ID),
		zap.Int("bookingID", payment.BookingID),
		zap.String("reference", payment.TransactionReference))
	return nil
}
