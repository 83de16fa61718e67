package splitrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, split *domain.CommissionSplit) (*domain.CommissionSplit, error) {
	query := `
        INSERT INTO commission_splits (booking_id, total_amount, platform_commission, professional_amount, payment_method, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			split.BookingID, split.TotalAmount, split.PlatformCommission, split.ProfessionalAmount,
			split.PaymentMethod.String(), split.Status, split.Notes,
		)
		if err := row.Scan(&split.ID, &split.CreatedAt); err != nil {
			zap.L().Error("can't save commission split", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return split, nil
}

func (r *Repository) FindByBookingID(ctx context.Context, bookingID int) (*domain.CommissionSplit, error) {
	query := `
        SELECT id, booking_id, total_amount, platform_commission, professional_amount,
               payment_method, platform_paid, professional_paid, status,
               COALESCE(transfer_id, ''), COALESCE(notes, ''), created_at
        FROM commission_splits
        WHERE booking_id = $1
    `
	row := r.db.QueryRow(ctx, query, bookingID)
	var s domain.CommissionSplit
	var method string
	err := row.Scan(&s.ID, &s.BookingID, &s.TotalAmount, &s.PlatformCommission, &s.ProfessionalAmount,
		&method, &s.PlatformPaid, &s.ProfessionalPaid, &s.Status,
		&s.TransferID, &s.Notes, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find commission split", zap.Error(err))
		return nil, err
	}
	s.PaymentMethod = domain.PaymentMethod(method)
	return &s, nil
}

func (r *Repository) Complete(ctx context.Context, id int, transferID, notes string) error {
	query := `
        UPDATE commission_splits
        SET status = 'completed', platform_paid = TRUE, professional_paid = TRUE, transfer_id = NULLIF($1, ''), notes = $2
        WHERE id = $3 AND status = 'processing'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, transferID, notes, id)
		if err != nil {
			zap.L().Error("can't complete commission split", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
