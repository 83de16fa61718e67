package paymentrepo

import (
	"context"
	"errors"
	"time"

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

const selectColumns = `
        SELECT id, booking_id, user_id, payment_method, phone_number, amount,
               commission_amount, professional_amount, transaction_reference,
               status, initiated_at, verified_at, verified_by
        FROM local_payments
`

func (r *Repository) Save(ctx context.Context, payment *domain.LocalPayment) (*domain.LocalPayment, error) {
	query := `
        INSERT INTO local_payments (booking_id, user_id, payment_method, phone_number, amount,
                                    commission_amount, professional_amount, transaction_reference, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, initiated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			payment.BookingID, payment.UserID, payment.PaymentMethod.String(), payment.PhoneNumber,
			payment.Amount, payment.CommissionAmount, payment.ProfessionalAmount,
			payment.TransactionReference, payment.Status,
		)
		if err := row.Scan(&payment.ID, &payment.InitiatedAt); err != nil {
			zap.L().Error("can't save local payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.LocalPayment, error) {
	query := selectColumns + `WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	payment, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find local payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindCompletedByBookingID(ctx context.Context, bookingID int) (*domain.LocalPayment, error) {
	query := selectColumns + `WHERE booking_id = $1 AND status = 'completed'`
	row := r.db.QueryRow(ctx, query, bookingID)
	payment, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find completed payment for booking", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// MarkCompleted only succeeds on a pending row. The returned flag reports
// whether this call performed the transition; false means somebody else
// already did, which callers treat as the idempotent no-op case.
func (r *Repository) MarkCompleted(ctx context.Context, id int, verifiedBy int, verifiedAt time.Time) (bool, error) {
	query := `
        UPDATE local_payments
        SET status = 'completed', verified_at = $1, verified_by = $2
        WHERE id = $3 AND status = 'pending'
    `
	var transitioned bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, verifiedAt, verifiedBy, id)
		if err != nil {
			zap.L().Error("can't mark local payment completed", zap.Error(err))
			return err
		}
		transitioned = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return transitioned, nil
}

func (r *Repository) MarkFailed(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE local_payments
        SET status = 'failed'
        WHERE id = $1 AND status = 'pending'
    `
	var transitioned bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't mark local payment failed", zap.Error(err))
			return err
		}
		transitioned = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return transitioned, nil
}

func (r *Repository) FindExpiredPending(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.LocalPayment, error) {
	query := selectColumns + `
        WHERE status = 'pending' AND initiated_at < $1
        ORDER BY initiated_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't get expired pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.LocalPayment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan local payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*domain.LocalPayment, error) {
	var p domain.LocalPayment
	var method string
	err := row.Scan(&p.ID, &p.BookingID, &p.UserID, &method, &p.PhoneNumber, &p.Amount,
		&p.CommissionAmount, &p.ProfessionalAmount, &p.TransactionReference,
		&p.Status, &p.InitiatedAt, &p.VerifiedAt, &p.VerifiedBy)
	if err != nil {
		return nil, err
	}
	p.PaymentMethod = domain.PaymentMethod(method)
	return &p, nil
}
