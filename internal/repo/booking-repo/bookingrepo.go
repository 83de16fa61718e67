package bookingrepo

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

func (r *Repository) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query := `
        INSERT INTO bookings (client_id, professional_id, service_id, scheduled_at, address, total_amount, commission_amount, status, payment_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			booking.ClientID, booking.ProfessionalID, booking.ServiceID,
			booking.ScheduledAt, booking.Address,
			booking.TotalAmount, booking.CommissionAmount,
			booking.Status, booking.PaymentStatus,
		)
		if err := row.Scan(&booking.ID, &booking.CreatedAt); err != nil {
			zap.L().Error("can't save booking", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
        SELECT id, client_id, professional_id, service_id, scheduled_at, address,
               total_amount, commission_amount, status, payment_status,
               COALESCE(payment_method, ''), COALESCE(payment_reference, ''), created_at
        FROM bookings
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var b domain.Booking
	err := row.Scan(&b.ID, &b.ClientID, &b.ProfessionalID, &b.ServiceID, &b.ScheduledAt, &b.Address,
		&b.TotalAmount, &b.CommissionAmount, &b.Status, &b.PaymentStatus,
		&b.PaymentMethod, &b.PaymentReference, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error) {
	query := `
        SELECT id, client_id, professional_id, service_id, scheduled_at, address,
               total_amount, commission_amount, status, payment_status,
               COALESCE(payment_method, ''), COALESCE(payment_reference, ''), created_at
        FROM bookings
        WHERE client_id = $1 OR professional_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(&b.ID, &b.ClientID, &b.ProfessionalID, &b.ServiceID, &b.ScheduledAt, &b.Address,
			&b.TotalAmount, &b.CommissionAmount, &b.Status, &b.PaymentStatus,
			&b.PaymentMethod, &b.PaymentReference, &b.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE bookings
        SET status = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, id)
		if err != nil {
			zap.L().Error("can't update booking status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) SetPaymentInfo(ctx context.Context, id int, method, reference string) error {
	query := `
        UPDATE bookings
        SET payment_method = $1, payment_reference = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, method, reference, id)
		if err != nil {
			zap.L().Error("can't set booking payment info", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// MarkPaid flips payment_status and status in one statement so a booking can
// never be observed paid-but-unconfirmed. Terminal bookings are left untouched;
// the returned flag reports whether the row actually transitioned.
func (r *Repository) MarkPaid(ctx context.Context, id int, method, reference string) (bool, error) {
	query := `
        UPDATE bookings
        SET payment_status = 'paid', status = 'confirmed', payment_method = $1, payment_reference = $2
        WHERE id = $3 AND status NOT IN ('cancelled', 'completed')
    `
	var transitioned bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, method, reference, id)
		if err != nil {
			zap.L().Error("can't mark booking paid", zap.Error(err))
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

func (r *Repository) SetPaymentFailed(ctx context.Context, id int) error {
	query := `
        UPDATE bookings
        SET payment_status = 'failed'
        WHERE id = $1 AND payment_status <> 'paid'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't mark booking payment failed", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// RecomputeClientStats rebuilds the denormalized client aggregates from the
// bookings table instead of adjusting counters, so the cache cannot drift.
func (r *Repository) RecomputeClientStats(ctx context.Context, clientID int) error {
	query := `
        INSERT INTO client_stats (user_id, total_bookings, completed_bookings, total_spent, updated_at)
        SELECT $1,
               COUNT(*),
               COUNT(*) FILTER (WHERE status = 'completed'),
               COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid' AND status <> 'cancelled'), 0),
               NOW()
        FROM bookings
        WHERE client_id = $1
        ON CONFLICT (user_id) DO UPDATE
        SET total_bookings = EXCLUDED.total_bookings,
            completed_bookings = EXCLUDED.completed_bookings,
            total_spent = EXCLUDED.total_spent,
            updated_at = EXCLUDED.updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, clientID)
		if err != nil {
			zap.L().Error("can't recompute client stats", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
