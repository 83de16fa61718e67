package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

const paymentSelect = `SELECT id, booking_id, user_id, payment_method, phone_number, amount, commission_amount, professional_amount, transaction_reference, status, initiated_at, verified_at, verified_by FROM local_payments`

func paymentRowColumns() []string {
	return []string{
		"id", "booking_id", "user_id", "payment_method", "phone_number", "amount",
		"commission_amount", "professional_amount", "transaction_reference",
		"status", "initiated_at", "verified_at", "verified_by",
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	query := `INSERT INTO local_payments (booking_id, user_id, payment_method, phone_number, amount, commission_amount, professional_amount, transaction_reference, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, initiated_at`

	payment := &domain.LocalPayment{
		BookingID:            1,
		UserID:               3,
		PaymentMethod:        domain.MethodWaafiPay,
		PhoneNumber:          "77123456",
		Amount:               decimal.NewFromInt(10000),
		CommissionAmount:     decimal.NewFromInt(1000),
		ProfessionalAmount:   decimal.NewFromInt(9000),
		TransactionReference: "SAH-1735725600-1-a1b2c3d4",
		Status:               "pending",
	}

	t.Run("Payment saved", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			rows := pgxmock.NewRows([]string{"id", "initiated_at"}).AddRow(12, timeNow)
			mock.ExpectQuery(regexp.QuoteMeta(query)).
				WithArgs(1, 3, "waafipay", "77123456",
					decimal.NewFromInt(10000), decimal.NewFromInt(1000), decimal.NewFromInt(9000),
					"SAH-1735725600-1-a1b2c3d4", "pending").
				WillReturnRows(rows)
			return fn(ctx)
		})

		saved, err := repo.Save(context.Background(), payment)
		assert.NoError(t, err)
		assert.Equal(t, 12, saved.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectQuery(regexp.QuoteMeta(query)).
				WithArgs(1, 3, "waafipay", "77123456",
					decimal.NewFromInt(10000), decimal.NewFromInt(1000), decimal.NewFromInt(9000),
					"SAH-1735725600-1-a1b2c3d4", "pending").
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		saved, err := repo.Save(context.Background(), payment)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := paymentSelect + ` WHERE id = $1`

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Payment exists",
			id:   12,
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentRowColumns()).
					AddRow(12, 1, 3, "waafipay", "77123456",
						decimal.NewFromInt(10000), decimal.NewFromInt(1000), decimal.NewFromInt(9000),
						"SAH-1735725600-1-a1b2c3d4", "pending", timeNow, (*time.Time)(nil), (*int)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(12).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Payment does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			id:   12,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(12).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, domain.MethodWaafiPay, result.PaymentMethod)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	query := `UPDATE local_payments SET status = 'completed', verified_at = $1, verified_by = $2 WHERE id = $3 AND status = 'pending'`

	t.Run("Pending payment completed", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs(timeNow, 99, 12).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			return fn(ctx)
		})

		transitioned, err := repo.MarkCompleted(context.Background(), 12, 99, timeNow)
		assert.NoError(t, err)
		assert.True(t, transitioned)
	})

	t.Run("Already completed elsewhere", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs(timeNow, 99, 12).
				WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			return fn(ctx)
		})

		transitioned, err := repo.MarkCompleted(context.Background(), 12, 99, timeNow)
		assert.NoError(t, err)
		assert.False(t, transitioned)
	})

	t.Run("Database error", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs(timeNow, 99, 12).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		transitioned, err := repo.MarkCompleted(context.Background(), 12, 99, timeNow)
		assert.Error(t, err)
		assert.False(t, transitioned)
	})
}

func TestRepository_MarkFailed(t *testing.T) {
	repo, mock, tx := NewMock(t)

	query := `UPDATE local_payments SET status = 'failed' WHERE id = $1 AND status = 'pending'`

	t.Run("Pending payment failed", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs(12).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			return fn(ctx)
		})

		transitioned, err := repo.MarkFailed(context.Background(), 12)
		assert.NoError(t, err)
		assert.True(t, transitioned)
	})

	t.Run("Confirmed in the meantime", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs(12).
				WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			return fn(ctx)
		})

		transitioned, err := repo.MarkFailed(context.Background(), 12)
		assert.NoError(t, err)
		assert.False(t, transitioned)
	})
}

func TestRepository_FindExpiredPending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	cutoff := timeNow.Add(-5 * time.Minute)

	query := paymentSelect + ` WHERE status = 'pending' AND initiated_at < $1 ORDER BY initiated_at ASC LIMIT $2`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Expired payments found",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentRowColumns()).
					AddRow(12, 1, 3, "waafipay", "77123456",
						decimal.NewFromInt(10000), decimal.NewFromInt(1000), decimal.NewFromInt(9000),
						"SAH-1735725600-1-a1b2c3d4", "pending", cutoff.Add(-time.Minute), (*time.Time)(nil), (*int)(nil)).
					AddRow(13, 2, 4, "dmoney", "77654321",
						decimal.NewFromInt(5000), decimal.NewFromInt(500), decimal.NewFromInt(4500),
						"SAH-1735725700-2-b2c3d4e5", "pending", cutoff.Add(-2*time.Minute), (*time.Time)(nil), (*int)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(cutoff, 1000).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Nothing expired",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(cutoff, 1000).
					WillReturnRows(pgxmock.NewRows(paymentRowColumns()))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(cutoff, 1000).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindExpiredPending(context.Background(), cutoff, 1000)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}
