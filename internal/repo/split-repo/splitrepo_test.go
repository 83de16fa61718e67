package splitrepo

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

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	query := `INSERT INTO commission_splits (booking_id, total_amount, platform_commission, professional_amount, payment_method, status, notes) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`

	split := &domain.CommissionSplit{
		BookingID:          1,
		TotalAmount:        decimal.NewFromInt(10000),
		PlatformCommission: decimal.NewFromInt(1000),
		ProfessionalAmount: decimal.NewFromInt(9000),
		PaymentMethod:      domain.MethodWaafiPay,
		Status:             "processing",
	}

	t.Run("Split saved", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(8, timeNow)
			mock.ExpectQuery(regexp.QuoteMeta(query)).
				WithArgs(1, decimal.NewFromInt(10000), decimal.NewFromInt(1000), decimal.NewFromInt(9000),
					"waafipay", "processing", "").
				WillReturnRows(rows)
			return fn(ctx)
		})

		saved, err := repo.Save(context.Background(), split)
		assert.NoError(t, err)
		assert.Equal(t, 8, saved.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectQuery(regexp.QuoteMeta(query)).
				WithArgs(1, decimal.NewFromInt(10000), decimal.NewFromInt(1000), decimal.NewFromInt(9000),
					"waafipay", "processing", "").
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		saved, err := repo.Save(context.Background(), split)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_FindByBookingID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `SELECT id, booking_id, total_amount, platform_commission, professional_amount, payment_method, platform_paid, professional_paid, status, COALESCE(transfer_id, ''), COALESCE(notes, ''), created_at FROM commission_splits WHERE booking_id = $1`

	t.Run("Split exists", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{
			"id", "booking_id", "total_amount", "platform_commission", "professional_amount",
			"payment_method", "platform_paid", "professional_paid", "status",
			"transfer_id", "notes", "created_at",
		}).AddRow(8, 1, decimal.NewFromInt(10000), decimal.NewFromInt(1000), decimal.NewFromInt(9000),
			"card", true, true, "completed", "tr_123", "paid out via card gateway", timeNow)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(rows)

		split, err := repo.FindByBookingID(context.Background(), 1)
		assert.NoError(t, err)
		assert.NotNil(t, split)
		assert.Equal(t, domain.MethodCard, split.PaymentMethod)
		assert.True(t, split.TotalAmount.Equal(split.PlatformCommission.Add(split.ProfessionalAmount)))
	})

	t.Run("Split does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		split, err := repo.FindByBookingID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, split)
	})
}

func TestRepository_Complete(t *testing.T) {
	repo, mock, tx := NewMock(t)

	query := `UPDATE commission_splits SET status = 'completed', platform_paid = TRUE, professional_paid = TRUE, transfer_id = NULLIF($1, ''), notes = $2 WHERE id = $3 AND status = 'processing'`

	t.Run("Split completed", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs("tr_123", "paid out via card gateway", 8).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			return fn(ctx)
		})

		err := repo.Complete(context.Background(), 8, "tr_123", "paid out via card gateway")
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs("", "credited to wallet", 8).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		err := repo.Complete(context.Background(), 8, "", "credited to wallet")
		assert.Error(t, err)
	})
}
