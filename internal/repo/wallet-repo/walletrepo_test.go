package walletrepo

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

const walletColumnsFlat = `id, user_id, balance, pending_balance, total_earned, COALESCE(payout_account, ''), payout_account_active, COALESCE(payout_method, ''), COALESCE(payout_details, ''), created_at`

func walletRowColumns() []string {
	return []string{
		"id", "user_id", "balance", "pending_balance", "total_earned",
		"payout_account", "payout_account_active", "payout_method", "payout_details", "created_at",
	}
}

func walletRow(t time.Time, balance, pending, earned decimal.Decimal) *pgxmock.Rows {
	return pgxmock.NewRows(walletRowColumns()).
		AddRow(5, 42, balance, pending, earned, "", false, "", "", t)
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `SELECT ` + walletColumnsFlat + ` FROM wallets WHERE user_id = $1`

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:   "Wallet exists",
			userID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(42).
					WillReturnRows(walletRow(timeNow, decimal.NewFromInt(9000), decimal.Zero, decimal.NewFromInt(9000)))
			},
			found: true,
		},
		{
			name:   "Wallet does not exist",
			userID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:   "Database error",
			userID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, 42, result.UserID)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `INSERT INTO wallets (user_id, balance, pending_balance, total_earned) VALUES ($1, 0, 0, 0) ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING ` + walletColumnsFlat

	t.Run("Wallet created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(42).
			WillReturnRows(walletRow(timeNow, decimal.Zero, decimal.Zero, decimal.Zero))

		wallet, err := repo.Create(context.Background(), 42)
		assert.NoError(t, err)
		assert.True(t, wallet.Balance.IsZero())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(42).
			WillReturnError(errors.New("database error"))

		wallet, err := repo.Create(context.Background(), 42)
		assert.Error(t, err)
		assert.Nil(t, wallet)
	})
}

func TestRepository_CreditEarning(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `UPDATE wallets SET balance = balance + $1, total_earned = total_earned + $1 WHERE id = $2 RETURNING ` + walletColumnsFlat

	t.Run("Balance and total_earned move together", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(decimal.NewFromInt(9000), 5).
			WillReturnRows(walletRow(timeNow, decimal.NewFromInt(9000), decimal.Zero, decimal.NewFromInt(9000)))

		wallet, err := repo.CreditEarning(context.Background(), 5, decimal.NewFromInt(9000))
		assert.NoError(t, err)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(9000)))
		assert.True(t, wallet.TotalEarned.Equal(decimal.NewFromInt(9000)))
	})
}

func TestRepository_DebitForWithdrawal(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `UPDATE wallets SET balance = balance - $1, pending_balance = pending_balance + $1 WHERE id = $2 AND balance >= $1 RETURNING ` + walletColumnsFlat

	t.Run("Funds moved to pending", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(decimal.NewFromInt(5000), 5).
			WillReturnRows(walletRow(timeNow, decimal.NewFromInt(4000), decimal.NewFromInt(5000), decimal.NewFromInt(9000)))

		wallet, err := repo.DebitForWithdrawal(context.Background(), 5, decimal.NewFromInt(5000))
		assert.NoError(t, err)
		assert.True(t, wallet.PendingBalance.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("Guard fails on insufficient balance", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(decimal.NewFromInt(50000), 5).
			WillReturnError(pgx.ErrNoRows)

		wallet, err := repo.DebitForWithdrawal(context.Background(), 5, decimal.NewFromInt(50000))
		assert.NoError(t, err)
		assert.Nil(t, wallet)
	})
}

func TestRepository_ReleasePending(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `UPDATE wallets SET pending_balance = pending_balance - $1 WHERE id = $2 AND pending_balance >= $1`

	t.Run("Pending released", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(decimal.NewFromInt(5000), 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.ReleasePending(context.Background(), 5, decimal.NewFromInt(5000))
		assert.NoError(t, err)
	})

	t.Run("Guard fails when pending is short", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(decimal.NewFromInt(5000), 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.ReleasePending(context.Background(), 5, decimal.NewFromInt(5000))
		assert.Error(t, err)
	})
}

func TestRepository_RestorePending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `UPDATE wallets SET balance = balance + $1, pending_balance = pending_balance - $1 WHERE id = $2 AND pending_balance >= $1 RETURNING ` + walletColumnsFlat

	t.Run("Funds restored", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(decimal.NewFromInt(5000), 5).
			WillReturnRows(walletRow(timeNow, decimal.NewFromInt(9000), decimal.Zero, decimal.NewFromInt(9000)))

		wallet, err := repo.RestorePending(context.Background(), 5, decimal.NewFromInt(5000))
		assert.NoError(t, err)
		assert.True(t, wallet.PendingBalance.IsZero())
	})

	t.Run("Guard fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(decimal.NewFromInt(5000), 5).
			WillReturnError(pgx.ErrNoRows)

		wallet, err := repo.RestorePending(context.Background(), 5, decimal.NewFromInt(5000))
		assert.Error(t, err)
		assert.Nil(t, wallet)
	})
}

func TestRepository_SaveTransaction(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `INSERT INTO wallet_transactions (wallet_id, type, amount, balance_before, balance_after, status, booking_id, split_id, withdrawal_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	bookingID := 1

	t.Run("Ledger row written", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(5, "earning", decimal.NewFromInt(9000), decimal.Zero, decimal.NewFromInt(9000),
				"completed", &bookingID, (*int)(nil), (*int)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(15, timeNow))

		txn, err := repo.SaveTransaction(context.Background(), &domain.WalletTransaction{
			WalletID:      5,
			Type:          "earning",
			Amount:        decimal.NewFromInt(9000),
			BalanceBefore: decimal.Zero,
			BalanceAfter:  decimal.NewFromInt(9000),
			Status:        "completed",
			BookingID:     &bookingID,
		})
		assert.NoError(t, err)
		assert.Equal(t, 15, txn.ID)
	})
}

func TestRepository_GetTransactions(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `SELECT id, wallet_id, type, amount, balance_before, balance_after, status, booking_id, split_id, withdrawal_id, created_at FROM wallet_transactions WHERE wallet_id = $1 ORDER BY created_at DESC`

	t.Run("Transactions listed", func(t *testing.T) {
		bookingID := 1
		rows := pgxmock.NewRows([]string{
			"id", "wallet_id", "type", "amount", "balance_before", "balance_after",
			"status", "booking_id", "split_id", "withdrawal_id", "created_at",
		}).AddRow(15, 5, "earning", decimal.NewFromInt(9000), decimal.Zero, decimal.NewFromInt(9000),
			"completed", &bookingID, (*int)(nil), (*int)(nil), timeNow)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(5).
			WillReturnRows(rows)

		txns, err := repo.GetTransactions(context.Background(), 5)
		assert.NoError(t, err)
		assert.Len(t, txns, 1)
		assert.True(t, txns[0].BalanceAfter.Equal(txns[0].BalanceBefore.Add(txns[0].Amount)))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(5).
			WillReturnError(errors.New("database error"))

		txns, err := repo.GetTransactions(context.Background(), 5)
		assert.Error(t, err)
		assert.Nil(t, txns)
	})
}
