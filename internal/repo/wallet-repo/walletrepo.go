package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/pg"
	"go.uber.org/zap"
)

// Balance mutations are single UPDATE statements with arithmetic done by the
// database. Application code never reads a balance, computes, and writes it
// back.
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

const walletColumns = `id, user_id, balance, pending_balance, total_earned,
               COALESCE(payout_account, ''), payout_account_active,
               COALESCE(payout_method, ''), COALESCE(payout_details, ''), created_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.PendingBalance, &w.TotalEarned,
		&w.PayoutAccount, &w.PayoutAccountActive, &w.PayoutMethod, &w.PayoutDetails, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance, pending_balance, total_earned)
        VALUES ($1, 0, 0, 0)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// CreditEarning atomically increments balance and total_earned and returns
// the post-increment wallet.
func (r *Repository) CreditEarning(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1, total_earned = total_earned + $1
        WHERE id = $2
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if err != nil {
		zap.L().Error("can't credit wallet earning", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// CreditRefund increments balance only; refunds are not earnings.
func (r *Repository) CreditRefund(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE id = $2
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if err != nil {
		zap.L().Error("can't credit wallet refund", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// DebitForWithdrawal moves amount from balance to pending_balance, guarded by
// balance >= amount in the same statement. Returns nil when the guard fails.
func (r *Repository) DebitForWithdrawal(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1, pending_balance = pending_balance + $1
        WHERE id = $2 AND balance >= $1
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't debit wallet for withdrawal", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// ReleasePending removes paid-out funds from pending_balance; money leaves
// the system, balance is untouched.
func (r *Repository) ReleasePending(ctx context.Context, walletID int, amount decimal.Decimal) error {
	query := `
        UPDATE wallets
        SET pending_balance = pending_balance - $1
        WHERE id = $2 AND pending_balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, walletID)
	if err != nil {
		zap.L().Error("can't release pending balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("pending balance below released amount")
	}
	return nil
}

// RestorePending returns rejected withdrawal funds from pending_balance to
// balance and reports the post-update wallet.
func (r *Repository) RestorePending(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1, pending_balance = pending_balance - $1
        WHERE id = $2 AND pending_balance >= $1
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("pending balance below restored amount")
	}
	if err != nil {
		zap.L().Error("can't restore pending balance", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) UpdatePayoutInfo(ctx context.Context, walletID int, method, details, account string) error {
	query := `
        UPDATE wallets
        SET payout_method = COALESCE(NULLIF($1, ''), payout_method),
            payout_details = COALESCE(NULLIF($2, ''), payout_details),
            payout_account = COALESCE(NULLIF($3, ''), payout_account),
            payout_account_active = CASE WHEN NULLIF($3, '') IS NOT NULL THEN TRUE ELSE payout_account_active END
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, method, details, account, walletID)
		if err != nil {
			zap.L().Error("can't update payout info", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) SaveTransaction(ctx context.Context, txn *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions (wallet_id, type, amount, balance_before, balance_after, status, booking_id, split_id, withdrawal_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		txn.WalletID, txn.Type, txn.Amount, txn.BalanceBefore, txn.BalanceAfter,
		txn.Status, txn.BookingID, txn.SplitID, txn.WithdrawalID,
	)
	if err := row.Scan(&txn.ID, &txn.CreatedAt); err != nil {
		zap.L().Error("can't save wallet transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) GetTransactions(ctx context.Context, walletID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, balance_before, balance_after, status,
               booking_id, split_id, withdrawal_id, created_at
        FROM wallet_transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("can't get wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.BalanceBefore, &t.BalanceAfter,
			&t.Status, &t.BookingID, &t.SplitID, &t.WithdrawalID, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}
