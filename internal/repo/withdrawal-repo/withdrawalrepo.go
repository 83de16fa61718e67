package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, wr *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (wallet_id, professional_id, amount, payout_method, payout_details, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, wr.WalletID, wr.ProfessionalID, wr.Amount, wr.PayoutMethod, wr.PayoutDetails, wr.Status)
	if err := row.Scan(&wr.ID, &wr.CreatedAt); err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return wr, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT id, wallet_id, professional_id, amount, payout_method, payout_details, status, created_at, processed_at
        FROM withdrawal_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var wr domain.WithdrawalRequest
	err := row.Scan(&wr.ID, &wr.WalletID, &wr.ProfessionalID, &wr.Amount, &wr.PayoutMethod, &wr.PayoutDetails, &wr.Status, &wr.CreatedAt, &wr.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return &wr, nil
}

func (r *Repository) FindByProfessionalID(ctx context.Context, professionalID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, wallet_id, professional_id, amount, payout_method, payout_details, status, created_at, processed_at
        FROM withdrawal_requests
        WHERE professional_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		zap.L().Error("can't get withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		var wr domain.WithdrawalRequest
		err := rows.Scan(&wr.ID, &wr.WalletID, &wr.ProfessionalID, &wr.Amount, &wr.PayoutMethod, &wr.PayoutDetails, &wr.Status, &wr.CreatedAt, &wr.ProcessedAt)
		if err != nil {
			zap.L().Error("can't scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wr)
	}
	return withdrawals, nil
}

// UpdateStatus transitions a request only from the expected current status so
// two admins processing it concurrently cannot both win.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to string) (bool, error) {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, processed_at = NOW()
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update withdrawal request status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
