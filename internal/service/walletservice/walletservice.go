package walletservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/notify"
	"github.com/adensardi/sahal/internal/pg"
)

type WalletRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	CreditEarning(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	CreditRefund(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	DebitForWithdrawal(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	ReleasePending(ctx context.Context, walletID int, amount decimal.Decimal) error
	RestorePending(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	UpdatePayoutInfo(ctx context.Context, walletID int, method, details, account string) error
	SaveTransaction(ctx context.Context, txn *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetTransactions(ctx context.Context, walletID int) ([]domain.WalletTransaction, error)
}

type WithdrawalRepo interface {
	Save(ctx context.Context, wr *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	FindByProfessionalID(ctx context.Context, professionalID int) ([]domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, id int, from, to string) (bool, error)
}

type UserRepo interface {
	FindAdmins(ctx context.Context) ([]domain.User, error)
}

const (
	TransactionTypeEarning    = "earning"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeRefund     = "refund"

	TransactionStatusCompleted = "completed"

	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
	WithdrawalStatusPaid     = "paid"

	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionMarkPaid = "paid"
)

// MinimumWithdrawal is the payout floor in DJF.
var MinimumWithdrawal = decimal.NewFromInt(1000)

var (
	ErrBelowMinimum               = errors.New("amount below minimum withdrawal")
	ErrInsufficientBalance        = errors.New("insufficient balance")
	ErrWithdrawalNotFound         = errors.New("withdrawal request not found")
	ErrInvalidWithdrawalAction    = errors.New("invalid withdrawal action")
	ErrWithdrawalAlreadyProcessed = errors.New("withdrawal request already processed")
)

type Service struct {
	walletRepo     WalletRepo
	withdrawalRepo WithdrawalRepo
	userRepo       UserRepo
	txManager      pg.TXManager
	notifier       notify.Notifier
}

func New(walletRepo WalletRepo, withdrawalRepo WithdrawalRepo, userRepo UserRepo, txManager pg.TXManager, notifier notify.Notifier) *Service {
	return &Service{
		walletRepo:     walletRepo,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		notifier:       notifier,
	}
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		wallet, err = s.walletRepo.Create(ctx, userID)
		if err != nil {
			zap.L().Error("failed to create wallet", zap.Error(err))
			return nil, err
		}
	}
	return wallet, nil
}

// CreditEarning adds professional earnings to the wallet. The balance update
// and the ledger row that justifies it commit in one transaction.
func (s *Service) CreditEarning(ctx context.Context, professionalID int, amount decimal.Decimal, bookingID, splitID int) (*domain.WalletTransaction, error) {
	var txn *domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.GetWallet(ctx, professionalID)
		if err != nil {
			return err
		}
		updated, err := s.walletRepo.CreditEarning(ctx, wallet.ID, amount)
		if err != nil {
			return err
		}
		txn, err = s.walletRepo.SaveTransaction(ctx, &domain.WalletTransaction{
			WalletID:      updated.ID,
			Type:          TransactionTypeEarning,
			Amount:        amount,
			BalanceBefore: updated.Balance.Sub(amount),
			BalanceAfter:  updated.Balance,
			Status:        TransactionStatusCompleted,
			BookingID:     &bookingID,
			SplitID:       &splitID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit earning", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// CreditRefund returns cancelled-booking money to a client wallet, creating
// the wallet if the client never had one.
func (s *Service) CreditRefund(ctx context.Context, userID int, amount decimal.Decimal, bookingID int) (*domain.WalletTransaction, error) {
	var txn *domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.GetWallet(ctx, userID)
		if err != nil {
			return err
		}
		updated, err := s.walletRepo.CreditRefund(ctx, wallet.ID, amount)
		if err != nil {
			return err
		}
		txn, err = s.walletRepo.SaveTransaction(ctx, &domain.WalletTransaction{
			WalletID:      updated.ID,
			Type:          TransactionTypeRefund,
			Amount:        amount,
			BalanceBefore: updated.Balance.Sub(amount),
			BalanceAfter:  updated.Balance,
			Status:        TransactionStatusCompleted,
			BookingID:     &bookingID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit refund", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (s *Service) RequestWithdrawal(ctx context.Context, professionalID int, amount decimal.Decimal, payoutMethod, payoutDetails string) (*domain.WithdrawalRequest, error) {
	if amount.LessThan(MinimumWithdrawal) {
		return nil, ErrBelowMinimum
	}

	var withdrawal *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.FindByUserID(ctx, professionalID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientBalance
		}

		debited, err := s.walletRepo.DebitForWithdrawal(ctx, wallet.ID, amount)
		if err != nil {
			return err
		}
		if debited == nil {
			return ErrInsufficientBalance
		}

		withdrawal, err = s.withdrawalRepo.Save(ctx, &domain.WithdrawalRequest{
			WalletID:       debited.ID,
			ProfessionalID: professionalID,
			Amount:         amount,
			PayoutMethod:   payoutMethod,
			PayoutDetails:  payoutDetails,
			Status:         WithdrawalStatusPending,
		})
		if err != nil {
			return err
		}

		_, err = s.walletRepo.SaveTransaction(ctx, &domain.WalletTransaction{
			WalletID:      debited.ID,
			Type:          TransactionTypeWithdrawal,
			Amount:        amount.Neg(),
			BalanceBefore: debited.Balance.Add(amount),
			BalanceAfter:  debited.Balance,
			Status:        TransactionStatusCompleted,
			WithdrawalID:  &withdrawal.ID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to request withdrawal", zap.Error(err))
		}
		return nil, err
	}

	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		zap.L().Error("failed to fetch admins for withdrawal notification", zap.Error(err))
	} else {
		adminIDs := make([]int, len(admins))
		for i, admin := range admins {
			adminIDs[i] = admin.ID
		}
		s.notifier.WithdrawalRequested(ctx, adminIDs, withdrawal)
	}

	return withdrawal, nil
}

func (s *Service) ProcessWithdrawal(ctx context.Context, withdrawalID int, action string) (*domain.WithdrawalRequest, error) {
	withdrawal, err := s.withdrawalRepo.FindByID(ctx, withdrawalID)
	if err != nil {
		zap.L().Error("failed to find withdrawal request", zap.Error(err))
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}

	switch action {
	case ActionApprove:
		ok, err := s.withdrawalRepo.UpdateStatus(ctx, withdrawalID, WithdrawalStatusPending, WithdrawalStatusApproved)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrWithdrawalAlreadyProcessed
		}
		withdrawal.Status = WithdrawalStatusApproved

	case ActionReject:
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			ok, err := s.withdrawalRepo.UpdateStatus(ctx, withdrawalID, WithdrawalStatusPending, WithdrawalStatusRejected)
			if err != nil {
				return err
			}
			if !ok {
				return ErrWithdrawalAlreadyProcessed
			}
			restored, err := s.walletRepo.RestorePending(ctx, withdrawal.WalletID, withdrawal.Amount)
			if err != nil {
				return err
			}
			_, err = s.walletRepo.SaveTransaction(ctx, &domain.WalletTransaction{
				WalletID:      restored.ID,
				Type:          TransactionTypeWithdrawal,
				Amount:        withdrawal.Amount,
				BalanceBefore: restored.Balance.Sub(withdrawal.Amount),
				BalanceAfter:  restored.Balance,
				Status:        TransactionStatusCompleted,
				WithdrawalID:  &withdrawal.ID,
			})
			return err
		})
		if err != nil {
			if !errors.Is(err, ErrWithdrawalAlreadyProcessed) {
				zap.L().Error("failed to reject withdrawal", zap.Error(err))
			}
			return nil, err
		}
		withdrawal.Status = WithdrawalStatusRejected

	case ActionMarkPaid:
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			ok, err := s.withdrawalRepo.UpdateStatus(ctx, withdrawalID, WithdrawalStatusApproved, WithdrawalStatusPaid)
			if err != nil {
				return err
			}
			if !ok {
				return ErrWithdrawalAlreadyProcessed
			}
			return s.walletRepo.ReleasePending(ctx, withdrawal.WalletID, withdrawal.Amount)
		})
		if err != nil {
			if !errors.Is(err, ErrWithdrawalAlreadyProcessed) {
				zap.L().Error("failed to mark withdrawal paid", zap.Error(err))
			}
			return nil, err
		}
		withdrawal.Status = WithdrawalStatusPaid

	default:
		return nil, ErrInvalidWithdrawalAction
	}

	return withdrawal, nil
}

func (s *Service) UpdatePayoutInfo(ctx context.Context, userID int, method, details, account string) error {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.walletRepo.UpdatePayoutInfo(ctx, wallet.ID, method, details, account); err != nil {
		zap.L().Error("failed to update payout info", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet for transactions", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, nil
	}
	txns, err := s.walletRepo.GetTransactions(ctx, wallet.ID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, professionalID int) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawalRepo.FindByProfessionalID(ctx, professionalID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
