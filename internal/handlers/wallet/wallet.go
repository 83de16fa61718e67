package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/dto"
	walletservice "github.com/adensardi/sahal/internal/service/walletservice"
	"github.com/adensardi/sahal/pkg/auth"
	"github.com/adensardi/sahal/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	RequestWithdrawal(ctx context.Context, professionalID int, amount decimal.Decimal, payoutMethod, payoutDetails string) (*domain.WithdrawalRequest, error)
	ProcessWithdrawal(ctx context.Context, withdrawalID int, action string) (*domain.WithdrawalRequest, error)
	UpdatePayoutInfo(ctx context.Context, userID int, method, details, account string) error
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
	GetWithdrawals(ctx context.Context, professionalID int) ([]domain.WithdrawalRequest, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get own wallet
//	@Description	Retrieve the professional's wallet balances. A wallet is created on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance:             wallet.Balance,
		PendingBalance:      wallet.PendingBalance,
		TotalEarned:         wallet.TotalEarned,
		PayoutMethod:        wallet.PayoutMethod,
		PayoutAccountActive: wallet.PayoutAccountActive,
	})
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Move available balance into a pending withdrawal request. Minimum 1000 DJF.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO		true	"Withdrawal payload"
//	@Success		201		{object}	dto.WithdrawResponseDTO		"Created withdrawal request"
//	@Failure		400		{object}	utils.Response				"Amount below minimum or insufficient balance"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/withdrawals [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.walletService.RequestWithdrawal(r.Context(), userID, req.Amount, req.PayoutMethod, req.PayoutDetails)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrBelowMinimum),
			errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.WithdrawResponseDTO{
		Success:    true,
		Withdrawal: toWithdrawalDTO(withdrawal),
	})
}

// GetWithdrawals godoc
//
//	@Summary		List own withdrawal requests
//	@Description	Get the professional's withdrawal requests, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalDTO	"Withdrawal requests"
//	@Success		204	{object}	utils.Response		"No withdrawal requests"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/wallet/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.walletService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = toWithdrawalDTO(&withdrawals[i])
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary		List wallet transactions
//	@Description	Get the wallet's ledger entries, newest first. Every balance change appears here.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletTransactionDTO	"Ledger entries"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.WalletTransactionDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.WalletTransactionDTO{
			ID:            tx.ID,
			Type:          tx.Type,
			Amount:        tx.Amount,
			BalanceBefore: tx.BalanceBefore,
			BalanceAfter:  tx.BalanceAfter,
			Status:        tx.Status,
			CreatedAt:     tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdatePayoutInfo godoc
//
//	@Summary		Update payout destination
//	@Description	Set the mobile-money or card account future payouts go to.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutInfoRequestDTO	true	"Payout destination"
//	@Success		200		{object}	dto.PayoutInfoResponseDTO	"Destination saved"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/payout-info [put]
func (h *WalletHandler) UpdatePayoutInfo(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PayoutInfoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.walletService.UpdatePayoutInfo(r.Context(), userID, req.PayoutMethod, req.PayoutDetails, req.PayoutAccount); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutInfoResponseDTO{Success: true})
}

// ProcessWithdrawal godoc
//
//	@Summary		Process a withdrawal request
//	@Description	Approve, reject or mark paid a pending withdrawal. Admin only. Rejection returns the funds to the wallet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Withdrawal ID"
//	@Param			request	body		dto.ProcessWithdrawalRequestDTO		true	"Action to take"
//	@Success		200		{object}	dto.ProcessWithdrawalResponseDTO	"Resulting status"
//	@Failure		400		{object}	utils.Response						"Unknown action or already processed"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		403		{object}	utils.Response						"Not an admin"
//	@Failure		404		{object}	utils.Response						"Withdrawal not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/admin/withdrawals/{id} [post]
func (h *WalletHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	var req dto.ProcessWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.walletService.ProcessWithdrawal(r.Context(), withdrawalID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidWithdrawalAction),
			errors.Is(err, walletservice.ErrWithdrawalAlreadyProcessed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProcessWithdrawalResponseDTO{
		Success: true,
		Status:  withdrawal.Status,
	})
}

func toWithdrawalDTO(wd *domain.WithdrawalRequest) dto.WithdrawalDTO {
	return dto.WithdrawalDTO{
		ID:            wd.ID,
		Amount:        wd.Amount,
		PayoutMethod:  wd.PayoutMethod,
		PayoutDetails: wd.PayoutDetails,
		Status:        wd.Status,
		CreatedAt:     wd.CreatedAt,
	}
}
