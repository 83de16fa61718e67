package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adensardi/sahal/internal/cardpay"
	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/dto"
	paymentservice "github.com/adensardi/sahal/internal/service/paymentservice"
	"github.com/adensardi/sahal/pkg/auth"
	"github.com/adensardi/sahal/pkg/utils"
)

type Service interface {
	InitiateLocal(ctx context.Context, userID, bookingID int, method, phoneNumber string) (*domain.LocalPayment, []string, error)
	GetLocalPayment(ctx context.Context, userID, paymentID int) (*domain.LocalPayment, error)
	ConfirmLocal(ctx context.Context, paymentID, verifiedBy int) (*domain.LocalPayment, error)
	InitiateCard(ctx context.Context, userID, bookingID int) (*cardpay.Intent, error)
	ConfirmCard(ctx context.Context, userID, bookingID int, intentID string) (*domain.CommissionSplit, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// InitiateLocal godoc
//
//	@Summary		Initiate a mobile-money payment
//	@Description	Register a WaafiPay or D-Money payment attempt for a booking and get the USSD/app instructions to complete it.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitiateLocalPaymentRequestDTO	true	"Payment payload"
//	@Success		201		{object}	dto.InitiateLocalPaymentResponseDTO	"Pending payment with instructions"
//	@Failure		400		{object}	utils.Response						"Unsupported method, missing phone or unpayable booking"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		403		{object}	utils.Response						"Booking belongs to another user"
//	@Failure		404		{object}	utils.Response						"Booking not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/payments/local/initiate [post]
func (h *PaymentHandler) InitiateLocal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InitiateLocalPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, instructions, err := h.paymentService.InitiateLocal(r.Context(), userID, req.BookingID, req.PaymentMethod, req.PhoneNumber)
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.InitiateLocalPaymentResponseDTO{
		PaymentID:            payment.ID,
		TransactionReference: payment.TransactionReference,
		Amount:               payment.Amount,
		Instructions:         instructions,
		PaymentWindowSeconds: paymentservice.PaymentWindowSeconds,
	})
}

// GetStatus godoc
//
//	@Summary		Get local payment status
//	@Description	Poll the status of a previously initiated mobile-money payment.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int								true	"Payment ID"
//	@Success		200	{object}	dto.PaymentStatusResponseDTO	"Payment status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		403	{object}	utils.Response					"Payment belongs to another user"
//	@Failure		404	{object}	utils.Response					"Payment not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/payments/local/{id} [get]
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.paymentService.GetLocalPayment(r.Context(), userID, paymentID)
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStatusResponseDTO{
		Status:               payment.Status,
		TransactionReference: payment.TransactionReference,
		Amount:               payment.Amount,
		PaymentMethod:        payment.PaymentMethod.String(),
	})
}

// ConfirmLocal godoc
//
//	@Summary		Confirm a local payment
//	@Description	Mark a mobile-money payment as received after manual verification. Admin only. Idempotent.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int									true	"Payment ID"
//	@Success		200	{object}	dto.ConfirmLocalPaymentResponseDTO	"Confirmed payment"
//	@Failure		400	{object}	utils.Response						"Payment failed or booking no longer payable"
//	@Failure		401	{object}	utils.Response						"User not authorized"
//	@Failure		403	{object}	utils.Response						"Not an admin"
//	@Failure		404	{object}	utils.Response						"Payment not found"
//	@Failure		500	{object}	utils.Response						"Internal server error"
//	@Router			/api/payments/local/{id}/confirm [post]
func (h *PaymentHandler) ConfirmLocal(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.paymentService.ConfirmLocal(r.Context(), paymentID, adminID)
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmLocalPaymentResponseDTO{
		Success:   true,
		Status:    payment.Status,
		BookingID: payment.BookingID,
	})
}

// InitiateCard godoc
//
//	@Summary		Open a card payment intent
//	@Description	Create a payment intent with the card processor for the booking's amount and return its client secret.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitiateCardPaymentRequestDTO	true	"Booking to pay"
//	@Success		201		{object}	dto.CardIntentResponseDTO			"Payment intent"
//	@Failure		400		{object}	utils.Response						"Booking already paid or not payable"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		403		{object}	utils.Response						"Booking belongs to another user"
//	@Failure		404		{object}	utils.Response						"Booking not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/payments/card/initiate [post]
func (h *PaymentHandler) InitiateCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InitiateCardPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	intent, err := h.paymentService.InitiateCard(r.Context(), userID, req.BookingID)
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CardIntentResponseDTO{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Status:       intent.Status,
	})
}

// ConfirmCard godoc
//
//	@Summary		Confirm a card payment
//	@Description	Confirm the payment intent with the processor, mark the booking paid and run the commission split.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmCardPaymentRequestDTO	true	"Intent to confirm"
//	@Success		200		{object}	dto.ConfirmCardPaymentResponseDTO	"Split breakdown"
//	@Failure		400		{object}	utils.Response						"Processor declined or booking not payable"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		403		{object}	utils.Response						"Booking belongs to another user"
//	@Failure		404		{object}	utils.Response						"Booking not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/payments/card/confirm [post]
func (h *PaymentHandler) ConfirmCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConfirmCardPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	split, err := h.paymentService.ConfirmCard(r.Context(), userID, req.BookingID, req.IntentID)
	if err != nil {
		if errors.Is(err, cardpay.ErrProviderRejected) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondPaymentError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmCardPaymentResponseDTO{
		Success: true,
		Split: dto.SplitDTO{
			Total:        split.TotalAmount,
			Commission:   split.PlatformCommission,
			Professional: split.ProfessionalAmount,
		},
	})
}

func respondPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrUnsupportedMethod),
		errors.Is(err, paymentservice.ErrMissingPhone):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, paymentservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, paymentservice.ErrBookingNotFound),
		errors.Is(err, paymentservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrAlreadyPaid),
		errors.Is(err, paymentservice.ErrPaymentFailed),
		errors.Is(err, paymentservice.ErrBookingNotPayable):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
