package booking

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
	bookingservice "github.com/adensardi/sahal/internal/service/bookingservice"
	"github.com/adensardi/sahal/pkg/auth"
	"github.com/adensardi/sahal/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, clientID int, in bookingservice.CreateInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int, newStatus string, actingUserID int) error
	Cancel(ctx context.Context, bookingID, actingClientID int) (decimal.Decimal, int, error)
	GetBookings(ctx context.Context, userID int) ([]domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
//
//	@Summary		Create a booking
//	@Description	Book a professional's service for a future date. The booking starts in pending status with payment pending.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking payload"
//	@Success		201		{object}	dto.BookingResponseDTO		"Created booking"
//	@Failure		400		{object}	utils.Response				"Invalid payload, bad schedule or inactive professional/service"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Professional or service not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.bookingService.Create(r.Context(), userID, bookingservice.CreateInput{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		ScheduledDate:  req.ScheduledDate,
		ScheduledTime:  req.ScheduledTime,
		Address:        req.Address,
		TotalAmount:    req.TotalAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrMissingFields),
			errors.Is(err, bookingservice.ErrInvalidSchedule),
			errors.Is(err, bookingservice.ErrInactiveProfessional),
			errors.Is(err, bookingservice.ErrInactiveService):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, bookingservice.ErrProfessionalNotFound),
			errors.Is(err, bookingservice.ErrServiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toBookingDTO(booking))
}

// UpdateStatus godoc
//
//	@Summary		Update booking status
//	@Description	Move a booking forward through its lifecycle (pending -> confirmed -> completed). Only a participant may do this.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int										true	"Booking ID"
//	@Param			request	body		dto.UpdateBookingStatusRequestDTO		true	"Target status"
//	@Success		200		{object}	dto.UpdateBookingStatusResponseDTO		"Status updated"
//	@Failure		400		{object}	utils.Response							"Invalid transition"
//	@Failure		401		{object}	utils.Response							"User not authorized"
//	@Failure		403		{object}	utils.Response							"Not a participant of the booking"
//	@Failure		404		{object}	utils.Response							"Booking not found"
//	@Failure		500		{object}	utils.Response							"Internal server error"
//	@Router			/api/bookings/{id}/status [post]
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req dto.UpdateBookingStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.bookingService.UpdateStatus(r.Context(), bookingID, req.Status, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, bookingservice.ErrNotParticipant):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, bookingservice.ErrInvalidTransition),
			errors.Is(err, bookingservice.ErrAlreadyFinal):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateBookingStatusResponseDTO{Success: true})
}

// CancelBooking godoc
//
//	@Summary		Cancel a booking
//	@Description	Cancel a booking as its client. Refund depends on notice before the scheduled time: 100% at 24h or more, 50% at 12h, nothing below that.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int								true	"Booking ID"
//	@Success		200	{object}	dto.CancelBookingResponseDTO	"Cancellation result with refund breakdown"
//	@Failure		400	{object}	utils.Response					"Booking already in a final state"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		403	{object}	utils.Response					"Not the booking's client"
//	@Failure		404	{object}	utils.Response					"Booking not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	refund, percentage, err := h.bookingService.Cancel(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, bookingservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, bookingservice.ErrAlreadyFinal):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CancelBookingResponseDTO{
		Success:          true,
		RefundAmount:     refund,
		RefundPercentage: percentage,
	})
}

// GetBookings godoc
//
//	@Summary		List own bookings
//	@Description	Get the bookings where the authenticated user is the client or the professional, newest first.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BookingResponseDTO	"Bookings"
//	@Success		204	{object}	utils.Response			"No bookings"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/bookings [get]
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bookings, err := h.bookingService.GetBookings(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	if len(bookings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Bookings not found")
		return
	}

	response := make([]dto.BookingResponseDTO, len(bookings))
	for i := range bookings {
		response[i] = toBookingDTO(&bookings[i])
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toBookingDTO(b *domain.Booking) dto.BookingResponseDTO {
	return dto.BookingResponseDTO{
		ID:               b.ID,
		ClientID:         b.ClientID,
		ProfessionalID:   b.ProfessionalID,
		ServiceID:        b.ServiceID,
		ScheduledAt:      b.ScheduledAt,
		Address:          b.Address,
		TotalAmount:      b.TotalAmount,
		CommissionAmount: b.CommissionAmount,
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
		PaymentMethod:    b.PaymentMethod,
		CreatedAt:        b.CreatedAt,
	}
}
