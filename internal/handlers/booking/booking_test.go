package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/dto"
	bookingservice "github.com/adensardi/sahal/internal/service/bookingservice"
	"github.com/adensardi/sahal/pkg/auth"
)

func NewMock(t *testing.T) (*BookingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte, userID int) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateBookingHandler(t *testing.T) {
	handler, service := NewMock(t)

	body, _ := json.Marshal(dto.CreateBookingRequestDTO{
		ProfessionalID: 42,
		ServiceID:      7,
		ScheduledDate:  "2026-09-15",
		ScheduledTime:  "14:30",
		Address:        "Quartier 4, Djibouti",
		TotalAmount:    decimal.NewFromInt(10000),
	})

	tests := []struct {
		name         string
		body         []byte
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Booking created",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 3, gomock.Any()).Return(&domain.Booking{
					ID:               1,
					ClientID:         3,
					ProfessionalID:   42,
					ServiceID:        7,
					ScheduledAt:      time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC),
					TotalAmount:      decimal.NewFromInt(10000),
					CommissionAmount: decimal.NewFromInt(1000),
					Status:           "pending",
					PaymentStatus:    "pending",
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         []byte("{"),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Schedule in the past",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 3, gomock.Any()).Return(nil, bookingservice.ErrInvalidSchedule)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Professional not found",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 3, gomock.Any()).Return(nil, bookingservice.ErrProfessionalNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Inactive professional",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 3, gomock.Any()).Return(nil, bookingservice.ErrInactiveProfessional)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 3, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/bookings", tt.body, 3)
			w := httptest.NewRecorder()
			handler.CreateBooking(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.BookingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, 1, resp.ID)
				assert.True(t, resp.CommissionAmount.Equal(decimal.NewFromInt(1000)))
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	body, _ := json.Marshal(dto.UpdateBookingStatusRequestDTO{Status: "confirmed"})

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Status updated",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "confirmed", 3).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Non-numeric id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Illegal transition",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "confirmed", 3).Return(bookingservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not a participant",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "confirmed", 3).Return(bookingservice.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/bookings/"+tt.id+"/status", body, 3)
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCancelBookingHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Refund breakdown returned", func(t *testing.T) {
		service.EXPECT().Cancel(gomock.Any(), 1, 3).Return(decimal.NewFromInt(5000), 50, nil)

		r := authedRequest(http.MethodPost, "/api/bookings/1/cancel", nil, 3)
		r = withURLParam(r, "id", "1")
		w := httptest.NewRecorder()
		handler.CancelBooking(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.CancelBookingResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.True(t, resp.Success)
		assert.Equal(t, 50, resp.RefundPercentage)
		assert.True(t, resp.RefundAmount.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("Someone else's booking", func(t *testing.T) {
		service.EXPECT().Cancel(gomock.Any(), 1, 3).Return(decimal.Zero, 0, bookingservice.ErrNotOwner)

		r := authedRequest(http.MethodPost, "/api/bookings/1/cancel", nil, 3)
		r = withURLParam(r, "id", "1")
		w := httptest.NewRecorder()
		handler.CancelBooking(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Already final", func(t *testing.T) {
		service.EXPECT().Cancel(gomock.Any(), 1, 3).Return(decimal.Zero, 0, bookingservice.ErrAlreadyFinal)

		r := authedRequest(http.MethodPost, "/api/bookings/1/cancel", nil, 3)
		r = withURLParam(r, "id", "1")
		w := httptest.NewRecorder()
		handler.CancelBooking(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBookingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Bookings listed", func(t *testing.T) {
		service.EXPECT().GetBookings(gomock.Any(), 3).Return([]domain.Booking{{ID: 1, ClientID: 3}}, nil)

		r := authedRequest(http.MethodGet, "/api/bookings", nil, 3)
		w := httptest.NewRecorder()
		handler.GetBookings(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []dto.BookingResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Len(t, resp, 1)
	})

	t.Run("Empty list", func(t *testing.T) {
		service.EXPECT().GetBookings(gomock.Any(), 3).Return(nil, nil)

		r := authedRequest(http.MethodGet, "/api/bookings", nil, 3)
		w := httptest.NewRecorder()
		handler.GetBookings(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
