package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adensardi/sahal/internal/cardpay"
	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/dto"
	paymentservice "github.com/adensardi/sahal/internal/service/paymentservice"
	"github.com/adensardi/sahal/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
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

func TestInitiateLocalHandler(t *testing.T) {
	handler, service := NewMock(t)

	body, _ := json.Marshal(dto.InitiateLocalPaymentRequestDTO{
		BookingID:     1,
		PaymentMethod: "waafipay",
		PhoneNumber:   "77123456",
	})

	tests := []struct {
		name         string
		body         []byte
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Payment initiated",
			body: body,
			prepareMock: func() {
				service.EXPECT().InitiateLocal(gomock.Any(), 3, 1, "waafipay", "77123456").Return(&domain.LocalPayment{
					ID:                   12,
					BookingID:            1,
					Amount:               decimal.NewFromInt(10000),
					TransactionReference: "SAH-1735725600-1-a1b2c3d4",
					Status:               paymentservice.StatusPending,
				}, []string{"Dial *880# on your WaafiPay number"}, nil)
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
			name: "Unsupported method",
			body: body,
			prepareMock: func() {
				service.EXPECT().InitiateLocal(gomock.Any(), 3, 1, "waafipay", "77123456").
					Return(nil, nil, paymentservice.ErrUnsupportedMethod)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Booking already paid",
			body: body,
			prepareMock: func() {
				service.EXPECT().InitiateLocal(gomock.Any(), 3, 1, "waafipay", "77123456").
					Return(nil, nil, paymentservice.ErrAlreadyPaid)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Cancelled booking",
			body: body,
			prepareMock: func() {
				service.EXPECT().InitiateLocal(gomock.Any(), 3, 1, "waafipay", "77123456").
					Return(nil, nil, paymentservice.ErrBookingNotPayable)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Someone else's booking",
			body: body,
			prepareMock: func() {
				service.EXPECT().InitiateLocal(gomock.Any(), 3, 1, "waafipay", "77123456").
					Return(nil, nil, paymentservice.ErrNotOwner)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/payments/local/initiate", tt.body, 3)
			w := httptest.NewRecorder()
			handler.InitiateLocal(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.InitiateLocalPaymentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, 12, resp.PaymentID)
				assert.Equal(t, paymentservice.PaymentWindowSeconds, resp.PaymentWindowSeconds)
				assert.NotEmpty(t, resp.Instructions)
			}
		})
	}
}

func TestGetStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Status returned", func(t *testing.T) {
		service.EXPECT().GetLocalPayment(gomock.Any(), 3, 12).Return(&domain.LocalPayment{
			ID:                   12,
			Status:               paymentservice.StatusPending,
			TransactionReference: "SAH-1735725600-1-a1b2c3d4",
			Amount:               decimal.NewFromInt(10000),
			PaymentMethod:        domain.MethodWaafiPay,
		}, nil)

		r := authedRequest(http.MethodGet, "/api/payments/local/12", nil, 3)
		r = withURLParam(r, "id", "12")
		w := httptest.NewRecorder()
		handler.GetStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.PaymentStatusResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "waafipay", resp.PaymentMethod)
	})

	t.Run("Someone else's payment", func(t *testing.T) {
		service.EXPECT().GetLocalPayment(gomock.Any(), 3, 12).Return(nil, paymentservice.ErrNotOwner)

		r := authedRequest(http.MethodGet, "/api/payments/local/12", nil, 3)
		r = withURLParam(r, "id", "12")
		w := httptest.NewRecorder()
		handler.GetStatus(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unknown payment", func(t *testing.T) {
		service.EXPECT().GetLocalPayment(gomock.Any(), 3, 99).Return(nil, paymentservice.ErrPaymentNotFound)

		r := authedRequest(http.MethodGet, "/api/payments/local/99", nil, 3)
		r = withURLParam(r, "id", "99")
		w := httptest.NewRecorder()
		handler.GetStatus(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestConfirmLocalHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Payment confirmed", func(t *testing.T) {
		service.EXPECT().ConfirmLocal(gomock.Any(), 12, 99).Return(&domain.LocalPayment{
			ID:        12,
			BookingID: 1,
			Status:    paymentservice.StatusCompleted,
		}, nil)

		r := authedRequest(http.MethodPost, "/api/payments/local/12/confirm", nil, 99)
		r = withURLParam(r, "id", "12")
		w := httptest.NewRecorder()
		handler.ConfirmLocal(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.ConfirmLocalPaymentResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, 1, resp.BookingID)
	})

	t.Run("Payment already failed", func(t *testing.T) {
		service.EXPECT().ConfirmLocal(gomock.Any(), 12, 99).Return(nil, paymentservice.ErrPaymentFailed)

		r := authedRequest(http.MethodPost, "/api/payments/local/12/confirm", nil, 99)
		r = withURLParam(r, "id", "12")
		w := httptest.NewRecorder()
		handler.ConfirmLocal(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Booking cancelled before confirmation", func(t *testing.T) {
		service.EXPECT().ConfirmLocal(gomock.Any(), 12, 99).Return(nil, paymentservice.ErrBookingNotPayable)

		r := authedRequest(http.MethodPost, "/api/payments/local/12/confirm", nil, 99)
		r = withURLParam(r, "id", "12")
		w := httptest.NewRecorder()
		handler.ConfirmLocal(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		r := authedRequest(http.MethodPost, "/api/payments/local/abc/confirm", nil, 99)
		r = withURLParam(r, "id", "abc")
		w := httptest.NewRecorder()
		handler.ConfirmLocal(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInitiateCardHandler(t *testing.T) {
	handler, service := NewMock(t)
	body, _ := json.Marshal(dto.InitiateCardPaymentRequestDTO{BookingID: 1})

	t.Run("Intent created", func(t *testing.T) {
		service.EXPECT().InitiateCard(gomock.Any(), 3, 1).Return(&cardpay.Intent{
			ID:           "pi_3fa85f64",
			ClientSecret: "pi_3fa85f64_secret",
			Amount:       decimal.NewFromInt(10000),
			Status:       cardpay.IntentStatusRequiresConfirmation,
		}, nil)

		r := authedRequest(http.MethodPost, "/api/payments/card/initiate", body, 3)
		w := httptest.NewRecorder()
		handler.InitiateCard(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.CardIntentResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, "pi_3fa85f64", resp.IntentID)
		assert.Equal(t, cardpay.IntentStatusRequiresConfirmation, resp.Status)
	})

	t.Run("Unknown booking", func(t *testing.T) {
		service.EXPECT().InitiateCard(gomock.Any(), 3, 1).Return(nil, paymentservice.ErrBookingNotFound)

		r := authedRequest(http.MethodPost, "/api/payments/card/initiate", body, 3)
		w := httptest.NewRecorder()
		handler.InitiateCard(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestConfirmCardHandler(t *testing.T) {
	handler, service := NewMock(t)
	body, _ := json.Marshal(dto.ConfirmCardPaymentRequestDTO{BookingID: 1, IntentID: "pi_3fa85f64"})

	t.Run("Split returned", func(t *testing.T) {
		service.EXPECT().ConfirmCard(gomock.Any(), 3, 1, "pi_3fa85f64").Return(&domain.CommissionSplit{
			BookingID:          1,
			TotalAmount:        decimal.NewFromInt(10000),
			PlatformCommission: decimal.NewFromInt(1000),
			ProfessionalAmount: decimal.NewFromInt(9000),
		}, nil)

		r := authedRequest(http.MethodPost, "/api/payments/card/confirm", body, 3)
		w := httptest.NewRecorder()
		handler.ConfirmCard(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.ConfirmCardPaymentResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.True(t, resp.Success)
		assert.True(t, resp.Split.Commission.Equal(decimal.NewFromInt(1000)))
		assert.True(t, resp.Split.Total.Equal(resp.Split.Commission.Add(resp.Split.Professional)))
	})

	t.Run("Processor declined", func(t *testing.T) {
		service.EXPECT().ConfirmCard(gomock.Any(), 3, 1, "pi_3fa85f64").
			Return(nil, errors.Join(cardpay.ErrProviderRejected, errors.New("card_declined")))

		r := authedRequest(http.MethodPost, "/api/payments/card/confirm", body, 3)
		w := httptest.NewRecorder()
		handler.ConfirmCard(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().ConfirmCard(gomock.Any(), 3, 1, "pi_3fa85f64").Return(nil, errors.New("db error"))

		r := authedRequest(http.MethodPost, "/api/payments/card/confirm", body, 3)
		w := httptest.NewRecorder()
		handler.ConfirmCard(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
