package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/adensardi/sahal/docs"
	bookinghandlers "github.com/adensardi/sahal/internal/handlers/booking"
	paymenthandlers "github.com/adensardi/sahal/internal/handlers/payment"
	wallethandlers "github.com/adensardi/sahal/internal/handlers/wallet"
	"github.com/adensardi/sahal/internal/service"
	"github.com/adensardi/sahal/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		BookingService: bookinghandlers.NewMockService(ctrl),
		PaymentService: paymenthandlers.NewMockService(ctrl),
		WalletService:  wallethandlers.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingHandler := NewMockBookingHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)

	mockBookingHandler.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetBookings(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().CancelBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().InitiateCard(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().ConfirmCard(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().InitiateLocal(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().ConfirmLocal(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().UpdatePayoutInfo(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().ProcessWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	h := &Handlers{
		BookingHandler: mockBookingHandler,
		PaymentHandler: mockPaymentHandler,
		WalletHandler:  mockWalletHandler,
		jwtService:     jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	expiry := time.Now().Add(time.Hour)
	clientToken, err := jwtService.GenerateJWT(3, auth.RoleClient, expiry)
	assert.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(99, auth.RoleAdmin, expiry)
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/bookings", "", http.StatusUnauthorized},
		{"GET", "/api/bookings", "", http.StatusUnauthorized},
		{"POST", "/api/bookings/1/status", "", http.StatusUnauthorized},
		{"POST", "/api/bookings/1/cancel", "", http.StatusUnauthorized},
		{"POST", "/api/payments/card/initiate", "", http.StatusUnauthorized},
		{"POST", "/api/payments/card/confirm", "", http.StatusUnauthorized},
		{"POST", "/api/payments/local/initiate", "", http.StatusUnauthorized},
		{"GET", "/api/payments/local/1", "", http.StatusUnauthorized},
		{"GET", "/api/wallet", "", http.StatusUnauthorized},
		{"POST", "/api/wallet/withdrawals", "", http.StatusUnauthorized},
		{"GET", "/api/wallet/withdrawals", "", http.StatusUnauthorized},
		{"GET", "/api/wallet/transactions", "", http.StatusUnauthorized},
		{"PUT", "/api/wallet/payout-info", "", http.StatusUnauthorized},

		{"POST", "/api/bookings", clientToken, http.StatusOK},
		{"GET", "/api/wallet", clientToken, http.StatusOK},

		{"POST", "/api/payments/local/1/confirm", clientToken, http.StatusForbidden},
		{"POST", "/api/admin/withdrawals/1", clientToken, http.StatusForbidden},
		{"POST", "/api/payments/local/1/confirm", adminToken, http.StatusOK},
		{"POST", "/api/admin/withdrawals/1", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
