package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/adensardi/sahal/docs"
	bookinghandlers "github.com/adensardi/sahal/internal/handlers/booking"
	paymenthandlers "github.com/adensardi/sahal/internal/handlers/payment"
	wallethandlers "github.com/adensardi/sahal/internal/handlers/wallet"
	"github.com/adensardi/sahal/internal/service"
	"github.com/adensardi/sahal/pkg/auth"
)

type BookingHandler interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	CancelBooking(w http.ResponseWriter, r *http.Request)
	GetBookings(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	InitiateLocal(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	ConfirmLocal(w http.ResponseWriter, r *http.Request)
	InitiateCard(w http.ResponseWriter, r *http.Request)
	ConfirmCard(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	UpdatePayoutInfo(w http.ResponseWriter, r *http.Request)
	ProcessWithdrawal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BookingHandler BookingHandler
	PaymentHandler PaymentHandler
	WalletHandler  WalletHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		BookingHandler: bookinghandlers.New(s.BookingService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.BookingHandler.CreateBooking)
			r.Get("/", h.BookingHandler.GetBookings)
			r.Post("/{id}/status", h.BookingHandler.UpdateStatus)
			r.Post("/{id}/cancel", h.BookingHandler.CancelBooking)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/card/initiate", h.PaymentHandler.InitiateCard)
			r.Post("/card/confirm", h.PaymentHandler.ConfirmCard)
			r.Post("/local/initiate", h.PaymentHandler.InitiateLocal)
			r.Get("/local/{id}", h.PaymentHandler.GetStatus)
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", h.WalletHandler.GetWallet)
			r.Post("/withdrawals", h.WalletHandler.Withdraw)
			r.Get("/withdrawals", h.WalletHandler.GetWithdrawals)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Put("/payout-info", h.WalletHandler.UpdatePayoutInfo)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin))
			r.Post("/payments/local/{id}/confirm", h.PaymentHandler.ConfirmLocal)
			r.Post("/admin/withdrawals/{id}", h.WalletHandler.ProcessWithdrawal)
		})
	})

	return r
}
