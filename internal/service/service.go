package service

import (
	"github.com/adensardi/sahal/internal/handlers/booking"
	"github.com/adensardi/sahal/internal/handlers/payment"
	"github.com/adensardi/sahal/internal/handlers/wallet"

	"github.com/adensardi/sahal/internal/cardpay"
	"github.com/adensardi/sahal/internal/notify"
	"github.com/adensardi/sahal/internal/pg"
	"github.com/adensardi/sahal/internal/repo"
	bookingservice "github.com/adensardi/sahal/internal/service/bookingservice"
	paymentservice "github.com/adensardi/sahal/internal/service/paymentservice"
	splitservice "github.com/adensardi/sahal/internal/service/splitservice"
	walletservice "github.com/adensardi/sahal/internal/service/walletservice"
)

type Services struct {
	BookingService booking.Service
	PaymentService payment.Service
	WalletService  wallet.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, gateway cardpay.Gateway, notifier notify.Notifier) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.WithdrawalRepo, repo.UserRepo, txManager, notifier)
	splitService := splitservice.New(repo.BookingRepo, repo.SplitRepo, repo.WalletRepo, walletService, gateway, notifier)
	paymentService := paymentservice.New(repo.BookingRepo, repo.PaymentRepo, splitService, gateway, notifier, txManager)
	bookingService := bookingservice.New(repo.BookingRepo, repo.UserRepo, walletService, txManager, notifier)

	return &Services{
		BookingService: bookingService,
		PaymentService: paymentService,
		WalletService:  walletService,
	}
}
