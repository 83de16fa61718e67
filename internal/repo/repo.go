package repo

import (
	"github.com/adensardi/sahal/internal/pg"
	bookingrepo "github.com/adensardi/sahal/internal/repo/booking-repo"
	paymentrepo "github.com/adensardi/sahal/internal/repo/payment-repo"
	splitrepo "github.com/adensardi/sahal/internal/repo/split-repo"
	userrepo "github.com/adensardi/sahal/internal/repo/user-repo"
	walletrepo "github.com/adensardi/sahal/internal/repo/wallet-repo"
	withdrawalrepo "github.com/adensardi/sahal/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	BookingRepo    *bookingrepo.Repository
	PaymentRepo    *paymentrepo.Repository
	SplitRepo      *splitrepo.Repository
	WalletRepo     *walletrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		BookingRepo:    bookingrepo.New(conn, txManager),
		PaymentRepo:    paymentrepo.New(conn, txManager),
		SplitRepo:      splitrepo.New(conn, txManager),
		WalletRepo:     walletrepo.New(conn, txManager),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}
