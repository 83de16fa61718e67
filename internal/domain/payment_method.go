package domain

import "fmt"

// PaymentMethod is a closed set so that every switch over it can be checked
// for exhaustiveness at review time instead of branching on raw strings.
type PaymentMethod string

const (
	MethodCard     PaymentMethod = "card"
	MethodWaafiPay PaymentMethod = "waafipay"
	MethodDMoney   PaymentMethod = "dmoney"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCard, MethodWaafiPay, MethodDMoney:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method: %q", s)
}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsLocal reports whether the method settles over a mobile-money rail with a
// reference code instead of an instant gateway callback.
func (m PaymentMethod) IsLocal() bool {
	switch m {
	case MethodWaafiPay, MethodDMoney:
		return true
	case MethodCard:
		return false
	}
	return false
}
