package dto

import "github.com/shopspring/decimal"

type InitiateLocalPaymentRequestDTO struct {
	BookingID     int    `json:"booking_id" example:"1"`
	PaymentMethod string `json:"payment_method" example:"waafipay"`
	PhoneNumber   string `json:"phone_number" example:"77123456"`
}

type InitiateLocalPaymentResponseDTO struct {
	PaymentID            int             `json:"payment_id" example:"12"`
	TransactionReference string          `json:"transaction_reference" example:"SAH-1735725600-1"`
	Amount               decimal.Decimal `json:"amount" example:"10000"`
	Instructions         []string        `json:"instructions"`
	PaymentWindowSeconds int             `json:"payment_window_seconds" example:"300"`
}

type PaymentStatusResponseDTO struct {
	Status               string          `json:"status" example:"pending"`
	TransactionReference string          `json:"transaction_reference" example:"SAH-1735725600-1"`
	Amount               decimal.Decimal `json:"amount" example:"10000"`
	PaymentMethod        string          `json:"payment_method" example:"waafipay"`
}

type ConfirmLocalPaymentResponseDTO struct {
	Success   bool   `json:"success" example:"true"`
	Status    string `json:"status" example:"completed"`
	BookingID int    `json:"booking_id" example:"1"`
}

type InitiateCardPaymentRequestDTO struct {
	BookingID int `json:"booking_id" example:"1"`
}

type CardIntentResponseDTO struct {
	IntentID     string          `json:"intent_id" example:"pi_3fa85f64"`
	ClientSecret string          `json:"client_secret,omitempty"`
	Amount       decimal.Decimal `json:"amount" example:"10000"`
	Status       string          `json:"status" example:"requires_confirmation"`
}

type ConfirmCardPaymentRequestDTO struct {
	BookingID int    `json:"booking_id" example:"1"`
	IntentID  string `json:"intent_id" example:"pi_3fa85f64"`
}

type SplitDTO struct {
	Total        decimal.Decimal `json:"total" example:"10000"`
	Commission   decimal.Decimal `json:"commission" example:"1000"`
	Professional decimal.Decimal `json:"professional" example:"9000"`
}

type ConfirmCardPaymentResponseDTO struct {
	Success bool     `json:"success" example:"true"`
	Split   SplitDTO `json:"split"`
}
