package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequestDTO struct {
	ProfessionalID int             `json:"professional_id" example:"42"`
	ServiceID      int             `json:"service_id" example:"7"`
	ScheduledDate  string          `json:"scheduled_date" example:"2026-09-15"`
	ScheduledTime  string          `json:"scheduled_time" example:"14:30"`
	Address        string          `json:"address" example:"Quartier 4, Djibouti"`
	TotalAmount    decimal.Decimal `json:"total_amount" example:"10000"`
}

type BookingResponseDTO struct {
	ID               int             `json:"id" example:"1"`
	ClientID         int             `json:"client_id" example:"3"`
	ProfessionalID   int             `json:"professional_id" example:"42"`
	ServiceID        int             `json:"service_id" example:"7"`
	ScheduledAt      time.Time       `json:"scheduled_at" example:"2026-09-15T14:30:00Z"`
	Address          string          `json:"address" example:"Quartier 4, Djibouti"`
	TotalAmount      decimal.Decimal `json:"total_amount" example:"10000"`
	CommissionAmount decimal.Decimal `json:"commission_amount" example:"1000"`
	Status           string          `json:"status" example:"pending"`
	PaymentStatus    string          `json:"payment_status" example:"pending"`
	PaymentMethod    string          `json:"payment_method,omitempty" example:"waafipay"`
	CreatedAt        time.Time       `json:"created_at"`
}

type UpdateBookingStatusRequestDTO struct {
	Status string `json:"status" example:"confirmed"`
}

type UpdateBookingStatusResponseDTO struct {
	Success bool `json:"success" example:"true"`
}

type CancelBookingResponseDTO struct {
	Success          bool            `json:"success" example:"true"`
	RefundAmount     decimal.Decimal `json:"refundAmount" example:"5000"`
	RefundPercentage int             `json:"refundPercentage" example:"50"`
}
