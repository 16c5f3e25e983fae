package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookConsultationRequest struct {
	LawyerId      int       `json:"lawyer_id" validate:"required,min=1"`
	ScheduledAt   time.Time `json:"scheduled_at" validate:"required"`
	DurationMins  int       `json:"duration_mins" validate:"required,oneof=30 60 90"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
}

type ConsultationResponse struct {
	Id            uuid.UUID `json:"id"`
	LawyerId      int       `json:"lawyer_id"`
	LawyerName    string    `json:"lawyer_name"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationMins  int       `json:"duration_mins"`
	Amount        int       `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentMethodsResponse struct {
	UPI     []string `json:"upi"`
	Cards   []string `json:"cards"`
	Wallets []string `json:"wallets"`
}
