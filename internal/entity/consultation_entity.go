package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConsultationStatus string
type PaymentStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Consultation struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	LawyerId      int
	LawyerName    string
	ScheduledAt   time.Time
	DurationMins  int
	Amount        int
	PaymentMethod string
	PaymentStatus PaymentStatus
	Status        ConsultationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
