package model

import (
	"time"

	"github.com/google/uuid"
)

type Consultation struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	LawyerId      int       `gorm:"not null"`
	LawyerName    string    `gorm:"type:varchar(255);not null"`
	ScheduledAt   time.Time `gorm:"not null"`
	DurationMins  int       `gorm:"not null;default:30"`
	Amount        int       `gorm:"not null"`
	PaymentMethod string    `gorm:"type:varchar(50)"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Consultation) TableName() string {
	return "consultations"
}
