package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the public-facing details a user fills in after picking a
// role. Lawyer-only fields stay empty for clients.
type Profile struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	FullName   string
	Phone      string
	Bio        string
	UserType   UserType
	Specialty  string
	Experience int // years
	HourlyRate int
	Location   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
