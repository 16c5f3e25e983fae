package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserType string
type UserStatus string

const (
	UserTypeLawyer UserType = "lawyer"
	UserTypeClient UserType = "client"
	UserTypeUnset  UserType = ""

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id              uuid.UUID
	Email           string
	PasswordHash    *string
	FullName        string
	UserType        UserType
	Status          UserStatus
	EmailVerified   bool
	EmailVerifiedAt *time.Time
	AvatarURL       *string
	Metadata        map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HomeRoute is where the client should land after sign-in, based on
// whether the account has picked a role yet.
func (u *User) HomeRoute() string {
	switch u.UserType {
	case UserTypeLawyer:
		return "/profile/lawyer"
	case UserTypeClient:
		return "/profile/client"
	default:
		return "/user-type-selection"
	}
}

type PasswordResetToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	IpAddress string
	UserAgent string
}
