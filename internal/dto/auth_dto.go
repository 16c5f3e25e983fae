package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3"`
	// UserType is the role picked on the sign-up form. Optional; accounts
	// created without one pick a role on /user-type-selection later.
	UserType string `json:"user_type" validate:"omitempty,oneof=lawyer client"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	Redirect     string       `json:"redirect"`
	User         SessionUser  `json:"user"`
}

type SessionUser struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	UserType  string    `json:"user_type"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type SessionResponse struct {
	User      SessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type UserMetadataRequest struct {
	Metadata map[string]any `json:"metadata" validate:"required"`
}

type UserMetadataResponse struct {
	Metadata map[string]any `json:"metadata"`
}
