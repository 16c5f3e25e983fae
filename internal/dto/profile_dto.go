package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Bio        string    `json:"bio"`
	UserType   string    `json:"user_type"`
	Specialty  string    `json:"specialty,omitempty"`
	Experience int       `json:"experience,omitempty"`
	HourlyRate int       `json:"hourly_rate,omitempty"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UpsertProfileRequest struct {
	FullName   string `json:"full_name" validate:"required,min=3"`
	Phone      string `json:"phone" validate:"omitempty,min=7,max=20"`
	Bio        string `json:"bio" validate:"omitempty,max=2000"`
	Specialty  string `json:"specialty" validate:"omitempty,max=100"`
	Experience int    `json:"experience" validate:"omitempty,min=0,max=80"`
	HourlyRate int    `json:"hourly_rate" validate:"omitempty,min=0"`
	Location   string `json:"location" validate:"omitempty,max=255"`
}

type CompleteProfileRequest struct {
	FullName   string `json:"full_name" validate:"required,min=3"`
	Phone      string `json:"phone" validate:"omitempty,min=7,max=20"`
	Bio        string `json:"bio" validate:"omitempty,max=2000"`
	Specialty  string `json:"specialty" validate:"omitempty,max=100"`
	Experience int    `json:"experience" validate:"omitempty,min=0,max=80"`
	HourlyRate int    `json:"hourly_rate" validate:"omitempty,min=0"`
	Location   string `json:"location" validate:"omitempty,max=255"`
}

type SelectUserTypeRequest struct {
	UserType string `json:"user_type" validate:"required,oneof=lawyer client"`
}

type SelectUserTypeResponse struct {
	UserType string `json:"user_type"`
	Redirect string `json:"redirect"`
}
