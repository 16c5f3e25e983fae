package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FullName   string    `gorm:"type:varchar(255);not null"`
	Phone      string    `gorm:"type:varchar(50)"`
	Bio        string    `gorm:"type:text"`
	UserType   string    `gorm:"type:varchar(50);not null"`
	Specialty  string    `gorm:"type:varchar(100)"`
	Experience int       `gorm:"default:0"`
	HourlyRate int       `gorm:"default:0"`
	Location   string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
