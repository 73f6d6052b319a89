package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime       time.Time  `gorm:"not null;index"`
	EndTime         *time.Time `gorm:""`
	DurationSeconds int        `gorm:"not null;default:0"`
	ScreenWidth     int        `gorm:"not null;default:0"`
	ScreenHeight    int        `gorm:"not null;default:0"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
