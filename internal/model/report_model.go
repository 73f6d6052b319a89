package model

import (
	"time"

	"github.com/google/uuid"
)

// Report rows share their primary key with the session they describe,
// which makes the session-report join a plain id equality.
type Report struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserId               uuid.UUID `gorm:"type:uuid;not null;index"`
	AvgFocusScore        *float64  `gorm:""`
	TotalFocusTime       float64   `gorm:"not null;default:0"`
	TotalDistractionTime float64   `gorm:"not null;default:0"`
	CreatedAt            time.Time `gorm:"not null;index"`
}

func (Report) TableName() string {
	return "reports"
}
