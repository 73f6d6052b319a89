package model

import (
	"github.com/google/uuid"
)

type FocusSample struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Timestamp      float64   `gorm:"not null"`
	AttentionState int       `gorm:"not null"`
	FocusScore     *float64  `gorm:""`
}

func (FocusSample) TableName() string {
	return "focus_samples"
}
