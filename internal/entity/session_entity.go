package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one recorded focus period. It is created by the recording
// client when tracking starts and becomes immutable once ended.
type Session struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	StartTime       time.Time
	EndTime         *time.Time
	DurationSeconds int
	ScreenWidth     int
	ScreenHeight    int
	CreatedAt       time.Time
}

// FocusSample is a single attention observation inside a session.
// Timestamp is unix seconds as reported by the recording client.
type FocusSample struct {
	Id             uuid.UUID
	SessionId      uuid.UUID
	Timestamp      float64
	AttentionState int
	FocusScore     *float64
}

const (
	AttentionDistracted = 0
	AttentionFocused    = 1
)

// SessionRow is a session left-joined with its report. AvgFocusScore is
// the report score as an integer percent, nil while no report exists.
type SessionRow struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	StartTime       time.Time
	DurationSeconds int
	AvgFocusScore   *int
}
