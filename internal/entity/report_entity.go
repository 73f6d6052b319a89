package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report carries the per-session analysis results. Its Id equals the
// session Id it was built from. AvgFocusScore is a 0.0-1.0 fraction and
// stays nil when the session produced no scorable samples.
type Report struct {
	Id                   uuid.UUID
	SessionId            uuid.UUID
	UserId               uuid.UUID
	AvgFocusScore        *float64
	TotalFocusTime       float64
	TotalDistractionTime float64
	CreatedAt            time.Time
}
