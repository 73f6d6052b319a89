package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy restricts rows to one user's records.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// BySessionID matches records keyed by a session (reports, samples).
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// StartedAfter keeps sessions with start_time at or after the cutoff.
type StartedAfter struct {
	Cutoff time.Time
}

func (s StartedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time >= ?", s.Cutoff)
}
