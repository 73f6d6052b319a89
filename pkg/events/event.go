package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published on the bus.
const (
	TypeUserLogin        = "USER_LOGIN"
	TypeSessionCompleted = "SESSION_COMPLETED"
	TypeReportCreated    = "REPORT_CREATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserLoginEvent(userId uuid.UUID, device string) BaseEvent {
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"device":  device,
			"time":    time.Now().Format(time.RFC822),
		},
		OccurredAt: time.Now(),
	}
}

func NewReportCreatedEvent(userId, sessionId uuid.UUID) BaseEvent {
	return BaseEvent{
		Type: TypeReportCreated,
		Data: map[string]interface{}{
			"user_id":    userId.String(),
			"session_id": sessionId.String(),
		},
		OccurredAt: time.Now(),
	}
}
