package dto

import "github.com/google/uuid"

// PublishBuildReportMessage is the internal queue payload that asks the
// report builder to (re)build the report for one session.
type PublishBuildReportMessage struct {
	SessionId uuid.UUID `json:"sessionId"`
}
