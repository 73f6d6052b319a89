package dto

import (
	"time"

	"github.com/google/uuid"

	"focuscam-be/pkg/stats"
)

type StartSessionRequest struct {
	ScreenWidth  int `json:"screenWidth" validate:"omitempty,gte=0"`
	ScreenHeight int `json:"screenHeight" validate:"omitempty,gte=0"`
}

type EndSessionRequest struct {
	// Reported by the capture client; when omitted the duration is derived
	// from the start and end timestamps.
	DurationSeconds *int `json:"durationSeconds" validate:"omitempty,gte=0"`
}

type FocusSamplePayload struct {
	Timestamp      float64  `json:"timestamp" validate:"gte=0"`
	AttentionState int      `json:"attentionState" validate:"oneof=0 1"`
	FocusScore     *float64 `json:"focusScore" validate:"omitempty,gte=0,lte=1"`
}

type AddSamplesRequest struct {
	Samples []FocusSamplePayload `json:"samples" validate:"required,min=1,dive"`
}

type SessionRowResponse struct {
	Id              uuid.UUID `json:"id"`
	StartTime       time.Time `json:"startTime"`
	DurationSeconds int       `json:"durationSeconds"`
	Duration        string    `json:"duration"`
	AvgFocusScore   *int      `json:"avgFocusScore"`
}

type SessionStatsResponse struct {
	TotalSessions  int     `json:"totalSessions"`
	TotalFocusTime string  `json:"totalFocusTime"`
	TotalFocusSecs float64 `json:"totalFocusSeconds"`
	AvgFocusScore  *int    `json:"avgFocusScore"`
}

type SessionListResponse struct {
	Stats           SessionStatsResponse   `json:"stats"`
	Rows            []SessionRowResponse   `json:"rows"`
	Page            int                    `json:"page"`
	PageSize        int                    `json:"pageSize"`
	TotalPages      int                    `json:"totalPages"`
	FilteredSummary *stats.FilteredSummary `json:"filteredSummary,omitempty"`
}

type ReportResponse struct {
	SessionId            uuid.UUID `json:"sessionId"`
	AvgFocusScore        *float64  `json:"avgFocusScore"`
	TotalFocusTime       float64   `json:"totalFocusTime"`
	TotalDistractionTime float64   `json:"totalDistractionTime"`
	CreatedAt            time.Time `json:"createdAt"`
}

type SessionDetailResponse struct {
	Id              uuid.UUID       `json:"id"`
	UserId          uuid.UUID       `json:"userId"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         *time.Time      `json:"endTime"`
	DurationSeconds int             `json:"durationSeconds"`
	Duration        string          `json:"duration"`
	ScreenWidth     int             `json:"screenWidth,omitempty"`
	ScreenHeight    int             `json:"screenHeight,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	Report          *ReportResponse `json:"report,omitempty"`
}

type TodayProgressResponse struct {
	Sessions      int    `json:"sessions"`
	FocusTime     string `json:"focusTime"`
	AvgFocusScore *int   `json:"avgFocusScore"`
}
