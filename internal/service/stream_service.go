package service

import (
	"context"
	"fmt"
	"strings"

	"focuscam-be/internal/dto"
	"focuscam-be/internal/pkg/logger"
	"focuscam-be/pkg/events"
	pktNats "focuscam-be/pkg/nats"
	"focuscam-be/pkg/stats"

	"github.com/google/uuid"
)

// RowDelivery defines how to push real-time table updates.
// Typically implemented by the WebSocket Hub.
type RowDelivery interface {
	Send(userID uuid.UUID, msgType string, payload interface{})
}

// StreamService listens for report builds on the event bus and pushes a
// fresh row snapshot to the owning user's open connections, so a table
// that rendered a scoreless row fills in without a reload.
type StreamService struct {
	sessionService ISessionService
	subscriber     *pktNats.Subscriber
	delivery       RowDelivery
	logger         logger.ILogger
}

func NewStreamService(sessionService ISessionService, sub *pktNats.Subscriber, delivery RowDelivery, log logger.ILogger) *StreamService {
	return &StreamService{
		sessionService: sessionService,
		subscriber:     sub,
		delivery:       delivery,
		logger:         log,
	}
}

// Start begins listening to the event bus.
func (s *StreamService) Start() {
	err := s.subscriber.Subscribe("events.>", "stream-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("StreamService", "Failed to start stream subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("StreamService", "Stream service started, listening to events.>", nil)
}

func (s *StreamService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	if typeCode != events.TypeReportCreated {
		return nil
	}

	uidStr, ok := event.Payload()["user_id"].(string)
	if !ok {
		s.logger.Warn("StreamService", fmt.Sprintf("No user_id in %s payload", typeCode), nil)
		return nil
	}
	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return nil
	}

	rows, err := s.sessionService.GetUserSessionRows(ctx, uid)
	if err != nil {
		s.logger.Error("StreamService", "Failed to refresh rows after report build", map[string]interface{}{
			"user_id": uid.String(),
			"error":   err.Error(),
		})
		return err // NATS will retry
	}

	snapshot := make([]dto.SessionRowResponse, 0, len(rows))
	for _, row := range rows {
		snapshot = append(snapshot, dto.SessionRowResponse{
			Id:              row.Id,
			StartTime:       row.StartTime,
			DurationSeconds: row.DurationSeconds,
			Duration:        stats.FormatDuration(float64(row.DurationSeconds)),
			AvgFocusScore:   row.AvgFocusScore,
		})
	}

	if s.delivery != nil {
		s.delivery.Send(uid, "sessionRows", snapshot)
	}

	return nil
}
