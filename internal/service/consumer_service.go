package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"focuscam-be/internal/dto"
	"focuscam-be/internal/entity"
	"focuscam-be/internal/repository/memory"
	"focuscam-be/internal/repository/specification"
	"focuscam-be/internal/repository/unitofwork"
	"focuscam-be/pkg/events"
	pktNats "focuscam-be/pkg/nats"
	"focuscam-be/pkg/report"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the report-build queue: for each completed
// session it integrates the focus samples into a report and upserts it
// under the session's id.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	rowCache       *memory.RowCache
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	rowCache *memory.RowCache,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		rowCache:       rowCache,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishBuildReportMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Building report for SessionId: %s", payload.SessionId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: payload.SessionId})
	if err != nil {
		log.Printf("[ERROR] Failed to get session %s: %v", payload.SessionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if session == nil {
		log.Printf("[ERROR] Session not found: %s", payload.SessionId)
		msg.Ack() // Session deleted? Ack.
		return
	}

	samples, err := uow.FocusSampleRepository().FindBySession(ctx, session.Id)
	if err != nil {
		log.Printf("[ERROR] Failed to load samples for session %s: %v", session.Id, err)
		msg.Nack()
		return
	}

	metrics := report.ComputeMetrics(samples, float64(session.DurationSeconds))
	if metrics == nil {
		// A session with no samples gets no report; the row keeps
		// rendering without a score.
		log.Printf("[INFO] Session %s has no samples, skipping report", session.Id)
		msg.Ack()
		return
	}

	createdAt := session.CreatedAt
	if session.EndTime != nil {
		createdAt = *session.EndTime
	}

	rep := &entity.Report{
		Id:                   session.Id, // report id mirrors the session id
		SessionId:            session.Id,
		UserId:               session.UserId,
		AvgFocusScore:        metrics.AvgFocusScore,
		TotalFocusTime:       metrics.TotalFocusTime,
		TotalDistractionTime: metrics.TotalDistractionTime,
		CreatedAt:            createdAt,
	}

	if err := uow.ReportRepository().Upsert(ctx, rep); err != nil {
		log.Printf("[ERROR] Failed to upsert report for session %s: %v", session.Id, err)
		msg.Nack()
		return
	}

	cs.rowCache.Invalidate(session.UserId)

	if cs.eventPublisher != nil {
		evt := events.NewReportCreatedEvent(session.UserId, session.Id)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish REPORT_CREATED event: %v\n", err)
		}
	}

	score := "-"
	if rep.AvgFocusScore != nil {
		score = fmt.Sprintf("%.2f", *rep.AvgFocusScore)
	}
	log.Printf("[SUCCESS] Report built for SessionId: %s (avg score %s, focus %.1fs, distraction %.1fs) at %s",
		session.Id, score, rep.TotalFocusTime, rep.TotalDistractionTime, time.Now().Format(time.RFC3339))
	msg.Ack()
}
