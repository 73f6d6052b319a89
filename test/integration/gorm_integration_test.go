package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"focuscam-be/internal/entity"
	"focuscam-be/internal/repository/specification"
	"focuscam-be/internal/repository/unitofwork"
	"focuscam-be/pkg/database"
	"focuscam-be/pkg/report"
	"focuscam-be/pkg/stats"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SessionRepository())
	assert.NotNil(t, uow.ReportRepository())
	assert.NotNil(t, uow.FocusSampleRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	user := &entity.User{
		Id:          uuid.New(),
		Email:       "test-integration-" + uuid.New().String() + "@example.com",
		DisplayName: "Integration Test User",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	assert.NoError(t, uow.UserRepository().Create(ctx, user))

	t.Cleanup(func() {
		gormDB.Exec("DELETE FROM focus_samples WHERE session_id IN (SELECT id FROM sessions WHERE user_id = ?)", user.Id)
		gormDB.Exec("DELETE FROM reports WHERE user_id = ?", user.Id)
		gormDB.Exec("DELETE FROM sessions WHERE user_id = ?", user.Id)
		gormDB.Exec("DELETE FROM users WHERE id = ?", user.Id)
	})

	var session *entity.Session

	t.Run("Session Round Trip", func(t *testing.T) {
		start := time.Now().Add(-30 * time.Minute)
		end := start.Add(25 * time.Minute)
		session = &entity.Session{
			Id:              uuid.New(),
			UserId:          user.Id,
			StartTime:       start,
			EndTime:         &end,
			DurationSeconds: 1500,
			CreatedAt:       start,
		}
		assert.NoError(t, uow.SessionRepository().Create(ctx, session))

		found, err := uow.SessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, 1500, found.DurationSeconds)

		// Ownership is enforced by specification, not by luck.
		other, err := uow.SessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.OwnedBy{UserID: uuid.New()},
		)
		assert.NoError(t, err)
		assert.Nil(t, other)
	})

	t.Run("Samples And Report Build", func(t *testing.T) {
		base := float64(session.StartTime.Unix())
		score1, score2 := 0.8, 0.6
		samples := []*entity.FocusSample{
			{Id: uuid.New(), SessionId: session.Id, Timestamp: base, AttentionState: entity.AttentionFocused, FocusScore: &score1},
			{Id: uuid.New(), SessionId: session.Id, Timestamp: base + 600, AttentionState: entity.AttentionDistracted, FocusScore: &score2},
		}
		assert.NoError(t, uow.FocusSampleRepository().CreateBatch(ctx, samples))

		loaded, err := uow.FocusSampleRepository().FindBySession(ctx, session.Id)
		assert.NoError(t, err)
		assert.Len(t, loaded, 2)
		assert.LessOrEqual(t, loaded[0].Timestamp, loaded[1].Timestamp)

		metrics := report.ComputeMetrics(loaded, float64(session.DurationSeconds))
		assert.NotNil(t, metrics)

		rep := &entity.Report{
			Id:                   session.Id,
			SessionId:            session.Id,
			UserId:               user.Id,
			AvgFocusScore:        metrics.AvgFocusScore,
			TotalFocusTime:       metrics.TotalFocusTime,
			TotalDistractionTime: metrics.TotalDistractionTime,
			CreatedAt:            *session.EndTime,
		}
		assert.NoError(t, uow.ReportRepository().Upsert(ctx, rep))

		// Upsert again: a rebuild must replace, not duplicate.
		assert.NoError(t, uow.ReportRepository().Upsert(ctx, rep))

		count, err := uow.ReportRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Row Join", func(t *testing.T) {
		sessions, err := uow.SessionRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
			specification.OrderBy{Field: "start_time", Desc: true},
		)
		assert.NoError(t, err)

		reports, err := uow.ReportRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)

		rows := stats.JoinSessionRows(sessions, reports)
		assert.Len(t, rows, 1)
		assert.NotNil(t, rows[0].AvgFocusScore)
		assert.Equal(t, 70, *rows[0].AvgFocusScore)
	})
}
