package main

import (
	"log"
	"os"
	"time"

	"focuscam-be/internal/entity"
	"focuscam-be/internal/mapper"
	"focuscam-be/pkg/database"
	"focuscam-be/pkg/report"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with a few finished sessions so the table and
// dashboard have something to show on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	userMapper := mapper.NewUserMapper()
	sessionMapper := mapper.NewSessionMapper()
	reportMapper := mapper.NewReportMapper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        "demo@focuscam.dev",
		DisplayName:  "Demo User",
		PasswordHash: &hashStr,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(userMapper.ToModel(user)).Error; err != nil {
		log.Fatal("Error: Failed to seed user:", err)
	}
	color.Green("✅ Seeded user %s (password: demo1234)", user.Email)

	// Three sessions spread over the last two days, with sample traces
	// that exercise both attention states.
	specs := []struct {
		ago      time.Duration
		duration int
		scores   []float64
		states   []int
	}{
		{48 * time.Hour, 1500, []float64{0.9, 0.85, 0.8}, []int{1, 1, 1}},
		{24 * time.Hour, 900, []float64{0.7, 0.4, 0.6}, []int{1, 0, 1}},
		{2 * time.Hour, 3600, []float64{0.95, 0.9, 0.5, 0.85}, []int{1, 1, 0, 1}},
	}

	for i, spec := range specs {
		start := time.Now().Add(-spec.ago)
		end := start.Add(time.Duration(spec.duration) * time.Second)

		session := &entity.Session{
			Id:              uuid.New(),
			UserId:          user.Id,
			StartTime:       start,
			EndTime:         &end,
			DurationSeconds: spec.duration,
			ScreenWidth:     1920,
			ScreenHeight:    1080,
			CreatedAt:       start,
		}
		if err := db.Create(sessionMapper.ToModel(session)).Error; err != nil {
			log.Fatal("Error: Failed to seed session:", err)
		}

		step := float64(spec.duration) / float64(len(spec.scores)+1)
		samples := make([]*entity.FocusSample, 0, len(spec.scores))
		for j, score := range spec.scores {
			s := score
			samples = append(samples, &entity.FocusSample{
				Id:             uuid.New(),
				SessionId:      session.Id,
				Timestamp:      float64(start.Unix()) + step*float64(j),
				AttentionState: spec.states[j],
				FocusScore:     &s,
			})
		}
		if err := db.Create(sessionMapper.SamplesToModels(samples)).Error; err != nil {
			log.Fatal("Error: Failed to seed samples:", err)
		}

		metrics := report.ComputeMetrics(samples, float64(spec.duration))
		rep := &entity.Report{
			Id:                   session.Id,
			SessionId:            session.Id,
			UserId:               user.Id,
			AvgFocusScore:        metrics.AvgFocusScore,
			TotalFocusTime:       metrics.TotalFocusTime,
			TotalDistractionTime: metrics.TotalDistractionTime,
			CreatedAt:            end,
		}
		if err := db.Create(reportMapper.ToModel(rep)).Error; err != nil {
			log.Fatal("Error: Failed to seed report:", err)
		}

		log.Printf("%s session %d: %s focus / %s distraction",
			green("Seeded"), i+1,
			cyan(time.Duration(metrics.TotalFocusTime)*time.Second),
			cyan(time.Duration(metrics.TotalDistractionTime)*time.Second))
	}

	color.Green("✅ Seeding completed")
}
