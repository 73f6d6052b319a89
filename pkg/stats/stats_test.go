package stats

import (
	"testing"
	"time"

	"focuscam-be/internal/entity"

	"github.com/google/uuid"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 59, "59s"},
		{"minute boundary", 60, "1m 0s"},
		{"minutes and seconds", 90, "1m 30s"},
		{"hour boundary", 3600, "1h 0m"},
		{"hours drop seconds", 3661, "1h 1m"},
		{"negative clamped", -5, "0s"},
		{"fractional truncated", 59.9, "59s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFocusScoreToPercent(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{"typical", 0.855, 86},
		{"half rounds up", 0.125, 13},
		{"zero", 0, 0},
		{"full", 1.0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FocusScoreToPercent(tt.score); got != tt.want {
				t.Errorf("FocusScoreToPercent(%v) = %d, want %d", tt.score, got, tt.want)
			}
		})
	}
}

func TestCalcAvgFocusScore(t *testing.T) {
	if got := CalcAvgFocusScore(nil); got != nil {
		t.Errorf("empty input should yield nil, got %d", *got)
	}

	reports := []*entity.Report{
		{AvgFocusScore: f(0.8)},
		{AvgFocusScore: f(0.6)},
	}
	got := CalcAvgFocusScore(reports)
	if got == nil || *got != 70 {
		t.Errorf("CalcAvgFocusScore([0.8 0.6]) = %v, want 70", got)
	}

	// reports without a score are excluded from the mean
	reports = append(reports, &entity.Report{AvgFocusScore: nil})
	got = CalcAvgFocusScore(reports)
	if got == nil || *got != 70 {
		t.Errorf("nil-score report shifted the mean: got %v, want 70", got)
	}
}

func TestCalcTotalFocusTime(t *testing.T) {
	if got := CalcTotalFocusTime(nil); got != 0 {
		t.Errorf("empty input should sum to 0, got %v", got)
	}

	a := []*entity.Report{{TotalFocusTime: 120}, {TotalFocusTime: 30}, {TotalFocusTime: 450}}
	b := []*entity.Report{a[2], a[0], a[1]}
	if CalcTotalFocusTime(a) != 600 || CalcTotalFocusTime(b) != 600 {
		t.Errorf("sum should be order independent, got %v and %v", CalcTotalFocusTime(a), CalcTotalFocusTime(b))
	}
}

func TestSummarize(t *testing.T) {
	rows := []*entity.SessionRow{
		{AvgFocusScore: i(80)},
		{AvgFocusScore: nil},
		{AvgFocusScore: i(60)},
	}
	sum := Summarize(rows)
	if sum.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3 (nil score still counts)", sum.TotalSessions)
	}
	if sum.AvgFocusScore == nil || *sum.AvgFocusScore != 70 {
		t.Errorf("AvgFocusScore = %v, want 70", sum.AvgFocusScore)
	}

	empty := Summarize(nil)
	if empty.TotalSessions != 0 || empty.AvgFocusScore != nil {
		t.Errorf("empty subset should have 0 rows and nil average, got %+v", empty)
	}

	unscored := Summarize([]*entity.SessionRow{{AvgFocusScore: nil}})
	if unscored.TotalSessions != 1 || unscored.AvgFocusScore != nil {
		t.Errorf("unscored subset should count rows but keep nil average, got %+v", unscored)
	}
}

func TestJoinSessionRows(t *testing.T) {
	sessionA := uuid.New()
	sessionB := uuid.New()
	userId := uuid.New()
	start := time.Now()

	sessions := []*entity.Session{
		{Id: sessionA, UserId: userId, StartTime: start, DurationSeconds: 300},
		{Id: sessionB, UserId: userId, StartTime: start.Add(-time.Hour), DurationSeconds: 600},
	}
	reports := []*entity.Report{
		{Id: sessionA, SessionId: sessionA, UserId: userId, AvgFocusScore: f(0.9)},
	}

	rows := JoinSessionRows(sessions, reports)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].AvgFocusScore == nil || *rows[0].AvgFocusScore != 90 {
		t.Errorf("matched row score = %v, want 90", rows[0].AvgFocusScore)
	}
	// session without a report: nil, not zero
	if rows[1].AvgFocusScore != nil {
		t.Errorf("unmatched row score = %d, want nil", *rows[1].AvgFocusScore)
	}
	if rows[0].Id != sessionA || rows[1].Id != sessionB {
		t.Errorf("join must preserve session ordering")
	}
}

func TestCalcTodayProgress(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	userId := uuid.New()
	today := uuid.New()
	yesterday := uuid.New()

	sessions := []*entity.Session{
		{Id: today, UserId: userId, StartTime: now.Add(-2 * time.Hour), DurationSeconds: 1800},
		{Id: yesterday, UserId: userId, StartTime: now.Add(-26 * time.Hour), DurationSeconds: 900},
	}
	reports := []*entity.Report{
		{Id: today, SessionId: today, AvgFocusScore: f(0.75), TotalFocusTime: 1500},
		{Id: yesterday, SessionId: yesterday, AvgFocusScore: f(0.2), TotalFocusTime: 100},
	}

	progress := CalcTodayProgress(sessions, reports, now)
	if progress.Sessions != 1 {
		t.Errorf("Sessions = %d, want 1", progress.Sessions)
	}
	if progress.FocusTime != 1500 {
		t.Errorf("FocusTime = %v, want 1500", progress.FocusTime)
	}
	if progress.AvgFocusScore == nil || *progress.AvgFocusScore != 75 {
		t.Errorf("AvgFocusScore = %v, want 75", progress.AvgFocusScore)
	}
}
