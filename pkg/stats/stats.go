package stats

import (
	"fmt"
	"math"
	"time"

	"focuscam-be/internal/entity"
)

// CalcTotalFocusTime sums total focus seconds across reports.
func CalcTotalFocusTime(reports []*entity.Report) float64 {
	var total float64
	for _, r := range reports {
		total += r.TotalFocusTime
	}
	return total
}

// CalcAvgFocusScore returns the mean focus score across reports as an
// integer percent, or nil when no report carries a score. nil is distinct
// from 0 so callers can render "no data" instead of a zero score.
func CalcAvgFocusScore(reports []*entity.Report) *int {
	var sum float64
	var n int
	for _, r := range reports {
		if r.AvgFocusScore == nil {
			continue
		}
		sum += *r.AvgFocusScore
		n++
	}
	if n == 0 {
		return nil
	}
	pct := FocusScoreToPercent(sum / float64(n))
	return &pct
}

// FocusScoreToPercent converts a 0.0-1.0 score to an integer percent,
// rounding halves away from zero. NaN maps to 0.
func FocusScoreToPercent(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return int(math.Round(score * 100))
}

// FormatDuration renders seconds as "{h}h {m}m", "{m}m {s}s" or "{s}s".
// Exactly one of the three forms is produced. Negative and fractional
// inputs are clamped to a non-negative whole number of seconds.
func FormatDuration(seconds float64) string {
	s := int(math.Floor(seconds))
	if s < 0 {
		s = 0
	}
	h := s / 3600
	m := (s % 3600) / 60
	rem := s % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, rem)
	}
	return fmt.Sprintf("%ds", rem)
}

// FilteredSummary describes whatever subset of rows currently passes
// active filters. AvgFocusScore is nil when no row in the subset has a
// usable score.
type FilteredSummary struct {
	TotalSessions int  `json:"totalSessions"`
	AvgFocusScore *int `json:"avgFocusScore"`
}

// Summarize counts every row and averages only rows whose score is a
// non-negative number. Rows without a score still count toward the total.
func Summarize(rows []*entity.SessionRow) FilteredSummary {
	summary := FilteredSummary{TotalSessions: len(rows)}

	var sum, n int
	for _, row := range rows {
		if row.AvgFocusScore == nil || *row.AvgFocusScore < 0 {
			continue
		}
		sum += *row.AvgFocusScore
		n++
	}
	if n == 0 {
		return summary
	}
	avg := int(math.Round(float64(sum) / float64(n)))
	summary.AvgFocusScore = &avg
	return summary
}

// TodayProgress is the home-screen headline for the current day.
type TodayProgress struct {
	Sessions      int     `json:"sessions"`
	FocusTime     float64 `json:"focusTime"`
	AvgFocusScore *int    `json:"avgFocusScore"`
}

// CalcTodayProgress aggregates the sessions that started on the same
// calendar day as now, joining their reports by session id.
func CalcTodayProgress(sessions []*entity.Session, reports []*entity.Report, now time.Time) TodayProgress {
	byId := make(map[string]*entity.Report, len(reports))
	for _, r := range reports {
		byId[r.Id.String()] = r
	}

	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var progress TodayProgress
	var todays []*entity.Report
	for _, s := range sessions {
		start := s.StartTime.In(now.Location())
		if start.Before(dayStart) || !start.Before(dayEnd) {
			continue
		}
		progress.Sessions++
		if r, ok := byId[s.Id.String()]; ok {
			progress.FocusTime += r.TotalFocusTime
			todays = append(todays, r)
		}
	}
	progress.AvgFocusScore = CalcAvgFocusScore(todays)
	return progress
}
