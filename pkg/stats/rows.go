package stats

import (
	"focuscam-be/internal/entity"
)

// JoinSessionRows left-joins sessions with their reports by id. Report
// ids equal session ids by construction, so the lookup is exact equality
// and at most one report matches a session. Sessions without a report
// get a nil score; the input session ordering is preserved.
func JoinSessionRows(sessions []*entity.Session, reports []*entity.Report) []*entity.SessionRow {
	byId := make(map[string]*entity.Report, len(reports))
	for _, r := range reports {
		byId[r.Id.String()] = r
	}

	rows := make([]*entity.SessionRow, len(sessions))
	for i, s := range sessions {
		row := &entity.SessionRow{
			Id:              s.Id,
			UserId:          s.UserId,
			StartTime:       s.StartTime,
			DurationSeconds: s.DurationSeconds,
		}
		if r, ok := byId[s.Id.String()]; ok && r.AvgFocusScore != nil {
			pct := FocusScoreToPercent(*r.AvgFocusScore)
			row.AvgFocusScore = &pct
		}
		rows[i] = row
	}
	return rows
}
