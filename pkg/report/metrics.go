package report

import (
	"sort"

	"focuscam-be/internal/entity"
)

// Metrics is the analysis result for one completed session.
type Metrics struct {
	AvgFocusScore        *float64
	TotalFocusTime       float64
	TotalDistractionTime float64
}

// ComputeMetrics integrates focus vs. distraction time over a session's
// attention samples. Each interval between consecutive samples is
// attributed to the earlier sample's state. Any session time left after
// the last sample is attributed to that sample's state. Returns nil when
// there are no samples, so callers can skip writing an empty report.
func ComputeMetrics(samples []*entity.FocusSample, durationSeconds float64) *Metrics {
	if len(samples) == 0 {
		return nil
	}

	ordered := make([]*entity.FocusSample, len(samples))
	copy(ordered, samples)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	var focusTime, distractionTime float64
	for i := 0; i < len(ordered)-1; i++ {
		delta := ordered[i+1].Timestamp - ordered[i].Timestamp
		if delta < 0 {
			delta = 0
		}
		switch ordered[i].AttentionState {
		case entity.AttentionFocused:
			focusTime += delta
		case entity.AttentionDistracted:
			distractionTime += delta
		}
	}

	if durationSeconds > 0 {
		observed := ordered[len(ordered)-1].Timestamp - ordered[0].Timestamp
		remaining := durationSeconds - observed
		if remaining > 0 {
			last := ordered[len(ordered)-1]
			switch last.AttentionState {
			case entity.AttentionFocused:
				focusTime += remaining
			case entity.AttentionDistracted:
				distractionTime += remaining
			}
		}
	}

	var scoreSum float64
	var scored int
	for _, s := range ordered {
		if s.FocusScore == nil {
			continue
		}
		scoreSum += *s.FocusScore
		scored++
	}

	m := &Metrics{
		TotalFocusTime:       focusTime,
		TotalDistractionTime: distractionTime,
	}
	if scored > 0 {
		avg := scoreSum / float64(scored)
		m.AvgFocusScore = &avg
	}
	return m
}
