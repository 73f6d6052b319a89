package report

import (
	"testing"

	"focuscam-be/internal/entity"
)

func score(v float64) *float64 { return &v }

func sample(ts float64, state int, s *float64) *entity.FocusSample {
	return &entity.FocusSample{Timestamp: ts, AttentionState: state, FocusScore: s}
}

func TestComputeMetricsEmpty(t *testing.T) {
	if got := ComputeMetrics(nil, 60); got != nil {
		t.Errorf("no samples should yield nil metrics, got %+v", got)
	}
}

func TestComputeMetricsIntervals(t *testing.T) {
	samples := []*entity.FocusSample{
		sample(0, entity.AttentionFocused, score(0.9)),
		sample(10, entity.AttentionDistracted, score(0.3)),
		sample(15, entity.AttentionFocused, score(0.6)),
	}

	// 0-10 focused, 10-15 distracted, trailing 15-30 focused
	m := ComputeMetrics(samples, 30)
	if m == nil {
		t.Fatal("expected metrics")
	}
	if m.TotalFocusTime != 25 {
		t.Errorf("TotalFocusTime = %v, want 25", m.TotalFocusTime)
	}
	if m.TotalDistractionTime != 5 {
		t.Errorf("TotalDistractionTime = %v, want 5", m.TotalDistractionTime)
	}
	if m.AvgFocusScore == nil || *m.AvgFocusScore != 0.6 {
		t.Errorf("AvgFocusScore = %v, want 0.6", m.AvgFocusScore)
	}
}

func TestComputeMetricsUnsortedInput(t *testing.T) {
	samples := []*entity.FocusSample{
		sample(15, entity.AttentionFocused, nil),
		sample(0, entity.AttentionFocused, nil),
		sample(10, entity.AttentionDistracted, nil),
	}

	m := ComputeMetrics(samples, 0)
	if m == nil {
		t.Fatal("expected metrics")
	}
	if m.TotalFocusTime != 10 || m.TotalDistractionTime != 5 {
		t.Errorf("got focus=%v distraction=%v, want 10 and 5", m.TotalFocusTime, m.TotalDistractionTime)
	}
	if m.AvgFocusScore != nil {
		t.Errorf("no scored samples should keep AvgFocusScore nil, got %v", *m.AvgFocusScore)
	}
}

func TestComputeMetricsNoTailWhenObservedCoversDuration(t *testing.T) {
	samples := []*entity.FocusSample{
		sample(0, entity.AttentionDistracted, nil),
		sample(20, entity.AttentionFocused, nil),
	}

	m := ComputeMetrics(samples, 20)
	if m.TotalDistractionTime != 20 || m.TotalFocusTime != 0 {
		t.Errorf("got focus=%v distraction=%v, want 0 and 20", m.TotalFocusTime, m.TotalDistractionTime)
	}
}
