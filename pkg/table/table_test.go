package table

import (
	"testing"
	"time"

	"focuscam-be/internal/entity"

	"github.com/google/uuid"
)

func pct(v int) *int { return &v }

func testRows() []*entity.SessionRow {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rows := make([]*entity.SessionRow, 0, 5)
	for i, r := range []struct {
		dur   int
		score *int
	}{
		{300, pct(80)},
		{600, nil},
		{900, pct(60)},
		{1800, pct(95)},
		{60, pct(10)},
	} {
		rows = append(rows, &entity.SessionRow{
			Id:              uuid.New(),
			StartTime:       base.Add(time.Duration(i) * 24 * time.Hour),
			DurationSeconds: r.dur,
			AvgFocusScore:   r.score,
		})
	}
	return rows
}

func TestViewDefaultSort(t *testing.T) {
	rows := testRows()
	v := NewView(rows)

	visible := v.VisibleRows()
	if len(visible) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(visible))
	}
	for i := 1; i < len(visible); i++ {
		if visible[i].StartTime.After(visible[i-1].StartTime) {
			t.Errorf("default order must be start time descending")
		}
	}
}

func TestViewNumberFilters(t *testing.T) {
	v := NewView(testRows())

	// duration >= 10 minutes, via a parsed duration expression
	expr, ok := ParseDurationExpr("10m")
	if !ok {
		t.Fatal("expected duration expression to parse")
	}
	v.SetFilters(NumberPredicate{Column: ColumnDuration, Op: OpGreaterOrEqual, Value: expr.Seconds})

	filtered := v.FilteredRows()
	if len(filtered) != 3 {
		t.Fatalf("expected 3 rows at >= 600s, got %d", len(filtered))
	}

	// score predicates never match unscored rows
	v.SetFilters(NumberPredicate{Column: ColumnFocusScore, Op: OpLessOrEqual, Value: 100})
	if got := len(v.FilteredRows()); got != 4 {
		t.Errorf("expected the nil-score row to be excluded, got %d rows", got)
	}
}

func TestViewDateFilters(t *testing.T) {
	v := NewView(testRows())
	cutoff := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	v.SetFilters(DatePredicate{Op: DateOnOrAfter, Value: cutoff})
	if got := len(v.FilteredRows()); got != 3 {
		t.Errorf("expected 3 rows on or after June 3, got %d", got)
	}

	v.SetFilters(DatePredicate{Op: DateIs, Value: cutoff})
	if got := len(v.FilteredRows()); got != 1 {
		t.Errorf("expected 1 row on June 3, got %d", got)
	}
}

func TestViewFilterResetsPagination(t *testing.T) {
	v := NewView(testRows())
	v.SetPageSize(2)
	v.SetPage(2)

	v.SetFilters(NumberPredicate{Column: ColumnDuration, Op: OpGreaterThan, Value: 0})
	if v.PageIndex() != 0 {
		t.Errorf("changing filters must reset to first page, got page %d", v.PageIndex())
	}

	v.SetPage(1)
	v.SetSort(ColumnDuration, false)
	if v.PageIndex() != 0 {
		t.Errorf("changing sort must reset to first page, got page %d", v.PageIndex())
	}

	v.SetPage(1)
	v.SetPageSize(3)
	if v.PageIndex() != 1 {
		t.Errorf("changing page size must not reset the page index")
	}
}

func TestViewPagination(t *testing.T) {
	v := NewView(testRows())
	v.SetPageSize(2)

	if v.PageCount() != 3 {
		t.Errorf("PageCount = %d, want 3", v.PageCount())
	}
	if got := len(v.VisibleRows()); got != 2 {
		t.Errorf("page 0 should have 2 rows, got %d", got)
	}
	v.SetPage(2)
	if got := len(v.VisibleRows()); got != 1 {
		t.Errorf("last page should have 1 row, got %d", got)
	}
	v.SetPage(9)
	if got := len(v.VisibleRows()); got != 0 {
		t.Errorf("out-of-range page should be empty, got %d rows", got)
	}
}

func TestViewSummary(t *testing.T) {
	v := NewView(testRows())

	if v.Summary() != nil {
		t.Error("summary must be nil while no filters are active")
	}

	v.SetFilters(NumberPredicate{Column: ColumnDuration, Op: OpLessOrEqual, Value: 900})
	summary := v.Summary()
	if summary == nil {
		t.Fatal("expected a summary once filters are active")
	}
	// rows: 300s/80, 600s/nil, 900s/60, 60s/10 -> count 4, avg (80+60+10)/3 = 50
	if summary.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", summary.TotalSessions)
	}
	if summary.AvgFocusScore == nil || *summary.AvgFocusScore != 50 {
		t.Errorf("AvgFocusScore = %v, want 50", summary.AvgFocusScore)
	}
}

func TestViewSortByScore(t *testing.T) {
	v := NewView(testRows())
	v.SetSort(ColumnFocusScore, true)

	visible := v.VisibleRows()
	if visible[0].AvgFocusScore == nil || *visible[0].AvgFocusScore != 95 {
		t.Errorf("descending score sort should lead with 95")
	}
	last := visible[len(visible)-1]
	if last.AvgFocusScore != nil {
		t.Errorf("unscored rows should sort last on descending score")
	}
}
