package table

import (
	"sort"

	"focuscam-be/internal/entity"
	"focuscam-be/pkg/stats"
)

const DefaultPageSize = 10

// View is the client-side table state over a fixed row set: active
// filter predicates, sort key + direction, and pagination. Changing
// filters or sort resets the page index to the first page; changing the
// page index or size touches nothing else.
type View struct {
	rows       []*entity.SessionRow
	predicates []Predicate
	sortColumn Column
	sortDesc   bool
	pageIndex  int
	pageSize   int
}

// NewView builds a view with the default state: no filters, start time
// descending, first page of ten rows.
func NewView(rows []*entity.SessionRow) *View {
	return &View{
		rows:       rows,
		sortColumn: ColumnStartTime,
		sortDesc:   true,
		pageSize:   DefaultPageSize,
	}
}

func (v *View) SetFilters(predicates ...Predicate) {
	v.predicates = predicates
	v.pageIndex = 0
}

func (v *View) SetSort(column Column, desc bool) {
	v.sortColumn = column
	v.sortDesc = desc
	v.pageIndex = 0
}

func (v *View) SetPage(index int) {
	if index < 0 {
		index = 0
	}
	v.pageIndex = index
}

func (v *View) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	v.pageSize = size
}

func (v *View) Filtered() bool {
	return len(v.predicates) > 0
}

func (v *View) PageIndex() int {
	return v.pageIndex
}

func (v *View) PageSize() int {
	return v.pageSize
}

// FilteredRows returns the rows passing every active predicate, in the
// active sort order, before pagination.
func (v *View) FilteredRows() []*entity.SessionRow {
	filtered := make([]*entity.SessionRow, 0, len(v.rows))
	for _, row := range v.rows {
		if v.matches(row) {
			filtered = append(filtered, row)
		}
	}
	v.sortRows(filtered)
	return filtered
}

// VisibleRows is filter, then sort, then the active page slice.
func (v *View) VisibleRows() []*entity.SessionRow {
	filtered := v.FilteredRows()

	start := v.pageIndex * v.pageSize
	if start >= len(filtered) {
		return []*entity.SessionRow{}
	}
	end := start + v.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageCount reports the number of pages the filtered row set spans.
func (v *View) PageCount() int {
	n := 0
	for _, row := range v.rows {
		if v.matches(row) {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return (n + v.pageSize - 1) / v.pageSize
}

// Summary returns the filtered-summary statistic over the post-filter
// subset, or nil when no filters are active.
func (v *View) Summary() *stats.FilteredSummary {
	if !v.Filtered() {
		return nil
	}
	summary := stats.Summarize(v.FilteredRows())
	return &summary
}

func (v *View) matches(row *entity.SessionRow) bool {
	for _, p := range v.predicates {
		if !p.Matches(row) {
			return false
		}
	}
	return true
}

func (v *View) sortRows(rows []*entity.SessionRow) {
	less := func(a, b *entity.SessionRow) bool {
		switch v.sortColumn {
		case ColumnDuration:
			return a.DurationSeconds < b.DurationSeconds
		case ColumnFocusScore:
			// rows without a score sort below every scored row
			av, bv := -1, -1
			if a.AvgFocusScore != nil {
				av = *a.AvgFocusScore
			}
			if b.AvgFocusScore != nil {
				bv = *b.AvgFocusScore
			}
			return av < bv
		default:
			return a.StartTime.Before(b.StartTime)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if v.sortDesc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}
