package table

import (
	"time"

	"focuscam-be/internal/entity"
)

// Column identifies a filterable session-row column.
type Column string

const (
	ColumnStartTime  Column = "startTime"
	ColumnDuration   Column = "durationSeconds"
	ColumnFocusScore Column = "avgFocusScore"
)

// NumberOperator is a comparison against a numeric column value.
type NumberOperator string

const (
	OpIs             NumberOperator = "is"
	OpIsNot          NumberOperator = "isNot"
	OpGreaterThan    NumberOperator = "gt"
	OpGreaterOrEqual NumberOperator = "gte"
	OpLessThan       NumberOperator = "lt"
	OpLessOrEqual    NumberOperator = "lte"
)

// DateOperator compares a row's start date against a reference day.
type DateOperator string

const (
	DateIs         DateOperator = "is"
	DateBefore     DateOperator = "before"
	DateAfter      DateOperator = "after"
	DateOnOrBefore DateOperator = "onOrBefore"
	DateOnOrAfter  DateOperator = "onOrAfter"
)

// Predicate is one active filter. Visible rows pass the conjunction of
// all active predicates.
type Predicate interface {
	Matches(row *entity.SessionRow) bool
}

// NumberPredicate filters the duration or focus-score column. Rows with
// no score never match a focus-score predicate.
type NumberPredicate struct {
	Column Column
	Op     NumberOperator
	Value  float64
}

func (p NumberPredicate) Matches(row *entity.SessionRow) bool {
	var v float64
	switch p.Column {
	case ColumnDuration:
		v = float64(row.DurationSeconds)
	case ColumnFocusScore:
		if row.AvgFocusScore == nil {
			return false
		}
		v = float64(*row.AvgFocusScore)
	default:
		return false
	}

	switch p.Op {
	case OpIs:
		return v == p.Value
	case OpIsNot:
		return v != p.Value
	case OpGreaterThan:
		return v > p.Value
	case OpGreaterOrEqual:
		return v >= p.Value
	case OpLessThan:
		return v < p.Value
	case OpLessOrEqual:
		return v <= p.Value
	}
	return false
}

// DatePredicate filters on the calendar day of the row's start time,
// evaluated in the reference value's location.
type DatePredicate struct {
	Op    DateOperator
	Value time.Time
}

func (p DatePredicate) Matches(row *entity.SessionRow) bool {
	day := truncateToDay(p.Value)
	rowDay := truncateToDay(row.StartTime.In(p.Value.Location()))

	switch p.Op {
	case DateIs:
		return rowDay.Equal(day)
	case DateBefore:
		return rowDay.Before(day)
	case DateAfter:
		return rowDay.After(day)
	case DateOnOrBefore:
		return !rowDay.After(day)
	case DateOnOrAfter:
		return !rowDay.Before(day)
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
