package table

import (
	"regexp"
	"strconv"
	"strings"

	"focuscam-be/pkg/stats"
)

// DurationExpr is a parsed free-text duration filter value, normalized
// to seconds. Display carries a canonical rendering for filter chips.
type DurationExpr struct {
	Seconds float64
	Display string
}

var durationExprRe = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*([a-z]*)$`)

var unitSeconds = map[string]float64{
	"":        1, // bare number means the column's base unit
	"s":       1,
	"sec":     1,
	"secs":    1,
	"second":  1,
	"seconds": 1,
	"m":       60,
	"min":     60,
	"mins":    60,
	"minute":  60,
	"minutes": 60,
	"h":       3600,
	"hr":      3600,
	"hrs":     3600,
	"hour":    3600,
	"hours":   3600,
}

// ParseDurationExpr parses expressions like "90", "90s", "1h", "45 min"
// or "2.5 hours" into seconds. The second return value reports whether
// the input was parseable.
func ParseDurationExpr(input string) (DurationExpr, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	match := durationExprRe.FindStringSubmatch(normalized)
	if match == nil {
		return DurationExpr{}, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return DurationExpr{}, false
	}
	factor, ok := unitSeconds[match[2]]
	if !ok {
		return DurationExpr{}, false
	}

	seconds := value * factor
	return DurationExpr{
		Seconds: seconds,
		Display: stats.FormatDuration(seconds),
	}, true
}
