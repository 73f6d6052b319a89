package table

import "testing"

func TestParseDurationExpr(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSeconds float64
		wantOK      bool
	}{
		{"bare number is base unit", "90", 90, true},
		{"seconds suffix", "90s", 90, true},
		{"minutes", "45m", 2700, true},
		{"hours", "1h", 3600, true},
		{"fractional hours with word", "2.5 hours", 9000, true},
		{"spaced unit", "30 min", 1800, true},
		{"long unit", "10 seconds", 10, true},
		{"uppercase", "1H", 3600, true},
		{"unknown unit", "5 parsecs", 0, false},
		{"not a number", "soon", 0, false},
		{"empty", "", 0, false},
		{"negative rejected", "-5m", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDurationExpr(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDurationExpr(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.Seconds != tt.wantSeconds {
				t.Errorf("ParseDurationExpr(%q) = %v seconds, want %v", tt.input, got.Seconds, tt.wantSeconds)
			}
		})
	}
}

func TestParseDurationExprDisplay(t *testing.T) {
	expr, ok := ParseDurationExpr("90s")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if expr.Display != "1m 30s" {
		t.Errorf("Display = %q, want %q", expr.Display, "1m 30s")
	}
}
