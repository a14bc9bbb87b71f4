package calc

import (
	"math"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		allowFractional bool
		want            float64
	}{
		{"minutes and seconds", "5:30", false, 330},
		{"zero padded minutes", "05:30", false, 330},
		{"hours minutes seconds", "1:23:45", false, 5025},
		{"zero duration", "0:00", false, 0},
		{"max components", "23:59:59", false, 86399},
		{"fractional hundredths", "12:34.56", true, 754.56},
		{"fractional tenths", "0:05.5", true, 5.5},
		{"fractional with hours", "1:02:03.25", true, 3723.25},
		{"surrounding whitespace", " 5:30 ", false, 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input, tt.allowFractional)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		allowFractional bool
		wantKind        ErrorKind
	}{
		{"empty input", "", false, KindMissingValue},
		{"whitespace only", "   ", false, KindMissingValue},
		{"single number", "90", false, KindMalformed},
		{"four parts", "1:2:3:4", false, KindMalformed},
		{"seconds at 60", "5:60", false, KindOutOfRange},
		{"minutes at 60", "60:00", false, KindOutOfRange},
		{"minutes at 60 with hours", "1:60:00", false, KindOutOfRange},
		{"negative minutes", "-5:30", false, KindMalformed},
		{"plus sign", "+5:30", false, KindMalformed},
		{"letters", "ab:cd", false, KindMalformed},
		{"empty component", "5:", false, KindMalformed},
		{"fraction when disallowed", "5:30.5", false, KindMalformed},
		{"three fractional digits", "5:30.123", true, KindMalformed},
		{"bare dot", "5:30.", true, KindMalformed},
		{"fractional minutes", "5.5:30", true, KindMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.input, tt.allowFractional)
			if err == nil {
				t.Fatalf("ParseDuration(%q) = nil error, want ParseError", tt.input)
			}
			pe, ok := AsParseError(err)
			if !ok {
				t.Fatalf("ParseDuration(%q) returned %T, want *ParseError", tt.input, err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("ParseDuration(%q) kind = %v, want %v (%s)", tt.input, pe.Kind, tt.wantKind, pe.Reason)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name       string
		seconds    float64
		fractional bool
		want       string
	}{
		{"minutes only", 330, false, "5:30"},
		{"hours shown", 5025, false, "1:23:45"},
		{"zero", 0, false, "0:00"},
		{"exactly one hour", 3600, false, "1:00:00"},
		{"fractional", 754.56, true, "12:34.56"},
		{"fractional whole seconds", 125, true, "2:05.00"},
		{"fractional with hours", 3723.25, true, "1:02:03.25"},
		{"fractional carry into minute", 59.996, true, "1:00.00"},
		{"negative clamps to zero", -5, false, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds, tt.fractional); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

// Canonical strings must survive a parse/format round trip unchanged.
func TestDurationRoundTrip(t *testing.T) {
	tests := []struct {
		input      string
		fractional bool
	}{
		{"0:00", false},
		{"5:30", false},
		{"59:59", false},
		{"1:00:00", false},
		{"12:03:09", false},
		{"0:05.50", true},
		{"12:34.56", true},
		{"1:02:03.25", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sec, err := ParseDuration(tt.input, tt.fractional)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error: %v", tt.input, err)
			}
			if got := FormatDuration(sec, tt.fractional); got != tt.input {
				t.Errorf("round trip of %q produced %q", tt.input, got)
			}
		})
	}
}
