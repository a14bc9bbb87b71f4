package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDuration parses a duration string of the form "MM:SS" or "HH:MM:SS"
// into total seconds. When allowFractional is true the final component may
// carry up to two fractional digits ("MM:SS.hh"), which track events use.
// Minutes and seconds must be below 60; any malformed token is an error,
// never a guessed value.
func ParseDuration(input string, allowFractional bool) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, missingValue("no time entered")
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, malformed("time must be MM:SS or HH:MM:SS, got %q", trimmed)
	}

	hours := 0
	idx := 0
	if len(parts) == 3 {
		h, ok := parseIntPart(parts[0])
		if !ok {
			return 0, malformed("invalid hours %q", parts[0])
		}
		hours = h
		idx = 1
	}

	minutes, ok := parseIntPart(parts[idx])
	if !ok {
		return 0, malformed("invalid minutes %q", parts[idx])
	}
	if minutes >= 60 {
		return 0, outOfRange("minutes must be below 60, got %d", minutes)
	}

	seconds, err := parseSecondsPart(parts[idx+1], allowFractional)
	if err != nil {
		return 0, err
	}

	return float64(hours*3600+minutes*60) + seconds, nil
}

// FormatDuration renders total seconds in the canonical display form. The
// hours segment is omitted when zero. With fractional set, seconds render
// with exactly two decimal digits; otherwise as whole seconds padded to two
// digits. For any string produced here, ParseDuration returns the same
// number of seconds.
func FormatDuration(seconds float64, fractional bool) string {
	if seconds < 0 {
		seconds = 0
	}

	if fractional {
		// Work in hundredths so 59.996 carries into the next minute
		// instead of rendering as "60.00".
		hundredths := int64(math.Round(seconds * 100))
		h := hundredths / 360000
		rem := hundredths % 360000
		m := rem / 6000
		s := float64(rem%6000) / 100
		if h > 0 {
			return fmt.Sprintf("%d:%02d:%05.2f", h, m, s)
		}
		return fmt.Sprintf("%d:%05.2f", m, s)
	}

	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// parseIntPart accepts only unsigned decimal digits, so "-5" and "+5" are
// rejected along with empty tokens.
func parseIntPart(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseSecondsPart(s string, allowFractional bool) (float64, error) {
	whole := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		if !allowFractional {
			return 0, malformed("fractional seconds not allowed here: %q", s)
		}
		whole = s[:dot]
		frac = s[dot+1:]
		if len(frac) == 0 || len(frac) > 2 {
			return 0, malformed("fractional seconds must have one or two digits: %q", s)
		}
		if _, ok := parseIntPart(frac); !ok {
			return 0, malformed("invalid seconds %q", s)
		}
	}

	sec, ok := parseIntPart(whole)
	if !ok {
		return 0, malformed("invalid seconds %q", s)
	}
	if sec >= 60 {
		return 0, outOfRange("seconds must be below 60, got %d", sec)
	}

	if frac == "" {
		return float64(sec), nil
	}
	v, err := strconv.ParseFloat(whole+"."+frac, 64)
	if err != nil {
		return 0, malformed("invalid seconds %q", s)
	}
	return v, nil
}
