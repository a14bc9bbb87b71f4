package tui

import (
	"testing"

	"runmaster/internal/config"
)

func TestUnitsMetric(t *testing.T) {
	u := NewUnits(config.DisplayConfig{DistanceUnit: "km", PaceUnit: "min/km"})

	if got := u.FormatDistance(21097.5); got != "21.1 km" {
		t.Errorf("FormatDistance(21097.5) = %q, want %q", got, "21.1 km")
	}
	// 30:00 over 5km is 6:00 min/km.
	if got := u.FormatPace(1800, 5000); got != "6:00" {
		t.Errorf("FormatPace(1800, 5000) = %q, want %q", got, "6:00")
	}
	if got := u.FormatPace(1800, 0); got != "-" {
		t.Errorf("FormatPace with zero distance = %q, want %q", got, "-")
	}
}

func TestUnitsImperial(t *testing.T) {
	u := NewUnits(config.DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"})

	if got := u.FormatDistance(1609.34); got != "1.0 mi" {
		t.Errorf("FormatDistance(1609.34) = %q, want %q", got, "1.0 mi")
	}
	// 6:00 min/km is about 9:39 min/mi; display truncates seconds.
	if got := u.FormatPace(1800, 5000); got != "9:39" {
		t.Errorf("FormatPace(1800, 5000) = %q, want %q", got, "9:39")
	}
}

func TestUnitsFormatDurationByCategory(t *testing.T) {
	u := NewUnits(config.DefaultConfig().Display)

	if got := u.FormatDuration(252.35, "track"); got != "4:12.35" {
		t.Errorf("track duration = %q, want %q", got, "4:12.35")
	}
	if got := u.FormatDuration(252.35, "road"); got != "4:12" {
		t.Errorf("road duration = %q, want %q", got, "4:12")
	}
}

func TestConvertPaceSeries(t *testing.T) {
	u := NewUnits(config.DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"})

	series := u.ConvertPaceSeries([]float64{5.0, 6.0})
	if len(series) != 2 {
		t.Fatalf("len = %d, want 2", len(series))
	}
	want := 5.0 * 1609.34 / 1000
	if series[0] != want {
		t.Errorf("series[0] = %v, want %v", series[0], want)
	}

	metric := NewUnits(config.DefaultConfig().Display)
	same := metric.ConvertPaceSeries([]float64{5.0})
	if same[0] != 5.0 {
		t.Errorf("metric series changed: %v", same[0])
	}
}
