package tui

import (
	"fmt"

	"runmaster/internal/calc"
	"runmaster/internal/config"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in meters to the user's preferred unit
func (u Units) FormatDistance(meters float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

// FormatDuration formats a duration in seconds for a workout category,
// keeping hundredths only where the category records them
func (u Units) FormatDuration(seconds float64, category string) string {
	return calc.FormatDuration(seconds, calc.Category(category).AllowsFractionalSeconds())
}

// FormatPace formats pace from total seconds and meters to the user's
// preferred unit. The seconds component truncates, matching calc.FormatPace.
func (u Units) FormatPace(seconds float64, meters float64) string {
	if meters <= 0 || seconds <= 0 {
		return "-"
	}
	perKm, ok := calc.Pace(seconds, meters)
	if !ok {
		return "-"
	}
	if u.cfg.PaceUnit == "min/mi" {
		return calc.FormatPace(perKm * metersPerMile / metersPerKm)
	}
	return calc.FormatPace(perKm)
}

// FormatPaceWithUnit formats pace with the unit label
func (u Units) FormatPaceWithUnit(seconds float64, meters float64) string {
	pace := u.FormatPace(seconds, meters)
	if pace == "-" {
		return pace
	}
	return pace + "/" + u.DistanceLabel()
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.cfg.DistanceUnit == "mi" {
		return "mi"
	}
	return "km"
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	if u.cfg.PaceUnit == "min/mi" {
		return "min/mi"
	}
	return "min/km"
}

// ConvertPaceSeries converts a min/km pace series for chart display
func (u Units) ConvertPaceSeries(paceMinPerKm []float64) []float64 {
	if u.cfg.PaceUnit != "min/mi" {
		return paceMinPerKm
	}
	converted := make([]float64, len(paceMinPerKm))
	for i, p := range paceMinPerKm {
		if p > 0 {
			converted[i] = p * metersPerMile / metersPerKm
		}
	}
	return converted
}
