package calc

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Pace returns the pace in seconds per kilometer. The second return is
// false when distance is zero, in which case pace is undefined and callers
// must render a placeholder rather than a number.
func Pace(durationSeconds, distanceMeters float64) (float64, bool) {
	if distanceMeters == 0 {
		return 0, false
	}
	return durationSeconds / (distanceMeters / 1000), true
}

// FormatPace renders seconds-per-kilometer as "M:SS". The seconds component
// truncates; 359.9 s/km is 5:59, not 6:00. Every screen formats pace through
// here so the truncation rule cannot diverge.
func FormatPace(secondsPerKm float64) string {
	if secondsPerKm <= 0 {
		return "-"
	}
	total := int(secondsPerKm)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// BMIClass is a BMI classification band.
type BMIClass string

const (
	BMIUnderweight BMIClass = "underweight"
	BMINormal      BMIClass = "normal"
	BMIOverweight  BMIClass = "overweight"
	BMIObese       BMIClass = "obese"
)

// BMI computes body mass index rounded to one decimal place. The second
// return is false unless both inputs are strictly positive.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	v := weightKg / (heightM * heightM)
	return math.Round(v*10) / 10, true
}

// ClassifyBMI maps a BMI value to its band. Bands are inclusive on the
// lower bound and exclusive on the upper, with no gap or overlap.
func ClassifyBMI(bmi float64) BMIClass {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// Age returns full years between birth and asOf, decremented by one when
// asOf's month/day falls before the birthday that year. Birth dates more
// than 100 years before asOf, or more than a year after it, are rejected
// (registration up to a year ahead of birth is allowed).
func Age(birth, asOf time.Time) (int, error) {
	if birth.Before(asOf.AddDate(-100, 0, 0)) {
		return 0, outOfRange("birth date is more than 100 years ago")
	}
	if birth.After(asOf.AddDate(1, 0, 0)) {
		return 0, outOfRange("birth date is more than a year in the future")
	}

	years := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		years--
	}
	// A pre-birth registration is age 0, not -1.
	if years < 0 {
		years = 0
	}
	return years, nil
}

// Percentage returns current/target as a percentage clamped to [0, 100].
// A zero target yields 0 so dashboard progress bars stay well-defined.
func Percentage(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	p := current / target * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
