package calc

import (
	"math"
	"strconv"
	"strings"
)

// RangeConstraint bounds a numeric profile field. A record is well-formed
// only once every field passes its constraint.
type RangeConstraint struct {
	Name string
	Min  float64
	Max  float64
}

// Field constraints shared by the profile form and the importer.
var (
	AgeRange       = RangeConstraint{Name: "age", Min: 0, Max: 120}
	HeightRange    = RangeConstraint{Name: "height", Min: 100, Max: 250}
	WeightRange    = RangeConstraint{Name: "weight", Min: 20, Max: 200}
	HeartRateRange = RangeConstraint{Name: "heart rate", Min: 30, Max: 220}
)

// Check validates v against the constraint.
func (rc RangeConstraint) Check(v float64) error {
	if math.IsNaN(v) {
		return malformed("%s is not a number", rc.Name)
	}
	if v < rc.Min || v > rc.Max {
		return outOfRange("%s must be between %s and %s, got %s",
			rc.Name, trimFloat(rc.Min), trimFloat(rc.Max), trimFloat(v))
	}
	return nil
}

// ParseNumber parses a free-form numeric field. Empty input and malformed
// input are distinct error kinds so forms can tell "not entered" from
// "entered badly".
func ParseNumber(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, missingValue("no value entered")
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, malformed("not a number: %q", trimmed)
	}
	return v, nil
}

// ParseNumberIn combines ParseNumber with a range check.
func (rc RangeConstraint) ParseNumberIn(input string) (float64, error) {
	v, err := ParseNumber(input)
	if err != nil {
		return 0, err
	}
	if err := rc.Check(v); err != nil {
		return 0, err
	}
	return v, nil
}
