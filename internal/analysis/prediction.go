package analysis

import (
	"math"

	"runmaster/internal/calc"
)

// Riegel fatigue exponent: time scales with distance^1.06 for trained
// endurance runners.
const riegelExponent = 1.06

// Prediction is a projected finish time at a standard road distance.
type Prediction struct {
	Token      string
	Meters     float64
	Seconds    float64
	Confidence string // "high", "medium", "low"
}

// PredictTime projects a finish time at targetMeters from a known result
// using Riegel's power law. Returns 0 when the inputs cannot support a
// prediction.
func PredictTime(knownMeters, knownSeconds, targetMeters float64) float64 {
	if knownMeters <= 0 || knownSeconds <= 0 || targetMeters <= 0 {
		return 0
	}
	return knownSeconds * math.Pow(targetMeters/knownMeters, riegelExponent)
}

// PredictStandardTimes projects finish times for every standard road
// distance from a single known result. Confidence degrades as the target
// distance moves away from the source distance; extrapolating a 5K to a
// marathon says little.
func PredictStandardTimes(knownMeters, knownSeconds float64) []Prediction {
	if knownMeters <= 0 || knownSeconds <= 0 {
		return nil
	}

	tokens := calc.StandardTokens(calc.CategoryRoad)
	predictions := make([]Prediction, 0, len(tokens))
	for _, token := range tokens {
		meters, err := calc.ResolveDistance(calc.CategoryRoad, token, nil)
		if err != nil {
			continue
		}
		predictions = append(predictions, Prediction{
			Token:      token,
			Meters:     meters,
			Seconds:    PredictTime(knownMeters, knownSeconds, meters),
			Confidence: predictionConfidence(knownMeters, meters),
		})
	}
	return predictions
}

func predictionConfidence(knownMeters, targetMeters float64) string {
	ratio := targetMeters / knownMeters
	if ratio < 1 {
		ratio = 1 / ratio
	}
	switch {
	case ratio <= 2:
		return "high"
	case ratio <= 4:
		return "medium"
	default:
		return "low"
	}
}
