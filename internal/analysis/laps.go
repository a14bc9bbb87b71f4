package analysis

import (
	"fmt"
	"sort"

	"runmaster/internal/calc"
	"runmaster/internal/store"
)

// AnomalyKind classifies why a lap was flagged.
type AnomalyKind int

const (
	AnomalyImpossible AnomalyKind = iota // zero or negative duration/distance
	AnomalyTooFast                       // pace far below the workout median
	AnomalyTooSlow                       // pace far above the workout median
)

// A lap is flagged when its pace deviates from the workout median by more
// than this fraction.
const paceDeviationThreshold = 0.25

// Anomalies need a baseline; below this many valid laps the median is noise.
const minLapsForDeviation = 3

// LapAnomaly describes a suspicious split within a workout.
type LapAnomaly struct {
	Seq    int
	Kind   AnomalyKind
	Reason string
}

// DetectLapAnomalies inspects a workout's splits and flags laps with
// impossible values and laps whose pace is an outlier against the workout's
// median pace. Splits with undefined pace (zero distance) are reported as
// impossible, never silently treated as pace zero.
func DetectLapAnomalies(splits []store.Split) []LapAnomaly {
	var anomalies []LapAnomaly

	type lapPace struct {
		seq  int
		pace float64
	}
	var valid []lapPace

	for _, sp := range splits {
		if sp.DurationSeconds <= 0 || sp.DistanceMeters <= 0 {
			anomalies = append(anomalies, LapAnomaly{
				Seq:    sp.Seq,
				Kind:   AnomalyImpossible,
				Reason: fmt.Sprintf("lap %d has non-positive distance or time", sp.Seq),
			})
			continue
		}
		pace, ok := calc.Pace(sp.DurationSeconds, sp.DistanceMeters)
		if !ok {
			anomalies = append(anomalies, LapAnomaly{
				Seq:    sp.Seq,
				Kind:   AnomalyImpossible,
				Reason: fmt.Sprintf("lap %d has no computable pace", sp.Seq),
			})
			continue
		}
		valid = append(valid, lapPace{seq: sp.Seq, pace: pace})
	}

	if len(valid) < minLapsForDeviation {
		return anomalies
	}

	paces := make([]float64, len(valid))
	for i, lp := range valid {
		paces[i] = lp.pace
	}
	median := medianOf(paces)
	for _, lp := range valid {
		deviation := (lp.pace - median) / median
		switch {
		case deviation < -paceDeviationThreshold:
			anomalies = append(anomalies, LapAnomaly{
				Seq:    lp.seq,
				Kind:   AnomalyTooFast,
				Reason: fmt.Sprintf("lap %d pace %s is far faster than the %s median", lp.seq, calc.FormatPace(lp.pace), calc.FormatPace(median)),
			})
		case deviation > paceDeviationThreshold:
			anomalies = append(anomalies, LapAnomaly{
				Seq:    lp.seq,
				Kind:   AnomalyTooSlow,
				Reason: fmt.Sprintf("lap %d pace %s is far slower than the %s median", lp.seq, calc.FormatPace(lp.pace), calc.FormatPace(median)),
			})
		}
	}

	sort.Slice(anomalies, func(i, j int) bool { return anomalies[i].Seq < anomalies[j].Seq })
	return anomalies
}

func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
