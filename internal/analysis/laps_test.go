package analysis

import (
	"testing"

	"runmaster/internal/store"
)

func splitsOf(durations ...float64) []store.Split {
	splits := make([]store.Split, len(durations))
	for i, d := range durations {
		splits[i] = store.Split{Seq: i + 1, DistanceMeters: 1000, DurationSeconds: d}
	}
	return splits
}

func TestDetectLapAnomaliesCleanWorkout(t *testing.T) {
	// Even kilometer splits around 4:10/km: nothing to flag.
	anomalies := DetectLapAnomalies(splitsOf(250, 248, 252, 251, 249))
	if len(anomalies) != 0 {
		t.Errorf("clean workout flagged: %+v", anomalies)
	}
}

func TestDetectLapAnomaliesOutliers(t *testing.T) {
	// Lap 3 is nearly double the median pace, lap 5 far below it.
	anomalies := DetectLapAnomalies(splitsOf(250, 252, 480, 251, 150, 249))

	byKind := map[AnomalyKind][]int{}
	for _, a := range anomalies {
		byKind[a.Kind] = append(byKind[a.Kind], a.Seq)
	}

	if got := byKind[AnomalyTooSlow]; len(got) != 1 || got[0] != 3 {
		t.Errorf("too-slow laps = %v, want [3]", got)
	}
	if got := byKind[AnomalyTooFast]; len(got) != 1 || got[0] != 5 {
		t.Errorf("too-fast laps = %v, want [5]", got)
	}
}

func TestDetectLapAnomaliesImpossibleValues(t *testing.T) {
	splits := []store.Split{
		{Seq: 1, DistanceMeters: 1000, DurationSeconds: 250},
		{Seq: 2, DistanceMeters: 0, DurationSeconds: 250},
		{Seq: 3, DistanceMeters: 1000, DurationSeconds: 0},
		{Seq: 4, DistanceMeters: 1000, DurationSeconds: 251},
	}

	anomalies := DetectLapAnomalies(splits)
	if len(anomalies) != 2 {
		t.Fatalf("got %d anomalies, want 2: %+v", len(anomalies), anomalies)
	}
	for _, a := range anomalies {
		if a.Kind != AnomalyImpossible {
			t.Errorf("lap %d kind = %v, want AnomalyImpossible", a.Seq, a.Kind)
		}
	}
	if anomalies[0].Seq != 2 || anomalies[1].Seq != 3 {
		t.Errorf("flagged laps = %d, %d, want 2, 3", anomalies[0].Seq, anomalies[1].Seq)
	}
}

func TestDetectLapAnomaliesTooFewLaps(t *testing.T) {
	// Two laps give no usable median; only impossible values may be flagged.
	anomalies := DetectLapAnomalies(splitsOf(250, 480))
	if len(anomalies) != 0 {
		t.Errorf("deviation flagged with too few laps: %+v", anomalies)
	}
}

func TestDetectLapAnomaliesEmpty(t *testing.T) {
	if got := DetectLapAnomalies(nil); len(got) != 0 {
		t.Errorf("DetectLapAnomalies(nil) = %+v, want none", got)
	}
}
