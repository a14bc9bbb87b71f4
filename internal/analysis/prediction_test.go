package analysis

import (
	"math"
	"testing"
)

func TestPredictTime(t *testing.T) {
	tests := []struct {
		name         string
		knownMeters  float64
		knownSeconds float64
		targetMeters float64
		want         float64
		tolerance    float64
	}{
		{
			name:        "5K 20:00 to 10K",
			knownMeters: 5000, knownSeconds: 1200, targetMeters: 10000,
			want:      1200 * math.Pow(2, 1.06), // ~41:42
			tolerance: 0.5,
		},
		{
			name:        "10K 40:00 back to 5K",
			knownMeters: 10000, knownSeconds: 2400, targetMeters: 5000,
			want:      2400 * math.Pow(0.5, 1.06), // ~19:11
			tolerance: 0.5,
		},
		{
			name:        "same distance is identity",
			knownMeters: 21097.5, knownSeconds: 5400, targetMeters: 21097.5,
			want:      5400,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictTime(tt.knownMeters, tt.knownSeconds, tt.targetMeters)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("PredictTime() = %v, want %v (±%v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestPredictTimeInvalidInputs(t *testing.T) {
	if got := PredictTime(0, 1200, 10000); got != 0 {
		t.Errorf("zero known distance: got %v, want 0", got)
	}
	if got := PredictTime(5000, 0, 10000); got != 0 {
		t.Errorf("zero known time: got %v, want 0", got)
	}
	if got := PredictTime(5000, 1200, -1); got != 0 {
		t.Errorf("negative target: got %v, want 0", got)
	}
}

func TestPredictStandardTimes(t *testing.T) {
	predictions := PredictStandardTimes(5000, 1200)
	if len(predictions) == 0 {
		t.Fatal("no predictions returned")
	}

	byToken := map[string]Prediction{}
	for _, p := range predictions {
		byToken[p.Token] = p
	}

	fiveK, ok := byToken["5km"]
	if !ok {
		t.Fatal("missing 5km prediction")
	}
	if math.Abs(fiveK.Seconds-1200) > 1e-9 {
		t.Errorf("5km prediction = %v, want 1200", fiveK.Seconds)
	}
	if fiveK.Confidence != "high" {
		t.Errorf("5km confidence = %q, want high", fiveK.Confidence)
	}

	full, ok := byToken["full-marathon"]
	if !ok {
		t.Fatal("missing full-marathon prediction")
	}
	if full.Seconds <= byToken["half-marathon"].Seconds {
		t.Error("marathon prediction should exceed half marathon prediction")
	}
	if full.Confidence != "low" {
		t.Errorf("marathon confidence from a 5K = %q, want low", full.Confidence)
	}

	// Longer distances must predict monotonically longer times.
	prev := 0.0
	for _, p := range predictions {
		if p.Seconds <= prev {
			t.Errorf("prediction for %s (%v s) not greater than previous (%v s)", p.Token, p.Seconds, prev)
		}
		prev = p.Seconds
	}
}

func TestPredictStandardTimesInvalid(t *testing.T) {
	if got := PredictStandardTimes(0, 1200); got != nil {
		t.Errorf("PredictStandardTimes(0, 1200) = %v, want nil", got)
	}
}
