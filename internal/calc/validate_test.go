package calc

import "testing"

func TestRangeConstraintCheck(t *testing.T) {
	tests := []struct {
		name    string
		rc      RangeConstraint
		value   float64
		wantErr bool
	}{
		{"age in range", AgeRange, 35, false},
		{"age at lower bound", AgeRange, 0, false},
		{"age at upper bound", AgeRange, 120, false},
		{"age above bound", AgeRange, 121, true},
		{"height too small", HeightRange, 99, true},
		{"height ok", HeightRange, 175, false},
		{"weight too small", WeightRange, 19, true},
		{"weight ok", WeightRange, 70, false},
		{"heart rate too high", HeartRateRange, 230, true},
		{"heart rate ok", HeartRateRange, 182, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rc.Check(tt.value)
			if tt.wantErr && err == nil {
				t.Errorf("%s.Check(%v) = nil, want error", tt.rc.Name, tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("%s.Check(%v) = %v, want nil", tt.rc.Name, tt.value, err)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	if v, err := ParseNumber("42.195"); err != nil || v != 42.195 {
		t.Errorf("ParseNumber(42.195) = %v, %v", v, err)
	}

	if _, err := ParseNumber(""); err == nil {
		t.Error("empty input should be an error")
	} else if pe, _ := AsParseError(err); pe.Kind != KindMissingValue {
		t.Errorf("empty input kind = %v, want KindMissingValue", pe.Kind)
	}

	if _, err := ParseNumber("abc"); err == nil {
		t.Error("non-numeric input should be an error")
	} else if pe, _ := AsParseError(err); pe.Kind != KindMalformed {
		t.Errorf("non-numeric kind = %v, want KindMalformed", pe.Kind)
	}
}

func TestParseNumberIn(t *testing.T) {
	if v, err := HeightRange.ParseNumberIn("175"); err != nil || v != 175 {
		t.Errorf("ParseNumberIn(175) = %v, %v", v, err)
	}
	if _, err := HeightRange.ParseNumberIn("90"); err == nil {
		t.Error("out-of-range value should be an error")
	}
	if _, err := HeightRange.ParseNumberIn(""); err == nil {
		t.Error("empty value should be an error")
	}
}
