package calc

import "testing"

func fptr(v float64) *float64 { return &v }

func TestResolveDistanceStandardTokens(t *testing.T) {
	tests := []struct {
		category  Category
		selection string
		want      float64
	}{
		{CategoryTrack, "800m", 800},
		{CategoryTrack, "5000m", 5000},
		{CategoryRoad, "5km", 5000},
		{CategoryRoad, "half-marathon", 21097.5},
		{CategoryRoad, "full-marathon", 42195},
		{CategoryRelay, "4x400m", 1600},
		{CategoryRelay, "full-marathon-relay", 42195},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+tt.selection, func(t *testing.T) {
			got, err := ResolveDistance(tt.category, tt.selection, nil)
			if err != nil {
				t.Fatalf("ResolveDistance error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDistance(%s, %s) = %v, want %v", tt.category, tt.selection, got, tt.want)
			}
		})
	}
}

func TestResolveDistanceCustom(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		custom   float64
		want     float64
	}{
		{"track in meters", CategoryTrack, 600, 600},
		{"road in kilometers", CategoryRoad, 12.5, 12500},
		{"relay aggregate kilometers", CategoryRelay, 42.195, 42195},
		{"track at bound", CategoryTrack, 25000, 25000},
		{"road at bound", CategoryRoad, 200, 200000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDistance(tt.category, SelectionCustom, fptr(tt.custom))
			if err != nil {
				t.Fatalf("ResolveDistance error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDistance(%s, custom, %v) = %v, want %v", tt.category, tt.custom, got, tt.want)
			}
		})
	}
}

func TestResolveDistanceErrors(t *testing.T) {
	tests := []struct {
		name      string
		category  Category
		selection string
		custom    *float64
		wantKind  ErrorKind
	}{
		{"unknown token", CategoryRoad, "9km", nil, KindMalformed},
		{"token from wrong category", CategoryTrack, "half-marathon", nil, KindMalformed},
		{"unknown category", Category("trail"), "5km", nil, KindMalformed},
		{"missing custom value", CategoryRoad, SelectionCustom, nil, KindMissingValue},
		{"zero custom value", CategoryTrack, SelectionCustom, fptr(0), KindOutOfRange},
		{"negative custom value", CategoryRoad, SelectionCustom, fptr(-5), KindOutOfRange},
		{"track above bound", CategoryTrack, SelectionCustom, fptr(25001), KindExceedsMaximum},
		{"road above bound", CategoryRoad, SelectionCustom, fptr(200.1), KindExceedsMaximum},
		{"relay above bound", CategoryRelay, SelectionCustom, fptr(101), KindExceedsMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDistance(tt.category, tt.selection, tt.custom)
			if err == nil {
				t.Fatal("ResolveDistance = nil error, want ParseError")
			}
			pe, ok := AsParseError(err)
			if !ok {
				t.Fatalf("ResolveDistance returned %T, want *ParseError", err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v (%s)", pe.Kind, tt.wantKind, pe.Reason)
			}
		})
	}
}

// ResolveDistance is pure: identical arguments yield identical results.
func TestResolveDistanceIdempotent(t *testing.T) {
	first, err := ResolveDistance(CategoryRoad, "half-marathon", nil)
	if err != nil {
		t.Fatalf("ResolveDistance error: %v", err)
	}
	second, err := ResolveDistance(CategoryRoad, "half-marathon", nil)
	if err != nil {
		t.Fatalf("ResolveDistance error: %v", err)
	}
	if first != second {
		t.Errorf("repeated calls diverged: %v then %v", first, second)
	}
}

func TestStandardTokensOrdered(t *testing.T) {
	for _, category := range []Category{CategoryTrack, CategoryRoad, CategoryRelay} {
		tokens := StandardTokens(category)
		if len(tokens) == 0 {
			t.Fatalf("no tokens for %s", category)
		}
		prev := -1.0
		for _, tok := range tokens {
			meters, err := ResolveDistance(category, tok, nil)
			if err != nil {
				t.Fatalf("token %q did not resolve: %v", tok, err)
			}
			if meters <= prev {
				t.Errorf("%s tokens not in ascending order at %q", category, tok)
			}
			prev = meters
		}
	}
}

func TestCategoryFractionalSeconds(t *testing.T) {
	if !CategoryTrack.AllowsFractionalSeconds() {
		t.Error("track should allow fractional seconds")
	}
	if CategoryRoad.AllowsFractionalSeconds() {
		t.Error("road should not allow fractional seconds")
	}
	if CategoryRelay.AllowsFractionalSeconds() {
		t.Error("relay should not allow fractional seconds")
	}
}
