package calc

import (
	"math"
	"sort"
)

// Category selects which standard-distance table applies and whether
// fractional seconds are allowed in duration entry.
type Category string

const (
	CategoryTrack Category = "track"
	CategoryRoad  Category = "road"
	CategoryRelay Category = "relay"
)

// SelectionCustom is the distance selection that requires a free-form
// numeric value instead of a standard token.
const SelectionCustom = "custom"

// Exact canonical meter values. Marathon distances are exact by definition,
// not rounded.
const (
	MetersHalfMarathon = 21097.5
	MetersMarathon     = 42195.0
)

// standardDistances is the single source of truth for (category, token) ->
// meters. Every form resolves through this table so the constants cannot
// drift between screens.
var standardDistances = map[Category]map[string]float64{
	CategoryTrack: {
		"100m":   100,
		"200m":   200,
		"400m":   400,
		"800m":   800,
		"1500m":  1500,
		"3000m":  3000,
		"5000m":  5000,
		"10000m": 10000,
	},
	CategoryRoad: {
		"5km":           5000,
		"10km":          10000,
		"15km":          15000,
		"20km":          20000,
		"half-marathon": MetersHalfMarathon,
		"30km":          30000,
		"full-marathon": MetersMarathon,
	},
	CategoryRelay: {
		"4x100m":              400,
		"4x400m":              1600,
		"half-marathon-relay": MetersHalfMarathon,
		"full-marathon-relay": MetersMarathon,
	},
}

// Per-category upper bounds for custom distance entry, in meters.
const (
	maxTrackMeters = 25000.0
	maxRoadMeters  = 200000.0
	maxRelayMeters = 100000.0
)

// ParseCategory validates a category tag.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTrack, CategoryRoad, CategoryRelay:
		return Category(s), nil
	}
	return "", malformed("unknown category %q", s)
}

// AllowsFractionalSeconds reports whether durations in this category may
// carry hundredths. Only track events are hand-timed to the hundredth.
func (c Category) AllowsFractionalSeconds() bool {
	return c == CategoryTrack
}

// StandardTokens returns the category's standard distance tokens ordered by
// meter value, for selection menus.
func StandardTokens(category Category) []string {
	table := standardDistances[category]
	tokens := make([]string, 0, len(table))
	for tok := range table {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return table[tokens[i]] < table[tokens[j]]
	})
	return tokens
}

// ResolveDistance translates a distance selection into canonical meters.
// For a standard token the fixed table value is returned. For
// SelectionCustom, custom must be a positive number: meters for track,
// kilometers for road and relay (relay distances are entered as the
// aggregate). Values above the category bound are rejected.
func ResolveDistance(category Category, selection string, custom *float64) (float64, error) {
	table, ok := standardDistances[category]
	if !ok {
		return 0, malformed("unknown category %q", category)
	}

	if selection != SelectionCustom {
		meters, ok := table[selection]
		if !ok {
			return 0, malformed("unknown %s distance %q", category, selection)
		}
		return meters, nil
	}

	if custom == nil {
		return 0, missingValue("custom distance requires a value")
	}
	v := *custom
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, malformed("custom distance is not a number")
	}
	if v <= 0 {
		return 0, outOfRange("custom distance must be positive, got %g", v)
	}

	var meters, maxMeters float64
	switch category {
	case CategoryTrack:
		meters, maxMeters = v, maxTrackMeters
	case CategoryRoad:
		meters, maxMeters = v*1000, maxRoadMeters
	case CategoryRelay:
		meters, maxMeters = v*1000, maxRelayMeters
	}
	if meters > maxMeters {
		return 0, exceedsMaximum("%s distance cannot exceed %s", category, FormatMeters(maxMeters))
	}
	return meters, nil
}

// FormatMeters renders a canonical meter value the way the distance tables
// spell it: meters below 1 km, kilometers above.
func FormatMeters(meters float64) string {
	if meters < 1000 {
		return trimFloat(meters) + " m"
	}
	return trimFloat(meters/1000) + " km"
}
