package store

import "time"

// DateLayout is the canonical storage layout for calendar dates.
const DateLayout = "2006-01-02"

// Profile represents the athlete's profile (singleton row)
type Profile struct {
	Name      string     `db:"name"`
	BirthDate *time.Time `db:"birth_date"` // nullable
	HeightCm  *float64   `db:"height_cm"`  // nullable
	WeightKg  *float64   `db:"weight_kg"`  // nullable
	RestingHR *float64   `db:"resting_hr"` // nullable
	MaxHR     *float64   `db:"max_hr"`     // nullable
}

// Workout represents a single training session
type Workout struct {
	ID              int64     `db:"id"`
	Date            time.Time `db:"date"`
	Name            string    `db:"name"`
	Category        string    `db:"category"`
	DistanceMeters  float64   `db:"distance_meters"`
	DurationSeconds float64   `db:"duration_seconds"`
	Notes           string    `db:"notes"`
	ImportBatch     *string   `db:"import_batch"` // nullable, set for CSV imports
}

// Split represents one ordered lap of a workout
type Split struct {
	WorkoutID       int64   `db:"workout_id"`
	Seq             int     `db:"seq"`
	DistanceMeters  float64 `db:"distance_meters"`
	DurationSeconds float64 `db:"duration_seconds"`
}

// Race represents an official race result
type Race struct {
	ID              int64     `db:"id"`
	Date            time.Time `db:"date"`
	Name            string    `db:"name"`
	Category        string    `db:"category"`
	DistanceToken   string    `db:"distance_token"`
	DistanceMeters  float64   `db:"distance_meters"`
	DurationSeconds float64   `db:"duration_seconds"`
	Location        string    `db:"location"`
}

// PersonalBest represents the fastest race for a category + distance token
type PersonalBest struct {
	ID              int64     `db:"id"`
	Category        string    `db:"category"`
	DistanceToken   string    `db:"distance_token"`
	DistanceMeters  float64   `db:"distance_meters"`
	DurationSeconds float64   `db:"duration_seconds"`
	RaceID          int64     `db:"race_id"`
	AchievedAt      time.Time `db:"achieved_at"`
}

// Goal metric identifiers
const (
	GoalWeeklyDistance = "weekly_distance" // target in meters
	GoalWeeklyDuration = "weekly_duration" // target in seconds
)

// Goal represents a weekly training target
type Goal struct {
	ID     int64   `db:"id"`
	Metric string  `db:"metric"`
	Target float64 `db:"target"`
}

// ImportBatch represents one CSV import run
type ImportBatch struct {
	ID         string `db:"id"`
	SourceFile string `db:"source_file"`
	Imported   int    `db:"imported"`
	Skipped    int    `db:"skipped"`
}
