package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Athlete profile (singleton row)
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			birth_date TEXT,
			height_cm REAL,
			weight_kg REAL,
			resting_hr REAL,
			max_hr REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Workouts (training sessions, manual entry or CSV import)
		`CREATE TABLE IF NOT EXISTS workouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			distance_meters REAL NOT NULL,
			duration_seconds REAL NOT NULL,
			notes TEXT,
			import_batch TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_category ON workouts(category)`,

		// Splits (per-workout ordered laps)
		`CREATE TABLE IF NOT EXISTS splits (
			workout_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			distance_meters REAL NOT NULL,
			duration_seconds REAL NOT NULL,
			PRIMARY KEY (workout_id, seq),
			FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		)`,

		// Races (official results; durations may carry hundredths on track)
		`CREATE TABLE IF NOT EXISTS races (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			distance_token TEXT NOT NULL,
			distance_meters REAL NOT NULL,
			duration_seconds REAL NOT NULL,
			location TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_races_date ON races(date)`,
		`CREATE INDEX IF NOT EXISTS idx_races_category ON races(category)`,

		// Personal bests (one per category + distance token, lower time wins)
		`CREATE TABLE IF NOT EXISTS personal_bests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			distance_token TEXT NOT NULL,
			distance_meters REAL NOT NULL,
			duration_seconds REAL NOT NULL,
			race_id INTEGER NOT NULL,
			achieved_at TEXT NOT NULL,
			UNIQUE (category, distance_token),
			FOREIGN KEY (race_id) REFERENCES races(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_personal_bests_race ON personal_bests(race_id)`,

		// Goals (weekly targets; the latest row per metric is current)
		`CREATE TABLE IF NOT EXISTS goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			metric TEXT NOT NULL,
			target REAL NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Import batches (one row per CSV import run)
		`CREATE TABLE IF NOT EXISTS import_batches (
			id TEXT PRIMARY KEY,
			source_file TEXT NOT NULL,
			imported INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
