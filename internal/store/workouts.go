package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertWorkout inserts a workout and returns its id.
func (s *Store) InsertWorkout(w *Workout) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO workouts (date, name, category, distance_meters, duration_seconds, notes, import_batch)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.Date.Format(DateLayout), w.Name, w.Category,
		w.DistanceMeters, w.DurationSeconds, w.Notes, w.ImportBatch)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateWorkout replaces the mutable fields of an existing workout.
func (s *Store) UpdateWorkout(w *Workout) error {
	res, err := s.db.Exec(`
		UPDATE workouts
		SET date = ?, name = ?, category = ?, distance_meters = ?,
			duration_seconds = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		w.Date.Format(DateLayout), w.Name, w.Category,
		w.DistanceMeters, w.DurationSeconds, w.Notes, w.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// GetWorkout retrieves a workout by id.
func (s *Store) GetWorkout(id int64) (*Workout, error) {
	row := s.db.QueryRow(`
		SELECT id, date, name, category, distance_meters, duration_seconds, notes, import_batch
		FROM workouts WHERE id = ?`, id)

	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	return w, err
}

// ListWorkouts returns workouts ordered by date descending.
func (s *Store) ListWorkouts(limit, offset int) ([]Workout, error) {
	rows, err := s.db.Query(`
		SELECT id, date, name, category, distance_meters, duration_seconds, notes, import_batch
		FROM workouts
		ORDER BY date DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWorkouts(rows)
}

// ListWorkoutsSince returns workouts on or after the given date, oldest first.
func (s *Store) ListWorkoutsSince(since time.Time) ([]Workout, error) {
	rows, err := s.db.Query(`
		SELECT id, date, name, category, distance_meters, duration_seconds, notes, import_batch
		FROM workouts
		WHERE date >= ?
		ORDER BY date ASC, id ASC`, since.Format(DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWorkouts(rows)
}

// CountWorkouts returns the total number of workouts.
func (s *Store) CountWorkouts() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM workouts`).Scan(&n)
	return n, err
}

// DeleteWorkout removes a workout and, via cascade, its splits.
func (s *Store) DeleteWorkout(id int64) error {
	res, err := s.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// WorkoutTotals holds summed distance and duration over a date range.
type WorkoutTotals struct {
	Count           int
	DistanceMeters  float64
	DurationSeconds float64
}

// TotalsSince sums workout distance and duration on or after the given date.
func (s *Store) TotalsSince(since time.Time) (*WorkoutTotals, error) {
	row := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(distance_meters), 0), COALESCE(SUM(duration_seconds), 0)
		FROM workouts
		WHERE date >= ?`, since.Format(DateLayout))

	var t WorkoutTotals
	if err := row.Scan(&t.Count, &t.DistanceMeters, &t.DurationSeconds); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveSplits replaces all splits for a workout.
func (s *Store) SaveSplits(workoutID int64, splits []Split) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM splits WHERE workout_id = ?`, workoutID); err != nil {
		return fmt.Errorf("deleting existing splits: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO splits (workout_id, seq, distance_meters, duration_seconds)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, sp := range splits {
		if _, err := stmt.Exec(workoutID, i+1, sp.DistanceMeters, sp.DurationSeconds); err != nil {
			return fmt.Errorf("inserting split %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetSplits returns a workout's splits ordered by sequence.
func (s *Store) GetSplits(workoutID int64) ([]Split, error) {
	rows, err := s.db.Query(`
		SELECT workout_id, seq, distance_meters, duration_seconds
		FROM splits
		WHERE workout_id = ?
		ORDER BY seq`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var splits []Split
	for rows.Next() {
		var sp Split
		if err := rows.Scan(&sp.WorkoutID, &sp.Seq, &sp.DistanceMeters, &sp.DurationSeconds); err != nil {
			return nil, err
		}
		splits = append(splits, sp)
	}
	return splits, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (*Workout, error) {
	var w Workout
	var date string
	if err := row.Scan(&w.ID, &date, &w.Name, &w.Category,
		&w.DistanceMeters, &w.DurationSeconds, &w.Notes, &w.ImportBatch); err != nil {
		return nil, err
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}
	w.Date = d
	return &w, nil
}

func collectWorkouts(rows *sql.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	return workouts, rows.Err()
}
