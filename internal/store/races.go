package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertRace inserts a race result and returns its id.
func (s *Store) InsertRace(r *Race) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO races (date, name, category, distance_token, distance_meters, duration_seconds, location)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Date.Format(DateLayout), r.Name, r.Category, r.DistanceToken,
		r.DistanceMeters, r.DurationSeconds, r.Location)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetRace retrieves a race by id.
func (s *Store) GetRace(id int64) (*Race, error) {
	row := s.db.QueryRow(`
		SELECT id, date, name, category, distance_token, distance_meters, duration_seconds, location
		FROM races WHERE id = ?`, id)

	r, err := scanRace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRaceNotFound
	}
	return r, err
}

// ListRaces returns races ordered by date descending.
func (s *Store) ListRaces(limit, offset int) ([]Race, error) {
	rows, err := s.db.Query(`
		SELECT id, date, name, category, distance_token, distance_meters, duration_seconds, location
		FROM races
		ORDER BY date DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var races []Race
	for rows.Next() {
		r, err := scanRace(rows)
		if err != nil {
			return nil, err
		}
		races = append(races, *r)
	}
	return races, rows.Err()
}

// CountRaces returns the total number of races.
func (s *Store) CountRaces() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM races`).Scan(&n)
	return n, err
}

// DeleteRace removes a race and, via cascade, any personal best pointing at it.
func (s *Store) DeleteRace(id int64) error {
	res, err := s.db.Exec(`DELETE FROM races WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRaceNotFound
	}
	return nil
}

func scanRace(row rowScanner) (*Race, error) {
	var r Race
	var date string
	if err := row.Scan(&r.ID, &date, &r.Name, &r.Category, &r.DistanceToken,
		&r.DistanceMeters, &r.DurationSeconds, &r.Location); err != nil {
		return nil, err
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}
	r.Date = d
	return &r, nil
}
