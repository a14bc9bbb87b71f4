package store

import (
	"database/sql"
	"errors"
)

// SetGoal records a new target for a metric. The most recent row wins.
func (s *Store) SetGoal(metric string, target float64) error {
	_, err := s.db.Exec(`INSERT INTO goals (metric, target) VALUES (?, ?)`, metric, target)
	return err
}

// GetGoal returns the current target for a metric.
func (s *Store) GetGoal(metric string) (*Goal, error) {
	row := s.db.QueryRow(`
		SELECT id, metric, target
		FROM goals
		WHERE metric = ?
		ORDER BY id DESC
		LIMIT 1`, metric)

	var g Goal
	err := row.Scan(&g.ID, &g.Metric, &g.Target)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// RecordImportBatch stores the outcome of a CSV import run.
func (s *Store) RecordImportBatch(b *ImportBatch) error {
	_, err := s.db.Exec(`
		INSERT INTO import_batches (id, source_file, imported, skipped)
		VALUES (?, ?, ?, ?)`,
		b.ID, b.SourceFile, b.Imported, b.Skipped)
	return err
}
