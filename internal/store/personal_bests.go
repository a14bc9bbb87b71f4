package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetPersonalBest retrieves the personal best for a category + distance token.
func (s *Store) GetPersonalBest(category, distanceToken string) (*PersonalBest, error) {
	row := s.db.QueryRow(`
		SELECT id, category, distance_token, distance_meters, duration_seconds, race_id, achieved_at
		FROM personal_bests
		WHERE category = ? AND distance_token = ?`, category, distanceToken)

	pb, err := scanPersonalBest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonalBestNotFound
	}
	return pb, err
}

// ListPersonalBests returns all personal bests ordered by distance ascending.
func (s *Store) ListPersonalBests() ([]PersonalBest, error) {
	rows, err := s.db.Query(`
		SELECT id, category, distance_token, distance_meters, duration_seconds, race_id, achieved_at
		FROM personal_bests
		ORDER BY distance_meters ASC, category ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bests []PersonalBest
	for rows.Next() {
		pb, err := scanPersonalBest(rows)
		if err != nil {
			return nil, err
		}
		bests = append(bests, *pb)
	}
	return bests, rows.Err()
}

// UpsertPersonalBestIfFaster records pb unless an equal or faster time is
// already stored for the same category + distance token. Returns true when
// the record was inserted or improved.
func (s *Store) UpsertPersonalBestIfFaster(pb *PersonalBest) (bool, error) {
	res, err := s.db.Exec(`
		INSERT INTO personal_bests (category, distance_token, distance_meters, duration_seconds, race_id, achieved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (category, distance_token) DO UPDATE SET
			distance_meters = excluded.distance_meters,
			duration_seconds = excluded.duration_seconds,
			race_id = excluded.race_id,
			achieved_at = excluded.achieved_at
		WHERE excluded.duration_seconds < personal_bests.duration_seconds`,
		pb.Category, pb.DistanceToken, pb.DistanceMeters, pb.DurationSeconds,
		pb.RaceID, pb.AchievedAt.Format(DateLayout))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func scanPersonalBest(row rowScanner) (*PersonalBest, error) {
	var pb PersonalBest
	var achievedAt string
	if err := row.Scan(&pb.ID, &pb.Category, &pb.DistanceToken, &pb.DistanceMeters,
		&pb.DurationSeconds, &pb.RaceID, &achievedAt); err != nil {
		return nil, err
	}
	d, err := time.Parse(DateLayout, achievedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing achieved_at %q: %w", achievedAt, err)
	}
	pb.AchievedAt = d
	return &pb, nil
}
