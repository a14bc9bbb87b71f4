package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetProfile retrieves the athlete profile.
func (s *Store) GetProfile() (*Profile, error) {
	row := s.db.QueryRow(`
		SELECT name, birth_date, height_cm, weight_kg, resting_hr, max_hr
		FROM profile WHERE id = 1`)

	var p Profile
	var birthDate *string
	err := row.Scan(&p.Name, &birthDate, &p.HeightCm, &p.WeightKg, &p.RestingHR, &p.MaxHR)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	if birthDate != nil {
		d, err := time.Parse(DateLayout, *birthDate)
		if err != nil {
			return nil, fmt.Errorf("parsing birth_date %q: %w", *birthDate, err)
		}
		p.BirthDate = &d
	}
	return &p, nil
}

// SaveProfile stores or replaces the athlete profile.
func (s *Store) SaveProfile(p *Profile) error {
	var birthDate *string
	if p.BirthDate != nil {
		d := p.BirthDate.Format(DateLayout)
		birthDate = &d
	}

	_, err := s.db.Exec(`
		INSERT INTO profile (id, name, birth_date, height_cm, weight_kg, resting_hr, max_hr)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			resting_hr = excluded.resting_hr,
			max_hr = excluded.max_hr,
			updated_at = CURRENT_TIMESTAMP`,
		p.Name, birthDate, p.HeightCm, p.WeightKg, p.RestingHR, p.MaxHR)
	return err
}
