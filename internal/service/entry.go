package service

import (
	"fmt"

	"runmaster/internal/calc"
	"runmaster/internal/store"
)

// EntryService persists validated form submissions. Validation happens in
// the forms via the calc package; by the time values arrive here they are
// canonical seconds and meters.
type EntryService struct {
	store *store.Store
}

// NewEntryService creates an EntryService.
func NewEntryService(s *store.Store) *EntryService {
	return &EntryService{store: s}
}

// SaveWorkout inserts or updates a workout together with its splits.
func (es *EntryService) SaveWorkout(w *store.Workout, splits []store.Split) (int64, error) {
	if w.ID == 0 {
		id, err := es.store.InsertWorkout(w)
		if err != nil {
			return 0, fmt.Errorf("inserting workout: %w", err)
		}
		w.ID = id
	} else {
		if err := es.store.UpdateWorkout(w); err != nil {
			return 0, fmt.Errorf("updating workout: %w", err)
		}
	}

	if splits != nil {
		if err := es.store.SaveSplits(w.ID, splits); err != nil {
			return 0, fmt.Errorf("saving splits: %w", err)
		}
	}
	return w.ID, nil
}

// SaveRace inserts a race result and maintains the personal-best table.
// Returns the race id and whether the race set or improved a personal best.
func (es *EntryService) SaveRace(r *store.Race) (int64, bool, error) {
	id, err := es.store.InsertRace(r)
	if err != nil {
		return 0, false, fmt.Errorf("inserting race: %w", err)
	}
	r.ID = id

	// Custom distances have no token to key a record on.
	if r.DistanceToken == calc.SelectionCustom {
		return id, false, nil
	}

	improved, err := es.store.UpsertPersonalBestIfFaster(&store.PersonalBest{
		Category:        r.Category,
		DistanceToken:   r.DistanceToken,
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
		RaceID:          id,
		AchievedAt:      r.Date,
	})
	if err != nil {
		return 0, false, fmt.Errorf("updating personal best: %w", err)
	}
	return id, improved, nil
}

// DeleteWorkout removes a workout and its splits.
func (es *EntryService) DeleteWorkout(id int64) error {
	return es.store.DeleteWorkout(id)
}

// DeleteRace removes a race and any personal best pointing at it.
func (es *EntryService) DeleteRace(id int64) error {
	return es.store.DeleteRace(id)
}

// SaveProfile stores the athlete profile.
func (es *EntryService) SaveProfile(p *store.Profile) error {
	return es.store.SaveProfile(p)
}

// SetWeeklyDistanceGoal records a new weekly distance target in meters.
func (es *EntryService) SetWeeklyDistanceGoal(meters float64) error {
	return es.store.SetGoal(store.GoalWeeklyDistance, meters)
}
