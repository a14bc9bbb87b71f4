package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertRace(t *testing.T, s *Store, date string, duration float64) int64 {
	t.Helper()
	id, err := s.InsertRace(&Race{
		Date:            day(t, date),
		Name:            "City Half",
		Category:        "road",
		DistanceToken:   "half-marathon",
		DistanceMeters:  21097.5,
		DurationSeconds: duration,
	})
	require.NoError(t, err)
	return id
}

func TestUpsertPersonalBestIfFaster(t *testing.T) {
	s := NewTestStore(t)

	first := insertRace(t, s, "2026-03-01", 5400)
	improved, err := s.UpsertPersonalBestIfFaster(&PersonalBest{
		Category: "road", DistanceToken: "half-marathon",
		DistanceMeters: 21097.5, DurationSeconds: 5400,
		RaceID: first, AchievedAt: day(t, "2026-03-01"),
	})
	require.NoError(t, err)
	assert.True(t, improved, "first result should set the record")

	// A slower race must not displace the record.
	slower := insertRace(t, s, "2026-05-01", 5520)
	improved, err = s.UpsertPersonalBestIfFaster(&PersonalBest{
		Category: "road", DistanceToken: "half-marathon",
		DistanceMeters: 21097.5, DurationSeconds: 5520,
		RaceID: slower, AchievedAt: day(t, "2026-05-01"),
	})
	require.NoError(t, err)
	assert.False(t, improved)

	pb, err := s.GetPersonalBest("road", "half-marathon")
	require.NoError(t, err)
	assert.Equal(t, 5400.0, pb.DurationSeconds)
	assert.Equal(t, first, pb.RaceID)

	// A faster race takes over.
	faster := insertRace(t, s, "2026-08-01", 5280)
	improved, err = s.UpsertPersonalBestIfFaster(&PersonalBest{
		Category: "road", DistanceToken: "half-marathon",
		DistanceMeters: 21097.5, DurationSeconds: 5280,
		RaceID: faster, AchievedAt: day(t, "2026-08-01"),
	})
	require.NoError(t, err)
	assert.True(t, improved)

	pb, err = s.GetPersonalBest("road", "half-marathon")
	require.NoError(t, err)
	assert.Equal(t, 5280.0, pb.DurationSeconds)
	assert.Equal(t, "2026-08-01", pb.AchievedAt.Format(DateLayout))
}

func TestPersonalBestNotFound(t *testing.T) {
	s := NewTestStore(t)
	_, err := s.GetPersonalBest("road", "full-marathon")
	assert.ErrorIs(t, err, ErrPersonalBestNotFound)
}

func TestPersonalBestCascadeOnRaceDelete(t *testing.T) {
	s := NewTestStore(t)

	raceID := insertRace(t, s, "2026-03-01", 5400)
	_, err := s.UpsertPersonalBestIfFaster(&PersonalBest{
		Category: "road", DistanceToken: "half-marathon",
		DistanceMeters: 21097.5, DurationSeconds: 5400,
		RaceID: raceID, AchievedAt: day(t, "2026-03-01"),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteRace(raceID))
	_, err = s.GetPersonalBest("road", "half-marathon")
	assert.ErrorIs(t, err, ErrPersonalBestNotFound)
}

func TestListPersonalBestsOrdered(t *testing.T) {
	s := NewTestStore(t)

	half := insertRace(t, s, "2026-03-01", 5400)
	_, err := s.UpsertPersonalBestIfFaster(&PersonalBest{
		Category: "road", DistanceToken: "half-marathon",
		DistanceMeters: 21097.5, DurationSeconds: 5400,
		RaceID: half, AchievedAt: day(t, "2026-03-01"),
	})
	require.NoError(t, err)

	fiveK, err := s.InsertRace(&Race{
		Date: day(t, "2026-04-01"), Name: "Parkrun", Category: "road",
		DistanceToken: "5km", DistanceMeters: 5000, DurationSeconds: 1180,
	})
	require.NoError(t, err)
	_, err = s.UpsertPersonalBestIfFaster(&PersonalBest{
		Category: "road", DistanceToken: "5km",
		DistanceMeters: 5000, DurationSeconds: 1180,
		RaceID: fiveK, AchievedAt: day(t, "2026-04-01"),
	})
	require.NoError(t, err)

	bests, err := s.ListPersonalBests()
	require.NoError(t, err)
	require.Len(t, bests, 2)
	assert.Equal(t, "5km", bests[0].DistanceToken)
	assert.Equal(t, "half-marathon", bests[1].DistanceToken)
}
