package service

import (
	"errors"
	"fmt"
	"time"

	"runmaster/internal/analysis"
	"runmaster/internal/calc"
	"runmaster/internal/store"
)

// QueryService answers the read queries behind every screen.
type QueryService struct {
	store *store.Store
}

// NewQueryService creates a QueryService.
func NewQueryService(s *store.Store) *QueryService {
	return &QueryService{store: s}
}

// DashboardData aggregates everything the dashboard renders.
type DashboardData struct {
	WeekTotals       store.WorkoutTotals
	GoalTargetMeters float64 // 0 when no weekly distance goal is set
	GoalPct          float64 // calc.Percentage of the weekly distance goal
	RecentWorkouts   []store.Workout
	PaceHistory      []float64 // min/km per workout, oldest first, for the chart
	PersonalBests    []store.PersonalBest
	Predictions      []analysis.Prediction // from the shortest-distance road PB
}

// GetDashboardData computes the dashboard aggregates as of now.
func (qs *QueryService) GetDashboardData(now time.Time) (*DashboardData, error) {
	data := &DashboardData{}

	totals, err := qs.store.TotalsSince(WeekStart(now))
	if err != nil {
		return nil, fmt.Errorf("summing week totals: %w", err)
	}
	data.WeekTotals = *totals

	goal, err := qs.store.GetGoal(store.GoalWeeklyDistance)
	if err != nil && !errors.Is(err, store.ErrGoalNotFound) {
		return nil, fmt.Errorf("loading weekly goal: %w", err)
	}
	if goal != nil {
		data.GoalTargetMeters = goal.Target
		data.GoalPct = calc.Percentage(totals.DistanceMeters, goal.Target)
	}

	recent, err := qs.store.ListWorkouts(RecentWorkoutsLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("listing recent workouts: %w", err)
	}
	data.RecentWorkouts = recent

	history, err := qs.store.ListWorkouts(PaceChartWorkouts, 0)
	if err != nil {
		return nil, fmt.Errorf("listing workouts for chart: %w", err)
	}
	// Chart runs oldest to newest, left to right.
	for i := len(history) - 1; i >= 0; i-- {
		w := history[i]
		if pace, ok := calc.Pace(w.DurationSeconds, w.DistanceMeters); ok {
			data.PaceHistory = append(data.PaceHistory, pace/SecondsPerMinute)
		}
	}

	bests, err := qs.store.ListPersonalBests()
	if err != nil {
		return nil, fmt.Errorf("listing personal bests: %w", err)
	}
	data.PersonalBests = bests

	// Predict from the shortest road PB: short records are the most recent
	// all-out efforts for most runners and extrapolate upward cleanly.
	for _, pb := range bests {
		if pb.Category == string(calc.CategoryRoad) {
			data.Predictions = analysis.PredictStandardTimes(pb.DistanceMeters, pb.DurationSeconds)
			break
		}
	}

	return data, nil
}

// WorkoutDetail is a workout with its splits and flagged anomalies.
type WorkoutDetail struct {
	Workout    store.Workout
	Splits     []store.Split
	Anomalies  []analysis.LapAnomaly
	PaceSeries []float64 // min/km per lap, for the detail chart
}

// GetWorkoutDetail loads one workout with splits and anomaly flags.
func (qs *QueryService) GetWorkoutDetail(id int64) (*WorkoutDetail, error) {
	w, err := qs.store.GetWorkout(id)
	if err != nil {
		return nil, err
	}
	splits, err := qs.store.GetSplits(id)
	if err != nil {
		return nil, fmt.Errorf("loading splits: %w", err)
	}

	detail := &WorkoutDetail{
		Workout:   *w,
		Splits:    splits,
		Anomalies: analysis.DetectLapAnomalies(splits),
	}
	for _, sp := range splits {
		if pace, ok := calc.Pace(sp.DurationSeconds, sp.DistanceMeters); ok {
			detail.PaceSeries = append(detail.PaceSeries, pace/SecondsPerMinute)
		}
	}
	return detail, nil
}

// ListWorkouts pages through workouts, newest first.
func (qs *QueryService) ListWorkouts(limit, offset int) ([]store.Workout, error) {
	return qs.store.ListWorkouts(limit, offset)
}

// CountWorkouts returns the total workout count for pagination.
func (qs *QueryService) CountWorkouts() (int, error) {
	return qs.store.CountWorkouts()
}

// ListRaces pages through races, newest first.
func (qs *QueryService) ListRaces(limit, offset int) ([]store.Race, error) {
	return qs.store.ListRaces(limit, offset)
}

// CountRaces returns the total race count for pagination.
func (qs *QueryService) CountRaces() (int, error) {
	return qs.store.CountRaces()
}

// ProfileView is the profile with its derived metrics. Derived fields are
// nil when their inputs are missing, never zero.
type ProfileView struct {
	Profile  store.Profile
	BMI      *float64
	BMIClass calc.BMIClass
	Age      *int
}

// GetProfileView loads the profile and computes BMI and age as of asOf.
// Returns store.ErrNoProfile when none has been saved.
func (qs *QueryService) GetProfileView(asOf time.Time) (*ProfileView, error) {
	p, err := qs.store.GetProfile()
	if err != nil {
		return nil, err
	}

	view := &ProfileView{Profile: *p}

	if p.WeightKg != nil && p.HeightCm != nil {
		if bmi, ok := calc.BMI(*p.WeightKg, *p.HeightCm); ok {
			view.BMI = &bmi
			view.BMIClass = calc.ClassifyBMI(bmi)
		}
	}

	if p.BirthDate != nil {
		age, err := calc.Age(*p.BirthDate, asOf)
		if err == nil {
			view.Age = &age
		}
	}

	return view, nil
}

// WeekStart returns the Monday of now's week at midnight.
func WeekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := int(midnight.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return midnight.AddDate(0, 0, -offset)
}
