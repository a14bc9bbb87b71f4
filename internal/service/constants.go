package service

const (
	// Dashboard limits
	RecentWorkoutsLimit = 10

	// Dashboard pace chart: most recent workouts plotted, oldest first
	PaceChartWorkouts = 20

	SecondsPerMinute = 60
)
