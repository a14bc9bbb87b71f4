package tui

import (
	"runmaster/internal/config"
	"runmaster/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenWorkouts
	ScreenRaces
	ScreenProfile
	ScreenHelp
	ScreenWorkoutDetail
	ScreenWorkoutForm
	ScreenRaceForm
)

// OpenWorkoutDetailMsg asks the app to open the detail screen for a workout
type OpenWorkoutDetailMsg struct {
	WorkoutID int64
}

// OpenWorkoutFormMsg asks the app to open the new-workout form
type OpenWorkoutFormMsg struct{}

// OpenRaceFormMsg asks the app to open the new-race form
type OpenRaceFormMsg struct{}

// FormClosedMsg is sent when a form screen finishes
type FormClosedMsg struct {
	Saved  bool
	Status string
}

// BackMsg returns to the previous list screen
type BackMsg struct{}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard   DashboardModel
	workouts    WorkoutsModel
	races       RacesModel
	profile     ProfileModel
	help        HelpModel
	detail      WorkoutDetailModel
	workoutForm WorkoutFormModel
	raceForm    RaceFormModel

	// Services
	query *service.QueryService
	entry *service.EntryService
	units Units

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(query *service.QueryService, entry *service.EntryService, display config.DisplayConfig) *App {
	units := NewUnits(display)
	return &App{
		screen:    ScreenDashboard,
		query:     query,
		entry:     entry,
		units:     units,
		dashboard: NewDashboardModel(query, units),
		workouts:  NewWorkoutsModel(query, entry, units),
		races:     NewRacesModel(query, entry, units),
		profile:   NewProfileModel(query, entry),
		help:      NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// typing reports whether the current screen owns the keyboard, so global
// navigation keys must not fire.
func (a *App) typing() bool {
	switch a.screen {
	case ScreenWorkoutForm, ScreenRaceForm:
		return true
	case ScreenProfile:
		return a.profile.editing
	}
	return false
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.typing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				a.status = ""
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenWorkouts
				a.status = ""
				return a, a.workouts.Init()
			case "3":
				a.screen = ScreenRaces
				a.status = ""
				return a, a.races.Init()
			case "4":
				a.screen = ScreenProfile
				a.status = ""
				return a, a.profile.Init()
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				switch a.screen {
				case ScreenHelp:
					a.screen = a.prevScreen
					return a, nil
				case ScreenWorkoutDetail:
					a.screen = ScreenWorkouts
					return a, a.workouts.Init()
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenWorkoutDetailMsg:
		a.screen = ScreenWorkoutDetail
		a.detail = NewWorkoutDetailModel(a.query, a.units, msg.WorkoutID, a.width, a.height)
		return a, a.detail.Init()

	case OpenWorkoutFormMsg:
		a.screen = ScreenWorkoutForm
		a.workoutForm = NewWorkoutFormModel(a.entry)
		return a, a.workoutForm.Init()

	case OpenRaceFormMsg:
		a.screen = ScreenRaceForm
		a.raceForm = NewRaceFormModel(a.entry)
		return a, a.raceForm.Init()

	case FormClosedMsg:
		a.status = msg.Status
		switch a.screen {
		case ScreenRaceForm:
			a.screen = ScreenRaces
			return a, a.races.Init()
		default:
			a.screen = ScreenWorkouts
			return a, a.workouts.Init()
		}

	case BackMsg:
		a.screen = ScreenWorkouts
		return a, a.workouts.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case ScreenWorkouts:
		a.workouts, cmd = a.workouts.Update(msg)
	case ScreenRaces:
		a.races, cmd = a.races.Update(msg)
	case ScreenProfile:
		a.profile, cmd = a.profile.Update(msg)
	case ScreenHelp:
		a.help, cmd = a.help.Update(msg)
	case ScreenWorkoutDetail:
		a.detail, cmd = a.detail.Update(msg)
	case ScreenWorkoutForm:
		a.workoutForm, cmd = a.workoutForm.Update(msg)
	case ScreenRaceForm:
		a.raceForm, cmd = a.raceForm.Update(msg)
	}
	return a, cmd
}

// View renders the app
func (a *App) View() string {
	var body string
	switch a.screen {
	case ScreenDashboard:
		body = a.dashboard.View()
	case ScreenWorkouts:
		body = a.workouts.View()
	case ScreenRaces:
		body = a.races.View()
	case ScreenProfile:
		body = a.profile.View()
	case ScreenHelp:
		body = a.help.View()
	case ScreenWorkoutDetail:
		body = a.detail.View()
	case ScreenWorkoutForm:
		body = a.workoutForm.View()
	case ScreenRaceForm:
		body = a.raceForm.View()
	}

	sections := []string{a.renderNav(), body}
	if a.status != "" {
		sections = append(sections, successStyle.Render("  "+a.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderNav() string {
	items := []struct {
		screen Screen
		label  string
	}{
		{ScreenDashboard, "1 Dashboard"},
		{ScreenWorkouts, "2 Workouts"},
		{ScreenRaces, "3 Races"},
		{ScreenProfile, "4 Profile"},
		{ScreenHelp, "? Help"},
	}

	nav := "  "
	for i, item := range items {
		if i > 0 {
			nav += "  |  "
		}
		if item.screen == a.screen {
			nav += navActiveStyle.Render(item.label)
		} else {
			nav += navInactiveStyle.Render(item.label)
		}
	}
	return titleStyle.Render("  RunMaster") + "\n" + nav + "\n"
}
