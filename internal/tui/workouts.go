package tui

import (
	"fmt"

	"runmaster/internal/service"
	"runmaster/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WorkoutsModel is the workouts list screen model
type WorkoutsModel struct {
	queryService *service.QueryService
	entryService *service.EntryService
	units        Units
	workouts     []store.Workout
	cursor       int
	offset       int
	total        int
	pageSize     int
	loading      bool
	confirmDel   bool
	err          error
}

// NewWorkoutsModel creates a new workouts list model
func NewWorkoutsModel(qs *service.QueryService, es *service.EntryService, units Units) WorkoutsModel {
	return WorkoutsModel{
		queryService: qs,
		entryService: es,
		units:        units,
		pageSize:     15,
		loading:      true,
	}
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return m.loadPage
}

type workoutsLoadedMsg struct {
	workouts []store.Workout
	total    int
	err      error
}

type workoutDeletedMsg struct {
	err error
}

func (m WorkoutsModel) loadPage() tea.Msg {
	workouts, err := m.queryService.ListWorkouts(m.pageSize, m.offset)
	if err != nil {
		return workoutsLoadedMsg{err: err}
	}

	total, err := m.queryService.CountWorkouts()
	if err != nil {
		return workoutsLoadedMsg{err: err}
	}

	return workoutsLoadedMsg{workouts: workouts, total: total}
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (WorkoutsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.workouts = msg.workouts
		m.total = msg.total
		if m.cursor >= len(m.workouts) && m.cursor > 0 {
			m.cursor = len(m.workouts) - 1
		}

	case workoutDeletedMsg:
		m.err = msg.err
		m.loading = true
		return m, m.loadPage

	case tea.KeyMsg:
		if m.confirmDel {
			switch msg.String() {
			case "y":
				m.confirmDel = false
				if len(m.workouts) > 0 && m.cursor < len(m.workouts) {
					id := m.workouts[m.cursor].ID
					return m, func() tea.Msg {
						return workoutDeletedMsg{err: m.entryService.DeleteWorkout(id)}
					}
				}
			default:
				m.confirmDel = false
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				// Go to previous page
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadPage
			}
		case "down", "j":
			if m.cursor < len(m.workouts)-1 {
				m.cursor++
			} else if m.offset+len(m.workouts) < m.total {
				// Go to next page
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		case "n":
			return m, func() tea.Msg { return OpenWorkoutFormMsg{} }
		case "d":
			if len(m.workouts) > 0 {
				m.confirmDel = true
			}
		case "enter":
			if len(m.workouts) > 0 && m.cursor < len(m.workouts) {
				workoutID := m.workouts[m.cursor].ID
				return m, func() tea.Msg {
					return OpenWorkoutDetailMsg{WorkoutID: workoutID}
				}
			}
		}
	}
	return m, nil
}

// View renders the workouts list
func (m WorkoutsModel) View() string {
	if m.loading {
		return "\n  Loading workouts..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.workouts) == 0 {
		return "\n  No workouts yet. Press 'n' to log one or run 'runmaster import' with a CSV file."
	}

	var sections []string

	startNum := m.offset + 1
	endNum := m.offset + len(m.workouts)
	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d-%d of %d)", startNum, endNum, m.total))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %-25s  %-6s  %9s  %10s  %9s",
		"Date", "Name", "Cat", "Distance", "Time", "Pace"))
	sections = append(sections, header)

	for i, w := range m.workouts {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-10s  %-25s  %-6s  %9s  %10s  %9s",
			cursor,
			w.Date.Format(store.DateLayout),
			truncateName(w.Name, 25),
			w.Category,
			m.units.FormatDistance(w.DistanceMeters),
			m.units.FormatDuration(w.DurationSeconds, w.Category),
			m.units.FormatPace(w.DurationSeconds, w.DistanceMeters),
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	if m.confirmDel {
		sections = append(sections, warningStyle.Render("\n  Delete this workout and its laps? (y/n)"))
	} else {
		help := statusStyle.Render("\n  enter: details  n: new  d: delete  j/k: navigate  pgup/pgdn: page  r: refresh")
		sections = append(sections, help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
