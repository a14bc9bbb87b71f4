package tui

import (
	"fmt"
	"strings"

	"runmaster/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// WorkoutDetailModel is the workout detail screen model
type WorkoutDetailModel struct {
	queryService *service.QueryService
	units        Units
	workoutID    int64
	detail       *service.WorkoutDetail
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewWorkoutDetailModel creates a new workout detail model
func NewWorkoutDetailModel(qs *service.QueryService, units Units, workoutID int64, width, height int) WorkoutDetailModel {
	m := WorkoutDetailModel{
		queryService: qs,
		units:        units,
		workoutID:    workoutID,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the workout detail screen
func (m WorkoutDetailModel) Init() tea.Cmd {
	return m.loadDetail
}

type workoutDetailLoadedMsg struct {
	detail *service.WorkoutDetail
	err    error
}

func (m WorkoutDetailModel) loadDetail() tea.Msg {
	detail, err := m.queryService.GetWorkoutDetail(m.workoutID)
	if err != nil {
		return workoutDetailLoadedMsg{err: err}
	}
	return workoutDetailLoadedMsg{detail: detail}
}

// Update handles messages
func (m WorkoutDetailModel) Update(msg tea.Msg) (WorkoutDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutDetailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.detail = msg.detail
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.detail != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadDetail
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the workout detail screen
func (m WorkoutDetailModel) View() string {
	if m.loading {
		return "\n  Loading workout..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to list  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m WorkoutDetailModel) renderContent() string {
	if m.detail == nil {
		return "No data"
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if len(m.detail.Splits) > 0 {
		sections = append(sections, m.renderSplits())
	}

	if len(m.detail.Anomalies) > 0 {
		sections = append(sections, m.renderAnomalies())
	}

	if len(m.detail.PaceSeries) > 2 {
		sections = append(sections, m.renderLapChart())
	}

	if m.detail.Workout.Notes != "" {
		sections = append(sections, m.renderNotes())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m WorkoutDetailModel) renderHeader() string {
	w := m.detail.Workout
	title := cardTitleStyle.Render(w.Name)

	date := w.Date.Format("Monday, January 2, 2006")
	subtitle := lipgloss.NewStyle().Foreground(mutedColor).Render(date + "  (" + w.Category + ")")

	stats := fmt.Sprintf("%s  •  %s  •  %s",
		m.units.FormatDistance(w.DistanceMeters),
		m.units.FormatDuration(w.DurationSeconds, w.Category),
		m.units.FormatPaceWithUnit(w.DurationSeconds, w.DistanceMeters))
	statsLine := lipgloss.NewStyle().Foreground(textColor).Bold(true).Render(stats)

	return lipgloss.JoinVertical(lipgloss.Left, "", title, subtitle, statsLine, "")
}

func (m WorkoutDetailModel) renderSplits() string {
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Laps"))

	header := fmt.Sprintf("  %-4s  %9s  %10s  %9s", "Lap", "Distance", "Time", "Pace")
	lines = append(lines, lipgloss.NewStyle().Foreground(primaryColor).Render(header))

	// Find fastest clean lap for highlighting
	flagged := make(map[int]bool, len(m.detail.Anomalies))
	for _, a := range m.detail.Anomalies {
		flagged[a.Seq] = true
	}
	fastest := 0
	var fastestPace float64
	for _, sp := range m.detail.Splits {
		if flagged[sp.Seq] || sp.DistanceMeters <= 0 || sp.DurationSeconds <= 0 {
			continue
		}
		pace := sp.DurationSeconds / sp.DistanceMeters
		if fastest == 0 || pace < fastestPace {
			fastest = sp.Seq
			fastestPace = pace
		}
	}

	for _, sp := range m.detail.Splits {
		row := fmt.Sprintf("  %-4d  %9s  %10s  %9s",
			sp.Seq,
			m.units.FormatDistance(sp.DistanceMeters),
			m.units.FormatDuration(sp.DurationSeconds, m.detail.Workout.Category),
			m.units.FormatPace(sp.DurationSeconds, sp.DistanceMeters),
		)

		switch {
		case flagged[sp.Seq]:
			lines = append(lines, warningStyle.Render(row+"  ⚠"))
		case sp.Seq == fastest:
			lines = append(lines, lipgloss.NewStyle().Foreground(secondaryColor).Bold(true).Render(row))
		default:
			lines = append(lines, row)
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderAnomalies() string {
	var lines []string

	lines = append(lines, warningStyle.Bold(true).Render("Flagged Laps"))
	for _, a := range m.detail.Anomalies {
		lines = append(lines, fmt.Sprintf("  Lap %d: %s", a.Seq, a.Reason))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderLapChart() string {
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(fmt.Sprintf("Lap Pace (%s)", m.units.PaceLabel())))

	chart := asciigraph.Plot(m.units.ConvertPaceSeries(m.detail.PaceSeries),
		asciigraph.Height(8),
		asciigraph.Width(50),
		asciigraph.Precision(2),
	)
	lines = append(lines, chart, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderNotes() string {
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Notes"))
	lines = append(lines, "  "+m.detail.Workout.Notes, "")
	return strings.Join(lines, "\n")
}
