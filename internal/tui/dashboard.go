package tui

import (
	"fmt"

	"runmaster/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, units Units) DashboardModel {
	return DashboardModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData(nowFunc())
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	var sections []string

	// Top row: This Week and Personal Bests side by side
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderWeekCard(), "  ", m.renderBestsCard())
	sections = append(sections, topRow)

	if len(m.data.PaceHistory) > 2 {
		sections = append(sections, m.renderPaceChart())
	}

	sections = append(sections, m.renderRecentWorkouts())

	if len(m.data.Predictions) > 0 {
		sections = append(sections, m.renderPredictions())
	}

	help := statusStyle.Render("Press 'r' to refresh, '2' for workouts, '3' for races")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")

	lines := []string{
		RenderMetric("Runs", fmt.Sprintf("%d", m.data.WeekTotals.Count)),
		RenderMetric("Distance", m.units.FormatDistance(m.data.WeekTotals.DistanceMeters)),
		RenderMetric("Time", formatElapsed(m.data.WeekTotals.DurationSeconds)),
	}

	if m.data.GoalTargetMeters > 0 {
		lines = append(lines,
			RenderMetric("Goal", m.units.FormatDistance(m.data.GoalTargetMeters)),
			"",
			fmt.Sprintf("%s %3.0f%%", RenderProgressBar(m.data.GoalPct, 20), m.data.GoalPct),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderBestsCard() string {
	title := cardTitleStyle.Render("Personal Bests")

	if len(m.data.PersonalBests) == 0 {
		return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No races recorded yet"))
	}

	var lines []string
	for i, pb := range m.data.PersonalBests {
		if i >= 5 {
			break
		}
		lines = append(lines, RenderMetric(pb.DistanceToken, m.units.FormatDuration(pb.DurationSeconds, pb.Category)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderPaceChart() string {
	title := cardTitleStyle.Render("Pace - Recent Workouts (" + m.units.PaceLabel() + ")")

	graph := asciigraph.Plot(m.units.ConvertPaceSeries(m.data.PaceHistory),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderRecentWorkouts() string {
	title := cardTitleStyle.Render("Recent Workouts")

	if len(m.data.RecentWorkouts) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No workouts yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-14s  %-20s  %-6s  %9s  %8s  %9s",
		"When", "Name", "Cat", "Distance", "Time", "Pace"))

	rows := []string{header}
	for i, w := range m.data.RecentWorkouts {
		if i >= 5 {
			break
		}
		row := tableRowStyle.Render(fmt.Sprintf("%-14s  %-20s  %-6s  %9s  %8s  %9s",
			humanize.Time(w.Date),
			truncateName(w.Name, 20),
			w.Category,
			m.units.FormatDistance(w.DistanceMeters),
			m.units.FormatDuration(w.DurationSeconds, w.Category),
			m.units.FormatPace(w.DurationSeconds, w.DistanceMeters),
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m DashboardModel) renderPredictions() string {
	title := cardTitleStyle.Render("Race Predictions")

	var lines []string
	for _, p := range m.data.Predictions {
		lines = append(lines, RenderMetric(p.Token,
			fmt.Sprintf("%-9s  %s", m.units.FormatDuration(p.Seconds, "road"), helpDescStyle.Render(p.Confidence))))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func formatElapsed(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	min := (total % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, min)
	}
	return fmt.Sprintf("%dm", min)
}
