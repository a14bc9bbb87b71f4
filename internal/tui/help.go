package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Workouts list"},
		{"3", "Races list"},
		{"4", "Profile"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	listSection := m.renderSection("Workouts and Races", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn", "Next page"},
		{"pgup", "Previous page"},
		{"enter", "Open workout details"},
		{"n", "New entry"},
		{"d", "Delete selected entry"},
		{"r", "Refresh list"},
	})
	sections = append(sections, listSection)

	formSection := m.renderSection("Forms", []keyHelp{
		{"tab / shift+tab", "Move between fields"},
		{"ctrl+s", "Save"},
		{"esc", "Cancel"},
	})
	sections = append(sections, formSection)

	sections = append(sections, m.renderInputHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderInputHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Entering Times and Distances"))
	lines = append(lines, "")

	items := []struct {
		name string
		desc string
	}{
		{"Durations", "MM:SS or HH:MM:SS, e.g. 45:00 or 1:30:00. Track events accept hundredths: 4:12.35."},
		{"Distances", "A standard token (5km, 10000m, half-marathon) or a number: meters on the track, kilometers on the road."},
		{"Lap times", "Comma separated durations; the distance is split evenly across laps."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, item := range items {
		lines = append(lines, "  "+helpKeyStyle.Render(item.name))
		lines = append(lines, "  "+mutedStyle.Render(item.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
