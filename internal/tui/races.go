package tui

import (
	"fmt"

	"runmaster/internal/service"
	"runmaster/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RacesModel is the races list screen model
type RacesModel struct {
	queryService *service.QueryService
	entryService *service.EntryService
	units        Units
	races        []store.Race
	cursor       int
	offset       int
	total        int
	pageSize     int
	loading      bool
	confirmDel   bool
	err          error
}

// NewRacesModel creates a new races list model
func NewRacesModel(qs *service.QueryService, es *service.EntryService, units Units) RacesModel {
	return RacesModel{
		queryService: qs,
		entryService: es,
		units:        units,
		pageSize:     15,
		loading:      true,
	}
}

// Init initializes the races screen
func (m RacesModel) Init() tea.Cmd {
	return m.loadPage
}

type racesLoadedMsg struct {
	races []store.Race
	total int
	err   error
}

type raceDeletedMsg struct {
	err error
}

func (m RacesModel) loadPage() tea.Msg {
	races, err := m.queryService.ListRaces(m.pageSize, m.offset)
	if err != nil {
		return racesLoadedMsg{err: err}
	}

	total, err := m.queryService.CountRaces()
	if err != nil {
		return racesLoadedMsg{err: err}
	}

	return racesLoadedMsg{races: races, total: total}
}

// Update handles messages
func (m RacesModel) Update(msg tea.Msg) (RacesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case racesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.races = msg.races
		m.total = msg.total
		if m.cursor >= len(m.races) && m.cursor > 0 {
			m.cursor = len(m.races) - 1
		}

	case raceDeletedMsg:
		m.err = msg.err
		m.loading = true
		return m, m.loadPage

	case tea.KeyMsg:
		if m.confirmDel {
			switch msg.String() {
			case "y":
				m.confirmDel = false
				if len(m.races) > 0 && m.cursor < len(m.races) {
					id := m.races[m.cursor].ID
					return m, func() tea.Msg {
						return raceDeletedMsg{err: m.entryService.DeleteRace(id)}
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
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadPage
			}
		case "down", "j":
			if m.cursor < len(m.races)-1 {
				m.cursor++
			} else if m.offset+len(m.races) < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		case "n":
			return m, func() tea.Msg { return OpenRaceFormMsg{} }
		case "d":
			if len(m.races) > 0 {
				m.confirmDel = true
			}
		}
	}
	return m, nil
}

// View renders the races list
func (m RacesModel) View() string {
	if m.loading {
		return "\n  Loading races..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.races) == 0 {
		return "\n  No races yet. Press 'n' to record one."
	}

	var sections []string

	startNum := m.offset + 1
	endNum := m.offset + len(m.races)
	title := cardTitleStyle.Render(fmt.Sprintf("Races (%d-%d of %d)", startNum, endNum, m.total))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %-25s  %-6s  %-14s  %10s  %9s",
		"Date", "Name", "Cat", "Distance", "Time", "Pace"))
	sections = append(sections, header)

	for i, r := range m.races {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		dist := r.DistanceToken
		if dist == "custom" {
			dist = m.units.FormatDistance(r.DistanceMeters)
		}

		row := fmt.Sprintf("%s%-10s  %-25s  %-6s  %-14s  %10s  %9s",
			cursor,
			r.Date.Format(store.DateLayout),
			truncateName(r.Name, 25),
			r.Category,
			dist,
			m.units.FormatDuration(r.DurationSeconds, r.Category),
			m.units.FormatPace(r.DurationSeconds, r.DistanceMeters),
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	if m.confirmDel {
		sections = append(sections, warningStyle.Render("\n  Delete this race? A personal best set by it goes too. (y/n)"))
	} else {
		help := statusStyle.Render("\n  n: new  d: delete  j/k: navigate  r: refresh")
		sections = append(sections, help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
