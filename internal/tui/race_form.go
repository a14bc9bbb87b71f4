package tui

import (
	"fmt"
	"strings"
	"time"

	"runmaster/internal/calc"
	"runmaster/internal/service"
	"runmaster/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Race form field indexes
const (
	rfDate = iota
	rfName
	rfCategory
	rfDistance
	rfTime
	rfLocation
	rfFieldCount
)

// RaceFormModel is the new-race entry form
type RaceFormModel struct {
	entryService *service.EntryService
	inputs       []textinput.Model
	fieldErrs    []string
	focus        int
	saveErr      string
}

// NewRaceFormModel creates an empty race form
func NewRaceFormModel(es *service.EntryService) RaceFormModel {
	m := RaceFormModel{
		entryService: es,
		inputs:       make([]textinput.Model, rfFieldCount),
		fieldErrs:    make([]string, rfFieldCount),
	}

	placeholders := []string{
		time.Now().Format(store.DateLayout),
		"City Half Marathon",
		"road, track or relay",
		"5km, half-marathon, 1500m or a number",
		"21:30 or 1:45:00 (track allows .hh)",
		"optional location",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 80
		in.Width = 44
		m.inputs[i] = in
	}
	m.inputs[rfDate].SetValue(time.Now().Format(store.DateLayout))
	m.inputs[rfCategory].SetValue(string(calc.CategoryRoad))
	m.inputs[rfDate].Focus()
	return m
}

// Init initializes the form
func (m RaceFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m RaceFormModel) Update(msg tea.Msg) (RaceFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return FormClosedMsg{} }
		case "tab", "down", "enter":
			if msg.String() == "enter" && m.focus == rfFieldCount-1 {
				return m.save()
			}
			m.setFocus((m.focus + 1) % rfFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + rfFieldCount - 1) % rfFieldCount)
			return m, nil
		case "ctrl+s":
			return m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RaceFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m RaceFormModel) save() (RaceFormModel, tea.Cmd) {
	for i := range m.fieldErrs {
		m.fieldErrs[i] = ""
	}
	m.saveErr = ""
	ok := true
	fail := func(field int, err error) {
		m.fieldErrs[field] = err.Error()
		ok = false
	}

	date, err := time.Parse(store.DateLayout, strings.TrimSpace(m.inputs[rfDate].Value()))
	if err != nil {
		fail(rfDate, fmt.Errorf("expected %s", store.DateLayout))
	}

	name := strings.TrimSpace(m.inputs[rfName].Value())
	if name == "" {
		fail(rfName, fmt.Errorf("name is required"))
	}

	category, err := calc.ParseCategory(strings.TrimSpace(m.inputs[rfCategory].Value()))
	if err != nil {
		fail(rfCategory, err)
	}

	token := calc.SelectionCustom
	var meters float64
	if ok {
		input := strings.TrimSpace(strings.ToLower(m.inputs[rfDistance].Value()))
		for _, t := range calc.StandardTokens(category) {
			if input == t {
				token = t
				break
			}
		}
		if token != calc.SelectionCustom {
			meters, err = calc.ResolveDistance(category, token, nil)
		} else {
			meters, err = resolveDistanceInput(category, input)
		}
		if err != nil {
			fail(rfDistance, err)
		}
	}

	var seconds float64
	if ok {
		seconds, err = calc.ParseDuration(strings.TrimSpace(m.inputs[rfTime].Value()), category.AllowsFractionalSeconds())
		if err != nil {
			fail(rfTime, err)
		}
	}

	if !ok {
		return m, nil
	}

	r := &store.Race{
		Date:            date,
		Name:            name,
		Category:        string(category),
		DistanceToken:   token,
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Location:        strings.TrimSpace(m.inputs[rfLocation].Value()),
	}
	_, improved, err := m.entryService.SaveRace(r)
	if err != nil {
		m.saveErr = err.Error()
		return m, nil
	}

	status := "Race saved"
	if improved {
		status = fmt.Sprintf("Race saved - new %s personal best!", r.DistanceToken)
	}
	return m, func() tea.Msg {
		return FormClosedMsg{Saved: true, Status: status}
	}
}

// View renders the form
func (m RaceFormModel) View() string {
	labels := []string{"Date", "Name", "Category", "Distance", "Time", "Location"}

	var sections []string
	sections = append(sections, cardTitleStyle.Render("  New Race"))

	for i, in := range m.inputs {
		line := "  " + formLabelStyle.Render(labels[i]) + in.View()
		sections = append(sections, line)
		if m.fieldErrs[i] != "" {
			sections = append(sections, formErrorStyle.Render("  "+m.fieldErrs[i]))
		}
	}

	if m.saveErr != "" {
		sections = append(sections, errorStyle.Render("\n  "+m.saveErr))
	}

	help := statusStyle.Render("\n  tab/shift+tab: move  ctrl+s: save  esc: cancel")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
