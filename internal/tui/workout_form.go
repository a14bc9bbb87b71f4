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

// Workout form field indexes
const (
	wfDate = iota
	wfName
	wfCategory
	wfDistance
	wfDuration
	wfLaps
	wfNotes
	wfFieldCount
)

// WorkoutFormModel is the new-workout entry form
type WorkoutFormModel struct {
	entryService *service.EntryService
	inputs       []textinput.Model
	fieldErrs    []string
	focus        int
	saveErr      string
}

// NewWorkoutFormModel creates an empty workout form
func NewWorkoutFormModel(es *service.EntryService) WorkoutFormModel {
	m := WorkoutFormModel{
		entryService: es,
		inputs:       make([]textinput.Model, wfFieldCount),
		fieldErrs:    make([]string, wfFieldCount),
	}

	placeholders := []string{
		time.Now().Format(store.DateLayout),
		"Morning run",
		"road, track or relay",
		"5km, 10000m, half-marathon or a number",
		"45:00 or 1:30:00",
		"optional lap times, comma separated",
		"optional notes",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 80
		in.Width = 44
		m.inputs[i] = in
	}
	m.inputs[wfDate].SetValue(time.Now().Format(store.DateLayout))
	m.inputs[wfCategory].SetValue(string(calc.CategoryRoad))
	m.inputs[wfDate].Focus()
	return m
}

// Init initializes the form
func (m WorkoutFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m WorkoutFormModel) Update(msg tea.Msg) (WorkoutFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return FormClosedMsg{} }
		case "tab", "down", "enter":
			if msg.String() == "enter" && m.focus == wfFieldCount-1 {
				return m.save()
			}
			m.setFocus((m.focus + 1) % wfFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + wfFieldCount - 1) % wfFieldCount)
			return m, nil
		case "ctrl+s":
			return m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *WorkoutFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// save validates every field and persists the workout. Invalid fields keep
// the form open with inline messages; nothing is stored half-parsed.
func (m WorkoutFormModel) save() (WorkoutFormModel, tea.Cmd) {
	for i := range m.fieldErrs {
		m.fieldErrs[i] = ""
	}
	m.saveErr = ""
	ok := true
	fail := func(field int, err error) {
		m.fieldErrs[field] = err.Error()
		ok = false
	}

	date, err := time.Parse(store.DateLayout, strings.TrimSpace(m.inputs[wfDate].Value()))
	if err != nil {
		fail(wfDate, fmt.Errorf("expected %s", store.DateLayout))
	}

	name := strings.TrimSpace(m.inputs[wfName].Value())
	if name == "" {
		fail(wfName, fmt.Errorf("name is required"))
	}

	category, err := calc.ParseCategory(strings.TrimSpace(m.inputs[wfCategory].Value()))
	if err != nil {
		fail(wfCategory, err)
	}

	var meters float64
	if ok {
		meters, err = resolveDistanceInput(category, m.inputs[wfDistance].Value())
		if err != nil {
			fail(wfDistance, err)
		}
	}

	var seconds float64
	if ok {
		seconds, err = calc.ParseDuration(strings.TrimSpace(m.inputs[wfDuration].Value()), category.AllowsFractionalSeconds())
		if err != nil {
			fail(wfDuration, err)
		}
	}

	var splits []store.Split
	if ok && strings.TrimSpace(m.inputs[wfLaps].Value()) != "" {
		splits, err = parseLapTimes(m.inputs[wfLaps].Value(), category, meters)
		if err != nil {
			fail(wfLaps, err)
		}
	}

	if !ok {
		return m, nil
	}

	w := &store.Workout{
		Date:            date,
		Name:            name,
		Category:        string(category),
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Notes:           strings.TrimSpace(m.inputs[wfNotes].Value()),
	}
	if _, err := m.entryService.SaveWorkout(w, splits); err != nil {
		m.saveErr = err.Error()
		return m, nil
	}
	return m, func() tea.Msg {
		return FormClosedMsg{Saved: true, Status: "Workout saved"}
	}
}

// View renders the form
func (m WorkoutFormModel) View() string {
	labels := []string{"Date", "Name", "Category", "Distance", "Duration", "Lap times", "Notes"}

	var sections []string
	sections = append(sections, cardTitleStyle.Render("  New Workout"))

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

// resolveDistanceInput accepts either a standard distance token for the
// category or a bare number treated as a custom distance (meters on the
// track, kilometers elsewhere).
func resolveDistanceInput(category calc.Category, input string) (float64, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	for _, token := range calc.StandardTokens(category) {
		if input == token {
			return calc.ResolveDistance(category, token, nil)
		}
	}
	value, err := calc.ParseNumber(input)
	if err != nil {
		return 0, err
	}
	return calc.ResolveDistance(category, calc.SelectionCustom, &value)
}

// parseLapTimes turns "4:12, 4:08, 4:15" into splits, dividing the total
// distance evenly across the laps.
func parseLapTimes(input string, category calc.Category, totalMeters float64) ([]store.Split, error) {
	parts := strings.Split(input, ",")
	splits := make([]store.Split, 0, len(parts))
	lapMeters := totalMeters / float64(len(parts))
	for i, part := range parts {
		seconds, err := calc.ParseDuration(strings.TrimSpace(part), category.AllowsFractionalSeconds())
		if err != nil {
			return nil, fmt.Errorf("lap %d: %w", i+1, err)
		}
		splits = append(splits, store.Split{
			DistanceMeters:  lapMeters,
			DurationSeconds: seconds,
		})
	}
	return splits, nil
}
