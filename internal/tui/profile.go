package tui

import (
	"errors"
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

// Profile form field indexes
const (
	pfName = iota
	pfBirthDate
	pfHeight
	pfWeight
	pfRestingHR
	pfMaxHR
	pfWeeklyGoal
	pfFieldCount
)

// ProfileModel is the profile screen model. It renders the saved profile
// with its derived metrics, and flips into an edit form on 'e'.
type ProfileModel struct {
	queryService *service.QueryService
	entryService *service.EntryService
	view         *service.ProfileView
	editing      bool
	inputs       []textinput.Model
	fieldErrs    []string
	focus        int
	loading      bool
	noProfile    bool
	saveErr      string
	err          error
}

// NewProfileModel creates a new profile model
func NewProfileModel(qs *service.QueryService, es *service.EntryService) ProfileModel {
	return ProfileModel{
		queryService: qs,
		entryService: es,
		loading:      true,
	}
}

// Init initializes the profile screen
func (m ProfileModel) Init() tea.Cmd {
	return m.loadProfile
}

type profileLoadedMsg struct {
	view      *service.ProfileView
	noProfile bool
	err       error
}

func (m ProfileModel) loadProfile() tea.Msg {
	view, err := m.queryService.GetProfileView(nowFunc())
	if errors.Is(err, store.ErrNoProfile) {
		return profileLoadedMsg{noProfile: true}
	}
	if err != nil {
		return profileLoadedMsg{err: err}
	}
	return profileLoadedMsg{view: view}
}

// Update handles messages
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.view = msg.view
		m.noProfile = msg.noProfile

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "e":
			m.startEditing()
			return m, textinput.Blink
		case "r":
			m.loading = true
			return m, m.loadProfile
		}
	}
	return m, nil
}

func (m *ProfileModel) startEditing() {
	m.editing = true
	m.focus = 0
	m.saveErr = ""
	m.inputs = make([]textinput.Model, pfFieldCount)
	m.fieldErrs = make([]string, pfFieldCount)

	placeholders := []string{
		"Aki",
		"1990-06-15",
		fmt.Sprintf("cm (%.0f-%.0f)", calc.HeightRange.Min, calc.HeightRange.Max),
		fmt.Sprintf("kg (%.0f-%.0f)", calc.WeightRange.Min, calc.WeightRange.Max),
		fmt.Sprintf("bpm (%.0f-%.0f)", calc.HeartRateRange.Min, calc.HeartRateRange.Max),
		fmt.Sprintf("bpm (%.0f-%.0f)", calc.HeartRateRange.Min, calc.HeartRateRange.Max),
		"km per week, blank to keep",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 40
		in.Width = 30
		m.inputs[i] = in
	}

	if m.view != nil {
		p := m.view.Profile
		m.inputs[pfName].SetValue(p.Name)
		if p.BirthDate != nil {
			m.inputs[pfBirthDate].SetValue(p.BirthDate.Format(store.DateLayout))
		}
		setFloat := func(field int, v *float64) {
			if v != nil {
				m.inputs[field].SetValue(strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", *v), "0"), "."))
			}
		}
		setFloat(pfHeight, p.HeightCm)
		setFloat(pfWeight, p.WeightKg)
		setFloat(pfRestingHR, p.RestingHR)
		setFloat(pfMaxHR, p.MaxHR)
	}
	m.inputs[pfName].Focus()
}

func (m ProfileModel) updateForm(msg tea.KeyMsg) (ProfileModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "tab", "down", "enter":
		if msg.String() == "enter" && m.focus == pfFieldCount-1 {
			return m.save()
		}
		m.setFocus((m.focus + 1) % pfFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + pfFieldCount - 1) % pfFieldCount)
		return m, nil
	case "ctrl+s":
		return m.save()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfileModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m ProfileModel) save() (ProfileModel, tea.Cmd) {
	for i := range m.fieldErrs {
		m.fieldErrs[i] = ""
	}
	m.saveErr = ""
	ok := true
	fail := func(field int, err error) {
		m.fieldErrs[field] = err.Error()
		ok = false
	}

	p := &store.Profile{Name: strings.TrimSpace(m.inputs[pfName].Value())}
	if p.Name == "" {
		fail(pfName, fmt.Errorf("name is required"))
	}

	if v := strings.TrimSpace(m.inputs[pfBirthDate].Value()); v != "" {
		birth, err := time.Parse(store.DateLayout, v)
		if err != nil {
			fail(pfBirthDate, fmt.Errorf("expected %s", store.DateLayout))
		} else if _, err := calc.Age(birth, nowFunc()); err != nil {
			fail(pfBirthDate, err)
		} else {
			p.BirthDate = &birth
		}
	}

	parseRange := func(field int, rc calc.RangeConstraint) *float64 {
		v := strings.TrimSpace(m.inputs[field].Value())
		if v == "" {
			return nil
		}
		value, err := rc.ParseNumberIn(v)
		if err != nil {
			fail(field, err)
			return nil
		}
		return &value
	}
	p.HeightCm = parseRange(pfHeight, calc.HeightRange)
	p.WeightKg = parseRange(pfWeight, calc.WeightRange)
	p.RestingHR = parseRange(pfRestingHR, calc.HeartRateRange)
	p.MaxHR = parseRange(pfMaxHR, calc.HeartRateRange)

	var goalKm *float64
	if v := strings.TrimSpace(m.inputs[pfWeeklyGoal].Value()); v != "" {
		value, err := calc.ParseNumber(v)
		if err != nil || value < 0 {
			fail(pfWeeklyGoal, fmt.Errorf("expected a non-negative number of kilometers"))
		} else {
			goalKm = &value
		}
	}

	if !ok {
		return m, nil
	}

	if err := m.entryService.SaveProfile(p); err != nil {
		m.saveErr = err.Error()
		return m, nil
	}
	if goalKm != nil {
		if err := m.entryService.SetWeeklyDistanceGoal(*goalKm * 1000); err != nil {
			m.saveErr = err.Error()
			return m, nil
		}
	}

	m.editing = false
	m.loading = true
	return m, m.loadProfile
}

// View renders the profile screen
func (m ProfileModel) View() string {
	if m.loading {
		return "\n  Loading profile..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.editing {
		return m.viewForm()
	}

	if m.noProfile || m.view == nil {
		return "\n  No profile yet. Press 'e' to create one."
	}

	p := m.view.Profile

	var lines []string
	lines = append(lines, RenderMetric("Name", p.Name))
	if p.BirthDate != nil {
		lines = append(lines, RenderMetric("Birth date", p.BirthDate.Format(store.DateLayout)))
	}
	if m.view.Age != nil {
		lines = append(lines, RenderMetric("Age", fmt.Sprintf("%d", *m.view.Age)))
	}
	if p.HeightCm != nil {
		lines = append(lines, RenderMetric("Height", fmt.Sprintf("%.0f cm", *p.HeightCm)))
	}
	if p.WeightKg != nil {
		lines = append(lines, RenderMetric("Weight", fmt.Sprintf("%.1f kg", *p.WeightKg)))
	}
	if m.view.BMI != nil {
		lines = append(lines, RenderMetric("BMI", fmt.Sprintf("%.1f (%s)", *m.view.BMI, m.view.BMIClass)))
	}
	if p.RestingHR != nil {
		lines = append(lines, RenderMetric("Resting HR", fmt.Sprintf("%.0f bpm", *p.RestingHR)))
	}
	if p.MaxHR != nil {
		lines = append(lines, RenderMetric("Max HR", fmt.Sprintf("%.0f bpm", *p.MaxHR)))
	}

	title := cardTitleStyle.Render("Profile")
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	card := cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	help := statusStyle.Render("\n  e: edit  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, card, help)
}

func (m ProfileModel) viewForm() string {
	labels := []string{"Name", "Birth date", "Height", "Weight", "Resting HR", "Max HR", "Weekly goal"}

	var sections []string
	sections = append(sections, cardTitleStyle.Render("  Edit Profile"))

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
