package scenes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/rgehrsitz/nettogo/internal/scenario"
	"github.com/rgehrsitz/nettogo/internal/tui/tuimsg"
	"github.com/rgehrsitz/nettogo/internal/tui/tuistyles"
)

// Form fields in display order
const (
	FieldYear = iota
	FieldGross
	FieldAge
	FieldKVRate
	FieldChildren
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldYear:     "Year",
	FieldGross:    "Gross monthly (€)",
	FieldAge:      "Age",
	FieldKVRate:   "Additional KV rate (%)",
	FieldChildren: "Children",
}

// FormModel is the entry form for a new scenario
type FormModel struct {
	inputs      [FieldChildren]textinput.Model
	hasChildren bool
	focused     int
	active      bool
	defaultYear int
}

// NewFormModel creates a form prefilled with the defaults for defaultYear
func NewFormModel(defaultYear int) *FormModel {
	m := &FormModel{defaultYear: defaultYear}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 14
		m.inputs[i] = ti
	}
	m.inputs[FieldYear].Placeholder = "e.g., 2024"
	m.inputs[FieldGross].Placeholder = "0"
	m.inputs[FieldAge].Placeholder = "e.g., 28"
	m.inputs[FieldKVRate].Placeholder = "e.g., 1.7"
	m.Reset()
	return m
}

// Reset restores the default draft and moves focus to the first field
func (m *FormModel) Reset() {
	d := scenario.DefaultDraft(m.defaultYear)
	m.inputs[FieldYear].SetValue(strconv.Itoa(d.Year))
	m.inputs[FieldGross].SetValue("")
	m.inputs[FieldAge].SetValue(strconv.Itoa(d.Age))
	m.inputs[FieldKVRate].SetValue(d.AdditionalKVRate.String())
	m.hasChildren = d.HasChildren
	m.setFocus(FieldYear)
}

// SetActive gives or takes keyboard focus
func (m *FormModel) SetActive(active bool) {
	m.active = active
	m.setFocus(m.focused)
}

// Focused returns the index of the focused field
func (m *FormModel) Focused() int {
	return m.focused
}

// SetValue fills a text field
func (m *FormModel) SetValue(field int, value string) {
	if field >= 0 && field < len(m.inputs) {
		m.inputs[field].SetValue(value)
	}
}

// Draft parses the fields. An empty gross field means zero.
func (m *FormModel) Draft() (scenario.Draft, error) {
	var d scenario.Draft
	var err error

	if d.Year, err = parseInt(m.inputs[FieldYear].Value(), "year"); err != nil {
		return d, err
	}
	gross := strings.TrimSpace(m.inputs[FieldGross].Value())
	if gross == "" {
		gross = "0"
	}
	if d.GrossMonthly, err = parseDecimal(gross, "gross_monthly"); err != nil {
		return d, err
	}
	if d.Age, err = parseInt(m.inputs[FieldAge].Value(), "age"); err != nil {
		return d, err
	}
	if d.AdditionalKVRate, err = parseDecimal(m.inputs[FieldKVRate].Value(), "additional_kv_rate"); err != nil {
		return d, err
	}
	d.HasChildren = m.hasChildren
	return d, nil
}

// Update handles messages for the form
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "shift+tab"))):
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			return m, m.submit()

		case m.focused == FieldChildren && key.Matches(msg, key.NewBinding(key.WithKeys(" ", "x", "y", "n"))):
			switch msg.String() {
			case "y":
				m.hasChildren = true
			case "n":
				m.hasChildren = false
			default:
				m.hasChildren = !m.hasChildren
			}
			return m, nil
		}
	}

	if m.focused == FieldChildren {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) submit() tea.Cmd {
	d, err := m.Draft()
	if err != nil {
		return func() tea.Msg { return tuimsg.ErrorMsg{Err: err} }
	}
	return func() tea.Msg { return tuimsg.ScenarioSubmittedMsg{Draft: d} }
}

func (m *FormModel) setFocus(field int) {
	m.focused = field
	for i := range m.inputs {
		if m.active && i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// View renders the form
func (m *FormModel) View() string {
	lines := make([]string, 0, fieldCount+2)
	lines = append(lines, tuistyles.TitleStyle.Render("New scenario"))

	for i := 0; i < fieldCount; i++ {
		labelStyle := tuistyles.ParameterLabelStyle
		if m.active && i == m.focused {
			labelStyle = tuistyles.FocusedLabelStyle
		}

		var value string
		if i == FieldChildren {
			box := "[ ]"
			if m.hasChildren {
				box = "[x]"
			}
			value = box + " has children"
		} else {
			value = m.inputs[i].View()
		}
		lines = append(lines, labelStyle.Render(fieldLabels[i])+value)
	}

	lines = append(lines, "", tuistyles.SubtitleStyle.Render("enter add • ↑/↓ field • space toggle children"))

	style := tuistyles.BorderStyle
	if m.active {
		style = tuistyles.ActiveBorderStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func parseInt(s, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Reason: "must be a whole number"}
	}
	return v, nil
}

func parseDecimal(s, field string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(s), ",", ".", 1))
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}
