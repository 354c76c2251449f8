package scenes

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rgehrsitz/nettogo/internal/compare"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/rgehrsitz/nettogo/internal/output"
	"github.com/rgehrsitz/nettogo/internal/tui/components"
	"github.com/rgehrsitz/nettogo/internal/tui/tuimsg"
	"github.com/rgehrsitz/nettogo/internal/tui/tuistyles"
)

// NotAvailable is shown in place of figures that cannot be computed
const NotAvailable = "n/a"

var resultHeaders = []string{"#", "Year", "Gross", "Age", "Kids", "KV", "PV", "RV", "AV", "Tax", "Soli", "Net"}

// ResultsModel shows the evaluated scenarios as a table
type ResultsModel struct {
	results       []domain.Result
	selectedIndex int
	active        bool
	width         int
}

// NewResultsModel creates an empty results table
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResults replaces the table contents and keeps the selection in range
func (m *ResultsModel) SetResults(results []domain.Result) {
	m.results = results
	if m.selectedIndex >= len(results) {
		m.selectedIndex = len(results) - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
}

// SetActive gives or takes keyboard focus
func (m *ResultsModel) SetActive(active bool) {
	m.active = active
}

// SetWidth updates the available width
func (m *ResultsModel) SetWidth(width int) {
	m.width = width
}

// SelectedIndex returns the highlighted row
func (m *ResultsModel) SelectedIndex() int {
	return m.selectedIndex
}

// Selected returns the highlighted result
func (m *ResultsModel) Selected() (domain.Result, bool) {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.results) {
		return m.results[m.selectedIndex], true
	}
	return domain.Result{}, false
}

// Update handles messages for the results table
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.results)-1 {
				m.selectedIndex++
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
			m.selectedIndex = 0
		case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
			m.selectedIndex = max(0, len(m.results)-1)
		case key.Matches(msg, key.NewBinding(key.WithKeys("d", "delete"))):
			if r, ok := m.Selected(); ok {
				id := r.Scenario.ID
				return m, func() tea.Msg { return tuimsg.ScenarioRemovedMsg{ID: id} }
			}
		}
	}
	return m, nil
}

// Cells returns the table cells of a result. Figures that are not available
// for the scenario's year render as n/a.
func Cells(r domain.Result) []string {
	row := output.NewRow(r)
	kids := "no"
	if row.HasChildren {
		kids = "yes"
	}
	cells := []string{strconv.Itoa(row.ID), strconv.Itoa(row.Year), row.Gross, strconv.Itoa(row.Age), kids}

	figures := []string{row.KV, row.PV, row.RV, row.AV, row.IncomeTax, row.Soli, row.Net}
	for _, f := range figures {
		if f == "" {
			f = NotAvailable
		}
		cells = append(cells, f)
	}
	return cells
}

// View renders the table, the selected scenario's summary and any notes
func (m *ResultsModel) View() string {
	if len(m.results) == 0 {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render("No scenarios yet. Fill in the form and press enter."))
	}

	rows := make([][]string, len(m.results))
	for i, r := range m.results {
		rows[i] = Cells(r)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)).
		Headers(resultHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tuistyles.TableHeaderStyle
			case m.active && row == m.selectedIndex:
				return tuistyles.TableHighlightStyle
			case rows[row][col] == NotAvailable:
				return tuistyles.TableMutedStyle
			default:
				return tuistyles.TableCellStyle
			}
		})

	parts := []string{t.Render()}
	if detail := m.renderSelected(); detail != "" {
		parts = append(parts, detail)
	}
	if notes := m.renderNotes(); notes != "" {
		parts = append(parts, notes)
	}
	parts = append(parts, tuistyles.SubtitleStyle.Render("↑/↓ select • d remove"))

	style := tuistyles.BorderStyle
	if m.active {
		style = tuistyles.ActiveBorderStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *ResultsModel) renderSelected() string {
	r, ok := m.Selected()
	if !ok || r.Err != nil {
		return ""
	}
	b := r.Breakdown
	total, _ := b.TotalDeductions()

	net := components.NewMetricCard("Net", output.FormatCurrency(b.Net.Decimal))
	if alt, ok := m.comparedToReference(r.Scenario.ID); ok {
		net.WithDelta(alt.NetDiffFromBase, fmt.Sprintf("#%d", m.referenceID()))
	}
	cards := []*components.MetricCard{
		net,
		components.NewMetricCard("Social contributions", output.FormatCurrency(b.SocialContributions())),
		components.NewMetricCard("Total deductions", output.FormatCurrency(total)),
	}
	if !b.Gross.IsZero() {
		share := total.Div(b.Gross).Shift(2).StringFixed(1)
		cards[2].WithDescription(share + "% of gross")
	}

	summary := components.CompactLine(
		components.NewMetricCard(fmt.Sprintf("#%d gross", r.Scenario.ID), output.FormatCurrency(b.Gross)),
		components.NewMetricCard("zvE/year", output.FormatCurrency(b.TaxableIncome)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, summary, components.MetricGrid(cards, len(cards)))
}

// referenceID is the first scenario with a net income; deltas are shown against it
func (m *ResultsModel) referenceID() int {
	for _, r := range m.results {
		if r.Err == nil && r.Breakdown.Net.Valid {
			return r.Scenario.ID
		}
	}
	return 0
}

// comparedToReference returns the selected scenario's comparison with the
// reference scenario, or false for the reference itself and incomparable rows
func (m *ResultsModel) comparedToReference(id int) (compare.ComparisonResult, bool) {
	ref := m.referenceID()
	if ref == 0 || ref == id {
		return compare.ComparisonResult{}, false
	}
	set, err := compare.Compare(m.results, ref)
	if err != nil {
		return compare.ComparisonResult{}, false
	}
	for _, alt := range set.AlternativeResults {
		if alt.ScenarioID == id && alt.Available {
			return alt, true
		}
	}
	return compare.ComparisonResult{}, false
}

func (m *ResultsModel) renderNotes() string {
	var lines []string
	for _, r := range m.results {
		if r.Err == nil {
			continue
		}
		row := output.NewRow(r)
		style := tuistyles.ErrorStyle
		if row.Status == output.StatusUnavailable {
			style = tuistyles.SubtitleStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("#%d: %s", row.ID, row.Error)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
