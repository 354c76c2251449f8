package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/nettogo/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard shows one monthly figure, optionally with its difference to
// another scenario
type MetricCard struct {
	Label       string
	Value       string
	Delta       *Delta
	Description string
	Width       int
}

// Delta is a signed change of a figure against a reference scenario
type Delta struct {
	Amount  decimal.Decimal
	Against string // e.g. "#1"
}

// Text renders the delta as "▲ +41.20 € vs #1"
func (d Delta) Text() string {
	up := !d.Amount.IsNegative()
	sign := ""
	if d.Amount.IsPositive() {
		sign = "+"
	}
	return tuistyles.TrendIndicator(up) + " " + sign + d.Amount.StringFixed(2) + " € vs " + d.Against
}

// NewMetricCard creates a card of the default width
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithDelta attaches the change against the reference scenario
func (m *MetricCard) WithDelta(amount decimal.Decimal, against string) *MetricCard {
	m.Delta = &Delta{Amount: amount, Against: against}
	return m
}

// WithDescription adds a muted line under the value
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

func (m *MetricCard) deltaLine() string {
	if m.Delta == nil {
		return ""
	}
	return tuistyles.MetricTrendStyle(!m.Delta.Amount.IsNegative()).Render(m.Delta.Text())
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	lines := []string{
		tuistyles.MetricLabelStyle.Render(m.Label),
		tuistyles.MetricValueStyle.Render(m.Value),
	}
	if d := m.deltaLine(); d != "" {
		lines = append(lines, d)
	}
	if m.Description != "" {
		lines = append(lines, tuistyles.SubtitleStyle.Render(m.Description))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderCompact returns "Label: value" on one line, without a border
func (m *MetricCard) RenderCompact() string {
	out := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if d := m.deltaLine(); d != "" {
		out += " " + d
	}
	return out
}

// MetricGrid renders cards in rows of the given number of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CompactLine joins the compact form of cards with a separator
func CompactLine(cards ...*MetricCard) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.RenderCompact()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWith(parts, tuistyles.SubtitleStyle.Render(" • "))...)
}

func joinWith(parts []string, sep string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
