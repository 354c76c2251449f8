// Package tuistyles holds the lipgloss styles shared by the TUI packages.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("#2E86AB")
	ColorAccent  = lipgloss.Color("#F18F01")
	ColorSuccess = lipgloss.Color("#3BB273")
	ColorDanger  = lipgloss.Color("#C73E1D")

	ColorForeground = lipgloss.Color("#E8E8E8")
	ColorMuted      = lipgloss.Color("#808080")
	ColorBorder     = lipgloss.Color("#4A4A4A")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ParameterLabelStyle = lipgloss.NewStyle().
				Width(22).
				Foreground(ColorMuted)

	FocusedLabelStyle = ParameterLabelStyle.
				Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TableHighlightStyle = TableCellStyle.
				Foreground(ColorAccent).
				Bold(true)

	TableMutedStyle = TableCellStyle.
			Foreground(ColorMuted)
)

// MetricTrendStyle colors a change indicator
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Foreground(ColorDanger)
}

// TrendIndicator returns an arrow for the direction of a change
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}
