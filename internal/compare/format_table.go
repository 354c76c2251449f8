package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("GROSS-TO-NET SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseResult.Label))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 38
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Gross",
		numWidth, "Deductions",
		numWidth, "Net"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label))
			if !alt.Available {
				sb.WriteString(fmt.Sprintf("  n/a (%s)\n", alt.Note))
				continue
			}

			sb.WriteString(fmt.Sprintf("  Net Income:       %s%s € (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				alt.NetDiffFromBase.StringFixed(2),
				alt.NetPctFromBase.StringFixed(1)))

			if !alt.DeductionDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Deductions:       %s%s €\n",
					tf.deltaSymbol(alt.DeductionDiffFromBase),
					alt.DeductionDiffFromBase.StringFixed(2)))
			}
			if alt.HasMarginalRetention {
				sb.WriteString(fmt.Sprintf("  Kept of Extra:    %s%%\n",
					alt.MarginalRetentionRate.StringFixed(1)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

const baseMarker = " (base)"

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	// the base marker must survive truncation
	name := tf.truncate(result.Label, nameWidth)
	if isBase {
		name = tf.truncate(result.Label, nameWidth-len(baseMarker)) + baseMarker
	}

	deductions, net := "n/a", "n/a"
	if result.Available {
		deductions = result.TotalDeductions.StringFixed(2)
		net = result.Net.StringFixed(2)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, result.Gross.StringFixed(2),
		numWidth, deductions,
		numWidth, net)
}

// deltaSymbol returns a + for positive deltas; negative values carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: #%d | ", compSet.BaseScenarioID))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		netChange := "n/a"
		if alt.Available {
			netChange = "="
			if !alt.NetDiffFromBase.IsZero() {
				netChange = tf.deltaSymbol(alt.NetDiffFromBase) + alt.NetDiffFromBase.StringFixed(2) + " €"
			}
		}
		sb.WriteString(fmt.Sprintf("#%d: %s", alt.ScenarioID, netChange))
	}

	return sb.String()
}
