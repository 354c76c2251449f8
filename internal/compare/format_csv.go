package compare

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"ID",
		"Scenario",
		"Type",
		"Gross",
		"Total Deductions",
		"Deduction Rate %",
		"Income Tax",
		"Net",
		"Net Diff from Base",
		"Net % Change",
		"Deduction Diff from Base",
		"Note",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row; unavailable figures stay empty
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	amount := func(d decimal.Decimal) string {
		if !result.Available {
			return ""
		}
		return d.StringFixed(2)
	}
	delta := amount
	if scenarioType == "base" {
		delta = func(decimal.Decimal) string { return "" }
	}

	return []string{
		fmt.Sprintf("%d", result.ScenarioID),
		result.Label,
		scenarioType,
		result.Gross.StringFixed(2),
		amount(result.TotalDeductions),
		amount(result.DeductionRate),
		amount(result.IncomeTax),
		amount(result.Net),
		delta(result.NetDiffFromBase),
		delta(result.NetPctFromBase),
		delta(result.DeductionDiffFromBase),
		result.Note,
	}
}
