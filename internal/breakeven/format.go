package breakeven

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/nettogo/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results for the console
type TableFormatter struct{}

// Format generates a report for one result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN GROSS SALARY\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	base := result.Request.Base
	sb.WriteString(fmt.Sprintf("Scenario:            #%d (%d, age %d)\n", base.ID, base.Year, base.Age))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("RESULT\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Target Net Income:   %s €\n", result.TargetNet.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Required Gross:      %s €\n", result.RequiredGross.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Net at That Gross:   %s €\n", result.Net.StringFixed(2)))
	sb.WriteString("\n")

	sb.WriteString("COMPARISON TO SCENARIO\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Current Gross:       %s €\n", result.BaseGross.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Current Net:         %s €\n", result.BaseNet.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Gross Change:        %s%s €\n",
		tf.deltaSymbol(result.GrossDiffFromBase), result.GrossDiffFromBase.StringFixed(2)))

	return sb.String()
}

// FormatSweep renders sweep points as a table
func (tf *TableFormatter) FormatSweep(points []SweepPoint) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%12s %12s %12s %10s\n", "Gross", "Deductions", "Net", "Kept %"))
	sb.WriteString(strings.Repeat("-", 49) + "\n")
	for i, p := range points {
		kept := "-"
		if i > 0 {
			kept = p.MarginalRetention.StringFixed(1)
		}
		sb.WriteString(fmt.Sprintf("%12s %12s %12s %10s\n",
			p.Gross.StringFixed(2), p.Deductions.StringFixed(2), p.Net.StringFixed(2), kept))
	}
	return sb.String()
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "converged"
	}
	return "not converged"
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// JSONFormatter formats solver results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON for one result
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	data, err := output.EncodeJSON(result, jf.Pretty)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
