package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/nettogo/internal/domain"
)

// ConsoleFormatter prints a gross-to-net table followed by notes for
// scenarios that could not be fully evaluated
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

const notAvailable = "n/a"

func (ConsoleFormatter) Format(results []domain.Result) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("GROSS-TO-NET MONTHLY BREAKDOWN\n")
	sb.WriteString(strings.Repeat("=", 118) + "\n")
	sb.WriteString(fmt.Sprintf("%-4s %-5s %10s %4s %-4s %9s %9s %9s %9s %11s %11s %9s %11s\n",
		"ID", "Year", "Gross", "Age", "Kids", "KV", "PV", "RV", "AV", "zvE/year", "Lohnsteuer", "Soli", "Net"))
	sb.WriteString(strings.Repeat("-", 118) + "\n")

	var notes []string
	for _, row := range Rows(results) {
		kids := "no"
		if row.HasChildren {
			kids = "yes"
		}
		if row.Status == StatusError {
			sb.WriteString(fmt.Sprintf("%-4d %-5d %10s %4d %-4s %s\n", row.ID, row.Year, row.Gross, row.Age, kids, "error"))
			notes = append(notes, fmt.Sprintf("#%d: %s", row.ID, row.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-4d %-5d %10s %4d %-4s %9s %9s %9s %9s %11s %11s %9s %11s\n",
			row.ID, row.Year, row.Gross, row.Age, kids,
			row.KV, row.PV, row.RV, row.AV, row.TaxableIncome,
			orNA(row.IncomeTax), orNA(row.Soli), orNA(row.Net)))
		if row.Status == StatusUnavailable {
			notes = append(notes, fmt.Sprintf("#%d: %s", row.ID, row.Error))
		}
	}
	sb.WriteString(strings.Repeat("=", 118) + "\n")

	if len(notes) > 0 {
		sb.WriteString("\nNOTES\n")
		for _, n := range notes {
			sb.WriteString("• " + n + "\n")
		}
	}
	return []byte(sb.String()), nil
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
