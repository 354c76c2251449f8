package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter prints one detailed block per scenario
type ConsoleVerboseFormatter struct{}

func (ConsoleVerboseFormatter) Name() string { return "detailed" }

func (ConsoleVerboseFormatter) Format(results []domain.Result) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, "DETAILED GROSS-TO-NET ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for _, r := range results {
		writeScenarioDetail(&buf, r)
	}
	return buf.Bytes(), nil
}

func writeScenarioDetail(buf *bytes.Buffer, r domain.Result) {
	s := r.Scenario
	kids := "childless"
	if s.HasChildren {
		kids = "with children"
	}
	fmt.Fprintf(buf, "SCENARIO %d: %d, age %d, %s, additional KV rate %s%%\n",
		s.ID, s.Year, s.Age, kids, s.AdditionalKVRate.String())
	fmt.Fprintln(buf, strings.Repeat("-", 50))

	if r.Err != nil && !domain.IsUnavailable(r.Err) {
		fmt.Fprintf(buf, "  Error: %v\n\n", r.Err)
		return
	}

	b := r.Breakdown
	line(buf, "Gross salary", FormatCurrency(b.Gross))
	fmt.Fprintln(buf, "  SOCIAL CONTRIBUTIONS:")
	line(buf, "  Health insurance (KV)", FormatCurrency(b.KV))
	line(buf, "  Care insurance (PV)", FormatCurrency(b.PV))
	line(buf, "  Pension insurance (RV)", FormatCurrency(b.RV))
	line(buf, "  Unemployment insurance (AV)", FormatCurrency(b.AV))
	line(buf, "  Subtotal", FormatCurrency(b.SocialContributions()))
	fmt.Fprintln(buf, "  TAXES:")
	line(buf, "  Taxable income (year)", FormatCurrency(b.TaxableIncome))
	line(buf, "  Wage tax", optionalCurrency(b.IncomeTax))
	line(buf, "  Solidarity surcharge", optionalCurrency(b.Soli))

	total, ok := b.TotalDeductions()
	if !ok {
		line(buf, "Total deductions", notAvailable)
		line(buf, "Net income", notAvailable)
		fmt.Fprintf(buf, "  Note: tax data not available for %d\n\n", s.Year)
		return
	}
	line(buf, "Total deductions", FormatCurrency(total))
	line(buf, "Net income", FormatCurrency(b.Net.Decimal))
	if !b.Gross.IsZero() {
		share := b.Net.Decimal.Div(b.Gross).Mul(decimal.NewFromInt(100))
		line(buf, "Net share of gross", share.StringFixed(1)+"%")
	}
	fmt.Fprintln(buf)
}

func line(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-32s %14s\n", label+":", value)
}

func optionalCurrency(d decimal.NullDecimal) string {
	if !d.Valid {
		return notAvailable
	}
	return FormatCurrency(d.Decimal)
}
