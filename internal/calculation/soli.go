package calculation

import (
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// SolidaritySurcharge returns the monthly Soli for a monthly wage tax.
//
// Below the exemption threshold there is no surcharge. Above it, the surcharge
// is the lesser of the full rate and the relief-zone percentage of the excess
// over the threshold, so it phases in without a jump.
func SolidaritySurcharge(monthlyTax decimal.Decimal, c domain.YearConstants) (decimal.Decimal, error) {
	if !c.Soli.Defined() {
		return decimal.Zero, &domain.FormulaUnavailableError{Year: c.Year, Component: domain.ComponentSoli}
	}

	threshold := c.Soli.MonthlyExemption()
	if monthlyTax.LessThan(threshold) {
		return decimal.Zero, nil
	}

	full := monthlyTax.Mul(c.Soli.Rate).Div(hundred)
	relief := monthlyTax.Sub(threshold).Mul(*c.Soli.ReliefZonePercent).Div(hundred)
	return decimal.Min(full, relief), nil
}
