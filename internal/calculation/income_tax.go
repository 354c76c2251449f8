package calculation

import (
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

var tenThousand = decimal.NewFromInt(10000)

// IncomeTaxFormula computes annual income tax from annual taxable income
type IncomeTaxFormula interface {
	Year() int
	AnnualTax(zvE decimal.Decimal) (decimal.Decimal, error)
}

// NewIncomeTaxFormula selects the formula for a year's constants. Years
// without a published tariff get a formula that reports the gap.
func NewIncomeTaxFormula(c domain.YearConstants) IncomeTaxFormula {
	if c.IncomeTax == nil {
		return unavailableFormula{year: c.Year}
	}
	return Section32aFormula{year: c.Year, Brackets: *c.IncomeTax}
}

// Section32aFormula is the five-zone tariff of EStG §32a
type Section32aFormula struct {
	year     int
	Brackets domain.TaxBrackets
}

// Year returns the assessment year of the tariff
func (f Section32aFormula) Year() int { return f.year }

// AnnualTax applies the tariff. It never fails.
func (f Section32aFormula) AnnualTax(zvE decimal.Decimal) (decimal.Decimal, error) {
	b := f.Brackets
	switch {
	case zvE.LessThanOrEqual(b.BasicAllowance):
		// Grundfreibetrag
		return decimal.Zero, nil
	case zvE.LessThanOrEqual(b.FirstZoneEnd):
		y := zvE.Sub(b.BasicAllowance).Div(tenThousand)
		return b.C1.Mul(y).Add(b.C2).Mul(y), nil
	case zvE.LessThanOrEqual(b.SecondZoneEnd):
		z := zvE.Sub(b.FirstZoneEnd).Div(tenThousand)
		return b.C3.Mul(z).Add(b.C4).Mul(z).Add(b.C5), nil
	case zvE.LessThanOrEqual(b.TopZoneStart):
		return b.R1.Mul(zvE).Sub(b.K1), nil
	default:
		// Höchststeuersatz
		return b.R2.Mul(zvE).Sub(b.K2), nil
	}
}

type unavailableFormula struct {
	year int
}

func (f unavailableFormula) Year() int { return f.year }

func (f unavailableFormula) AnnualTax(decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, &domain.FormulaUnavailableError{Year: f.year, Component: domain.ComponentIncomeTax}
}

// MonthlyIncomeTax applies the formula to zvE and converts to a monthly amount
func MonthlyIncomeTax(f IncomeTaxFormula, zvE decimal.Decimal) (decimal.Decimal, error) {
	annual, err := f.AnnualTax(zvE)
	if err != nil {
		return decimal.Zero, err
	}
	return annual.Div(twelve), nil
}
