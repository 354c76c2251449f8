package calculation

import (
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// SpecialExpenseAllowance is the flat annual Sonderausgaben-Pauschbetrag
var SpecialExpenseAllowance = decimal.NewFromInt(36)

// DeductibleContributions returns the monthly contributions that reduce taxable
// income: KV at the reduced rate plus the employee's PV and RV. AV and
// employer shares are not deductible here.
func DeductibleContributions(s domain.Scenario, c domain.YearConstants) decimal.Decimal {
	return HealthInsurance(s, c, true).
		Add(CareInsurance(s, c, true)).
		Add(PensionInsurance(s, c))
}

// TaxableIncome returns the annual taxable income (zvE). The result may be
// negative for small salaries; the tariff treats that as the basic allowance zone.
func TaxableIncome(s domain.Scenario, c domain.YearConstants) decimal.Decimal {
	annualGross := s.GrossMonthly.Mul(twelve)
	deductible := DeductibleContributions(s, c).Mul(twelve)
	return annualGross.
		Sub(deductible).
		Sub(c.WorkExpenseAllowance).
		Sub(SpecialExpenseAllowance)
}
