package calculation

import (
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// SOCIAL INSURANCE ASSUMPTIONS:
//
// 1. Contributions are assessed on gross pay up to the year's ceiling
//    (Beitragsbemessungsgrenze). KV and PV share one ceiling, RV and AV another.
// 2. Employer and employee split every rate 50/50; only the employee half is returned.
// 3. The PV surcharge for childless employees aged 23+ is borne entirely by the
//    employee and is not split.

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
	twelve  = decimal.NewFromInt(12)
)

// AssessableBase caps gross monthly pay at a contribution ceiling
func AssessableBase(grossMonthly, ceiling decimal.Decimal) decimal.Decimal {
	return decimal.Min(grossMonthly, ceiling)
}

// employeeShare converts a rate in percentage points to the employee's half as a factor
func employeeShare(rate decimal.Decimal) decimal.Decimal {
	return rate.Div(hundred).Div(two)
}

// HealthInsurance returns the employee KV contribution. With reduced set, the
// reduced rate is used; that figure only feeds the tax-deductible portion.
func HealthInsurance(s domain.Scenario, c domain.YearConstants, reduced bool) decimal.Decimal {
	rate := c.HealthCare.KVRate
	if reduced {
		rate = c.HealthCare.KVReducedRate
	}
	base := AssessableBase(s.GrossMonthly, c.HealthCare.Ceiling)
	return base.Mul(employeeShare(rate.Add(s.AdditionalKVRate)))
}

// CareInsurance returns the PV contribution. employeeSide adds the childless
// surcharge when it applies; the employer side never carries it.
func CareInsurance(s domain.Scenario, c domain.YearConstants, employeeSide bool) decimal.Decimal {
	factor := employeeShare(c.HealthCare.PVRate)
	if employeeSide && s.ChildlessSurchargeApplies() {
		factor = factor.Add(c.HealthCare.PVChildlessRate.Div(hundred))
	}
	return AssessableBase(s.GrossMonthly, c.HealthCare.Ceiling).Mul(factor)
}

// PensionInsurance returns the employee RV contribution
func PensionInsurance(s domain.Scenario, c domain.YearConstants) decimal.Decimal {
	return AssessableBase(s.GrossMonthly, c.Pension.Ceiling).Mul(employeeShare(c.Pension.RVRate))
}

// UnemploymentInsurance returns the employee AV contribution
func UnemploymentInsurance(s domain.Scenario, c domain.YearConstants) decimal.Decimal {
	return AssessableBase(s.GrossMonthly, c.Pension.Ceiling).Mul(employeeShare(c.Pension.AVRate))
}

// Contributions holds the employee's monthly social insurance contributions
type Contributions struct {
	KV decimal.Decimal
	PV decimal.Decimal
	RV decimal.Decimal
	AV decimal.Decimal
}

// Total returns the sum of all four contributions
func (c Contributions) Total() decimal.Decimal {
	return c.KV.Add(c.PV).Add(c.RV).Add(c.AV)
}

// EmployeeContributions computes the payroll deductions at the standard KV rate
func EmployeeContributions(s domain.Scenario, c domain.YearConstants) Contributions {
	return Contributions{
		KV: HealthInsurance(s, c, false),
		PV: CareInsurance(s, c, true),
		RV: PensionInsurance(s, c),
		AV: UnemploymentInsurance(s, c),
	}
}
