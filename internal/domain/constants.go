package domain

import (
	"github.com/shopspring/decimal"
)

// YearConstants contains the contribution and tax parameters of one assessment year.
// Rates are percentage points, ceilings are monthly amounts.
type YearConstants struct {
	Year                 int             `yaml:"year" json:"year"`
	HealthCare           KVPVConstants   `yaml:"health_care" json:"health_care"`
	Pension              RVAVConstants   `yaml:"pension" json:"pension"`
	IncomeTax            *TaxBrackets    `yaml:"income_tax,omitempty" json:"income_tax,omitempty"` // nil: tariff not yet published
	WorkExpenseAllowance decimal.Decimal `yaml:"work_expense_allowance" json:"work_expense_allowance"`
	Soli                 SoliConstants   `yaml:"solidarity_surcharge" json:"solidarity_surcharge"`
}

// KVPVConstants covers statutory health (KV) and long-term care (PV) insurance
type KVPVConstants struct {
	Ceiling         decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	KVRate          decimal.Decimal `yaml:"kv_rate" json:"kv_rate"`
	KVReducedRate   decimal.Decimal `yaml:"kv_reduced_rate" json:"kv_reduced_rate"` // only used for the tax-deductible portion
	PVRate          decimal.Decimal `yaml:"pv_rate" json:"pv_rate"`
	PVChildlessRate decimal.Decimal `yaml:"pv_childless_rate" json:"pv_childless_rate"`
}

// RVAVConstants covers pension (RV) and unemployment (AV) insurance
type RVAVConstants struct {
	Ceiling decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	RVRate  decimal.Decimal `yaml:"rv_rate" json:"rv_rate"`
	AVRate  decimal.Decimal `yaml:"av_rate" json:"av_rate"`
}

// TaxBrackets parameterizes the progressive income tax tariff (EStG §32a).
//
// Zones: up to BasicAllowance no tax; up to FirstZoneEnd (C1*y + C2)*y;
// up to SecondZoneEnd (C3*z + C4)*z + C5; up to TopZoneStart R1*zvE - K1;
// above R2*zvE - K2.
type TaxBrackets struct {
	BasicAllowance decimal.Decimal `yaml:"basic_allowance" json:"basic_allowance"`
	FirstZoneEnd   decimal.Decimal `yaml:"first_zone_end" json:"first_zone_end"`
	SecondZoneEnd  decimal.Decimal `yaml:"second_zone_end" json:"second_zone_end"`
	TopZoneStart   decimal.Decimal `yaml:"top_zone_start" json:"top_zone_start"`

	C1 decimal.Decimal `yaml:"c1" json:"c1"`
	C2 decimal.Decimal `yaml:"c2" json:"c2"`
	C3 decimal.Decimal `yaml:"c3" json:"c3"`
	C4 decimal.Decimal `yaml:"c4" json:"c4"`
	C5 decimal.Decimal `yaml:"c5" json:"c5"`

	R1 decimal.Decimal `yaml:"r1" json:"r1"`
	K1 decimal.Decimal `yaml:"k1" json:"k1"`
	R2 decimal.Decimal `yaml:"r2" json:"r2"`
	K2 decimal.Decimal `yaml:"k2" json:"k2"`
}

// Boundaries returns b0..b3 in ascending order
func (tb TaxBrackets) Boundaries() []decimal.Decimal {
	return []decimal.Decimal{tb.BasicAllowance, tb.FirstZoneEnd, tb.SecondZoneEnd, tb.TopZoneStart}
}

// SoliConstants contains the solidarity surcharge parameters. A nil exemption
// or relief zone means the values have not been defined for the year.
type SoliConstants struct {
	Rate              decimal.Decimal  `yaml:"rate" json:"rate"`
	AnnualExemption   *decimal.Decimal `yaml:"annual_exemption,omitempty" json:"annual_exemption,omitempty"`
	ReliefZonePercent *decimal.Decimal `yaml:"relief_zone_percent,omitempty" json:"relief_zone_percent,omitempty"`
}

// Defined reports whether both the exemption and the relief zone are known
func (sc SoliConstants) Defined() bool {
	return sc.AnnualExemption != nil && sc.ReliefZonePercent != nil
}

// MonthlyExemption returns the exemption threshold applied to monthly wage tax
func (sc SoliConstants) MonthlyExemption() decimal.Decimal {
	if sc.AnnualExemption == nil {
		return decimal.Zero
	}
	return sc.AnnualExemption.Div(decimal.NewFromInt(12))
}
