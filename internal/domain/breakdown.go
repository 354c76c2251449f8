package domain

import (
	"github.com/shopspring/decimal"
)

// DeductionBreakdown is the gross-to-net result of one scenario. All amounts
// are monthly and unrounded; formatters round for display.
//
// IncomeTax, Soli and Net are invalid when the year's formula is not available.
type DeductionBreakdown struct {
	ScenarioID    int                 `yaml:"scenario_id" json:"scenario_id"`
	Year          int                 `yaml:"year" json:"year"`
	Gross         decimal.Decimal     `yaml:"gross" json:"gross"`
	KV            decimal.Decimal     `yaml:"kv" json:"kv"`
	PV            decimal.Decimal     `yaml:"pv" json:"pv"`
	RV            decimal.Decimal     `yaml:"rv" json:"rv"`
	AV            decimal.Decimal     `yaml:"av" json:"av"`
	TaxableIncome decimal.Decimal     `yaml:"taxable_income" json:"taxable_income"` // annual zvE
	IncomeTax     decimal.NullDecimal `yaml:"income_tax" json:"income_tax"`
	Soli          decimal.NullDecimal `yaml:"soli" json:"soli"`
	Net           decimal.NullDecimal `yaml:"net" json:"net"`
}

// SocialContributions returns KV + PV + RV + AV
func (b DeductionBreakdown) SocialContributions() decimal.Decimal {
	return b.KV.Add(b.PV).Add(b.RV).Add(b.AV)
}

// TotalDeductions returns gross minus net, or false if net is unavailable
func (b DeductionBreakdown) TotalDeductions() (decimal.Decimal, bool) {
	if !b.Net.Valid {
		return decimal.Zero, false
	}
	return b.Gross.Sub(b.Net.Decimal), true
}

// Complete reports whether every figure of the breakdown could be computed
func (b DeductionBreakdown) Complete() bool {
	return b.IncomeTax.Valid && b.Soli.Valid && b.Net.Valid
}

// Result pairs a scenario with its breakdown or the error that stopped it.
// Breakdown may be partially filled when Err is a *FormulaUnavailableError.
type Result struct {
	Scenario  Scenario
	Breakdown DeductionBreakdown
	Err       error
}
