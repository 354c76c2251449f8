package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario is one income case under evaluation
type Scenario struct {
	ID               int             `yaml:"id" json:"id"`
	Year             int             `yaml:"year" json:"year"`
	GrossMonthly     decimal.Decimal `yaml:"gross_monthly" json:"gross_monthly"`
	Age              int             `yaml:"age" json:"age"`
	AdditionalKVRate decimal.Decimal `yaml:"additional_kv_rate" json:"additional_kv_rate"` // percentage points
	HasChildren      bool            `yaml:"has_children" json:"has_children"`
}

// MinimumAge is the youngest age a scenario may carry
const MinimumAge = 16

// ChildlessSurchargeAge is the age from which childless employees pay the PV surcharge
const ChildlessSurchargeAge = 23

// Validate checks the scenario field constraints. It does not check that the
// year is supported; that is the constants table's concern.
func (s Scenario) Validate() error {
	if s.GrossMonthly.IsNegative() {
		return &ValidationError{Field: "gross_monthly", Reason: "must not be negative"}
	}
	if s.Age < MinimumAge {
		return &ValidationError{Field: "age", Reason: "must be at least 16"}
	}
	if s.AdditionalKVRate.IsNegative() {
		return &ValidationError{Field: "additional_kv_rate", Reason: "must not be negative"}
	}
	return nil
}

// ChildlessSurchargeApplies reports whether the employee pays the PV surcharge for childless adults
func (s Scenario) ChildlessSurchargeApplies() bool {
	return s.Age >= ChildlessSurchargeAge && !s.HasChildren
}
