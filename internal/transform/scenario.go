package transform

import (
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RaiseGross changes the monthly gross salary by a percentage, an amount, or both.
// The percentage is applied first.
type RaiseGross struct {
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

func (t *RaiseGross) Apply(base domain.Scenario) (domain.Scenario, error) {
	next := base
	next.GrossMonthly = base.GrossMonthly.
		Mul(hundred.Add(t.Percent)).Div(hundred).
		Add(t.Amount)
	return next, nil
}

func (t *RaiseGross) Name() string { return "raise_gross" }

func (t *RaiseGross) Description() string {
	switch {
	case t.Amount.IsZero():
		return fmt.Sprintf("gross %s%%", signed(t.Percent.String(), t.Percent))
	case t.Percent.IsZero():
		return fmt.Sprintf("gross %s €", signed(t.Amount.StringFixed(2), t.Amount))
	default:
		return fmt.Sprintf("gross %s%% %s €", signed(t.Percent.String(), t.Percent), signed(t.Amount.StringFixed(2), t.Amount))
	}
}

func signed(text string, d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + text
	}
	return text
}

func (t *RaiseGross) Validate(base domain.Scenario) error {
	if t.Percent.IsZero() && t.Amount.IsZero() {
		return NewTransformError(t.Name(), "validate", "percent or amount is required", nil)
	}
	if t.Percent.LessThanOrEqual(hundred.Neg()) {
		return NewTransformError(t.Name(), "validate", "percent must be greater than -100", nil)
	}
	return nil
}

// SetGross replaces the monthly gross salary
type SetGross struct {
	Gross decimal.Decimal
}

func (t *SetGross) Apply(base domain.Scenario) (domain.Scenario, error) {
	next := base
	next.GrossMonthly = t.Gross
	return next, nil
}

func (t *SetGross) Name() string        { return "set_gross" }
func (t *SetGross) Description() string { return fmt.Sprintf("gross %s €", t.Gross.StringFixed(2)) }

func (t *SetGross) Validate(base domain.Scenario) error {
	if t.Gross.IsNegative() {
		return NewTransformError(t.Name(), "validate", "gross must not be negative", nil)
	}
	return nil
}

// SetAge replaces the employee's age
type SetAge struct {
	Age int
}

func (t *SetAge) Apply(base domain.Scenario) (domain.Scenario, error) {
	next := base
	next.Age = t.Age
	return next, nil
}

func (t *SetAge) Name() string        { return "set_age" }
func (t *SetAge) Description() string { return fmt.Sprintf("age %d", t.Age) }

func (t *SetAge) Validate(base domain.Scenario) error {
	if t.Age < domain.MinimumAge {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("age must be at least %d", domain.MinimumAge), nil)
	}
	return nil
}

// SetChildren sets whether the employee has children, which decides the PV surcharge
type SetChildren struct {
	HasChildren bool
}

func (t *SetChildren) Apply(base domain.Scenario) (domain.Scenario, error) {
	next := base
	next.HasChildren = t.HasChildren
	return next, nil
}

func (t *SetChildren) Name() string { return "set_children" }

func (t *SetChildren) Description() string {
	if t.HasChildren {
		return "with children"
	}
	return "childless"
}

func (t *SetChildren) Validate(domain.Scenario) error { return nil }

// SetKVRate replaces the health insurer's additional contribution rate
type SetKVRate struct {
	Rate decimal.Decimal // percentage points
}

func (t *SetKVRate) Apply(base domain.Scenario) (domain.Scenario, error) {
	next := base
	next.AdditionalKVRate = t.Rate
	return next, nil
}

func (t *SetKVRate) Name() string        { return "set_kv_rate" }
func (t *SetKVRate) Description() string { return fmt.Sprintf("additional KV rate %s%%", t.Rate.String()) }

func (t *SetKVRate) Validate(base domain.Scenario) error {
	if t.Rate.IsNegative() {
		return NewTransformError(t.Name(), "validate", "rate must not be negative", nil)
	}
	return nil
}

// SetYear moves the scenario to another calculation year. Whether the year is
// supported is decided when the scenario is evaluated.
type SetYear struct {
	Year int
}

func (t *SetYear) Apply(base domain.Scenario) (domain.Scenario, error) {
	next := base
	next.Year = t.Year
	return next, nil
}

func (t *SetYear) Name() string        { return "set_year" }
func (t *SetYear) Description() string { return fmt.Sprintf("year %d", t.Year) }

func (t *SetYear) Validate(base domain.Scenario) error {
	if t.Year <= 0 {
		return NewTransformError(t.Name(), "validate", "year must be positive", nil)
	}
	return nil
}
