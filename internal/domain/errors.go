package domain

import (
	"errors"
	"fmt"
)

// Components that can be missing from a year's constants
const (
	ComponentIncomeTax = "income_tax"
	ComponentSoli      = "solidarity_surcharge"
)

// UnsupportedYearError is returned when no constants exist for a year
type UnsupportedYearError struct {
	Year int
}

func (e *UnsupportedYearError) Error() string {
	return fmt.Sprintf("unsupported year %d", e.Year)
}

// FormulaUnavailableError is returned when a year's tax tariff or solidarity
// surcharge constants have not been defined yet
type FormulaUnavailableError struct {
	Year      int
	Component string
}

func (e *FormulaUnavailableError) Error() string {
	return fmt.Sprintf("%s data not available for %d", e.Component, e.Year)
}

// ValidationError describes a scenario field that violates its constraints
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsUnavailable reports whether err marks missing year data rather than a failure
func IsUnavailable(err error) bool {
	var fue *FormulaUnavailableError
	return errors.As(err, &fue)
}

// ErrorKind returns a short machine-readable classification of err
func ErrorKind(err error) string {
	var (
		uye *UnsupportedYearError
		fue *FormulaUnavailableError
		ve  *ValidationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &uye):
		return "unsupported_year"
	case errors.As(err, &fue):
		return "formula_unavailable"
	case errors.As(err, &ve):
		return "validation"
	default:
		return "internal"
	}
}
