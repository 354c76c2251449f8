// Package constants holds the per-year contribution and tax parameters.
package constants

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// Table is an immutable lookup of YearConstants keyed by assessment year
type Table struct {
	years map[int]domain.YearConstants
}

// New builds a table from the given records. Each year may appear only once.
func New(records ...domain.YearConstants) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("constants table needs at least one year")
	}
	years := make(map[int]domain.YearConstants, len(records))
	for _, rec := range records {
		if _, dup := years[rec.Year]; dup {
			return nil, fmt.Errorf("duplicate constants for year %d", rec.Year)
		}
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("constants for year %d: %w", rec.Year, err)
		}
		years[rec.Year] = rec
	}
	return &Table{years: years}, nil
}

// Lookup returns the constants for year or an *domain.UnsupportedYearError
func (t *Table) Lookup(year int) (domain.YearConstants, error) {
	c, ok := t.years[year]
	if !ok {
		return domain.YearConstants{}, &domain.UnsupportedYearError{Year: year}
	}
	return c, nil
}

// Years returns the supported years in ascending order
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Supports reports whether the table has constants for year
func (t *Table) Supports(year int) bool {
	_, ok := t.years[year]
	return ok
}

func validateRecord(rec domain.YearConstants) error {
	if rec.Year <= 0 {
		return fmt.Errorf("year must be positive")
	}
	if !rec.HealthCare.Ceiling.IsPositive() {
		return fmt.Errorf("KV/PV ceiling must be positive")
	}
	if !rec.Pension.Ceiling.IsPositive() {
		return fmt.Errorf("RV/AV ceiling must be positive")
	}
	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"kv_rate", rec.HealthCare.KVRate},
		{"kv_reduced_rate", rec.HealthCare.KVReducedRate},
		{"pv_rate", rec.HealthCare.PVRate},
		{"pv_childless_rate", rec.HealthCare.PVChildlessRate},
		{"rv_rate", rec.Pension.RVRate},
		{"av_rate", rec.Pension.AVRate},
		{"solidarity surcharge rate", rec.Soli.Rate},
	}
	for _, r := range rates {
		if r.rate.IsNegative() {
			return fmt.Errorf("%s cannot be negative", r.name)
		}
	}
	if rec.HealthCare.KVReducedRate.GreaterThan(rec.HealthCare.KVRate) {
		return fmt.Errorf("reduced KV rate cannot exceed the standard rate")
	}
	if rec.WorkExpenseAllowance.IsNegative() {
		return fmt.Errorf("work expense allowance cannot be negative")
	}
	if tb := rec.IncomeTax; tb != nil {
		b := tb.Boundaries()
		for i := 1; i < len(b); i++ {
			if !b[i].GreaterThan(b[i-1]) {
				return fmt.Errorf("income tax bracket boundaries must be strictly ascending")
			}
		}
		if tb.BasicAllowance.IsNegative() {
			return fmt.Errorf("basic allowance cannot be negative")
		}
	}
	return nil
}
