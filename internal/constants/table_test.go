package constants

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Years(t *testing.T) {
	table := Default()
	assert.Equal(t, []int{2024, 2025}, table.Years())
	assert.True(t, table.Supports(2024))
	assert.False(t, table.Supports(2023))
}

func TestLookup_SupportedYear(t *testing.T) {
	c, err := Default().Lookup(2024)
	require.NoError(t, err)

	assert.True(t, c.HealthCare.Ceiling.Equal(decimal.NewFromInt(5175)))
	assert.True(t, c.Pension.Ceiling.Equal(decimal.NewFromInt(7550)))
	require.NotNil(t, c.IncomeTax)
	assert.True(t, c.IncomeTax.BasicAllowance.Equal(decimal.NewFromInt(11604)))
	assert.True(t, c.Soli.Defined())
}

func TestLookup_UnsupportedYear(t *testing.T) {
	for _, year := range []int{2023, 2026, 0} {
		_, err := Default().Lookup(year)
		var uye *domain.UnsupportedYearError
		if assert.True(t, errors.As(err, &uye), "year %d", year) {
			assert.Equal(t, year, uye.Year)
		}
	}
}

func TestLookup_2025HasUndefinedTariff(t *testing.T) {
	c, err := Default().Lookup(2025)
	require.NoError(t, err)
	assert.Nil(t, c.IncomeTax)
	assert.False(t, c.Soli.Defined())
	assert.True(t, c.HealthCare.Ceiling.Equal(decimal.RequireFromString("5512.5")))
}

func TestNew_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.YearConstants)
		want   string
	}{
		{"zero KV ceiling", func(c *domain.YearConstants) { c.HealthCare.Ceiling = decimal.Zero }, "KV/PV ceiling"},
		{"negative RV rate", func(c *domain.YearConstants) { c.Pension.RVRate = decimal.NewFromInt(-1) }, "rv_rate"},
		{"reduced above standard", func(c *domain.YearConstants) { c.HealthCare.KVReducedRate = decimal.NewFromInt(20) }, "reduced KV rate"},
		{"unordered brackets", func(c *domain.YearConstants) { c.IncomeTax.FirstZoneEnd = decimal.NewFromInt(100) }, "ascending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Year2024()
			tb := *rec.IncomeTax
			rec.IncomeTax = &tb
			tt.mutate(&rec)

			_, err := New(rec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_RejectsDuplicateYear(t *testing.T) {
	_, err := New(Year2024(), Year2024())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New()
	assert.Error(t, err)
}

func TestLoadFromFile_MatchesBuiltIn(t *testing.T) {
	loaded, err := LoadFromFile("../../testdata/constants.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default().Years(), loaded.Years())

	got, err := loaded.Lookup(2024)
	require.NoError(t, err)
	want := Year2024()

	assert.True(t, want.HealthCare.KVRate.Equal(got.HealthCare.KVRate))
	assert.True(t, want.IncomeTax.K2.Equal(got.IncomeTax.K2))
	assert.True(t, want.Soli.AnnualExemption.Equal(*got.Soli.AnnualExemption))

	got2025, err := loaded.Lookup(2025)
	require.NoError(t, err)
	assert.Nil(t, got2025.IncomeTax)
	assert.Nil(t, got2025.Soli.ReliefZonePercent)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("years:\n  - year: 2024\n    bogus: 1\n"))
	assert.Error(t, err)
}

func TestExport_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Export(&buf))

	reloaded, err := Load(&buf)
	require.NoError(t, err)

	c, err := reloaded.Lookup(2024)
	require.NoError(t, err)
	assert.True(t, c.IncomeTax.C1.Equal(decimal.RequireFromString("922.98")))

	c25, err := reloaded.Lookup(2025)
	require.NoError(t, err)
	assert.Nil(t, c25.IncomeTax)
}
