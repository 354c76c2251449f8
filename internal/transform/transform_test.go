package transform

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseScenario() domain.Scenario {
	return domain.Scenario{
		ID:               1,
		Year:             2024,
		GrossMonthly:     decimal.NewFromInt(3000),
		Age:              30,
		AdditionalKVRate: decimal.RequireFromString("1.7"),
	}
}

func TestApplyTransforms_Empty(t *testing.T) {
	base := baseScenario()
	result, err := ApplyTransforms(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base, result)
}

func TestApplyTransforms_Chain(t *testing.T) {
	base := baseScenario()
	result, err := ApplyTransforms(base, []ScenarioTransform{
		&RaiseGross{Percent: decimal.NewFromInt(10)},
		&RaiseGross{Amount: decimal.NewFromInt(100)},
		&SetChildren{HasChildren: true},
		&SetAge{Age: 40},
	})
	require.NoError(t, err)

	assert.Equal(t, "3400.00", result.GrossMonthly.StringFixed(2))
	assert.True(t, result.HasChildren)
	assert.Equal(t, 40, result.Age)
	assert.Equal(t, base.ID, result.ID)

	// the base is a value and stays untouched
	assert.Equal(t, "3000", base.GrossMonthly.String())
	assert.False(t, base.HasChildren)
}

func TestApplyTransforms_Errors(t *testing.T) {
	tests := []struct {
		name       string
		transforms []ScenarioTransform
		wantErr    string
	}{
		{"nil transform", []ScenarioTransform{nil}, "index 0 is nil"},
		{"zero raise", []ScenarioTransform{&RaiseGross{}}, "percent or amount is required"},
		{"raise below -100%", []ScenarioTransform{&RaiseGross{Percent: decimal.NewFromInt(-100)}}, "greater than -100"},
		{"negative gross", []ScenarioTransform{&SetGross{Gross: decimal.NewFromInt(-1)}}, "must not be negative"},
		{"too young", []ScenarioTransform{&SetAge{Age: 15}}, "at least 16"},
		{"negative rate", []ScenarioTransform{&SetKVRate{Rate: decimal.NewFromInt(-1)}}, "must not be negative"},
		{"cut below zero", []ScenarioTransform{&RaiseGross{Amount: decimal.NewFromInt(-5000)}}, "invalid scenario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyTransforms(baseScenario(), tt.transforms)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTransformError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewTransformError("set_age", "apply", "failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "transform set_age (apply): failed: boom", err.Error())
}

func TestRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()
	assert.Equal(t, []string{"raise_gross", "set_age", "set_children", "set_gross", "set_kv_rate", "set_year"}, registry.List())

	tests := []struct {
		spec     string
		wantDesc string
	}{
		{"raise_gross:percent=5", "gross +5%"},
		{"raise_gross:amount=250", "gross +250.00 €"},
		{"raise_gross:percent=-10,amount=50", "gross -10% +50.00 €"},
		{"set_gross:gross=4500", "gross 4500.00 €"},
		{"set_age:age=45", "age 45"},
		{"set_children:children=yes", "with children"},
		{"set_children:children=false", "childless"},
		{"set_kv_rate:rate=2.5", "additional KV rate 2.5%"},
		{"set_year:year=2025", "year 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			transform, err := registry.ParseTransformSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, transform.Description())
		})
	}
}

func TestRegistry_ParseErrors(t *testing.T) {
	registry := NewTransformRegistry()

	for _, spec := range []string{
		"raise_gross",
		"raise_gross:",
		"raise_gross:percent",
		"raise_gross:percent=abc",
		"set_age:years=40",
		"set_age:age=old",
		"set_children:children=maybe",
		"set_gross:",
		"set_kv_rate:",
		"unknown:x=1",
	} {
		_, err := registry.ParseTransformSpec(spec)
		assert.Error(t, err, spec)
	}
}

func TestRegistry_ParseTransformSpecs(t *testing.T) {
	registry := NewTransformRegistry()

	transforms, err := registry.ParseTransformSpecs("raise_gross:percent=5; set_children:children=true")
	require.NoError(t, err)
	require.Len(t, transforms, 2)
	assert.Equal(t, "gross +5%, with children", Describe(transforms))

	_, err = registry.ParseTransformSpecs(" ; ")
	assert.Error(t, err)
}

func TestBuiltInTemplates(t *testing.T) {
	templates := CreateBuiltInTemplates()
	assert.Equal(t, []string{"cheap_insurer", "first_child", "next_year", "raise_10pct", "raise_3pct", "raise_5pct"}, templates.List())

	tmpl, ok := templates.Get("RAISE_5PCT")
	require.True(t, ok)
	result, err := ApplyTransforms(baseScenario(), tmpl.Transforms)
	require.NoError(t, err)
	assert.Equal(t, "3150.00", result.GrossMonthly.StringFixed(2))

	tmpl, ok = templates.Get("next_year")
	require.True(t, ok)
	result, err = ApplyTransforms(baseScenario(), tmpl.Transforms)
	require.NoError(t, err)
	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, "year +1", Describe(tmpl.Transforms))

	_, ok = templates.Get("postpone")
	assert.False(t, ok)
}
