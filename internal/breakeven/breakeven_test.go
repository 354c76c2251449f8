package breakeven

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/nettogo/internal/calculation"
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

func request(target string) OptimizationRequest {
	return OptimizationRequest{
		Base:        baseScenario(),
		Constraints: DefaultConstraints(decimal.RequireFromString(target)),
	}
}

func TestNewDefaultSolver(t *testing.T) {
	engine := calculation.NewEngine()
	solver := NewDefaultSolver(engine)

	assert.Same(t, engine, solver.CalcEngine)
	assert.Equal(t, DefaultSolverOptions(), solver.Options)
}

func TestSolve_RecoversKnownGross(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	result, err := solver.Solve(context.Background(), request("2051.41"))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Positive(t, result.Iterations)
	assert.True(t, result.RequiredGross.Sub(decimal.NewFromInt(3000)).Abs().LessThan(decimal.RequireFromString("0.05")),
		"got %s", result.RequiredGross)
	assert.True(t, result.Net.Sub(decimal.RequireFromString("2051.41")).Abs().LessThan(decimal.RequireFromString("0.005")))
	assert.Equal(t, "2051.41", result.BaseNet.StringFixed(2))
	assert.True(t, result.GrossDiffFromBase.Abs().LessThan(decimal.RequireFromString("0.05")))
}

func TestSolve_HigherTargetNeedsMoreGross(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	result, err := solver.Solve(context.Background(), request("3000"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.RequiredGross.GreaterThan(decimal.NewFromInt(4000)))
	assert.True(t, result.GrossDiffFromBase.IsPositive())
	assert.True(t, result.Breakdown.Complete())
}

func TestSolve_Errors(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	maxGross := decimal.NewFromInt(1000)

	tests := []struct {
		name    string
		req     OptimizationRequest
		wantMsg string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "missing target",
			req:     OptimizationRequest{Base: baseScenario()},
			wantMsg: "target net income is required",
		},
		{
			name:    "negative target",
			req:     request("-1"),
			wantMsg: "cannot be negative",
		},
		{
			name: "target out of range",
			req: func() OptimizationRequest {
				r := request("5000")
				r.Constraints.MaxGross = &maxGross
				return r
			}(),
			wantMsg: "exceeds the net income at the maximum gross",
		},
		{
			name: "year without tariff",
			req: func() OptimizationRequest {
				r := request("2000")
				r.Base.Year = 2025
				return r
			}(),
			wantMsg: "failed to calculate scenario",
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsUnavailable(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solver.Solve(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var be *BreakEvenError
			assert.True(t, errors.As(err, &be))
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestSolve_CancelledContext(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, request("2500"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	withChildren := baseScenario()
	withChildren.ID = 2
	withChildren.HasChildren = true
	unavailable := baseScenario()
	unavailable.ID = 3
	unavailable.Year = 2025

	results, errs := solver.SolveAll(context.Background(),
		[]domain.Scenario{baseScenario(), withChildren, unavailable},
		DefaultConstraints(decimal.NewFromInt(2500)))

	require.Len(t, results, 2)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "scenario 3")
	assert.True(t, results[1].RequiredGross.LessThan(results[0].RequiredGross),
		"no childless surcharge means less gross for the same net")
}

func TestSweep(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	points, err := solver.Sweep(context.Background(), baseScenario(),
		decimal.NewFromInt(1000), decimal.NewFromInt(5000), decimal.NewFromInt(1000))
	require.NoError(t, err)
	require.Len(t, points, 5)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Net.GreaterThan(points[i-1].Net))
		assert.True(t, points[i].MarginalRetention.IsPositive())
		assert.True(t, points[i].MarginalRetention.LessThan(decimal.NewFromInt(100)))
	}
	assert.Equal(t, "2051.41", points[2].Net.StringFixed(2))

	_, err = solver.Sweep(context.Background(), baseScenario(), decimal.Zero, decimal.NewFromInt(100), decimal.Zero)
	assert.Error(t, err)
}

func TestFormatters(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	result, err := solver.Solve(context.Background(), request("2500"))
	require.NoError(t, err)

	out := (&TableFormatter{}).Format(result)
	assert.Contains(t, out, "BREAK-EVEN GROSS SALARY")
	assert.Contains(t, out, "Target Net Income:   2500.00 €")
	assert.Contains(t, out, "converged")

	text, err := (&JSONFormatter{Pretty: true}).Format(result)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "2500", decoded["target_net"])

	points, err := solver.Sweep(context.Background(), baseScenario(), decimal.NewFromInt(2000), decimal.NewFromInt(3000), decimal.NewFromInt(500))
	require.NoError(t, err)
	sweep := (&TableFormatter{}).FormatSweep(points)
	assert.Equal(t, 5, len(strings.Split(strings.TrimSpace(sweep), "\n")))
}
