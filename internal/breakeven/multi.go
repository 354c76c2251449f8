package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// SolveAll solves the same target for several scenarios. Scenarios that
// cannot be solved are skipped and reported in the returned error list.
func (s *Solver) SolveAll(ctx context.Context, scenarios []domain.Scenario, constraints Constraints) ([]OptimizationResult, []error) {
	var results []OptimizationResult
	var errs []error

	for _, sc := range scenarios {
		req := OptimizationRequest{
			Base:          sc,
			Constraints:   constraints,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Solve(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return results, append(errs, ctx.Err())
			}
			errs = append(errs, fmt.Errorf("scenario %d: %w", sc.ID, err))
			continue
		}
		results = append(results, *result)
	}
	return results, errs
}

// Sweep evaluates the base scenario at gross salaries from `from` to `to`
// in steps of `step`
func (s *Solver) Sweep(ctx context.Context, base domain.Scenario, from, to, step decimal.Decimal) ([]SweepPoint, error) {
	if !step.IsPositive() {
		return nil, &BreakEvenError{Operation: "sweep", Message: "step must be positive"}
	}
	if from.IsNegative() || from.GreaterThan(to) {
		return nil, &BreakEvenError{Operation: "sweep", Message: "invalid gross range"}
	}

	var points []SweepPoint
	for gross := from; gross.LessThanOrEqual(to); gross = gross.Add(step) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		b, err := s.evaluate(base, gross)
		if err != nil {
			return nil, err
		}
		deductions, _ := b.TotalDeductions()
		p := SweepPoint{Gross: gross, Net: b.Net.Decimal, Deductions: deductions}
		if n := len(points); n > 0 {
			prev := points[n-1]
			p.MarginalRetention = p.Net.Sub(prev.Net).Div(gross.Sub(prev.Gross)).Mul(decimal.NewFromInt(100))
		}
		points = append(points, p)
	}
	return points, nil
}
