package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/calculation"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// Solver searches gross salaries with the calculation engine
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve finds the gross salary at which the base scenario reaches the target
// net income. Net income grows with gross, so a bisection over the allowed
// range converges.
func (s *Solver) Solve(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	defaults := DefaultConstraints(*req.Constraints.TargetNet)
	lo, hi := *defaults.MinGross, *defaults.MaxGross
	if req.Constraints.MinGross != nil {
		lo = *req.Constraints.MinGross
	}
	if req.Constraints.MaxGross != nil {
		hi = *req.Constraints.MaxGross
	}
	target := *req.Constraints.TargetNet

	loBreakdown, err := s.evaluate(req.Base, lo)
	if err != nil {
		return nil, err
	}
	if target.LessThan(loBreakdown.Net.Decimal) {
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("target %s is below the net income at the minimum gross (%s)", target.StringFixed(2), loBreakdown.Net.Decimal.StringFixed(2)),
		}
	}
	hiBreakdown, err := s.evaluate(req.Base, hi)
	if err != nil {
		return nil, err
	}
	if target.GreaterThan(hiBreakdown.Net.Decimal) {
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("target %s exceeds the net income at the maximum gross (%s)", target.StringFixed(2), hiBreakdown.Net.Decimal.StringFixed(2)),
		}
	}

	two := decimal.NewFromInt(2)
	minStep := decimal.RequireFromString("0.0001")
	iterations := 0
	mid := lo
	var b domain.DeductionBreakdown

	for iterations < req.MaxIterations {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid = lo.Add(hi).Div(two)
		b, err = s.evaluate(req.Base, mid)
		if err != nil {
			return nil, err
		}

		diff := b.Net.Decimal.Sub(target)
		if diff.Abs().LessThan(req.Tolerance) {
			return s.result(req, mid, b, iterations, true,
				fmt.Sprintf("Converged to target net within %s €", req.Tolerance.String()))
		}
		if diff.IsNegative() {
			lo = mid
		} else {
			hi = mid
		}

		if hi.Sub(lo).LessThan(minStep) {
			return s.result(req, mid, b, iterations, true, "Bisection converged")
		}
	}

	return s.result(req, mid, b, iterations, false,
		fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations))
}

// evaluate runs the base scenario at another gross salary. Years without a
// tax tariff cannot be solved.
func (s *Solver) evaluate(base domain.Scenario, gross decimal.Decimal) (domain.DeductionBreakdown, error) {
	sc := base
	sc.GrossMonthly = gross
	b, err := s.CalcEngine.Evaluate(sc)
	if err != nil {
		return b, &BreakEvenError{
			Operation: "solve",
			Message:   "failed to calculate scenario",
			Cause:     err,
		}
	}
	return b, nil
}

func (s *Solver) result(req OptimizationRequest, gross decimal.Decimal, b domain.DeductionBreakdown, iterations int, success bool, info string) (*OptimizationResult, error) {
	result := &OptimizationResult{
		Request:         req,
		Success:         success,
		Iterations:      iterations,
		ConvergenceInfo: info,
		TargetNet:       *req.Constraints.TargetNet,
		RequiredGross:   gross,
		Net:             b.Net.Decimal,
		Breakdown:       b,
		BaseGross:       req.Base.GrossMonthly,
	}

	baseBreakdown, err := s.evaluate(req.Base, req.Base.GrossMonthly)
	if err != nil {
		return nil, err
	}
	result.BaseNet = baseBreakdown.Net.Decimal
	result.GrossDiffFromBase = gross.Sub(req.Base.GrossMonthly)
	return result, nil
}
