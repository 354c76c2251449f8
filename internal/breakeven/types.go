// Package breakeven finds the gross salary that yields a target net income.
package breakeven

import (
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// Constraints bound the gross salaries the solver may try
type Constraints struct {
	MinGross *decimal.Decimal `json:"min_gross,omitempty"`
	MaxGross *decimal.Decimal `json:"max_gross,omitempty"`

	// Monthly net income to reach (required)
	TargetNet *decimal.Decimal `json:"target_net,omitempty"`
}

// DefaultConstraints searches gross salaries from 0 to 50,000 € a month
func DefaultConstraints(targetNet decimal.Decimal) Constraints {
	minGross := decimal.Zero
	maxGross := decimal.NewFromInt(50000)
	return Constraints{
		MinGross:  &minGross,
		MaxGross:  &maxGross,
		TargetNet: &targetNet,
	}
}

// OptimizationRequest defines the parameters for a solver run. Everything
// but the gross salary is taken from Base.
type OptimizationRequest struct {
	Base          domain.Scenario
	Constraints   Constraints
	MaxIterations int             // Maximum bisection steps
	Tolerance     decimal.Decimal // Accepted distance from the target net
}

// OptimizationResult contains the results of a solver run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"-"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	TargetNet     decimal.Decimal           `json:"target_net"`
	RequiredGross decimal.Decimal           `json:"required_gross"`
	Net           decimal.Decimal           `json:"net"`
	Breakdown     domain.DeductionBreakdown `json:"-"`

	// Comparison to the base scenario's own gross
	BaseGross         decimal.Decimal `json:"base_gross"`
	BaseNet           decimal.Decimal `json:"base_net"`
	GrossDiffFromBase decimal.Decimal `json:"gross_diff_from_base"`
}

// SweepPoint is the net income at one gross salary
type SweepPoint struct {
	Gross      decimal.Decimal `json:"gross"`
	Net        decimal.Decimal `json:"net"`
	Deductions decimal.Decimal `json:"deductions"`
	// Percent of the step from the previous point kept as net; zero for the first point
	MarginalRetention decimal.Decimal `json:"marginal_retention"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance on the net income
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.RequireFromString("0.005"), // half a cent
		MaxIterations: 100,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	if c.TargetNet == nil {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "target net income is required",
		}
	}
	if c.TargetNet.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "target net income cannot be negative",
		}
	}
	if c.MinGross != nil && c.MinGross.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_gross cannot be negative",
		}
	}
	if c.MinGross != nil && c.MaxGross != nil && c.MinGross.GreaterThan(*c.MaxGross) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_gross cannot be greater than max_gross",
		}
	}
	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
