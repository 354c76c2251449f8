package calculation

import (
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/constants"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine turns scenarios into deduction breakdowns. It holds no mutable state
// after construction and may be shared between goroutines.
type Engine struct {
	Constants *constants.Table
	Logger    Logger

	formulas map[int]IncomeTaxFormula
}

// NewEngine creates an engine over the built-in constants table
func NewEngine() *Engine {
	return NewEngineWithConstants(constants.Default())
}

// NewEngineWithConstants creates an engine over a custom constants table
func NewEngineWithConstants(table *constants.Table) *Engine {
	formulas := make(map[int]IncomeTaxFormula)
	for _, year := range table.Years() {
		c, _ := table.Lookup(year)
		formulas[year] = NewIncomeTaxFormula(c)
	}
	return &Engine{
		Constants: table,
		Logger:    NopLogger{},
		formulas:  formulas,
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Formula returns the income tax formula for a supported year
func (e *Engine) Formula(year int) (IncomeTaxFormula, error) {
	f, ok := e.formulas[year]
	if !ok {
		return nil, &domain.UnsupportedYearError{Year: year}
	}
	return f, nil
}

// Evaluate computes the gross-to-net breakdown of one scenario.
//
// When the year's tariff or surcharge constants are missing, the returned
// breakdown still carries the contributions and zvE, the unavailable figures
// are marked invalid, and the error is a *domain.FormulaUnavailableError.
func (e *Engine) Evaluate(s domain.Scenario) (domain.DeductionBreakdown, error) {
	if err := s.Validate(); err != nil {
		return domain.DeductionBreakdown{}, fmt.Errorf("scenario %d: %w", s.ID, err)
	}

	c, err := e.Constants.Lookup(s.Year)
	if err != nil {
		return domain.DeductionBreakdown{}, fmt.Errorf("scenario %d: %w", s.ID, err)
	}
	formula, err := e.Formula(s.Year)
	if err != nil {
		return domain.DeductionBreakdown{}, fmt.Errorf("scenario %d: %w", s.ID, err)
	}

	contrib := EmployeeContributions(s, c)
	zvE := TaxableIncome(s, c)

	b := domain.DeductionBreakdown{
		ScenarioID:    s.ID,
		Year:          s.Year,
		Gross:         s.GrossMonthly,
		KV:            contrib.KV,
		PV:            contrib.PV,
		RV:            contrib.RV,
		AV:            contrib.AV,
		TaxableIncome: zvE,
	}
	e.Logger.Debugf("scenario %d (%d): KV=%s PV=%s RV=%s AV=%s zvE=%s",
		s.ID, s.Year, contrib.KV, contrib.PV, contrib.RV, contrib.AV, zvE)

	tax, err := MonthlyIncomeTax(formula, zvE)
	if err != nil {
		e.Logger.Warnf("scenario %d: %v", s.ID, err)
		return b, fmt.Errorf("scenario %d: %w", s.ID, err)
	}
	b.IncomeTax = valid(tax)

	soli, err := SolidaritySurcharge(tax, c)
	if err != nil {
		e.Logger.Warnf("scenario %d: %v", s.ID, err)
		return b, fmt.Errorf("scenario %d: %w", s.ID, err)
	}
	b.Soli = valid(soli)

	net := s.GrossMonthly.Sub(contrib.Total()).Sub(tax).Sub(soli)
	b.Net = valid(net)
	e.Logger.Debugf("scenario %d: tax=%s soli=%s net=%s", s.ID, tax, soli, net)

	return b, nil
}

// EvaluateAll evaluates every scenario independently. A failing scenario
// records its error in its own result and does not stop the others.
func (e *Engine) EvaluateAll(scenarios []domain.Scenario) []domain.Result {
	results := make([]domain.Result, len(scenarios))
	failed := 0
	for i, s := range scenarios {
		b, err := e.Evaluate(s)
		results[i] = domain.Result{Scenario: s, Breakdown: b, Err: err}
		if err != nil && !domain.IsUnavailable(err) {
			failed++
		}
	}
	if failed > 0 {
		e.Logger.Infof("%d of %d scenarios could not be evaluated", failed, len(scenarios))
	}
	return results
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
