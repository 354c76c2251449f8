package compare

import (
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/calculation"
	"github.com/rgehrsitz/nettogo/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareScenarios evaluates all scenarios and compares them against the one with baseID
func (ce *CompareEngine) CompareScenarios(scenarios []domain.Scenario, baseID int) (*ComparisonSet, error) {
	return ce.CompareResults(ce.CalcEngine.EvaluateAll(scenarios), baseID)
}

// CompareResults compares already evaluated results against the one with baseID.
// The base must have a net income; alternatives without one are listed but not compared.
func (ce *CompareEngine) CompareResults(results []domain.Result, baseID int) (*ComparisonSet, error) {
	var base *domain.Result
	for i := range results {
		if results[i].Scenario.ID == baseID {
			base = &results[i]
			break
		}
	}
	if base == nil {
		return nil, fmt.Errorf("base scenario %d not found", baseID)
	}
	if base.Err != nil {
		return nil, fmt.Errorf("base scenario %d cannot be compared: %w", baseID, base.Err)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(*base)

	alternatives := []ComparisonResult{}
	for _, r := range results {
		if r.Scenario.ID == baseID {
			continue
		}
		alt := ce.MetricsCalculator.CalculateMetrics(r)
		alt = ce.MetricsCalculator.CalculateComparison(alt, baseResult)
		alternatives = append(alternatives, alt)
	}

	compSet := &ComparisonSet{
		BaseScenarioID:     baseID,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// Compare builds a comparison set from evaluated results without an engine
func Compare(results []domain.Result, baseID int) (*ComparisonSet, error) {
	return (&CompareEngine{MetricsCalculator: NewMetricsCalculator()}).CompareResults(results, baseID)
}
