package compare

import (
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds the key figures of one scenario and its difference to the base
type ComparisonResult struct {
	ScenarioID int    `json:"scenarioId"`
	Label      string `json:"label"`
	Year       int    `json:"year"`

	Gross           decimal.Decimal `json:"gross"`
	Net             decimal.Decimal `json:"net"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	DeductionRate   decimal.Decimal `json:"deductionRate"` // percent of gross
	IncomeTax       decimal.Decimal `json:"incomeTax"`

	// Available is false when the scenario's net income could not be computed
	Available bool   `json:"available"`
	Note      string `json:"note,omitempty"`

	// Comparison to base
	NetDiffFromBase       decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase        decimal.Decimal `json:"netPctFromBase"`
	DeductionDiffFromBase decimal.Decimal `json:"deductionDiffFromBase"`
	GrossDiffFromBase     decimal.Decimal `json:"grossDiffFromBase"`
	MarginalRetentionRate decimal.Decimal `json:"marginalRetentionRate"` // percent of extra gross kept as net
	HasMarginalRetention  bool            `json:"hasMarginalRetention"`
}

// ComparisonSet represents a base scenario compared against alternatives
type ComparisonSet struct {
	BaseScenarioID     int                `json:"baseScenarioId"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// Label describes a scenario in one short line
func Label(s domain.Scenario) string {
	kids := "childless"
	if s.HasChildren {
		kids = "with children"
	}
	return fmt.Sprintf("#%d %d %s€ age %d %s", s.ID, s.Year, s.GrossMonthly.StringFixed(0), s.Age, kids)
}

// MetricsCalculator extracts comparison metrics from evaluation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the figures of a single result
func (mc *MetricsCalculator) CalculateMetrics(r domain.Result) ComparisonResult {
	result := ComparisonResult{
		ScenarioID: r.Scenario.ID,
		Label:      Label(r.Scenario),
		Year:       r.Scenario.Year,
		Gross:      r.Scenario.GrossMonthly,
	}

	b := r.Breakdown
	if r.Err != nil || !b.Net.Valid {
		result.Note = "not comparable"
		if r.Err != nil {
			result.Note = r.Err.Error()
		}
		return result
	}

	result.Available = true
	result.Net = b.Net.Decimal
	result.IncomeTax = b.IncomeTax.Decimal
	result.TotalDeductions, _ = b.TotalDeductions()
	if !result.Gross.IsZero() {
		result.DeductionRate = result.TotalDeductions.Div(result.Gross).Mul(decimal.NewFromInt(100))
	}
	return result
}

// CalculateComparison computes the difference between a scenario and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	if !scenario.Available || !base.Available {
		return scenario
	}

	scenario.NetDiffFromBase = scenario.Net.Sub(base.Net)
	scenario.DeductionDiffFromBase = scenario.TotalDeductions.Sub(base.TotalDeductions)
	scenario.GrossDiffFromBase = scenario.Gross.Sub(base.Gross)

	if !base.Net.IsZero() {
		scenario.NetPctFromBase = scenario.NetDiffFromBase.
			Div(base.Net).
			Mul(decimal.NewFromInt(100))
	}
	if !scenario.GrossDiffFromBase.IsZero() {
		scenario.MarginalRetentionRate = scenario.NetDiffFromBase.
			Div(scenario.GrossDiffFromBase).
			Mul(decimal.NewFromInt(100))
		scenario.HasMarginalRetention = true
	}
	return scenario
}

// GenerateRecommendations summarizes the comparison in a few sentences
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Highest net income
	best := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Available && alt.Net.GreaterThan(best.Net) {
			best = alt
		}
	}
	if best != compSet.BaseResult {
		recommendations = append(recommendations,
			"Highest Net: "+best.Label+" keeps "+best.NetDiffFromBase.StringFixed(2)+
				" € more per month than the base scenario")
	}

	// Lowest deduction rate
	lowest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Available && alt.DeductionRate.LessThan(lowest.DeductionRate) {
			lowest = alt
		}
	}
	if lowest != compSet.BaseResult {
		recommendations = append(recommendations,
			"Lowest Deduction Rate: "+lowest.Label+" at "+lowest.DeductionRate.StringFixed(1)+"% of gross")
	}

	for _, alt := range compSet.AlternativeResults {
		if !alt.Available {
			recommendations = append(recommendations,
				fmt.Sprintf("Not Compared: #%d (%s)", alt.ScenarioID, alt.Note))
		}
	}

	return recommendations
}
