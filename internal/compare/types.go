package compare

import (
	"fmt"
	"strconv"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                 `json:"scenarioName"`
	Description  string                 `json:"description,omitempty"`
	Result       *domain.ScenarioResult `json:"-"`

	// Key Metrics, rounded to cents
	FinalValue       decimal.Decimal `json:"finalValue"`
	TotalContributed decimal.Decimal `json:"totalContributed"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	InterestShare    decimal.Decimal `json:"interestShare"` // percent of the final value earned as interest
	TotalMonths      int             `json:"totalMonths"`

	// Undefined marks a NaN or infinite result; its metrics stay zero
	Undefined bool `json:"undefined,omitempty"`

	// Comparison to Base
	FinalDiffFromBase       decimal.Decimal `json:"finalDiffFromBase"`
	FinalPctFromBase        decimal.Decimal `json:"finalPctFromBase"`
	InterestDiffFromBase    decimal.Decimal `json:"interestDiffFromBase"`
	ContributedDiffFromBase decimal.Decimal `json:"contributedDiffFromBase"`
	MonthsDiffFromBase      int             `json:"monthsDiffFromBase"`

	// Scenario Specifics (extracted from the input for display)
	Rate     string `json:"rate"`
	Duration string `json:"duration"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
	Locale             domain.Locale      `json:"locale"`
}

// MetricsCalculator extracts key metrics from scenario results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one scenario result
func (mc *MetricsCalculator) CalculateMetrics(sr *domain.ScenarioResult) ComparisonResult {
	res := sr.Result
	result := ComparisonResult{
		ScenarioName: sr.Name,
		Description:  sr.Description,
		Result:       sr,
		TotalMonths:  res.TotalMonths,
		Rate:         fmt.Sprintf("%s%% %s", strconv.FormatFloat(sr.Input.NominalRate, 'f', -1, 64), sr.Input.RateBasis),
		Duration:     fmt.Sprintf("%d %s", sr.Input.Duration, sr.Input.DurationUnit),
	}
	if !res.Finite() {
		result.Undefined = true
		return result
	}
	result.FinalValue = decimal.NewFromFloat(res.FinalValue).Round(2)
	result.TotalContributed = decimal.NewFromFloat(res.TotalContributed).Round(2)
	result.TotalInterest = decimal.NewFromFloat(res.TotalInterest).Round(2)
	if !result.FinalValue.IsZero() {
		result.InterestShare = result.TotalInterest.Div(result.FinalValue).Mul(hundred).Round(2)
	}
	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.MonthsDiffFromBase = scenario.TotalMonths - base.TotalMonths
	if scenario.Undefined || base.Undefined {
		return scenario
	}
	scenario.FinalDiffFromBase = scenario.FinalValue.Sub(base.FinalValue)
	if !base.FinalValue.IsZero() {
		scenario.FinalPctFromBase = scenario.FinalDiffFromBase.
			Div(base.FinalValue).
			Mul(hundred).
			Round(2)
	}
	scenario.InterestDiffFromBase = scenario.TotalInterest.Sub(base.TotalInterest)
	scenario.ContributedDiffFromBase = scenario.TotalContributed.Sub(base.TotalContributed)
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || compSet.BaseResult.Undefined || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult
	loc := compSet.Locale
	if loc.Symbol == "" {
		loc = domain.DefaultLocale
	}

	// Highest final value
	best := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.Undefined && alt.FinalValue.GreaterThan(best.FinalValue) {
			best = alt
		}
	}
	if best != base {
		diff := best.FinalValue.Sub(base.FinalValue)
		recommendations = append(recommendations,
			"Highest Final Value: "+best.ScenarioName+" ends with "+output.Money(loc, diff.InexactFloat64())+
				" more than the base scenario")
	}

	// Largest share of the final value coming from interest
	bestShare := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.Undefined && alt.InterestShare.GreaterThan(bestShare.InterestShare) {
			bestShare = alt
		}
	}
	if bestShare != base {
		recommendations = append(recommendations,
			"Best Interest Share: "+bestShare.ScenarioName+" earns "+bestShare.InterestShare.StringFixed(2)+
				"% of its final value as interest")
	}

	// Lowest out-of-pocket
	cheapest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.Undefined && alt.TotalContributed.LessThan(cheapest.TotalContributed) {
			cheapest = alt
		}
	}
	if cheapest != base {
		savings := base.TotalContributed.Sub(cheapest.TotalContributed)
		recommendations = append(recommendations,
			"Lowest Contribution: "+cheapest.ScenarioName+" needs "+output.Money(loc, savings.InexactFloat64())+
				" less in contributions")
	}

	return recommendations
}
