package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareScenarios compares the named alternatives against the base scenario.
// An empty alternative list compares every other scenario of the configuration.
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	config *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is nil")
	}

	set, err := ce.CalcEngine.RunScenarios(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate scenarios: %w", err)
	}

	baseRun, ok := set.Find(baseScenarioName)
	if !ok {
		return nil, fmt.Errorf("base scenario %s not found", baseScenarioName)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseRun)

	if len(alternativeScenarioNames) == 0 {
		for _, sc := range set.Scenarios {
			if sc.Name != baseScenarioName {
				alternativeScenarioNames = append(alternativeScenarioNames, sc.Name)
			}
		}
	}

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		altRun, ok := set.Find(altName)
		if !ok {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}
		altResult := ce.MetricsCalculator.CalculateMetrics(altRun)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	locale, ok := domain.LookupLocale(config.Locale)
	if !ok {
		locale = domain.DefaultLocale
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		Locale:             locale,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
