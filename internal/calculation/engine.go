package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/juros/internal/domain"
)

// ErrNonFinite is returned when a scenario's result is NaN or infinite
var ErrNonFinite = errors.New("result is not a finite number")

// Logger is the minimal logging surface the engine needs
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Engine runs the calculator over every scenario of a configuration
type Engine struct {
	// IncludeSchedule attaches the monthly ledger to each result
	IncludeSchedule bool

	Logger Logger
}

// NewEngine creates an engine with a no-op logger
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) log() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Run calculates a single scenario
func (e *Engine) Run(sc domain.Scenario) domain.ScenarioResult {
	log := e.log()
	in := sc.CalculationInput
	res := Calculate(in)
	log.Debugf("scenario %q: %d months at monthly rate %.8f", sc.Name, res.TotalMonths, res.MonthlyRate)
	if in.Duration < 0 {
		log.Warnf("scenario %q: negative duration %d treated as zero months", sc.Name, in.Duration)
	}
	if res.TotalInterest < 0 {
		log.Infof("scenario %q: negative interest %.2f", sc.Name, res.TotalInterest)
	}

	out := domain.ScenarioResult{
		Name:        sc.Name,
		Description: sc.Description,
		Input:       in,
		Result:      res,
	}
	if e.IncludeSchedule {
		out.Schedule = Schedule(in)
	}
	return out
}

// RunScenarios calculates every scenario of cfg in file order
func (e *Engine) RunScenarios(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioSet, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	set := &domain.ScenarioSet{
		Locale:    cfg.Locale,
		Scenarios: make([]domain.ScenarioResult, 0, len(cfg.Scenarios)),
	}
	for _, sc := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			e.log().Errorf("run aborted before scenario %q: %v", sc.Name, err)
			return nil, err
		}
		run := e.Run(sc)
		if !run.Result.Finite() {
			e.log().Errorf("scenario %q: final value %v", sc.Name, run.Result.FinalValue)
			return nil, fmt.Errorf("scenario %q (rate %v%% %s over %d months): %w",
				sc.Name, sc.NominalRate, sc.RateBasis.Normalize(), run.Result.TotalMonths, ErrNonFinite)
		}
		set.Scenarios = append(set.Scenarios, run)
	}
	e.log().Infof("calculated %d scenarios", len(set.Scenarios))
	return set, nil
}
