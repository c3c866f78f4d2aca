package goalseek

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/juros/internal/config"
	"github.com/rgehrsitz/juros/internal/domain"
)

// Target identifies which input the solver is allowed to move
type Target string

const (
	// TargetPrincipal solves for the initial amount
	TargetPrincipal Target = "principal"
	// TargetMonthlyContribution solves for the monthly deposit
	TargetMonthlyContribution Target = "monthly_contribution"
	// TargetRate solves for the nominal rate, in the base input's rate basis
	TargetRate Target = "rate"
	// TargetDuration finds the first month whose closing balance reaches the target
	TargetDuration Target = "duration"
)

// ParseTarget accepts the canonical names plus a few short aliases
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "principal", "initial":
		return TargetPrincipal, nil
	case "monthly_contribution", "monthly-contribution", "contribution", "monthly":
		return TargetMonthlyContribution, nil
	case "rate", "interest":
		return TargetRate, nil
	case "duration", "months", "time":
		return TargetDuration, nil
	default:
		return "", fmt.Errorf("%w: unknown target %q (want principal, monthly_contribution, rate or duration)", ErrInvalidRequest, s)
	}
}

// Request describes a goal seek: move Target until the final value of Base
// equals TargetValue. Min and Max override the default search bounds.
type Request struct {
	Base        domain.CalculationInput `json:"base" yaml:"base"`
	Target      Target                  `json:"target" yaml:"target"`
	TargetValue float64                 `json:"targetValue" yaml:"target_value"`
	Min         *float64                `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64                `json:"max,omitempty" yaml:"max,omitempty"`
}

// Validate checks the request for obvious mistakes before any search runs
func (r Request) Validate() error {
	switch r.Target {
	case TargetPrincipal, TargetMonthlyContribution, TargetRate, TargetDuration:
	default:
		return fmt.Errorf("%w: unknown target %q", ErrInvalidRequest, r.Target)
	}
	if math.IsNaN(r.TargetValue) || math.IsInf(r.TargetValue, 0) {
		return fmt.Errorf("%w: target value must be a finite number", ErrInvalidRequest)
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("%w: min %.4f is greater than max %.4f", ErrInvalidRequest, *r.Min, *r.Max)
	}
	if r.Target == TargetRate && r.Min != nil && *r.Min <= -100 {
		return fmt.Errorf("%w: rate bound must be greater than -100%%", ErrInvalidRequest)
	}
	if r.Target == TargetDuration {
		if r.Max != nil && (*r.Max < 0 || *r.Max > config.MaxMonths) {
			return fmt.Errorf("%w: max months must be between 0 and %d", ErrInvalidRequest, config.MaxMonths)
		}
		if r.Min != nil && *r.Min > config.MaxMonths {
			return fmt.Errorf("%w: min months cannot exceed %d", ErrInvalidRequest, config.MaxMonths)
		}
	}
	return nil
}

// Result is the outcome of a goal seek
type Result struct {
	Request Request `json:"request"`

	Success         bool   `json:"success"`
	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergenceInfo,omitempty"`

	// Value is the solved input: an amount, a percentage or a month count
	Value float64 `json:"value"`

	// Input is Base with the solved value applied
	Input   domain.CalculationInput  `json:"input"`
	Outcome domain.CalculationResult `json:"outcome"`
}

// SolverOptions bounds the search effort
type SolverOptions struct {
	// Tolerance is the accepted distance between the reached and target final value
	Tolerance     float64
	MaxIterations int
	// MaxMonths caps duration searches when the request has no Max
	MaxMonths int
}

// DefaultSolverOptions returns the default search options
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     0.005,
		MaxIterations: 200,
		MaxMonths:     1200,
	}
}

var (
	// ErrInvalidRequest marks requests rejected before searching
	ErrInvalidRequest = errors.New("invalid goal seek request")
	// ErrUnreachable marks targets that no value within the bounds can reach
	ErrUnreachable = errors.New("target value is unreachable")
)

// Error carries the failing operation alongside the cause
type Error struct {
	Operation string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
