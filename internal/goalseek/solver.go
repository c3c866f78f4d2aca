package goalseek

import (
	"context"
	"fmt"
	"math"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/domain"
)

// Solver finds the input value that makes a scenario end at a target final value
type Solver struct {
	Options SolverOptions
	Logger  calculation.Logger
}

// NewSolver creates a solver with the given options
func NewSolver(opts SolverOptions) *Solver {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultSolverOptions().Tolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultSolverOptions().MaxIterations
	}
	if opts.MaxMonths <= 0 {
		opts.MaxMonths = DefaultSolverOptions().MaxMonths
	}
	return &Solver{Options: opts, Logger: calculation.NopLogger{}}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// SetLogger installs a logger; nil restores the no-op logger
func (s *Solver) SetLogger(l calculation.Logger) {
	if l == nil {
		s.Logger = calculation.NopLogger{}
		return
	}
	s.Logger = l
}

func (s *Solver) log() calculation.Logger {
	if s.Logger == nil {
		return calculation.NopLogger{}
	}
	return s.Logger
}

// Solve runs the search for req.Target. Amounts and rates are found by
// bisection; durations by scanning the monthly ledger.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	req.Base.RateBasis = req.Base.RateBasis.Normalize()
	req.Base.DurationUnit = req.Base.DurationUnit.Normalize()

	if err := req.Validate(); err != nil {
		return nil, &Error{Operation: "validate", Message: "request rejected", Cause: err}
	}

	s.log().Debugf("goal seek: %s for final value %.2f", req.Target, req.TargetValue)

	if req.Target == TargetDuration {
		return s.solveDuration(ctx, req)
	}
	return s.bisect(ctx, req)
}

// bounds returns the search interval for continuous targets
func (s *Solver) bounds(req Request) (float64, float64) {
	lo, hi := 0.0, 1e9
	if req.Target == TargetRate {
		hi = 100
	}
	if req.Min != nil {
		lo = *req.Min
	}
	if req.Max != nil {
		hi = *req.Max
	}
	return lo, hi
}

// apply returns base with the target input replaced by v
func apply(base domain.CalculationInput, target Target, v float64) domain.CalculationInput {
	in := base
	switch target {
	case TargetPrincipal:
		in.Principal = v
	case TargetMonthlyContribution:
		in.MonthlyContribution = v
	case TargetRate:
		in.NominalRate = v
	}
	return in
}

func (s *Solver) bisect(ctx context.Context, req Request) (*Result, error) {
	tol := s.Options.Tolerance
	lo, hi := s.bounds(req)

	eval := func(v float64) (float64, domain.CalculationResult) {
		res := calculation.Calculate(apply(req.Base, req.Target, v))
		return res.FinalValue - req.TargetValue, res
	}

	fLo, resLo := eval(lo)
	if math.Abs(fLo) <= tol {
		return s.result(req, lo, resLo, 0, true, "lower bound already reaches the target"), nil
	}
	fHi, resHi := eval(hi)
	if math.Abs(fHi) <= tol {
		return s.result(req, hi, resHi, 0, true, "upper bound already reaches the target"), nil
	}
	if (fLo < 0) == (fHi < 0) {
		return nil, &Error{
			Operation: "bisect",
			Message:   fmt.Sprintf("no %s between %.4f and %.4f reaches %.2f", req.Target, lo, hi, req.TargetValue),
			Cause:     ErrUnreachable,
		}
	}

	mid, resMid := lo, resLo
	for i := 1; i <= s.Options.MaxIterations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid = lo + (hi-lo)/2
		var fMid float64
		fMid, resMid = eval(mid)

		if math.Abs(fMid) <= tol {
			s.log().Debugf("goal seek converged after %d iterations at %.6f", i, mid)
			return s.result(req, mid, resMid, i, true,
				fmt.Sprintf("converged within %.4f after %d iterations", tol, i)), nil
		}
		if mid == lo || mid == hi {
			return s.result(req, mid, resMid, i, false,
				fmt.Sprintf("stopped at floating point precision %.6f away from the target", math.Abs(fMid))), nil
		}

		if (fMid < 0) == (fLo < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}

	s.log().Warnf("goal seek hit the %d iteration limit", s.Options.MaxIterations)
	return s.result(req, mid, resMid, s.Options.MaxIterations, false, "maximum iterations reached"), nil
}

func (s *Solver) solveDuration(ctx context.Context, req Request) (*Result, error) {
	maxMonths := s.Options.MaxMonths
	if req.Max != nil {
		maxMonths = int(math.Floor(*req.Max))
	}
	minMonths := 0
	if req.Min != nil && *req.Min > 0 {
		minMonths = int(math.Ceil(*req.Min))
	}

	base := req.Base
	base.Duration = maxMonths
	base.DurationUnit = domain.DurationMonths

	reached := func(balance float64) bool {
		return balance >= req.TargetValue-s.Options.Tolerance
	}

	found := -1
	if minMonths == 0 && reached(req.Base.Principal) {
		found = 0
	}
	var err error
	if found < 0 {
		calculation.Walk(base, func(row domain.MonthlyBalance) bool {
			if (row.Month-1)%120 == 0 {
				if err = ctx.Err(); err != nil {
					return false
				}
			}
			if row.Month >= minMonths && reached(row.Closing) {
				found = row.Month
				return false
			}
			return true
		})
	}
	if err != nil {
		return nil, err
	}
	if found < 0 {
		return nil, &Error{
			Operation: "duration",
			Message:   fmt.Sprintf("balance stays below %.2f for %d months", req.TargetValue, maxMonths),
			Cause:     ErrUnreachable,
		}
	}

	in := req.Base
	in.Duration = found
	in.DurationUnit = domain.DurationMonths
	return s.result(req, float64(found), calculation.Calculate(in), found, true,
		fmt.Sprintf("target first reached in month %d", found)), nil
}

func (s *Solver) result(req Request, v float64, res domain.CalculationResult, iterations int, ok bool, info string) *Result {
	in := apply(req.Base, req.Target, v)
	if req.Target == TargetDuration {
		in.Duration = int(v)
		in.DurationUnit = domain.DurationMonths
	}
	return &Result{
		Request:         req,
		Success:         ok,
		Iterations:      iterations,
		ConvergenceInfo: info,
		Value:           v,
		Input:           in,
		Outcome:         res,
	}
}
