package calculation

import (
	"math"

	"github.com/rgehrsitz/juros/internal/domain"
)

// EffectiveMonthlyRate converts a nominal percentage rate into the monthly
// compounding rate. Annual rates use compound conversion, (1+r)^(1/12)-1,
// so twelve monthly steps reproduce the annual rate exactly. An annual rate
// below -100% has no real monthly equivalent and yields NaN.
func EffectiveMonthlyRate(nominalRate float64, basis domain.RateBasis) float64 {
	rate := nominalRate / 100
	if basis.Normalize() == domain.RateMonthly {
		return rate
	}
	if rate == 0 {
		return 0
	}
	return math.Pow(1+rate, 1.0/12) - 1
}

// TotalMonths converts a duration into a month count. Non-positive durations
// yield zero months.
func TotalMonths(duration int, unit domain.DurationUnit) int {
	if duration <= 0 {
		return 0
	}
	if unit.Normalize() == domain.DurationYears {
		return duration * 12
	}
	return duration
}

// Calculate runs the monthly growth recurrence for the given input.
//
// Each month the balance earns interest first and the contribution is added
// afterwards, so a contribution does not earn interest in the month it is
// deposited. Calculate never fails and keeps no state.
func Calculate(in domain.CalculationInput) domain.CalculationResult {
	months := TotalMonths(in.Duration, in.DurationUnit)
	rate := EffectiveMonthlyRate(in.NominalRate, in.RateBasis)

	amount := in.Principal
	for i := 0; i < months; i++ {
		amount = step(amount, rate, in.MonthlyContribution)
	}

	contributed := in.Principal + in.MonthlyContribution*float64(months)
	return domain.CalculationResult{
		FinalValue:       amount,
		TotalContributed: contributed,
		TotalInterest:    amount - contributed,
		TotalMonths:      months,
		MonthlyRate:      rate,
	}
}

// Schedule returns the month-by-month ledger for the given input. The last
// row's closing balance is identical to Calculate's final value.
func Schedule(in domain.CalculationInput) []domain.MonthlyBalance {
	rows := make([]domain.MonthlyBalance, 0, TotalMonths(in.Duration, in.DurationUnit))
	Walk(in, func(row domain.MonthlyBalance) bool {
		rows = append(rows, row)
		return true
	})
	return rows
}

// Walk visits the ledger one month at a time without building it, stopping
// early when visit returns false.
func Walk(in domain.CalculationInput, visit func(domain.MonthlyBalance) bool) {
	months := TotalMonths(in.Duration, in.DurationUnit)
	rate := EffectiveMonthlyRate(in.NominalRate, in.RateBasis)

	amount := in.Principal
	contributed := in.Principal
	for i := 0; i < months; i++ {
		closing := step(amount, rate, in.MonthlyContribution)
		contributed += in.MonthlyContribution
		row := domain.MonthlyBalance{
			Month:             i + 1,
			Opening:           amount,
			Interest:          amount*(1+rate) - amount,
			Contribution:      in.MonthlyContribution,
			Closing:           closing,
			ContributedToDate: contributed,
		}
		if !visit(row) {
			return
		}
		amount = closing
	}
}

func step(amount, rate, contribution float64) float64 {
	return amount*(1+rate) + contribution
}
