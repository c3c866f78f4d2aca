package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMonthlyRate(t *testing.T) {
	tests := []struct {
		name     string
		nominal  float64
		basis    domain.RateBasis
		expected float64
	}{
		{name: "Annual 5%", nominal: 5, basis: domain.RateAnnual, expected: math.Pow(1.05, 1.0/12) - 1},
		{name: "Annual 0% is exactly zero", nominal: 0, basis: domain.RateAnnual, expected: 0},
		{name: "Monthly 12%", nominal: 12, basis: domain.RateMonthly, expected: 0.12},
		{name: "Monthly 0%", nominal: 0, basis: domain.RateMonthly, expected: 0},
		{name: "Zero basis defaults to annual", nominal: 12, basis: "", expected: math.Pow(1.12, 1.0/12) - 1},
		{name: "Negative annual rate", nominal: -10, basis: domain.RateAnnual, expected: math.Pow(0.9, 1.0/12) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveMonthlyRate(tt.nominal, tt.basis)
			assert.InDelta(t, tt.expected, got, 1e-15)
		})
	}

	assert.Equal(t, 0.0, EffectiveMonthlyRate(0, domain.RateAnnual), "zero annual rate must be exact")
	assert.InDelta(t, 0.0040741, EffectiveMonthlyRate(5, domain.RateAnnual), 1e-7)
}

func TestTotalMonths(t *testing.T) {
	assert.Equal(t, 120, TotalMonths(120, domain.DurationMonths))
	assert.Equal(t, 120, TotalMonths(10, domain.DurationYears))
	assert.Equal(t, 7, TotalMonths(7, ""), "zero unit defaults to months")
	assert.Equal(t, 0, TotalMonths(0, domain.DurationYears))
	assert.Equal(t, 0, TotalMonths(-5, domain.DurationMonths))
	assert.Equal(t, 0, TotalMonths(-5, domain.DurationYears))
}

func TestCalculate_ZeroMonths(t *testing.T) {
	res := Calculate(domain.CalculationInput{
		Principal:           2500,
		MonthlyContribution: 300,
		NominalRate:         8,
		RateBasis:           domain.RateAnnual,
		Duration:            0,
		DurationUnit:        domain.DurationMonths,
	})

	assert.Equal(t, 2500.0, res.FinalValue)
	assert.Equal(t, 2500.0, res.TotalContributed)
	assert.Equal(t, 0.0, res.TotalInterest)
	assert.Equal(t, 0, res.TotalMonths)
}

func TestCalculate_NegativeDurationRunsNoMonths(t *testing.T) {
	res := Calculate(domain.CalculationInput{
		Principal:           1000,
		MonthlyContribution: 100,
		NominalRate:         5,
		RateBasis:           domain.RateAnnual,
		Duration:            -12,
		DurationUnit:        domain.DurationYears,
	})

	assert.Equal(t, 1000.0, res.FinalValue)
	assert.Equal(t, 1000.0, res.TotalContributed)
	assert.Equal(t, 0.0, res.TotalInterest)
	assert.Equal(t, 0, res.TotalMonths)
}

func TestCalculate_MatchesClosedFormWithoutContributions(t *testing.T) {
	cases := []struct {
		principal float64
		nominal   float64
		basis     domain.RateBasis
		months    int
	}{
		{principal: 1000, nominal: 5, basis: domain.RateAnnual, months: 120},
		{principal: 50000, nominal: 0.8, basis: domain.RateMonthly, months: 360},
		{principal: 1, nominal: 12, basis: domain.RateMonthly, months: 1},
		{principal: 750, nominal: -3, basis: domain.RateAnnual, months: 48},
	}

	for _, c := range cases {
		in := domain.CalculationInput{
			Principal:    c.principal,
			NominalRate:  c.nominal,
			RateBasis:    c.basis,
			Duration:     c.months,
			DurationUnit: domain.DurationMonths,
		}
		r := EffectiveMonthlyRate(c.nominal, c.basis)
		expected := c.principal * math.Pow(1+r, float64(c.months))

		res := Calculate(in)
		assert.InEpsilon(t, expected, res.FinalValue, 1e-9, "principal=%v rate=%v months=%d", c.principal, c.nominal, c.months)
	}
}

func TestCalculate_AnnualFivePercentTenYears(t *testing.T) {
	res := Calculate(domain.CalculationInput{
		Principal:           1000,
		MonthlyContribution: 0,
		NominalRate:         5,
		RateBasis:           domain.RateAnnual,
		Duration:            120,
		DurationUnit:        domain.DurationMonths,
	})

	assert.InDelta(t, 1628.89, res.FinalValue, 0.005)
	assert.InDelta(t, 1000*math.Pow(1.05, 10), res.FinalValue, 1e-9)
	assert.Equal(t, 1000.0, res.TotalContributed)
	assert.InDelta(t, 628.89, res.TotalInterest, 0.005)
	assert.Equal(t, 120, res.TotalMonths)
}

func TestCalculate_ContributionAddedAfterInterest(t *testing.T) {
	in := domain.CalculationInput{
		Principal:           0,
		MonthlyContribution: 100,
		NominalRate:         12,
		RateBasis:           domain.RateMonthly,
		Duration:            10,
		DurationUnit:        domain.DurationMonths,
	}

	rate := 12.0 / 100
	reference := 0.0
	for i := 0; i < 10; i++ {
		reference = reference*(1+rate) + 100
	}

	res := Calculate(in)
	assert.Equal(t, reference, res.FinalValue)
	assert.Equal(t, 1000.0, res.TotalContributed)
	// Ordinary annuity: 100 * ((1.12^10 - 1) / 0.12)
	assert.InDelta(t, 100*(math.Pow(1.12, 10)-1)/0.12, res.FinalValue, 1e-9)
	assert.InDelta(t, 1754.8735, res.FinalValue, 1e-4)

	// Interest-then-contribution must not match contribution-then-interest.
	other := 0.0
	for i := 0; i < 10; i++ {
		other = (other + 100) * (1 + rate)
	}
	assert.NotEqual(t, other, res.FinalValue)
}

func TestCalculate_YearsEqualMonths(t *testing.T) {
	years := domain.CalculationInput{
		Principal:           1500,
		MonthlyContribution: 250,
		NominalRate:         9.5,
		RateBasis:           domain.RateAnnual,
		Duration:            10,
		DurationUnit:        domain.DurationYears,
	}
	months := years
	months.Duration = 120
	months.DurationUnit = domain.DurationMonths

	assert.Equal(t, Calculate(months), Calculate(years))
}

func TestCalculate_Idempotent(t *testing.T) {
	in := domain.DefaultInput()
	in.MonthlyContribution = 321.45

	first := Calculate(in)
	second := Calculate(in)
	assert.Equal(t, first, second)
}

func TestCalculate_ResultInvariants(t *testing.T) {
	inputs := []domain.CalculationInput{
		domain.DefaultInput(),
		{Principal: 0, MonthlyContribution: 50, NominalRate: 1, RateBasis: domain.RateMonthly, Duration: 3, DurationUnit: domain.DurationYears},
		{Principal: 10000, MonthlyContribution: -100, NominalRate: 2, RateBasis: domain.RateAnnual, Duration: 24, DurationUnit: domain.DurationMonths},
		{Principal: 500, MonthlyContribution: 20, NominalRate: -50, RateBasis: domain.RateAnnual, Duration: 12, DurationUnit: domain.DurationMonths},
	}

	for _, in := range inputs {
		res := Calculate(in)
		months := TotalMonths(in.Duration, in.DurationUnit)
		assert.Equal(t, in.Principal+in.MonthlyContribution*float64(months), res.TotalContributed)
		assert.Equal(t, res.FinalValue-res.TotalContributed, res.TotalInterest)
	}
}

func TestCalculate_NegativeRateGivesNegativeInterest(t *testing.T) {
	res := Calculate(domain.CalculationInput{
		Principal:    1000,
		NominalRate:  -10,
		RateBasis:    domain.RateAnnual,
		Duration:     12,
		DurationUnit: domain.DurationMonths,
	})

	assert.InDelta(t, 900.0, res.FinalValue, 1e-9)
	assert.Less(t, res.TotalInterest, 0.0)
}

func TestSchedule(t *testing.T) {
	in := domain.CalculationInput{
		Principal:           1000,
		MonthlyContribution: 100,
		NominalRate:         1,
		RateBasis:           domain.RateMonthly,
		Duration:            2,
		DurationUnit:        domain.DurationYears,
	}

	rows := Schedule(in)
	require.Len(t, rows, 24)

	first := rows[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, 1000.0, first.Opening)
	assert.InDelta(t, 10.0, first.Interest, 1e-9)
	assert.Equal(t, 100.0, first.Contribution)
	assert.InDelta(t, 1110.0, first.Closing, 1e-9)
	assert.Equal(t, 1100.0, first.ContributedToDate)

	for i := 1; i < len(rows); i++ {
		assert.Equal(t, rows[i-1].Closing, rows[i].Opening, "month %d opening", rows[i].Month)
	}

	last := rows[len(rows)-1]
	res := Calculate(in)
	assert.Equal(t, res.FinalValue, last.Closing)
	assert.InDelta(t, res.TotalContributed, last.ContributedToDate, 1e-9)
}

func TestSchedule_Empty(t *testing.T) {
	in := domain.DefaultInput()
	in.Duration = 0
	assert.Empty(t, Schedule(in))

	in.Duration = -3
	assert.Empty(t, Schedule(in))
}

func TestCalculate_AnnualRateBelowMinusHundredIsNaN(t *testing.T) {
	in := domain.DefaultInput()
	in.NominalRate = -200

	assert.True(t, math.IsNaN(EffectiveMonthlyRate(-200, domain.RateAnnual)))

	res := Calculate(in)
	assert.True(t, math.IsNaN(res.FinalValue))
	assert.True(t, math.IsNaN(res.TotalInterest))
	assert.Equal(t, 1000.0, res.TotalContributed)
	assert.False(t, res.Finite())

	in.NominalRate = -100
	res = Calculate(in)
	assert.Equal(t, -1.0, res.MonthlyRate, "-100% annual wipes the balance each month")
	assert.Equal(t, 0.0, res.FinalValue)
	assert.True(t, res.Finite())
}

func TestCalculate_OverflowIsInfinite(t *testing.T) {
	res := Calculate(domain.CalculationInput{
		Principal:    1000,
		NominalRate:  900,
		RateBasis:    domain.RateMonthly,
		Duration:     1200,
		DurationUnit: domain.DurationMonths,
	})

	assert.True(t, math.IsInf(res.FinalValue, 1))
	assert.False(t, res.Finite())
}

func TestWalk_StopsEarly(t *testing.T) {
	in := domain.DefaultInput()

	visited := 0
	Walk(in, func(row domain.MonthlyBalance) bool {
		visited++
		return row.Month < 5
	})
	assert.Equal(t, 5, visited)

	var last domain.MonthlyBalance
	Walk(in, func(row domain.MonthlyBalance) bool {
		last = row
		return true
	})
	assert.Equal(t, 120, last.Month)
	assert.Equal(t, Calculate(in).FinalValue, last.Closing)
}
