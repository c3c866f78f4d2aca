package config

import (
	"testing"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLenientFloat(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"1000", 1000},
		{"  42.5  ", 42.5},
		{"12abc", 12},
		{"1,5", 1},
		{"-3.25", -3.25},
		{"+7", 7},
		{".5", 0.5},
		{"5.", 5},
		{".", 0},
		{"-", 0},
		{"1e3", 1000},
		{"2.5E-1x", 0.25},
		{"1e", 1},
		{"1e+", 1},
		{"NaN", 0},
		{"Infinity", 0},
		{"1e400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, LenientFloat(tt.in))
		})
	}
}

func TestLenientInt(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"", 0},
		{"x", 0},
		{"120", 120},
		{" 12.9", 12},
		{"-4", -4},
		{"+8 meses", 8},
		{"1e3", 1},
		{"-", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, LenientInt(tt.in))
		})
	}
}

func TestTextInput_Input(t *testing.T) {
	text := TextInput{
		Principal:           "",
		MonthlyContribution: "100",
		Rate:                "1.5%",
		Duration:            "2",
		RateBasis:           domain.RateMonthly,
		DurationUnit:        domain.DurationYears,
	}

	in := text.Input()
	assert.Equal(t, 0.0, in.Principal, "empty principal behaves as zero")
	assert.Equal(t, 100.0, in.MonthlyContribution)
	assert.Equal(t, 1.5, in.NominalRate)
	assert.Equal(t, domain.RateMonthly, in.RateBasis)
	assert.Equal(t, 2, in.Duration)
	assert.Equal(t, domain.DurationYears, in.DurationUnit)
}

func TestTextInput_ZeroSelectorsUseDefaults(t *testing.T) {
	in := TextInput{Principal: "1"}.Input()
	assert.Equal(t, domain.RateAnnual, in.RateBasis)
	assert.Equal(t, domain.DurationMonths, in.DurationUnit)
}

func TestTextInputFrom_RoundTrip(t *testing.T) {
	in := domain.DefaultInput()
	in.MonthlyContribution = 250.75

	text := TextInputFrom(in)
	assert.Equal(t, "1000", text.Principal)
	assert.Equal(t, "250.75", text.MonthlyContribution)
	assert.Equal(t, "5", text.Rate)
	assert.Equal(t, "120", text.Duration)
	assert.Equal(t, in, text.Input())
}
