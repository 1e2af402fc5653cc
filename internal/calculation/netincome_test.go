package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/qcfin/qcsim/internal/config"
)

func TestNetIncomeBreakdownAt55k(t *testing.T) {
	engine := NewNetIncomeEngine(config.DefaultParameters())
	result := engine.Calculate(decimal.NewFromInt(55000))

	assert.True(t, result.FederalTax.Equal(decimal.NewFromFloat(5894.25)),
		"federal tax: got %s", result.FederalTax)
	assert.True(t, result.ProvincialTax.Equal(decimal.NewFromFloat(5172.16)),
		"provincial tax: got %s", result.ProvincialTax)
	assert.True(t, result.QPPContribution.Equal(decimal.NewFromInt(3296)),
		"QPP: got %s", result.QPPContribution)
	assert.True(t, result.QPIPContribution.Equal(decimal.NewFromFloat(271.70)),
		"QPIP: got %s", result.QPIPContribution)
	assert.True(t, result.EIContribution.Equal(decimal.NewFromInt(726)),
		"EI: got %s", result.EIContribution)
	assert.True(t, result.NetAnnual.Equal(decimal.NewFromFloat(39639.89)),
		"net annual: got %s", result.NetAnnual)
	assert.True(t, result.NetMonthly.Equal(decimal.NewFromFloat(3303.32)),
		"net monthly: got %s", result.NetMonthly)
	assert.True(t, result.NetBiWeekly.Equal(decimal.NewFromFloat(1524.61)),
		"net bi-weekly: got %s", result.NetBiWeekly)
	assert.True(t, result.MarginalTaxRate.Equal(decimal.NewFromInt(29)),
		"marginal rate: got %s", result.MarginalTaxRate)
	assert.True(t, result.EffectiveTaxRate.Equal(decimal.NewFromFloat(27.93)),
		"effective rate: got %s", result.EffectiveTaxRate)
	assert.True(t, result.TakeHomePercentage.Equal(decimal.NewFromFloat(72.07)),
		"take-home: got %s", result.TakeHomePercentage)
}

func TestNetIncomeZeroSalary(t *testing.T) {
	engine := NewNetIncomeEngine(config.DefaultParameters())
	result := engine.Calculate(decimal.Zero)

	assert.True(t, result.NetAnnual.IsZero())
	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.TotalDeductions.IsZero())
	assert.True(t, result.EffectiveTaxRate.IsZero())
	assert.True(t, result.MarginalTaxRate.IsZero())
	assert.True(t, result.NetMonthly.IsZero())
}

func TestNetIncomeHighEarner(t *testing.T) {
	params := config.DefaultParameters()
	engine := NewNetIncomeEngine(params)
	result := engine.Calculate(decimal.NewFromInt(300000))

	// Both jurisdictions sit in their top brackets: 33% + 25.75%.
	assert.True(t, result.MarginalTaxRate.Equal(decimal.NewFromFloat(58.75)),
		"marginal rate: got %s", result.MarginalTaxRate)

	// All three programs capped at their annual maximums.
	assert.True(t, result.QPPContribution.Equal(params.Contributions.QPP.MaxAnnual))
	assert.True(t, result.QPIPContribution.Equal(params.Contributions.QPIP.MaxAnnual))
	assert.True(t, result.EIContribution.Equal(params.Contributions.EI.MaxAnnual))
}

func TestNetIncomeConservation(t *testing.T) {
	engine := NewNetIncomeEngine(config.DefaultParameters())
	tolerance := decimal.NewFromFloat(0.05)

	for _, gross := range []int64{0, 15000, 30000, 55000, 75000, 120000, 250000, 500000} {
		result := engine.Calculate(decimal.NewFromInt(gross))
		sum := result.NetAnnual.Add(result.TotalTax).Add(result.TotalDeductions)
		diff := sum.Sub(result.GrossAnnual).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"conservation at %d: net+tax+deductions=%s vs gross=%s", gross, sum, result.GrossAnnual)
	}
}

func TestNetIncomeIdempotence(t *testing.T) {
	engine := NewNetIncomeEngine(config.DefaultParameters())
	gross := decimal.NewFromFloat(87421.53)

	first := engine.Calculate(gross)
	second := engine.Calculate(gross)
	assert.Equal(t, first, second)
}

func TestNetIncomeMonotonic(t *testing.T) {
	engine := NewNetIncomeEngine(config.DefaultParameters())
	prev := decimal.NewFromInt(-1)
	for gross := int64(0); gross <= 300000; gross += 5000 {
		result := engine.Calculate(decimal.NewFromInt(gross))
		assert.True(t, result.NetAnnual.GreaterThan(prev),
			"net income should grow with gross: %d -> %s (prev %s)", gross, result.NetAnnual, prev)
		prev = result.NetAnnual
	}
}
