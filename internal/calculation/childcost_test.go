package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/qcfin/qcsim/internal/config"
	"github.com/qcfin/qcsim/internal/domain"
)

func TestChildCostNoChildren(t *testing.T) {
	model := NewChildCostModel(config.DefaultParameters())
	result := model.Calculate(domain.ChildCostInput{
		FamilyIncome: decimal.NewFromInt(60000),
	})

	assert.True(t, result.BaseMonthly.IsZero())
	assert.True(t, result.DaycareMonthly.IsZero())
	assert.True(t, result.TotalMonthly.IsZero())
	assert.True(t, result.TotalBenefits.IsZero())
	assert.True(t, result.NetMonthlyCost.IsZero())
}

func TestChildCostDaycareRegimes(t *testing.T) {
	params := config.DefaultParameters()
	model := NewChildCostModel(params)

	tests := []struct {
		name            string
		ages            []int
		hasSubsidy      bool
		expectedDaycare decimal.Decimal
	}{
		{
			name:            "Toddler in subsidized daycare",
			ages:            []int{3},
			hasSubsidy:      true,
			expectedDaycare: params.ChildCosts.Daycare.SubsidizedMonthly,
		},
		{
			name:            "Toddler in private daycare",
			ages:            []int{3},
			hasSubsidy:      false,
			expectedDaycare: params.ChildCosts.Daycare.PrivateMonthly,
		},
		{
			name:            "School-age child gets after-school care",
			ages:            []int{8},
			expectedDaycare: params.ChildCosts.Daycare.AfterSchoolMonthly,
		},
		{
			name:            "Teenager has no care line",
			ages:            []int{15},
			expectedDaycare: decimal.Zero,
		},
		{
			name:       "Mixed ages accumulate per child",
			ages:       []int{3, 8, 15},
			hasSubsidy: true,
			expectedDaycare: params.ChildCosts.Daycare.SubsidizedMonthly.
				Add(params.ChildCosts.Daycare.AfterSchoolMonthly),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := model.Calculate(domain.ChildCostInput{
				Ages:         tt.ages,
				HasSubsidy:   tt.hasSubsidy,
				FamilyIncome: decimal.NewFromInt(70000),
			})
			assert.True(t, result.DaycareMonthly.Equal(tt.expectedDaycare),
				"expected daycare %s, got %s", tt.expectedDaycare, result.DaycareMonthly)
		})
	}
}

func TestChildCostSiblingEconomies(t *testing.T) {
	params := config.DefaultParameters()
	model := NewChildCostModel(params)

	// Two teenagers: base = (520+520) * 0.85, no daycare.
	result := model.Calculate(domain.ChildCostInput{
		Ages:         []int{14, 16},
		FamilyIncome: decimal.NewFromInt(70000),
	})
	expected := params.ChildCosts.BaseMonthly13To17.Mul(decimal.NewFromInt(2)).
		Mul(decimal.NewFromFloat(0.85)).Round(2)
	assert.True(t, result.BaseMonthly.Equal(expected),
		"expected base %s, got %s", expected, result.BaseMonthly)

	// The per-child base must shrink as the count grows.
	one := model.Calculate(domain.ChildCostInput{Ages: []int{15}, FamilyIncome: decimal.NewFromInt(70000)})
	perChildOne := one.BaseMonthly
	perChildTwo := result.BaseMonthly.Div(decimal.NewFromInt(2))
	assert.True(t, perChildTwo.LessThan(perChildOne),
		"per-child base should fall with siblings: %s vs %s", perChildTwo, perChildOne)
}

func TestChildCostNetMayBeNegative(t *testing.T) {
	model := NewChildCostModel(config.DefaultParameters())

	// Low income, subsidized daycare: benefits outweigh the raw cost
	// and the net is a subsidy.
	result := model.Calculate(domain.ChildCostInput{
		Ages:         []int{3},
		HasSubsidy:   true,
		FamilyIncome: decimal.NewFromInt(35000),
	})

	assert.True(t, result.NetMonthlyCost.LessThan(decimal.Zero),
		"expected net subsidy, got %s", result.NetMonthlyCost)
	assert.True(t, result.TotalBenefits.GreaterThan(decimal.Zero))
}

func TestChildCostNetConsistency(t *testing.T) {
	model := NewChildCostModel(config.DefaultParameters())
	result := model.Calculate(domain.ChildCostInput{
		Ages:         []int{2, 9},
		HasSubsidy:   false,
		FamilyIncome: decimal.NewFromInt(90000),
	})

	expected := result.TotalMonthly.Sub(result.TotalBenefits.Div(decimal.NewFromInt(12)))
	diff := result.NetMonthlyCost.Sub(expected).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"net %s should equal total %s minus benefits/12", result.NetMonthlyCost, result.TotalMonthly)

	assert.True(t, result.TotalBenefits.Equal(result.FederalBenefits.Add(result.ProvincialBenefits)))
}
