package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/qcfin/qcsim/internal/config"
)

func TestContributionCalculator(t *testing.T) {
	params := config.DefaultParameters()
	calc := NewContributionCalculator(params.Contributions)

	tests := []struct {
		name     string
		program  string
		salary   decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "QPP at 55k applies exemption",
			program:  "qpp",
			salary:   decimal.NewFromInt(55000),
			expected: decimal.NewFromInt(3296), // (55000-3500) * 6.4%
		},
		{
			name:     "QPP above ceiling hits the dollar cap",
			program:  "qpp",
			salary:   decimal.NewFromInt(100000),
			expected: decimal.NewFromInt(4160),
		},
		{
			name:     "QPP below exemption owes nothing",
			program:  "qpp",
			salary:   decimal.NewFromInt(3000),
			expected: decimal.Zero,
		},
		{
			name:     "QPIP has no exemption",
			program:  "qpip",
			salary:   decimal.NewFromInt(50000),
			expected: decimal.NewFromInt(247), // 50000 * 0.494%
		},
		{
			name:     "QPIP caps at its own maximum",
			program:  "qpip",
			salary:   decimal.NewFromInt(300000),
			expected: decimal.NewFromFloat(464.36),
		},
		{
			name:     "EI at 55k",
			program:  "ei",
			salary:   decimal.NewFromInt(55000),
			expected: decimal.NewFromInt(726), // 55000 * 1.32%
		},
		{
			name:     "EI caps at maximum insurable earnings",
			program:  "ei",
			salary:   decimal.NewFromInt(100000),
			expected: decimal.NewFromFloat(834.24), // 63200 * 1.32%
		},
		{
			name:     "Negative salary clamps to zero",
			program:  "ei",
			salary:   decimal.NewFromInt(-10000),
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got decimal.Decimal
			switch tt.program {
			case "qpp":
				got = calc.QPP(tt.salary)
			case "qpip":
				got = calc.QPIP(tt.salary)
			case "ei":
				got = calc.EI(tt.salary)
			}
			assert.True(t, got.Round(2).Equal(tt.expected),
				"Expected %s, got %s", tt.expected, got.Round(2))
		})
	}
}

func TestContributionCeilingExact(t *testing.T) {
	params := config.DefaultParameters()
	calc := NewContributionCalculator(params.Contributions)

	// Any salary beyond the earnings ceiling yields exactly the dollar
	// cap, never a proportional amount.
	for _, salary := range []int64{68500, 70000, 150000, 1000000} {
		got := calc.QPP(decimal.NewFromInt(salary))
		assert.True(t, got.Equal(params.Contributions.QPP.MaxAnnual),
			"QPP at %d: expected cap %s, got %s", salary, params.Contributions.QPP.MaxAnnual, got)
	}
}

func TestContributionDollarCapGoverns(t *testing.T) {
	// The earnings-base ceiling and the dollar cap come from separate
	// statutory tables; when they disagree the dollar cap wins.
	program := config.DefaultParameters().Contributions.QPP
	program.MaxAnnual = decimal.NewFromInt(4000) // below 65000 * 6.4%

	calc := NewContributionCalculator(config.DefaultParameters().Contributions)
	got := calc.Calculate(decimal.NewFromInt(200000), program)
	assert.True(t, got.Equal(decimal.NewFromInt(4000)),
		"Expected dollar cap 4000, got %s", got)
}
