package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/qcfin/qcsim/internal/config"
	"github.com/qcfin/qcsim/internal/domain"
)

func TestSimulateRejectsInvalidInput(t *testing.T) {
	sim := NewSimulator(config.DefaultParameters())

	tests := []struct {
		name   string
		salary decimal.Decimal
		cityID string
	}{
		{"Zero salary", decimal.Zero, "montreal"},
		{"Negative salary", decimal.NewFromInt(-50000), "montreal"},
		{"Unknown city", decimal.NewFromInt(60000), "toronto"},
		{"Empty city", decimal.NewFromInt(60000), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sim.Simulate(SimulationInput{GrossSalary: tt.salary, CityID: tt.cityID})
			assert.Nil(t, result)
		})
	}
}

func TestSimulateSingleInMontreal(t *testing.T) {
	sim := NewSimulator(config.DefaultParameters())
	result := sim.Simulate(SimulationInput{
		GrossSalary: decimal.NewFromInt(75000),
		CityID:      "montreal",
	})

	assert.NotNil(t, result)
	// No partner, no car, no children: expenses are the city baseline.
	assert.True(t, result.Expenses.Rent.Equal(result.City.AvgRent))
	assert.True(t, result.Expenses.Groceries.Equal(result.City.MonthlyGrocery))
	assert.True(t, result.Expenses.Utilities.Equal(result.City.Utilities))
	assert.True(t, result.Expenses.Transportation.Equal(result.City.Transportation))

	expectedDisposable := result.Tax.NetMonthly.Sub(result.Expenses.Total())
	assert.True(t, result.DisposableIncome.Equal(expectedDisposable.Round(2)),
		"disposable: got %s, want %s", result.DisposableIncome, expectedDisposable)
	assert.Equal(t, domain.HealthExcellent, result.FinancialHealth)
}

func TestSimulateHouseholdAdjustments(t *testing.T) {
	params := config.DefaultParameters()
	sim := NewSimulator(params)
	salary := decimal.NewFromInt(90000)

	t.Run("Partner halves rent and utilities, scales groceries", func(t *testing.T) {
		result := sim.Simulate(SimulationInput{
			GrossSalary: salary,
			CityID:      "montreal",
			Household:   domain.Household{HasPartner: true},
		})
		assert.NotNil(t, result)
		assert.True(t, result.Expenses.Rent.Equal(result.City.AvgRent.Div(decimal.NewFromInt(2))),
			"rent: got %s", result.Expenses.Rent)
		assert.True(t, result.Expenses.Utilities.Equal(result.City.Utilities.Div(decimal.NewFromInt(2))))
		assert.True(t, result.Expenses.Groceries.Equal(
			result.City.MonthlyGrocery.Mul(params.Household.PartnerGroceryFactor)))
	})

	t.Run("Car replaces transit with flat ownership cost", func(t *testing.T) {
		result := sim.Simulate(SimulationInput{
			GrossSalary: salary,
			CityID:      "quebec",
			Household:   domain.Household{HasCar: true},
		})
		assert.NotNil(t, result)
		assert.True(t, result.Expenses.Transportation.Equal(params.Household.CarMonthlyCost))
	})

	t.Run("Child count drives the housing surcharge", func(t *testing.T) {
		one := sim.Simulate(SimulationInput{
			GrossSalary: salary,
			CityID:      "montreal",
			Household:   domain.Household{Ages: []int{4}, HasSubsidy: true},
		})
		assert.NotNil(t, one)
		expected := decimal.NewFromInt(1650).Mul(decimal.NewFromFloat(1.30)).Round(2)
		assert.True(t, one.Expenses.Rent.Equal(expected),
			"one-child rent: got %s, want %s", one.Expenses.Rent, expected)

		three := sim.Simulate(SimulationInput{
			GrossSalary: salary,
			CityID:      "montreal",
			Household:   domain.Household{Ages: []int{4, 7, 12}, HasSubsidy: true},
		})
		assert.NotNil(t, three)
		doubled := decimal.NewFromInt(1650).Mul(decimal.NewFromInt(2)).Round(2)
		assert.True(t, three.Expenses.Rent.Equal(doubled),
			"three-child rent: got %s, want %s", three.Expenses.Rent, doubled)
	})
}

func TestSimulateFinancialHealthBands(t *testing.T) {
	tests := []struct {
		name     string
		rate     decimal.Decimal
		expected domain.FinancialHealth
	}{
		{"Negative rate is deficit", decimal.NewFromFloat(-5.2), domain.HealthDeficit},
		{"Zero is tight (lower bound inclusive)", decimal.Zero, domain.HealthTight},
		{"Just under ten is tight", decimal.NewFromFloat(9.99), domain.HealthTight},
		{"Ten is good", decimal.NewFromInt(10), domain.HealthGood},
		{"Just under thirty is good", decimal.NewFromFloat(29.99), domain.HealthGood},
		{"Thirty is excellent", decimal.NewFromInt(30), domain.HealthExcellent},
		{"High rate is excellent", decimal.NewFromInt(55), domain.HealthExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyHealth(tt.rate))
		})
	}
}

func TestSimulateRentRatioUsesCityRent(t *testing.T) {
	sim := NewSimulator(config.DefaultParameters())
	result := sim.Simulate(SimulationInput{
		GrossSalary: decimal.NewFromInt(80000),
		CityID:      "sherbrooke",
		Household:   domain.Household{HasPartner: true},
	})

	assert.NotNil(t, result)
	expected := result.City.AvgRent.Div(result.Tax.NetMonthly).Mul(decimal.NewFromInt(100)).Round(2)
	assert.True(t, result.RentToIncomeRatio.Equal(expected),
		"ratio: got %s, want %s", result.RentToIncomeRatio, expected)
	assert.Equal(t, result.RentToIncomeRatio.LessThan(decimal.NewFromInt(30)), result.RentAffordable)
}

func TestSimulateDeterministic(t *testing.T) {
	sim := NewSimulator(config.DefaultParameters())
	in := SimulationInput{
		GrossSalary: decimal.NewFromInt(68000),
		CityID:      "laval",
		Household:   domain.Household{HasPartner: true, HasCar: true, Ages: []int{2, 6}, HasSubsidy: true},
	}

	first := sim.Simulate(in)
	second := sim.Simulate(in)
	assert.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestEngineEntryPoints(t *testing.T) {
	engine := NewEngine(config.DefaultParameters())

	assert.Equal(t, 2024, engine.TaxYear())

	assert.True(t, engine.Contribution(decimal.NewFromInt(55000), "qpp").Equal(decimal.NewFromInt(3296)))
	assert.True(t, engine.Contribution(decimal.NewFromInt(55000), "unknown").IsZero())

	cities := engine.Cities()
	assert.Len(t, cities, 10)
	_, ok := engine.CityByID("montreal")
	assert.True(t, ok)
	_, ok = engine.CityByID("paris")
	assert.False(t, ok)

	result := engine.Simulate(SimulationInput{GrossSalary: decimal.NewFromInt(60000), CityID: "quebec"})
	assert.NotNil(t, result)
}
