package domain

import (
	"github.com/shopspring/decimal"
)

// City is static cost-of-living reference data for one Quebec city.
// Instances are immutable after load.
type City struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	AvgRent        decimal.Decimal `yaml:"avg_rent" json:"avg_rent"`
	MonthlyGrocery decimal.Decimal `yaml:"monthly_grocery" json:"monthly_grocery"`
	Utilities      decimal.Decimal `yaml:"utilities" json:"utilities"`
	Transportation decimal.Decimal `yaml:"transportation" json:"transportation"`
	Population     int             `yaml:"population" json:"population"`
	Region         string          `yaml:"region" json:"region"`
}

// HouseholdCostFactors tunes how a city's baseline costs are adjusted
// for household composition. HousingSurcharges index by child count
// (1, 2, 3+) and model bedroom-count upgrades.
type HouseholdCostFactors struct {
	PartnerGroceryFactor decimal.Decimal   `yaml:"partner_grocery_factor" json:"partner_grocery_factor"`
	CarMonthlyCost       decimal.Decimal   `yaml:"car_monthly_cost" json:"car_monthly_cost"`
	HousingSurcharges    []decimal.Decimal `yaml:"housing_surcharges" json:"housing_surcharges"`
}

// HousingSurcharge returns the rent surcharge fraction for a child count.
func (f HouseholdCostFactors) HousingSurcharge(children int) decimal.Decimal {
	if children <= 0 || len(f.HousingSurcharges) == 0 {
		return decimal.Zero
	}
	if children > len(f.HousingSurcharges) {
		children = len(f.HousingSurcharges)
	}
	return f.HousingSurcharges[children-1]
}

// Household describes the composition side of a life simulation.
type Household struct {
	HasPartner bool
	HasCar     bool
	Ages       []int
	HasSubsidy bool
}

// FinancialHealth classifies a simulation's savings rate.
type FinancialHealth string

const (
	HealthExcellent FinancialHealth = "excellent"
	HealthGood      FinancialHealth = "good"
	HealthTight     FinancialHealth = "tight"
	HealthDeficit   FinancialHealth = "deficit"
)

// MonthlyExpenses are the household-adjusted city costs.
type MonthlyExpenses struct {
	Rent           decimal.Decimal `json:"rent"`
	Groceries      decimal.Decimal `json:"groceries"`
	Utilities      decimal.Decimal `json:"utilities"`
	Transportation decimal.Decimal `json:"transportation"`
}

// Total sums the four expense lines.
func (e MonthlyExpenses) Total() decimal.Decimal {
	return e.Rent.Add(e.Groceries).Add(e.Utilities).Add(e.Transportation)
}

// SimulationResult aggregates the full life simulation for one salary,
// city and household. Entirely derived; recomputed on every call.
type SimulationResult struct {
	Tax               TaxResult          `json:"tax"`
	City              City               `json:"city"`
	ChildCosts        ChildCostBreakdown `json:"child_costs"`
	Expenses          MonthlyExpenses    `json:"expenses"`
	DisposableIncome  decimal.Decimal    `json:"disposable_income"`
	SavingsRate       decimal.Decimal    `json:"savings_rate"`
	RentToIncomeRatio decimal.Decimal    `json:"rent_to_income_ratio"`
	RentAffordable    bool               `json:"rent_affordable"`
	FinancialHealth   FinancialHealth    `json:"financial_health"`
}
