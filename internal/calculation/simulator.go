package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

var (
	savingsGood      = decimal.NewFromInt(10)
	savingsExcellent = decimal.NewFromInt(30)
	rentAffordable   = decimal.NewFromInt(30)
)

// SimulationInput is the full input to one life simulation.
type SimulationInput struct {
	GrossSalary decimal.Decimal
	CityID      string
	Household   domain.Household
}

// Simulator is the top-level aggregator: it composes the net-income
// engine and the child-cost model with city cost-of-living data into a
// single household financial picture.
type Simulator struct {
	netIncome  *NetIncomeEngine
	childCosts *ChildCostModel
	factors    domain.HouseholdCostFactors
	cities     map[string]domain.City
	ordered    []domain.City
}

// NewSimulator builds a simulator from a parameter set. City data is
// copied into an internal index; callers cannot mutate it afterwards.
func NewSimulator(params *domain.Parameters) *Simulator {
	cities := make(map[string]domain.City, len(params.Cities))
	ordered := append([]domain.City(nil), params.Cities...)
	for _, c := range ordered {
		cities[c.ID] = c
	}
	return &Simulator{
		netIncome:  NewNetIncomeEngine(params),
		childCosts: NewChildCostModel(params),
		factors:    params.Household,
		cities:     cities,
		ordered:    ordered,
	}
}

// Cities returns the reference city table in load order.
func (s *Simulator) Cities() []domain.City {
	return append([]domain.City(nil), s.ordered...)
}

// CityByID looks up a city by id.
func (s *Simulator) CityByID(id string) (domain.City, bool) {
	c, ok := s.cities[id]
	return c, ok
}

// Simulate runs the full life simulation. A non-positive salary or an
// unknown city id is a validation boundary, not an error: the result is
// nil and the caller decides presentation.
func (s *Simulator) Simulate(in SimulationInput) *domain.SimulationResult {
	if in.GrossSalary.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	city, ok := s.cities[in.CityID]
	if !ok {
		return nil
	}

	tax := s.netIncome.Calculate(in.GrossSalary)

	// Net annual income stands in for family income in the benefit
	// phase-outs.
	childCosts := s.childCosts.Calculate(domain.ChildCostInput{
		Ages:         in.Household.Ages,
		HasSubsidy:   in.Household.HasSubsidy,
		FamilyIncome: tax.NetAnnual,
	})

	expenses := s.adjustExpenses(city, in.Household)

	netMonthly := tax.NetMonthly
	disposable := netMonthly.Sub(expenses.Total()).Sub(childCosts.NetMonthlyCost)

	savingsRate := decimal.Zero
	rentRatio := decimal.Zero
	if netMonthly.GreaterThan(decimal.Zero) {
		savingsRate = disposable.Div(netMonthly).Mul(hundred)
		rentRatio = city.AvgRent.Div(netMonthly).Mul(hundred)
	}

	return &domain.SimulationResult{
		Tax:               tax,
		City:              city,
		ChildCosts:        childCosts,
		Expenses:          expenses,
		DisposableIncome:  disposable.Round(2),
		SavingsRate:       savingsRate.Round(2),
		RentToIncomeRatio: rentRatio.Round(2),
		RentAffordable:    rentRatio.LessThan(rentAffordable),
		FinancialHealth:   classifyHealth(savingsRate),
	}
}

// adjustExpenses scales the city baseline for household composition. A
// larger unit is priced first (child surcharge on the base rent), then
// shared: a partner halves rent and utilities and multiplies groceries
// by the shared-cost factor rather than two. A car replaces the city's
// transit pass with a flat ownership estimate.
func (s *Simulator) adjustExpenses(city domain.City, hh domain.Household) domain.MonthlyExpenses {
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	rent := city.AvgRent.Mul(one.Add(s.factors.HousingSurcharge(len(hh.Ages))))
	utilities := city.Utilities
	groceries := city.MonthlyGrocery
	if hh.HasPartner {
		rent = rent.Div(two)
		utilities = utilities.Div(two)
		groceries = groceries.Mul(s.factors.PartnerGroceryFactor)
	}

	transportation := city.Transportation
	if hh.HasCar {
		transportation = s.factors.CarMonthlyCost
	}

	return domain.MonthlyExpenses{
		Rent:           rent.Round(2),
		Groceries:      groceries.Round(2),
		Utilities:      utilities.Round(2),
		Transportation: transportation.Round(2),
	}
}

// classifyHealth buckets a savings rate; band lower bounds are
// inclusive.
func classifyHealth(savingsRate decimal.Decimal) domain.FinancialHealth {
	switch {
	case savingsRate.LessThan(decimal.Zero):
		return domain.HealthDeficit
	case savingsRate.LessThan(savingsGood):
		return domain.HealthTight
	case savingsRate.LessThan(savingsExcellent):
		return domain.HealthGood
	default:
		return domain.HealthExcellent
	}
}
