package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

var thousand = decimal.NewFromInt(1000)

// BenefitCalculator computes income-tested family benefits: the federal
// child benefit and the Quebec family allowance. Both use a linear
// phase-out of the maximum benefit per $1,000 of family income above a
// threshold; the threshold itself is inclusive (income exactly at the
// threshold keeps the full maximum).
type BenefitCalculator struct {
	federal domain.BenefitProgram
	quebec  domain.BenefitProgram
}

// NewBenefitCalculator builds the calculator from a parameter set.
func NewBenefitCalculator(params *domain.Parameters) *BenefitCalculator {
	return &BenefitCalculator{
		federal: params.FederalBenefit,
		quebec:  params.QuebecAllowance,
	}
}

// Calculate computes the household's monthly entitlement. The custody
// factor halves the post-reduction amount for shared custody; it never
// changes the phase-out math itself.
func (bc *BenefitCalculator) Calculate(in domain.BenefitsInput) domain.FamilyBenefits {
	income := sanitizeMoney(in.FamilyIncome)
	custody := in.Custody.Factor()

	under6, from6To17 := bc.federalByBand(income, in.ChildrenUnder6, in.Children6To17)
	under6 = under6.Mul(custody)
	from6To17 = from6To17.Mul(custody)
	federalMonthly := under6.Add(from6To17)

	quebecMonthly := bc.quebecAggregate(income, in.TotalChildren()).Mul(custody)

	totalMonthly := federalMonthly.Add(quebecMonthly)
	return domain.FamilyBenefits{
		FederalMonthly: federalMonthly.Round(2),
		QuebecMonthly:  quebecMonthly.Round(2),
		TotalMonthly:   totalMonthly.Round(2),
		TotalYearly:    totalMonthly.Mul(monthsPerYear).Round(2),
		Breakdown: []domain.BandBenefit{
			{Band: domain.AgeUnder6, Monthly: under6.Round(2)},
			{Band: domain.Age6To17, Monthly: from6To17.Round(2)},
		},
	}
}

// federalByBand applies the federal phase-out per age band, with the
// reduction apportioned by each band's share of the children.
func (bc *BenefitCalculator) federalByBand(income decimal.Decimal, countUnder6, count6To17 int) (decimal.Decimal, decimal.Decimal) {
	total := countUnder6 + count6To17
	// Guard the apportionment denominator; with no children every band
	// maximum is zero and the shares are irrelevant.
	denominator := total
	if denominator == 0 {
		denominator = 1
	}
	excess := bc.excessOver(income, bc.federal.IncomeThreshold)

	band := func(bandMax decimal.Decimal, count int) decimal.Decimal {
		full := bandMax.Mul(decimal.NewFromInt(int64(count)))
		share := decimal.NewFromInt(int64(count)).Div(decimal.NewFromInt(int64(denominator)))
		reduction := excess.Div(thousand).Mul(bc.federal.ReductionRate).Mul(bandMax).Mul(share)
		benefit := full.Sub(reduction)
		if benefit.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return benefit
	}

	return band(bc.federal.MaxMonthlyUnder6, countUnder6), band(bc.federal.MaxMonthly6To17, count6To17)
}

// quebecAggregate applies the provincial flat reduction against the
// aggregate allowance.
func (bc *BenefitCalculator) quebecAggregate(income decimal.Decimal, children int) decimal.Decimal {
	if children == 0 {
		return decimal.Zero
	}
	full := bc.quebec.MaxMonthlyUnder6.Mul(decimal.NewFromInt(int64(children)))
	excess := bc.excessOver(income, bc.quebec.IncomeThreshold)
	reduction := excess.Div(thousand).Mul(bc.quebec.ReductionRate).Mul(bc.quebec.MaxMonthlyUnder6)
	benefit := full.Sub(reduction)
	if benefit.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return benefit
}

// excessOver returns income above a threshold, zero at or below it.
func (bc *BenefitCalculator) excessOver(income, threshold decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(threshold) {
		return decimal.Zero
	}
	return income.Sub(threshold)
}
