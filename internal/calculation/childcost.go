package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

// ChildCostModel derives the net monthly cost of raising a household's
// children: per-age-band base costs with sibling economies of scale,
// daycare by care regime, less the family benefits the same income
// qualifies for.
type ChildCostModel struct {
	costs    domain.ChildCostParameters
	benefits *BenefitCalculator
}

// NewChildCostModel builds the model from a parameter set.
func NewChildCostModel(params *domain.Parameters) *ChildCostModel {
	return &ChildCostModel{
		costs:    params.ChildCosts,
		benefits: NewBenefitCalculator(params),
	}
}

// Calculate computes the breakdown for a set of children. With no
// children it short-circuits to an all-zero breakdown without invoking
// the benefit calculator. NetMonthlyCost may be negative when benefits
// exceed the raw cost.
func (m *ChildCostModel) Calculate(in domain.ChildCostInput) domain.ChildCostBreakdown {
	if len(in.Ages) == 0 {
		return domain.ChildCostBreakdown{
			BaseMonthly:        decimal.Zero,
			DaycareMonthly:     decimal.Zero,
			TotalMonthly:       decimal.Zero,
			FederalBenefits:    decimal.Zero,
			ProvincialBenefits: decimal.Zero,
			TotalBenefits:      decimal.Zero,
			NetMonthlyCost:     decimal.Zero,
		}
	}

	base := decimal.Zero
	daycare := decimal.Zero
	countUnder6 := 0
	count6To17 := 0
	for _, age := range in.Ages {
		switch {
		case age < 6:
			countUnder6++
			base = base.Add(m.costs.BaseMonthlyUnder6)
			if in.HasSubsidy {
				daycare = daycare.Add(m.costs.Daycare.SubsidizedMonthly)
			} else {
				daycare = daycare.Add(m.costs.Daycare.PrivateMonthly)
			}
		case age <= 12:
			count6To17++
			base = base.Add(m.costs.BaseMonthly6To12)
			daycare = daycare.Add(m.costs.Daycare.AfterSchoolMonthly)
		default:
			count6To17++
			base = base.Add(m.costs.BaseMonthly13To17)
			// No care line for teenagers.
		}
	}

	base = base.Mul(m.costs.SiblingFactor(len(in.Ages)))
	totalMonthly := base.Add(daycare)

	benefits := m.benefits.Calculate(domain.BenefitsInput{
		FamilyIncome:   in.FamilyIncome,
		Custody:        domain.CustodyFull,
		ChildrenUnder6: countUnder6,
		Children6To17:  count6To17,
	})

	federalAnnual := benefits.FederalMonthly.Mul(monthsPerYear)
	provincialAnnual := benefits.QuebecMonthly.Mul(monthsPerYear)
	totalAnnual := federalAnnual.Add(provincialAnnual)

	return domain.ChildCostBreakdown{
		BaseMonthly:        base.Round(2),
		DaycareMonthly:     daycare.Round(2),
		TotalMonthly:       totalMonthly.Round(2),
		FederalBenefits:    federalAnnual.Round(2),
		ProvincialBenefits: provincialAnnual.Round(2),
		TotalBenefits:      totalAnnual.Round(2),
		NetMonthlyCost:     totalMonthly.Sub(totalAnnual.Div(monthsPerYear)).Round(2),
	}
}
