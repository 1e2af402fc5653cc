package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

var (
	hundred        = decimal.NewFromInt(100)
	monthsPerYear  = decimal.NewFromInt(12)
	payPeriodsYear = decimal.NewFromInt(26)
)

// NetIncomeEngine composes the federal and Quebec bracket calculators
// with the three contribution programs into one authoritative
// net-income breakdown. Pure and idempotent: identical input always
// yields identical output.
type NetIncomeEngine struct {
	federal       *BracketTaxCalculator
	quebec        *BracketTaxCalculator
	contributions *ContributionCalculator
}

// NewNetIncomeEngine builds the engine from a parameter set.
func NewNetIncomeEngine(params *domain.Parameters) *NetIncomeEngine {
	return &NetIncomeEngine{
		federal:       NewBracketTaxCalculator(params.FederalTax),
		quebec:        NewBracketTaxCalculator(params.QuebecTax),
		contributions: NewContributionCalculator(params.Contributions),
	}
}

// Calculate produces the full breakdown for one gross annual salary.
// Monetary outputs are rounded to cents, rate outputs to two decimals
// (percent). Bi-weekly means 26 pay periods, not semi-monthly.
func (e *NetIncomeEngine) Calculate(grossAnnual decimal.Decimal) domain.TaxResult {
	grossAnnual = sanitizeMoney(grossAnnual)

	federal := e.federal.Calculate(grossAnnual)
	quebec := e.quebec.Calculate(grossAnnual)

	qpp := e.contributions.QPP(grossAnnual)
	qpip := e.contributions.QPIP(grossAnnual)
	ei := e.contributions.EI(grossAnnual)

	totalTax := federal.Tax.Add(quebec.Tax)
	totalDeductions := qpp.Add(qpip).Add(ei)
	netAnnual := grossAnnual.Sub(totalTax).Sub(totalDeductions)

	effectiveRate := decimal.Zero
	takeHome := decimal.Zero
	if grossAnnual.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Add(totalDeductions).Div(grossAnnual).Mul(hundred)
		takeHome = netAnnual.Div(grossAnnual).Mul(hundred)
	}
	// The two jurisdictions tax the same income independently, so their
	// marginal rates add.
	marginalRate := federal.MarginalRate.Add(quebec.MarginalRate).Mul(hundred)

	return domain.TaxResult{
		GrossAnnual:        grossAnnual.Round(2),
		FederalTax:         federal.Tax.Round(2),
		ProvincialTax:      quebec.Tax.Round(2),
		QPPContribution:    qpp.Round(2),
		QPIPContribution:   qpip.Round(2),
		EIContribution:     ei.Round(2),
		TotalTax:           totalTax.Round(2),
		TotalDeductions:    totalDeductions.Round(2),
		NetAnnual:          netAnnual.Round(2),
		NetMonthly:         netAnnual.Div(monthsPerYear).Round(2),
		NetBiWeekly:        netAnnual.Div(payPeriodsYear).Round(2),
		EffectiveTaxRate:   effectiveRate.Round(2),
		MarginalTaxRate:    marginalRate.Round(2),
		TakeHomePercentage: takeHome.Round(2),
	}
}
