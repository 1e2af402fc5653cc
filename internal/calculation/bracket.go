package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

// BracketTax is the tax and marginal rate for one jurisdiction.
type BracketTax struct {
	Tax          decimal.Decimal
	MarginalRate decimal.Decimal
}

// BracketTaxCalculator applies a progressive marginal-rate schedule with
// a basic personal exemption for one jurisdiction.
type BracketTaxCalculator struct {
	schedule domain.TaxSchedule
}

// NewBracketTaxCalculator creates a calculator over one schedule. The
// schedule is copied; callers keep no handle into shared constants.
func NewBracketTaxCalculator(schedule domain.TaxSchedule) *BracketTaxCalculator {
	copied := schedule
	copied.Brackets = append([]domain.TaxBracket(nil), schedule.Brackets...)
	return &BracketTaxCalculator{schedule: copied}
}

// Calculate computes tax on a gross income. Negative income is clamped
// to zero, never rejected. The marginal rate is the rate of the highest
// bracket actually entered; income below the basic personal amount
// enters no bracket and yields a zero marginal rate.
func (btc *BracketTaxCalculator) Calculate(income decimal.Decimal) BracketTax {
	income = sanitizeMoney(income)

	taxableIncome := income.Sub(btc.schedule.BasicPersonalAmount)
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return BracketTax{Tax: decimal.Zero, MarginalRate: decimal.Zero}
	}

	totalTax := decimal.Zero
	marginalRate := decimal.Zero
	for _, bracket := range btc.schedule.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := bracket.Max
		if bracket.OpenEnded() || taxableIncome.LessThan(upper) {
			upper = taxableIncome
		}
		incomeInBracket := upper.Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
			marginalRate = bracket.Rate
		}
	}

	return BracketTax{Tax: totalTax, MarginalRate: marginalRate}
}

// sanitizeMoney clamps a monetary input to the representable domain:
// negative amounts become zero. A public-facing financial tool must
// always produce some number, so invalid input degrades instead of
// propagating.
func sanitizeMoney(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return v
}
