package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

// ContributionCalculator computes capped, floor-adjusted payroll
// contributions for the three Quebec social programs. Each program is an
// independent run of the same algorithm with its own parameter set.
type ContributionCalculator struct {
	programs domain.ContributionPrograms
}

// NewContributionCalculator creates a calculator over the three program
// parameter sets.
func NewContributionCalculator(programs domain.ContributionPrograms) *ContributionCalculator {
	return &ContributionCalculator{programs: programs}
}

// Calculate computes one program's annual contribution. The earnings
// base is floored by the exemption and ceilinged by the program's
// maximum insurable or pensionable earnings; the result is then capped
// by the absolute dollar maximum. Both ceilings are statutory and
// enforced independently; when they disagree by a few cents the dollar
// cap governs.
func (cc *ContributionCalculator) Calculate(grossSalary decimal.Decimal, program domain.ContributionProgram) decimal.Decimal {
	grossSalary = sanitizeMoney(grossSalary)

	base := grossSalary.Sub(program.Exemption)
	if base.LessThan(decimal.Zero) {
		base = decimal.Zero
	}
	maxBase := program.MaxEarnings.Sub(program.Exemption)
	if base.GreaterThan(maxBase) {
		base = maxBase
	}

	contribution := base.Mul(program.Rate)
	if contribution.GreaterThan(program.MaxAnnual) {
		contribution = program.MaxAnnual
	}
	return contribution
}

// QPP computes the pension plan contribution.
func (cc *ContributionCalculator) QPP(grossSalary decimal.Decimal) decimal.Decimal {
	return cc.Calculate(grossSalary, cc.programs.QPP)
}

// QPIP computes the parental insurance contribution.
func (cc *ContributionCalculator) QPIP(grossSalary decimal.Decimal) decimal.Decimal {
	return cc.Calculate(grossSalary, cc.programs.QPIP)
}

// EI computes the employment insurance contribution.
func (cc *ContributionCalculator) EI(grossSalary decimal.Decimal) decimal.Decimal {
	return cc.Calculate(grossSalary, cc.programs.EI)
}
