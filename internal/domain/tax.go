package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one segment of a progressive marginal rate schedule.
// A zero-valued Max marks the open-ended top bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// OpenEnded reports whether this bracket has no upper bound.
func (b TaxBracket) OpenEnded() bool {
	return b.Max.IsZero()
}

// TaxSchedule is the full progressive schedule for one jurisdiction.
type TaxSchedule struct {
	BasicPersonalAmount decimal.Decimal `yaml:"basic_personal_amount" json:"basic_personal_amount"`
	Brackets            []TaxBracket    `yaml:"brackets" json:"brackets"`
}

// ContributionProgram holds the parameters of one payroll contribution
// program (QPP, QPIP or EI). MaxEarnings caps the earnings base;
// MaxAnnual is the hard dollar cap on the computed contribution. The two
// ceilings come from separate statutory tables and may disagree by a few
// cents; MaxAnnual governs.
type ContributionProgram struct {
	Rate        decimal.Decimal `yaml:"rate" json:"rate"`
	Exemption   decimal.Decimal `yaml:"exemption" json:"exemption"`
	MaxEarnings decimal.Decimal `yaml:"max_earnings" json:"max_earnings"`
	MaxAnnual   decimal.Decimal `yaml:"max_annual" json:"max_annual"`
}

// ContributionPrograms groups the three Quebec payroll programs.
type ContributionPrograms struct {
	QPP  ContributionProgram `yaml:"qpp" json:"qpp"`
	QPIP ContributionProgram `yaml:"qpip" json:"qpip"`
	EI   ContributionProgram `yaml:"ei" json:"ei"`
}

// ParametersMetadata describes the vintage of a parameter set.
type ParametersMetadata struct {
	TaxYear     int    `yaml:"tax_year" json:"tax_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// Parameters is the single authoritative constant set for one tax year.
// It is loaded once at startup (from yaml or the built-in defaults) and
// never mutated; calculators receive it by value or behind an
// unexported copy so callers cannot alter shared constants.
type Parameters struct {
	Metadata        ParametersMetadata    `yaml:"metadata" json:"metadata"`
	FederalTax      TaxSchedule           `yaml:"federal_tax" json:"federal_tax"`
	QuebecTax       TaxSchedule           `yaml:"quebec_tax" json:"quebec_tax"`
	Contributions   ContributionPrograms  `yaml:"contributions" json:"contributions"`
	FederalBenefit  BenefitProgram        `yaml:"federal_child_benefit" json:"federal_child_benefit"`
	QuebecAllowance BenefitProgram        `yaml:"quebec_family_allowance" json:"quebec_family_allowance"`
	ChildCosts      ChildCostParameters   `yaml:"child_costs" json:"child_costs"`
	Household       HouseholdCostFactors  `yaml:"household" json:"household"`
	Cities          []City                `yaml:"cities" json:"cities"`
}

// TaxResult is the authoritative net-income breakdown for one gross
// annual salary. Monetary fields are rounded to cents, rate fields to
// two decimals (percent).
type TaxResult struct {
	GrossAnnual        decimal.Decimal `json:"gross_annual"`
	FederalTax         decimal.Decimal `json:"federal_tax"`
	ProvincialTax      decimal.Decimal `json:"provincial_tax"`
	QPPContribution    decimal.Decimal `json:"qpp_contribution"`
	QPIPContribution   decimal.Decimal `json:"qpip_contribution"`
	EIContribution     decimal.Decimal `json:"ei_contribution"`
	TotalTax           decimal.Decimal `json:"total_tax"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetAnnual          decimal.Decimal `json:"net_annual"`
	NetMonthly         decimal.Decimal `json:"net_monthly"`
	NetBiWeekly        decimal.Decimal `json:"net_biweekly"`
	EffectiveTaxRate   decimal.Decimal `json:"effective_tax_rate"`
	MarginalTaxRate    decimal.Decimal `json:"marginal_tax_rate"`
	TakeHomePercentage decimal.Decimal `json:"take_home_percentage"`
}
