package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AgeBand identifies the benefit age band a child falls into.
type AgeBand int

const (
	AgeUnder6 AgeBand = iota
	Age6To17
)

// String implements fmt.Stringer for display and yaml output.
func (b AgeBand) String() string {
	switch b {
	case AgeUnder6:
		return "under_6"
	case Age6To17:
		return "6_to_17"
	default:
		return fmt.Sprintf("AgeBand(%d)", int(b))
	}
}

// BandForAge maps a child's age in years to its benefit band. Ages are
// clamped into the supported range; a 17+ child stays in the upper band
// for cost purposes even though benefits stop at 18 (callers filter).
func BandForAge(age int) AgeBand {
	if age < 6 {
		return AgeUnder6
	}
	return Age6To17
}

// Custody determines the share of a benefit a household receives.
type Custody int

const (
	CustodyFull Custody = iota
	CustodyShared
)

// Factor returns the multiplicative share applied to the post-reduction
// benefit: shared custody halves the actual entitlement.
func (c Custody) Factor() decimal.Decimal {
	if c == CustodyShared {
		return decimal.NewFromFloat(0.5)
	}
	return decimal.NewFromInt(1)
}

// ParseCustody converts a CLI/config string to a Custody value.
func ParseCustody(s string) (Custody, error) {
	switch s {
	case "full", "":
		return CustodyFull, nil
	case "shared":
		return CustodyShared, nil
	default:
		return CustodyFull, fmt.Errorf("custody must be 'full' or 'shared', got %q", s)
	}
}

// BenefitProgram holds the phase-out parameters of one income-tested
// child benefit program. ReductionRate is the fraction of the maximum
// benefit lost per $1,000 of family income above the threshold.
type BenefitProgram struct {
	MaxMonthlyUnder6 decimal.Decimal `yaml:"max_monthly_under_6" json:"max_monthly_under_6"`
	MaxMonthly6To17  decimal.Decimal `yaml:"max_monthly_6_to_17" json:"max_monthly_6_to_17"`
	IncomeThreshold  decimal.Decimal `yaml:"income_threshold" json:"income_threshold"`
	ReductionRate    decimal.Decimal `yaml:"reduction_rate" json:"reduction_rate"`
}

// MaxMonthly returns the per-child monthly maximum for a band.
func (p BenefitProgram) MaxMonthly(band AgeBand) decimal.Decimal {
	if band == AgeUnder6 {
		return p.MaxMonthlyUnder6
	}
	return p.MaxMonthly6To17
}

// BenefitsInput describes a household applying for family benefits.
type BenefitsInput struct {
	FamilyIncome   decimal.Decimal
	Custody        Custody
	ChildrenUnder6 int
	Children6To17  int
}

// TotalChildren returns the child count across both bands.
func (in BenefitsInput) TotalChildren() int {
	return in.ChildrenUnder6 + in.Children6To17
}

// BandBenefit is the per-band share of a program's monthly benefit.
type BandBenefit struct {
	Band    AgeBand         `json:"band"`
	Monthly decimal.Decimal `json:"monthly"`
}

// FamilyBenefits is the combined federal + provincial entitlement.
type FamilyBenefits struct {
	FederalMonthly decimal.Decimal `json:"federal_monthly"`
	QuebecMonthly  decimal.Decimal `json:"quebec_monthly"`
	TotalMonthly   decimal.Decimal `json:"total_monthly"`
	TotalYearly    decimal.Decimal `json:"total_yearly"`
	Breakdown      []BandBenefit   `json:"breakdown"`
}

// DaycareCosts holds the monthly daycare figures per care regime.
type DaycareCosts struct {
	SubsidizedMonthly decimal.Decimal `yaml:"subsidized_monthly" json:"subsidized_monthly"`
	PrivateMonthly    decimal.Decimal `yaml:"private_monthly" json:"private_monthly"`
	AfterSchoolMonthly decimal.Decimal `yaml:"after_school_monthly" json:"after_school_monthly"`
}

// ChildCostParameters drives the child-cost model. Base costs cover
// clothing, healthcare and activities; food is carried by the household
// grocery budget, not here. SiblingFactors index by child count
// (1, 2, 3, 4+) and capture shared-resource savings.
type ChildCostParameters struct {
	BaseMonthlyUnder6  decimal.Decimal   `yaml:"base_monthly_under_6" json:"base_monthly_under_6"`
	BaseMonthly6To12   decimal.Decimal   `yaml:"base_monthly_6_to_12" json:"base_monthly_6_to_12"`
	BaseMonthly13To17  decimal.Decimal   `yaml:"base_monthly_13_to_17" json:"base_monthly_13_to_17"`
	SiblingFactors     []decimal.Decimal `yaml:"sibling_factors" json:"sibling_factors"`
	Daycare            DaycareCosts      `yaml:"daycare" json:"daycare"`
}

// SiblingFactor returns the scale-economy factor for a child count.
func (p ChildCostParameters) SiblingFactor(count int) decimal.Decimal {
	if count <= 0 || len(p.SiblingFactors) == 0 {
		return decimal.NewFromInt(1)
	}
	if count > len(p.SiblingFactors) {
		count = len(p.SiblingFactors)
	}
	return p.SiblingFactors[count-1]
}

// ChildCostInput describes the children side of a household.
type ChildCostInput struct {
	Ages         []int
	HasSubsidy   bool
	FamilyIncome decimal.Decimal
}

// ChildCostBreakdown is the net monthly cost of raising the household's
// children. Benefit fields are annual; NetMonthlyCost may be negative
// when benefits exceed the raw cost.
type ChildCostBreakdown struct {
	BaseMonthly        decimal.Decimal `json:"base_monthly"`
	DaycareMonthly     decimal.Decimal `json:"daycare_monthly"`
	TotalMonthly       decimal.Decimal `json:"total_monthly"`
	FederalBenefits    decimal.Decimal `json:"federal_benefits"`
	ProvincialBenefits decimal.Decimal `json:"provincial_benefits"`
	TotalBenefits      decimal.Decimal `json:"total_benefits"`
	NetMonthlyCost     decimal.Decimal `json:"net_monthly_cost"`
}
