package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/qcfin/qcsim/internal/domain"
)

// ParameterParser handles loading of yaml parameter files.
type ParameterParser struct{}

// NewParameterParser creates a new parameter parser.
func NewParameterParser() *ParameterParser {
	return &ParameterParser{}
}

// LoadFromFile loads a parameter set from a yaml file and validates it.
func (pp *ParameterParser) LoadFromFile(filename string) (*domain.Parameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params domain.Parameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := pp.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &params, nil
}

// ValidateParameters validates a full parameter set.
func (pp *ParameterParser) ValidateParameters(params *domain.Parameters) error {
	if params.Metadata.TaxYear < 2000 {
		return fmt.Errorf("tax year must be set (got %d)", params.Metadata.TaxYear)
	}
	if err := pp.validateSchedule("federal", &params.FederalTax); err != nil {
		return err
	}
	if err := pp.validateSchedule("quebec", &params.QuebecTax); err != nil {
		return err
	}
	programs := []struct {
		name    string
		program domain.ContributionProgram
	}{
		{"qpp", params.Contributions.QPP},
		{"qpip", params.Contributions.QPIP},
		{"ei", params.Contributions.EI},
	}
	for _, p := range programs {
		if err := pp.validateProgram(p.name, p.program); err != nil {
			return err
		}
	}
	if err := pp.validateBenefit("federal_child_benefit", params.FederalBenefit); err != nil {
		return err
	}
	if err := pp.validateBenefit("quebec_family_allowance", params.QuebecAllowance); err != nil {
		return err
	}
	if err := pp.validateChildCosts(&params.ChildCosts); err != nil {
		return err
	}
	if err := pp.validateCities(params.Cities); err != nil {
		return err
	}
	return nil
}

// validateSchedule checks bracket contiguity, ordering and progressivity.
func (pp *ParameterParser) validateSchedule(name string, schedule *domain.TaxSchedule) error {
	if schedule.BasicPersonalAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("%s schedule: basic personal amount cannot be negative", name)
	}
	if len(schedule.Brackets) == 0 {
		return fmt.Errorf("%s schedule: at least one bracket is required", name)
	}
	if !schedule.Brackets[0].Min.IsZero() {
		return fmt.Errorf("%s schedule: first bracket must start at 0", name)
	}
	prevRate := decimal.Zero
	for i, b := range schedule.Brackets {
		last := i == len(schedule.Brackets)-1
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s schedule: bracket %d rate must be in [0, 1)", name, i)
		}
		if b.Rate.LessThan(prevRate) {
			return fmt.Errorf("%s schedule: bracket %d rate decreases (schedule must be progressive)", name, i)
		}
		prevRate = b.Rate
		if last {
			if !b.OpenEnded() {
				return fmt.Errorf("%s schedule: final bracket must be open-ended (max omitted)", name)
			}
			continue
		}
		if b.OpenEnded() {
			return fmt.Errorf("%s schedule: only the final bracket may be open-ended", name)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("%s schedule: bracket %d max must exceed min", name, i)
		}
		if !schedule.Brackets[i+1].Min.Equal(b.Max) {
			return fmt.Errorf("%s schedule: bracket %d is not contiguous with bracket %d", name, i, i+1)
		}
	}
	return nil
}

// validateProgram checks one contribution program's parameters.
func (pp *ParameterParser) validateProgram(name string, program domain.ContributionProgram) error {
	if program.Rate.LessThanOrEqual(decimal.Zero) || program.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s: rate must be in (0, 1)", name)
	}
	if program.Exemption.LessThan(decimal.Zero) {
		return fmt.Errorf("%s: exemption cannot be negative", name)
	}
	if program.MaxEarnings.LessThanOrEqual(program.Exemption) {
		return fmt.Errorf("%s: max earnings must exceed the exemption", name)
	}
	if program.MaxAnnual.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%s: max annual contribution must be positive", name)
	}
	return nil
}

// validateBenefit checks one benefit program's parameters.
func (pp *ParameterParser) validateBenefit(name string, program domain.BenefitProgram) error {
	if program.MaxMonthlyUnder6.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%s: max monthly (under 6) must be positive", name)
	}
	if program.MaxMonthly6To17.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%s: max monthly (6 to 17) must be positive", name)
	}
	if program.IncomeThreshold.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%s: income threshold must be positive", name)
	}
	if program.ReductionRate.LessThanOrEqual(decimal.Zero) || program.ReductionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s: reduction rate must be in (0, 1)", name)
	}
	return nil
}

// validateChildCosts checks the child-cost model parameters.
func (pp *ParameterParser) validateChildCosts(costs *domain.ChildCostParameters) error {
	for _, c := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"base_monthly_under_6", costs.BaseMonthlyUnder6},
		{"base_monthly_6_to_12", costs.BaseMonthly6To12},
		{"base_monthly_13_to_17", costs.BaseMonthly13To17},
		{"subsidized_monthly", costs.Daycare.SubsidizedMonthly},
		{"private_monthly", costs.Daycare.PrivateMonthly},
		{"after_school_monthly", costs.Daycare.AfterSchoolMonthly},
	} {
		if c.value.LessThan(decimal.Zero) {
			return fmt.Errorf("child_costs: %s cannot be negative", c.name)
		}
	}
	if len(costs.SiblingFactors) == 0 {
		return fmt.Errorf("child_costs: sibling factors are required")
	}
	prev := decimal.NewFromInt(2)
	for i, f := range costs.SiblingFactors {
		if f.LessThanOrEqual(decimal.Zero) || f.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("child_costs: sibling factor %d must be in (0, 1]", i)
		}
		if f.GreaterThan(prev) {
			return fmt.Errorf("child_costs: sibling factor %d increases (discount must grow with count)", i)
		}
		prev = f
	}
	return nil
}

// validateCities checks city reference data for completeness and
// unique ids.
func (pp *ParameterParser) validateCities(cities []domain.City) error {
	if len(cities) == 0 {
		return fmt.Errorf("at least one city is required")
	}
	seen := make(map[string]bool, len(cities))
	for i, c := range cities {
		if c.ID == "" {
			return fmt.Errorf("city %d: id is required", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("city %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = true
		if c.Name == "" {
			return fmt.Errorf("city %s: name is required", c.ID)
		}
		for _, v := range []struct {
			name  string
			value decimal.Decimal
		}{
			{"avg_rent", c.AvgRent},
			{"monthly_grocery", c.MonthlyGrocery},
			{"utilities", c.Utilities},
			{"transportation", c.Transportation},
		} {
			if v.value.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("city %s: %s must be positive", c.ID, v.name)
			}
		}
	}
	return nil
}
