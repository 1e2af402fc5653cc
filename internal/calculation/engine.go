package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/domain"
)

// Logger is an optional logging seam. The engine logs nothing unless a
// logger is injected; the CLI plugs in a stdlib-log adapter in debug
// mode.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// Engine is the single entry point the presentation layer consumes. It
// owns one immutable parameter set and exposes the pure computation
// operations; every call recomputes from scratch, nothing is cached or
// shared between invocations.
type Engine struct {
	params        *domain.Parameters
	netIncome     *NetIncomeEngine
	contributions *ContributionCalculator
	benefits      *BenefitCalculator
	childCosts    *ChildCostModel
	simulator     *Simulator
	logger        Logger
}

// NewEngine builds an engine over one parameter set.
func NewEngine(params *domain.Parameters) *Engine {
	return &Engine{
		params:        params,
		netIncome:     NewNetIncomeEngine(params),
		contributions: NewContributionCalculator(params.Contributions),
		benefits:      NewBenefitCalculator(params),
		childCosts:    NewChildCostModel(params),
		simulator:     NewSimulator(params),
		logger:        noopLogger{},
	}
}

// SetLogger injects a logger for diagnostic output.
func (e *Engine) SetLogger(l Logger) {
	if l != nil {
		e.logger = l
	}
}

// TaxYear reports the vintage of the loaded parameter set.
func (e *Engine) TaxYear() int {
	return e.params.Metadata.TaxYear
}

// NetIncome computes the authoritative net-income breakdown.
func (e *Engine) NetIncome(grossAnnual decimal.Decimal) domain.TaxResult {
	e.logger.Debugf("net income for gross %s", grossAnnual)
	return e.netIncome.Calculate(grossAnnual)
}

// Contribution computes one program's annual contribution by id
// ("qpp", "qpip" or "ei"). An unknown id is an unknown-reference input
// and yields zero, not an error.
func (e *Engine) Contribution(grossSalary decimal.Decimal, programID string) decimal.Decimal {
	switch programID {
	case "qpp":
		return e.contributions.QPP(grossSalary).Round(2)
	case "qpip":
		return e.contributions.QPIP(grossSalary).Round(2)
	case "ei":
		return e.contributions.EI(grossSalary).Round(2)
	default:
		e.logger.Warnf("unknown contribution program %q", programID)
		return decimal.Zero
	}
}

// FamilyBenefits computes the household's monthly benefit entitlement.
func (e *Engine) FamilyBenefits(in domain.BenefitsInput) domain.FamilyBenefits {
	return e.benefits.Calculate(in)
}

// ChildCosts computes the net monthly cost of the household's children.
func (e *Engine) ChildCosts(in domain.ChildCostInput) domain.ChildCostBreakdown {
	return e.childCosts.Calculate(in)
}

// Simulate runs the full life simulation; nil on invalid input.
func (e *Engine) Simulate(in SimulationInput) *domain.SimulationResult {
	result := e.simulator.Simulate(in)
	if result == nil {
		e.logger.Debugf("simulation rejected: salary=%s city=%q", in.GrossSalary, in.CityID)
	}
	return result
}

// Cities returns the reference city table.
func (e *Engine) Cities() []domain.City {
	return e.simulator.Cities()
}

// CityByID looks up a city by id.
func (e *Engine) CityByID(id string) (domain.City, bool) {
	return e.simulator.CityByID(id)
}
