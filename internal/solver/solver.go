// Package solver answers the inverse question: what gross salary is
// needed to reach a target net or disposable income.
package solver

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/calculation"
	"github.com/qcfin/qcsim/internal/domain"
)

// Target selects the quantity the solver drives to the requested value.
type Target string

const (
	// TargetNetAnnual solves for a net annual income after all deductions.
	TargetNetAnnual Target = "net-annual"
	// TargetNetMonthly solves for a net monthly income.
	TargetNetMonthly Target = "net-monthly"
	// TargetDisposable solves for a monthly disposable income in a
	// specific city and household.
	TargetDisposable Target = "disposable"
)

// Options bounds the search.
type Options struct {
	MaxIterations int
	// Tolerance is the acceptable gap, in dollars, between the achieved
	// and requested target value.
	Tolerance decimal.Decimal
	// MaxSalary caps the search space.
	MaxSalary decimal.Decimal
}

// DefaultOptions returns bounds suitable for salary-scale searches.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 60,
		Tolerance:     decimal.NewFromFloat(0.50),
		MaxSalary:     decimal.NewFromInt(2_000_000),
	}
}

// Request describes one inverse search.
type Request struct {
	Target      Target
	TargetValue decimal.Decimal
	// CityID and Household only apply to TargetDisposable.
	CityID    string
	Household domain.Household
}

// Result is the solved salary and the value it actually achieves.
type Result struct {
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	AchievedValue decimal.Decimal `json:"achieved_value"`
	TargetValue   decimal.Decimal `json:"target_value"`
	Iterations    int             `json:"iterations"`
}

// Solver runs inverse searches against a calculation engine.
type Solver struct {
	engine  *calculation.Engine
	options Options
}

func NewSolver(engine *calculation.Engine, options Options) *Solver {
	return &Solver{engine: engine, options: options}
}

func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultOptions())
}

// Solve binary-searches the gross salary. Net and disposable income are
// both monotonically non-decreasing in gross salary, which makes the
// bisection sound.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if req.TargetValue.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("target value must be positive, got %s", req.TargetValue)
	}

	evaluate, err := s.evaluator(req)
	if err != nil {
		return nil, err
	}

	low := decimal.Zero
	high := s.options.MaxSalary
	if achieved := evaluate(high); achieved.LessThan(req.TargetValue) {
		return nil, fmt.Errorf("target %s unreachable below a gross salary of %s",
			req.TargetValue, high)
	}

	var result *Result
	for i := 1; i <= s.options.MaxIterations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := low.Add(high).Div(decimal.NewFromInt(2))
		achieved := evaluate(mid)

		result = &Result{
			GrossSalary:   mid.Round(2),
			AchievedValue: achieved,
			TargetValue:   req.TargetValue,
			Iterations:    i,
		}

		gap := achieved.Sub(req.TargetValue)
		if gap.Abs().LessThanOrEqual(s.options.Tolerance) {
			return result, nil
		}
		if gap.IsNegative() {
			low = mid
		} else {
			high = mid
		}
	}

	return result, nil
}

func (s *Solver) evaluator(req Request) (func(decimal.Decimal) decimal.Decimal, error) {
	switch req.Target {
	case TargetNetAnnual:
		return func(gross decimal.Decimal) decimal.Decimal {
			return s.engine.NetIncome(gross).NetAnnual
		}, nil
	case TargetNetMonthly:
		return func(gross decimal.Decimal) decimal.Decimal {
			return s.engine.NetIncome(gross).NetMonthly
		}, nil
	case TargetDisposable:
		if _, ok := s.engine.CityByID(req.CityID); !ok {
			return nil, fmt.Errorf("unknown city %q", req.CityID)
		}
		return func(gross decimal.Decimal) decimal.Decimal {
			result := s.engine.Simulate(calculation.SimulationInput{
				GrossSalary: gross,
				CityID:      req.CityID,
				Household:   req.Household,
			})
			if result == nil {
				return decimal.Zero
			}
			return result.DisposableIncome
		}, nil
	default:
		return nil, fmt.Errorf("unsupported solve target %q", req.Target)
	}
}
