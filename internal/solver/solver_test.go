package solver

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcfin/qcsim/internal/calculation"
	"github.com/qcfin/qcsim/internal/config"
	"github.com/qcfin/qcsim/internal/domain"
)

func newTestSolver() (*Solver, *calculation.Engine) {
	engine := calculation.NewEngine(config.DefaultParameters())
	return NewDefaultSolver(engine), engine
}

func TestSolveNetAnnual(t *testing.T) {
	s, engine := newTestSolver()

	// Forward-compute a known pair, then solve backwards.
	gross := decimal.NewFromInt(55000)
	net := engine.NetIncome(gross).NetAnnual

	result, err := s.Solve(context.Background(), Request{
		Target:      TargetNetAnnual,
		TargetValue: net,
	})
	require.NoError(t, err)

	diff := result.GrossSalary.Sub(gross).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromInt(10)),
		"solved %s for target net %s, expected close to %s", result.GrossSalary, net, gross)
	assert.True(t, result.AchievedValue.Sub(net).Abs().LessThanOrEqual(decimal.NewFromInt(1)))
	assert.Greater(t, result.Iterations, 0)
}

func TestSolveNetMonthly(t *testing.T) {
	s, engine := newTestSolver()

	result, err := s.Solve(context.Background(), Request{
		Target:      TargetNetMonthly,
		TargetValue: decimal.NewFromInt(4000),
	})
	require.NoError(t, err)

	achieved := engine.NetIncome(result.GrossSalary).NetMonthly
	assert.True(t, achieved.Sub(decimal.NewFromInt(4000)).Abs().LessThan(decimal.NewFromInt(2)),
		"gross %s yields net monthly %s", result.GrossSalary, achieved)
}

func TestSolveDisposable(t *testing.T) {
	s, engine := newTestSolver()

	household := domain.Household{HasPartner: true, Ages: []int{4}, HasSubsidy: true}
	target := decimal.NewFromInt(1500)

	result, err := s.Solve(context.Background(), Request{
		Target:      TargetDisposable,
		TargetValue: target,
		CityID:      "montreal",
		Household:   household,
	})
	require.NoError(t, err)

	sim := engine.Simulate(calculation.SimulationInput{
		GrossSalary: result.GrossSalary,
		CityID:      "montreal",
		Household:   household,
	})
	require.NotNil(t, sim)
	assert.True(t, sim.DisposableIncome.Sub(target).Abs().LessThan(decimal.NewFromInt(5)),
		"gross %s yields disposable %s", result.GrossSalary, sim.DisposableIncome)
}

func TestSolveErrors(t *testing.T) {
	s, _ := newTestSolver()
	ctx := context.Background()

	_, err := s.Solve(ctx, Request{Target: TargetNetAnnual, TargetValue: decimal.Zero})
	assert.Error(t, err)

	_, err = s.Solve(ctx, Request{Target: TargetDisposable, TargetValue: decimal.NewFromInt(1000), CityID: "toronto"})
	assert.Error(t, err)

	_, err = s.Solve(ctx, Request{Target: Target("lifetime"), TargetValue: decimal.NewFromInt(1000)})
	assert.Error(t, err)

	// A net income no salary under the cap can reach.
	_, err = s.Solve(ctx, Request{Target: TargetNetAnnual, TargetValue: decimal.NewFromInt(10_000_000)})
	assert.ErrorContains(t, err, "unreachable")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Solve(cancelled, Request{Target: TargetNetAnnual, TargetValue: decimal.NewFromInt(40000)})
	assert.ErrorIs(t, err, context.Canceled)
}
