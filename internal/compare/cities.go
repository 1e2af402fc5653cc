// Package compare runs the same salary and household profile through
// every known city and ranks the results by disposable income.
package compare

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/calculation"
	"github.com/qcfin/qcsim/internal/domain"
)

// CityResult is one city's outcome for the compared profile.
type CityResult struct {
	City          domain.City              `json:"city"`
	Result        *domain.SimulationResult `json:"result"`
	Rank          int                      `json:"rank"`
	DeltaFromBase decimal.Decimal          `json:"delta_from_base"`
}

// Comparison holds the ranked city results. Base is the city the deltas
// are measured against, defaulting to the first-ranked city.
type Comparison struct {
	GrossSalary decimal.Decimal  `json:"gross_salary"`
	Household   domain.Household `json:"household"`
	BaseCityID  string           `json:"base_city_id"`
	Results     []CityResult     `json:"results"`
}

// Options controls a comparison run.
type Options struct {
	// BaseCityID anchors the delta column. Empty means the top-ranked city.
	BaseCityID string
	// CityIDs restricts the comparison to a subset. Empty means all cities.
	CityIDs []string
}

// CityComparator evaluates a profile across cities.
type CityComparator struct {
	engine *calculation.Engine
}

func NewCityComparator(engine *calculation.Engine) *CityComparator {
	return &CityComparator{engine: engine}
}

// Compare simulates the profile in each requested city and ranks the
// outcomes by monthly disposable income, highest first.
func (cc *CityComparator) Compare(ctx context.Context, salary decimal.Decimal, household domain.Household, opts Options) (*Comparison, error) {
	cities := cc.engine.Cities()
	if len(opts.CityIDs) > 0 {
		cities = make([]domain.City, 0, len(opts.CityIDs))
		for _, id := range opts.CityIDs {
			city, ok := cc.engine.CityByID(id)
			if !ok {
				return nil, fmt.Errorf("unknown city %q", id)
			}
			cities = append(cities, city)
		}
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("no cities to compare")
	}

	comparison := &Comparison{
		GrossSalary: salary,
		Household:   household,
		Results:     make([]CityResult, 0, len(cities)),
	}

	for _, city := range cities {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result := cc.engine.Simulate(calculation.SimulationInput{
			GrossSalary: salary,
			CityID:      city.ID,
			Household:   household,
		})
		if result == nil {
			return nil, fmt.Errorf("simulation failed for city %q", city.ID)
		}
		comparison.Results = append(comparison.Results, CityResult{
			City:   city,
			Result: result,
		})
	}

	sort.SliceStable(comparison.Results, func(i, j int) bool {
		return comparison.Results[i].Result.DisposableIncome.GreaterThan(comparison.Results[j].Result.DisposableIncome)
	})

	baseID := opts.BaseCityID
	if baseID == "" {
		baseID = comparison.Results[0].City.ID
	}
	var base *domain.SimulationResult
	for _, r := range comparison.Results {
		if r.City.ID == baseID {
			base = r.Result
			break
		}
	}
	if base == nil {
		return nil, fmt.Errorf("base city %q not in comparison", baseID)
	}
	comparison.BaseCityID = baseID

	for i := range comparison.Results {
		comparison.Results[i].Rank = i + 1
		comparison.Results[i].DeltaFromBase = comparison.Results[i].Result.DisposableIncome.Sub(base.DisposableIncome)
	}

	return comparison, nil
}
