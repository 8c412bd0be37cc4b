package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// ComparisonScenario defines a named catalog variant to compare.
type ComparisonScenario struct {
	Name    string
	Catalog model.Catalog
}

// ComparisonResult holds the optimization result and headline figures for
// a single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.CrateResult
	Designs       int
	CheapestPrice float64
	LeastDead     float64
	FewestBoards  int
}

// CompareScenarios runs the optimizer for each scenario against the same
// cargo and returns the results in scenario order. Scenarios that produce
// no designs report zero figures.
func CompareScenarios(scenarios []ComparisonScenario, settings model.Settings, cargo model.Dims) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Catalog, settings)
		result := opt.Optimize(cargo)

		cr := ComparisonResult{
			Scenario: scenario,
			Result:   result,
			Designs:  len(result.Designs),
		}
		if len(result.Designs) > 0 {
			cr.CheapestPrice = math.Inf(1)
			cr.LeastDead = math.Inf(1)
			cr.FewestBoards = math.MaxInt
			for _, d := range result.Designs {
				cr.CheapestPrice = math.Min(cr.CheapestPrice, d.TotalPrice)
				cr.LeastDead = math.Min(cr.LeastDead, d.DeadSpace())
				if d.BoardCount < cr.FewestBoards {
					cr.FewestBoards = d.BoardCount
				}
			}
		}
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates what-if variants of a catalog: tighter
// seams and thinner panels.
func BuildDefaultScenarios(base model.Catalog) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:    "Current Catalog",
			Catalog: base,
		},
	}

	if base.Gap > 0 {
		tight := base
		tight.Gap = base.Gap * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Seams %.2f (half)", tight.Gap),
			Catalog: tight,
		})
	}

	if base.Thickness > 0 {
		thin := base
		thin.Thickness = base.Thickness * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Panels %.2f thick (half)", thin.Thickness),
			Catalog: thin,
		})
	}

	return scenarios
}
