package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CrateCraft/internal/model"
)

func TestBuildDefaultScenarios(t *testing.T) {
	base := model.DefaultCatalog()

	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 3)
	assert.Equal(t, "Current Catalog", scenarios[0].Name)
	assert.Equal(t, base.Gap, scenarios[0].Catalog.Gap)
	assert.Equal(t, "Seams 0.75 (half)", scenarios[1].Name)
	assert.Equal(t, 0.75, scenarios[1].Catalog.Gap)
	assert.Equal(t, base.Thickness, scenarios[1].Catalog.Thickness)
	assert.Equal(t, "Panels 0.75 thick (half)", scenarios[2].Name)
	assert.Equal(t, 0.75, scenarios[2].Catalog.Thickness)
	assert.Equal(t, 1.5, base.Gap, "the base catalog is not modified")
}

func TestBuildDefaultScenarios_NoGap(t *testing.T) {
	base := model.DefaultCatalog()
	base.Gap = 0

	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 2)
	assert.Equal(t, "Current Catalog", scenarios[0].Name)
	assert.Contains(t, scenarios[1].Name, "Panels")
}

func TestCompareScenarios(t *testing.T) {
	cargo := model.Dims{Width: 40, Height: 40, Depth: 40}

	results := CompareScenarios(BuildDefaultScenarios(model.DefaultCatalog()), model.DefaultSettings(), cargo)

	require.Len(t, results, 3)
	current := results[0]
	assert.Equal(t, 20, current.Designs)
	assert.InDelta(t, 75.0, current.CheapestPrice, 1e-9)
	assert.Equal(t, 6, current.FewestBoards)
	assert.Equal(t, 1, current.Result.Shortlist.Len())

	// Thinner panels shrink the outer box but not the boards or their price.
	thin := results[2]
	assert.InDelta(t, current.CheapestPrice, thin.CheapestPrice, 1e-9)
	assert.Equal(t, 41.5, thin.Result.Shortlist.Entries[0].Design.OuterDims.Width)
}

func TestCompareScenarios_InvalidCargo(t *testing.T) {
	results := CompareScenarios(BuildDefaultScenarios(model.DefaultCatalog()), model.DefaultSettings(), model.Dims{})

	for _, r := range results {
		assert.Zero(t, r.Designs)
		assert.Zero(t, r.CheapestPrice)
		assert.Zero(t, r.FewestBoards)
	}
}
