package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CrateCraft/internal/model"
)

func design(id string, price, volume float64, boards int) model.CrateDesign {
	return model.CrateDesign{ID: id, TotalPrice: price, InternalVolume: volume, BoardCount: boards}
}

func TestAssignRanks_CompetitionRanking(t *testing.T) {
	values := []float64{3, 1, 3, 2, 1}
	ranks := make([]int, len(values))

	assignRanks(len(values), func(i int) float64 { return values[i] }, func(i, r int) { ranks[i] = r })

	assert.Equal(t, []int{4, 1, 4, 3, 1}, ranks)
}

func TestAssignRanks_Empty(t *testing.T) {
	assignRanks(0, func(int) float64 { return 0 }, func(int, int) { t.Fatal("set called for empty input") })
}

func TestRankDesigns(t *testing.T) {
	designs := []model.CrateDesign{
		design("a", 10, 5, 8),
		design("b", 10, 3, 9),
		design("c", 12, 4, 6),
	}

	RankDesigns(designs)

	assert.Equal(t, []int{1, 1, 3}, []int{designs[0].RankPrice, designs[1].RankPrice, designs[2].RankPrice})
	assert.Equal(t, []int{3, 1, 2}, []int{designs[0].RankVolume, designs[1].RankVolume, designs[2].RankVolume})
	assert.Equal(t, []int{2, 3, 1}, []int{designs[0].RankBoards, designs[1].RankBoards, designs[2].RankBoards})
	assert.Equal(t, []int{6, 5, 6}, []int{designs[0].TotalRank, designs[1].TotalRank, designs[2].TotalRank})
	assert.Equal(t, []int{2, 1, 2}, []int{designs[0].RankTotal, designs[1].RankTotal, designs[2].RankTotal})
}

func TestSelectShortlist_MostHonorsFirst(t *testing.T) {
	designs := []model.CrateDesign{
		design("a", 10, 5, 8),
		design("b", 10, 3, 9),
		design("c", 12, 4, 6),
	}
	RankDesigns(designs)

	s := SelectShortlist(designs)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "b", s.Entries[0].Design.ID, "b holds total, price and volume")
	assert.Equal(t, []model.Role{model.RoleBalanced, model.RolePrice, model.RoleVolume}, s.Entries[0].Roles)
	assert.Equal(t, []string{"Price", "Volume"}, s.Entries[0].Labels)

	assert.Equal(t, "c", s.Entries[1].Design.ID)
	assert.Equal(t, []string{"Boards"}, s.Entries[1].Labels)

	_, ok := s.Get("a")
	assert.False(t, ok, "a ties on price but the role is already taken")
}

func TestSelectShortlist_BalancedOnly(t *testing.T) {
	designs := []model.CrateDesign{
		design("price", 1, 10, 10),
		design("volume", 10, 1, 10),
		design("boards", 10, 10, 1),
		design("middle", 2, 2, 2),
	}
	RankDesigns(designs)

	s := SelectShortlist(designs)

	require.Equal(t, 4, s.Len())
	ids := []string{s.Entries[0].Design.ID, s.Entries[1].Design.ID, s.Entries[2].Design.ID, s.Entries[3].Design.ID}
	assert.Equal(t, []string{"price", "volume", "boards", "middle"}, ids, "ties follow evaluation order")
	assert.Equal(t, []string{"Balanced"}, s.Entries[3].Labels)
	assert.Equal(t, []string{"Price"}, s.Entries[0].Labels)
}

func TestSelectShortlist_LabelsNameEveryRankOneMetric(t *testing.T) {
	designs := []model.CrateDesign{
		design("d1", 1, 1, 2),
		design("d2", 1, 2, 1),
	}
	RankDesigns(designs)

	s := SelectShortlist(designs)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "d1", s.Entries[0].Design.ID)
	assert.Equal(t, []model.Role{model.RoleBalanced, model.RolePrice, model.RoleVolume}, s.Entries[0].Roles)
	assert.Equal(t, []string{"Price", "Volume"}, s.Entries[0].Labels)

	// d2 shares the cheapest price but only claims the boards role.
	assert.Equal(t, "d2", s.Entries[1].Design.ID)
	assert.Equal(t, []model.Role{model.RoleBoards}, s.Entries[1].Roles)
	assert.Equal(t, []string{"Price", "Boards"}, s.Entries[1].Labels)
}

func TestSelectShortlist_TieGoesToFirstDesign(t *testing.T) {
	designs := []model.CrateDesign{
		design("first", 5, 5, 5),
		design("second", 5, 5, 5),
	}
	RankDesigns(designs)

	s := SelectShortlist(designs)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "first", s.Entries[0].Design.ID)
	assert.Len(t, s.Entries[0].Roles, 4)
}

func TestSelectShortlist_Empty(t *testing.T) {
	s := SelectShortlist(nil)
	assert.NotNil(t, s.Entries)
	assert.Equal(t, 0, s.Len())
}

func TestEvaluate_AssignsIDsInCombinationOrder(t *testing.T) {
	opt := newTestOptimizer()
	combos := []model.AxisCombination{
		{X: tiling(L, L), Y: tiling(L), Z: tiling(L)},
		{X: tiling(L), Y: tiling(L), Z: tiling(L)},
	}

	result := opt.Evaluate(model.Dims{Width: 40, Height: 40, Depth: 40}, combos)

	require.Len(t, result.Designs, 2)
	assert.Equal(t, "candidate-0", result.Designs[0].ID)
	assert.Equal(t, "candidate-1", result.Designs[1].ID)
	assert.Equal(t, []float64{40, 40}, result.Designs[0].BoardSizes.X)
	assert.Equal(t, 10, result.Designs[0].BoardCount)
	assert.InDelta(t, 0.064, result.Designs[1].InternalVolume, 1e-12)
	assert.InDelta(t, 43.0*43*43*1e-6, result.Designs[1].OuterVolume, 1e-12)
	assert.InDelta(t, 0.064, result.Designs[1].InnerVolume, 1e-12)
	assert.Equal(t, "candidate-1", result.Shortlist.Entries[0].Design.ID)
}

func TestEvaluate_NoCombinations(t *testing.T) {
	opt := newTestOptimizer()

	result := opt.Evaluate(model.Dims{Width: 40, Height: 40, Depth: 40}, nil)

	assert.Empty(t, result.Designs)
	assert.Equal(t, 0, result.Shortlist.Len())
}

func TestEvaluate_WarningsCarryDesignID(t *testing.T) {
	catalog := model.DefaultCatalog()
	catalog.Boards = catalog.Boards[:3] // no board_24x5, no board_5x5
	opt := New(catalog, model.DefaultSettings())
	combos := []model.AxisCombination{{X: tiling(L, S), Y: tiling(L, S), Z: tiling(L)}}

	result := opt.Evaluate(model.Dims{Width: 45, Height: 45, Depth: 40}, combos)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "candidate-0")
	// The skipped 5x5 cells are neither counted nor priced.
	assert.Equal(t, 0, result.Designs[0].BoardTypeCounts["board_5x5"])
}
