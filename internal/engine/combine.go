package engine

import "github.com/piwi3910/CrateCraft/internal/model"

// Combine cross-multiplies the per-axis candidates in x, y, z order and
// keeps the combinations where at most one axis carries a medium board.
func Combine(xs, ys, zs []model.AxisTiling) []model.AxisCombination {
	combos := make([]model.AxisCombination, 0, len(xs)*len(ys)*len(zs))
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				c := model.AxisCombination{X: x, Y: y, Z: z}
				if c.MediumAxes() > 1 {
					continue
				}
				combos = append(combos, c)
			}
		}
	}
	return combos
}
