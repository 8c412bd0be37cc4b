package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// Evaluate prices and measures every combination, ranks the resulting
// designs and selects the shortlist. Designs keep the order of combos, and
// that order decides ties.
func (o *Optimizer) Evaluate(cargo model.Dims, combos []model.AxisCombination) model.CrateResult {
	result := model.CrateResult{
		Cargo:     cargo,
		Designs:   make([]model.CrateDesign, 0, len(combos)),
		Shortlist: model.Shortlist{Entries: []model.ShortlistEntry{}},
	}
	if len(combos) == 0 {
		return result
	}

	for i, combo := range combos {
		design, warnings := o.evaluateDesign(fmt.Sprintf("candidate-%d", i), cargo, combo)
		result.Designs = append(result.Designs, design)
		result.Warnings = append(result.Warnings, warnings...)
	}

	RankDesigns(result.Designs)
	result.Shortlist = SelectShortlist(result.Designs)
	return result
}

// evaluateDesign builds the layout of one combination and derives its
// price, part counts, dimensions and volumes.
func (o *Optimizer) evaluateDesign(id string, cargo model.Dims, combo model.AxisCombination) (model.CrateDesign, []string) {
	layout := o.Layout(combo)

	counts := make(map[string]int)
	boardCount := 0
	for _, f := range model.AllFaces {
		for _, b := range layout.Faces[f].Boards {
			counts[b.TypeKey]++
			boardCount++
		}
	}

	// Summing per type in catalog order keeps equal part lists at exactly
	// equal prices.
	var price float64
	for _, bt := range o.Catalog.Boards {
		price += bt.Price * float64(counts[bt.Key])
	}

	internal := model.Dims{
		Width:  o.Catalog.Span(combo.X),
		Height: o.Catalog.Span(combo.Y),
		Depth:  o.Catalog.Span(combo.Z),
	}
	t2 := 2 * o.Catalog.Thickness
	outer := model.Dims{
		Width:  internal.Width + t2,
		Height: internal.Height + t2,
		Depth:  internal.Depth + t2,
	}
	scale := o.Settings.VolumeScale

	design := model.CrateDesign{
		ID:      id,
		Tilings: combo,
		BoardSizes: model.BoardSizes{
			X: o.Catalog.Sizes(combo.X),
			Y: o.Catalog.Sizes(combo.Y),
			Z: o.Catalog.Sizes(combo.Z),
		},
		Faces:           layout.Faces,
		Cubes:           layout.Cubes,
		BoardCount:      boardCount,
		CubeCount:       layout.Cubes.Count(),
		TotalPrice:      price,
		BoardTypeCounts: counts,
		InnerVolume:     cargo.Volume() * scale,
		InternalVolume:  internal.Volume() * scale,
		OuterVolume:     outer.Volume() * scale,
		OuterDims:       outer,
		InternalDims:    internal,
	}

	warnings := make([]string, 0, len(layout.Warnings))
	for _, w := range layout.Warnings {
		warnings = append(warnings, id+": "+w)
	}
	return design, warnings
}

// RankDesigns assigns the per-metric ranks, the rank sum and the rank of
// that sum. Lower values rank better on every metric.
func RankDesigns(designs []model.CrateDesign) {
	assignRanks(len(designs),
		func(i int) float64 { return designs[i].TotalPrice },
		func(i, r int) { designs[i].RankPrice = r })
	assignRanks(len(designs),
		func(i int) float64 { return designs[i].InternalVolume },
		func(i, r int) { designs[i].RankVolume = r })
	assignRanks(len(designs),
		func(i int) float64 { return float64(designs[i].BoardCount) },
		func(i, r int) { designs[i].RankBoards = r })

	for i := range designs {
		designs[i].TotalRank = designs[i].RankPrice + designs[i].RankVolume + designs[i].RankBoards
	}
	assignRanks(len(designs),
		func(i int) float64 { return float64(designs[i].TotalRank) },
		func(i, r int) { designs[i].RankTotal = r })
}

// assignRanks uses competition ranking: equal values share a rank and the
// next larger value takes its 1-based position in sorted order (1, 1, 3).
func assignRanks(n int, value func(i int) float64, set func(i, rank int)) {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return value(order[a]) < value(order[b])
	})

	prev := 0
	for pos, idx := range order {
		rank := pos + 1
		if pos > 0 && value(idx) == value(order[pos-1]) {
			rank = prev
		}
		set(idx, rank)
		prev = rank
	}
}

// SelectShortlist fills the four roles greedily. Each round the design that
// satisfies the most still-open roles takes all of them; the first design in
// evaluation order wins ties. Rounds repeat until every role is taken.
func SelectShortlist(designs []model.CrateDesign) model.Shortlist {
	shortlist := model.Shortlist{Entries: make([]model.ShortlistEntry, 0, len(model.AllRoles))}
	if len(designs) == 0 {
		return shortlist
	}

	open := make(map[model.Role]bool, len(model.AllRoles))
	for _, r := range model.AllRoles {
		open[r] = true
	}

	for len(open) > 0 {
		best, bestHonors := -1, 0
		for i, d := range designs {
			if h := honors(d, open); h > bestHonors {
				best, bestHonors = i, h
			}
		}
		if best < 0 {
			break
		}

		var won []model.Role
		for _, r := range model.AllRoles {
			if open[r] && r.Satisfies(designs[best]) {
				won = append(won, r)
				delete(open, r)
			}
		}
		shortlist.Entries = mergeEntry(shortlist.Entries, designs[best], won)
	}

	for i := range shortlist.Entries {
		shortlist.Entries[i].Labels = labelsFor(shortlist.Entries[i].Design)
	}
	return shortlist
}

// honors counts the open roles d currently satisfies.
func honors(d model.CrateDesign, open map[model.Role]bool) int {
	n := 0
	for r := range open {
		if r.Satisfies(d) {
			n++
		}
	}
	return n
}

func mergeEntry(entries []model.ShortlistEntry, d model.CrateDesign, roles []model.Role) []model.ShortlistEntry {
	for i := range entries {
		if entries[i].Design.ID == d.ID {
			entries[i].Roles = append(entries[i].Roles, roles...)
			sortRoles(entries[i].Roles)
			return entries
		}
	}
	return append(entries, model.ShortlistEntry{Design: d, Roles: roles})
}

func sortRoles(roles []model.Role) {
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
}

// labelsFor names every individual metric on which d ranks first, whether
// or not d claimed that role. A design first on none of them is labelled
// Balanced when it holds the best total rank.
func labelsFor(d model.CrateDesign) []string {
	var labels []string
	if d.RankPrice == 1 {
		labels = append(labels, model.RolePrice.Label())
	}
	if d.RankVolume == 1 {
		labels = append(labels, model.RoleVolume.Label())
	}
	if d.RankBoards == 1 {
		labels = append(labels, model.RoleBoards.Label())
	}
	if len(labels) == 0 && d.RankTotal == 1 {
		labels = append(labels, model.RoleBalanced.Label())
	}
	return labels
}
