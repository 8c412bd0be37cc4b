package engine

import (
	"math"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// Tile returns the candidate board sequences for one crate axis, in the
// order overshoot, medium + fill, fill only. Duplicates are dropped, and
// the result is never empty.
//
// Every fill step keeps a board only if the packed length after adding it
// stays within target. A fill candidate whose span still cannot hold the
// target falls back to the overshoot sequence.
func (o *Optimizer) Tile(target float64) []model.AxisTiling {
	if math.IsNaN(target) {
		return []model.AxisTiling{{model.BoardLarge}}
	}
	limit := target + o.Settings.Epsilon

	prefix := o.largePrefix(limit)
	overshoot := extend(prefix, model.BoardLarge)
	candidates := []model.AxisTiling{overshoot}

	seeds := []model.AxisTiling{
		extend(prefix, model.BoardMedium),
		extend(prefix),
	}
	for _, seed := range seeds {
		t := o.fillSmall(seed, limit)
		if len(t) == 0 {
			continue
		}
		if o.Catalog.Span(t) < target-o.Settings.Epsilon {
			t = overshoot
		}
		candidates = appendUnique(candidates, t)
	}
	return candidates
}

// largePrefix greedily stacks large boards while the packed length stays
// within limit.
func (o *Optimizer) largePrefix(limit float64) model.AxisTiling {
	var t model.AxisTiling
	if math.IsNaN(limit) || math.IsInf(limit, 1) || o.Catalog.Lengths.Large+o.Catalog.Gap <= 0 {
		return t
	}
	for {
		next := extend(t, model.BoardLarge)
		if o.Catalog.PackedLength(next) > limit {
			return t
		}
		t = next
	}
}

// fillSmall appends up to MaxFillers small boards while the packed length
// stays within limit.
func (o *Optimizer) fillSmall(t model.AxisTiling, limit float64) model.AxisTiling {
	for i := 0; i < o.Settings.MaxFillers; i++ {
		next := extend(t, model.BoardSmall)
		if o.Catalog.PackedLength(next) > limit {
			break
		}
		t = next
	}
	return t
}

// extend returns a fresh copy of t with boards appended.
func extend(t model.AxisTiling, boards ...model.BoardLength) model.AxisTiling {
	out := make(model.AxisTiling, 0, len(t)+len(boards))
	out = append(out, t...)
	return append(out, boards...)
}

func appendUnique(list []model.AxisTiling, t model.AxisTiling) []model.AxisTiling {
	for _, existing := range list {
		if existing.Equal(t) {
			return list
		}
	}
	return append(list, t)
}
