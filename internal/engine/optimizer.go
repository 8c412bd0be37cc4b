package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// Optimizer turns cargo dimensions into a ranked set of crate designs.
// It holds no state between runs; every call recomputes from scratch.
type Optimizer struct {
	Catalog  model.Catalog
	Settings model.Settings
	Logger   zerolog.Logger
}

func New(catalog model.Catalog, settings model.Settings) *Optimizer {
	return &Optimizer{
		Catalog:  catalog,
		Settings: settings,
		Logger:   zerolog.Nop(),
	}
}

// WithLogger returns a copy of the optimizer that reports diagnostics to l.
func (o *Optimizer) WithLogger(l zerolog.Logger) *Optimizer {
	cp := *o
	cp.Logger = l
	return &cp
}

// Optimize runs the whole pipeline for one cargo: tile every axis, combine
// the tilings, lay out and evaluate each combination, then pick the
// shortlist. Degenerate cargo yields an empty shortlist, never an error.
func (o *Optimizer) Optimize(cargo model.Dims) model.CrateResult {
	empty := model.CrateResult{
		Cargo:     cargo,
		Shortlist: model.Shortlist{Entries: []model.ShortlistEntry{}},
	}

	if !cargo.Valid() {
		msg := fmt.Sprintf("cargo dimensions must be positive, got %gx%gx%g", cargo.Width, cargo.Height, cargo.Depth)
		o.Logger.Warn().
			Float64("width", cargo.Width).
			Float64("height", cargo.Height).
			Float64("depth", cargo.Depth).
			Msg("invalid cargo dimensions, no designs generated")
		empty.Warnings = append(empty.Warnings, msg)
		return empty
	}

	xs := o.Tile(cargo.Width)
	ys := o.Tile(cargo.Height)
	zs := o.Tile(cargo.Depth)
	if len(xs) == 0 || len(ys) == 0 || len(zs) == 0 {
		o.Logger.Warn().Msg("an axis produced no tilings")
		empty.Warnings = append(empty.Warnings, "an axis produced no tilings")
		return empty
	}

	combos := Combine(xs, ys, zs)
	if len(combos) == 0 {
		o.Logger.Warn().Msg("no axis combination passed the medium board filter")
		empty.Warnings = append(empty.Warnings, "no axis combination passed the medium board filter")
		return empty
	}

	result := o.Evaluate(cargo, combos)
	o.Logger.Debug().
		Int("combinations", len(combos)).
		Int("shortlisted", result.Shortlist.Len()).
		Msg("crate optimization finished")
	return result
}
