package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// faceSpec describes how the two spanning axes of a face map onto its grid.
type faceSpec struct {
	face     model.Face
	sizesA   []float64
	sizesB   []float64
	position model.Vec3
	rotation model.Vec3
}

// Layout computes the board grid of all six faces and the reinforcement
// cubes for one axis combination. Boards whose size pairing has no catalog
// entry are left out and reported in Warnings.
func (o *Optimizer) Layout(combo model.AxisCombination) model.CrateLayout {
	xs := o.Catalog.Sizes(combo.X)
	ys := o.Catalog.Sizes(combo.Y)
	zs := o.Catalog.Sizes(combo.Z)

	halfW := o.span(xs) / 2
	halfH := o.span(ys) / 2
	halfD := o.span(zs) / 2

	// Back, right and top run one axis in reverse so every face is read
	// from the outside.
	specs := []faceSpec{
		{model.FaceFront, xs, ys, model.Vec3{0, 0, halfD}, model.Vec3{0, 0, 0}},
		{model.FaceBack, reversed(xs), ys, model.Vec3{0, 0, -halfD}, model.Vec3{0, math.Pi, 0}},
		{model.FaceLeft, zs, ys, model.Vec3{-halfW, 0, 0}, model.Vec3{0, -math.Pi / 2, 0}},
		{model.FaceRight, reversed(zs), ys, model.Vec3{halfW, 0, 0}, model.Vec3{0, math.Pi / 2, 0}},
		{model.FaceTop, xs, reversed(zs), model.Vec3{0, halfH, 0}, model.Vec3{-math.Pi / 2, 0, 0}},
		{model.FaceBottom, xs, zs, model.Vec3{0, -halfH, 0}, model.Vec3{math.Pi / 2, 0, 0}},
	}

	layout := model.CrateLayout{Faces: make(map[model.Face]model.FaceLayout, len(specs))}
	for _, s := range specs {
		boards, warnings := o.layoutBoards(s.face, s.sizesA, s.sizesB)
		layout.Faces[s.face] = model.FaceLayout{
			Boards:   boards,
			Position: s.position,
			Rotation: s.rotation,
		}
		layout.Warnings = append(layout.Warnings, warnings...)
	}

	layout.Cubes = o.layoutCubes(halfW, halfH, halfD, xs, ys, zs)
	return layout
}

// layoutBoards places one board per (i, j) cell of the grid spanned by
// sizesA and sizesB, centred on the face. A cell whose first dimension is
// the shorter one is stored larger-first and turned 90° about the normal.
func (o *Optimizer) layoutBoards(face model.Face, sizesA, sizesB []float64) ([]model.BoardPlacement, []string) {
	var boards []model.BoardPlacement
	var warnings []string

	totalA := o.span(sizesA)
	totalB := o.span(sizesB)

	offsetA := 0.0
	for _, a := range sizesA {
		offsetB := 0.0
		for _, b := range sizesB {
			width, height := a, b
			rotation := model.Vec3{}
			if a < b {
				width, height = b, a
				rotation = model.Vec3{0, 0, math.Pi / 2}
			}

			bt, ok := o.Catalog.TypeFor(width, height)
			if !ok {
				key := model.BoardTypeKey(width, height)
				o.Logger.Warn().
					Str("face", string(face)).
					Str("type_key", key).
					Msg("board type not in catalog, skipping placement")
				warnings = append(warnings, fmt.Sprintf("%s: board type %s not in catalog", face, key))
				offsetB += b + o.Catalog.Gap
				continue
			}

			boards = append(boards, model.BoardPlacement{
				TypeKey: bt.Key,
				Position: model.Vec3{
					offsetA + a/2 - totalA/2,
					offsetB + b/2 - totalB/2,
					0,
				},
				Width:    width,
				Height:   height,
				Rotation: rotation,
			})
			offsetB += b + o.Catalog.Gap
		}
		offsetA += a + o.Catalog.Gap
	}
	return boards, warnings
}

// Corner order: front face (z+) anticlockwise from bottom-left, then the
// back face (z-) in the same order.
var cornerRotations = [8]model.Vec3{
	{0, -math.Pi / 2, 0},
	{0, math.Pi / 2, 0},
	{-math.Pi / 2, 0, 0},
	{-math.Pi / 2, 0, 0},
	{0, -math.Pi / 2, 0},
	{0, math.Pi / 2, 0},
	{-math.Pi / 2, 0, 0},
	{-math.Pi / 2, 0, 0},
}

// edgeDef joins two corners; sizes run from start to end.
type edgeDef struct {
	start, end int
	axis       int // 0 = x, 1 = y, 2 = z
}

var edgeDefs = []edgeDef{
	{0, 1, 0}, {3, 2, 0}, {4, 5, 0}, {7, 6, 0},
	{0, 3, 1}, {1, 2, 1}, {4, 7, 1}, {5, 6, 1},
	{4, 0, 2}, {5, 1, 2}, {6, 2, 2}, {7, 3, 2},
}

// layoutCubes places a cube on each of the 8 corners, pushed outward by
// half a panel thickness, and one on every seam along the 12 edges.
func (o *Optimizer) layoutCubes(halfW, halfH, halfD float64, xs, ys, zs []float64) model.CubeLayout {
	t := o.Catalog.Thickness / 2
	w, h, d := halfW+t, halfH+t, halfD+t

	corners := [8]model.Vec3{
		{-w, -h, d}, {w, -h, d}, {w, h, d}, {-w, h, d},
		{-w, -h, -d}, {w, -h, -d}, {w, h, -d}, {-w, h, -d},
	}

	var layout model.CubeLayout
	for i, c := range corners {
		layout.Corners = append(layout.Corners, model.Cube{Position: c, Rotation: cornerRotations[i]})
	}

	axisSizes := [3][]float64{xs, ys, zs}
	for _, e := range edgeDefs {
		layout.Edges = append(layout.Edges, o.seamCubes(corners[e.start], corners[e.end], axisSizes[e.axis])...)
	}
	return layout
}

// seamCubes walks an edge from start to end and drops a cube in the middle
// of every gap between consecutive boards.
func (o *Optimizer) seamCubes(start, end model.Vec3, sizes []float64) []model.Cube {
	if len(sizes) <= 1 {
		return nil
	}
	vec := end.Sub(start)
	length := vec.Length()
	if length == 0 {
		return nil
	}
	dir := vec.Scale(1 / length)

	var cubes []model.Cube
	along := o.Catalog.Thickness / 2
	for i := 0; i < len(sizes)-1; i++ {
		along += sizes[i]
		pos := start.Add(dir.Scale(along + o.Catalog.Gap/2))
		cubes = append(cubes, model.Cube{Position: pos, Rotation: seamRotation(pos)})
		along += o.Catalog.Gap
	}
	return cubes
}

// seamRotation orients an edge cube by the world axis with the largest
// absolute coordinate; ties go to the earlier axis.
func seamRotation(pos model.Vec3) model.Vec3 {
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(pos[i]) > math.Abs(pos[axis]) {
			axis = i
		}
	}
	switch axis {
	case 0:
		if pos[0] > 0 {
			return model.Vec3{0, math.Pi / 2, 0}
		}
		return model.Vec3{0, -math.Pi / 2, 0}
	case 1:
		if pos[1] > 0 {
			return model.Vec3{-math.Pi / 2, 0, 0}
		}
		return model.Vec3{math.Pi / 2, 0, 0}
	default:
		if pos[2] > 0 {
			return model.Vec3{0, 0, 0}
		}
		return model.Vec3{0, math.Pi, 0}
	}
}

// span is the physical length of a row of boards including seams.
func (o *Optimizer) span(sizes []float64) float64 {
	if len(sizes) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	return total + o.Catalog.Gap*float64(len(sizes)-1)
}

func reversed(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	for i, s := range sizes {
		out[len(sizes)-1-i] = s
	}
	return out
}
