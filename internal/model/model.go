package model

import (
	"math"
	"strings"
)

// Vec3 is a 3D coordinate or a set of Euler angles (radians, XYZ order).
type Vec3 [3]float64

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Dims are the three extents of a box, in catalog units.
type Dims struct {
	Width  float64 `json:"width"`  // X
	Height float64 `json:"height"` // Y
	Depth  float64 `json:"depth"`  // Z
}

// Volume returns width * height * depth.
func (d Dims) Volume() float64 {
	return d.Width * d.Height * d.Depth
}

// Valid reports whether every dimension is a positive finite number.
func (d Dims) Valid() bool {
	for _, v := range []float64{d.Width, d.Height, d.Depth} {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Cargo is a named set of inner dimensions to build a crate around.
type Cargo struct {
	Label string `json:"label"`
	Dims  Dims   `json:"dims"`
}

// AxisTiling is the ordered sequence of boards covering one crate axis.
type AxisTiling []BoardLength

// Contains reports whether the tiling uses at least one board of length l.
func (t AxisTiling) Contains(l BoardLength) bool {
	for _, b := range t {
		if b == l {
			return true
		}
	}
	return false
}

// Equal reports whether both tilings hold the same board sequence.
func (t AxisTiling) Equal(o AxisTiling) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

// AxisCombination picks one tiling per crate axis.
type AxisCombination struct {
	X AxisTiling `json:"x"`
	Y AxisTiling `json:"y"`
	Z AxisTiling `json:"z"`
}

// MediumAxes counts the axes whose tiling carries a medium board.
func (c AxisCombination) MediumAxes() int {
	n := 0
	for _, t := range []AxisTiling{c.X, c.Y, c.Z} {
		if t.Contains(BoardMedium) {
			n++
		}
	}
	return n
}

// BoardSizes is the numeric form of an AxisCombination.
type BoardSizes struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
}

// BoardPlacement is one board on a face, relative to the face centre.
type BoardPlacement struct {
	TypeKey  string  `json:"type"`
	Position Vec3    `json:"position"`
	Width    float64 `json:"width"`  // Larger dimension
	Height   float64 `json:"height"` // Smaller dimension
	Rotation Vec3    `json:"rotation"`
}

// Rotated reports whether the board was turned 90° about the face normal.
func (b BoardPlacement) Rotated() bool {
	return b.Rotation[2] != 0
}

// Face names one side of the crate.
type Face string

const (
	FaceFront  Face = "front"
	FaceBack   Face = "back"
	FaceLeft   Face = "left"
	FaceRight  Face = "right"
	FaceTop    Face = "top"
	FaceBottom Face = "bottom"
)

// AllFaces lists the faces in layout order.
var AllFaces = []Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom}

// FaceLayout is the board grid of one face plus the face's own transform.
type FaceLayout struct {
	Boards   []BoardPlacement `json:"boards"`
	Position Vec3             `json:"position"`
	Rotation Vec3             `json:"rotation"`
}

// Cube is a corner or edge reinforcement block.
type Cube struct {
	Position Vec3 `json:"position"`
	Rotation Vec3 `json:"rotation"`
}

// CubeLayout holds all reinforcement blocks of a crate.
type CubeLayout struct {
	Corners []Cube `json:"corner_cubes"`
	Edges   []Cube `json:"edge_cubes"`
}

// Count returns the total number of cubes.
func (c CubeLayout) Count() int {
	return len(c.Corners) + len(c.Edges)
}

// CrateLayout is the complete 3D arrangement produced for one combination.
type CrateLayout struct {
	Faces    map[Face]FaceLayout `json:"faces"`
	Cubes    CubeLayout          `json:"cubes"`
	Warnings []string            `json:"warnings,omitempty"`
}

// CrateDesign is one fully evaluated crate candidate.
type CrateDesign struct {
	ID              string              `json:"id"`
	Tilings         AxisCombination     `json:"tilings"`
	BoardSizes      BoardSizes          `json:"board_sizes"`
	Faces           map[Face]FaceLayout `json:"faces"`
	Cubes           CubeLayout          `json:"cubes"`
	BoardCount      int                 `json:"board_count"`
	CubeCount       int                 `json:"cube_count"`
	TotalPrice      float64             `json:"total_price"`
	BoardTypeCounts map[string]int      `json:"board_type_counts"`
	InnerVolume     float64             `json:"inner_volume"`    // Cargo
	InternalVolume  float64             `json:"internal_volume"` // Usable space inside the panels
	OuterVolume     float64             `json:"outer_volume"`
	OuterDims       Dims                `json:"outer_dims"`
	InternalDims    Dims                `json:"internal_dims"`

	RankPrice  int `json:"rank_price"`
	RankVolume int `json:"rank_volume"`
	RankBoards int `json:"rank_boards"`
	TotalRank  int `json:"total_rank"` // RankPrice + RankVolume + RankBoards
	RankTotal  int `json:"rank_total"` // Rank of TotalRank
}

// DeadSpace returns the usable volume the cargo does not fill.
func (d CrateDesign) DeadSpace() float64 {
	return d.InternalVolume - d.InnerVolume
}

// Role is one of the best-of positions on the shortlist.
type Role int

const (
	RoleBalanced Role = iota // Best total rank
	RolePrice                // Cheapest
	RoleVolume               // Least dead space
	RoleBoards               // Fewest boards
)

// AllRoles lists the roles in assignment order.
var AllRoles = []Role{RoleBalanced, RolePrice, RoleVolume, RoleBoards}

// Label returns the display label earned through the role.
func (r Role) Label() string {
	switch r {
	case RolePrice:
		return "Price"
	case RoleVolume:
		return "Volume"
	case RoleBoards:
		return "Boards"
	default:
		return "Balanced"
	}
}

func (r Role) String() string {
	return r.Label()
}

// MarshalText encodes the role by its label.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(r.Label())), nil
}

// Satisfies reports whether the design currently qualifies for r.
func (r Role) Satisfies(d CrateDesign) bool {
	switch r {
	case RoleBalanced:
		return d.RankTotal == 1
	case RolePrice:
		return d.RankPrice == 1
	case RoleVolume:
		return d.RankVolume == 1
	case RoleBoards:
		return d.RankBoards == 1
	}
	return false
}

// ShortlistEntry is a selected design together with what it won.
type ShortlistEntry struct {
	Design CrateDesign `json:"design"`
	Roles  []Role      `json:"roles"`
	Labels []string    `json:"labels"`
}

// Shortlist is the curated set of designs, in selection order. Every design
// ID appears at most once.
type Shortlist struct {
	Entries []ShortlistEntry `json:"entries"`
}

// Get returns the entry for a design ID.
func (s Shortlist) Get(id string) (ShortlistEntry, bool) {
	for _, e := range s.Entries {
		if e.Design.ID == id {
			return e, true
		}
	}
	return ShortlistEntry{}, false
}

// Len returns the number of distinct designs.
func (s Shortlist) Len() int {
	return len(s.Entries)
}

// ForRole returns the entry that holds r.
func (s Shortlist) ForRole(r Role) (ShortlistEntry, bool) {
	for _, e := range s.Entries {
		for _, er := range e.Roles {
			if er == r {
				return e, true
			}
		}
	}
	return ShortlistEntry{}, false
}

// CrateResult holds the full outcome of one optimizer run.
type CrateResult struct {
	Cargo     Dims          `json:"cargo"`
	Designs   []CrateDesign `json:"designs"`
	Shortlist Shortlist     `json:"shortlist"`
	Warnings  []string      `json:"warnings,omitempty"`
}

// Settings holds the numeric knobs of the optimizer.
type Settings struct {
	MaxFillers  int     `json:"max_fillers" yaml:"max_fillers"` // Small boards appended per filler strategy
	Epsilon     float64 `json:"epsilon" yaml:"epsilon"`         // Tolerance on length comparisons
	VolumeScale float64 `json:"volume_scale" yaml:"volume_scale"`
}

func DefaultSettings() Settings {
	return Settings{
		MaxFillers:  7,
		Epsilon:     1e-6,
		VolumeScale: 1e-6,
	}
}
