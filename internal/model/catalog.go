package model

import (
	"fmt"
	"math"
	"strings"
)

// BoardLength is one of the three standard board lengths a crate axis can
// be tiled with.
type BoardLength int

const (
	BoardLarge  BoardLength = iota // Main panel length
	BoardMedium                    // Intermediate length, at most one crate axis may use it
	BoardSmall                     // Filler strip
)

func (l BoardLength) String() string {
	switch l {
	case BoardLarge:
		return "large"
	case BoardMedium:
		return "medium"
	case BoardSmall:
		return "small"
	default:
		return fmt.Sprintf("BoardLength(%d)", int(l))
	}
}

// sizeTolerance is used when matching board sizes against catalog entries.
const sizeTolerance = 1e-9

// BoardType is one catalog entry: a panel defined by its two perpendicular
// dimensions, larger first.
type BoardType struct {
	Key            string  `json:"key" yaml:"key"`
	SizeA          float64 `json:"size_a" yaml:"size_a"` // Larger dimension
	SizeB          float64 `json:"size_b" yaml:"size_b"` // Smaller dimension
	Price          float64 `json:"price" yaml:"price"`
	DefaultColor   string  `json:"default_color" yaml:"default_color"`
	HighlightColor string  `json:"highlight_color" yaml:"highlight_color"`
}

// Name returns the display name used on part lists, e.g. "Board 40x24".
func (b BoardType) Name() string {
	return strings.Replace(b.Key, "board_", "Board ", 1)
}

// Lengths holds the numeric size of each BoardLength.
type Lengths struct {
	Large  float64 `json:"large" yaml:"large"`
	Medium float64 `json:"medium" yaml:"medium"`
	Small  float64 `json:"small" yaml:"small"`
}

// Catalog is the immutable board configuration every stage of the
// optimizer is built from.
type Catalog struct {
	Lengths   Lengths     `json:"lengths" yaml:"lengths"`
	Gap       float64     `json:"gap" yaml:"gap"`             // Seam between neighbouring boards
	Thickness float64     `json:"thickness" yaml:"thickness"` // Panel thickness
	CubePrice float64     `json:"cube_price" yaml:"cube_price"`
	Boards    []BoardType `json:"boards" yaml:"boards"`
}

// DefaultCatalog returns the standard board set.
func DefaultCatalog() Catalog {
	return Catalog{
		Lengths:   Lengths{Large: 40, Medium: 24, Small: 5},
		Gap:       1.5,
		Thickness: 1.5,
		CubePrice: 0.45,
		Boards: []BoardType{
			{Key: "board_40x40", SizeA: 40, SizeB: 40, Price: 12.50, DefaultColor: "#C8A165", HighlightColor: "#E4572E"},
			{Key: "board_40x24", SizeA: 40, SizeB: 24, Price: 8.90, DefaultColor: "#B98C4E", HighlightColor: "#29335C"},
			{Key: "board_40x5", SizeA: 40, SizeB: 5, Price: 3.20, DefaultColor: "#A67B3D", HighlightColor: "#F3A712"},
			{Key: "board_24x5", SizeA: 24, SizeB: 5, Price: 2.10, DefaultColor: "#94702F", HighlightColor: "#669BBC"},
			{Key: "board_5x5", SizeA: 5, SizeB: 5, Price: 0.60, DefaultColor: "#7F5F24", HighlightColor: "#A8C686"},
		},
	}
}

// Size returns the numeric length of l.
func (c Catalog) Size(l BoardLength) float64 {
	switch l {
	case BoardLarge:
		return c.Lengths.Large
	case BoardMedium:
		return c.Lengths.Medium
	default:
		return c.Lengths.Small
	}
}

// Sizes converts a tiling into its numeric board lengths.
func (c Catalog) Sizes(t AxisTiling) []float64 {
	sizes := make([]float64, len(t))
	for i, l := range t {
		sizes[i] = c.Size(l)
	}
	return sizes
}

// Span returns the physical length of a tiling: board lengths plus the
// seams between them.
func (c Catalog) Span(t AxisTiling) float64 {
	if len(t) == 0 {
		return 0
	}
	var total float64
	for _, l := range t {
		total += c.Size(l)
	}
	return total + c.Gap*float64(len(t)-1)
}

// PackedLength returns the span minus the panel thickness at both ends.
// An empty tiling has a packed length of zero.
func (c Catalog) PackedLength(t AxisTiling) float64 {
	if len(t) == 0 {
		return 0
	}
	return c.Span(t) - 2*c.Thickness
}

// BoardTypeKey names the board spanning a and b, larger dimension first.
func BoardTypeKey(a, b float64) string {
	if a < b {
		a, b = b, a
	}
	return fmt.Sprintf("board_%gx%g", a, b)
}

// TypeByKey looks up a board type by its key.
func (c Catalog) TypeByKey(key string) (BoardType, bool) {
	for _, b := range c.Boards {
		if b.Key == key {
			return b, true
		}
	}
	return BoardType{}, false
}

// TypeFor looks up the board type spanning a and b in either order.
func (c Catalog) TypeFor(a, b float64) (BoardType, bool) {
	if a < b {
		a, b = b, a
	}
	for _, bt := range c.Boards {
		if math.Abs(bt.SizeA-a) < sizeTolerance && math.Abs(bt.SizeB-b) < sizeTolerance {
			return bt, true
		}
	}
	return BoardType{}, false
}

// Price returns the unit price of a board type key, or zero if unknown.
func (c Catalog) Price(key string) float64 {
	bt, ok := c.TypeByKey(key)
	if !ok {
		return 0
	}
	return bt.Price
}

// RequiredPairs lists the size pairings the tiler can produce on a face.
// Medium never meets medium because only one crate axis may carry it.
func (c Catalog) RequiredPairs() [][2]float64 {
	l, m, s := c.Lengths.Large, c.Lengths.Medium, c.Lengths.Small
	return [][2]float64{{l, l}, {l, m}, {l, s}, {m, s}, {s, s}}
}

// MissingPairs returns the type keys of producible pairings the catalog has
// no entry for.
func (c Catalog) MissingPairs() []string {
	var missing []string
	for _, p := range c.RequiredPairs() {
		if _, ok := c.TypeFor(p[0], p[1]); !ok {
			missing = append(missing, BoardTypeKey(p[0], p[1]))
		}
	}
	return missing
}

// Validate reports every structural problem with the catalog.
func (c Catalog) Validate() []string {
	var errs []string
	if !(c.Lengths.Large > c.Lengths.Medium && c.Lengths.Medium > c.Lengths.Small && c.Lengths.Small > 0) {
		errs = append(errs, fmt.Sprintf("lengths must be strictly decreasing and positive (large=%g medium=%g small=%g)",
			c.Lengths.Large, c.Lengths.Medium, c.Lengths.Small))
	}
	if c.Gap < 0 {
		errs = append(errs, "gap must not be negative")
	}
	if c.Thickness < 0 {
		errs = append(errs, "thickness must not be negative")
	}
	if c.CubePrice < 0 {
		errs = append(errs, "cube_price must not be negative")
	}
	seen := make(map[string]bool)
	for i, b := range c.Boards {
		if b.Key == "" {
			errs = append(errs, fmt.Sprintf("boards[%d].key is required", i))
		} else if seen[b.Key] {
			errs = append(errs, fmt.Sprintf("boards[%d].key %q is duplicated", i, b.Key))
		}
		seen[b.Key] = true
		if b.SizeA < b.SizeB {
			errs = append(errs, fmt.Sprintf("boards[%d] must list the larger size first", i))
		}
		if b.Price <= 0 {
			errs = append(errs, fmt.Sprintf("boards[%d].price must be positive", i))
		}
	}
	for _, key := range c.MissingPairs() {
		errs = append(errs, fmt.Sprintf("no board type for producible pairing %s", key))
	}
	return errs
}
