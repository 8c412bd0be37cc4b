package model

import (
	"math"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := DefaultCatalog()
	if errs := c.Validate(); len(errs) != 0 {
		t.Fatalf("default catalog should validate, got %v", errs)
	}
	if len(c.MissingPairs()) != 0 {
		t.Errorf("default catalog should cover every producible pairing, missing %v", c.MissingPairs())
	}
}

func TestCatalogValidateReportsProblems(t *testing.T) {
	c := DefaultCatalog()
	c.Lengths.Medium = 50
	c.Gap = -1
	c.Boards = append(c.Boards, BoardType{Key: "board_40x40", SizeA: 40, SizeB: 40, Price: 1})

	errs := c.Validate()
	if len(errs) < 3 {
		t.Fatalf("expected at least 3 problems, got %v", errs)
	}
}

func TestCatalogValidateMissingPairing(t *testing.T) {
	c := DefaultCatalog()
	c.Boards = c.Boards[:len(c.Boards)-1] // drop board_5x5

	missing := c.MissingPairs()
	if len(missing) != 1 || missing[0] != "board_5x5" {
		t.Errorf("expected board_5x5 missing, got %v", missing)
	}
}

func TestBoardTypeKeyOrdersLargerFirst(t *testing.T) {
	tests := []struct {
		a, b float64
		want string
	}{
		{40, 24, "board_40x24"},
		{24, 40, "board_40x24"},
		{5, 5, "board_5x5"},
		{2.5, 40, "board_40x2.5"},
	}
	for _, tt := range tests {
		if got := BoardTypeKey(tt.a, tt.b); got != tt.want {
			t.Errorf("BoardTypeKey(%g, %g) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTypeForIsSymmetric(t *testing.T) {
	c := DefaultCatalog()
	ab, ok1 := c.TypeFor(40, 5)
	ba, ok2 := c.TypeFor(5, 40)
	if !ok1 || !ok2 {
		t.Fatal("expected board_40x5 in both orders")
	}
	if ab.Key != ba.Key {
		t.Errorf("expected same key, got %s and %s", ab.Key, ba.Key)
	}
	if _, ok := c.TypeFor(24, 24); ok {
		t.Error("board_24x24 is not in the default catalog")
	}
}

func TestSpanAndPackedLength(t *testing.T) {
	c := DefaultCatalog()
	tiling := AxisTiling{BoardLarge, BoardLarge, BoardSmall}

	if got := c.Span(tiling); got != 88 {
		t.Errorf("expected span 88, got %g", got)
	}
	if got := c.PackedLength(tiling); got != 85 {
		t.Errorf("expected packed length 85, got %g", got)
	}
	if got := c.PackedLength(nil); got != 0 {
		t.Errorf("expected empty tiling to pack to 0, got %g", got)
	}
}

func TestMediumAxes(t *testing.T) {
	combo := AxisCombination{
		X: AxisTiling{BoardLarge, BoardMedium},
		Y: AxisTiling{BoardLarge},
		Z: AxisTiling{BoardLarge, BoardMedium, BoardSmall},
	}
	if got := combo.MediumAxes(); got != 2 {
		t.Errorf("expected 2 medium axes, got %d", got)
	}
}

func TestDimsValid(t *testing.T) {
	tests := []struct {
		name string
		dims Dims
		want bool
	}{
		{"positive", Dims{40, 40, 40}, true},
		{"zero", Dims{0, 40, 40}, false},
		{"negative", Dims{40, -1, 40}, false},
		{"nan", Dims{40, 40, math.NaN()}, false},
		{"inf", Dims{math.Inf(1), 40, 40}, false},
	}
	for _, tt := range tests {
		if got := tt.dims.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRoleSatisfies(t *testing.T) {
	d := CrateDesign{RankPrice: 1, RankVolume: 2, RankBoards: 1, RankTotal: 3}
	want := map[Role]bool{RoleBalanced: false, RolePrice: true, RoleVolume: false, RoleBoards: true}
	for role, expected := range want {
		if got := role.Satisfies(d); got != expected {
			t.Errorf("%s.Satisfies = %v, want %v", role, got, expected)
		}
	}
}

func TestShortlistLookups(t *testing.T) {
	s := Shortlist{Entries: []ShortlistEntry{
		{Design: CrateDesign{ID: "candidate-0"}, Roles: []Role{RolePrice, RoleBoards}},
		{Design: CrateDesign{ID: "candidate-3"}, Roles: []Role{RoleBalanced, RoleVolume}},
	}}

	if _, ok := s.Get("candidate-3"); !ok {
		t.Error("expected candidate-3 to be found")
	}
	if _, ok := s.Get("candidate-9"); ok {
		t.Error("did not expect candidate-9")
	}
	e, ok := s.ForRole(RoleBoards)
	if !ok || e.Design.ID != "candidate-0" {
		t.Errorf("expected candidate-0 for Boards, got %+v", e)
	}
}

func TestDeadSpace(t *testing.T) {
	d := CrateDesign{InternalVolume: 0.08, InnerVolume: 0.064}
	if math.Abs(d.DeadSpace()-0.016) > 1e-12 {
		t.Errorf("expected dead space 0.016, got %g", d.DeadSpace())
	}
}
