package urock

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func blockFromSquare(id string, height float64, w, l float64) StackedBlock {
	return StackedBlock{ID: id, Height: height, Polygon: squareFootprint(w, l)}
}

func TestExtractUpwindFacadesExcludesLeeward(t *testing.T) {
	b := blockFromSquare("a", 10, 20, 20)
	facades := ExtractUpwindFacades([]StackedBlock{b})
	for _, f := range facades {
		if f.Start.Y == 0 && f.End.Y == 0 {
			t.Errorf("south (leeward) edge %+v should not be classified upwind", f)
		}
	}
}

func TestExtractUpwindFacadesIncludesNorthEdge(t *testing.T) {
	b := blockFromSquare("a", 10, 20, 20)
	facades := ExtractUpwindFacades([]StackedBlock{b})
	found := false
	for _, f := range facades {
		if f.Start.Y == 20 && f.End.Y == 20 {
			found = true
		}
	}
	if !found {
		t.Error("expected the north edge (facing the oncoming wind) to be classified upwind")
	}
}

func TestOutwardNormalMatchesHandComputation(t *testing.T) {
	// North edge of a CCW square, traversed (20,20)->(0,20): outward
	// normal must point north, away from the polygon interior.
	n := outwardNormal(geom.Point{X: 20, Y: 20}, geom.Point{X: 0, Y: 20}, true)
	if math.Abs(n.X) > 1e-9 || math.Abs(n.Y-1) > 1e-9 {
		t.Errorf("north edge outward normal = %+v, want (0, 1)", n)
	}
	// South edge, traversed (0,0)->(20,0): outward normal points south.
	s := outwardNormal(geom.Point{X: 0, Y: 0}, geom.Point{X: 20, Y: 0}, true)
	if math.Abs(s.X) > 1e-9 || math.Abs(s.Y+1) > 1e-9 {
		t.Errorf("south edge outward normal = %+v, want (0, -1)", s)
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", -7: "-7", 123: "123"}
	for in, want := range cases {
		if got := itoa(in); got != want {
			t.Errorf("itoa(%d) = %q, want %q", in, got, want)
		}
	}
}
