package urock

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestNewGridMarksGroundAndBlockSolid(t *testing.T) {
	b := blockFromSquare("a", 10, 10, 10)
	cfg := GridConfig{MeshSize: 2, DZ: 2, VerticalExtend: 20, CrossWindExtend: 4, AlongWindExtend: 4}
	g := NewGrid(nil, []StackedBlock{b}, cfg)

	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			if !g.Solid.Get(i, j, 0) {
				t.Fatalf("ground layer (%d,%d,0) should always be solid", i, j)
			}
		}
	}

	i, j, ok := g.NearestColumn(geom.Point{X: 5, Y: 5}, 1)
	if !ok {
		t.Fatal("expected a nearest column inside the grid")
	}
	foundSolidAboveGround := false
	for k := 1; k < g.NZ; k++ {
		if g.Solid.Get(i, j, k) {
			foundSolidAboveGround = true
		}
	}
	if !foundSolidAboveGround {
		t.Error("column through the block interior should have solid cells above ground")
	}
}

func TestAssignPointsToZonesUpwindVsDownwindWall(t *testing.T) {
	cfg := GridConfig{MeshSize: 2, DZ: 2, VerticalExtend: 10}
	g := &Grid{Cfg: cfg, OriginX: 0, OriginY: 0, NX: 10, NY: 10, NZ: 5}

	upwind := Zone{Kind: ZoneDisplacement, Polygon: squareFootprint(4, 4)}
	downwind := Zone{Kind: ZoneCavity, Polygon: squareFootprint(4, 4)}
	zcps := AssignPointsToZones(g, []Zone{upwind, downwind})
	if len(zcps) == 0 {
		t.Fatal("expected zone-column points for zones overlapping the grid")
	}

	var upwindWall, downwindWall float64
	for _, zcp := range zcps {
		if zcp.Zone.Kind == ZoneDisplacement {
			upwindWall = zcp.YWall
		} else {
			downwindWall = zcp.YWall
		}
	}
	if upwindWall >= downwindWall {
		t.Errorf("upwind wall (%v, at min-y) should be less than downwind wall (%v, at max-y)", upwindWall, downwindWall)
	}
}

func TestColumnIntersectionFindsExtent(t *testing.T) {
	p := squareFootprint(10, 10)
	yMin, yMax, found := columnIntersection(p, 5, -5, 15)
	if !found {
		t.Fatal("expected the vertical line x=5 to intersect the square")
	}
	if yMin > 0.2 || yMax < 9.8 {
		t.Errorf("intersection = [%v, %v], want approximately [0, 10]", yMin, yMax)
	}
}
