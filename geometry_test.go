package urock

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func TestRotatePointPreservesDistance(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}
	p := geom.Point{X: 10, Y: 0}
	rotated := rotatePoint(p, center, math.Pi/2)
	dist := math.Hypot(rotated.X-center.X, rotated.Y-center.Y)
	if math.Abs(dist-10) > 1e-9 {
		t.Errorf("distance from center = %v, want 10", dist)
	}
	if math.Abs(rotated.X) > 1e-9 || math.Abs(rotated.Y-10) > 1e-9 {
		t.Errorf("rotated point = %+v, want (0, 10)", rotated)
	}
}

func TestRotateUnrotateRoundTrip(t *testing.T) {
	center := geom.Point{X: 5, Y: 5}
	p := geom.Point{X: 12, Y: -3}
	angle := 0.7
	rotated := rotatePoint(p, center, angle)
	back := UnrotatePoint(rotated, center, angle)
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}
}

func TestBuildStackedBlocksSingleObstacle(t *testing.T) {
	o := Obstacle{ID: "a", Height: 20, Base: 0, Polygon: squareFootprint(20, 20)}
	blocks := BuildStackedBlocks([]Obstacle{o}, DefaultGeometryConfig())
	if len(blocks) != 1 {
		t.Fatalf("got %d stacked blocks, want 1", len(blocks))
	}
	if blocks[0].Base != 0 {
		t.Errorf("base = %v, want 0 for a single ground-based obstacle", blocks[0].Base)
	}
	if math.Abs(blocks[0].Height-20) > 1e-9 {
		t.Errorf("height = %v, want 20", blocks[0].Height)
	}
}

func TestBuildStackedBlocksTwoHeights(t *testing.T) {
	tall := Obstacle{ID: "tall", Height: 20, Polygon: squareFootprint(10, 10)}
	short := Obstacle{ID: "short", Height: 10, Polygon: geom.Polygon{{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 0},
	}}}
	blocks := BuildStackedBlocks([]Obstacle{tall, short}, DefaultGeometryConfig())
	if len(blocks) != 2 {
		t.Fatalf("got %d stacked blocks, want 2 (one per distinct height)", len(blocks))
	}
}
