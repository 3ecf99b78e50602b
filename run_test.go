package urock

import (
	"context"
	"testing"

	"github.com/ctessum/geom"
)

func TestModelValidateRejectsEmptyInput(t *testing.T) {
	m := NewModel(nil, nil)
	m.Grid = GridConfig{MeshSize: 2, DZ: 2, VerticalExtend: 40}
	_, err := m.Run(context.Background(), WindDirection{ZRef: 10, VRef: 2, DirectionDeg: 270})
	if err == nil {
		t.Fatal("expected a ConfigurationError for an empty building and vegetation set")
	}
}

func TestModelValidateRejectsBadMesh(t *testing.T) {
	o := Obstacle{ID: "a", Height: 20, Polygon: squareFootprint(20, 20)}
	m := NewModel([]Obstacle{o}, nil)
	m.Grid = GridConfig{MeshSize: 0, DZ: 2, VerticalExtend: 40}
	_, err := m.Run(context.Background(), WindDirection{ZRef: 10, VRef: 2, DirectionDeg: 270})
	if err == nil {
		t.Fatal("expected a ConfigurationError for a non-positive mesh size")
	}
}

func TestRunDirectionsRequiresAtLeastOne(t *testing.T) {
	o := Obstacle{ID: "a", Height: 20, Polygon: squareFootprint(20, 20)}
	m := NewModel([]Obstacle{o}, nil)
	_, err := m.RunDirections(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error for an empty direction batch")
	}
}

func TestRunDirectionsSharesRotationCenter(t *testing.T) {
	o := Obstacle{ID: "a", Height: 20, Polygon: squareFootprint(20, 20)}
	m := NewModel([]Obstacle{o}, nil)
	m.Grid = GridConfig{MeshSize: 5, DZ: 5, VerticalExtend: 40, CrossWindExtend: 10, AlongWindExtend: 10}
	m.Solver.MaxIterations = 5

	dirs := []WindDirection{{DirectionDeg: 270, ZRef: 10, VRef: 2}, {DirectionDeg: 180, ZRef: 10, VRef: 2}}
	_, err := m.RunDirections(context.Background(), dirs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Geometry.RotationCenter == nil {
		t.Fatal("expected RunDirections to set a shared rotation center")
	}
	if *m.Geometry.RotationCenter == (geom.Point{}) {
		t.Error("rotation center should be derived from the obstacle envelope, not left zero-valued")
	}
}
