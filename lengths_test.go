package urock

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func squareFootprint(w, l float64) geom.Polygon {
	return geom.Polygon{{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: l}, {X: 0, Y: l}, {X: 0, Y: 0},
	}}
}

func TestEffectiveGeometryOfSquare(t *testing.T) {
	p := squareFootprint(20, 20)
	eg := EffectiveGeometryOf(p)
	if math.Abs(eg.Width-20) > 1e-9 || math.Abs(eg.Length-20) > 1e-9 {
		t.Fatalf("got %+v, want width=length=20", eg)
	}
}

func TestZoneLengthsCavity(t *testing.T) {
	// The cavity length Lr equals the closed-form value for the
	// block's own effective geometry, and the wake length Lw is 3*Lr.
	// Computed directly from the formula rather than a fixed literal so
	// the test tracks the contract, not one worked example.
	eg := EffectiveGeometryOf(squareFootprint(20, 20))
	zl := ZoneLengthsOf(eg, 20)
	want := 1.8 * eg.Width / (math.Pow(eg.Length/20, 0.3) * (1 + 0.24*eg.Width/20))
	if math.Abs(zl.Lr-want) > 1e-9 {
		t.Errorf("Lr = %.6f, want %.6f", zl.Lr, want)
	}
	if zl.Lw != 3*zl.Lr {
		t.Errorf("Lw = %.6f, want 3*Lr = %.6f", zl.Lw, 3*zl.Lr)
	}
}

func TestZoneLengthsRooftopPerpendicular(t *testing.T) {
	eg := EffectiveGeometryOf(squareFootprint(20, 20))
	zl := ZoneLengthsOf(eg, 20)
	minWH, maxWH := eg.Width, 20.0
	blend := 0.67*minWH + 0.33*maxWH
	if math.Abs(zl.Hcm-0.22*blend) > 1e-9 {
		t.Errorf("Hcm = %.6f, want %.6f", zl.Hcm, 0.22*blend)
	}
	if math.Abs(zl.Lc-0.9*blend) > 1e-9 {
		t.Errorf("Lc = %.6f, want %.6f", zl.Lc, 0.9*blend)
	}
}

func TestZoneLengthsDegenerate(t *testing.T) {
	zl := ZoneLengthsOf(EffectiveGeometry{}, 0)
	if zl != (ZoneLengths{}) {
		t.Errorf("expected zero-value ZoneLengths for degenerate input, got %+v", zl)
	}
}
