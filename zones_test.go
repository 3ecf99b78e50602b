package urock

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func TestMakeEllipseDegenerateReturnsNil(t *testing.T) {
	if poly := makeEllipse(geom.Point{}, 0, 5, 0, 0); poly != nil {
		t.Error("expected a nil polygon for a zero half-axis")
	}
}

func TestBuildDisplacementZonesProducesNonDegenerateEllipse(t *testing.T) {
	b := blockFromSquare("a", 20, 20, 20)
	facades := ExtractUpwindFacades([]StackedBlock{b})
	eg := EffectiveGeometryOf(squareFootprint(20, 20))
	lengths := map[string]ZoneLengths{"a": ZoneLengthsOf(eg, 20)}

	zones, warnings := BuildDisplacementZones(facades, lengths, 1.0)
	if len(zones) == 0 {
		t.Fatal("expected at least one displacement zone for a well-proportioned facade")
	}
	for _, w := range warnings {
		t.Errorf("unexpected warning: %v", w)
	}
	found := map[ZoneKind]bool{}
	var northFacadeID string
	for _, f := range facades {
		if f.Start.Y == 20 && f.End.Y == 20 {
			northFacadeID = f.ID
		}
	}
	for _, z := range zones {
		found[z.Kind] = true
		if z.Polygon == nil || len(z.Polygon) == 0 {
			t.Errorf("zone %v has an empty polygon", z.Kind)
		}
		// The north facade's displacement zone must extend further
		// north (away from the building, into the oncoming flow), not
		// south (back through the building).
		if z.FacadeID == northFacadeID {
			b := z.Polygon.Bounds()
			if b.Max.Y <= 20 {
				t.Errorf("zone %v bounds %+v should extend north of the facade at y=20", z.Kind, b)
			}
		}
	}
	if !found[ZoneDisplacement] || !found[ZoneDisplacementVortex] {
		t.Errorf("expected both displacement and displacement-vortex zones, got %v", found)
	}
}

func TestBuildDisplacementZonesWarnsOnThinEllipse(t *testing.T) {
	b := blockFromSquare("a", 20, 20, 20)
	facades := ExtractUpwindFacades([]StackedBlock{b})
	eg := EffectiveGeometryOf(squareFootprint(20, 20))
	lengths := map[string]ZoneLengths{"a": ZoneLengthsOf(eg, 20)}

	// A huge mesh size pushes minAxis above the computed along-wind
	// half-axis, so every ellipse should be discarded with a warning.
	_, warnings := BuildDisplacementZones(facades, lengths, 1000.0)
	if len(warnings) == 0 {
		t.Error("expected a degenerate-ellipse warning for an oversized mesh tolerance")
	}
}

func TestBuildCavityAndWakeZonesWakeTripleCavityLength(t *testing.T) {
	b := StackedBlock{ID: "a", Height: 20, Polygon: squareFootprint(20, 20)}
	eg := EffectiveGeometryOf(b.Polygon)
	zl := ZoneLengthsOf(eg, 20)
	lengths := map[string]ZoneLengths{"a": zl}

	zones, warnings := BuildCavityAndWakeZones([]StackedBlock{b}, lengths)
	for _, w := range warnings {
		t.Errorf("unexpected warning: %v", w)
	}
	var cavity, wake *Zone
	for i := range zones {
		switch zones[i].Kind {
		case ZoneCavity:
			cavity = &zones[i]
		case ZoneWake:
			wake = &zones[i]
		}
	}
	if cavity == nil || wake == nil {
		t.Fatalf("expected both a cavity and a wake zone, got %d zones", len(zones))
	}
	if cavity.Lengths.Lw != 3*cavity.Lengths.Lr {
		t.Errorf("Lw = %v, want 3*Lr = %v", cavity.Lengths.Lw, 3*cavity.Lengths.Lr)
	}
	// The block's footprint spans y in [0, 20]; cavity/wake must sit
	// downwind (south, y <= 0), not overlap the upwind interior.
	cb := cavity.Polygon.Bounds()
	if cb.Max.Y > 1e-9 {
		t.Errorf("cavity bounds %+v should not extend north of the block's south edge (y=0)", cb)
	}
}

func TestBuildRooftopZonesPerpendicularForFacingFacade(t *testing.T) {
	b := blockFromSquare("a", 20, 20, 20)
	facades := ExtractUpwindFacades([]StackedBlock{b})
	eg := EffectiveGeometryOf(squareFootprint(20, 20))
	lengths := map[string]ZoneLengths{"a": ZoneLengthsOf(eg, 20)}

	zones := BuildRooftopZones(facades, lengths)
	foundPerp := false
	for _, z := range zones {
		if z.Kind == ZoneRooftopPerpendicular {
			foundPerp = true
		}
		if z.Kind != ZoneRooftopPerpendicular && z.Kind != ZoneRooftopCorner {
			t.Errorf("unexpected zone kind %v from BuildRooftopZones", z.Kind)
		}
	}
	if !foundPerp {
		t.Error("expected the facade directly facing the wind to get a rooftop-perpendicular zone")
	}
}

func TestBuildVegetationZonesSplitsBuiltAndOpen(t *testing.T) {
	veg := Vegetation{ID: "v1", Polygon: squareFootprint(20, 20), CrownBase: 0, CrownTop: 10, Attenuation: 1}
	wake := Zone{Kind: ZoneWake, Polygon: squareFootprint(10, 10)}

	zones := BuildVegetationZones([]Vegetation{veg}, []Zone{wake})
	var built, open bool
	for _, vz := range zones {
		if vz.Built {
			built = true
		} else {
			open = true
		}
	}
	if !built || !open {
		t.Errorf("expected both a built and an open vegetation zone, got built=%v open=%v", built, open)
	}
}

func TestBuildVegetationZonesNoWakeIsFullyOpen(t *testing.T) {
	veg := Vegetation{ID: "v1", Polygon: squareFootprint(20, 20), CrownBase: 0, CrownTop: 10, Attenuation: 1}
	zones := BuildVegetationZones([]Vegetation{veg}, nil)
	if len(zones) != 1 || zones[0].Built {
		t.Errorf("expected exactly one fully-open vegetation zone with no wake overlap, got %+v", zones)
	}
}

func TestKeepBelowLineClipsToHalfPlane(t *testing.T) {
	square := squareFootprint(10, 10)
	kept := keepBelowLine(square, 5)
	if kept == nil {
		t.Fatal("expected a non-nil clipped polygon")
	}
	b := kept.Bounds()
	if b.Min.Y < 5-1e-9 {
		t.Errorf("clipped polygon extends below y=5: min.Y = %v", b.Min.Y)
	}
	if math.Abs(b.Max.Y-10) > 1e-6 {
		t.Errorf("clipped polygon max.Y = %v, want ~10", b.Max.Y)
	}
}
