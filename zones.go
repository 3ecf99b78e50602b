package urock

import (
	"math"

	"github.com/ctessum/geom"
)

// ellipsePoints is the discretization used for every ellipse-based zone
// (displacement, displacement-vortex, cavity, wake), matching the
// reference implementation's ST_MakeEllipse-equivalent fidelity.
const ellipsePoints = 100

// minAlongWindHalfAxisRatio sets the minimum along-wind half-axis of a
// displacement/displacement-vortex ellipse, expressed as a fraction of
// mesh_size; ellipses thinner than this are discarded as degenerate.
const minAlongWindHalfAxisRatio = 0.25

// rooftopPerpendicularThreshold is the default angular tolerance (from
// 90 degrees) within which an upwind facade gets a rooftop-perpendicular
// zone instead of a rooftop-corner zone.
const rooftopPerpendicularThreshold = 15 * math.Pi / 180

// rooftop corner angular band, measured from 90 degrees.
const (
	cornerMinAngle = 20 * math.Pi / 180
	cornerMaxAngle = 70 * math.Pi / 180
)

// makeEllipse returns a closed polygon approximating an ellipse with
// the given half-axes, centered at center and rotated by rotation
// radians, discretized into ellipsePoints vertices. half selects a half
// ellipse relative to the unrotated along-wind axis: half > 0 keeps the
// local +y half (t in [0, π]), half < 0 keeps the local -y half (t in
// (π, 2π]), and half == 0 keeps the full ellipse. A half ellipse's ring
// is closed along the cutting diameter.
func makeEllipse(center geom.Point, crossHalf, alongHalf, rotation float64, half int) geom.Polygon {
	if crossHalf <= 0 || alongHalf <= 0 {
		return nil
	}
	var ring []geom.Point
	n := ellipsePoints
	for i := 0; i <= n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		if half > 0 && t > math.Pi {
			continue
		}
		if half < 0 && t <= math.Pi {
			continue
		}
		x := crossHalf * math.Cos(t)
		y := alongHalf * math.Sin(t)
		sin, cos := math.Sincos(rotation)
		ring = append(ring, geom.Point{
			X: center.X + x*cos - y*sin,
			Y: center.Y + x*sin + y*cos,
		})
	}
	if half != 0 && len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	if len(ring) < 4 {
		return nil
	}
	return geom.Polygon{ring}
}

// BuildDisplacementZones constructs the displacement and
// displacement-vortex ellipses for each upwind facade, per §4.3.
func BuildDisplacementZones(facades []Facade, lengths map[string]ZoneLengths, meshSize float64) ([]Zone, []error) {
	var zones []Zone
	var warnings []error
	minAxis := minAlongWindHalfAxisRatio * meshSize

	for i := range facades {
		f := &facades[i]
		zl, ok := lengths[f.StackedBlockID]
		if !ok {
			continue
		}
		half := f.Length() / 2
		crossHalf := half
		sin2 := math.Sin(f.Theta) * math.Sin(f.Theta)

		for _, spec := range []struct {
			kind     ZoneKind
			alongLen float64
		}{
			{ZoneDisplacement, zl.Lf},
			{ZoneDisplacementVortex, zl.Lfv},
		} {
			alongHalf := spec.alongLen * sin2
			if alongHalf < minAxis {
				warnings = append(warnings, &GeometryWarning{
					ObstacleID: f.StackedBlockID,
					ZoneKind:   spec.kind.String(),
					Reason:     "along-wind half-axis below minimum",
				})
				continue
			}
			// Rotate so the ellipse's local +y half-axis (kept via
			// half=1) aligns with the facade's own outward normal
			// (azimuth f.Theta), extending the zone away from the
			// building into the oncoming flow rather than through it.
			poly := makeEllipse(f.Midpoint(), crossHalf, alongHalf, f.Theta-math.Pi/2, 1)
			if poly == nil {
				continue
			}
			zones = append(zones, Zone{
				Kind:           spec.kind,
				StackedBlockID: f.StackedBlockID,
				FacadeID:       f.ID,
				Polygon:        poly,
				Height:         f.Height,
				Base:           f.Base,
				Theta:          f.Theta,
			})
		}
	}
	return zones, warnings
}

// BuildCavityAndWakeZones constructs the cavity and wake ellipses for
// each stacked block, per §4.3.
func BuildCavityAndWakeZones(blocks []StackedBlock, lengths map[string]ZoneLengths) ([]Zone, []error) {
	var zones []Zone
	var warnings []error

	for _, b := range blocks {
		zl, ok := lengths[b.ID]
		if !ok {
			continue
		}
		bounds := b.Polygon.Bounds()
		crossHalf := (bounds.Max.X - bounds.Min.X) / 2
		// Cavity and wake form downwind of the block; with wind blowing
		// along -Y, downwind is the south (min-Y) edge, opposite the
		// upwind facades extracted in facades.go.
		southMid := geom.Point{X: (bounds.Min.X + bounds.Max.X) / 2, Y: bounds.Min.Y}

		for _, spec := range []struct {
			kind     ZoneKind
			alongLen float64
		}{
			{ZoneCavity, zl.Lr},
			{ZoneWake, zl.Lw},
		} {
			if crossHalf <= 0 || spec.alongLen <= 0 {
				warnings = append(warnings, &GeometryWarning{
					ObstacleID: b.ID, ZoneKind: spec.kind.String(), Reason: "non-positive axis",
				})
				continue
			}
			ellipse := makeEllipse(southMid, crossHalf, spec.alongLen, 0, -1)
			if ellipse == nil {
				continue
			}
			zones = append(zones, Zone{
				Kind:           spec.kind,
				StackedBlockID: b.ID,
				Polygon:        ellipse,
				Height:         b.Height,
				Base:           b.Base,
				Lengths:        zl,
			})
		}
	}
	return zones, warnings
}

// BuildStreetCanyonZones constructs street-canyon zones between an
// upwind facade of a downstream block and the cavity of an upstream
// block, per §4.3.
func BuildStreetCanyonZones(facades []Facade, cavities []Zone) []Zone {
	var zones []Zone
	for i := range facades {
		f := &facades[i]
		facadeStrip := facadeStrip(f)
		for _, cav := range cavities {
			if cav.StackedBlockID == f.StackedBlockID {
				continue
			}
			inter := facadeStrip.Intersection(cav.Polygon)
			if len(inter) == 0 || inter.Area() <= 0 {
				continue
			}
			extended := extendDownstream(inter, cav.Lengths.Lr)
			zones = append(zones, Zone{
				Kind:           ZoneStreetCanyon,
				StackedBlockID: f.StackedBlockID,
				FacadeID:       f.ID,
				Polygon:        extended,
				Height:         f.Height,
				Base:           f.Base,
				UpstreamH:      cav.Height,
				DownstreamH:    f.Height,
				Theta:          f.Theta,
			})
		}
	}
	return zones
}

// facadeStrip builds a thin rectangle extending a fixed 1 m outward
// (upstream, away from the building) from the facade
// segment, used to intersect against the upstream block's cavity.
// f.Theta is already the azimuth of the facade's own outward normal
// (computed once in ExtractUpwindFacades), so it is reused directly
// rather than re-deriving a normal from ring winding.
func facadeStrip(f *Facade) geom.Polygon {
	const depth = 1.0
	if f.Length() == 0 {
		return nil
	}
	nx, ny := math.Cos(f.Theta), math.Sin(f.Theta)
	return geom.Polygon{{
		f.Start,
		f.End,
		{X: f.End.X + nx*depth, Y: f.End.Y + ny*depth},
		{X: f.Start.X + nx*depth, Y: f.Start.Y + ny*depth},
		f.Start,
	}}
}

func extendDownstream(p geom.Polygon, lr float64) geom.Polygon {
	b := p.Bounds()
	extension := geom.Polygon{{
		{X: b.Min.X, Y: b.Min.Y - lr},
		{X: b.Max.X, Y: b.Min.Y - lr},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Min.Y - lr},
	}}
	return p.Union(extension)
}

// keepBelowLine returns the part of p lying in the half-plane y >= yLine,
// or nil if no part does. The zone builders do not call it: cavity and
// wake ellipses are built directly as half ellipses by makeEllipse.
func keepBelowLine(p geom.Polygon, yLine float64) geom.Polygon {
	b := p.Bounds()
	clip := geom.Polygon{{
		{X: b.Min.X - 1, Y: yLine}, {X: b.Max.X + 1, Y: yLine},
		{X: b.Max.X + 1, Y: b.Max.Y + 1}, {X: b.Min.X - 1, Y: b.Max.Y + 1},
		{X: b.Min.X - 1, Y: yLine},
	}}
	out := p.Intersection(clip)
	if len(out) == 0 {
		return nil
	}
	return out
}

// BuildRooftopZones constructs rooftop-perpendicular and rooftop-corner
// zones for each upwind facade, per §4.3.
func BuildRooftopZones(facades []Facade, lengths map[string]ZoneLengths) []Zone {
	var zones []Zone
	for i := range facades {
		f := &facades[i]
		zl, ok := lengths[f.StackedBlockID]
		if !ok {
			continue
		}
		delta := angleDiff(f.Theta, math.Pi/2)

		switch {
		case delta <= rooftopPerpendicularThreshold:
			zones = append(zones, Zone{
				Kind:           ZoneRooftopPerpendicular,
				StackedBlockID: f.StackedBlockID,
				FacadeID:       f.ID,
				Polygon:        rooftopRectangle(f, zl.Lc),
				Height:         f.Height,
				Base:           f.Base,
				Theta:          f.Theta,
				Lengths:        zl,
			})
		case delta >= cornerMinAngle && delta <= cornerMaxAngle:
			lcc := 2 * f.Length() * math.Tan(2.94*math.Exp(0.0297*delta))
			zones = append(zones, Zone{
				Kind:           ZoneRooftopCorner,
				StackedBlockID: f.StackedBlockID,
				FacadeID:       f.ID,
				Polygon:        rooftopTriangle(f, lcc),
				Height:         f.Height,
				Base:           f.Base,
				Theta:          f.Theta,
				Lengths:        zl,
			})
		}
	}
	return zones
}

// rooftopRectangle extends the rooftop-perpendicular zone inward from
// the facade, across the roof, by lc: the opposite direction from the
// facade's own outward normal (f.Theta).
func rooftopRectangle(f *Facade, lc float64) geom.Polygon {
	if f.Length() == 0 {
		return nil
	}
	nx, ny := -math.Cos(f.Theta), -math.Sin(f.Theta)
	return geom.Polygon{{
		f.Start,
		f.End,
		{X: f.End.X + nx*lc, Y: f.End.Y + ny*lc},
		{X: f.Start.X + nx*lc, Y: f.Start.Y + ny*lc},
		f.Start,
	}}
}

func rooftopTriangle(f *Facade, lcc float64) geom.Polygon {
	if f.Length() == 0 {
		return nil
	}
	nx, ny := -math.Cos(f.Theta), -math.Sin(f.Theta)
	mid := f.Midpoint()
	apex := geom.Point{X: mid.X + nx*lcc, Y: mid.Y + ny*lcc}
	return geom.Polygon{{f.Start, f.End, apex, f.Start}}
}

// VegetationZone is a built or open vegetation portion, per §4.9.
type VegetationZone struct {
	VegetationID string
	Built        bool
	Polygon      geom.Polygon
	CrownBase    float64
	CrownTop     float64
	Attenuation  float64
}

// BuildVegetationZones splits each vegetation patch into a built
// portion (intersection with any wake zone) and an open portion (the
// remainder), per §4.9.
func BuildVegetationZones(vegetation []Vegetation, wakeZones []Zone) []VegetationZone {
	var out []VegetationZone
	for _, v := range vegetation {
		var builtUnion geom.Polygon
		for _, wz := range wakeZones {
			if wz.Kind != ZoneWake {
				continue
			}
			inter := v.Polygon.Intersection(wz.Polygon)
			if len(inter) == 0 {
				continue
			}
			if builtUnion == nil {
				builtUnion = inter
			} else {
				builtUnion = builtUnion.Union(inter)
			}
		}
		if builtUnion != nil && builtUnion.Area() > 0 {
			out = append(out, VegetationZone{
				VegetationID: v.ID, Built: true, Polygon: builtUnion,
				CrownBase: v.CrownBase, CrownTop: v.CrownTop, Attenuation: v.Attenuation,
			})
			openPoly := v.Polygon.Difference(builtUnion)
			if len(openPoly) > 0 && openPoly.Area() > 0 {
				out = append(out, VegetationZone{
					VegetationID: v.ID, Built: false, Polygon: openPoly,
					CrownBase: v.CrownBase, CrownTop: v.CrownTop, Attenuation: v.Attenuation,
				})
			}
		} else {
			out = append(out, VegetationZone{
				VegetationID: v.ID, Built: false, Polygon: v.Polygon,
				CrownBase: v.CrownBase, CrownTop: v.CrownTop, Attenuation: v.Attenuation,
			})
		}
	}
	return out
}
