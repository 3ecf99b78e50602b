// Package urock computes a three-dimensional, divergence-free wind
// field over an urban area from a reference wind, a roughness length,
// and a description of buildings and vegetation. It reproduces the
// Röckle-type diagnostic urban canopy model: closed-form flow zones
// are constructed around each obstacle, a grid cell is given a
// first-guess velocity from those zones, and a mass-consistent
// relaxation solver enforces zero divergence.
package urock

import (
	"math"

	"github.com/ctessum/geom"
)

// ZoneKind enumerates the flow regions the zone builder constructs.
type ZoneKind int

// Zone kinds, ordered by the fixed tie-break priority of the
// superimposition resolver: street canyon, cavity, rooftop-perpendicular,
// rooftop-corner, displacement-vortex, displacement, wake. The resolver
// ranks them with zonePriorityRank, where rooftop-perpendicular,
// rooftop-corner and displacement-vortex share one rank.
const (
	ZoneStreetCanyon ZoneKind = iota + 1
	ZoneCavity
	ZoneRooftopPerpendicular
	ZoneRooftopCorner
	ZoneDisplacementVortex
	ZoneDisplacement
	ZoneWake
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneStreetCanyon:
		return "street_canyon"
	case ZoneCavity:
		return "cavity"
	case ZoneRooftopPerpendicular:
		return "rooftop_perpendicular"
	case ZoneRooftopCorner:
		return "rooftop_corner"
	case ZoneDisplacementVortex:
		return "displacement_vortex"
	case ZoneDisplacement:
		return "displacement"
	case ZoneWake:
		return "wake"
	default:
		return "unknown"
	}
}

// RefHeightKind selects which reference wind speed a wind-factor
// multiplier scales.
type RefHeightKind int

const (
	// RefBlockHeight scales the wind speed evaluated at the parent
	// obstacle's top height.
	RefBlockHeight RefHeightKind = iota
	// RefZRef scales the reference wind speed itself (v_ref at z_ref).
	RefZRef
	// RefPointHeight scales the wind speed evaluated at the grid
	// point's own elevation.
	RefPointHeight
)

// Obstacle is a vertical-prism building footprint: a 2D polygon
// extruded from Base to Height. Geometry preparation merges buildings
// with touching footprints into blocks and splits them into
// StackedBlock values; it reads only Polygon, Height and ID, and does
// not consult or fill in Base, BlockID or StackedBlockID.
type Obstacle struct {
	ID      string
	Height  float64 // top height above ground, meters
	Base    float64 // base height above ground, meters (0 for ground-based buildings)
	Polygon geom.Polygon

	BlockID        string
	StackedBlockID string
}

// Vegetation is a permeable crown between CrownBase and CrownTop that
// attenuates the wind passing through it, with attenuation coefficient
// Attenuation (α_v > 0, dimensionless).
type Vegetation struct {
	ID        string
	Polygon   geom.Polygon
	CrownBase float64
	CrownTop  float64

	Attenuation float64
}

// Facade is an upwind-facing line segment of a stacked block's
// footprint, carrying the azimuth θ of its outward normal in the
// post-rotation frame (π/2 for a facade facing straight into the wind).
type Facade struct {
	ID             string
	StackedBlockID string
	Base, Height   float64
	Start, End     geom.Point
	Theta          float64 // radians, azimuth of the outward normal, 0 = East, CCW
}

// Length returns the facade's planar length.
func (f *Facade) Length() float64 {
	return math.Hypot(f.End.X-f.Start.X, f.End.Y-f.Start.Y)
}

// Midpoint returns the facade segment's midpoint.
func (f *Facade) Midpoint() geom.Point {
	return geom.Point{X: (f.Start.X + f.End.X) / 2, Y: (f.Start.Y + f.End.Y) / 2}
}

// EffectiveGeometry holds the cross-wind effective width and along-wind
// effective length of a stacked block's footprint, derived from its
// envelope and area as described in the data model.
type EffectiveGeometry struct {
	Width  float64 // W_eff
	Length float64 // L_eff
}

// ZoneLengths holds the closed-form zone-length descriptors derived
// from a stacked block's effective geometry and height.
type ZoneLengths struct {
	Lf  float64 // displacement
	Lfv float64 // displacement vortex
	Lr  float64 // cavity
	Lw  float64 // wake
	Hcm float64 // rooftop-perpendicular height
	Lc  float64 // rooftop-perpendicular length
	C1  float64 // rooftop-corner factor
}

// Zone is a planar polygon representing one flow region, anchored to a
// facade or a stacked block.
type Zone struct {
	Kind           ZoneKind
	StackedBlockID string
	FacadeID       string
	Polygon        geom.Polygon

	Height     float64 // h: parent obstacle top height
	Base       float64 // obstacle base height
	UpstreamH  float64 // canyon only: upstream block height
	DownstreamH float64 // canyon only: downstream block height
	Theta      float64 // facade angle, where applicable
	Lengths    ZoneLengths
}

// ZonePoint records the relative position of a single (column, zone)
// pair used by the 3D wind-factor evaluator: the along-wind distance
// from the cell to the zone's upstream wall, and the zone's along-wind
// extent at that column.
type ZonePoint struct {
	Column  int // grid column index i
	YWall   float64
	YPoint  float64
	LengthI float64 // L_zone_i at this column
}

// Xi returns the relative position within the zone, ξ = (y_wall -
// y_point) / L_zone_i, as defined in the grid and point-in-zone
// component.
func (zp *ZonePoint) Xi() float64 {
	if zp.LengthI == 0 {
		return 0
	}
	return (zp.YWall - zp.YPoint) / zp.LengthI
}

// WindFactor is the evaluated (u, v, w) multiplier triple for a single
// 3D grid point claimed by a zone, together with the reference height
// convention and priority used by the superimposition resolver.
type WindFactor struct {
	MU, MV, MW float64
	RefHeight  RefHeightKind
	Priority   ZoneKind
	Height     float64 // parent obstacle height, for tie-breaking
	YWall      float64 // parent zone's upstream wall y, for tie-breaking
	SourceID   string
}
