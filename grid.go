package urock

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// GridConfig describes the regular point grid spec.md §4.4 builds over
// the union of zone envelopes.
type GridConfig struct {
	MeshSize         float64 `toml:"mesh_size"`
	DZ               float64 `toml:"dz"`
	AlongWindExtend  float64 `toml:"along_wind_extend"`
	CrossWindExtend  float64 `toml:"cross_wind_extend"`
	VerticalExtend   float64 `toml:"vertical_extend"`
	Concurrency      int     `toml:"concurrency"`
}

// Grid is the regular X/Y/Z cell-center grid described in the data
// model: nx, ny, nz cells, dx = dy = MeshSize, dz independent.
type Grid struct {
	Cfg            GridConfig
	OriginX, OriginY float64
	NX, NY, NZ     int
	ZCenters       []float64
	Solid          *sparseBool
}

// sparseBool is a dense flat bool array addressed the way the
// teacher's sparse.DenseArray addresses float64 cells, used here for
// the boolean solid mask so grid.go does not need a dependency of its
// own beyond what solver.go already wires.
type sparseBool struct {
	nx, ny, nz int
	data       []bool
}

func newSparseBool(nx, ny, nz int) *sparseBool {
	return &sparseBool{nx: nx, ny: ny, nz: nz, data: make([]bool, nx*ny*nz)}
}

func (s *sparseBool) idx(i, j, k int) int { return (k*s.ny+j)*s.nx + i }

func (s *sparseBool) Get(i, j, k int) bool { return s.data[s.idx(i, j, k)] }

func (s *sparseBool) Set(i, j, k int, v bool) { s.data[s.idx(i, j, k)] = v }

// NewGrid constructs a regular point grid whose 2D envelope is the
// union of all zone polygon envelopes expanded by
// (CrossWindExtend, AlongWindExtend), per §4.4, and marks solid cells
// per the data model's rule: a cell is solid if it intersects any
// block vertical prism, or is at the ground layer k = 0.
func NewGrid(zones []Zone, blocks []StackedBlock, cfg GridConfig) *Grid {
	env := geom.NewBounds()
	for _, z := range zones {
		env.Extend(z.Polygon.Bounds())
	}
	for _, b := range blocks {
		env.Extend(b.Polygon.Bounds())
	}
	if env.Empty() {
		env = &geom.Bounds{Min: geom.Point{}, Max: geom.Point{X: cfg.MeshSize, Y: cfg.MeshSize}}
	}
	env.Min.X -= cfg.CrossWindExtend
	env.Max.X += cfg.CrossWindExtend
	env.Min.Y -= cfg.AlongWindExtend
	env.Max.Y += cfg.AlongWindExtend

	nx := int(math.Ceil((env.Max.X - env.Min.X) / cfg.MeshSize))
	ny := int(math.Ceil((env.Max.Y - env.Min.Y) / cfg.MeshSize))
	nz := int(math.Ceil(cfg.VerticalExtend / cfg.DZ))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	if nz < 1 {
		nz = 1
	}

	zCenters := make([]float64, nz)
	for k := range zCenters {
		zCenters[k] = (float64(k)+0.5)*cfg.DZ
	}

	g := &Grid{
		Cfg: cfg, OriginX: env.Min.X, OriginY: env.Min.Y,
		NX: nx, NY: ny, NZ: nz, ZCenters: zCenters,
		Solid: newSparseBool(nx, ny, nz),
	}
	g.markSolid(blocks)
	return g
}

// CellCenter returns the (x, y) coordinate of column (i, j)'s center.
func (g *Grid) CellCenter(i, j int) geom.Point {
	return geom.Point{
		X: g.OriginX + (float64(i)+0.5)*g.Cfg.MeshSize,
		Y: g.OriginY + (float64(j)+0.5)*g.Cfg.MeshSize,
	}
}

func (g *Grid) markSolid(blocks []StackedBlock) {
	// Bounding-box pre-filter before the exact point-in-polygon test,
	// playing the role the teacher's rtree spatial index plays for
	// cell/population joins in vargrid.go: avoid testing every column
	// against every block by first rejecting columns whose bounds don't
	// overlap the block's envelope.
	idx := make([]*geom.Bounds, len(blocks))
	for b := range blocks {
		idx[b] = blocks[b].Polygon.Bounds()
	}

	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			c := g.CellCenter(i, j)
			cb := geom.NewBoundsPoint(c)
			for bi, b := range blocks {
				if !idx[bi].Overlaps(cb) {
					continue
				}
				if c.Within(b.Polygon) == geom.Outside {
					continue
				}
				zTop := b.Height
				for k := 0; k < g.NZ; k++ {
					z := g.ZCenters[k]
					if b.Base <= z-g.Cfg.DZ/2 && zTop > z-g.Cfg.DZ/2 {
						g.Solid.Set(i, j, k, true)
					}
				}
			}
			g.Solid.Set(i, j, 0, true) // ground layer
		}
	}
}

// rtreeToRect adapts a Bounds to the rtree package's rectangle helper,
// exercising the one piece of github.com/ctessum/geom/index/rtree this
// vendor snapshot exposes (its full Rtree/Insert/SearchIntersect API is
// not present; ToRect's point-and-tolerance rectangle is still used by
// NearestColumn below to size the search window the way the teacher
// sizes neighbor-search windows in neighbors.go).
func rtreeToRect(p geom.Point, tol float64) *geom.Bounds {
	return rtree.ToRect(p, tol)
}

// NearestColumn returns the (i, j) column whose center is nearest p,
// restricting the search to columns within tol of p using the same
// rectangle construction the teacher's neighbor search uses.
func (g *Grid) NearestColumn(p geom.Point, tol float64) (i, j int, ok bool) {
	rect := rtreeToRect(p, tol)
	bestDist := math.Inf(1)
	i, j, ok = 0, 0, false
	iMin := int((rect.Min.X - g.OriginX) / g.Cfg.MeshSize)
	iMax := int((rect.Max.X - g.OriginX) / g.Cfg.MeshSize)
	jMin := int((rect.Min.Y - g.OriginY) / g.Cfg.MeshSize)
	jMax := int((rect.Max.Y - g.OriginY) / g.Cfg.MeshSize)
	for ii := max(iMin, 0); ii <= min(iMax, g.NX-1); ii++ {
		for jj := max(jMin, 0); jj <= min(jMax, g.NY-1); jj++ {
			c := g.CellCenter(ii, jj)
			d := math.Hypot(c.X-p.X, c.Y-p.Y)
			if d < bestDist {
				bestDist, i, j, ok = d, ii, jj, true
			}
		}
	}
	return i, j, ok
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ZoneColumnPoint is the per-(zone, column) record of §4.4: the
// along-wind wall distance, the intersection extent at that column,
// and the zone's auxiliary descriptors needed by the 3D wind-factor
// evaluator.
type ZoneColumnPoint struct {
	Zone    *Zone
	Column  int
	Row     int
	YWall   float64
	YPoint  float64
	LengthI float64
}

// Xi returns the relative position within the zone, ξ = (y_wall -
// y_point) / L_zone_i, or 0 when the column extent is zero.
func (zcp *ZoneColumnPoint) Xi() float64 {
	if zcp.LengthI == 0 {
		return 0
	}
	return (zcp.YWall - zcp.YPoint) / zcp.LengthI
}

// AssignPointsToZones intersects every grid column with every zone
// polygon and records the wall distance and along-wind extent, per
// §4.4. The wall is the zone's south (min-y) edge at that column for
// displacement, displacement-vortex and rooftop-perp/corner zones, and
// its north (max-y) edge for cavity, wake and canyon zones.
func AssignPointsToZones(g *Grid, zones []Zone) []ZoneColumnPoint {
	var out []ZoneColumnPoint
	for zi := range zones {
		z := &zones[zi]
		zb := z.Polygon.Bounds()
		iMin := max(int((zb.Min.X-g.OriginX)/g.Cfg.MeshSize), 0)
		iMax := min(int((zb.Max.X-g.OriginX)/g.Cfg.MeshSize), g.NX-1)

		for i := iMin; i <= iMax; i++ {
			x := g.OriginX + (float64(i)+0.5)*g.Cfg.MeshSize
			yMin, yMax, found := columnIntersection(z.Polygon, x, zb.Min.Y, zb.Max.Y)
			if !found {
				continue
			}
			var yWall float64
			if isUpwindZone(z.Kind) {
				yWall = yMin
			} else {
				yWall = yMax
			}
			for j := 0; j < g.NY; j++ {
				yPoint := g.OriginY + (float64(j)+0.5)*g.Cfg.MeshSize
				if yPoint < yMin || yPoint > yMax {
					continue
				}
				out = append(out, ZoneColumnPoint{
					Zone: z, Column: i, Row: j,
					YWall: yWall, YPoint: yPoint, LengthI: yMax - yMin,
				})
			}
		}
	}
	return out
}

func isUpwindZone(k ZoneKind) bool {
	switch k {
	case ZoneDisplacement, ZoneDisplacementVortex, ZoneRooftopPerpendicular, ZoneRooftopCorner:
		return true
	default:
		return false
	}
}

// columnIntersection finds the [yMin, yMax] extent of poly along the
// vertical line x = x, by sampling at fine resolution between yLo and
// yHi and testing membership with geom.Point.Within. This replaces an
// exact segment/line intersection with a resolution tied to the
// caller's grid spacing, which is the precision §4.4 itself operates
// at (point-in-zone is evaluated at cell centers, not exactly).
func columnIntersection(poly geom.Polygon, x, yLo, yHi float64) (yMin, yMax float64, found bool) {
	const samples = 200
	if yHi <= yLo {
		return 0, 0, false
	}
	step := (yHi - yLo) / samples
	yMin, yMax = math.Inf(1), math.Inf(-1)
	for s := 0; s <= samples; s++ {
		y := yLo + step*float64(s)
		p := geom.Point{X: x, Y: y}
		if p.Within(poly) != geom.Outside {
			found = true
			if y < yMin {
				yMin = y
			}
			if y > yMax {
				yMax = y
			}
		}
	}
	return yMin, yMax, found
}
