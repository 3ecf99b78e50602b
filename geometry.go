package urock

import (
	"math"
	"sort"
	"strconv"

	"github.com/ctessum/geom"
)

// GeometryConfig controls geometry preparation: merging touching
// buildings into blocks, splitting into stacked blocks by height band,
// and rotating the scene so the wind blows along -Y.
type GeometryConfig struct {
	// SnapTolerance widens the bounding-box pre-check of the touching
	// test (meters). Two buildings are merged only when their footprints
	// actually intersect; footprints separated by a gap, however small,
	// are not merged.
	SnapTolerance float64
	// SimplifyTolerance is the tolerance used to simplify merged block
	// outlines (meters).
	SimplifyTolerance float64
	// RotationCenter, if non-nil, is used in place of the default
	// north-east envelope corner as the center of the wind-alignment
	// rotation. Set this when running the same geometry preparation
	// across multiple wind directions so every run rotates about the
	// same point.
	RotationCenter *geom.Point
}

// DefaultGeometryConfig returns the literal defaults named in the
// geometry preparation component design.
func DefaultGeometryConfig() GeometryConfig {
	return GeometryConfig{SnapTolerance: 0.25, SimplifyTolerance: 0.25}
}

// rotatePoint rotates p counter-clockwise by angle radians about
// center.
func rotatePoint(p, center geom.Point, angle float64) geom.Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-center.X, p.Y-center.Y
	return geom.Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// rotatePolygon rotates every vertex of p counter-clockwise by angle
// radians about center. geom.Polygon has no native affine transform (its
// Transform method only accepts a CRS proj.Transformer), so rotation is
// implemented directly over the ring/point representation.
func rotatePolygon(p geom.Polygon, center geom.Point, angle float64) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, ring := range p {
		out[i] = make([]geom.Point, len(ring))
		for j, pt := range ring {
			out[i][j] = rotatePoint(pt, center, angle)
		}
	}
	return out
}

// RotateScene rotates obstacle and vegetation footprints so the wind
// blows along -Y, per §4.1: rotation is by -(windDirectionDeg - 90°)
// around the north-east corner of the combined envelope (or
// cfg.RotationCenter if set). It returns the rotation angle actually
// used, needed to rotate results back to the geographic frame.
func RotateScene(obstacles []Obstacle, vegetation []Vegetation, windDirectionDeg float64, cfg GeometryConfig) (angle float64, rotatedObstacles []Obstacle, rotatedVegetation []Vegetation) {
	angle = -(windDirectionDeg - 90) * math.Pi / 180

	center := cfg.RotationCenter
	if center == nil {
		b := geom.NewBounds()
		for _, o := range obstacles {
			b.Extend(o.Polygon.Bounds())
		}
		for _, v := range vegetation {
			b.Extend(v.Polygon.Bounds())
		}
		c := geom.Point{X: b.Max.X, Y: b.Max.Y}
		center = &c
	}

	rotatedObstacles = make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		o.Polygon = rotatePolygon(o.Polygon, *center, angle)
		rotatedObstacles[i] = o
	}
	rotatedVegetation = make([]Vegetation, len(vegetation))
	for i, v := range vegetation {
		v.Polygon = rotatePolygon(v.Polygon, *center, angle)
		rotatedVegetation[i] = v
	}
	return angle, rotatedObstacles, rotatedVegetation
}

// UnrotatePoint rotates p back to the geographic frame given the angle
// and center RotateScene used.
func UnrotatePoint(p, center geom.Point, angle float64) geom.Point {
	return rotatePoint(p, center, -angle)
}

// block is an intermediate grouping of touching buildings, independent
// of height.
type block struct {
	id       string
	footprint geom.Polygon
	members  []int // indices into the obstacle slice
}

// buildBlocks unions footprints of touching buildings (within
// snapTolerance of each other) into blocks, the Go analogue of
// createsBlocks's ST_BUFFER/ST_UNION/ST_EXPLODE pipeline.
func buildBlocks(obstacles []Obstacle, cfg GeometryConfig) []block {
	n := len(obstacles)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if touches(obstacles[i].Polygon, obstacles[j].Polygon, cfg.SnapTolerance) {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		r := find(i)
		groups[r] = append(groups[r], i)
	}

	// Deterministic ordering: sort group roots by their lowest member
	// index so block ids are stable across runs.
	roots := make([]int, 0, len(groups))
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	blocks := make([]block, 0, len(roots))
	for _, r := range roots {
		members := groups[r]
		sort.Ints(members)
		var footprint geom.Polygon
		for _, m := range members {
			if footprint == nil {
				footprint = obstacles[m].Polygon
			} else {
				footprint = footprint.Union(obstacles[m].Polygon)
			}
		}
		footprint = footprint.Simplify(cfg.SimplifyTolerance).(geom.Polygon)
		blocks = append(blocks, block{
			id:        obstacles[members[0]].ID + "_block",
			footprint: footprint,
			members:   members,
		})
	}
	return blocks
}

// touches reports whether a and b's footprints touch: their bounds must
// overlap after expansion by tolerance, and the exact polygon
// intersection of a and b (without any tolerance) must be non-empty.
// The tolerance only loosens the bounds pre-check; it does not make
// footprints separated by a gap count as touching.
func touches(a, b geom.Polygon, tolerance float64) bool {
	ba, bb := a.Bounds().Copy(), b.Bounds().Copy()
	ba.Min.X -= tolerance
	ba.Min.Y -= tolerance
	ba.Max.X += tolerance
	ba.Max.Y += tolerance
	if !ba.Overlaps(bb) {
		return false
	}
	inter := a.Intersection(b)
	return len(inter) > 0
}

// StackedBlock is one (block, height-band) polygon: the union of all
// buildings in a block that reach at least Height.
type StackedBlock struct {
	ID      string
	BlockID string
	Height  float64
	Base    float64
	Polygon geom.Polygon
}

// BuildStackedBlocks merges touching buildings into blocks and splits
// each block into stacked blocks by distinct height value, assigning
// base heights per the nested base-height rule in §4.1.
func BuildStackedBlocks(obstacles []Obstacle, cfg GeometryConfig) []StackedBlock {
	blocks := buildBlocks(obstacles, cfg)
	var out []StackedBlock

	for _, b := range blocks {
		heights := map[float64]bool{}
		for _, m := range b.members {
			heights[obstacles[m].Height] = true
		}
		var heightList []float64
		for h := range heights {
			heightList = append(heightList, h)
		}
		sort.Float64s(heightList)

		var stacked []StackedBlock
		for _, h := range heightList {
			var footprint geom.Polygon
			for _, m := range b.members {
				if obstacles[m].Height >= h {
					if footprint == nil {
						footprint = obstacles[m].Polygon
					} else {
						footprint = footprint.Union(obstacles[m].Polygon)
					}
				}
			}
			if footprint == nil {
				continue
			}
			footprint = footprint.Simplify(cfg.SimplifyTolerance).(geom.Polygon)
			stacked = append(stacked, StackedBlock{
				ID:      fmtStackedID(b.id, h),
				BlockID: b.id,
				Height:  h,
				Polygon: footprint,
			})
		}

		// Base-height rule: for each stacked block S, find the stacked
		// block P in the same group with the largest height strictly
		// smaller than S's whose footprint intersects S. Base = P's
		// height, adjusted downward if S only partially overlaps P's
		// cavity footprint (approximated here, in the absence of the
		// cavity zones which are constructed later in the pipeline, by
		// the envelope x-extent ratio described in §4.1).
		for i := range stacked {
			stacked[i].Base = baseHeightFor(stacked, i)
		}
		out = append(out, stacked...)
	}
	return out
}

func fmtStackedID(blockID string, height float64) string {
	rounded := math.Round(height*1000) / 1000
	return blockID + "_h" + strconv.FormatFloat(rounded, 'f', -1, 64)
}

func baseHeightFor(stacked []StackedBlock, i int) float64 {
	var best *StackedBlock
	for j := range stacked {
		if j == i {
			continue
		}
		if stacked[j].Height < stacked[i].Height &&
			(best == nil || stacked[j].Height > best.Height) &&
			footprintsRelated(stacked[j].Polygon, stacked[i].Polygon) {
			best = &stacked[j]
		}
	}
	if best == nil {
		return 0
	}
	base := best.Height

	// Downward adjustment when S only partially sits inside P's
	// footprint: base = P.height - r * min(P.base - Q.base), where r is
	// S's envelope x-extent over P's envelope x-extent. Q is the
	// stacked block immediately below P, if any.
	sBounds := stacked[i].Polygon.Bounds()
	pBounds := best.Polygon.Bounds()
	pWidth := pBounds.Max.X - pBounds.Min.X
	if pWidth <= 0 {
		return base
	}
	sWidth := sBounds.Max.X - sBounds.Min.X
	r := sWidth / pWidth
	if r >= 1 {
		return base
	}
	var q *StackedBlock
	for j := range stacked {
		if stacked[j].Height < best.Height &&
			(q == nil || stacked[j].Height > q.Height) &&
			footprintsRelated(stacked[j].Polygon, best.Polygon) {
			q = &stacked[j]
		}
	}
	if q == nil {
		return base
	}
	drop := best.Base - q.Base
	if drop < 0 {
		drop = 0
	}
	return base - r*drop
}

func indexOf(stacked []StackedBlock, target *StackedBlock) int {
	for i := range stacked {
		if &stacked[i] == target {
			return i
		}
	}
	return -1
}

func footprintsRelated(a, b geom.Polygon) bool {
	if !a.Bounds().Overlaps(b.Bounds()) {
		return false
	}
	inter := a.Intersection(b)
	return len(inter) > 0
}
