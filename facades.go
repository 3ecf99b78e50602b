package urock

import (
	"math"

	"github.com/ctessum/geom"
)

// facadeAngleThreshold is the exclusive upper bound, in radians, on the
// angle between a ring segment's outward normal and the direction the
// wind comes from, (0, 1), for the segment to be considered
// upwind-facing. 90 degrees: a segment is upwind only if its outward
// normal has a strictly positive component against the wind direction;
// faces parallel to the wind are not upwind.
const facadeAngleThreshold = math.Pi / 2

// ExtractUpwindFacades walks the outer ring of each stacked block and
// returns the segments whose outward normal points into the wind
// (i.e. the building receives the wind on that face), after the scene
// has been rotated so wind blows along -Y. This is the Go analogue of
// initUpwindFacades's per-segment azimuth filter.
func ExtractUpwindFacades(blocks []StackedBlock) []Facade {
	var out []Facade
	for _, b := range blocks {
		if len(b.Polygon) == 0 {
			continue
		}
		outer := b.Polygon[0]
		if len(outer) < 2 {
			continue
		}
		ccw := signedRingArea(outer) > 0
		n := len(outer)
		for i := 0; i < n-1; i++ {
			start, end := outer[i], outer[i+1]
			if start == end {
				continue
			}
			normal := outwardNormal(start, end, ccw)
			// Wind blows along -Y; a face receives wind if its outward
			// normal faces back into the oncoming flow, i.e. points
			// toward (0, 1) (where the wind comes from) rather than
			// along (0, -1) (where it is going). Faces whose normal is
			// exactly perpendicular to the wind (diff == 90 degrees)
			// are parallel to the flow and are skipped.
			theta := math.Atan2(normal.Y, normal.X)
			windSourceAzimuth := math.Pi / 2 // direction (0,1) points
			diff := angleDiff(theta, windSourceAzimuth)
			if diff >= facadeAngleThreshold {
				continue
			}
			out = append(out, Facade{
				ID:             facadeID(b.ID, i),
				StackedBlockID: b.ID,
				Base:           b.Base,
				Height:         b.Height,
				Start:          start,
				End:            end,
				Theta:          theta,
			})
		}
	}
	return out
}

func facadeID(blockID string, index int) string {
	return blockID + "_f" + itoa(index)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// outwardNormal returns the outward-pointing unit normal of the edge
// start->end, given the ring's winding order. For a CCW ring (interior
// to the left of the direction of travel), rotating the edge vector
// clockwise by 90 degrees already points away from the interior; a CW
// ring needs the opposite rotation.
func outwardNormal(start, end geom.Point, ccw bool) geom.Point {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return geom.Point{}
	}
	nx, ny := dy/length, -dx/length
	if !ccw {
		nx, ny = -nx, -ny
	}
	return geom.Point{X: nx, Y: ny}
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return math.Abs(d)
}

func signedRingArea(r []geom.Point) float64 {
	if len(r) < 3 {
		return 0
	}
	a := 0.0
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return a / 2
}
