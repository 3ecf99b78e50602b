package urock

import (
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// populateFirstGuess fills field.U0/V0/W0 from the resolved wind
// factors and ambient profile, per §4.7's first-guess rule. Columns
// are processed independently, the same "divide N independent units of
// work across GOMAXPROCS goroutines" idiom the teacher uses in
// vargrid.go's addCells for per-cell work.
func populateFirstGuess(field *Field, grid *Grid, profile *Profile, zcps []ZoneColumnPoint, vegZones []VegetationZone, rough RoughnessParams, zRef float64, concurrency int) {
	byColumn := make(map[[2]int][]ZoneColumnPoint)
	for _, zcp := range zcps {
		key := [2]int{zcp.Column, zcp.Row}
		byColumn[key] = append(byColumn[key], zcp)
	}

	columns := make([][2]int, 0, len(byColumn))
	for k := range byColumn {
		columns = append(columns, k)
	}

	jobs := make(chan int, len(columns))
	for idx := range columns {
		jobs <- idx
	}
	close(jobs)

	if concurrency < 1 {
		concurrency = 1
	}
	done := make(chan struct{}, concurrency)
	for w := 0; w < concurrency; w++ {
		go func() {
			for idx := range jobs {
				col := columns[idx]
				i, j := col[0], col[1]
				candidates := byColumn[col]
				for k := 0; k < grid.NZ; k++ {
					z := grid.ZCenters[k]
					solid := field.isSolid(i, j, k)

					var cellCandidates []CellCandidate
					var wakeCandidates []CellCandidate
					for ci := range candidates {
						wf, ok := EvaluateWindFactor(&candidates[ci], z, zRef)
						if !ok {
							continue
						}
						cc := CellCandidate{WindFactor: wf, Z: z}
						if candidates[ci].Zone.Kind == ZoneWake {
							wakeCandidates = append(wakeCandidates, cc)
						} else {
							cellCandidates = append(cellCandidates, cc)
						}
					}

					vegFactor := 1.0
					if len(vegZones) > 0 {
						pt := grid.CellCenter(i, j)
						for vi := range vegZones {
							if pt.Within(vegZones[vi].Polygon) != geom.Outside {
								vegFactor = VegFactor(&vegZones[vi], z, rough.Z0.Value(), rough.D.Value())
								break
							}
						}
					}

					resolved, hasWF := ResolveCell(cellCandidates, wakeCandidates, vegFactor, nil)
					u0, v0, w0 := FirstGuessVelocity(solid, resolved, hasWF, profile, z)
					field.U0.Set(u0, i, j, k)
					field.V0.Set(v0, i, j, k)
					field.W0.Set(w0, i, j, k)
				}
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < concurrency; w++ {
		<-done
	}

	// Columns never claimed by any zone still need the ambient profile.
	for i := 0; i < grid.NX; i++ {
		for j := 0; j < grid.NY; j++ {
			if _, ok := byColumn[[2]int{i, j}]; ok {
				continue
			}
			for k := 0; k < grid.NZ; k++ {
				z := grid.ZCenters[k]
				if field.isSolid(i, j, k) {
					continue
				}
				field.V0.Set(-profile.At(z), i, j, k)
			}
		}
	}
}

// SliceFields holds the derived per-horizontal-slice fields of §6:
// horizontal speed and direction, vertical speed, and full speed.
type SliceFields struct {
	K                  int
	HorizontalSpeed    []float64
	HorizontalDirection []float64
	VerticalSpeed      []float64
	FullSpeed          []float64
}

// DeriveSliceFields computes §6's derived fields for horizontal layer
// k, using gonum/floats the way the teacher uses floats.Sum for
// mass/residual bookkeeping.
func DeriveSliceFields(f *Field, k int) SliceFields {
	n := f.NX * f.NY
	sf := SliceFields{
		K: k,
		HorizontalSpeed:     make([]float64, n),
		HorizontalDirection: make([]float64, n),
		VerticalSpeed:       make([]float64, n),
		FullSpeed:           make([]float64, n),
	}
	for i := 0; i < f.NX; i++ {
		for j := 0; j < f.NY; j++ {
			idx := j*f.NX + i
			u, v, w := f.U.Get(i, j, k), f.V.Get(i, j, k), f.W.Get(i, j, k)
			hspeed := math.Hypot(u, v)
			sf.HorizontalSpeed[idx] = hspeed
			sf.HorizontalDirection[idx] = math.Mod(math.Atan2(-u, -v)*180/math.Pi+360, 360)
			sf.VerticalSpeed[idx] = w
			sf.FullSpeed[idx] = math.Sqrt(hspeed*hspeed + w*w)
		}
	}
	return sf
}

// MassResidual computes the divergence residual for every non-solid
// interior cell, for the mass-conservation testable property of §8.
func MassResidual(f *Field) []float64 {
	var out []float64
	for i := 1; i < f.NX-1; i++ {
		for j := 1; j < f.NY-1; j++ {
			for k := 1; k < f.NZ-1; k++ {
				if f.isSolid(i, j, k) {
					continue
				}
				div := (f.U.Get(i+1, j, k) - f.U.Get(i, j, k)) / f.DX
				div += (f.V.Get(i, j+1, k) - f.V.Get(i, j, k)) / f.DY
				div += (f.W.Get(i, j, k+1) - f.W.Get(i, j, k)) / f.DZ
				out = append(out, math.Abs(div))
			}
		}
	}
	return out
}

// MaxAbsU returns max|u| across the field, via gonum/floats.
func MaxAbsU(f *Field) float64 {
	vals := make([]float64, len(f.U.Elements))
	copy(vals, f.U.Elements)
	for i := range vals {
		vals[i] = math.Abs(vals[i])
	}
	if len(vals) == 0 {
		return 0
	}
	return floats.Max(vals)
}
