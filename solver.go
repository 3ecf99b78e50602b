package urock

import (
	"context"
	"math"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// SolverConfig controls the mass-consistent SOR solver of §4.8.
type SolverConfig struct {
	MaxIterations    int     `toml:"max_iterations"`
	Threshold        float64 `toml:"threshold"`
	Omega            float64 `toml:"omega"`
	StagnationWindow int     `toml:"stagnation_window"`
	Concurrency      int     `toml:"concurrency"`
	Verbose          bool    `toml:"verbose"`
}

// DefaultSolverConfig returns the literal defaults named in §4.8/§7.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxIterations:    10000,
		Threshold:        1e-6,
		Omega:            1.78,
		StagnationWindow: 50,
	}
}

// Field holds the cell-centered first-guess and solved velocity
// components, the obstacle mask, and the λ Lagrange-multiplier array
// that the SOR sweep mutates, all as sparse.DenseArray values the way
// the teacher holds its per-cell physical quantities.
type Field struct {
	NX, NY, NZ int
	DX, DY, DZ float64

	U0, V0, W0 *sparse.DenseArray
	U, V, W    *sparse.DenseArray
	Lambda     *sparse.DenseArray
	Solid      *sparseBool
}

// NewField allocates a Field of the given dimensions with λ initialized
// to 1 in the non-solid interior and 0 on the outer faces and in solid
// cells, per the data model.
func NewField(nx, ny, nz int, dx, dy, dz float64, solid *sparseBool) *Field {
	f := &Field{
		NX: nx, NY: ny, NZ: nz, DX: dx, DY: dy, DZ: dz,
		U0: sparse.ZerosDense(nx, ny, nz), V0: sparse.ZerosDense(nx, ny, nz), W0: sparse.ZerosDense(nx, ny, nz),
		U: sparse.ZerosDense(nx, ny, nz), V: sparse.ZerosDense(nx, ny, nz), W: sparse.ZerosDense(nx, ny, nz),
		Lambda: sparse.ZerosDense(nx, ny, nz),
		Solid:  solid,
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				if i == 0 || j == 0 || k == 0 || i == nx-1 || j == ny-1 || k == nz-1 || solid.Get(i, j, k) {
					f.Lambda.Set(0, i, j, k)
				} else {
					f.Lambda.Set(1, i, j, k)
				}
			}
		}
	}
	return f
}

func (f *Field) isSolid(i, j, k int) bool {
	if i < 0 || j < 0 || k < 0 || i >= f.NX || j >= f.NY || k >= f.NZ {
		return true
	}
	return f.Solid.Get(i, j, k)
}

// obstacleCoefficients returns the stencil coefficients {e, g, h, m, n,
// o, p, q} for cell (i, j, k) per §4.8: each neighbour coefficient is 1
// and is zeroed when that neighbour (e: i+1, g: j+1, h: j-1, m: k+1,
// n: k-1) is solid; o, p, q are half the sum of the two neighbour
// coefficients on their axis, so each is halved for one solid neighbour
// on that axis and zero for two. The i-1 coefficient f only enters o:
// the sweep reads λ[i-1] unweighted, and λ is zero in solid cells.
// Ascending-y = north convention (Resolved Open Question): this is the
// `else` branch of every `if DESCENDING_Y` block in the reference solver.
func (fl *Field) obstacleCoefficients(i, j, k int) (e, g, h, m, n, o, p, q float64) {
	e, g, h, m, n = 1, 1, 1, 1, 1
	f := 1.0
	if fl.isSolid(i+1, j, k) {
		e = 0
	}
	if fl.isSolid(i-1, j, k) {
		f = 0
	}
	if fl.isSolid(i, j+1, k) {
		g = 0
	}
	if fl.isSolid(i, j-1, k) {
		h = 0
	}
	if fl.isSolid(i, j, k+1) {
		m = 0
	}
	if fl.isSolid(i, j, k-1) {
		n = 0
	}
	o, p, q = (e+f)/2, (g+h)/2, (m+n)/2
	return
}

// SORSweep performs one natural-order SOR relaxation of λ over the
// interior, non-solid cells, per the §4.8 stencil. It returns the
// convergence residual Σ|λ_new - λ| / Σ|λ_new|.
func (f *Field) SORSweep(omega float64) float64 {
	a := sq(f.DX / f.DY)
	b := sq(f.DX / f.DZ) // α1 = α2 = 1

	var numerator, denominator []float64

	for i := 1; i < f.NX-1; i++ {
		for j := 1; j < f.NY-1; j++ {
			for k := 1; k < f.NZ-1; k++ {
				if f.isSolid(i, j, k) {
					f.Lambda.Set(0, i, j, k)
					continue
				}
				old := f.Lambda.Get(i, j, k)
				e, g, h, m, n, o, p, q := f.obstacleCoefficients(i, j, k)

				divU0 := (f.U0.Get(i+1, j, k) - f.U0.Get(i, j, k)) / f.DX
				divV0 := (f.V0.Get(i, j+1, k) - f.V0.Get(i, j, k)) / f.DY
				divW0 := (f.W0.Get(i, j, k+1) - f.W0.Get(i, j, k)) / f.DZ

				denom := 2 * (o + a*p + b*q)
				if denom == 0 {
					f.Lambda.Set(0, i, j, k)
					continue
				}

				rhs := -sq(f.DX)*(-2)*(divU0+divV0+divW0) +
					e*f.Lambda.Get(i+1, j, k) + f.Lambda.Get(i-1, j, k) +
					a*(g*f.Lambda.Get(i, j+1, k)+h*f.Lambda.Get(i, j-1, k)) +
					b*(m*f.Lambda.Get(i, j, k+1)+n*f.Lambda.Get(i, j, k-1))

				newVal := omega*rhs/denom + (1-omega)*old
				f.Lambda.Set(newVal, i, j, k)

				numerator = append(numerator, math.Abs(newVal-old))
				denominator = append(denominator, math.Abs(newVal))
			}
		}
	}

	numSum := floats.Sum(numerator)
	denSum := floats.Sum(denominator)
	if denSum == 0 {
		return 0
	}
	return numSum / denSum
}

// ApplyCorrection computes cell-centred velocities from λ per
// u = u0 + (1/2α1²)∂λ/∂x etc. (α1 = α2 = 1), with ∂λ taken as a
// central difference (one-sided at the outer faces). A component is set
// to zero when the cell has a solid neighbour along that axis, and all
// three are zero in solid cells. No staggered face velocities are formed.
func (f *Field) ApplyCorrection() {
	for i := 0; i < f.NX; i++ {
		for j := 0; j < f.NY; j++ {
			for k := 0; k < f.NZ; k++ {
				if f.isSolid(i, j, k) {
					f.U.Set(0, i, j, k)
					f.V.Set(0, i, j, k)
					f.W.Set(0, i, j, k)
					continue
				}
				dLambdaDx := (f.Lambda.Get(min(i+1, f.NX-1), j, k) - f.Lambda.Get(max(i-1, 0), j, k)) / (2 * f.DX)
				dLambdaDy := (f.Lambda.Get(i, min(j+1, f.NY-1), k) - f.Lambda.Get(i, max(j-1, 0), k)) / (2 * f.DY)
				dLambdaDz := (f.Lambda.Get(i, j, min(k+1, f.NZ-1)) - f.Lambda.Get(i, j, max(k-1, 0))) / (2 * f.DZ)

				u := f.U0.Get(i, j, k) + 0.5*dLambdaDx
				v := f.V0.Get(i, j, k) + 0.5*dLambdaDy
				w := f.W0.Get(i, j, k) + 0.5*dLambdaDz

				if f.isSolid(i+1, j, k) || f.isSolid(i-1, j, k) {
					u = 0
				}
				if f.isSolid(i, j+1, k) || f.isSolid(i, j-1, k) {
					v = 0
				}
				if f.isSolid(i, j, k+1) || f.isSolid(i, j, k-1) {
					w = 0
				}

				f.U.Set(u, i, j, k)
				f.V.Set(v, i, j, k)
				f.W.Set(w, i, j, k)
			}
		}
	}
}

// SolveResult carries the outcome of a solver run.
type SolveResult struct {
	Status     Status
	Iterations int
	Residual   float64
}

// Solve iterates SORSweep until convergence, stagnation, cancellation,
// or max iterations, per §4.8 and the error-handling design (§7).
func Solve(ctx context.Context, f *Field, cfg SolverConfig, log *logrus.Entry) SolveResult {
	var bestResidual = math.Inf(1)
	var stagnant int

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			return SolveResult{Status: StatusCancelled, Iterations: iter, Residual: bestResidual}
		default:
		}

		residual := f.SORSweep(cfg.Omega)

		if cfg.Verbose && log != nil {
			log.WithFields(logrus.Fields{"iteration": iter, "residual": residual}).Debug("SOR sweep")
		}

		if residual < bestResidual-cfg.Threshold*0.01 {
			bestResidual = residual
			stagnant = 0
		} else {
			stagnant++
		}

		if residual < cfg.Threshold {
			f.ApplyCorrection()
			return SolveResult{Status: StatusConverged, Iterations: iter + 1, Residual: residual}
		}
		if stagnant >= cfg.StagnationWindow {
			f.ApplyCorrection()
			return SolveResult{Status: StatusStagnated, Iterations: iter + 1, Residual: residual}
		}
	}
	f.ApplyCorrection()
	return SolveResult{Status: StatusMaxIterations, Iterations: cfg.MaxIterations, Residual: bestResidual}
}
