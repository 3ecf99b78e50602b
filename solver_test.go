package urock

import (
	"context"
	"math"
	"testing"
)

// TestSolveFlatGroundNoObstacles implements end-to-end scenario 1
// (§8): with no obstacles, u and w vanish everywhere and v follows the
// ambient profile exactly, so the solver should converge in very few
// iterations with λ ≈ 0 throughout.
func TestSolveFlatGroundNoObstacles(t *testing.T) {
	nx, ny, nz := 5, 5, 5
	dx, dy, dz := 2.0, 2.0, 2.0
	solid := newSparseBool(nx, ny, nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			solid.Set(i, j, 0, true)
		}
	}
	field := NewField(nx, ny, nz, dx, dy, dz, solid)
	profile := &Profile{Kind: ProfilePower, ZRef: 10, VRef: 2, Z0: 0.1}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				if solid.Get(i, j, k) {
					continue
				}
				z := (float64(k) + 0.5) * dz
				field.V0.Set(-profile.At(z), i, j, k)
			}
		}
	}

	cfg := DefaultSolverConfig()
	cfg.MaxIterations = 200
	result := Solve(context.Background(), field, cfg, nil)

	if result.Status != StatusConverged {
		t.Fatalf("status = %v, want converged", result.Status)
	}

	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			for k := 1; k < nz-1; k++ {
				if field.isSolid(i, j, k) {
					continue
				}
				if math.Abs(field.U.Get(i, j, k)) > 1e-8 {
					t.Errorf("u[%d,%d,%d] = %v, want ~0", i, j, k, field.U.Get(i, j, k))
				}
				if math.Abs(field.W.Get(i, j, k)) > 1e-8 {
					t.Errorf("w[%d,%d,%d] = %v, want ~0", i, j, k, field.W.Get(i, j, k))
				}
			}
		}
	}
}

func TestObstacleDirichlet(t *testing.T) {
	nx, ny, nz := 4, 4, 4
	solid := newSparseBool(nx, ny, nz)
	solid.Set(1, 1, 1, true)
	field := NewField(nx, ny, nz, 1, 1, 1, solid)
	field.ApplyCorrection()
	if field.U.Get(1, 1, 1) != 0 || field.V.Get(1, 1, 1) != 0 || field.W.Get(1, 1, 1) != 0 {
		t.Error("solid cell velocity should be zero")
	}
	if field.Lambda.Get(1, 1, 1) != 0 {
		t.Error("solid cell lambda should be zero after sweep initialization")
	}
}

func TestSolveCancellation(t *testing.T) {
	nx, ny, nz := 4, 4, 4
	solid := newSparseBool(nx, ny, nz)
	field := NewField(nx, ny, nz, 1, 1, 1, solid)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := Solve(ctx, field, DefaultSolverConfig(), nil)
	if result.Status != StatusCancelled {
		t.Errorf("status = %v, want cancelled", result.Status)
	}
}
