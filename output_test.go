package urock

import (
	"math"
	"testing"
)

func TestDeriveSliceFieldsComputesSpeedAndDirection(t *testing.T) {
	nx, ny, nz := 3, 3, 3
	solid := newSparseBool(nx, ny, nz)
	field := NewField(nx, ny, nz, 1, 1, 1, solid)
	field.U.Set(3, 1, 1, 1)
	field.V.Set(-4, 1, 1, 1)
	field.W.Set(2, 1, 1, 1)

	sf := DeriveSliceFields(field, 1)
	idx := 1*nx + 1
	if math.Abs(sf.HorizontalSpeed[idx]-5) > 1e-9 {
		t.Errorf("horizontal speed = %v, want 5 (3-4-5 triangle)", sf.HorizontalSpeed[idx])
	}
	wantFull := math.Sqrt(5*5 + 2*2)
	if math.Abs(sf.FullSpeed[idx]-wantFull) > 1e-9 {
		t.Errorf("full speed = %v, want %v", sf.FullSpeed[idx], wantFull)
	}
	if sf.VerticalSpeed[idx] != 2 {
		t.Errorf("vertical speed = %v, want 2", sf.VerticalSpeed[idx])
	}
	if sf.HorizontalDirection[idx] < 0 || sf.HorizontalDirection[idx] >= 360 {
		t.Errorf("horizontal direction = %v, want in [0, 360)", sf.HorizontalDirection[idx])
	}
}

func TestMassResidualExcludesSolidCells(t *testing.T) {
	nx, ny, nz := 4, 4, 4
	solid := newSparseBool(nx, ny, nz)
	solid.Set(2, 2, 2, true)
	field := NewField(nx, ny, nz, 1, 1, 1, solid)
	residuals := MassResidual(field)
	// Every interior non-solid cell contributes one residual entry;
	// the solid cell at (2,2,2) must not.
	interior := (nx - 2) * (ny - 2) * (nz - 2)
	if len(residuals) != interior-1 {
		t.Errorf("got %d residuals, want %d (interior cells minus the one solid cell)", len(residuals), interior-1)
	}
}

func TestMaxAbsUFindsLargestMagnitude(t *testing.T) {
	nx, ny, nz := 2, 2, 2
	solid := newSparseBool(nx, ny, nz)
	field := NewField(nx, ny, nz, 1, 1, 1, solid)
	field.U.Set(-7, 1, 1, 1)
	field.U.Set(3, 0, 0, 0)
	if got := MaxAbsU(field); got != 7 {
		t.Errorf("MaxAbsU = %v, want 7", got)
	}
}

func TestMaxAbsUAllZero(t *testing.T) {
	solid := newSparseBool(1, 1, 1)
	field := NewField(1, 1, 1, 1, 1, 1, solid)
	if got := MaxAbsU(field); got != 0 {
		t.Errorf("MaxAbsU of an all-zero field = %v, want 0", got)
	}
}
