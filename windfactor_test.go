package urock

import (
	"math"
	"testing"
)

func TestEvaluateWindFactorCavityClamped(t *testing.T) {
	zone := &Zone{Kind: ZoneCavity, Height: 20}
	zcp := &ZoneColumnPoint{Zone: zone, YWall: 10, YPoint: 5, LengthI: 10}
	wf, ok := EvaluateWindFactor(zcp, 5, 10)
	if !ok {
		t.Fatal("expected cavity wind factor to be evaluated below block height")
	}
	if wf.MV > 0 || wf.MV < -1 {
		t.Errorf("cavity m_v = %v, want in [-1, 0]", wf.MV)
	}
	if wf.RefHeight != RefBlockHeight {
		t.Errorf("cavity ref height = %v, want RefBlockHeight", wf.RefHeight)
	}
}

func TestEvaluateWindFactorCavityAboveBlockExcluded(t *testing.T) {
	zone := &Zone{Kind: ZoneCavity, Height: 20}
	zcp := &ZoneColumnPoint{Zone: zone, YWall: 10, YPoint: 5, LengthI: 10}
	_, ok := EvaluateWindFactor(zcp, 25, 10)
	if ok {
		t.Error("expected cavity wind factor to be excluded above block height")
	}
}

func TestEvaluateWindFactorWakeClampedToUnitInterval(t *testing.T) {
	zone := &Zone{Kind: ZoneWake, Height: 20, Lengths: ZoneLengths{Lw: 30}}
	zcp := &ZoneColumnPoint{Zone: zone, YWall: 10, YPoint: 5, LengthI: 10}
	wf, ok := EvaluateWindFactor(zcp, 5, 10)
	if !ok {
		t.Fatal("expected wake wind factor to be evaluated")
	}
	if wf.MU < 0 || wf.MU > 1 {
		t.Errorf("wake m_u = %v, want in [0, 1]", wf.MU)
	}
	if wf.MU != wf.MV || wf.MV != wf.MW {
		t.Errorf("wake should set m_u = m_v = m_w, got %v %v %v", wf.MU, wf.MV, wf.MW)
	}
}

func TestVegFactorClampedAndContinuousAtCrownTop(t *testing.T) {
	vz := &VegetationZone{CrownTop: 10, CrownBase: 1, Attenuation: 2.8, Built: false}
	at := VegFactor(vz, 5, 0.1, 0)
	if at < 0 || at > 1 {
		t.Errorf("veg factor = %v, want in [0, 1]", at)
	}
	atTop := VegFactor(vz, 10, 0.1, 0)
	if atTop != 1 {
		t.Errorf("veg factor at crown top = %v, want 1", atTop)
	}
	// End-to-end scenario 5 (§8): inside the crown at z=5, open
	// veg_factor follows ln((h_t-d)/z0)/ln(z/z0) * exp(av*(z/h_t - 1)).
	want := math.Log((10-0)/0.1) / math.Log(5/0.1) * math.Exp(2.8*(0.5-1))
	want = clamp(want, 0, 1)
	if math.Abs(at-want) > 1e-9 {
		t.Errorf("veg factor = %v, want %v", at, want)
	}
}
