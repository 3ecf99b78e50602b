package urock

import (
	"math"
	"testing"
)

func TestDeriveRoughnessRegimes(t *testing.T) {
	cases := []struct {
		name    string
		lambdaF float64
		h       float64
	}{
		{"low", 0.02, 10},
		{"mid", 0.10, 10},
		{"high", 0.5, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := DeriveRoughness(c.lambdaF, c.h)
			if r.Z0.Value() <= 0 {
				t.Errorf("z0 = %v, want > 0", r.Z0.Value())
			}
			if r.D.Value() < 0 {
				t.Errorf("d = %v, want >= 0", r.D.Value())
			}
		})
	}
}

func TestProfileFlatGround(t *testing.T) {
	// End-to-end scenario 1 (§8): v_ref = 2 m/s at z_ref = 10 m gives
	// V(10) = 2 for the power profile directly by construction.
	p := &Profile{Kind: ProfilePower, ZRef: 10, VRef: 2, Z0: 0.1}
	got := p.At(10)
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("V(z_ref) = %v, want 2", got)
	}
}

func TestProfileUrbanContinuityAtH(t *testing.T) {
	// Profile continuity property (§8): V(H-) should approach V(H+)
	// when the log term's d/z0 matches at the seam.
	h := 20.0
	z0 := 1.0
	d := 0.0
	// z_ref = H makes the log term's denominator equal its numerator at
	// the seam, satisfying the property's own precondition.
	p := &Profile{Kind: ProfileUrban, ZRef: h, VRef: 5, Z0: z0, D: d, H: h, LambdaF: 0.1}
	below := p.At(h - 1e-6)
	above := p.At(h + 1e-6)
	if math.Abs(below-above) > 1e-2*p.VRef {
		t.Errorf("V(H-) = %v, V(H+) = %v, discontinuity too large", below, above)
	}
}

func TestFirstGuessVelocitySolidIsZero(t *testing.T) {
	u, v, w := FirstGuessVelocity(true, WindFactor{MU: 1, MV: 1, MW: 1}, true, &Profile{}, 5)
	if u != 0 || v != 0 || w != 0 {
		t.Errorf("solid cell first guess = (%v,%v,%v), want all zero", u, v, w)
	}
}

func TestFirstGuessVelocityAmbient(t *testing.T) {
	p := &Profile{Kind: ProfilePower, ZRef: 10, VRef: 2, Z0: 0.1}
	u, v, w := FirstGuessVelocity(false, WindFactor{}, false, p, 10)
	if u != 0 || w != 0 {
		t.Errorf("ambient first guess u,w = (%v,%v), want 0,0", u, w)
	}
	if math.Abs(v-(-2)) > 1e-9 {
		t.Errorf("ambient first guess v = %v, want -2 (wind from +Y)", v)
	}
}
