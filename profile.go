package urock

import (
	"math"

	"github.com/ctessum/unit"
)

// ProfileKind selects the vertical wind-speed profile used outside
// zones of influence, per §4.7.
type ProfileKind int

const (
	ProfilePower ProfileKind = iota
	ProfileLog
	ProfileUrban
	ProfileUser
)

// RoughnessParams holds the Hanna & Britter (2002) roughness length
// and displacement height derived from frontal area density and mean
// obstacle height.
type RoughnessParams struct {
	Z0 *unit.Unit
	D  *unit.Unit
}

// DeriveRoughness computes z0, d from frontal area density lambdaF and
// geometric-mean obstacle height h, per the three Hanna & Britter
// regimes of §4.7.
func DeriveRoughness(lambdaF, h float64) RoughnessParams {
	if lambdaF > 1 {
		lambdaF = 1
	}
	if lambdaF < 0 {
		lambdaF = 0
	}
	var z0, d float64
	switch {
	case lambdaF <= 0.05:
		z0 = lambdaF * h
		d = 3 * lambdaF * h
	case lambdaF <= 0.15:
		z0 = lambdaF * h
		d = 0.15 + 5.5*(lambdaF-0.05)
	default:
		z0 = 0.15 * h
		d = 0.7 + 0.35*(lambdaF-0.15)
	}
	return RoughnessParams{
		Z0: unit.New(z0, unit.Meter),
		D:  unit.New(d, unit.Meter),
	}
}

// Profile evaluates the vertical wind-speed profile V(z) for a given
// kind, reference wind (zRef, vRef), roughness length z0, displacement
// height d, mean obstacle height H, and frontal area density lambdaF,
// per §4.7. UserProfile is consulted only when kind == ProfileUser.
type Profile struct {
	Kind        ProfileKind
	ZRef, VRef  float64
	Z0, D       float64
	H           float64
	LambdaF     float64
	UserProfile func(z float64) float64
}

// At evaluates V(z).
func (p *Profile) At(z float64) float64 {
	switch p.Kind {
	case ProfilePower:
		return p.VRef * math.Pow(z/p.ZRef, 0.12*p.Z0+0.18)
	case ProfileLog:
		return p.logProfile(z)
	case ProfileUser:
		if p.UserProfile != nil {
			return p.UserProfile(z)
		}
		return p.logProfile(z)
	default: // ProfileUrban
		if z < p.H {
			return p.VRef * math.Exp(9.6*p.LambdaF*(z/p.H-1))
		}
		return p.logProfile(z)
	}
}

func (p *Profile) logProfile(z float64) float64 {
	if p.Z0 <= 0 {
		return 0
	}
	num := math.Log((z - p.D) / p.Z0)
	den := math.Log((p.ZRef - p.D) / p.Z0)
	if den == 0 {
		return 0
	}
	return p.VRef * num / den
}

// FirstGuessVelocity computes u0, v0, w0 at a 3D grid point per the
// first-guess rule in §4.7: zero inside a building, zone-multiplier
// scaled when a resolved wind factor exists, otherwise the ambient
// profile directed along -Y (wind from +Y after rotation).
func FirstGuessVelocity(solid bool, wf WindFactor, hasWF bool, profile *Profile, z float64) (u0, v0, w0 float64) {
	if solid {
		return 0, 0, 0
	}
	if hasWF {
		var wRef float64
		switch wf.RefHeight {
		case RefZRef:
			wRef = profile.VRef
		case RefPointHeight:
			wRef = profile.At(z)
		default: // RefBlockHeight
			wRef = profile.At(wf.Height)
		}
		return wf.MU * wRef, wf.MV * wRef, wf.MW * wRef
	}
	return 0, -profile.At(z), 0
}
