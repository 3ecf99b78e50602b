package urock

import "math"

// Rooftop power-law and profile exponents named in §4.5.
const (
	dispCdz = 0.4
	dispPdz = 0.16
	rooftopPRTP = 1.5
)

// EvaluateWindFactor computes the {m_u, m_v, m_w} multiplier triple for
// a single (zone, column, z) sample, per the closed forms of §4.5.
// zRef is the reference height used by the rooftop formulas.
// Returns ok=false if z lies above the zone's vertical threshold.
func EvaluateWindFactor(zcp *ZoneColumnPoint, z, zRef float64) (wf WindFactor, ok bool) {
	z0 := zcp.Zone
	h := z0.Height
	xi := zcp.Xi()

	switch z0.Kind {
	case ZoneDisplacement:
		if z > h {
			return wf, false
		}
		mv := dispCdz * math.Pow(z/h, dispPdz) * math.Sin(2*(z0.Theta-math.Pi/2)) / 2
		return WindFactor{MU: 0, MV: mv, MW: 0, RefHeight: RefBlockHeight, Priority: z0.Kind, Height: h, YWall: zcp.YWall}, true

	case ZoneDisplacementVortex:
		if z > h {
			return wf, false
		}
		mv := -(0.6*math.Cos(math.Pi*xi) + 0.05) * 0.6 * math.Sin(math.Pi*xi)
		mw := -0.1*math.Cos(math.Pi*xi) - 0.05
		return WindFactor{MU: 0, MV: mv, MW: mw, RefHeight: RefBlockHeight, Priority: z0.Kind, Height: h, YWall: zcp.YWall}, true

	case ZoneCavity:
		if z > h {
			return wf, false
		}
		ratio := z / h
		radicand := 1 - ratio*ratio
		if radicand <= 0 {
			return wf, false
		}
		mv := -sq(1 - xi/math.Sqrt(radicand))
		mv = clamp(mv, -1, 0)
		return WindFactor{MU: 0, MV: mv, MW: 0, RefHeight: RefBlockHeight, Priority: z0.Kind, Height: h, YWall: zcp.YWall}, true

	case ZoneWake:
		if z > h {
			return wf, false
		}
		ratio := z / h
		radicand := 1 - ratio*ratio
		if radicand <= 0 || zcp.LengthI <= 0 {
			return wf, false
		}
		zeta := math.Pow((zcp.YWall-zcp.YPoint)/z0.Lengths.Lw, 1.5)
		m := 1 - math.Pow(zeta*math.Sqrt(radicand), 1.5)
		if m > 1 {
			return wf, false
		}
		m = clamp(m, 0, 1)
		return WindFactor{MU: m, MV: m, MW: m, RefHeight: RefBlockHeight, Priority: z0.Kind, Height: h, YWall: zcp.YWall}, true

	case ZoneStreetCanyon:
		canyonH := math.Max(z0.UpstreamH, z0.DownstreamH)
		if z > canyonH {
			return wf, false
		}
		b := z0.Base
		dz := z - b
		theta := z0.Theta - math.Pi/2
		mu := math.Sin(2*theta) * (0.5 + dz*(canyonH-dz)/(0.5*canyonH*canyonH))
		mv := 1 - sq(math.Cos(theta))*(1+dz*(canyonH-dz)/sq(0.5*canyonH))
		mw := -math.Abs(0.5*(1-dz/(0.5*canyonH))) * (1 - (canyonH-dz)/(0.5*canyonH))
		return WindFactor{MU: mu, MV: mv, MW: mw, RefHeight: RefZRef, Priority: z0.Kind, Height: canyonH, YWall: zcp.YWall}, true

	case ZoneRooftopPerpendicular:
		hcm := z0.Lengths.Hcm
		top := h + hcm
		if z > top || hcm <= 0 {
			return wf, false
		}
		factor := math.Pow((top-z)/zRef, rooftopPRTP) * math.Abs(top-z) / hcm
		mv := -factor
		return WindFactor{MU: 0, MV: mv, MW: 0, RefHeight: RefBlockHeight, Priority: z0.Kind, Height: h, YWall: zcp.YWall}, true

	case ZoneRooftopCorner:
		hccp := z0.Lengths.Hcm
		top := h + hccp
		if z > top || hccp <= 0 {
			return wf, false
		}
		factor := math.Pow((top-z)/zRef, rooftopPRTP) * math.Abs(top-z) / hccp
		c1 := z0.Lengths.C1
		mu := -c1 * math.Sin(2*z0.Theta) * factor
		mv := -c1 * sq(math.Sin(z0.Theta)) * factor
		return WindFactor{MU: mu, MV: mv, MW: 0, RefHeight: RefBlockHeight, Priority: z0.Kind, Height: h, YWall: zcp.YWall}, true
	}
	return wf, false
}

// VegFactor computes the scalar horizontal-wind attenuation multiplier
// for a vegetation sample at height z, per §4.5's veg_factor formulas.
// z0Rough is the ambient roughness length used in the log-profile
// stitching.
func VegFactor(vz *VegetationZone, z, z0Rough, displacementHeight float64) float64 {
	if z <= 0 || z0Rough <= 0 || vz.CrownTop <= 0 {
		return 1
	}
	if z >= vz.CrownTop {
		return 1
	}
	var factor float64
	if vz.Built {
		factor = math.Log(vz.CrownTop/z0Rough) / math.Log(z/z0Rough) * math.Exp(vz.Attenuation*(z/vz.CrownTop-1))
	} else {
		factor = math.Log((vz.CrownTop-displacementHeight)/z0Rough) / math.Log(z/z0Rough) * math.Exp(vz.Attenuation*(z/vz.CrownTop-1))
	}
	return clamp(factor, 0, 1)
}

func sq(x float64) float64 { return x * x }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
