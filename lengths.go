package urock

import (
	"math"

	"github.com/ctessum/geom"
)

// EffectiveGeometryOf computes the cross-wind effective width and
// along-wind effective length of a stacked block footprint from its
// envelope and area, per the data model:
//
//	W_eff = (Xmax(envelope) - Xmin(envelope)) * Area(F) / Area(envelope)
//	L_eff = (Ymax(envelope) - Ymin(envelope)) * Area(F) / Area(envelope)
//
// Assumes the polygon has already been rotated so the wind blows along
// -Y (X is cross-wind, Y is along-wind).
func EffectiveGeometryOf(footprint geom.Polygonal) EffectiveGeometry {
	b := footprint.Bounds()
	envelopeW := b.Max.X - b.Min.X
	envelopeH := b.Max.Y - b.Min.Y
	envelopeArea := envelopeW * envelopeH
	if envelopeArea <= 0 {
		return EffectiveGeometry{}
	}
	ratio := footprint.Area() / envelopeArea
	return EffectiveGeometry{
		Width:  envelopeW * ratio,
		Length: envelopeH * ratio,
	}
}

// ZoneLengthsOf computes the closed-form zone-length descriptors from
// a stacked block's effective geometry and height, per the zone-length
// descriptor table. h must be strictly positive.
func ZoneLengthsOf(eg EffectiveGeometry, h float64) ZoneLengths {
	w, l := eg.Width, eg.Length
	if h <= 0 || w <= 0 {
		return ZoneLengths{}
	}

	lf := 1.5 * w / (1 + 0.8*w/h)
	lfv := 0.6 * w / (1 + 0.8*w/h)

	var lr float64
	if l > 0 {
		lr = 1.8 * w / (math.Pow(l/h, 0.3) * (1 + 0.24*w/h))
	}
	lw := 3 * lr

	minWH, maxWH := w, h
	if h < w {
		minWH, maxWH = h, w
	}
	blend := 0.67*minWH + 0.33*maxWH
	hcm := 0.22 * blend
	lc := 0.9 * blend

	c1 := 1 + 0.05*w/h

	return ZoneLengths{Lf: lf, Lfv: lfv, Lr: lr, Lw: lw, Hcm: hcm, Lc: lc, C1: c1}
}
