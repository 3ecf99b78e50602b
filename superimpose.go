package urock

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// priority-table zone kinds of §4.6 step 1; wake is the sole
// upstream-weighting-table kind.
func isPriorityZone(k ZoneKind) bool {
	switch k {
	case ZoneDisplacement, ZoneCavity, ZoneRooftopPerpendicular, ZoneRooftopCorner, ZoneDisplacementVortex, ZoneStreetCanyon:
		return true
	default:
		return false
	}
}

// CellCandidate is one (WindFactor, z) sample contending for a single
// 3D grid cell's resolved value.
type CellCandidate struct {
	WindFactor
	Z float64
}

// ResolveCell applies the superimposition rule of §4.6 to every
// candidate claiming a single grid cell and returns the resolved
// (m_u, m_v, m_w, ref_height) triple. wakeCandidates and
// vegFactor are applied after the priority-set winner is chosen.
func ResolveCell(candidates []CellCandidate, wakeCandidates []CellCandidate, vegFactor float64, log *logrus.Entry) (WindFactor, bool) {
	priority := make([]CellCandidate, 0, len(candidates))
	for _, c := range candidates {
		if isPriorityZone(c.Priority) {
			priority = append(priority, c)
		}
	}
	winner, ok := pickWinner(priority, log)
	if !ok {
		wakeWinner, wok := pickWinner(wakeCandidates, log)
		if !wok {
			return WindFactor{}, false
		}
		winner = wakeWinner
	} else if wakeWinner, wok := pickWinner(wakeCandidates, log); wok {
		if wakeWinner.YWall > winner.YWall && wakeWinner.Height > winner.Height {
			winner.MU *= wakeWinner.MU
			winner.MW *= wakeWinner.MW
			winner.RefHeight = RefPointHeight
		}
	}

	if vegFactor != 1 && vegFactor != 0 {
		winner.MU *= vegFactor
		winner.MV *= vegFactor
		winner.RefHeight = RefPointHeight
	}
	return winner.WindFactor, true
}

// zonePriorityRank implements the fixed tie-break priority table of
// §4.6 step 2 / Resolved Open Question: street-canyon=1, cavity=2,
// {rooftop-perp, rooftop-corner, displacement-vortex}=3,
// displacement=4, wake=5 (lower wins). This mirrors the ZoneKind
// ordering in types.go directly.
func zonePriorityRank(k ZoneKind) int {
	switch k {
	case ZoneStreetCanyon:
		return 1
	case ZoneCavity:
		return 2
	case ZoneRooftopPerpendicular, ZoneRooftopCorner, ZoneDisplacementVortex:
		return 3
	case ZoneDisplacement:
		return 4
	case ZoneWake:
		return 5
	default:
		return 99
	}
}

// pickWinner implements §4.6 step 2: the zone whose source obstacle is
// most upstream (max y_wall) wins; ties broken by tallest obstacle,
// then by the fixed zone-priority table, then — per Resolved Open
// Question (rule D) — by stable source id order, with a logged
// warning since the reference implementation left this final case
// undefined.
func pickWinner(candidates []CellCandidate, log *logrus.Entry) (CellCandidate, bool) {
	if len(candidates) == 0 {
		return CellCandidate{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.YWall != b.YWall {
			return a.YWall > b.YWall
		}
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		ra, rb := zonePriorityRank(a.Priority), zonePriorityRank(b.Priority)
		if ra != rb {
			return ra < rb
		}
		return a.SourceID < b.SourceID
	})
	if len(candidates) > 1 {
		a, b := candidates[0], candidates[1]
		if a.YWall == b.YWall && a.Height == b.Height && zonePriorityRank(a.Priority) == zonePriorityRank(b.Priority) && log != nil {
			log.WithFields(logrus.Fields{
				"rule":   "D",
				"zone_a": a.SourceID,
				"zone_b": b.SourceID,
			}).Warn("superimposition tie broken by source id order")
		}
	}
	return candidates[0], true
}
