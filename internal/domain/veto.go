package domain

import (
	"math/bits"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// maxSearchVoters is the hard ceiling on the subset enumeration; beyond it
// the 2^n mask would not fit the Coalition bitmask. The configurable
// Analyzer bound is expected to be far below this.
const maxSearchVoters = 62

// FindVetoCoalition scans every non-empty subset of voters for one that
// vetoes target under the proportional veto rule. Subsets are enumerated as
// bitmasks in increasing integer order and the first satisfying coalition is
// returned, which makes the result deterministic for a given profile. An
// empty coalition in the result signals that no veto coalition exists.
//
// A coalition T vetoes target iff |T|*(m-1)/n >= m-|B| and |B| > 0, where B
// is the set of alternatives every member of T ranks strictly above target.
// The inequality is decided in exact rational arithmetic, so boundary ties
// are never flipped by rounding.
func FindVetoCoalition(target m.Alternative, profile m.Profile) (m.VetoResult, error) {
	result := m.VetoResult{Target: target}

	mAlt, n := profile.M(), profile.N()
	if mAlt == 0 || n == 0 {
		return result, nil
	}

	if profile.Index(target) < 0 {
		return result, m.ErrUnknownAlternative
	}

	if n > maxSearchVoters {
		return result, m.ErrTooManyVoters
	}

	if mAlt > 64 {
		// Alternative sets are bitmask-encoded per voter.
		return result, m.ErrNotComputable
	}

	index := make(map[m.Alternative]int, mAlt)
	for i, alt := range profile.Alternatives {
		index[alt] = i
	}

	// above[v] is the bitmask over alternative indices that voter v ranks
	// strictly above target; ranked[v] is false when v does not rank target
	// at all, which disqualifies every subset containing v.
	above := make([]uint64, n)
	ranked := make([]bool, n)

	for v, ranking := range profile.Rankings {
		var mask uint64

		for _, alt := range ranking {
			if alt == target {
				ranked[v] = true
				break
			}

			if idx, ok := index[alt]; ok {
				mask |= 1 << uint(idx)
			}
		}

		above[v] = mask
	}

	power := VetoPower(mAlt, n)

	for subset := m.Coalition(1); subset < 1<<uint(n); subset++ {
		intersection := ^uint64(0)
		valid := true

		for v := 0; v < n; v++ {
			if !subset.Contains(v) {
				continue
			}

			if !ranked[v] {
				valid = false
				break
			}

			intersection &= above[v]
		}

		if !valid {
			continue
		}

		bSize := bits.OnesCount64(intersection & (1<<uint(mAlt) - 1))
		if bSize == 0 {
			// "Preferred by none" cannot license a veto.
			continue
		}

		scaled := power.Scale(int64(subset.Size()))
		if !scaled.AtLeastInt(int64(mAlt - bSize)) {
			continue
		}

		result.Coalition = subset
		result.Preferred = collectAlternatives(profile.Alternatives, intersection)
		result.VotingPower = float64(subset.Size()) / float64(n)
		result.VetoShare = 1 - float64(bSize)/float64(mAlt)
		// The veto decision above is exact; the boundary annotation compares
		// the display scalars under the float tolerance.
		vetoSize := float64(mAlt - bSize)
		result.Boundary = geqFloat(scaled.Float(), vetoSize) && geqFloat(vetoSize, scaled.Float())

		return result, nil
	}

	return result, nil
}

// collectAlternatives expands an alternative-index bitmask into universe order.
func collectAlternatives(universe []m.Alternative, mask uint64) []m.Alternative {
	alts := make([]m.Alternative, 0, bits.OnesCount64(mask))

	for i, alt := range universe {
		if mask&(1<<uint(i)) != 0 {
			alts = append(alts, alt)
		}
	}

	return alts
}
