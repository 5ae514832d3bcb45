package domain

import (
	m "github.com/jeqcho/pvc-playground/internal/model"
)

// SuccessiveCore runs the classical sequential-elimination characterization
// of the proportional veto core and returns the surviving alternatives in
// universe order.
//
// Each alternative is duplicated q times, where p/q is the reduced fraction
// (m-1)/n, so that "each voter eliminates p items" is an exact integer
// operation. The procedure then runs one round per voter in index order:
// voter v removes its p least-preferred remaining duplicated items, ties
// among duplicates of one alternative being indistinguishable. Exactly q
// duplicated items survive the n rounds, so the collapsed result is never
// empty.
//
// The result is advisory: it is not guaranteed to coincide with the
// veto-based core on every profile and is used only as a display overlay.
func SuccessiveCore(profile m.Profile) ([]m.Alternative, error) {
	mAlt, n := profile.M(), profile.N()
	if mAlt == 0 || n == 0 {
		return []m.Alternative{}, nil
	}

	power := VetoPower(mAlt, n)
	p, q := power.Num, power.Den

	index := make(map[m.Alternative]int, mAlt)
	for i, alt := range profile.Alternatives {
		index[alt] = i
	}

	// remaining[i] counts the live duplicates of alternative i.
	remaining := make([]int64, mAlt)
	for i := range remaining {
		remaining[i] = q
	}

	for _, ranking := range profile.Rankings {
		toRemove := p

		for pos := len(ranking) - 1; pos >= 0 && toRemove > 0; pos-- {
			idx, ok := index[ranking[pos]]
			if !ok {
				// Unknown symbol: the run is uncomputable, not a crash.
				return []m.Alternative{}, m.ErrNotComputable
			}

			take := remaining[idx]
			if take > toRemove {
				take = toRemove
			}

			remaining[idx] -= take
			toRemove -= take
		}
	}

	survivors := make([]m.Alternative, 0, mAlt)

	for i, alt := range profile.Alternatives {
		if remaining[i] > 0 {
			survivors = append(survivors, alt)
		}
	}

	return survivors, nil
}
