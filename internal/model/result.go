package model

import "time"

// VetoResult is the outcome of a veto-coalition search for one alternative.
// An empty Coalition signals that no veto coalition exists, i.e. the target
// belongs to the proportional veto core.
type VetoResult struct {
	Target    Alternative
	Coalition Coalition
	// Preferred is B, the set of alternatives every coalition member ranks
	// strictly above the target, in universe order.
	Preferred []Alternative
	// VotingPower is |T|/n, for display.
	VotingPower float64
	// VetoShare is 1 - |B|/m, for display.
	VetoShare float64
	// Boundary is true when the coalition's voting power meets the veto
	// size exactly, with no slack.
	Boundary bool
}

// Found reports whether a veto coalition exists for the target.
func (r VetoResult) Found() bool {
	return !r.Coalition.Empty()
}

// Analysis is the full report for one profile: the authoritative veto-based
// core, the advisory successive-elimination overlay, and the per-alternative
// search results the core was derived from. It is produced fresh on every
// query and never mutated in place.
type Analysis struct {
	ID      string
	Profile Profile
	// Core is the proportional veto core, in universe order.
	Core []Alternative
	// Sequential is what the classical successive-elimination procedure
	// retains. Display overlay only; it is not guaranteed to coincide with
	// Core on every profile and must never be merged into it.
	Sequential []Alternative
	Vetoes     map[Alternative]VetoResult
	Elapsed    time.Duration
}

// InCore reports whether alt belongs to the authoritative core.
func (a Analysis) InCore(alt Alternative) bool {
	for _, c := range a.Core {
		if c == alt {
			return true
		}
	}

	return false
}

// InSequential reports whether alt survives successive elimination.
func (a Analysis) InSequential(alt Alternative) bool {
	for _, c := range a.Sequential {
		if c == alt {
			return true
		}
	}

	return false
}
